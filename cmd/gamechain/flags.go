package main

import (
	"os"
	"path/filepath"

	cli "gopkg.in/urfave/cli.v1"
)

var (
	homeFlag = cli.StringFlag{
		Name:  "home",
		Value: defaultHome(),
		Usage: "directory of the chain database",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Value: "info",
		Usage: "log level (debug|info|error|none)",
	}
	debugFlag = cli.BoolFlag{
		Name:  "debug",
		Usage: "print full error details",
	}

	genesisFlag = cli.StringFlag{
		Name:  "genesis",
		Usage: "genesis file, an empty chain is created when not set",
	}
	chainIDFlag = cli.StringFlag{
		Name:  "chain-id",
		Value: "gamechain",
		Usage: "chain id used when no genesis file is given",
	}
	planFlag = cli.StringFlag{
		Name:  "plan",
		Usage: "deployment plan file, the game contracts are deployed when not set",
	}

	fromFlag = cli.StringFlag{
		Name:  "from",
		Usage: "address of the caller",
	}
	tokenFlag = cli.StringFlag{
		Name:  "token",
		Usage: "address of the token",
	}
	toFlag = cli.StringFlag{
		Name:  "to",
		Usage: "address of the recipient",
	}
	accountFlag = cli.StringFlag{
		Name:  "account",
		Usage: "address of the account",
	}
	amountFlag = cli.StringFlag{
		Name:  "amount",
		Usage: "amount in the smallest token unit",
	}
	vaultFlag = cli.StringFlag{
		Name:  "vault",
		Usage: "address of the vault",
	}
	collectionFlag = cli.StringFlag{
		Name:  "collection",
		Usage: "address of the nft collection",
	}
	contractFlag = cli.StringFlag{
		Name:  "contract",
		Usage: "address of the contract",
	}
	idFlag = cli.Uint64Flag{
		Name:  "id",
		Usage: "id of the nft item",
	}
)

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gamechain")
}

package main

import (
	"fmt"
	"os"

	"github.com/iov-one/gamechain/errors"
	cli "gopkg.in/urfave/cli.v1"
)

var (
	version = "dev"
	debug   bool
)

func main() {
	app := cli.App{
		Version: version,
		Name:    "gamechain",
		Usage:   "Game token, collection and vault contracts on a local chain",
		Flags: []cli.Flag{
			homeFlag,
			logLevelFlag,
			debugFlag,
		},
		Before: func(ctx *cli.Context) error {
			debug = ctx.GlobalBool(debugFlag.Name)
			return nil
		},
		Commands: []cli.Command{
			{
				Name:   "init",
				Usage:  "initialize the chain state",
				Flags:  []cli.Flag{genesisFlag, chainIDFlag},
				Action: initAction,
			},
			{
				Name:   "deploy",
				Usage:  "deploy the contracts of a plan",
				Flags:  []cli.Flag{planFlag},
				Action: deployAction,
			},
			{
				Name:   "enable-admin",
				Usage:  "grant admin rights over a contract",
				Flags:  []cli.Flag{fromFlag, contractFlag, accountFlag},
				Action: enableAdminAction,
			},
			{
				Name:   "mint",
				Usage:  "issue new tokens",
				Flags:  []cli.Flag{fromFlag, tokenFlag, toFlag, amountFlag},
				Action: mintAction,
			},
			{
				Name:   "transfer",
				Usage:  "transfer tokens",
				Flags:  []cli.Flag{fromFlag, tokenFlag, toFlag, amountFlag},
				Action: transferAction,
			},
			{
				Name:   "withdraw",
				Usage:  "withdraw tokens held by a vault",
				Flags:  []cli.Flag{fromFlag, vaultFlag, tokenFlag, toFlag, amountFlag},
				Action: withdrawAction,
			},
			{
				Name:   "mint-nft",
				Usage:  "mint a new item of a collection",
				Flags:  []cli.Flag{fromFlag, collectionFlag, toFlag},
				Action: mintNFTAction,
			},
			{
				Name:   "transfer-nft",
				Usage:  "transfer an item of a collection",
				Flags:  []cli.Flag{fromFlag, collectionFlag, idFlag, toFlag},
				Action: transferNFTAction,
			},
			{
				Name:   "balance",
				Usage:  "print the token balance of an account",
				Flags:  []cli.Flag{tokenFlag, accountFlag},
				Action: balanceAction,
			},
			{
				Name:   "token",
				Usage:  "print the token metadata and total supply",
				Flags:  []cli.Flag{tokenFlag},
				Action: tokenAction,
			},
			{
				Name:   "owner-of",
				Usage:  "print the owner of a collection item",
				Flags:  []cli.Flag{collectionFlag, idFlag},
				Action: ownerOfAction,
			},
			{
				Name:   "is-admin",
				Usage:  "check if an account is an admin of a contract",
				Flags:  []cli.Flag{contractFlag, accountFlag},
				Action: isAdminAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		code, log := errors.ABCIInfo(err, debug)
		fmt.Fprintf(os.Stderr, "error %d: %s\n", code, log)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/amount"
	"github.com/iov-one/gamechain/app"
	gcapp "github.com/iov-one/gamechain/cmd/gamechain/app"
	"github.com/iov-one/gamechain/deploy"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/orm"
	"github.com/iov-one/gamechain/x/admin"
	"github.com/iov-one/gamechain/x/caller"
	"github.com/iov-one/gamechain/x/nft"
	"github.com/iov-one/gamechain/x/token"
	"github.com/iov-one/gamechain/x/vault"
	"github.com/tendermint/tendermint/libs/log"
	cli "gopkg.in/urfave/cli.v1"
	yaml "gopkg.in/yaml.v2"
)

const dbName = "gamechain.db"

func newLogger(ctx *cli.Context) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout))
	level, err := log.AllowLevel(ctx.GlobalString(logLevelFlag.Name))
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return log.NewFilter(logger, level), nil
}

func openExecutor(ctx *cli.Context) (*app.Executor, error) {
	home := ctx.GlobalString(homeFlag.Name)
	if home == "" {
		return nil, errors.Wrapf(errors.ErrInput, "unable to infer home directory, use --%s", homeFlag.Name)
	}
	if err := os.MkdirAll(home, 0700); err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "create home: %s", err)
	}
	logger, err := newLogger(ctx)
	if err != nil {
		return nil, err
	}
	return gcapp.NewExecutor(filepath.Join(home, dbName), logger)
}

func addressFlag(ctx *cli.Context, f cli.StringFlag) (gamechain.Address, error) {
	raw := ctx.String(f.Name)
	if raw == "" {
		return nil, errors.Wrapf(errors.ErrEmpty, "--%s is required", f.Name)
	}
	addr, err := gamechain.ParseAddress(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "--%s", f.Name)
	}
	return addr, nil
}

func amountFlagValue(ctx *cli.Context) (amount.Amount, error) {
	a, err := amount.Parse(ctx.String(amountFlag.Name))
	if err != nil {
		return amount.Zero(), errors.Wrapf(err, "--%s", amountFlag.Name)
	}
	return a, nil
}

// send delivers msg as the account given with the from flag.
func send(ctx *cli.Context, msg gamechain.Msg) (*gamechain.DeliverResult, error) {
	from, err := addressFlag(ctx, fromFlag)
	if err != nil {
		return nil, err
	}
	exec, err := openExecutor(ctx)
	if err != nil {
		return nil, err
	}
	defer exec.Close()

	res, err := exec.Deliver(context.Background(), caller.NewTx(from, msg))
	if err != nil {
		return nil, err
	}
	if res.Log != "" {
		fmt.Println(res.Log)
	}
	return res, nil
}

// query runs fn against the latest committed state.
func query(ctx *cli.Context, fn func(gcapp.Queries) error) error {
	exec, err := openExecutor(ctx)
	if err != nil {
		return err
	}
	defer exec.Close()
	return fn(gcapp.NewQueries(exec))
}

func initAction(ctx *cli.Context) error {
	gen := &app.Genesis{ChainID: ctx.String(chainIDFlag.Name)}
	if path := ctx.String(genesisFlag.Name); path != "" {
		var err error
		if gen, err = app.LoadGenesis(path); err != nil {
			return err
		}
	}
	exec, err := openExecutor(ctx)
	if err != nil {
		return err
	}
	defer exec.Close()

	id, err := exec.InitChain(*gen, gcapp.Initializer())
	if err != nil {
		return err
	}
	fmt.Printf("chain %s initialized at version %d: %X\n", gen.ChainID, id.Version, id.Hash)
	return nil
}

func deployAction(ctx *cli.Context) error {
	var (
		plan *deploy.Plan
		err  error
	)
	if path := ctx.String(planFlag.Name); path != "" {
		plan, err = deploy.LoadPlan(path)
	} else {
		plan, err = deploy.ParsePlan([]byte(deploy.DefaultPlan))
	}
	if err != nil {
		return err
	}

	exec, err := openExecutor(ctx)
	if err != nil {
		return err
	}
	defer exec.Close()

	logger, err := newLogger(ctx)
	if err != nil {
		return err
	}
	deployed, err := deploy.Deploy(gamechain.WithLogger(context.Background(), logger), exec, plan)
	if len(deployed) > 0 {
		out, merr := yaml.Marshal(deployed)
		if merr != nil {
			return errors.Wrap(errors.ErrInput, merr.Error())
		}
		fmt.Print(string(out))
	}
	return err
}

func enableAdminAction(ctx *cli.Context) error {
	contract, err := addressFlag(ctx, contractFlag)
	if err != nil {
		return err
	}
	account, err := addressFlag(ctx, accountFlag)
	if err != nil {
		return err
	}
	_, err = send(ctx, &admin.EnableAdminMsg{Contract: contract, Account: account})
	return err
}

func mintAction(ctx *cli.Context) error {
	tok, err := addressFlag(ctx, tokenFlag)
	if err != nil {
		return err
	}
	to, err := addressFlag(ctx, toFlag)
	if err != nil {
		return err
	}
	amt, err := amountFlagValue(ctx)
	if err != nil {
		return err
	}
	_, err = send(ctx, &token.MintMsg{Token: tok, Recipient: to, Amount: amt})
	return err
}

func transferAction(ctx *cli.Context) error {
	tok, err := addressFlag(ctx, tokenFlag)
	if err != nil {
		return err
	}
	to, err := addressFlag(ctx, toFlag)
	if err != nil {
		return err
	}
	amt, err := amountFlagValue(ctx)
	if err != nil {
		return err
	}
	_, err = send(ctx, &token.TransferMsg{Token: tok, Destination: to, Amount: amt})
	return err
}

func withdrawAction(ctx *cli.Context) error {
	v, err := addressFlag(ctx, vaultFlag)
	if err != nil {
		return err
	}
	tok, err := addressFlag(ctx, tokenFlag)
	if err != nil {
		return err
	}
	to, err := addressFlag(ctx, toFlag)
	if err != nil {
		return err
	}
	amt, err := amountFlagValue(ctx)
	if err != nil {
		return err
	}
	_, err = send(ctx, &vault.WithdrawMsg{Vault: v, Token: tok, Recipient: to, Amount: amt})
	return err
}

func mintNFTAction(ctx *cli.Context) error {
	col, err := addressFlag(ctx, collectionFlag)
	if err != nil {
		return err
	}
	to, err := addressFlag(ctx, toFlag)
	if err != nil {
		return err
	}
	res, err := send(ctx, &nft.MintMsg{Collection: col, Recipient: to})
	if err != nil {
		return err
	}
	fmt.Println(orm.DecodeSequence(res.Data))
	return nil
}

func transferNFTAction(ctx *cli.Context) error {
	col, err := addressFlag(ctx, collectionFlag)
	if err != nil {
		return err
	}
	to, err := addressFlag(ctx, toFlag)
	if err != nil {
		return err
	}
	_, err = send(ctx, &nft.TransferMsg{Collection: col, ID: ctx.Uint64(idFlag.Name), Recipient: to})
	return err
}

func balanceAction(ctx *cli.Context) error {
	tok, err := addressFlag(ctx, tokenFlag)
	if err != nil {
		return err
	}
	account, err := addressFlag(ctx, accountFlag)
	if err != nil {
		return err
	}
	return query(ctx, func(q gcapp.Queries) error {
		bal, err := q.Balance(tok, account)
		if err != nil {
			return err
		}
		fmt.Println(bal)
		return nil
	})
}

func tokenAction(ctx *cli.Context) error {
	tok, err := addressFlag(ctx, tokenFlag)
	if err != nil {
		return err
	}
	return query(ctx, func(q gcapp.Queries) error {
		t, err := q.Token(tok)
		if err != nil {
			return err
		}
		supply, err := t.Supply()
		if err != nil {
			return err
		}
		capped, maxSupply, err := t.Cap()
		if err != nil {
			return err
		}
		fmt.Printf("name:         %q\n", t.Name)
		fmt.Printf("symbol:       %s\n", t.Symbol)
		fmt.Printf("decimals:     %d\n", t.Decimals)
		fmt.Printf("owner:        %s\n", t.Owner)
		fmt.Printf("total supply: %s\n", supply)
		if capped {
			fmt.Printf("max supply:   %s\n", maxSupply)
		}
		return nil
	})
}

func ownerOfAction(ctx *cli.Context) error {
	col, err := addressFlag(ctx, collectionFlag)
	if err != nil {
		return err
	}
	return query(ctx, func(q gcapp.Queries) error {
		owner, err := q.OwnerOf(col, ctx.Uint64(idFlag.Name))
		if err != nil {
			return err
		}
		fmt.Println(owner)
		return nil
	})
}

func isAdminAction(ctx *cli.Context) error {
	contract, err := addressFlag(ctx, contractFlag)
	if err != nil {
		return err
	}
	account, err := addressFlag(ctx, accountFlag)
	if err != nil {
		return err
	}
	return query(ctx, func(q gcapp.Queries) error {
		ok, err := q.IsAdmin(contract, account)
		if err != nil {
			return err
		}
		fmt.Println(ok)
		return nil
	})
}

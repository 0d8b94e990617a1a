package deploy

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/x/admin"
	"github.com/iov-one/gamechain/x/caller"
	"github.com/iov-one/gamechain/x/nft"
	"github.com/iov-one/gamechain/x/token"
	"github.com/iov-one/gamechain/x/vault"
)

// Deliverer executes calls against the chain state.
type Deliverer interface {
	Deliver(ctx gamechain.Context, tx gamechain.Tx) (*gamechain.DeliverResult, error)
}

// Deployment is a contract created by a plan.
type Deployment struct {
	Name    string            `yaml:"name" json:"name"`
	Kind    string            `yaml:"kind" json:"kind"`
	Address gamechain.Address `yaml:"address" json:"address"`
}

// Deploy creates all contracts of the plan in order, sending every call
// as the plan operator. It stops at the first failure and returns the
// contracts created so far.
func Deploy(ctx gamechain.Context, exec Deliverer, plan *Plan) ([]Deployment, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	logger := gamechain.GetLogger(ctx)

	deployed := make([]Deployment, 0, len(plan.Contracts))
	for _, c := range plan.Contracts {
		res, err := exec.Deliver(ctx, caller.NewTx(plan.Operator, createMsg(c)))
		if err != nil {
			return deployed, errors.Wrapf(err, "deploy %s", c.Name)
		}
		addr := gamechain.Address(res.Data)
		if err := addr.Validate(); err != nil {
			return deployed, errors.Wrapf(err, "deploy %s", c.Name)
		}
		logger.Info("Contract deployed", "name", c.Name, "kind", c.Kind, "address", addr)

		for _, a := range c.Admins {
			msg := &admin.EnableAdminMsg{Contract: addr, Account: a}
			if _, err := exec.Deliver(ctx, caller.NewTx(plan.Operator, msg)); err != nil {
				return deployed, errors.Wrapf(err, "enable admin %s of %s", a, c.Name)
			}
			logger.Info("Admin enabled", "contract", c.Name, "admin", a)
		}
		deployed = append(deployed, Deployment{Name: c.Name, Kind: c.Kind, Address: addr})
	}
	return deployed, nil
}

func createMsg(c Contract) gamechain.Msg {
	switch c.Kind {
	case KindToken:
		return &token.CreateMsg{
			Name:      c.TokenName,
			Symbol:    c.Symbol,
			Decimals:  c.Decimals,
			MaxSupply: c.MaxSupply,
			AdminMint: c.AdminMint,
		}
	case KindNFT:
		return &nft.CreateMsg{Name: c.TokenName, Symbol: c.Symbol}
	default:
		return &vault.CreateMsg{}
	}
}

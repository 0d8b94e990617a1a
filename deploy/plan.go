/*
Package deploy creates a set of contracts described by a plan, the way
the game contracts are brought up on a fresh chain.

A plan lists the contracts in the order they are created. All contracts
are owned by the plan operator, who also enables the listed admins.
*/
package deploy

import (
	"fmt"
	"io/ioutil"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/amount"
	"github.com/iov-one/gamechain/errors"
	yaml "gopkg.in/yaml.v2"
)

// Kinds of contracts a plan can create.
const (
	KindToken = "token"
	KindNFT   = "nft"
	KindVault = "vault"
)

// Plan is the list of contracts to create.
type Plan struct {
	Operator  gamechain.Address `yaml:"operator"`
	Contracts []Contract        `yaml:"contracts"`
}

// Contract describes a single contract of a plan. Token attributes are
// ignored for vaults.
type Contract struct {
	Name      string              `yaml:"name"`
	Kind      string              `yaml:"kind"`
	TokenName string              `yaml:"token_name"`
	Symbol    string              `yaml:"symbol"`
	Decimals  uint32              `yaml:"decimals"`
	MaxSupply amount.Amount       `yaml:"max_supply"`
	AdminMint bool                `yaml:"admin_mint"`
	Admins    []gamechain.Address `yaml:"admins"`
}

// DefaultPlan brings up the game contracts: the in-game token, the capped
// governance token, the item collection and the reward vault.
const DefaultPlan = `
operator: "0x550bB66C3050C2e9C5DC2b35aa924485b48B67d0"
contracts:
  - name: GameToken
    kind: token
    token_name: Space Kill King
    symbol: SKS
  - name: GovernanceToken
    kind: token
    token_name: " Space Kill King"
    symbol: SKK
    max_supply: "1000000000000000000000000000"
  - name: GameNFT
    kind: nft
    token_name: Space Kill NFT
    symbol: SKNFT
    admins:
      - "0x550bB66C3050C2e9C5DC2b35aa924485b48B67d0"
  - name: GameVault
    kind: vault
    admins:
      - "0x550bB66C3050C2e9C5DC2b35aa924485b48B67d0"
`

// LoadPlan reads a plan from a yaml file.
func LoadPlan(path string) (*Plan, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "read plan: %s", err)
	}
	return ParsePlan(raw)
}

// ParsePlan decodes and validates a yaml plan.
func ParsePlan(raw []byte) (*Plan, error) {
	var p Plan
	if err := yaml.UnmarshalStrict(raw, &p); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "decode plan: %s", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the plan before anything is created. Message level
// checks are left to the contracts.
func (p *Plan) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Operator", p.Operator.Validate())
	if len(p.Contracts) == 0 {
		errs = errors.AppendField(errs, "Contracts", errors.ErrEmpty)
	}
	names := make(map[string]bool, len(p.Contracts))
	for i, c := range p.Contracts {
		if c.Name == "" {
			errs = errors.AppendField(errs, fmt.Sprintf("Contracts.%d.Name", i), errors.ErrEmpty)
		} else if names[c.Name] {
			errs = errors.AppendField(errs, fmt.Sprintf("Contracts.%d.Name", i), errors.ErrDuplicate)
		}
		names[c.Name] = true

		switch c.Kind {
		case KindToken, KindNFT, KindVault:
		default:
			errs = errors.AppendField(errs, fmt.Sprintf("Contracts.%d.Kind", i),
				errors.Wrapf(errors.ErrType, "unknown kind %q", c.Kind))
		}
		for j, a := range c.Admins {
			errs = errors.AppendField(errs, fmt.Sprintf("Contracts.%d.Admins.%d", i, j), a.Validate())
		}
	}
	return errs
}

package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
)

// Genesis is the initial state of a chain.
type Genesis struct {
	ChainID  string            `json:"chain_id"`
	AppState gamechain.Options `json:"app_state"`
}

// LoadGenesis reads a genesis file.
func LoadGenesis(filePath string) (*Genesis, error) {
	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	var gen Genesis
	if err := json.Unmarshal(raw, &gen); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot parse genesis file: %s", err)
	}
	return &gen, nil
}

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...gamechain.Initializer) gamechain.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []gamechain.Initializer
}

// FromGenesis passes opts to all Initializers in the list, aborting at
// the first error.
func (c chainInitializer) FromGenesis(opts gamechain.Options, kv gamechain.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}

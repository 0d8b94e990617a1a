package admin

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/orm"
	"github.com/iov-one/gamechain/x"
)

// Registry manages the admin sets of all contract instances. Contract
// modules embed it into their handlers and guard privileged operations
// with RequireAdmin.
type Registry struct {
	bucket orm.ModelBucket
}

// NewRegistry returns a registry backed by the admin bucket.
func NewRegistry() Registry {
	return Registry{bucket: NewBucket()}
}

// Register records the owner of a newly created contract. The admin set
// starts empty.
func (r Registry) Register(db gamechain.KVStore, contract, owner gamechain.Address) error {
	switch err := r.bucket.Has(db, contract); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "contract %s already registered", contract)
	case !errors.ErrNotFound.Is(err):
		return err
	}
	set := &AdminSet{Owner: owner}
	if err := r.bucket.Put(db, contract, set); err != nil {
		return errors.Wrap(err, "cannot store admin set")
	}
	return nil
}

// Get returns the admin set of given contract.
func (r Registry) Get(db gamechain.ReadOnlyKVStore, contract gamechain.Address) (*AdminSet, error) {
	var set AdminSet
	if err := r.bucket.One(db, contract, &set); err != nil {
		return nil, errors.Wrapf(err, "contract %s", contract)
	}
	return &set, nil
}

// Owner returns the controlling identity of given contract.
func (r Registry) Owner(db gamechain.ReadOnlyKVStore, contract gamechain.Address) (gamechain.Address, error) {
	set, err := r.Get(db, contract)
	if err != nil {
		return nil, err
	}
	return set.Owner, nil
}

// IsAdmin returns true if account was enabled as an admin of contract.
// Being the owner does not make an account an admin.
func (r Registry) IsAdmin(db gamechain.ReadOnlyKVStore, contract, account gamechain.Address) (bool, error) {
	set, err := r.Get(db, contract)
	if err != nil {
		return false, err
	}
	return set.Has(account), nil
}

// EnableAdmin adds account to the admin set of contract. Enabling an
// account that already is an admin is a no-op.
func (r Registry) EnableAdmin(db gamechain.KVStore, contract, account gamechain.Address) error {
	if err := account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	set, err := r.Get(db, contract)
	if err != nil {
		return err
	}
	if set.Has(account) {
		return nil
	}
	set.Admins = append(set.Admins, account)
	if err := r.bucket.Put(db, contract, set); err != nil {
		return errors.Wrap(err, "cannot store admin set")
	}
	return nil
}

// RequireOwner fails with ErrUnauthorized unless the call is authorized
// by the owner of contract.
func (r Registry) RequireOwner(ctx gamechain.Context, db gamechain.ReadOnlyKVStore, auth x.Authenticator, contract gamechain.Address) error {
	owner, err := r.Owner(db, contract)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, owner) {
		return errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return nil
}

// RequireAdmin fails with ErrUnauthorized unless the call is authorized
// by one of the admins of contract.
func (r Registry) RequireAdmin(ctx gamechain.Context, db gamechain.ReadOnlyKVStore, auth x.Authenticator, contract gamechain.Address) error {
	set, err := r.Get(db, contract)
	if err != nil {
		return err
	}
	for _, a := range set.Admins {
		if auth.HasAddress(ctx, a) {
			return nil
		}
	}
	return errors.Wrap(errors.ErrUnauthorized, "admin signature required")
}

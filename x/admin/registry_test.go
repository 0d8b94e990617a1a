package admin

import (
	"context"
	"testing"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/store"
	"github.com/iov-one/gamechain/weavetest"
	"github.com/iov-one/gamechain/weavetest/assert"
)

func TestRegistry(t *testing.T) {
	owner := weavetest.NewAddress()
	alice := weavetest.NewAddress()
	contract := weavetest.NewCondition().Address()

	db := store.MemStore()
	r := NewRegistry()

	_, err := r.Owner(db, contract)
	assert.IsErr(t, errors.ErrNotFound, err)

	assert.Nil(t, r.Register(db, contract, owner))
	assert.IsErr(t, errors.ErrDuplicate, r.Register(db, contract, alice))

	got, err := r.Owner(db, contract)
	assert.Nil(t, err)
	assert.Equal(t, owner, got)

	// The owner is not an admin until explicitly enabled.
	ok, err := r.IsAdmin(db, contract, owner)
	assert.Nil(t, err)
	assert.Equal(t, false, ok)

	assert.Nil(t, r.EnableAdmin(db, contract, alice))
	assert.Nil(t, r.EnableAdmin(db, contract, alice))
	ok, err = r.IsAdmin(db, contract, alice)
	assert.Nil(t, err)
	assert.Equal(t, true, ok)

	set, err := r.Get(db, contract)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(set.Admins))

	assert.IsErr(t, errors.ErrInput, r.EnableAdmin(db, contract, gamechain.Address{0x01}))
	assert.IsErr(t, errors.ErrNotFound, r.EnableAdmin(db, weavetest.NewAddress(), alice))
}

func TestRegistryGuards(t *testing.T) {
	owner := weavetest.NewAddress()
	admin := weavetest.NewAddress()
	stranger := weavetest.NewAddress()
	contract := weavetest.NewCondition().Address()

	db := store.MemStore()
	r := NewRegistry()
	assert.Nil(t, r.Register(db, contract, owner))
	assert.Nil(t, r.EnableAdmin(db, contract, admin))

	cases := map[string]struct {
		signer       gamechain.Address
		wantOwnerErr *errors.Error
		wantAdminErr *errors.Error
	}{
		"owner": {
			signer:       owner,
			wantAdminErr: errors.ErrUnauthorized,
		},
		"admin": {
			signer:       admin,
			wantOwnerErr: errors.ErrUnauthorized,
		},
		"stranger": {
			signer:       stranger,
			wantOwnerErr: errors.ErrUnauthorized,
			wantAdminErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			auth := &weavetest.Auth{Signer: tc.signer}
			ctx := context.Background()
			if err := r.RequireOwner(ctx, db, auth, contract); !tc.wantOwnerErr.Is(err) {
				t.Fatalf("unexpected owner check error: %+v", err)
			}
			if err := r.RequireAdmin(ctx, db, auth, contract); !tc.wantAdminErr.Is(err) {
				t.Fatalf("unexpected admin check error: %+v", err)
			}
		})
	}
}

func TestAdminSetValidate(t *testing.T) {
	alice := weavetest.NewAddress()

	cases := map[string]struct {
		set     AdminSet
		wantErr *errors.Error
	}{
		"valid": {
			set: AdminSet{Owner: weavetest.NewAddress(), Admins: []gamechain.Address{alice}},
		},
		"missing owner": {
			set:     AdminSet{},
			wantErr: errors.ErrEmpty,
		},
		"duplicated admin": {
			set:     AdminSet{Owner: weavetest.NewAddress(), Admins: []gamechain.Address{alice, alice}},
			wantErr: errors.ErrDuplicate,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.set.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestAdminSetPersistence(t *testing.T) {
	set := AdminSet{
		Owner:  weavetest.NewAddress(),
		Admins: []gamechain.Address{weavetest.NewAddress(), weavetest.NewAddress()},
	}
	raw, err := set.Marshal()
	assert.Nil(t, err)

	var got AdminSet
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, set.Owner, got.Owner)
	assert.Equal(t, set.Admins, got.Admins)
}

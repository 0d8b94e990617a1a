package nft

import (
	"testing"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/store"
	"github.com/iov-one/gamechain/weavetest"
	"github.com/iov-one/gamechain/weavetest/assert"
)

func TestMintAssignsIncreasingIDs(t *testing.T) {
	owner := weavetest.NewAddress()
	alice := weavetest.NewAddress()
	bob := weavetest.NewAddress()

	db := store.MemStore()
	ctrl := NewController()
	col, err := ctrl.Create(db, owner, "Space Kill NFT", "SKNFT")
	assert.Nil(t, err)
	assert.Equal(t, CollectionAddress(weavetest.SequenceID(1)), col)

	_, err = ctrl.OwnerOf(db, col, 1)
	assert.IsErr(t, ErrUnknownToken, err)

	recipients := []gamechain.Address{alice, bob, alice}
	for i, to := range recipients {
		id, err := ctrl.Mint(db, col, to)
		assert.Nil(t, err)
		assert.Equal(t, uint64(i+1), id)
	}
	for i, want := range recipients {
		got, err := ctrl.OwnerOf(db, col, uint64(i+1))
		assert.Nil(t, err)
		assert.Equal(t, want, got)
	}
	_, err = ctrl.OwnerOf(db, col, 4)
	assert.IsErr(t, ErrUnknownToken, err)

	n, err := ctrl.BalanceOf(db, col, alice)
	assert.Nil(t, err)
	assert.Equal(t, 2, n)
	n, err = ctrl.BalanceOf(db, col, owner)
	assert.Nil(t, err)
	assert.Equal(t, 0, n)

	// A second collection numbers its items independently.
	other, err := ctrl.Create(db, owner, "Other", "OTH")
	assert.Nil(t, err)
	id, err := ctrl.Mint(db, other, bob)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), id)
	n, err = ctrl.BalanceOf(db, col, bob)
	assert.Nil(t, err)
	assert.Equal(t, 1, n)

	_, err = ctrl.Mint(db, weavetest.NewAddress(), bob)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestTransfer(t *testing.T) {
	owner := weavetest.NewAddress()
	alice := weavetest.NewAddress()
	bob := weavetest.NewAddress()

	db := store.MemStore()
	ctrl := NewController()
	col, err := ctrl.Create(db, owner, "Space Kill NFT", "SKNFT")
	assert.Nil(t, err)
	id, err := ctrl.Mint(db, col, alice)
	assert.Nil(t, err)

	assert.IsErr(t, errors.ErrUnauthorized, ctrl.Transfer(db, col, id, bob, bob))
	assert.IsErr(t, ErrUnknownToken, ctrl.Transfer(db, col, id+1, alice, bob))

	assert.Nil(t, ctrl.Transfer(db, col, id, alice, bob))
	got, err := ctrl.OwnerOf(db, col, id)
	assert.Nil(t, err)
	assert.Equal(t, bob, got)

	n, err := ctrl.BalanceOf(db, col, alice)
	assert.Nil(t, err)
	assert.Equal(t, 0, n)
	n, err = ctrl.BalanceOf(db, col, bob)
	assert.Nil(t, err)
	assert.Equal(t, 1, n)

	// The previous owner lost the rights.
	assert.IsErr(t, errors.ErrUnauthorized, ctrl.Transfer(db, col, id, alice, alice))
}

func TestCreateValidation(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	_, err := ctrl.Create(db, weavetest.NewAddress(), "", "SKNFT")
	assert.IsErr(t, errors.ErrEmpty, err)
	_, err = ctrl.Create(db, weavetest.NewAddress(), "Space Kill NFT", "sk")
	assert.IsErr(t, errors.ErrInput, err)
	_, err = ctrl.Create(db, nil, "Space Kill NFT", "SKNFT")
	assert.IsErr(t, errors.ErrEmpty, err)
}

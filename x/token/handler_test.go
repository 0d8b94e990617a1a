package token

import (
	"context"
	"testing"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/amount"
	"github.com/iov-one/gamechain/app"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/store"
	"github.com/iov-one/gamechain/weavetest"
	"github.com/iov-one/gamechain/weavetest/assert"
	"github.com/iov-one/gamechain/x/admin"
)

func TestCreateHandler(t *testing.T) {
	alice := weavetest.NewAddress()

	cases := map[string]struct {
		signer       gamechain.Address
		msg          gamechain.Msg
		wantCheckErr *errors.Error
		wantErr      *errors.Error
	}{
		"fungible token": {
			signer: alice,
			msg:    &CreateMsg{Name: "Space Kill King", Symbol: "SKS"},
		},
		"governance token": {
			signer: alice,
			msg:    &CreateMsg{Name: " Space Kill King", Symbol: "SKK", MaxSupply: amount.MustParse("1000000000000000000000000000")},
		},
		"anonymous caller": {
			msg:          &CreateMsg{Name: "Space Kill King", Symbol: "SKS"},
			wantCheckErr: errors.ErrUnauthorized,
			wantErr:      errors.ErrUnauthorized,
		},
		"invalid symbol": {
			signer:       alice,
			msg:          &CreateMsg{Name: "Space Kill King", Symbol: "s"},
			wantCheckErr: errors.ErrInput,
			wantErr:      errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			rt := app.NewRouter()
			RegisterRoutes(rt, &weavetest.Auth{Signer: tc.signer}, NewController())

			tx := &weavetest.Tx{Msg: tc.msg}
			if _, err := rt.Check(context.Background(), db.CacheWrap(), tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			res, err := rt.Deliver(context.Background(), db, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			tok, err := NewController().Token(db, res.Data)
			assert.Nil(t, err)
			assert.Equal(t, alice, tok.Owner)
		})
	}
}

func TestMintHandler(t *testing.T) {
	owner := weavetest.NewAddress()
	minter := weavetest.NewAddress()
	stranger := weavetest.NewAddress()

	cases := map[string]struct {
		adminMint bool
		signer    gamechain.Address
		wantErr   *errors.Error
		wantBal   string
	}{
		"anyone can mint an open token": {
			signer:  stranger,
			wantBal: "500",
		},
		"admin can mint a restricted token": {
			adminMint: true,
			signer:    minter,
			wantBal:   "500",
		},
		"owner must be enabled to mint a restricted token": {
			adminMint: true,
			signer:    owner,
			wantErr:   errors.ErrUnauthorized,
			wantBal:   "0",
		},
		"stranger cannot mint a restricted token": {
			adminMint: true,
			signer:    stranger,
			wantErr:   errors.ErrUnauthorized,
			wantBal:   "0",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			tok, err := ctrl.Create(db, owner, Params{Name: "Space Kill King", Symbol: "SKS", AdminMint: tc.adminMint})
			assert.Nil(t, err)
			assert.Nil(t, admin.NewRegistry().EnableAdmin(db, tok, minter))

			rt := app.NewRouter()
			RegisterRoutes(rt, &weavetest.Auth{Signer: tc.signer}, ctrl)
			tx := &weavetest.Tx{Msg: &MintMsg{Token: tok, Recipient: stranger, Amount: amount.New(500)}}
			if _, err := rt.Deliver(context.Background(), db, tx); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			assertBalance(t, ctrl, db, tok, stranger, tc.wantBal)
			assertSupply(t, ctrl, db, tok, tc.wantBal)
		})
	}
}

func TestTransferHandler(t *testing.T) {
	alice := weavetest.NewAddress()
	bob := weavetest.NewAddress()

	db := store.MemStore()
	ctrl := NewController()
	tok, err := ctrl.Create(db, alice, Params{Name: "Space Kill King", Symbol: "SKS"})
	assert.Nil(t, err)
	assert.Nil(t, ctrl.Mint(db, tok, alice, amount.New(1000)))

	cases := map[string]struct {
		signer  gamechain.Address
		msg     gamechain.Msg
		wantErr *errors.Error
	}{
		"caller sends own funds": {
			signer: alice,
			msg:    &TransferMsg{Token: tok, Destination: bob, Amount: amount.New(10)},
		},
		"insufficient balance": {
			signer:  bob,
			msg:     &TransferMsg{Token: tok, Destination: alice, Amount: amount.New(10000)},
			wantErr: errors.ErrInsufficientAmount,
		},
		"zero amount": {
			signer:  alice,
			msg:     &TransferMsg{Token: tok, Destination: bob},
			wantErr: errors.ErrAmount,
		},
		"anonymous": {
			msg:     &TransferMsg{Token: tok, Destination: bob, Amount: amount.New(10)},
			wantErr: errors.ErrUnauthorized,
		},
		"unknown token": {
			signer:  alice,
			msg:     &TransferMsg{Token: weavetest.NewAddress(), Destination: bob, Amount: amount.New(10)},
			wantErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			cache := db.CacheWrap()
			rt := app.NewRouter()
			RegisterRoutes(rt, &weavetest.Auth{Signer: tc.signer}, ctrl)

			_, err := rt.Deliver(context.Background(), cache, &weavetest.Tx{Msg: tc.msg})
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assertBalance(t, ctrl, cache, tok, alice, "990")
				assertBalance(t, ctrl, cache, tok, bob, "10")
			}
			cache.Discard()
		})
	}
}

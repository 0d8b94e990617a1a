package nft

import (
	"context"
	"testing"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/app"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/orm"
	"github.com/iov-one/gamechain/store"
	"github.com/iov-one/gamechain/weavetest"
	"github.com/iov-one/gamechain/weavetest/assert"
	"github.com/iov-one/gamechain/x/admin"
)

func TestMintHandler(t *testing.T) {
	owner := weavetest.NewAddress()
	minter := weavetest.NewAddress()
	player := weavetest.NewAddress()

	cases := map[string]struct {
		signer  gamechain.Address
		enable  []gamechain.Address
		wantErr *errors.Error
	}{
		"admin mints": {
			signer: minter,
			enable: []gamechain.Address{minter},
		},
		"owner enabled as admin mints": {
			signer: owner,
			enable: []gamechain.Address{owner},
		},
		"owner without admin rights": {
			signer:  owner,
			wantErr: errors.ErrUnauthorized,
		},
		"player cannot mint": {
			signer:  player,
			enable:  []gamechain.Address{minter},
			wantErr: errors.ErrUnauthorized,
		},
		"anonymous cannot mint": {
			enable:  []gamechain.Address{minter},
			wantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			col, err := ctrl.Create(db, owner, "Space Kill NFT", "SKNFT")
			assert.Nil(t, err)
			for _, a := range tc.enable {
				assert.Nil(t, admin.NewRegistry().EnableAdmin(db, col, a))
			}

			rt := app.NewRouter()
			RegisterRoutes(rt, &weavetest.Auth{Signer: tc.signer})
			tx := &weavetest.Tx{Msg: &MintMsg{Collection: col, Recipient: player}}

			if _, err := rt.Check(context.Background(), db.CacheWrap(), tx); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			res, err := rt.Deliver(context.Background(), db, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}
			if tc.wantErr != nil {
				_, err := ctrl.OwnerOf(db, col, 1)
				assert.IsErr(t, ErrUnknownToken, err)
				return
			}
			assert.Equal(t, uint64(1), orm.DecodeSequence(res.Data))
			got, err := ctrl.OwnerOf(db, col, 1)
			assert.Nil(t, err)
			assert.Equal(t, player, got)
		})
	}
}

func TestCreateAndTransferHandlers(t *testing.T) {
	owner := weavetest.NewAddress()
	player := weavetest.NewAddress()
	friend := weavetest.NewAddress()

	db := store.MemStore()
	ctrl := NewController()
	auth := &weavetest.CtxAuth{Key: "auth"}
	rt := app.NewRouter()
	RegisterRoutes(rt, auth)
	admin.RegisterRoutes(rt, auth)

	ownerCtx := auth.SetAddresses(context.Background(), owner)
	res, err := rt.Deliver(ownerCtx, db, &weavetest.Tx{Msg: &CreateMsg{Name: "Space Kill NFT", Symbol: "SKNFT"}})
	assert.Nil(t, err)
	col := gamechain.Address(res.Data)

	_, err = rt.Deliver(ownerCtx, db, &weavetest.Tx{Msg: &admin.EnableAdminMsg{Contract: col, Account: owner}})
	assert.Nil(t, err)
	_, err = rt.Deliver(ownerCtx, db, &weavetest.Tx{Msg: &MintMsg{Collection: col, Recipient: player}})
	assert.Nil(t, err)

	transfer := &weavetest.Tx{Msg: &TransferMsg{Collection: col, ID: 1, Recipient: friend}}
	_, err = rt.Check(ownerCtx, db.CacheWrap(), transfer)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = rt.Deliver(ownerCtx, db, transfer)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	playerCtx := auth.SetAddresses(context.Background(), player)
	_, err = rt.Check(playerCtx, db.CacheWrap(), transfer)
	assert.Nil(t, err)
	_, err = rt.Deliver(playerCtx, db, transfer)
	assert.Nil(t, err)

	got, err := ctrl.OwnerOf(db, col, 1)
	assert.Nil(t, err)
	assert.Equal(t, friend, got)

	missing := &weavetest.Tx{Msg: &TransferMsg{Collection: col, ID: 2, Recipient: friend}}
	_, err = rt.Deliver(playerCtx, db, missing)
	assert.IsErr(t, ErrUnknownToken, err)
}

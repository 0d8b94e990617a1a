package vault

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
	"github.com/iov-one/gamechain/x/token"
)

func TestWithdrawHandler(t *testing.T) {
	owner := weavetest.NewAddress()
	operator := weavetest.NewAddress()
	player := weavetest.NewAddress()

	cases := map[string]struct {
		signer        gamechain.Address
		amount        amount.Amount
		wantErr       *errors.Error
		wantVault     string
		wantRecipient string
	}{
		"admin withdraws": {
			signer:        operator,
			amount:        amount.New(400),
			wantVault:     "600",
			wantRecipient: "400",
		},
		"admin withdraws everything": {
			signer:        operator,
			amount:        amount.New(1000),
			wantVault:     "0",
			wantRecipient: "1000",
		},
		"owner is not an admin": {
			signer:        owner,
			amount:        amount.New(400),
			wantErr:       errors.ErrUnauthorized,
			wantVault:     "1000",
			wantRecipient: "0",
		},
		"player cannot withdraw": {
			signer:        player,
			amount:        amount.New(400),
			wantErr:       errors.ErrUnauthorized,
			wantVault:     "1000",
			wantRecipient: "0",
		},
		"more than the vault holds": {
			signer:        operator,
			amount:        amount.New(1001),
			wantErr:       errors.ErrInsufficientAmount,
			wantVault:     "1000",
			wantRecipient: "0",
		},
		"zero amount": {
			signer:        operator,
			wantErr:       errors.ErrAmount,
			wantVault:     "1000",
			wantRecipient: "0",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			tokens := token.NewController()
			tok, err := tokens.Create(db, owner, token.Params{Name: "Space Kill King", Symbol: "SKS"})
			assert.Nil(t, err)

			auth := &weavetest.CtxAuth{Key: "auth"}
			rt := app.NewRouter()
			RegisterRoutes(rt, auth, tokens)

			ownerCtx := auth.SetAddresses(context.Background(), owner)
			res, err := rt.Deliver(ownerCtx, db, &weavetest.Tx{Msg: &CreateMsg{}})
			assert.Nil(t, err)
			v := gamechain.Address(res.Data)
			assert.Nil(t, admin.NewRegistry().EnableAdmin(db, v, operator))
			assert.Nil(t, tokens.Mint(db, tok, v, amount.New(1000)))

			ctx := auth.SetAddresses(context.Background(), tc.signer)
			tx := &weavetest.Tx{Msg: &WithdrawMsg{Vault: v, Token: tok, Recipient: player, Amount: tc.amount}}
			if _, err := rt.Check(ctx, db.CacheWrap(), tx); !tc.wantErr.Is(err) && !errors.ErrInsufficientAmount.Is(tc.wantErr) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache := db.CacheWrap()
			if _, err := rt.Deliver(ctx, cache, tx); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Nil(t, cache.Write())
			} else {
				cache.Discard()
			}

			got, err := tokens.Balance(db, tok, v)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantVault, got.String())
			got, err = tokens.Balance(db, tok, player)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantRecipient, got.String())
		})
	}
}

func TestCreateHandlerRequiresCaller(t *testing.T) {
	rt := app.NewRouter()
	RegisterRoutes(rt, &weavetest.Auth{}, token.NewController())
	_, err := rt.Deliver(context.Background(), store.MemStore(), &weavetest.Tx{Msg: &CreateMsg{}})
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

package x

import (
	"context"
	"testing"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/weavetest"
	"github.com/iov-one/gamechain/weavetest/assert"
)

func TestAuth(t *testing.T) {
	a := weavetest.NewAddress()
	b := weavetest.NewAddress()
	c := weavetest.NewAddress()

	ctx1 := &weavetest.CtxAuth{Key: "foo"}
	ctx2 := &weavetest.CtxAuth{Key: "bar"}

	cases := map[string]struct {
		ctx          gamechain.Context
		auth         Authenticator
		caller       gamechain.Address
		wantInCtx    gamechain.Address
		wantNotInCtx gamechain.Address
		wantAll      []gamechain.Address
	}{
		"empty context": {
			ctx:          context.Background(),
			auth:         &weavetest.Auth{},
			wantNotInCtx: b,
		},
		"signer a": {
			ctx:          context.Background(),
			auth:         &weavetest.Auth{Signer: a},
			caller:       a,
			wantInCtx:    a,
			wantNotInCtx: b,
			wantAll:      []gamechain.Address{a},
		},
		"chained authenticators keep the order": {
			ctx: context.Background(),
			auth: ChainAuth(
				&weavetest.Auth{Signer: b},
				&weavetest.Auth{Signer: a}),
			caller:       b,
			wantInCtx:    a,
			wantNotInCtx: c,
			wantAll:      []gamechain.Address{b, a},
		},
		"chained authenticators report duplicates once": {
			ctx: context.Background(),
			auth: ChainAuth(
				&weavetest.Auth{Signer: a},
				&weavetest.Auth{Signers: []gamechain.Address{a, b}}),
			caller:  a,
			wantAll: []gamechain.Address{a, b},
		},
		"ctxAuth checks what is set by same key": {
			ctx:          ctx1.SetAddresses(context.Background(), a, b),
			auth:         ctx1,
			caller:       a,
			wantInCtx:    b,
			wantNotInCtx: c,
			wantAll:      []gamechain.Address{a, b},
		},
		"ctxAuth with different key sees nothing": {
			ctx:          ctx1.SetAddresses(context.Background(), a, b),
			auth:         ctx2,
			wantNotInCtx: a,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.caller, Caller(tc.ctx, tc.auth))
			if tc.wantInCtx != nil && !tc.auth.HasAddress(tc.ctx, tc.wantInCtx) {
				t.Fatal("address that was expected in context not found")
			}
			if tc.wantNotInCtx != nil && tc.auth.HasAddress(tc.ctx, tc.wantNotInCtx) {
				t.Fatal("address that was expected not to be in context found")
			}

			all := tc.auth.GetAddresses(tc.ctx)
			assert.Equal(t, tc.wantAll, all)
			if !HasAllAddresses(tc.ctx, tc.auth, all) {
				t.Fatal("not all addresses are authorized")
			}
			if !HasNAddresses(tc.ctx, tc.auth, append(all, c), len(all)) {
				t.Fatal("threshold not reached")
			}
		})
	}
}

func TestRequireCaller(t *testing.T) {
	alice := weavetest.NewAddress()
	bob := weavetest.NewAddress()

	got, err := RequireCaller(context.Background(), &weavetest.Auth{Signer: alice, Signers: []gamechain.Address{bob}})
	assert.Nil(t, err)
	assert.Equal(t, alice, got)

	_, err = RequireCaller(context.Background(), &weavetest.Auth{})
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

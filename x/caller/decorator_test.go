package caller

import (
	"context"
	"testing"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/store"
	"github.com/iov-one/gamechain/weavetest"
	"github.com/iov-one/gamechain/weavetest/assert"
)

// authCapture remembers the addresses seen by the handler.
type authCapture struct {
	weavetest.Handler
	seen []gamechain.Address
}

func (a *authCapture) Deliver(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.DeliverResult, error) {
	a.seen = Authenticate{}.GetAddresses(ctx)
	return a.Handler.Deliver(ctx, db, tx)
}

func TestDecorator(t *testing.T) {
	alice := weavetest.NewAddress()

	cases := map[string]struct {
		dec      Decorator
		tx       gamechain.Tx
		wantErr  *errors.Error
		wantSeen []gamechain.Address
	}{
		"caller is passed to the handler": {
			dec:      NewDecorator(),
			tx:       &weavetest.Tx{Caller: alice},
			wantSeen: []gamechain.Address{alice},
		},
		"missing caller is rejected": {
			dec:     NewDecorator(),
			tx:      &weavetest.Tx{},
			wantErr: errors.ErrUnauthorized,
		},
		"missing caller is allowed when anonymous calls are": {
			dec: NewDecorator().AllowAnonymous(),
			tx:  &weavetest.Tx{},
		},
		"malformed caller is rejected": {
			dec:     NewDecorator().AllowAnonymous(),
			tx:      &weavetest.Tx{Caller: gamechain.Address{1, 2, 3}},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			h := &authCapture{}
			_, err := tc.dec.Deliver(context.Background(), store.MemStore(), tc.tx, h)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				assert.Equal(t, 0, h.CallCount())
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.wantSeen, h.seen)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	alice := weavetest.NewAddress()
	bob := weavetest.NewAddress()

	ctx := withCaller(context.Background(), alice)
	auth := Authenticate{}
	assert.Equal(t, true, auth.HasAddress(ctx, alice))
	assert.Equal(t, false, auth.HasAddress(ctx, bob))
	assert.Equal(t, false, auth.HasAddress(context.Background(), alice))
	assert.Equal(t, 0, len(auth.GetAddresses(context.Background())))
}

func TestTxEnvelope(t *testing.T) {
	alice := weavetest.NewAddress()
	msg := &weavetest.Msg{RoutePath: "test/path"}
	tx := NewTx(alice, msg)

	h := &authCapture{}
	_, err := NewDecorator().Deliver(context.Background(), store.MemStore(), tx, h)
	assert.Nil(t, err)
	assert.Equal(t, []gamechain.Address{alice}, h.seen)
	assert.Equal(t, "test/path", gamechain.GetPath(tx))
}

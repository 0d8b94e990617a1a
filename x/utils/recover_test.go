package utils

import (
	"context"
	"testing"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/store"
	"github.com/iov-one/gamechain/weavetest"
	"github.com/iov-one/gamechain/weavetest/assert"
)

func TestRecovery(t *testing.T) {
	h := weavetest.PanicHandler{Value: "boom"}
	d := weavetest.Decorate(h, NewRecovery())
	kv := store.MemStore()
	tx := &weavetest.Tx{}

	_, err := d.Check(context.Background(), kv, tx)
	assert.IsErr(t, errors.ErrPanic, err)

	_, err = d.Deliver(context.Background(), kv, tx)
	assert.IsErr(t, errors.ErrPanic, err)
}

func TestLoggingPassesResult(t *testing.T) {
	h := &weavetest.Handler{
		DeliverResult: gamechain.DeliverResult{Log: "minted"},
	}
	d := weavetest.Decorate(h, NewLogging())

	res, err := d.Deliver(context.Background(), store.MemStore(), &weavetest.Tx{})
	assert.Nil(t, err)
	assert.Equal(t, "minted", res.Log)

	h.DeliverErr = errors.ErrUnauthorized
	_, err = d.Deliver(context.Background(), store.MemStore(), &weavetest.Tx{})
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

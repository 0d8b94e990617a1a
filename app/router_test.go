package app

import (
	"context"
	"testing"

	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/store"
	"github.com/iov-one/gamechain/weavetest"
	"github.com/iov-one/gamechain/weavetest/assert"
)

func TestRouter(t *testing.T) {
	r := NewRouter()

	good := &weavetest.Handler{}
	bad := &weavetest.Handler{
		CheckErr:   errors.ErrUnauthorized,
		DeliverErr: errors.ErrUnauthorized,
	}
	r.Handle(&weavetest.Msg{RoutePath: "test/good"}, good)
	r.Handle(&weavetest.Msg{RoutePath: "test/bad"}, bad)

	assert.Panics(t, func() { r.Handle(&weavetest.Msg{RoutePath: "test/good"}, good) })
	assert.Panics(t, func() { r.Handle(&weavetest.Msg{RoutePath: "test:good"}, good) })

	ctx := context.Background()
	db := store.MemStore()

	_, err := r.Check(ctx, db, &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/good"}})
	assert.Nil(t, err)
	_, err = r.Deliver(ctx, db, &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/good"}})
	assert.Nil(t, err)
	assert.Equal(t, 2, good.CallCount())

	_, err = r.Deliver(ctx, db, &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/bad"}})
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, 1, bad.CallCount())

	_, err = r.Check(ctx, db, &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/missing"}})
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = r.Deliver(ctx, db, &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/missing"}})
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = r.Deliver(ctx, db, &weavetest.Tx{})
	assert.IsErr(t, errors.ErrMsg, err)
	_, err = r.Deliver(ctx, db, &weavetest.Tx{Err: errors.ErrType})
	assert.IsErr(t, errors.ErrType, err)

	assert.Equal(t, 2, good.CallCount())
}

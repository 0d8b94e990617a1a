package utils

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
)

// Recovery turns a panic of any decorator or handler below it into an
// ErrPanic error, so a faulty contract fails a single call instead of the
// whole process.
type Recovery struct{}

var _ gamechain.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx gamechain.Context, store gamechain.KVStore, tx gamechain.Tx, next gamechain.Checker) (_ *gamechain.CheckResult, err error) {
	defer recoverCall(ctx, &err)
	return next.Check(ctx, store, tx)
}

func (Recovery) Deliver(ctx gamechain.Context, store gamechain.KVStore, tx gamechain.Tx, next gamechain.Deliverer) (_ *gamechain.DeliverResult, err error) {
	defer recoverCall(ctx, &err)
	return next.Deliver(ctx, store, tx)
}

// recoverCall must be deferred directly.
func recoverCall(ctx gamechain.Context, err *error) {
	if r := recover(); r != nil {
		*err = errors.Wrapf(errors.ErrPanic, "%v", r)
		gamechain.GetLogger(ctx).Error("Call panicked", "panic", r)
	}
}

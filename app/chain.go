package app

import (
	"reflect"

	"github.com/iov-one/gamechain"
)

// Decorators is a stack of decorators waiting for the final Handler.
type Decorators struct {
	chain []gamechain.Decorator
}

/*
ChainDecorators builds a stack of decorators. Calling WithHandler on the
result returns a Handler that passes every call through the decorators, in
the given order, before reaching the final handler.

  app.ChainDecorators(
    utils.NewLogging(),
    utils.NewRecovery(),
    caller.NewDecorator(),
    utils.NewSavepoint().OnDeliver(),
  ).WithHandler(
    app.NewRouter(),
  )

Nil decorators are skipped, so optional decorators can be passed
unconditionally.
*/
func ChainDecorators(chain ...gamechain.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain returns a new stack with the given decorators appended.
func (d Decorators) Chain(chain ...gamechain.Decorator) Decorators {
	all := make([]gamechain.Decorator, 0, len(d.chain)+len(chain))
	all = append(all, d.chain...)
	for _, dec := range chain {
		if !isNilDecorator(dec) {
			all = append(all, dec)
		}
	}
	return Decorators{chain: all}
}

func isNilDecorator(d gamechain.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler resolves the stack into a single Handler.
func (d Decorators) WithHandler(h gamechain.Handler) gamechain.Handler {
	// The first decorator must be the outermost one.
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step runs a single decorator around the rest of the stack.
type step struct {
	d    gamechain.Decorator
	next gamechain.Handler
}

var _ gamechain.Handler = step{}

func (s step) Check(ctx gamechain.Context, store gamechain.KVStore, tx gamechain.Tx) (*gamechain.CheckResult, error) {
	return s.d.Check(ctx, store, tx, s.next)
}

func (s step) Deliver(ctx gamechain.Context, store gamechain.KVStore, tx gamechain.Tx) (*gamechain.DeliverResult, error) {
	return s.d.Deliver(ctx, store, tx, s.next)
}

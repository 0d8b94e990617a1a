package caller

import (
	"context"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/x"
)

type contextKey int // local to the caller module

const (
	contextKeyCaller contextKey = iota
)

// withCaller is a private method, as only this module
// can set the caller
func withCaller(ctx gamechain.Context, caller gamechain.Address) gamechain.Context {
	return context.WithValue(ctx, contextKeyCaller, caller)
}

// Authenticate reports the caller set by the Decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetAddresses returns the caller of the current Context.
// May be empty
func (a Authenticate) GetAddresses(ctx gamechain.Context) []gamechain.Address {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeyCaller).(gamechain.Address)
	if val == nil {
		return nil
	}
	return []gamechain.Address{val}
}

// HasAddress returns true if addr is the caller of the current Context.
func (a Authenticate) HasAddress(ctx gamechain.Context, addr gamechain.Address) bool {
	val, _ := ctx.Value(contextKeyCaller).(gamechain.Address)
	return val != nil && val.Equals(addr)
}

package weavetest

import (
	"context"
	"fmt"

	"github.com/iov-one/gamechain"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced addresses.
// You can use either Signer or Signers (or both) attributes to reference
// addresses. Signer is always reported first.
type Auth struct {
	// Signer represents the direct caller.
	Signer gamechain.Address

	// Signers represents additional authorized addresses.
	Signers []gamechain.Address
}

func (a *Auth) GetAddresses(gamechain.Context) []gamechain.Address {
	if a.Signer != nil {
		return append([]gamechain.Address{a.Signer}, a.Signers...)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx gamechain.Context, addr gamechain.Address) bool {
	for _, s := range a.GetAddresses(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve addresses.
type CtxAuth struct {
	// Key used to set and retrieve addresses from the context. For
	// convinience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetAddresses(ctx gamechain.Context, addrs ...gamechain.Address) gamechain.Context {
	return context.WithValue(ctx, a.Key, addrs)
}

func (a *CtxAuth) GetAddresses(ctx gamechain.Context) []gamechain.Address {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	addrs, ok := val.([]gamechain.Address)
	if !ok {
		panic(fmt.Sprintf("instead of []gamechain.Address got %T", val))
	}
	return addrs
}

func (a *CtxAuth) HasAddress(ctx gamechain.Context, addr gamechain.Address) bool {
	for _, s := range a.GetAddresses(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}

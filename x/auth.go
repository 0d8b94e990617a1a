/*
Package x contains the interfaces shared by all contracts. Every contract
lives in its own subpackage.
*/
package x

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system,
// rather than hard-coding x/caller for all contracts.
type Authenticator interface {
	// GetAddresses reveals all addresses the current call is
	// authorized by. The first one is the direct caller.
	GetAddresses(gamechain.Context) []gamechain.Address
	// HasAddress checks if the call is authorized by this address
	HasAddress(gamechain.Context, gamechain.Address) bool
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetAddresses combines all addresses from all Authenticators.
// Duplicates are reported once, the order is preserved.
func (m MultiAuth) GetAddresses(ctx gamechain.Context) []gamechain.Address {
	var res []gamechain.Address
	for _, impl := range m.impls {
		for _, addr := range impl.GetAddresses(ctx) {
			if !contains(res, addr) {
				res = append(res, addr)
			}
		}
	}
	return res
}

// HasAddress returns true iff any Authenticator support this
func (m MultiAuth) HasAddress(ctx gamechain.Context, addr gamechain.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// Caller returns the address of the direct caller, or nil if the call is
// anonymous.
func Caller(ctx gamechain.Context, auth Authenticator) gamechain.Address {
	addrs := auth.GetAddresses(ctx)
	if len(addrs) == 0 {
		return nil
	}
	return addrs[0]
}

// RequireCaller returns the address of the direct caller. Anonymous calls
// fail with ErrUnauthorized.
func RequireCaller(ctx gamechain.Context, auth Authenticator) (gamechain.Address, error) {
	caller := Caller(ctx, auth)
	if caller == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "caller required")
	}
	return caller, nil
}

// HasAllAddresses returns true if all elements in required are
// also in context.
func HasAllAddresses(ctx gamechain.Context, auth Authenticator, required []gamechain.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}

// HasNAddresses returns true if at least n elements in requested are
// also in context.
func HasNAddresses(ctx gamechain.Context, auth Authenticator, required []gamechain.Address, n int) bool {
	if n <= 0 {
		return true
	}
	for _, r := range required {
		if auth.HasAddress(ctx, r) {
			n--
			if n == 0 {
				return true
			}
		}
	}
	return false
}

func contains(addrs []gamechain.Address, addr gamechain.Address) bool {
	for _, a := range addrs {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}

package weavetest

import "github.com/iov-one/gamechain"

// Tx represents a single call.
type Tx struct {
	// Msg is the message that is to be processed by this call.
	Msg gamechain.Msg
	// Caller is the account that sends the call.
	Caller gamechain.Address
	// Err if set is returned by any method call.
	Err error
}

var _ gamechain.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (gamechain.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) GetCaller() gamechain.Address {
	return tx.Caller
}

// Msg represents a message processed within a single call.
type Msg struct {
	// Path returned by the path method, consumed by the router.
	RoutePath string
	// Err if set is returned by the validate method.
	Err error
}

var _ gamechain.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

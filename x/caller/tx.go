package caller

import "github.com/iov-one/gamechain"

// Tx is the envelope of a call: the message and the account that sends
// it.
type Tx struct {
	Msg    gamechain.Msg
	Caller gamechain.Address
}

var _ CallerTx = (*Tx)(nil)

// NewTx returns a call of msg sent by caller.
func NewTx(caller gamechain.Address, msg gamechain.Msg) *Tx {
	return &Tx{Msg: msg, Caller: caller}
}

func (tx *Tx) GetMsg() (gamechain.Msg, error) {
	return tx.Msg, nil
}

func (tx *Tx) GetCaller() gamechain.Address {
	return tx.Caller
}

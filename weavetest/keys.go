package weavetest

import (
	"crypto/ecdsa"
	"encoding/binary"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/iov-one/gamechain"
)

// newKey returns a new secp256k1 private key, as used by externally owned
// accounts.
func newKey() *ecdsa.PrivateKey {
	key, err := crypto.GenerateKey()
	if err != nil {
		panic(err)
	}
	return key
}

// NewAddress returns the account address of a freshly generated key.
// Each call returns a different address.
func NewAddress() gamechain.Address {
	addr := crypto.PubkeyToAddress(newKey().PublicKey)
	return gamechain.Address(addr.Bytes())
}

// NewCondition returns a condition that is unique within the test binary.
func NewCondition() gamechain.Condition {
	return gamechain.NewCondition("test", "seq", SequenceID(atomic.AddUint64(&condSeq, 1)))
}

var condSeq uint64

// SequenceID returns an ID encoded as if it was generated by the bucket
// sequence call.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

package orm

import (
	"testing"

	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/store"
	"github.com/iov-one/gamechain/weavetest/assert"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()
	a := NewSequence("nfts", "one")
	b := NewSequence("nfts", "two")

	latest, err := a.Latest(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), latest)

	v, err := a.NextInt(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), v)

	raw, err := a.NextVal(db)
	assert.Nil(t, err)
	assert.Equal(t, EncodeSequence(2), raw)
	assert.Equal(t, uint64(2), DecodeSequence(raw))

	// sequences do not share state
	v, err = b.NextInt(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), v)

	latest, err = a.Latest(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), latest)
}

func TestValidateSequence(t *testing.T) {
	assert.Nil(t, ValidateSequence(EncodeSequence(7)))
	assert.IsErr(t, errors.ErrEmpty, ValidateSequence(nil))
	assert.IsErr(t, errors.ErrInput, ValidateSequence([]byte{1, 2}))
}

func TestPrefixEnd(t *testing.T) {
	assert.Equal(t, []byte("ab"), prefixEnd([]byte("aa")))
	assert.Equal(t, []byte{0x02}, prefixEnd([]byte{0x01, 0xff}))
	assert.Nil(t, prefixEnd([]byte{0xff, 0xff}))
}

package orm

import (
	"reflect"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
)

// SimpleObj is the Object used by all buckets: a key and the model stored
// under it.
type SimpleObj struct {
	key   []byte
	value CloneableData
}

var _ Object = (*SimpleObj)(nil)

func NewSimpleObj(key []byte, value CloneableData) *SimpleObj {
	return &SimpleObj{key: key, value: value}
}

func (o SimpleObj) Key() []byte {
	return o.key
}

func (o *SimpleObj) SetKey(key []byte) {
	o.key = key
}

func (o SimpleObj) Value() gamechain.Persistent {
	return o.value
}

// Validate requires both a key and a value, and the value to be valid.
func (o SimpleObj) Validate() error {
	switch {
	case len(o.key) == 0:
		return errors.Field("Key", errors.ErrEmpty, "missing key")
	case o.value == nil:
		return errors.Field("Value", errors.ErrEmpty, "missing value")
	}
	return errors.Field("Value", o.value.Validate(), "invalid value")
}

// Clone returns an object with a copy of the key and a zero value of the
// same model type, to load a stored value into.
func (o *SimpleObj) Clone() Object {
	blank := reflect.New(reflect.TypeOf(o.value).Elem()).Interface().(CloneableData)
	var key []byte
	if len(o.key) != 0 {
		key = append(key, o.key...)
	}
	return &SimpleObj{key: key, value: blank}
}

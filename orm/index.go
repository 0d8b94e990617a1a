package orm

import (
	"encoding/binary"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
)

// ErrInvalidIndex is returned when an index specified is invalid
var ErrInvalidIndex = errors.Register(100, "invalid index")

// Index represents a secondary index on some data.
// It is calculated from the main data, so the user doesn't need to
// worry about keeping it in sync.
//
// Every reference is stored under its own key
//    _i.<bucket>_<name>:<len(index)><index><primary key>
// so adding and removing references does not rewrite a shared list.
type Index struct {
	name   string
	prefix []byte
	index  Indexer
	unique bool
}

// NewIndex constructs an index
// Indexer calculates the index for an object
// unique enforces a unique constraint on the index
func NewIndex(name string, indexer Indexer, unique bool) Index {
	return Index{
		name:   name,
		prefix: []byte("_i." + name + ":"),
		index:  indexer,
		unique: unique,
	}
}

// Update handles updating the reference to the object in
// the secondary index.
//
// prev == nil means insert
// save == nil means delete
// both == nil is error
// if both != nil the primary key must be the same
func (i Index) Update(db gamechain.KVStore, key []byte, prev, save Object) error {
	if prev == nil && save == nil {
		return errors.Wrap(errors.ErrHuman, "update requires at least one non-nil object")
	}

	var prevIdx, saveIdx []byte
	var err error
	if prev != nil {
		if prevIdx, err = i.index(prev); err != nil {
			return err
		}
	}
	if save != nil {
		if saveIdx, err = i.index(save); err != nil {
			return err
		}
	}

	if prevIdx != nil && saveIdx != nil && string(prevIdx) == string(saveIdx) {
		return nil
	}
	if prevIdx != nil {
		if err := db.Delete(i.refKey(prevIdx, key)); err != nil {
			return errors.Wrap(errors.ErrDatabase, err.Error())
		}
	}
	if saveIdx == nil {
		return nil
	}
	if i.unique {
		refs, err := i.GetAt(db, saveIdx)
		if err != nil {
			return err
		}
		if len(refs) > 0 {
			return errors.Wrapf(errors.ErrDuplicate, "index %q", i.name)
		}
	}
	if err := db.Set(i.refKey(saveIdx, key), key); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// GetAt returns all primary keys referenced by given index value, in
// ascending order.
func (i Index) GetAt(db gamechain.ReadOnlyKVStore, index []byte) ([][]byte, error) {
	start := i.indexPrefix(index)
	it, err := db.Iterator(start, prefixEnd(start))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	defer it.Close()

	var refs [][]byte
	for it.Valid() {
		refs = append(refs, append([]byte(nil), it.Value()...))
		if err := it.Next(); err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, err.Error())
		}
	}
	return refs, nil
}

func (i Index) indexPrefix(index []byte) []byte {
	out := make([]byte, 0, len(i.prefix)+2+len(index))
	out = append(out, i.prefix...)
	var l [2]byte
	binary.BigEndian.PutUint16(l[:], uint16(len(index)))
	out = append(out, l[:]...)
	return append(out, index...)
}

func (i Index) refKey(index, key []byte) []byte {
	return append(i.indexPrefix(index), key...)
}

// prefixEnd returns the smallest key that is greater than all keys
// starting with prefix. It returns nil if there is no such key.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

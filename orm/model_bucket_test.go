package orm

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/store"
	"github.com/iov-one/gamechain/weavetest/assert"
)

// counter is a minimal model used to exercise buckets.
type counter struct {
	Owner string
	Count uint64
}

func (c *counter) Marshal() ([]byte, error) { return json.Marshal(c) }

func (c *counter) Unmarshal(raw []byte) error { return json.Unmarshal(raw, c) }

func (c *counter) Validate() error {
	if c.Owner == "" {
		return errors.Field("Owner", errors.ErrEmpty, "required")
	}
	return nil
}

func (c *counter) Copy() CloneableData {
	cpy := *c
	return &cpy
}

func ownerIndexer(obj Object) ([]byte, error) {
	c, ok := obj.Value().(*counter)
	if !ok {
		return nil, errors.WithType(errors.ErrType, obj.Value())
	}
	return []byte(c.Owner), nil
}

func newCounterBucket() ModelBucket {
	b := NewBucket("cnts", NewSimpleObj(nil, &counter{})).
		WithIndex("owner", ownerIndexer, false)
	return NewModelBucket(b)
}

func TestModelBucketPutOne(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	assert.Nil(t, b.Put(db, []byte("a"), &counter{Owner: "alice", Count: 3}))

	var got counter
	assert.Nil(t, b.One(db, []byte("a"), &got))
	assert.Equal(t, counter{Owner: "alice", Count: 3}, got)

	assert.IsErr(t, errors.ErrNotFound, b.One(db, []byte("missing"), &got))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("missing")))
	assert.Nil(t, b.Has(db, []byte("a")))
}

func TestModelBucketPutInvalid(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	err := b.Put(db, []byte("a"), &counter{Count: 1})
	assert.FieldError(t, err, "Owner", errors.ErrEmpty)
}

func TestModelBucketDelete(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	assert.Nil(t, b.Put(db, []byte("a"), &counter{Owner: "alice"}))
	assert.Nil(t, b.Delete(db, []byte("a")))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("a")))
	assert.IsErr(t, errors.ErrNotFound, b.Delete(db, []byte("a")))

	keys, err := b.ByIndex(db, "owner", []byte("alice"))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(keys))
}

func TestModelBucketIndexFollowsUpdates(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	assert.Nil(t, b.Put(db, []byte("a"), &counter{Owner: "alice"}))
	assert.Nil(t, b.Put(db, []byte("b"), &counter{Owner: "alice"}))
	assert.Nil(t, b.Put(db, []byte("c"), &counter{Owner: "bob"}))

	keys, err := b.ByIndex(db, "owner", []byte("alice"))
	assert.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b")}, keys)

	// moving an entity changes both references
	assert.Nil(t, b.Put(db, []byte("a"), &counter{Owner: "bob"}))

	keys, err = b.ByIndex(db, "owner", []byte("alice"))
	assert.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("b")}, keys)
	keys, err = b.ByIndex(db, "owner", []byte("bob"))
	assert.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("c")}, keys)

	_, err = b.ByIndex(db, "unknown", []byte("bob"))
	assert.IsErr(t, ErrInvalidIndex, err)
}

func TestUniqueIndex(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("uniq", NewSimpleObj(nil, &counter{})).
		WithIndex("owner", ownerIndexer, true)
	b := NewModelBucket(bucket)

	assert.Nil(t, b.Put(db, []byte("a"), &counter{Owner: "alice"}))
	// same entity can be saved again
	assert.Nil(t, b.Put(db, []byte("a"), &counter{Owner: "alice", Count: 2}))
	err := b.Put(db, []byte("b"), &counter{Owner: "alice"})
	assert.IsErr(t, errors.ErrDuplicate, err)
}

package nft

import (
	"regexp"

	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/orm"
)

const maxNameLength = 64

var isSymbol = regexp.MustCompile(`^[A-Z0-9]{2,12}$`).MatchString

var _ orm.CloneableData = (*Collection)(nil)

func (c *Collection) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	switch n := len(c.Name); {
	case n == 0:
		errs = errors.AppendField(errs, "Name", errors.ErrEmpty)
	case n > maxNameLength:
		errs = errors.AppendField(errs, "Name", errors.Wrapf(errors.ErrInput, "longer than %d", maxNameLength))
	}
	if !isSymbol(c.Symbol) {
		errs = errors.AppendField(errs, "Symbol", errors.Wrapf(errors.ErrInput, "invalid symbol %q", c.Symbol))
	}
	return errs
}

func (c *Collection) Copy() orm.CloneableData {
	return &Collection{
		Owner:  c.Owner.Clone(),
		Name:   c.Name,
		Symbol: c.Symbol,
	}
}

var _ orm.CloneableData = (*Item)(nil)

func (i *Item) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Collection", i.Collection.Validate())
	if i.ID == 0 {
		errs = errors.AppendField(errs, "ID", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Owner", i.Owner.Validate())
	return errs
}

func (i *Item) Copy() orm.CloneableData {
	return &Item{
		Collection: i.Collection.Clone(),
		ID:         i.ID,
		Owner:      i.Owner.Clone(),
	}
}

// NewCollectionBucket returns a bucket for collections, keyed by the
// collection address.
func NewCollectionBucket() orm.ModelBucket {
	b := orm.NewBucket("collection", orm.NewSimpleObj(nil, &Collection{}))
	return orm.NewModelBucket(b)
}

func collectionSequence() orm.Sequence {
	return orm.NewSequence("collection", orm.SeqID)
}

// CollectionAddress returns the address of the collection created with
// given sequence value.
func CollectionAddress(seq []byte) gamechain.Address {
	return gamechain.NewCondition("nft", "seq", seq).Address()
}

const itemBucketName = "nft_item"

// NewItemBucket returns a bucket for items, keyed by ItemKey and indexed
// by the collection and owner pair.
func NewItemBucket() orm.ModelBucket {
	b := orm.NewBucket(itemBucketName, orm.NewSimpleObj(nil, &Item{})).
		WithIndex("owner", ownerIndexer, false)
	return orm.NewModelBucket(b)
}

// itemSequence provides the ids of a single collection.
func itemSequence(collection gamechain.Address) orm.Sequence {
	return orm.NewSequence(itemBucketName, collection.String())
}

// ItemKey returns the key under which an item of a collection is stored.
func ItemKey(collection gamechain.Address, id uint64) []byte {
	return append(append([]byte(nil), collection...), orm.EncodeSequence(id)...)
}

func ownerIndexer(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	i, ok := obj.Value().(*Item)
	if !ok {
		return nil, errors.WithType(errors.ErrModel, obj.Value())
	}
	return ownerKey(i.Collection, i.Owner), nil
}

func ownerKey(collection, owner gamechain.Address) []byte {
	return append(append([]byte(nil), collection...), owner...)
}

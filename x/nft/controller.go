package nft

import (
	"github.com/iov-one/gamechain"
	"github.com/iov-one/gamechain/errors"
	"github.com/iov-one/gamechain/orm"
	"github.com/iov-one/gamechain/x/admin"
)

// Controller keeps collections and their items.
type Controller struct {
	collections orm.ModelBucket
	items       orm.ModelBucket
	registry    admin.Registry
}

// NewController returns a controller working on the default buckets.
func NewController() Controller {
	return Controller{
		collections: NewCollectionBucket(),
		items:       NewItemBucket(),
		registry:    admin.NewRegistry(),
	}
}

// Create stores a new collection owned by owner and returns its address.
// The collection is registered with the admin registry; until the owner
// enables an admin nobody can mint.
func (c Controller) Create(db gamechain.KVStore, owner gamechain.Address, name, symbol string) (gamechain.Address, error) {
	col := &Collection{Owner: owner, Name: name, Symbol: symbol}
	if err := col.Validate(); err != nil {
		return nil, errors.Wrap(err, "collection")
	}
	seq := collectionSequence()
	id, err := seq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "collection sequence")
	}
	addr := CollectionAddress(id)
	if err := c.collections.Put(db, addr, col); err != nil {
		return nil, err
	}
	if err := c.registry.Register(db, addr, owner); err != nil {
		return nil, err
	}
	return addr, nil
}

// Collection returns the collection stored under given address.
func (c Controller) Collection(db gamechain.ReadOnlyKVStore, addr gamechain.Address) (*Collection, error) {
	var col Collection
	if err := c.collections.One(db, addr, &col); err != nil {
		return nil, errors.Wrapf(err, "collection %s", addr)
	}
	return &col, nil
}

// Mint creates the next item of the collection, owned by to. Ids start
// at 1 and are never reused.
func (c Controller) Mint(db gamechain.KVStore, collection, to gamechain.Address) (uint64, error) {
	if _, err := c.Collection(db, collection); err != nil {
		return 0, err
	}
	seq := itemSequence(collection)
	id, err := seq.NextInt(db)
	if err != nil {
		return 0, errors.Wrap(err, "item sequence")
	}
	item := &Item{Collection: collection, ID: id, Owner: to}
	if err := c.items.Put(db, ItemKey(collection, id), item); err != nil {
		return 0, err
	}
	return id, nil
}

func (c Controller) item(db gamechain.ReadOnlyKVStore, collection gamechain.Address, id uint64) (*Item, error) {
	var item Item
	switch err := c.items.One(db, ItemKey(collection, id), &item); {
	case err == nil:
		return &item, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrUnknownToken, "token %d", id)
	default:
		return nil, err
	}
}

// OwnerOf returns the owner of the item. It fails with ErrUnknownToken if
// the item was never minted.
func (c Controller) OwnerOf(db gamechain.ReadOnlyKVStore, collection gamechain.Address, id uint64) (gamechain.Address, error) {
	item, err := c.item(db, collection, id)
	if err != nil {
		return nil, err
	}
	return item.Owner, nil
}

// BalanceOf returns the number of items of the collection held by owner.
func (c Controller) BalanceOf(db gamechain.ReadOnlyKVStore, collection, owner gamechain.Address) (int, error) {
	keys, err := c.items.ByIndex(db, "owner", ownerKey(collection, owner))
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// Transfer changes the owner of the item from src to dest. It fails with
// ErrUnauthorized unless src owns the item.
func (c Controller) Transfer(db gamechain.KVStore, collection gamechain.Address, id uint64, src, dest gamechain.Address) error {
	item, err := c.item(db, collection, id)
	if err != nil {
		return err
	}
	if !item.Owner.Equals(src) {
		return errors.Wrapf(errors.ErrUnauthorized, "token %d is not owned by %s", id, src)
	}
	item.Owner = dest
	return c.items.Put(db, ItemKey(collection, id), item)
}

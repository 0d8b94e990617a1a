package nft

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/gamechain"
)

// Collection is a named set of non fungible items.
type Collection struct {
	Owner  gamechain.Address `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Name   string            `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Symbol string            `protobuf:"bytes,3,opt,name=symbol,proto3" json:"symbol,omitempty"`
}

type collectionWire Collection

func (m *collectionWire) Reset()         { *m = collectionWire{} }
func (m *collectionWire) String() string { return proto.CompactTextString(m) }
func (*collectionWire) ProtoMessage()    {}

func (m *Collection) Marshal() ([]byte, error) {
	return proto.Marshal((*collectionWire)(m))
}

func (m *Collection) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*collectionWire)(m))
}

// Item is a single minted token of a collection.
type Item struct {
	Collection gamechain.Address `protobuf:"bytes,1,opt,name=collection,proto3" json:"collection,omitempty"`
	ID         uint64            `protobuf:"varint,2,opt,name=id,proto3" json:"id,omitempty"`
	Owner      gamechain.Address `protobuf:"bytes,3,opt,name=owner,proto3" json:"owner,omitempty"`
}

type itemWire Item

func (m *itemWire) Reset()         { *m = itemWire{} }
func (m *itemWire) String() string { return proto.CompactTextString(m) }
func (*itemWire) ProtoMessage()    {}

func (m *Item) Marshal() ([]byte, error) {
	return proto.Marshal((*itemWire)(m))
}

func (m *Item) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*itemWire)(m))
}

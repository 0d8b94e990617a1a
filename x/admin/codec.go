package admin

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/gamechain"
)

// AdminSet is the list of accounts allowed to perform the privileged
// operations of a single contract instance.
type AdminSet struct {
	// Owner is the controlling identity of the contract. Only the owner
	// can extend the admin list.
	Owner gamechain.Address `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	// Admins are stored in the order they were enabled.
	Admins []gamechain.Address `protobuf:"bytes,2,rep,name=admins,proto3" json:"admins,omitempty"`
}

// adminSetWire is the protobuf representation of AdminSet. It does not
// carry the Marshal method, so encoding uses the protobuf struct tags.
type adminSetWire AdminSet

func (m *adminSetWire) Reset()         { *m = adminSetWire{} }
func (m *adminSetWire) String() string { return proto.CompactTextString(m) }
func (*adminSetWire) ProtoMessage()    {}

func (m *AdminSet) Marshal() ([]byte, error) {
	return proto.Marshal((*adminSetWire)(m))
}

func (m *AdminSet) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*adminSetWire)(m))
}

package vault

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/gamechain"
)

// Vault is a custody contract holding tokens under its own address.
type Vault struct {
	Owner gamechain.Address `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
}

type vaultWire Vault

func (m *vaultWire) Reset()         { *m = vaultWire{} }
func (m *vaultWire) String() string { return proto.CompactTextString(m) }
func (*vaultWire) ProtoMessage()    {}

func (m *Vault) Marshal() ([]byte, error) {
	return proto.Marshal((*vaultWire)(m))
}

func (m *Vault) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*vaultWire)(m))
}

package token

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/gamechain"
)

// Token describes a single fungible token instance.
type Token struct {
	// Owner is the account that created the token.
	Owner    gamechain.Address `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Name     string            `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Symbol   string            `protobuf:"bytes,3,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Decimals uint32            `protobuf:"varint,4,opt,name=decimals,proto3" json:"decimals,omitempty"`
	// MaxSupply is the big endian encoded supply cap. Empty means no cap.
	MaxSupply []byte `protobuf:"bytes,5,opt,name=max_supply,json=maxSupply,proto3" json:"max_supply,omitempty"`
	// TotalSupply is the big endian encoded sum of all balances.
	TotalSupply []byte `protobuf:"bytes,6,opt,name=total_supply,json=totalSupply,proto3" json:"total_supply,omitempty"`
	// AdminMint restricts minting to the admins of the token.
	AdminMint bool `protobuf:"varint,7,opt,name=admin_mint,json=adminMint,proto3" json:"admin_mint,omitempty"`
}

type tokenWire Token

func (m *tokenWire) Reset()         { *m = tokenWire{} }
func (m *tokenWire) String() string { return proto.CompactTextString(m) }
func (*tokenWire) ProtoMessage()    {}

func (m *Token) Marshal() ([]byte, error) {
	return proto.Marshal((*tokenWire)(m))
}

func (m *Token) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*tokenWire)(m))
}

// Balance is the amount of a token held by a single account.
type Balance struct {
	Amount []byte `protobuf:"bytes,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

type balanceWire Balance

func (m *balanceWire) Reset()         { *m = balanceWire{} }
func (m *balanceWire) String() string { return proto.CompactTextString(m) }
func (*balanceWire) ProtoMessage()    {}

func (m *Balance) Marshal() ([]byte, error) {
	return proto.Marshal((*balanceWire)(m))
}

func (m *Balance) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*balanceWire)(m))
}

package token

import (
	"github.com/gogo/protobuf/proto"
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/coin"
)

// Token describes a fungible token contract.
type Token struct {
	Metadata    *hodl.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Name        string         `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Symbol      string         `protobuf:"bytes,3,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Decimals    uint32         `protobuf:"varint,4,opt,name=decimals,proto3" json:"decimals,omitempty"`
	TotalSupply coin.Amount    `protobuf:"bytes,5,opt,name=total_supply,json=totalSupply,proto3,casttype=github.com/hodl4me/hodl/coin.Amount" json:"total_supply"`
}

func (m *Token) Reset()         { *m = Token{} }
func (m *Token) String() string { return proto.CompactTextString(m) }
func (*Token) ProtoMessage()    {}

// Balance is the amount of a token owned by a holder.
type Balance struct {
	Metadata *hodl.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Amount   coin.Amount    `protobuf:"bytes,2,opt,name=amount,proto3,casttype=github.com/hodl4me/hodl/coin.Amount" json:"amount"`
}

func (m *Balance) Reset()         { *m = Balance{} }
func (m *Balance) String() string { return proto.CompactTextString(m) }
func (*Balance) ProtoMessage()    {}

// Allowance is the amount a spender may still transfer on behalf of an
// owner.
type Allowance struct {
	Metadata *hodl.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Amount   coin.Amount    `protobuf:"bytes,2,opt,name=amount,proto3,casttype=github.com/hodl4me/hodl/coin.Amount" json:"amount"`
}

func (m *Allowance) Reset()         { *m = Allowance{} }
func (m *Allowance) String() string { return proto.CompactTextString(m) }
func (*Allowance) ProtoMessage()    {}

// CreateTokenMsg creates a new contract. The initial supply is owned by the
// signer.
type CreateTokenMsg struct {
	Metadata      *hodl.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Name          string         `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Symbol        string         `protobuf:"bytes,3,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Decimals      uint32         `protobuf:"varint,4,opt,name=decimals,proto3" json:"decimals,omitempty"`
	InitialSupply coin.Amount    `protobuf:"bytes,5,opt,name=initial_supply,json=initialSupply,proto3,casttype=github.com/hodl4me/hodl/coin.Amount" json:"initial_supply,omitempty"`
}

func (m *CreateTokenMsg) Reset()         { *m = CreateTokenMsg{} }
func (m *CreateTokenMsg) String() string { return proto.CompactTextString(m) }
func (*CreateTokenMsg) ProtoMessage()    {}

// TransferMsg moves tokens owned by the signer.
type TransferMsg struct {
	Metadata    *hodl.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Token       hodl.Address   `protobuf:"bytes,2,opt,name=token,proto3,casttype=github.com/hodl4me/hodl.Address" json:"token,omitempty"`
	Destination hodl.Address   `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/hodl4me/hodl.Address" json:"destination,omitempty"`
	Amount      coin.Amount    `protobuf:"bytes,4,opt,name=amount,proto3,casttype=github.com/hodl4me/hodl/coin.Amount" json:"amount,omitempty"`
}

func (m *TransferMsg) Reset()         { *m = TransferMsg{} }
func (m *TransferMsg) String() string { return proto.CompactTextString(m) }
func (*TransferMsg) ProtoMessage()    {}

// ApproveMsg sets the allowance of a spender over the signer's tokens.
type ApproveMsg struct {
	Metadata *hodl.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Token    hodl.Address   `protobuf:"bytes,2,opt,name=token,proto3,casttype=github.com/hodl4me/hodl.Address" json:"token,omitempty"`
	Spender  hodl.Address   `protobuf:"bytes,3,opt,name=spender,proto3,casttype=github.com/hodl4me/hodl.Address" json:"spender,omitempty"`
	Amount   coin.Amount    `protobuf:"bytes,4,opt,name=amount,proto3,casttype=github.com/hodl4me/hodl/coin.Amount" json:"amount,omitempty"`
}

func (m *ApproveMsg) Reset()         { *m = ApproveMsg{} }
func (m *ApproveMsg) String() string { return proto.CompactTextString(m) }
func (*ApproveMsg) ProtoMessage()    {}

// TransferFromMsg moves tokens of the source using the signer's allowance.
type TransferFromMsg struct {
	Metadata    *hodl.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Token       hodl.Address   `protobuf:"bytes,2,opt,name=token,proto3,casttype=github.com/hodl4me/hodl.Address" json:"token,omitempty"`
	Source      hodl.Address   `protobuf:"bytes,3,opt,name=source,proto3,casttype=github.com/hodl4me/hodl.Address" json:"source,omitempty"`
	Destination hodl.Address   `protobuf:"bytes,4,opt,name=destination,proto3,casttype=github.com/hodl4me/hodl.Address" json:"destination,omitempty"`
	Amount      coin.Amount    `protobuf:"bytes,5,opt,name=amount,proto3,casttype=github.com/hodl4me/hodl/coin.Amount" json:"amount,omitempty"`
}

func (m *TransferFromMsg) Reset()         { *m = TransferFromMsg{} }
func (m *TransferFromMsg) String() string { return proto.CompactTextString(m) }
func (*TransferFromMsg) ProtoMessage()    {}

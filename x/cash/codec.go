package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/coin"
)

// Wallet holds the native coin balance of a single address.
type Wallet struct {
	Metadata *hodl.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Balance  coin.Amount    `protobuf:"bytes,2,opt,name=balance,proto3,casttype=github.com/hodl4me/hodl/coin.Amount" json:"balance"`
}

func (m *Wallet) Reset()         { *m = Wallet{} }
func (m *Wallet) String() string { return proto.CompactTextString(m) }
func (*Wallet) ProtoMessage()    {}

// SendMsg moves native coins from one wallet to another.
type SendMsg struct {
	Metadata    *hodl.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Source      hodl.Address   `protobuf:"bytes,2,opt,name=source,proto3,casttype=github.com/hodl4me/hodl.Address" json:"source,omitempty"`
	Destination hodl.Address   `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/hodl4me/hodl.Address" json:"destination,omitempty"`
	Amount      coin.Amount    `protobuf:"bytes,4,opt,name=amount,proto3,casttype=github.com/hodl4me/hodl/coin.Amount" json:"amount,omitempty"`
	// max length 128 character
	Memo string `protobuf:"bytes,5,opt,name=memo,proto3" json:"memo,omitempty"`
}

func (m *SendMsg) Reset()         { *m = SendMsg{} }
func (m *SendMsg) String() string { return proto.CompactTextString(m) }
func (*SendMsg) ProtoMessage()    {}

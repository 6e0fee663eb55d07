package vault

import (
	"github.com/gogo/protobuf/proto"
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/coin"
)

// Bank is a single time-locked deposit.
type Bank struct {
	Metadata *hodl.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// The all zero address stands for the native currency.
	Asset       hodl.Address  `protobuf:"bytes,2,opt,name=asset,proto3,casttype=github.com/hodl4me/hodl.Address" json:"asset"`
	Amount      coin.Amount   `protobuf:"bytes,3,opt,name=amount,proto3,casttype=github.com/hodl4me/hodl/coin.Amount" json:"amount"`
	DepositedAt hodl.UnixTime `protobuf:"varint,4,opt,name=deposited_at,json=depositedAt,proto3,casttype=github.com/hodl4me/hodl.UnixTime" json:"deposited_at"`
	MaturesAt   hodl.UnixTime `protobuf:"varint,5,opt,name=matures_at,json=maturesAt,proto3,casttype=github.com/hodl4me/hodl.UnixTime" json:"matures_at"`
	Withdrawn   bool          `protobuf:"varint,6,opt,name=withdrawn,proto3" json:"withdrawn"`
	Depositor   hodl.Address  `protobuf:"bytes,7,opt,name=depositor,proto3,casttype=github.com/hodl4me/hodl.Address" json:"depositor"`
}

func (m *Bank) Reset()         { *m = Bank{} }
func (m *Bank) String() string { return proto.CompactTextString(m) }
func (*Bank) ProtoMessage()    {}

// Override is the emergency unlock switch.
type Override struct {
	Metadata *hodl.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Enabled  bool           `protobuf:"varint,2,opt,name=enabled,proto3" json:"enabled"`
}

func (m *Override) Reset()         { *m = Override{} }
func (m *Override) String() string { return proto.CompactTextString(m) }
func (*Override) ProtoMessage()    {}

// DepositMsg locks funds until MaturesAt. Native deposits carry the funds
// in Value, token deposits in Amount.
type DepositMsg struct {
	Metadata *hodl.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Owner of the new bank. The signer when empty.
	Depositor hodl.Address  `protobuf:"bytes,2,opt,name=depositor,proto3,casttype=github.com/hodl4me/hodl.Address" json:"depositor,omitempty"`
	Asset     hodl.Address  `protobuf:"bytes,3,opt,name=asset,proto3,casttype=github.com/hodl4me/hodl.Address" json:"asset,omitempty"`
	Amount    coin.Amount   `protobuf:"bytes,4,opt,name=amount,proto3,casttype=github.com/hodl4me/hodl/coin.Amount" json:"amount,omitempty"`
	MaturesAt hodl.UnixTime `protobuf:"varint,5,opt,name=matures_at,json=maturesAt,proto3,casttype=github.com/hodl4me/hodl.UnixTime" json:"matures_at,omitempty"`
	Value     coin.Amount   `protobuf:"bytes,6,opt,name=value,proto3,casttype=github.com/hodl4me/hodl/coin.Amount" json:"value,omitempty"`
}

func (m *DepositMsg) Reset()         { *m = DepositMsg{} }
func (m *DepositMsg) String() string { return proto.CompactTextString(m) }
func (*DepositMsg) ProtoMessage()    {}

// WithdrawMsg releases a bank of the signer.
type WithdrawMsg struct {
	Metadata *hodl.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Index    uint64         `protobuf:"varint,2,opt,name=index,proto3" json:"index"`
}

func (m *WithdrawMsg) Reset()         { *m = WithdrawMsg{} }
func (m *WithdrawMsg) String() string { return proto.CompactTextString(m) }
func (*WithdrawMsg) ProtoMessage()    {}

// ToggleOverrideMsg flips the emergency unlock switch.
type ToggleOverrideMsg struct {
	Metadata *hodl.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *ToggleOverrideMsg) Reset()         { *m = ToggleOverrideMsg{} }
func (m *ToggleOverrideMsg) String() string { return proto.CompactTextString(m) }
func (*ToggleOverrideMsg) ProtoMessage()    {}

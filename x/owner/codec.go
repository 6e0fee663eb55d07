package owner

import (
	"github.com/gogo/protobuf/proto"
	"github.com/hodl4me/hodl"
)

type Configuration struct {
	Metadata *hodl.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    hodl.Address   `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/hodl4me/hodl.Address" json:"owner,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

func (m *Configuration) GetOwner() hodl.Address {
	if m != nil {
		return m.Owner
	}
	return nil
}

// TransferOwnershipMsg hands the ownership over to a new address. It must
// be signed by the current owner.
type TransferOwnershipMsg struct {
	Metadata *hodl.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	NewOwner hodl.Address   `protobuf:"bytes,2,opt,name=new_owner,json=newOwner,proto3,casttype=github.com/hodl4me/hodl.Address" json:"new_owner,omitempty"`
}

func (m *TransferOwnershipMsg) Reset()         { *m = TransferOwnershipMsg{} }
func (m *TransferOwnershipMsg) String() string { return proto.CompactTextString(m) }
func (*TransferOwnershipMsg) ProtoMessage()    {}

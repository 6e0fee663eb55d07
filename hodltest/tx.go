package hodltest

import (
	"github.com/hodl4me/hodl"
)

// Tx represents a transaction carrying a single message.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg hodl.Msg
	// Err if set is returned by GetMsg.
	Err error
}

var _ hodl.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (hodl.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) Reset()         { *tx = Tx{} }
func (tx *Tx) String() string { return "hodltest.Tx" }
func (*Tx) ProtoMessage()     {}

// Msg is a message with a configurable route.
type Msg struct {
	// RoutePath is returned by the Path method, consumed by the router.
	RoutePath string
	// Err if set is returned by Validate.
	Err error
}

var _ hodl.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Reset()         { *m = Msg{} }
func (m *Msg) String() string { return "hodltest.Msg " + m.RoutePath }
func (*Msg) ProtoMessage()    {}

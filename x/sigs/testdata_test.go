package sigs

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/hodltest"
)

// signedTx carries a message and the signatures over its sign bytes.
type signedTx struct {
	Payload    []byte
	Signatures []*StdSignature
}

var _ SignedTx = (*signedTx)(nil)
var _ hodl.Tx = (*signedTx)(nil)

func (t *signedTx) GetSignBytes() ([]byte, error) { return t.Payload, nil }

func (t *signedTx) GetSignatures() []*StdSignature { return t.Signatures }

func (t *signedTx) GetMsg() (hodl.Msg, error) {
	return &hodltest.Msg{RoutePath: "test/sigs"}, nil
}

func (t *signedTx) Reset()         { *t = signedTx{} }
func (t *signedTx) String() string { return "signedTx" }
func (*signedTx) ProtoMessage()    {}

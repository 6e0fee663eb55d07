package app

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp is the hodl node application. It runs vault, cash, token and
// owner messages through the decorator chain on top of the StoreApp that
// keeps the ledger and answers the /banks queries.
type BaseApp struct {
	*StoreApp
	decoder hodl.TxDecoder
	handler hodl.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp binds the transaction decoder and the routed handler to store.
// With debug set, failed responses carry the full error stack.
func NewBaseApp(
	store *StoreApp,
	decoder hodl.TxDecoder,
	handler hodl.Handler,
	debug bool,
) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// DeliverTx executes a decoded transaction against the block state.
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return hodl.DeliverTxError(err, b.debug)
	}

	ctx := hodl.WithLogInfo(b.BlockContext(),
		"call", "deliver_tx",
		"path", hodl.GetPath(tx))

	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return hodl.DeliverOrError(res, err, b.debug)
}

// CheckTx validates a transaction against the mempool state. Nothing it
// writes survives the next commit.
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return hodl.CheckTxError(err, b.debug)
	}

	ctx := hodl.WithLogInfo(b.BlockContext(),
		"call", "check_tx",
		"path", hodl.GetPath(tx))

	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return hodl.CheckOrError(res, err, b.debug)
}

// loadTx decodes raw bytes. A decoder panic is reported as an error.
func (b BaseApp) loadTx(txBytes []byte) (tx hodl.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	return
}

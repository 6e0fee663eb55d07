package server

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
	amino "github.com/tendermint/go-amino"
	"github.com/tendermint/tendermint/blockchain"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	"github.com/tendermint/tendermint/types"
)

const (
	flagHeight = "height"
)

var cdc = amino.NewCodec()

func init() {
	ctypes.RegisterAmino(cdc)
}

func parseGetBlockArgs(args []string) (string, int64, error) {
	if len(args) == 0 {
		return "", 0, errors.Wrap(errors.ErrInput, "usage: cmd getblock <path to blockstore.db> [-height=H]")
	}
	var height int64
	getBlockFlags := flag.NewFlagSet("getblock", flag.ContinueOnError)
	getBlockFlags.Int64Var(&height, flagHeight, 0, "height of the block to extract (default latest)")
	err := getBlockFlags.Parse(args[1:])
	return args[0], height, err
}

// GetBlockCmd extracts a block from a blockstore.db and outputs as json
// followed by every transaction decoded with given decoder.
// It takes the last block unless -height is explicitly specified.
func GetBlockCmd(decoder hodl.TxDecoder, logger log.Logger, out io.Writer, args []string) error {
	dbPath, height, err := parseGetBlockArgs(args)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	db, err := openDb(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	store := blockchain.NewBlockStore(db)
	if height == 0 {
		height = store.Height()
	}
	logger.Debug("Loading block", "height", height, "db", dbPath)
	block := store.LoadBlock(height)
	if block == nil {
		return errors.Wrapf(errors.ErrNotFound, "no block for height: %d", height)
	}
	return printBlock(out, decoder, block)
}

func openDb(path string) (dbm.DB, error) {
	path = strings.TrimSuffix(filepath.Clean(path), string(filepath.Separator))
	if filepath.Ext(path) != ".db" {
		return nil, errors.Wrapf(errors.ErrInput, "database directory must end with .db: %s", path)
	}
	dir, name := filepath.Split(strings.TrimSuffix(path, ".db"))
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return db, nil
}

type decodedTx struct {
	Path string    `json:"path"`
	Msg  hodl.Msg  `json:"msg,omitempty"`
	Err  string    `json:"error,omitempty"`
	Hash hexString `json:"hash"`
}

type hexString []byte

func (h hexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("%X", []byte(h)))
}

func printBlock(out io.Writer, decoder hodl.TxDecoder, block *types.Block) error {
	js, err := cdc.MarshalJSONIndent(block, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	fmt.Fprintln(out, string(js))

	if decoder == nil {
		return nil
	}
	txs := make([]decodedTx, 0, len(block.Data.Txs))
	for _, raw := range block.Data.Txs {
		txs = append(txs, decode(decoder, raw))
	}
	js, err = json.MarshalIndent(txs, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	fmt.Fprintln(out, string(js))
	return nil
}

func decode(decoder hodl.TxDecoder, raw types.Tx) (res decodedTx) {
	res.Hash = raw.Hash()
	var err error
	defer func() {
		if err != nil {
			res.Err = err.Error()
		}
	}()
	defer errors.Recover(&err)

	tx, err := decoder(raw)
	if err != nil {
		return res
	}
	res.Path = hodl.GetPath(tx)
	res.Msg, err = tx.GetMsg()
	return res
}

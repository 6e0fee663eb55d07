package hodld

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/coin"
	"github.com/hodl4me/hodl/crypto"
	"github.com/hodl4me/hodl/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// defaultBalance is the native balance of the dev account.
const defaultBalance = "123456789000000000000"

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode.
//
// The first argument is the address of the owner, the second one its
// native balance. Without an address a new key is generated and printed.
func GenInitOptions(args []string) (json.RawMessage, error) {
	var addr hodl.Address
	if len(args) > 0 {
		var err error
		if addr, err = hodl.ParseAddress(args[0]); err != nil {
			return nil, err
		}
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		bz, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz
		fmt.Println(keys)
	}

	balance := coin.Amount(defaultBalance)
	if len(args) > 1 {
		var err error
		if balance, err = coin.ParseAmount(args[1]); err != nil {
			return nil, errors.Wrap(err, "balance")
		}
	}

	opts := map[string]interface{}{
		"cash": []interface{}{
			map[string]interface{}{"address": addr, "balance": balance},
		},
		"tokens": []interface{}{},
		"conf": map[string]interface{}{
			"owner": map[string]interface{}{
				"metadata": map[string]int{"schema": 1},
				"owner":    addr,
			},
		},
		"vault": map[string]interface{}{"override": false},
	}
	return json.MarshalIndent(opts, "", "  ")
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "hodl.db")
	}

	application, err := Application("hodl", Stack(), TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}

	// set the logger and return
	application.WithLogger(logger)
	return application, nil
}

type output struct {
	Pubkey crypto.PublicKey  `json:"pub_key"`
	Secret crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
// You can give coins to this address and
// import the keys in a client to use them
func GenerateCoinKey() (hodl.Address, string, error) {
	privKey := crypto.GenPrivKey()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}
	return addr, string(keys), nil
}

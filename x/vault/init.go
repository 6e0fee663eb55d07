package vault

import (
	"github.com/hodl4me/hodl"
)

const optKey = "vault"

// GenesisState is the initial state of the vault.
type GenesisState struct {
	Override bool `json:"override"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ hodl.Initializer = Initializer{}

// FromGenesis sets the initial state of the override switch. The switch
// stays off when the section is missing.
func (Initializer) FromGenesis(opts hodl.Options, db hodl.KVStore) error {
	var state GenesisState
	if err := opts.ReadOptions(optKey, &state); err != nil {
		return err
	}
	return NewLedger().SetOverride(db, state.Override)
}

package server

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/hodl4me/hodl/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

// setupHome creates a home directory holding a genesis file as written by
// tendermint init.
func setupHome(t *testing.T) (string, func()) {
	t.Helper()
	home, err := ioutil.TempDir("", "hodl-init")
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(home, "config"), 0755))
	genesis := `{"genesis_time": "2019-01-01T00:00:00Z", "chain_id": "test-chain-LgVOZ0", "validators": [{"power": "10"}]}`
	require.NoError(t, ioutil.WriteFile(filepath.Join(home, "config", "genesis.json"), []byte(genesis), 0600))
	return home, func() { os.RemoveAll(home) }
}

func readGenesis(t *testing.T, home string) GenesisDoc {
	t.Helper()
	bz, err := ioutil.ReadFile(filepath.Join(home, "config", "genesis.json"))
	require.NoError(t, err)
	var doc GenesisDoc
	require.NoError(t, json.Unmarshal(bz, &doc))
	return doc
}

func TestInit(t *testing.T) {
	home, cleanup := setupHome(t)
	defer cleanup()

	var got []string
	gen := func(args []string) (json.RawMessage, error) {
		got = args
		return json.RawMessage(`{"vault": {"override": false}}`), nil
	}
	logger := log.NewNopLogger()

	require.NoError(t, InitCmd(gen, logger, home, []string{"owner", "100"}))
	assert.Equal(t, []string{"owner", "100"}, got)

	doc := readGenesis(t, home)
	// keep old values, and add our values
	assert.EqualValues(t, []byte(`"test-chain-LgVOZ0"`), doc["chain_id"])
	assert.NotEmpty(t, doc["validators"])
	assert.JSONEq(t, `{"vault": {"override": false}}`, string(doc[appStateKey]))

	err := InitCmd(gen, logger, home, nil)
	assert.True(t, errors.ErrDuplicate.Is(err))

	require.NoError(t, InitCmd(gen, logger, home, []string{"-f", "other"}))
	assert.Equal(t, []string{"other"}, got)
}

func TestInitWithoutTendermint(t *testing.T) {
	home, err := ioutil.TempDir("", "hodl-init")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	gen := func([]string) (json.RawMessage, error) { return json.RawMessage(`{}`), nil }
	err = InitCmd(gen, log.NewNopLogger(), home, nil)
	assert.True(t, errors.ErrNotFound.Is(err))
}

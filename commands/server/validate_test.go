package server

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requireKey string

func (k requireKey) FromGenesis(opts hodl.Options, db hodl.KVStore) error {
	if _, ok := opts[string(k)]; !ok {
		return errors.Wrapf(errors.ErrEmpty, "missing %s", string(k))
	}
	return nil
}

func TestValidateGenesis(t *testing.T) {
	dir, err := ioutil.TempDir("", "hodl-validate")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))
		return path
	}
	good := write("good.json", `{"app_state": {"vault": {}}}`)
	missing := write("missing.json", `{"app_state": {"cash": []}}`)
	empty := write("empty.json", `{"chain_id": "x"}`)
	broken := write("broken.json", `{"app_state": `)

	assert.NoError(t, ValidateGenesis(requireKey("vault"), []string{good}))
	assert.True(t, errors.ErrEmpty.Is(ValidateGenesis(requireKey("vault"), []string{good, missing})))
	assert.True(t, errors.ErrEmpty.Is(ValidateGenesis(requireKey("vault"), []string{empty})))
	assert.True(t, errors.ErrInput.Is(ValidateGenesis(requireKey("vault"), []string{broken})))
	assert.True(t, errors.ErrNotFound.Is(ValidateGenesis(requireKey("vault"), []string{filepath.Join(dir, "nope.json")})))
	assert.True(t, errors.ErrInput.Is(ValidateGenesis(requireKey("vault"), nil)))
}

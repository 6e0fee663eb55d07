package server

import (
	"bytes"
	"testing"

	"github.com/hodl4me/hodl/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func TestParseStartFlags(t *testing.T) {
	addr, debug, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "tcp://localhost:26658", addr)
	assert.False(t, debug)

	addr, debug, err = parseFlags([]string{"-bind", "unix:///tmp/hodl.sock", "-debug"})
	require.NoError(t, err)
	assert.Equal(t, "unix:///tmp/hodl.sock", addr)
	assert.True(t, debug)

	_, _, err = parseFlags([]string{"-unknown"})
	assert.Error(t, err)
}

func TestStopOnSignal(t *testing.T) {
	var out bytes.Buffer
	logger := log.NewTMLogger(&out)

	var calls int
	stopOnSignal(logger, func() error {
		calls++
		return nil
	})()
	assert.Equal(t, 1, calls)
	assert.Empty(t, out.String())

	stopOnSignal(logger, func() error {
		calls++
		return errors.Wrap(errors.ErrState, "already stopped")
	})()
	assert.Equal(t, 2, calls)
	assert.Contains(t, out.String(), "already stopped")
}

package hodld

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gogo/protobuf/proto"
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/app"
	"github.com/hodl4me/hodl/coin"
	"github.com/hodl4me/hodl/crypto"
	"github.com/hodl4me/hodl/x/cash"
	"github.com/hodl4me/hodl/x/sigs"
	"github.com/hodl4me/hodl/x/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const chainID = "hodl-test-1"

type account struct {
	pk  crypto.PrivateKey
	seq int64
}

func (a *account) address() hodl.Address {
	return a.pk.PublicKey().Address()
}

type testChain struct {
	t      *testing.T
	app    abci.Application
	height int64
	now    time.Time
}

func newTestChain(t *testing.T, owner *account, balance string) *testChain {
	t.Helper()
	opts, err := GenInitOptions([]string{owner.address().String(), balance})
	require.NoError(t, err)

	myApp, err := GenerateApp("", log.NewNopLogger(), true)
	require.NoError(t, err)
	myApp.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: opts})
	// CheckTx reads committed state only
	myApp.Commit()

	return &testChain{t: t, app: myApp, now: time.Unix(1700000000, 0)}
}

// deliver runs msg signed by signer in a block of its own, at the given
// offset from the previous block.
func (c *testChain) deliver(signer *account, msg hodl.Msg, advance time.Duration) abci.ResponseDeliverTx {
	c.t.Helper()
	tx := &Tx{}
	require.NoError(c.t, tx.SetMsg(msg))
	sig, err := sigs.SignTx(signer.pk, tx, chainID, signer.seq)
	require.NoError(c.t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := proto.Marshal(tx)
	require.NoError(c.t, err)

	c.height++
	c.now = c.now.Add(advance)
	header := abci.Header{ChainID: chainID, Height: c.height, Time: c.now}
	c.app.BeginBlock(abci.RequestBeginBlock{Header: header})
	chres := c.app.CheckTx(raw)
	dres := c.app.DeliverTx(raw)
	if dres.Code == 0 {
		require.Equal(c.t, uint32(0), chres.Code, chres.Log)
	}
	c.app.EndBlock(abci.RequestEndBlock{})
	c.app.Commit()

	// a signed tx bumps the sequence even when the message fails
	signer.seq++
	return dres
}

func (c *testChain) query(path string, data []byte) abci.ResponseQuery {
	c.t.Helper()
	res := c.app.Query(abci.RequestQuery{Path: path, Data: data})
	require.Equal(c.t, uint32(0), res.Code, res.Log)
	return res
}

func (c *testChain) balance(addr hodl.Address) coin.Amount {
	c.t.Helper()
	res := c.query("/wallets", addr)
	var w cash.Wallet
	ok, err := app.UnmarshalOneResult(res.Value, &w)
	require.NoError(c.t, err)
	if !ok {
		return coin.Zero
	}
	return w.Balance
}

func (c *testChain) banks(depositor hodl.Address) []vault.Bank {
	c.t.Helper()
	res := c.query("/banks?prefix", depositor)
	var set app.ResultSet
	require.NoError(c.t, proto.Unmarshal(res.Value, &set))
	banks := make([]vault.Bank, len(set.Results))
	for i, raw := range set.Results {
		require.NoError(c.t, proto.Unmarshal(raw, &banks[i]))
	}
	return banks
}

func metadata() *hodl.Metadata {
	return &hodl.Metadata{Schema: 1}
}

func TestNativeDepositLifecycle(t *testing.T) {
	owner := &account{pk: crypto.GenPrivKey()}
	chain := newTestChain(t, owner, "1000")

	maturity := hodl.AsUnixTime(chain.now.Add(time.Hour))
	dres := chain.deliver(owner, &vault.DepositMsg{
		Metadata:  metadata(),
		MaturesAt: maturity,
		Value:     coin.NewAmount(400),
	}, time.Second)
	require.Equal(t, uint32(0), dres.Code, dres.Log)

	assert.Equal(t, "600", chain.balance(owner.address()).String())
	assert.Equal(t, "400", chain.balance(vault.CustodyAddress).String())

	banks := chain.banks(owner.address())
	require.Len(t, banks, 1)
	assert.Equal(t, maturity, banks[0].MaturesAt)
	assert.False(t, banks[0].Withdrawn)

	// too early, the failed message leaves the state untouched
	dres = chain.deliver(owner, &vault.WithdrawMsg{Metadata: metadata(), Index: 0}, time.Minute)
	assert.Equal(t, vault.ErrStillLocked.ABCICode(), dres.Code, dres.Log)
	assert.Equal(t, "600", chain.balance(owner.address()).String())

	dres = chain.deliver(owner, &vault.WithdrawMsg{Metadata: metadata(), Index: 0}, time.Hour)
	require.Equal(t, uint32(0), dres.Code, dres.Log)
	assert.Equal(t, "1000", chain.balance(owner.address()).String())
	assert.Equal(t, "0", chain.balance(vault.CustodyAddress).String())

	banks = chain.banks(owner.address())
	require.Len(t, banks, 1)
	assert.True(t, banks[0].Withdrawn)

	// a bank is paid out once
	dres = chain.deliver(owner, &vault.WithdrawMsg{Metadata: metadata(), Index: 0}, time.Second)
	assert.Equal(t, vault.ErrAlreadyWithdrawn.ABCICode(), dres.Code, dres.Log)
}

func TestOverrideUnlocksBanks(t *testing.T) {
	owner := &account{pk: crypto.GenPrivKey()}
	chain := newTestChain(t, owner, "1000")

	res := chain.query("/vault/override", nil)
	var set app.ResultSet
	require.NoError(t, proto.Unmarshal(res.Value, &set))
	assert.Equal(t, [][]byte{{0}}, set.Results)

	stranger := &account{pk: crypto.GenPrivKey()}
	dres := chain.deliver(stranger, &vault.ToggleOverrideMsg{Metadata: metadata()}, time.Second)
	assert.NotEqual(t, uint32(0), dres.Code)

	dres = chain.deliver(owner, &vault.DepositMsg{
		Metadata:  metadata(),
		MaturesAt: hodl.AsUnixTime(chain.now.Add(24 * time.Hour)),
		Value:     coin.NewAmount(250),
	}, time.Second)
	require.Equal(t, uint32(0), dres.Code, dres.Log)

	dres = chain.deliver(owner, &vault.ToggleOverrideMsg{Metadata: metadata()}, time.Second)
	require.Equal(t, uint32(0), dres.Code, dres.Log)

	res = chain.query("/vault/override", nil)
	require.NoError(t, proto.Unmarshal(res.Value, &set))
	assert.Equal(t, [][]byte{{1}}, set.Results)

	dres = chain.deliver(owner, &vault.WithdrawMsg{Metadata: metadata(), Index: 0}, time.Second)
	require.Equal(t, uint32(0), dres.Code, dres.Log)
	assert.Equal(t, "1000", chain.balance(owner.address()).String())
}

func TestGenInitOptions(t *testing.T) {
	owner := crypto.GenPrivKey().PublicKey().Address()
	raw, err := GenInitOptions([]string{owner.String(), "42"})
	require.NoError(t, err)

	var opts hodl.Options
	require.NoError(t, json.Unmarshal(raw, &opts))
	var accts []cash.GenesisAccount
	require.NoError(t, opts.ReadOptions("cash", &accts))
	require.Len(t, accts, 1)
	assert.Equal(t, owner, accts[0].Address)
	assert.Equal(t, "42", accts[0].Balance.String())

	_, err = GenInitOptions([]string{"not an address"})
	assert.Error(t, err)
	_, err = GenInitOptions([]string{owner.String(), "-1"})
	assert.Error(t, err)
}

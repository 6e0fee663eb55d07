package vault

import (
	"testing"
	"time"

	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/coin"
	"github.com/hodl4me/hodl/hodltest"
	"github.com/hodl4me/hodl/hodltest/assert"
	"github.com/hodl4me/hodl/store"
	"github.com/hodl4me/hodl/x/cash"
	"github.com/hodl4me/hodl/x/owner"
	"github.com/hodl4me/hodl/x/token"
	"github.com/hodl4me/hodl/x/utils"
)

// genesisTime is the block time T of the test chain.
var genesisTime = time.Unix(1700000000, 0).UTC()

var meta = &hodl.Metadata{Schema: 1}

// fixture is a vault wired with real cash, token and owner extensions.
// Every message runs inside a savepoint, like on the chain.
type fixture struct {
	db       store.CacheableKVStore
	auth     *hodltest.CtxAuth
	cash     *cash.BaseController
	tokens   *token.BaseController
	handlers map[string]hodl.Handler
	admin    hodl.Condition
}

func (f *fixture) Handle(m hodl.Msg, h hodl.Handler) {
	f.handlers[m.Path()] = hodltest.Decorate(h, utils.NewSavepoint().OnCheck().OnDeliver())
}

func newFixture(t testing.TB) *fixture {
	t.Helper()
	f := &fixture{
		db:       store.MemStore(),
		auth:     &hodltest.CtxAuth{Key: "auth"},
		cash:     cash.NewController(),
		tokens:   token.NewController(),
		handlers: make(map[string]hodl.Handler),
		admin:    hodltest.NewCondition(),
	}
	assert.Nil(t, owner.SetOwner(f.db, f.admin.Address()))
	RegisterRoutes(f, f.auth, f.cash, f.tokens, owner.Controller{})
	token.RegisterRoutes(f, f.auth, f.tokens)
	return f
}

func (f *fixture) ctx(signer hodl.Condition, at time.Time) hodl.Context {
	ctx := hodltest.BlockCtx(100, at)
	if signer == nil {
		return ctx
	}
	return f.auth.SetConditions(ctx, signer)
}

// exec checks and delivers msg signed by signer at given block time.
func (f *fixture) exec(signer hodl.Condition, at time.Time, msg hodl.Msg) (*hodl.DeliverResult, error) {
	ctx := f.ctx(signer, at)
	tx := &hodltest.Tx{Msg: msg}
	h := f.handlers[msg.Path()]

	check := f.db.CacheWrap()
	_, err := h.Check(ctx, check, tx)
	check.Discard()
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, f.db, tx)
}

func (f *fixture) mint(t testing.TB, to hodl.Address, amount coin.Amount) {
	t.Helper()
	assert.Nil(t, f.cash.CoinMint(f.db, to, amount))
}

func (f *fixture) balance(t testing.TB, of hodl.Address) coin.Amount {
	t.Helper()
	b, err := f.cash.Balance(f.db, of)
	assert.Nil(t, err)
	return b
}

func (f *fixture) tokenBalance(t testing.TB, tok, of hodl.Address) coin.Amount {
	t.Helper()
	b, err := f.tokens.Balance(f.db, tok, of)
	assert.Nil(t, err)
	return b
}

// createToken creates a contract with the whole supply owned by holder.
func (f *fixture) createToken(t testing.TB, holder hodl.Condition, supply coin.Amount) hodl.Address {
	t.Helper()
	res, err := f.exec(holder, genesisTime, &token.CreateTokenMsg{
		Metadata:      meta,
		Name:          "Hodl Token",
		Symbol:        "HODL",
		Decimals:      18,
		InitialSupply: supply,
	})
	assert.Nil(t, err)
	return hodl.Address(res.Data)
}

func (f *fixture) approve(t testing.TB, holder hodl.Condition, tok hodl.Address, amount coin.Amount) {
	t.Helper()
	_, err := f.exec(holder, genesisTime, &token.ApproveMsg{
		Metadata: meta,
		Token:    tok,
		Spender:  CustodyAddress,
		Amount:   amount,
	})
	assert.Nil(t, err)
}

func (f *fixture) length(t testing.TB, depositor hodl.Address) uint64 {
	t.Helper()
	n, err := NewLedger().Length(f.db, depositor)
	assert.Nil(t, err)
	return n
}

func at(seconds int64) time.Time {
	return genesisTime.Add(time.Duration(seconds) * time.Second)
}

func unix(seconds int64) hodl.UnixTime {
	return hodl.AsUnixTime(at(seconds))
}

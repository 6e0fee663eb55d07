package app

import (
	"context"
	"testing"
	"time"

	"github.com/gogo/protobuf/proto"
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/hodltest"
	"github.com/hodl4me/hodl/orm"
	"github.com/hodl4me/hodl/store/iavl"
	"github.com/hodl4me/hodl/x/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
)

// genesisInit writes every app_state entry under its own key.
type genesisInit struct{}

func (genesisInit) FromGenesis(opts hodl.Options, db hodl.KVStore) error {
	for k, v := range opts {
		if err := db.Set([]byte(k), v); err != nil {
			return err
		}
	}
	return nil
}

var writeMsg = &hodltest.Msg{RoutePath: "test/write"}

func testDecoder(raw []byte) (hodl.Tx, error) {
	switch string(raw) {
	case "write":
		return &hodltest.Tx{Msg: writeMsg}, nil
	case "fail":
		return &hodltest.Tx{Msg: &hodltest.Msg{RoutePath: "test/fail"}}, nil
	case "panic":
		panic("cannot decode")
	default:
		return nil, errors.Wrap(errors.ErrInput, "unknown tx")
	}
}

func newTestApp(t *testing.T, kv hodl.CommitKVStore) BaseApp {
	t.Helper()
	r := NewRouter()
	r.Handle(writeMsg, &hodltest.WriteHandler{Key: []byte("written"), Value: []byte("yes")})
	r.Handle(&hodltest.Msg{RoutePath: "test/fail"}, &hodltest.WriteHandler{
		Key:   []byte("failed"),
		Value: []byte("oops"),
		Err:   errors.ErrState,
	})
	stack := ChainDecorators(
		utils.NewRecovery(),
		utils.NewSavepoint().OnCheck().OnDeliver(),
	).WithHandler(r)

	qr := hodl.NewQueryRouter()
	orm.RegisterQuery(qr)
	s, err := NewStoreApp("test-app", kv, qr, context.Background())
	require.NoError(t, err)
	s.WithInit(genesisInit{})
	return NewBaseApp(s, testDecoder, stack, false)
}

func TestBaseAppLifecycle(t *testing.T) {
	kv := iavl.MemCommitStore()
	app := newTestApp(t, kv)

	assert.Panics(t, func() {
		app.InitChain(abci.RequestInitChain{ChainId: "test-chain"})
	}, "missing app state")

	app.InitChain(abci.RequestInitChain{
		ChainId:       "test-chain",
		AppStateBytes: []byte(`{"greeting": "hi"}`),
	})
	assert.Equal(t, "test-chain", app.GetChainID())
	assert.Panics(t, func() {
		app.InitChain(abci.RequestInitChain{ChainId: "other-chain", AppStateBytes: []byte(`{}`)})
	})

	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{
		Height: 1,
		Time:   time.Unix(1700000000, 0),
	}})
	now, err := hodl.BlockTime(app.BlockContext())
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), now.Unix())
	assert.Equal(t, "test-chain", hodl.GetChainID(app.BlockContext()))

	cres := app.CheckTx([]byte("write"))
	assert.False(t, cres.IsErr(), cres.Log)
	cres = app.CheckTx([]byte("garbage"))
	assert.Equal(t, uint32(13), cres.Code)
	cres = app.CheckTx([]byte("panic"))
	assert.True(t, cres.IsErr())

	dres := app.DeliverTx([]byte("write"))
	assert.False(t, dres.IsErr(), dres.Log)
	dres = app.DeliverTx([]byte("fail"))
	assert.Equal(t, uint32(10), dres.Code)

	// nothing is visible before the commit
	qres := app.Query(abci.RequestQuery{Path: "/", Data: []byte("written")})
	require.Equal(t, uint32(0), qres.Code, qres.Log)
	var vals ResultSet
	require.NoError(t, proto.Unmarshal(qres.Value, &vals))
	assert.Empty(t, vals.Results)

	app.EndBlock(abci.RequestEndBlock{Height: 1})
	commit := app.Commit()
	assert.NotEmpty(t, commit.Data)

	store := NewABCIStore(app)
	v, err := store.Get([]byte("written"))
	require.NoError(t, err)
	assert.Equal(t, []byte("yes"), v)
	ok, err := store.Has([]byte("failed"))
	require.NoError(t, err)
	assert.False(t, ok, "failed tx must not write")
	v, err = store.Get([]byte("greeting"))
	require.NoError(t, err)
	assert.Equal(t, []byte(`"hi"`), v)

	info := app.Info(abci.RequestInfo{})
	assert.Equal(t, int64(1), info.LastBlockHeight)
	assert.Equal(t, commit.Data, info.LastBlockAppHash)
	assert.Equal(t, "test-app", info.Data)

	qres = app.Query(abci.RequestQuery{Path: "/nothing"})
	assert.Equal(t, uint32(3), qres.Code)

	// the chain id survives a restart
	restarted := newTestApp(t, kv)
	assert.Equal(t, "test-chain", restarted.GetChainID())
}

func TestABCIStoreIterator(t *testing.T) {
	app := newTestApp(t, iavl.MemCommitStore())
	app.InitChain(abci.RequestInitChain{
		ChainId:       "test-chain",
		AppStateBytes: []byte(`{"a:1": "1", "a:2": "2", "b:1": "3"}`),
	})
	app.Commit()

	store := NewABCIStore(app)
	it, err := store.Iterator([]byte("a:"), orm.PrefixEnd([]byte("a:")))
	require.NoError(t, err)
	models := orm.ConsumeIterator(it)
	require.Len(t, models, 2)
	assert.Equal(t, []byte("a:1"), models[0].Key)

	it, err = store.ReverseIterator([]byte("a:"), orm.PrefixEnd([]byte("a:")))
	require.NoError(t, err)
	models = orm.ConsumeIterator(it)
	require.Len(t, models, 2)
	assert.Equal(t, []byte("a:2"), models[0].Key)

	_, err = store.Iterator([]byte("a"), []byte("z"))
	assert.True(t, errors.ErrInput.Is(err))
}

func TestJoinResults(t *testing.T) {
	models := []hodl.Model{hodl.Pair([]byte("k1"), []byte("v1")), hodl.Pair([]byte("k2"), []byte("v2"))}
	got, err := JoinResults(ResultsFromKeys(models), ResultsFromValues(models))
	require.NoError(t, err)
	assert.Equal(t, models, got)

	_, err = JoinResults(ResultsFromKeys(models), ResultsFromValues(models[:1]))
	assert.True(t, errors.ErrState.Is(err))
}

package app

import (
	"bytes"

	"github.com/gogo/protobuf/proto"
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/orm"
	"github.com/hodl4me/hodl/store"
	abci "github.com/tendermint/tendermint/abci/types"
)

// ABCIStore exposes the raw "/" query of an abci application as a
// ReadOnlyKVStore. The application must register orm.RegisterQuery.
type ABCIStore struct {
	app abci.Application
}

var _ hodl.ReadOnlyKVStore = (*ABCIStore)(nil)

func NewABCIStore(app abci.Application) *ABCIStore {
	return &ABCIStore{app: app}
}

// Get will query for exactly one value over the abci store.
// This can be wrapped with a bucket to reuse key/index/parse logic
func (a *ABCIStore) Get(key []byte) ([]byte, error) {
	query := a.app.Query(abci.RequestQuery{
		Path: "/",
		Data: key,
	})
	if query.Code != 0 {
		return nil, errors.Wrapf(errors.ErrDatabase, "query code %d: %s", query.Code, query.Log)
	}
	var value ResultSet
	if err := proto.Unmarshal(query.Value, &value); err != nil {
		return nil, errors.Wrap(errors.ErrSchema, err.Error())
	}
	switch len(value.Results) {
	case 0:
		return nil, nil
	case 1:
		return value.Results[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrState, "%d results for a single key", len(value.Results))
	}
}

// Has returns true if the given key in in the abci app store
func (a *ABCIStore) Has(key []byte) (bool, error) {
	v, err := a.Get(key)
	return len(v) > 0, err
}

// Iterator runs a prefix query over the abci app. Only ranges that are
// prefixes, that is end equal to orm.PrefixEnd(start), are supported.
func (a *ABCIStore) Iterator(start, end []byte) (hodl.Iterator, error) {
	if !bytes.Equal(orm.PrefixEnd(start), end) {
		return nil, errors.Wrap(errors.ErrInput, "only prefix ranges are supported")
	}
	models, err := a.prefix(start)
	if err != nil {
		return nil, err
	}
	return store.NewSliceIterator(models), nil
}

// ReverseIterator is the Iterator played backwards.
func (a *ABCIStore) ReverseIterator(start, end []byte) (hodl.Iterator, error) {
	if !bytes.Equal(orm.PrefixEnd(start), end) {
		return nil, errors.Wrap(errors.ErrInput, "only prefix ranges are supported")
	}
	models, err := a.prefix(start)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(models)-1; i < j; i, j = i+1, j-1 {
		models[i], models[j] = models[j], models[i]
	}
	return store.NewSliceIterator(models), nil
}

func (a *ABCIStore) prefix(p []byte) ([]hodl.Model, error) {
	query := a.app.Query(abci.RequestQuery{
		Path: "/?" + hodl.PrefixQueryMod,
		Data: p,
	})
	if query.Code != 0 {
		return nil, errors.Wrapf(errors.ErrDatabase, "query code %d: %s", query.Code, query.Log)
	}
	return toModels(query.Key, query.Value)
}

func toModels(keys, values []byte) ([]hodl.Model, error) {
	var k, v ResultSet
	if err := proto.Unmarshal(keys, &k); err != nil {
		return nil, errors.Wrap(errors.ErrSchema, "cannot unmarshal keys")
	}
	if err := proto.Unmarshal(values, &v); err != nil {
		return nil, errors.Wrap(errors.ErrSchema, "cannot unmarshal values")
	}
	return JoinResults(&k, &v)
}

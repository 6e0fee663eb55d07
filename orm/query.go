package orm

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
)

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr hodl.Iterator) []hodl.Model {
	defer itr.Close()

	var res []hodl.Model
	for ; itr.Valid(); itr.Next() {
		res = append(res, hodl.Pair(itr.Key(), itr.Value()))
	}
	return res
}

// QueryPrefix returns all key value pairs with a key starting with prefix.
func QueryPrefix(db hodl.ReadOnlyKVStore, prefix []byte) ([]hodl.Model, error) {
	itr, err := db.Iterator(prefix, PrefixEnd(prefix))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return ConsumeIterator(itr), nil
}

// PrefixEnd returns the smallest key greater than every key starting with
// prefix. It returns nil, an open end, if there is no such key.
func PrefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xFF {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

// RegisterQuery exposes the raw store under "/". It serves both key and
// prefix queries.
func RegisterQuery(qr hodl.QueryRouter) {
	qr.Register("/", rawQuery{})
}

type rawQuery struct{}

func (rawQuery) Query(db hodl.ReadOnlyKVStore, mod string, data []byte) ([]hodl.Model, error) {
	switch mod {
	case hodl.KeyQueryMod:
		value, err := db.Get(data)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, nil
		}
		return []hodl.Model{hodl.Pair(data, value)}, nil
	case hodl.PrefixQueryMod:
		return QueryPrefix(db, data)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}

package vault

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/orm"
)

// RegisterQuery registers banks under "/banks", ledger lengths under
// "/banks/count" and the override switch under "/vault/override".
func RegisterQuery(qr hodl.QueryRouter) {
	l := NewLedger()
	l.banks.Register("banks", qr)
	qr.Register("/banks/count", countQuery{ledger: l})
	qr.Register("/vault/override", overrideQuery{ledger: l})
}

// countQuery returns the number of banks of the depositor given as the key,
// as 8 bytes big endian.
type countQuery struct {
	ledger Ledger
}

func (q countQuery) Query(db hodl.ReadOnlyKVStore, mod string, data []byte) ([]hodl.Model, error) {
	if mod != hodl.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
	if err := hodl.Address(data).Validate(); err != nil {
		return nil, errors.Wrap(err, "depositor")
	}
	n, err := q.ledger.Length(db, data)
	if err != nil {
		return nil, err
	}
	return []hodl.Model{hodl.Pair(data, orm.EncodeSequence(n))}, nil
}

// overrideQuery returns the override switch as a single byte.
type overrideQuery struct {
	ledger Ledger
}

func (q overrideQuery) Query(db hodl.ReadOnlyKVStore, mod string, data []byte) ([]hodl.Model, error) {
	if mod != hodl.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
	enabled, err := q.ledger.OverrideEnabled(db)
	if err != nil {
		return nil, err
	}
	return []hodl.Model{hodl.Pair([]byte("_o:"+overrideName), []byte{flagByte(enabled)})}, nil
}

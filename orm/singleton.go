package orm

import (
	"github.com/gogo/protobuf/proto"
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
)

// Singleton stores a single model instance under a fixed key.
type Singleton struct {
	key []byte
}

// NewSingleton returns a singleton stored under the key _o:<name>.
func NewSingleton(name string) Singleton {
	return Singleton{key: []byte("_o:" + name)}
}

// Load reads the stored model into dest. It returns false if nothing was
// stored yet, in which case dest is not modified.
func (s Singleton) Load(db hodl.ReadOnlyKVStore, dest Model) (bool, error) {
	raw, err := db.Get(s.key)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return false, nil
	}
	if err := proto.Unmarshal(raw, dest); err != nil {
		return false, errors.Wrapf(errors.ErrModel, "cannot unmarshal %T: %s", dest, err)
	}
	return true, nil
}

// Save validates and stores the model.
func (s Singleton) Save(db hodl.KVStore, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := proto.Marshal(m)
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot marshal %T: %s", m, err)
	}
	if err := db.Set(s.key, raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Query returns the stored raw value. Query data is ignored.
func (s Singleton) Query(db hodl.ReadOnlyKVStore, mod string, data []byte) ([]hodl.Model, error) {
	if mod != hodl.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
	value, err := db.Get(s.key)
	if err != nil || value == nil {
		return nil, err
	}
	return []hodl.Model{hodl.Pair(s.key, value)}, nil
}

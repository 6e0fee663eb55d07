package owner

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/gconf"
	"github.com/hodl4me/hodl/x"
)

// RegisterRoutes registers the ownership transfer handler.
func RegisterRoutes(r hodl.Registry, auth x.Authenticator) {
	r.Handle(&TransferOwnershipMsg{}, NewTransferOwnershipHandler(auth))
}

// RegisterQuery registers the owner configuration under "/owner".
func RegisterQuery(qr hodl.QueryRouter) {
	qr.Register("/owner", ownerQuery{})
}

// NewTransferOwnershipHandler returns a handler that replaces the owner.
// Only the current owner is allowed to sign the message, there is no way
// to create the configuration outside of the genesis.
func NewTransferOwnershipHandler(auth x.Authenticator) hodl.Handler {
	return gconf.NewUpdateConfigurationHandler(confPkg, &Configuration{}, auth, nil).
		WithPatch(transferOwnership)
}

func transferOwnership(msg hodl.Msg, config gconf.OwnedConfig) error {
	m, ok := msg.(*TransferOwnershipMsg)
	if !ok {
		return errors.Wrapf(errors.ErrType, "want %T message, got %T", m, msg)
	}
	conf, ok := config.(*Configuration)
	if !ok {
		return errors.Wrapf(errors.ErrType, "want %T configuration, got %T", conf, config)
	}
	conf.Owner = m.NewOwner
	return nil
}

// Initializer loads the owner from the "conf" section of the genesis file.
type Initializer struct{}

var _ hodl.Initializer = Initializer{}

func (Initializer) FromGenesis(opts hodl.Options, db hodl.KVStore) error {
	var conf Configuration
	return gconf.InitConfig(db, opts, confPkg, &conf)
}

type ownerQuery struct{}

// Query returns the raw configuration regardless of the key.
func (ownerQuery) Query(db hodl.ReadOnlyKVStore, mod string, data []byte) ([]hodl.Model, error) {
	if mod != hodl.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
	key := []byte("_c:" + confPkg)
	value, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	return []hodl.Model{hodl.Pair(key, value)}, nil
}

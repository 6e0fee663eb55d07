package owner

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/gconf"
	"github.com/hodl4me/hodl/x"
)

// confPkg is the gconf package name the configuration is stored under.
const confPkg = "owner"

var _ gconf.OwnedConfig = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	return errs
}

// Controller answers who the owner is.
type Controller struct{}

// Owner returns the current owner address.
func (Controller) Owner(db gconf.ReadStore) (hodl.Address, error) {
	var conf Configuration
	if err := gconf.Load(db, confPkg, &conf); err != nil {
		return nil, errors.Wrap(err, "load owner configuration")
	}
	return conf.Owner, nil
}

// IsOwner returns nil if the current owner is the main signer of the
// transaction and ErrUnauthorized otherwise. Co-signing is not enough.
func (c Controller) IsOwner(ctx hodl.Context, auth x.Authenticator, db gconf.ReadStore) error {
	owner, err := c.Owner(db)
	if err != nil {
		return err
	}
	caller := x.MainSignerAddress(ctx, auth)
	if caller == nil || !owner.Equals(caller) {
		return errors.Wrap(errors.ErrUnauthorized, "caller is not the owner")
	}
	return nil
}

// SetOwner stores a new owner without any authorization check.
func SetOwner(db gconf.Store, owner hodl.Address) error {
	conf := Configuration{
		Metadata: &hodl.Metadata{Schema: 1},
		Owner:    owner,
	}
	return gconf.Save(db, confPkg, &conf)
}

/*
Package hodld links together all the various components
to construct the hodl vault chain.
*/
package hodld

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/app"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/orm"
	"github.com/hodl4me/hodl/store/iavl"
	"github.com/hodl4me/hodl/x"
	"github.com/hodl4me/hodl/x/cash"
	"github.com/hodl4me/hodl/x/owner"
	"github.com/hodl4me/hodl/x/sigs"
	"github.com/hodl4me/hodl/x/token"
	"github.com/hodl4me/hodl/x/utils"
	"github.com/hodl4me/hodl/x/vault"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to every extension of the chain.
// Native coins move through cashCtrl, so a receive hook registered on it
// is visible to the vault.
func Router(authFn x.Authenticator, cashCtrl *cash.BaseController) *app.Router {
	r := app.NewRouter()
	tokens := token.NewController()
	cash.RegisterRoutes(r, authFn, cashCtrl)
	token.RegisterRoutes(r, authFn, tokens)
	owner.RegisterRoutes(r, authFn)
	vault.RegisterRoutes(r, authFn, cashCtrl, tokens, owner.Controller{})
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/wallets", "/tokens", "/owner", "/banks", "/auth"
// and "/"
func QueryRouter() hodl.QueryRouter {
	r := hodl.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		token.RegisterQuery,
		owner.RegisterQuery,
		vault.RegisterQuery,
		sigs.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() hodl.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn, cash.NewController()))
}

// Initializers returns the genesis loaders of every extension.
func Initializers() hodl.Initializer {
	return hodl.ChainInitializers{
		cash.Initializer{},
		token.Initializer{},
		owner.Initializer{},
		vault.Initializer{},
	}
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h hodl.Handler,
	tx hodl.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store, err := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	if err != nil {
		return app.BaseApp{}, err
	}
	store.WithInit(Initializers())
	return app.NewBaseApp(store, tx, h, debug), nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (hodl.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MemCommitStore(), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name)
}

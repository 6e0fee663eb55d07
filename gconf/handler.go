package gconf

import (
	"reflect"

	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/x"
)

// OwnedConfig must have an Owner field in protobuf. A configuration update
// message must be signed by an owner in order to be authorized to apply the
// change.
type OwnedConfig interface {
	Configuration
	GetOwner() hodl.Address
}

// PatchFunc applies the change carried by a message to the loaded
// configuration.
type PatchFunc func(msg hodl.Msg, config OwnedConfig) error

type UpdateConfigurationHandler struct {
	pkg string
	// We require this type to load the data.
	config    OwnedConfig
	auth      x.Authenticator
	initAdmin func(hodl.ReadOnlyKVStore) (hodl.Address, error)
	patch     PatchFunc
}

var _ hodl.Handler = (*UpdateConfigurationHandler)(nil)

// NewUpdateConfigurationHandler returns a message handler that process
// configuration patch message.
//
// To pass authentication step, each message must be signed by the current
// configuration owner.
//
// When the configuration does not exist, there is no owner that could
// authorize its creation. An optional initConfAdmin can be given to provide
// a creation only admin address. It is consulted only when no configuration
// exists.
//
// By default the message must carry a "Patch" field of the configuration
// type, see WithPatch to change that.
func NewUpdateConfigurationHandler(
	pkg string,
	config OwnedConfig,
	auth x.Authenticator,
	initConfAdmin func(hodl.ReadOnlyKVStore) (hodl.Address, error),
) UpdateConfigurationHandler {
	return UpdateConfigurationHandler{
		pkg:       pkg,
		config:    config,
		auth:      auth,
		initAdmin: initConfAdmin,
		patch:     PatchField,
	}
}

// WithPatch returns a handler that applies messages with fn.
func (h UpdateConfigurationHandler) WithPatch(fn PatchFunc) UpdateConfigurationHandler {
	h.patch = fn
	return h
}

func (h UpdateConfigurationHandler) Check(ctx hodl.Context, store hodl.KVStore, tx hodl.Tx) (*hodl.CheckResult, error) {
	if err := h.applyTx(ctx, store, tx); err != nil {
		return nil, err
	}
	return &hodl.CheckResult{}, nil
}

func (h UpdateConfigurationHandler) Deliver(ctx hodl.Context, store hodl.KVStore, tx hodl.Tx) (*hodl.DeliverResult, error) {
	if err := h.applyTx(ctx, store, tx); err != nil {
		return nil, err
	}
	return &hodl.DeliverResult{}, nil
}

func (h UpdateConfigurationHandler) applyTx(ctx hodl.Context, store hodl.KVStore, tx hodl.Tx) error {
	// The handler instance is shared, never load into h.config directly.
	config := reflect.New(reflect.TypeOf(h.config).Elem()).Interface().(OwnedConfig)

	switch err := Load(store, h.pkg, config); {
	case err == nil:
		// Configuration owner must sign the transaction in order to
		// authenticate the change.
		owner := config.GetOwner()
		if owner == nil {
			return errors.Wrap(errors.ErrUnauthorized, "owner signature required")
		}
		if !owner.Equals(x.MainSignerAddress(ctx, h.auth)) {
			return errors.Wrap(errors.ErrUnauthorized, "caller is not the owner")
		}
	case errors.ErrNotFound.Is(err):
		if h.initAdmin == nil {
			return errors.Wrap(errors.ErrUnauthorized, "configuration does not exist and cannot be initialized")
		}
		admin, err := h.initAdmin(store)
		if err != nil {
			return errors.Wrap(err, "get init admin")
		}
		if !h.auth.HasAddress(ctx, admin) {
			return errors.Wrap(errors.ErrUnauthorized, "initialization admin signature required")
		}
	default:
		return errors.Wrap(err, "load current configuration")
	}

	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := h.patch(msg, config); err != nil {
		return errors.Wrap(err, "cannot patch config with message payload")
	}
	if err := Save(store, h.pkg, config); err != nil {
		return errors.Wrap(err, "cannot save updated config")
	}
	return nil
}

// PatchField expects the message to have a "Patch" field of the same type as
// the configuration. All non zero fields of the patch overwrite the
// configuration.
func PatchField(msg hodl.Msg, config OwnedConfig) error {
	payload, err := patchPayload(msg)
	if err != nil {
		return err
	}
	return patch(config, payload)
}

func patch(config OwnedConfig, payload OwnedConfig) error {
	pType := reflect.TypeOf(payload)
	cType := reflect.TypeOf(config)
	if pType != cType {
		return errors.Wrap(errors.ErrMsg, "config in message doesn't match store")
	}

	cval := reflect.ValueOf(config).Elem()
	pval := reflect.ValueOf(payload).Elem()

	for i := 0; i < cval.NumField(); i++ {
		got := pval.Field(i)

		// Zero values do not update the original configuration.
		if isZero(got) {
			continue
		}

		cval.Field(i).Set(got)
	}

	return nil
}

// isZero returns true if given value represents a zero value of a given type.
func isZero(val reflect.Value) bool {
	zero := reflect.Zero(val.Type()).Interface()
	return reflect.DeepEqual(val.Interface(), zero)
}

func patchPayload(msg hodl.Msg) (OwnedConfig, error) {
	pval := reflect.ValueOf(msg)
	if pval.Kind() != reflect.Ptr || pval.Elem().Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrInput, "invalid message container value: %T", msg)
	}

	field := pval.Elem().FieldByName("Patch")
	if !field.IsValid() {
		return nil, errors.Wrap(errors.ErrInput, `"Patch" field is missing`)
	}
	if field.Kind() != reflect.Ptr || field.IsNil() {
		return nil, errors.Wrap(errors.ErrState, `"Patch" field is required`)
	}
	payload, ok := field.Interface().(OwnedConfig)
	if !ok {
		return nil, errors.Wrap(errors.ErrInput, `"Patch" field is of a wrong type`)
	}
	return payload, nil
}

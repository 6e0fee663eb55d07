package orm

import (
	"reflect"
	"regexp"

	"github.com/gogo/protobuf/proto"
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// ModelBucket stores models of a single type under keys prefixed with the
// bucket name.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary key. Result is loaded into given destination model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db hodl.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given key exists and ErrNotFound
	// otherwise.
	Has(db hodl.ReadOnlyKVStore, key []byte) error

	// ByPrefix loads all models with a key starting with given prefix into
	// dest, which must be a pointer to a slice of model pointers. Keys are
	// returned without the bucket prefix, in ascending order.
	ByPrefix(db hodl.ReadOnlyKVStore, prefix []byte, dest ModelSlicePtr) ([][]byte, error)

	// Put saves given model in the database. If the key is nil, a new one
	// is taken from the id sequence. The key of the stored entity is
	// returned.
	Put(db hodl.KVStore, key []byte, m Model) ([]byte, error)

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db hodl.KVStore, key []byte) error

	// Register adds this bucket to the query router under /<name>.
	Register(name string, r hodl.QueryRouter)
}

// ModelBucketOption configures a ModelBucket.
type ModelBucketOption func(*modelBucket)

// WithIDSequence sets the sequence used to generate keys for models stored
// with a nil key.
func WithIDSequence(s Sequence) ModelBucketOption {
	return func(mb *modelBucket) {
		mb.idSeq = &s
	}
}

// NewModelBucket returns a ModelBucket storing models of the same type as m
// under keys prefixed with "<name>:".
// It panics if the name is not 3 to 10 lowercase letters or underscores.
func NewModelBucket(name string, m Model, opts ...ModelBucketOption) ModelBucket {
	if !isBucketName(name) {
		panic("invalid bucket name: " + name)
	}
	mb := &modelBucket{
		name:      name,
		prefix:    []byte(name + ":"),
		modelType: reflect.TypeOf(m),
	}
	for _, fn := range opts {
		fn(mb)
	}
	return mb
}

type modelBucket struct {
	name      string
	prefix    []byte
	modelType reflect.Type
	idSeq     *Sequence
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) One(db hodl.ReadOnlyKVStore, key []byte, dest Model) error {
	if key == nil {
		return errors.Wrap(errors.ErrHuman, "nil key")
	}
	if t := reflect.TypeOf(dest); t != mb.modelType {
		return errors.Wrapf(errors.ErrType, "%s cannot be represented as %s", mb.modelType, t)
	}
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s not in the store", mb.modelType)
	}
	if err := proto.Unmarshal(raw, dest); err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot unmarshal %s: %s", mb.modelType, err)
	}
	return nil
}

func (mb *modelBucket) Has(db hodl.ReadOnlyKVStore, key []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrHuman, "nil key")
	}
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s not in the store", mb.modelType)
	}
	return nil
}

func (mb *modelBucket) ByPrefix(db hodl.ReadOnlyKVStore, prefix []byte, dest ModelSlicePtr) ([][]byte, error) {
	slice := reflect.ValueOf(dest)
	if slice.Kind() != reflect.Ptr || slice.Elem().Kind() != reflect.Slice {
		return nil, errors.Wrap(errors.ErrType, "destination must be a pointer to a slice")
	}
	if elem := slice.Elem().Type().Elem(); elem != mb.modelType {
		return nil, errors.Wrapf(errors.ErrType, "%s cannot be represented as %s", mb.modelType, elem)
	}

	start := mb.dbKey(prefix)
	it, err := db.Iterator(start, PrefixEnd(start))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	defer it.Close()

	var keys [][]byte
	items := slice.Elem()
	for ; it.Valid(); it.Next() {
		m := reflect.New(mb.modelType.Elem())
		if err := proto.Unmarshal(it.Value(), m.Interface().(Model)); err != nil {
			return nil, errors.Wrapf(errors.ErrModel, "cannot unmarshal %s: %s", mb.modelType, err)
		}
		items = reflect.Append(items, m)
		keys = append(keys, append([]byte(nil), it.Key()[len(mb.prefix):]...))
	}
	slice.Elem().Set(items)
	return keys, nil
}

func (mb *modelBucket) Put(db hodl.KVStore, key []byte, m Model) ([]byte, error) {
	if t := reflect.TypeOf(m); t != mb.modelType {
		return nil, errors.Wrapf(errors.ErrType, "cannot store %s in a %s bucket", t, mb.modelType)
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}
	if key == nil {
		if mb.idSeq == nil {
			return nil, errors.Wrap(errors.ErrHuman, "key required, bucket has no id sequence")
		}
		next, err := mb.idSeq.NextVal(db)
		if err != nil {
			return nil, errors.Wrap(err, "id sequence")
		}
		key = next
	}
	raw, err := proto.Marshal(m)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot marshal %s: %s", mb.modelType, err)
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return key, nil
}

func (mb *modelBucket) Delete(db hodl.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	if err := db.Delete(mb.dbKey(key)); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func (mb *modelBucket) Register(name string, r hodl.QueryRouter) {
	if name == "" {
		name = mb.name
	}
	r.Register("/"+name, mb)
}

// Query handles queries from the QueryRouter. Returned keys include the
// bucket prefix.
func (mb *modelBucket) Query(db hodl.ReadOnlyKVStore, mod string, data []byte) ([]hodl.Model, error) {
	switch mod {
	case hodl.KeyQueryMod:
		key := mb.dbKey(data)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		// return nothing on miss
		if value == nil {
			return nil, nil
		}
		return []hodl.Model{hodl.Pair(key, value)}, nil
	case hodl.PrefixQueryMod:
		return QueryPrefix(db, mb.dbKey(data))
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}

// dbKey returns a new slice, appending to the shared prefix could make two
// keys alias each other.
func (mb *modelBucket) dbKey(key []byte) []byte {
	out := make([]byte, len(mb.prefix)+len(key))
	copy(out, mb.prefix)
	copy(out[len(mb.prefix):], key)
	return out
}

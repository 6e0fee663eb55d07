package vault

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/orm"
)

const (
	// BucketName is where banks are stored.
	BucketName = "bank"

	overrideName = "vault"
)

// Ledger is the per depositor append only list of banks. Indexes are
// stable, a bank is never removed.
type Ledger struct {
	banks    orm.ModelBucket
	override orm.Singleton
}

// NewLedger returns a ledger using the default storage layout.
func NewLedger() Ledger {
	return Ledger{
		banks:    orm.NewModelBucket(BucketName, &Bank{}),
		override: orm.NewSingleton(overrideName),
	}
}

// BankKey returns the key of a bank, depositor || index.
func BankKey(depositor hodl.Address, index uint64) []byte {
	key := make([]byte, len(depositor)+8)
	copy(key, depositor)
	binary.BigEndian.PutUint64(key[len(depositor):], index)
	return key
}

func lengthCounter(depositor hodl.Address) orm.Sequence {
	return orm.NewSequence(BucketName, hex.EncodeToString(depositor))
}

// Length returns the number of banks the depositor ever created.
func (l Ledger) Length(db hodl.ReadOnlyKVStore, depositor hodl.Address) (uint64, error) {
	return lengthCounter(depositor).Current(db)
}

// Append stores a new bank at the end of the depositor's list and returns
// its index.
func (l Ledger) Append(db hodl.KVStore, bank *Bank) (uint64, error) {
	if err := bank.Validate(); err != nil {
		return 0, err
	}
	n, err := lengthCounter(bank.Depositor).NextInt(db)
	if err != nil {
		return 0, errors.Wrap(err, "bank counter")
	}
	index := n - 1
	if _, err := l.banks.Put(db, BankKey(bank.Depositor, index), bank); err != nil {
		return 0, errors.Wrap(err, "save bank")
	}
	return index, nil
}

// BankInfo returns the bank stored under index. ErrIndexOutOfBounds is
// returned for an index the depositor never created.
func (l Ledger) BankInfo(db hodl.ReadOnlyKVStore, depositor hodl.Address, index uint64) (*Bank, error) {
	length, err := l.Length(db, depositor)
	if err != nil {
		return nil, err
	}
	if index >= length {
		return nil, errors.Wrapf(ErrIndexOutOfBounds, "index %d, length %d", index, length)
	}
	var b Bank
	if err := l.banks.One(db, BankKey(depositor, index), &b); err != nil {
		return nil, errors.Wrapf(err, "bank %d", index)
	}
	return &b, nil
}

// Update overwrites an existing bank.
func (l Ledger) Update(db hodl.KVStore, index uint64, bank *Bank) error {
	key := BankKey(bank.Depositor, index)
	if err := l.banks.Has(db, key); err != nil {
		return errors.Wrapf(ErrIndexOutOfBounds, "index %d", index)
	}
	_, err := l.banks.Put(db, key, bank)
	return err
}

// Banks returns all banks of the depositor, ordered by index.
func (l Ledger) Banks(db hodl.ReadOnlyKVStore, depositor hodl.Address) ([]*Bank, error) {
	var banks []*Bank
	if _, err := l.banks.ByPrefix(db, depositor, &banks); err != nil {
		return nil, err
	}
	return banks, nil
}

// OverrideEnabled returns the state of the emergency unlock switch, false
// if it was never set.
func (l Ledger) OverrideEnabled(db hodl.ReadOnlyKVStore) (bool, error) {
	var o Override
	found, err := l.override.Load(db, &o)
	if err != nil {
		return false, err
	}
	return found && o.Enabled, nil
}

// SetOverride stores the state of the emergency unlock switch.
func (l Ledger) SetOverride(db hodl.KVStore, enabled bool) error {
	return l.override.Save(db, &Override{
		Metadata: &hodl.Metadata{Schema: 1},
		Enabled:  enabled,
	})
}

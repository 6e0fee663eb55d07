package sigs

import (
	"github.com/hodl4me/hodl"
	"github.com/hodl4me/hodl/crypto"
	"github.com/hodl4me/hodl/errors"
	"github.com/hodl4me/hodl/orm"
)

// BucketName is where we store the accounts
const BucketName = "sigs"

// maxSequenceValue is the greatest nonce a javascript client can represent
// exactly, Number.MAX_SAFE_INTEGER.
const maxSequenceValue = (1 << 53) - 1

var _ orm.Model = (*UserData)(nil)

// Validate returns an error if the user data is inconsistent.
func (u *UserData) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", u.Metadata.Validate())
	errs = errors.AppendField(errs, "Pubkey", u.Pubkey.Validate())
	if u.Sequence < 0 {
		errs = errors.AppendField(errs, "Sequence", ErrInvalidSequence)
	}
	return errs
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", expected, u.Sequence)
	}
	next := u.Sequence + 1
	if next <= 0 || next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

// NewUser returns the initial state of a key that never signed anything.
func NewUser(pubkey crypto.PublicKey) *UserData {
	return &UserData{
		Metadata: &hodl.Metadata{Schema: 1},
		Pubkey:   pubkey,
	}
}

// Bucket stores UserData under the address of the public key.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket returns a bucket for managing user data.
func NewBucket() Bucket {
	return Bucket{orm.NewModelBucket(BucketName, &UserData{})}
}

// GetOrCreate loads the user data of given key or returns a new, unsaved
// one.
func (b Bucket) GetOrCreate(db hodl.ReadOnlyKVStore, pubkey crypto.PublicKey) (*UserData, error) {
	var user UserData
	switch err := b.One(db, pubkey.Address(), &user); {
	case err == nil:
		return &user, nil
	case errors.ErrNotFound.Is(err):
		return NewUser(pubkey), nil
	default:
		return nil, err
	}
}

// Save stores the user data under the address of its key.
func (b Bucket) Save(db hodl.KVStore, user *UserData) error {
	_, err := b.Put(db, user.Pubkey.Address(), user)
	return err
}

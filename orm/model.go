package orm

import (
	"github.com/hodl4me/hodl"
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	hodl.Persistent
	Validate() error
}

// ModelSlicePtr represents a pointer to a slice of models. For example
// *[]*vault.Bank. It is the destination of functions returning many models.
type ModelSlicePtr interface{}

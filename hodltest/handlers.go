package hodltest

import "github.com/hodl4me/hodl"

// Handler is a mock implementation of the hodl.Handler interface. It
// counts calls and returns the configured results.
type Handler struct {
	checkCall   int
	CheckResult hodl.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult hodl.DeliverResult
	DeliverErr    error
}

var _ hodl.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// WriteHandler writes Key=Value to the store before returning Err. It is
// used to verify that failed transactions do not leave writes behind.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ hodl.Handler = (*WriteHandler)(nil)

func (h *WriteHandler) Check(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &hodl.CheckResult{}, nil
}

func (h *WriteHandler) Deliver(ctx hodl.Context, db hodl.KVStore, tx hodl.Tx) (*hodl.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &hodl.DeliverResult{}, nil
}

// PanicHandler always panics with given value.
type PanicHandler struct {
	Value interface{}
}

var _ hodl.Handler = PanicHandler{}

func (h PanicHandler) Check(hodl.Context, hodl.KVStore, hodl.Tx) (*hodl.CheckResult, error) {
	panic(h.Value)
}

func (h PanicHandler) Deliver(hodl.Context, hodl.KVStore, hodl.Tx) (*hodl.DeliverResult, error) {
	panic(h.Value)
}

package weavetest

import "github.com/iov-one/gamechain"

// Handler is a mock implementation of the gamechain.Handler interface.
//
// Each method call is counted. Configured result and error are returned.
type Handler struct {
	checkCall   int
	CheckResult gamechain.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult gamechain.DeliverResult
	DeliverErr    error

	// Write if set is stored under the key "weavetest" before returning,
	// so that tests can check whether the state change was kept.
	Write []byte
}

var _ gamechain.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.CheckResult, error) {
	h.checkCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx gamechain.Context, db gamechain.KVStore, tx gamechain.Tx) (*gamechain.DeliverResult, error) {
	h.deliverCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) write(db gamechain.KVStore) error {
	if h.Write == nil {
		return nil
	}
	return db.Set(HandlerWriteKey, h.Write)
}

// HandlerWriteKey is where Handler stores its Write value.
var HandlerWriteKey = []byte("weavetest")

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// PanicHandler always panics with the given value.
type PanicHandler struct {
	Value interface{}
}

var _ gamechain.Handler = PanicHandler{}

func (p PanicHandler) Check(gamechain.Context, gamechain.KVStore, gamechain.Tx) (*gamechain.CheckResult, error) {
	panic(p.Value)
}

func (p PanicHandler) Deliver(gamechain.Context, gamechain.KVStore, gamechain.Tx) (*gamechain.DeliverResult, error) {
	panic(p.Value)
}

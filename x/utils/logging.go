package utils

import (
	"time"

	"github.com/iov-one/gamechain"
)

// Logging is a decorator to log calls as they pass through
type Logging struct{}

var _ gamechain.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> info, success -> debug
func (r Logging) Check(ctx gamechain.Context, store gamechain.KVStore, tx gamechain.Tx, next gamechain.Checker) (*gamechain.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx gamechain.Context, store gamechain.KVStore, tx gamechain.Tx, next gamechain.Deliverer) (*gamechain.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the call, the time it took and its
// result to the logger
func logDuration(ctx gamechain.Context, tx gamechain.Tx, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := gamechain.GetLogger(ctx).With(
		"path", gamechain.GetPath(tx),
		"duration", delta/time.Microsecond,
	)
	if h, ok := gamechain.GetHeight(ctx); ok {
		logger = logger.With("height", h)
	}

	// Although message can be empty, we still want to emit a log entry
	// because it contains other relevant information beside the message.
	switch {
	case err != nil:
		logger.Error(msg, "err", err)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}

package utils

import (
	"time"

	"github.com/hodl4me/hodl"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ hodl.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (Logging) Check(ctx hodl.Context, store hodl.KVStore, tx hodl.Tx, next hodl.Checker) (*hodl.CheckResult, error) {
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
func (Logging) Deliver(ctx hodl.Context, store hodl.KVStore, tx hodl.Tx, next hodl.Deliverer) (*hodl.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx hodl.Context, tx hodl.Tx, start time.Time, msg string, err error, lowPrio bool) {
	logger := hodl.GetLogger(ctx).With(
		"path", hodl.GetPath(tx),
		"duration", time.Since(start)/time.Microsecond,
	)

	// An empty message is still logged, the key values carry the
	// information.
	switch {
	case err != nil:
		logger.Error(msg, "err", err)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}

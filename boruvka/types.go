package boruvka

import (
	"context"
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("boruvka: invalid option supplied")

// RoundStats describes the outcome of one Borůvka round.
type RoundStats struct {
	// Round is the 1-based round number.
	Round int

	// Committed is the number of edges added to the tree in this round.
	Committed int

	// Components is the number of components left after the round.
	Components int

	// Weight is the running total weight of all committed edges.
	Weight int64
}

// Option configures ComputeMST via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for a ComputeMST run.
type Options struct {
	// Ctx allows cancellation between rounds.
	Ctx context.Context

	// SpanningForest, when true, makes a disconnected graph yield its minimum
	// spanning forest instead of core.ErrDisconnected.
	SpanningForest bool

	// OnRound is called after every round. Returning an error aborts the
	// computation and propagates that error.
	OnRound func(RoundStats) error

	err error
}

// DefaultOptions returns Options with a background context, spanning-forest
// mode disabled and a no-op OnRound hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		SpanningForest: false,
		OnRound:        func(RoundStats) error { return nil },
	}
}

// WithContext sets a context that is checked before every round.
// A nil context is recorded as an option violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: context must not be nil", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithSpanningForest returns the minimum spanning forest for disconnected
// graphs instead of failing with core.ErrDisconnected.
func WithSpanningForest() Option {
	return func(o *Options) {
		o.SpanningForest = true
	}
}

// WithOnRound registers a callback run after every round.
func WithOnRound(fn func(RoundStats) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

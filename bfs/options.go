package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStartVertexNotFound is returned when the start ID is not a vertex.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option tunes a traversal. Invalid values are recorded and reported by the
// traversal call, never by the Option itself.
type Option func(*Options)

// Options is the resolved traversal configuration. Hooks are never nil
// after resolution.
type Options struct {
	Ctx context.Context

	// OnEnqueue runs when a vertex is discovered, with its depth.
	OnEnqueue func(id string, depth int)
	// OnDequeue runs right before a vertex is visited.
	OnDequeue func(id string, depth int)
	// OnVisit runs on every visit; a non-nil error aborts the traversal.
	OnVisit func(id string, depth int) error

	// MaxDepth > 0 stops discovery past that depth; 0 means unlimited.
	MaxDepth int

	// FilterNeighbor returning false hides the edge curr-neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

func defaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(string, string) bool { return true },
	}
}

// resolve applies opts over the defaults and surfaces recorded violations.
func resolve(opts []Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithContext makes the traversal stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue sets the discovery hook.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue sets the pre-visit hook.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit sets the visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits discovery to depth d (d > 0) or lifts the limit
// (d == 0). Negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor hides every edge for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

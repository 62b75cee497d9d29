package snapshot

import (
	"context"

	"github.com/katalvlaran/roadledger/core"
	"golang.org/x/sync/errgroup"
)

// Sink persists a full snapshot of the graph.
type Sink interface {
	Save(ctx context.Context, v *core.View) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, v *core.View) error

// Save calls f(ctx, v).
func (f SinkFunc) Save(ctx context.Context, v *core.View) error { return f(ctx, v) }

type multiSink []Sink

// Multi returns a Sink that saves to every sink concurrently and reports the
// first error. One sink failing does not cancel the others. The View is
// read-only, so the sinks share it safely.
func Multi(sinks ...Sink) Sink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	if len(out) == 1 {
		return out[0]
	}

	return out
}

func (m multiSink) Save(ctx context.Context, v *core.View) error {
	var eg errgroup.Group
	for _, s := range m {
		eg.Go(func() error {
			return s.Save(ctx, v)
		})
	}

	return eg.Wait()
}

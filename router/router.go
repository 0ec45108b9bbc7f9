// Package router fans decoded gateway events out to registered handlers.
//
// A Router sits between the transport collaborator and application code: it
// resolves each payload through the gateway package and runs every handler
// registered for the resulting event type. Register handlers before routing;
// registration is not safe concurrently with Route.
package router

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/avelier/disgate/gateway"
)

// HandlerFunc handles one decoded event. Handlers for the same event run
// concurrently; a non-nil error aborts the Route call that dispatched them.
type HandlerFunc func(ctx context.Context, event gateway.Event) error

// Router maps event types to handlers.
type Router struct {
	handlers map[gateway.EventType][]HandlerFunc
	log      zerolog.Logger

	routed  atomic.Int64
	unknown atomic.Int64
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for unknown-event warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Router) { r.log = log }
}

// New returns an empty Router.
func New(opts ...Option) *Router {
	r := &Router{
		handlers: make(map[gateway.EventType][]HandlerFunc),
		log:      zerolog.Nop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// On registers a handler for an event type. Multiple handlers per type are
// allowed and run concurrently.
func (r *Router) On(t gateway.EventType, fn HandlerFunc) {
	r.handlers[t] = append(r.handlers[t], fn)
}

// Route resolves one payload and dispatches the event to its handlers,
// waiting for all of them. Decode failures are returned unchanged so the
// caller can decide what is fatal; unknown dispatch events are additionally
// logged at warn level because callers commonly ignore them for forward
// compatibility.
func (r *Router) Route(ctx context.Context, p gateway.Payload) error {
	event, err := gateway.Resolve(p)
	if err != nil {
		var unknown *gateway.UnknownEventError
		if errors.As(err, &unknown) {
			r.unknown.Inc()
			r.log.Warn().Str("tag", unknown.Tag).Msg("unknown dispatch event")
		}
		return err
	}

	r.routed.Inc()

	handlers := r.handlers[event.Type()]
	if len(handlers) == 0 {
		return nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, fn := range handlers {
		fn := fn
		eg.Go(func() error {
			return fn(ctx, event)
		})
	}
	return eg.Wait()
}

// Routed returns the number of successfully resolved payloads.
func (r *Router) Routed() int64 { return r.routed.Load() }

// Unknown returns the number of payloads rejected for an unknown dispatch
// event name.
func (r *Router) Unknown() int64 { return r.unknown.Load() }

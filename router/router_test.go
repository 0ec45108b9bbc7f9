package router

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelier/disgate/gateway"
)

func strPtr(s string) *string { return &s }

func helloPayload() gateway.Payload {
	return gateway.Payload{
		Op: gateway.OpcodeHello,
		D:  json.RawMessage(`{"heartbeat_interval": 41250}`),
	}
}

func messageCreatePayload() gateway.Payload {
	return gateway.Payload{
		Op: gateway.OpcodeDispatch,
		T:  strPtr("MESSAGE_CREATE"),
		D: json.RawMessage(`{
			"id": "m1",
			"channel_id": "c1",
			"author": {"id":"u1","username":"ana","discriminator":"0001","avatar":null},
			"content": "hi",
			"timestamp": "2020-03-01T16:04:05.000000+00:00",
			"tts": false,
			"mention_everyone": false,
			"mentions": [],
			"mention_roles": [],
			"attachments": [],
			"pinned": false
		}`),
	}
}

func TestRouteInvokesHandler(t *testing.T) {
	r := New()

	var got gateway.Event
	r.On(gateway.EventTypeMessageCreate, func(_ context.Context, event gateway.Event) error {
		got = event
		return nil
	})

	require.NoError(t, r.Route(context.Background(), messageCreatePayload()))

	created, ok := got.(gateway.MessageCreate)
	require.True(t, ok, "got %T", got)
	assert.Equal(t, "m1", created.ID)
	assert.Equal(t, int64(1), r.Routed())
}

func TestRouteRunsAllHandlers(t *testing.T) {
	r := New()

	var mu sync.Mutex
	var seen []string
	record := func(name string) HandlerFunc {
		return func(context.Context, gateway.Event) error {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, name)
			return nil
		}
	}
	r.On(gateway.EventTypeHello, record("first"))
	r.On(gateway.EventTypeHello, record("second"))

	require.NoError(t, r.Route(context.Background(), helloPayload()))
	assert.ElementsMatch(t, []string{"first", "second"}, seen)
}

func TestRouteHandlerErrorPropagates(t *testing.T) {
	r := New()

	handlerErr := errors.New("handler failed")
	r.On(gateway.EventTypeHello, func(context.Context, gateway.Event) error {
		return handlerErr
	})

	err := r.Route(context.Background(), helloPayload())
	assert.ErrorIs(t, err, handlerErr)
}

func TestRouteNoHandlers(t *testing.T) {
	r := New()
	require.NoError(t, r.Route(context.Background(), helloPayload()))
	assert.Equal(t, int64(1), r.Routed())
}

func TestRouteUnknownEventSurfacedAndCounted(t *testing.T) {
	r := New()

	err := r.Route(context.Background(), gateway.Payload{
		Op: gateway.OpcodeDispatch,
		T:  strPtr("SOME_FUTURE_EVENT"),
		D:  json.RawMessage(`{}`),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrUnknownEvent)
	assert.Equal(t, int64(1), r.Unknown())
	assert.Equal(t, int64(0), r.Routed())
}

func TestRouteDecodeFailureBypassesHandlers(t *testing.T) {
	r := New()

	called := false
	r.On(gateway.EventTypeHello, func(context.Context, gateway.Event) error {
		called = true
		return nil
	})

	err := r.Route(context.Background(), gateway.Payload{Op: gateway.OpcodeHello})
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrMalformedPayload)
	assert.False(t, called)
}

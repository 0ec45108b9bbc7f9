// Package rest implements the HTTP collaborator that message actions call.
//
// The client issues one request per call and propagates failures verbatim:
// no retries, no rate limiting. Timeouts and cancellation belong to the
// caller's context and the underlying http.Client.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/avelier/disgate/discord"
)

const defaultBaseURL = "https://discord.com/api/v6"

var _ discord.Rest = (*Client)(nil)

// Client calls the platform REST API. It implements discord.Rest.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests and proxies.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the request logger. Requests log at debug level only.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New returns a Client authenticating with the given bot token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: defaultBaseURL,
		http:    http.DefaultClient,
		log:     zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// APIError is a failure response from the REST API, returned untouched to the
// caller.
type APIError struct {
	Status  int    `json:"-"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rest: status %d code %d: %s", e.Status, e.Code, e.Message)
}

// createMessageRequest is the body of a message create call. The nonce lets
// the gateway echo back which create produced a MESSAGE_CREATE event.
type createMessageRequest struct {
	Content string         `json:"content,omitempty"`
	Embed   *discord.Embed `json:"embed,omitempty"`
	Nonce   string         `json:"nonce,omitempty"`
	TTS     bool           `json:"tts,omitempty"`
}

// CreateMessage posts a new message to a channel.
func (c *Client) CreateMessage(ctx context.Context, channelID, content string) (*discord.Message, error) {
	body := createMessageRequest{
		Content: content,
		Nonce:   uuid.NewString(),
	}
	var msg discord.Message
	path := fmt.Sprintf("/channels/%s/messages", channelID)
	if err := c.do(ctx, http.MethodPost, path, body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// CreateEmbedMessage posts an embed to a channel.
func (c *Client) CreateEmbedMessage(ctx context.Context, channelID string, embed discord.Embed) (*discord.Message, error) {
	body := createMessageRequest{
		Embed: &embed,
		Nonce: uuid.NewString(),
	}
	var msg discord.Message
	path := fmt.Sprintf("/channels/%s/messages", channelID)
	if err := c.do(ctx, http.MethodPost, path, body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// CreateReaction reacts to a message with an emoji. emoji is the literal
// unicode character, or name:id for custom emoji.
func (c *Client) CreateReaction(ctx context.Context, channelID, messageID, emoji string) error {
	path := fmt.Sprintf("/channels/%s/messages/%s/reactions/%s/@me",
		channelID, messageID, url.PathEscape(emoji))
	return c.do(ctx, http.MethodPut, path, nil, nil)
}

// DeleteMessage deletes a message.
func (c *Client) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	path := fmt.Sprintf("/channels/%s/messages/%s", channelID, messageID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// PinMessage pins a message in its channel.
func (c *Client) PinMessage(ctx context.Context, channelID, messageID string) error {
	path := fmt.Sprintf("/channels/%s/pins/%s", channelID, messageID)
	return c.do(ctx, http.MethodPut, path, nil, nil)
}

// UnpinMessage removes a message from its channel's pins.
func (c *Client) UnpinMessage(ctx context.Context, channelID, messageID string) error {
	path := fmt.Sprintf("/channels/%s/pins/%s", channelID, messageID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do issues one request and decodes the response into out when out is
// non-nil. Non-2xx responses decode into an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("rest request")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close() //nolint:errcheck
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

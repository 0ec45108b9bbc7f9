package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRest records collaborator calls and returns canned results.
type fakeRest struct {
	calls []string
	err   error
	msg   *Message
}

func (f *fakeRest) CreateMessage(_ context.Context, channelID, content string) (*Message, error) {
	f.calls = append(f.calls, "create "+channelID+" "+content)
	return f.msg, f.err
}

func (f *fakeRest) CreateEmbedMessage(_ context.Context, channelID string, embed Embed) (*Message, error) {
	f.calls = append(f.calls, "embed "+channelID+" "+embed.Title)
	return f.msg, f.err
}

func (f *fakeRest) CreateReaction(_ context.Context, channelID, messageID, emoji string) error {
	f.calls = append(f.calls, "react "+channelID+" "+messageID+" "+emoji)
	return f.err
}

func (f *fakeRest) DeleteMessage(_ context.Context, channelID, messageID string) error {
	f.calls = append(f.calls, "delete "+channelID+" "+messageID)
	return f.err
}

func (f *fakeRest) PinMessage(_ context.Context, channelID, messageID string) error {
	f.calls = append(f.calls, "pin "+channelID+" "+messageID)
	return f.err
}

func (f *fakeRest) UnpinMessage(_ context.Context, channelID, messageID string) error {
	f.calls = append(f.calls, "unpin "+channelID+" "+messageID)
	return f.err
}

func testMessage() *Message {
	return &Message{ID: "m1", ChannelID: "c1", Content: "hi"}
}

func TestMessageSend(t *testing.T) {
	rest := &fakeRest{msg: &Message{ID: "m2", ChannelID: "c1"}}
	msg := testMessage()

	created, err := msg.Send(context.Background(), rest, "reply")
	require.NoError(t, err)
	assert.Equal(t, "m2", created.ID)
	assert.Equal(t, []string{"create c1 reply"}, rest.calls)
}

func TestMessageSendEmbed(t *testing.T) {
	rest := &fakeRest{msg: &Message{ID: "m2", ChannelID: "c1"}}
	msg := testMessage()

	created, err := msg.SendEmbed(context.Background(), rest, Embed{Title: "stats"})
	require.NoError(t, err)
	assert.Equal(t, "m2", created.ID)
	assert.Equal(t, []string{"embed c1 stats"}, rest.calls)
}

func TestMessageReactions(t *testing.T) {
	rest := &fakeRest{}
	msg := testMessage()

	require.NoError(t, msg.AddReaction(context.Background(), rest, "🦀"))
	require.NoError(t, msg.AddReactionToMessage(context.Background(), rest, "m9", "🦀"))
	assert.Equal(t, []string{"react c1 m1 🦀", "react c1 m9 🦀"}, rest.calls)
}

func TestMessageRemovePinUnpin(t *testing.T) {
	rest := &fakeRest{}
	msg := testMessage()

	require.NoError(t, msg.Remove(context.Background(), rest))
	require.NoError(t, msg.Pin(context.Background(), rest))
	require.NoError(t, msg.Unpin(context.Background(), rest))
	assert.Equal(t, []string{"delete c1 m1", "pin c1 m1", "unpin c1 m1"}, rest.calls)
}

// Actions must surface the collaborator's failure untouched.
func TestMessageActionsPropagateErrors(t *testing.T) {
	restErr := errors.New("collaborator down")
	rest := &fakeRest{err: restErr}
	msg := testMessage()
	ctx := context.Background()

	_, err := msg.Send(ctx, rest, "x")
	assert.Same(t, restErr, err)
	_, err = msg.SendEmbed(ctx, rest, Embed{})
	assert.Same(t, restErr, err)
	assert.Same(t, restErr, msg.AddReaction(ctx, rest, "e"))
	assert.Same(t, restErr, msg.AddReactionToMessage(ctx, rest, "m9", "e"))
	assert.Same(t, restErr, msg.Remove(ctx, rest))
	assert.Same(t, restErr, msg.Pin(ctx, rest))
	assert.Same(t, restErr, msg.Unpin(ctx, rest))
}

// Pin and Unpin never mutate the local value; pin state changes arrive as new
// decoded values.
func TestMessagePinDoesNotMutate(t *testing.T) {
	rest := &fakeRest{}
	msg := testMessage()

	require.NoError(t, msg.Pin(context.Background(), rest))
	assert.False(t, msg.Pinned)
	require.NoError(t, msg.Unpin(context.Background(), rest))
	assert.False(t, msg.Pinned)
}

package discord

import "context"

// Rest is the handle into the REST collaborator that message actions call.
// Actions receive it explicitly per call; entities never hold one.
type Rest interface {
	CreateMessage(ctx context.Context, channelID, content string) (*Message, error)
	CreateEmbedMessage(ctx context.Context, channelID string, embed Embed) (*Message, error)
	CreateReaction(ctx context.Context, channelID, messageID, emoji string) error
	DeleteMessage(ctx context.Context, channelID, messageID string) error
	PinMessage(ctx context.Context, channelID, messageID string) error
	UnpinMessage(ctx context.Context, channelID, messageID string) error
}

// Send posts a new message to this message's channel and returns the created
// message. Collaborator failures are returned untouched.
func (m *Message) Send(ctx context.Context, rest Rest, content string) (*Message, error) {
	return rest.CreateMessage(ctx, m.ChannelID, content)
}

// SendEmbed posts an embed to this message's channel and returns the created
// message.
func (m *Message) SendEmbed(ctx context.Context, rest Rest, embed Embed) (*Message, error) {
	return rest.CreateEmbedMessage(ctx, m.ChannelID, embed)
}

// AddReaction reacts to this message with the given emoji.
func (m *Message) AddReaction(ctx context.Context, rest Rest, emoji string) error {
	return rest.CreateReaction(ctx, m.ChannelID, m.ID, emoji)
}

// AddReactionToMessage reacts to another message in this message's channel.
func (m *Message) AddReactionToMessage(ctx context.Context, rest Rest, messageID, emoji string) error {
	return rest.CreateReaction(ctx, m.ChannelID, messageID, emoji)
}

// Remove deletes this message.
func (m *Message) Remove(ctx context.Context, rest Rest) error {
	return rest.DeleteMessage(ctx, m.ChannelID, m.ID)
}

// Pin pins this message in its channel. The receiver's Pinned field is not
// touched; the new state arrives through a later update event.
func (m *Message) Pin(ctx context.Context, rest Rest) error {
	return rest.PinMessage(ctx, m.ChannelID, m.ID)
}

// Unpin removes this message from its channel's pins.
func (m *Message) Unpin(ctx context.Context, rest Rest) error {
	return rest.UnpinMessage(ctx, m.ChannelID, m.ID)
}

package gateway

import "github.com/avelier/disgate/discord"

// MessageCreate delivers a newly sent message.
type MessageCreate struct {
	discord.Message
}

func (MessageCreate) Type() EventType { return EventTypeMessageCreate }

// MessageUpdate delivers the new state of an edited message. Application code
// replaces any held copy with this value; the original is never mutated.
type MessageUpdate struct {
	discord.Message
}

func (MessageUpdate) Type() EventType { return EventTypeMessageUpdate }

// MessageDelete announces a deleted message by identity only.
type MessageDelete struct {
	ID        string  `json:"id"`
	ChannelID string  `json:"channel_id"`
	GuildID   *string `json:"guild_id,omitempty"`
}

func (MessageDelete) Type() EventType { return EventTypeMessageDelete }

// MessageDeleteBulk announces a batch deletion within one channel.
type MessageDeleteBulk struct {
	IDs       []string `json:"ids"`
	ChannelID string   `json:"channel_id"`
	GuildID   *string  `json:"guild_id,omitempty"`
}

func (MessageDeleteBulk) Type() EventType { return EventTypeMessageDeleteBulk }

// MessageReactionAdd announces a reaction added to a message.
type MessageReactionAdd struct {
	UserID    string               `json:"user_id"`
	ChannelID string               `json:"channel_id"`
	MessageID string               `json:"message_id"`
	GuildID   *string              `json:"guild_id,omitempty"`
	Member    *discord.GuildMember `json:"member,omitempty"`
	Emoji     discord.Emoji        `json:"emoji"`
}

func (MessageReactionAdd) Type() EventType { return EventTypeMessageReactionAdd }

// MessageReactionRemove announces one user's reaction being removed.
type MessageReactionRemove struct {
	UserID    string        `json:"user_id"`
	ChannelID string        `json:"channel_id"`
	MessageID string        `json:"message_id"`
	GuildID   *string       `json:"guild_id,omitempty"`
	Emoji     discord.Emoji `json:"emoji"`
}

func (MessageReactionRemove) Type() EventType { return EventTypeMessageReactionRemove }

// MessageReactionRemoveAll announces all reactions being cleared from a
// message.
type MessageReactionRemoveAll struct {
	ChannelID string  `json:"channel_id"`
	MessageID string  `json:"message_id"`
	GuildID   *string `json:"guild_id,omitempty"`
}

func (MessageReactionRemoveAll) Type() EventType { return EventTypeMessageReactionRemoveAll }

// MessageReactionRemoveEmoji announces one emoji's reactions being cleared
// from a message.
type MessageReactionRemoveEmoji struct {
	ChannelID string        `json:"channel_id"`
	MessageID string        `json:"message_id"`
	GuildID   *string       `json:"guild_id,omitempty"`
	Emoji     discord.Emoji `json:"emoji"`
}

func (MessageReactionRemoveEmoji) Type() EventType { return EventTypeMessageReactionRemoveEmoji }

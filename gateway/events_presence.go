package gateway

import "github.com/avelier/disgate/discord"

// PresenceUpdate carries a user's new presence within a guild.
type PresenceUpdate struct {
	User       discord.User       `json:"user"`
	GuildID    *string            `json:"guild_id,omitempty"`
	Status     string             `json:"status"`
	Activities []discord.Activity `json:"activities,omitempty"`
}

func (PresenceUpdate) Type() EventType { return EventTypePresenceUpdate }

// TypingStart announces a user starting to type in a channel.
type TypingStart struct {
	ChannelID string               `json:"channel_id"`
	GuildID   *string              `json:"guild_id,omitempty"`
	UserID    string               `json:"user_id"`
	Timestamp int64                `json:"timestamp"`
	Member    *discord.GuildMember `json:"member,omitempty"`
}

func (TypingStart) Type() EventType { return EventTypeTypingStart }

// UserUpdate carries the client user's new properties.
type UserUpdate struct {
	discord.User
}

func (UserUpdate) Type() EventType { return EventTypeUserUpdate }

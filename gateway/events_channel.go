package gateway

import "github.com/avelier/disgate/discord"

// ChannelCreate announces a new channel visible to the client.
type ChannelCreate struct {
	discord.Channel
}

func (ChannelCreate) Type() EventType { return EventTypeChannelCreate }

// ChannelUpdate carries the full new state of an updated channel.
type ChannelUpdate struct {
	discord.Channel
}

func (ChannelUpdate) Type() EventType { return EventTypeChannelUpdate }

// ChannelDelete announces a deleted channel.
type ChannelDelete struct {
	discord.Channel
}

func (ChannelDelete) Type() EventType { return EventTypeChannelDelete }

// ChannelPinsUpdate signals that a channel's pins changed. It does not say
// which message was pinned or unpinned.
type ChannelPinsUpdate struct {
	GuildID          *string `json:"guild_id,omitempty"`
	ChannelID        string  `json:"channel_id"`
	LastPinTimestamp *string `json:"last_pin_timestamp,omitempty"`
}

func (ChannelPinsUpdate) Type() EventType { return EventTypeChannelPinsUpdate }

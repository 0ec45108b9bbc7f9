package gateway

import "github.com/avelier/disgate/discord"

// VoiceStateUpdate carries a user's new voice connection state.
type VoiceStateUpdate struct {
	discord.VoiceState
}

func (VoiceStateUpdate) Type() EventType { return EventTypeVoiceStateUpdate }

// VoiceServerUpdate tells the client which voice server to connect to.
type VoiceServerUpdate struct {
	Token    string `json:"token"`
	GuildID  string `json:"guild_id"`
	Endpoint string `json:"endpoint"`
}

func (VoiceServerUpdate) Type() EventType { return EventTypeVoiceServerUpdate }

package discord

// VoiceState is a user's connection state within a voice channel.
type VoiceState struct {
	GuildID   *string `json:"guild_id,omitempty"`
	ChannelID *string `json:"channel_id"`
	UserID    string  `json:"user_id"`
	SessionID string  `json:"session_id"`
	Deaf      bool    `json:"deaf"`
	Mute      bool    `json:"mute"`
	SelfDeaf  bool    `json:"self_deaf"`
	SelfMute  bool    `json:"self_mute"`
	Suppress  bool    `json:"suppress"`
}

// Activity is one entry of a presence update.
type Activity struct {
	Name string  `json:"name"`
	Type int     `json:"type"`
	URL  *string `json:"url,omitempty"`
}

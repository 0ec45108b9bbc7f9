package discord

// Channel is a guild or direct-message channel.
type Channel struct {
	ID            string  `json:"id"`
	Type          int     `json:"type"`
	GuildID       *string `json:"guild_id,omitempty"`
	Position      *int    `json:"position,omitempty"`
	Name          *string `json:"name,omitempty"`
	Topic         *string `json:"topic,omitempty"`
	NSFW          bool    `json:"nsfw,omitempty"`
	LastMessageID *string `json:"last_message_id,omitempty"`
	ParentID      *string `json:"parent_id,omitempty"`
}

// MentionChannel is the resolved form of a channel mention inside message
// content.
type MentionChannel struct {
	ID      string `json:"id"`
	GuildID string `json:"guild_id"`
	Type    int    `json:"type"`
	Name    string `json:"name"`
}

package gateway

import "github.com/avelier/disgate/discord"

// Ready completes the identify handshake and describes the session.
type Ready struct {
	Version   int                        `json:"v"`
	User      discord.User               `json:"user"`
	SessionID string                     `json:"session_id"`
	Guilds    []discord.UnavailableGuild `json:"guilds"`
	Shard     []int                      `json:"shard,omitempty"`
}

func (Ready) Type() EventType { return EventTypeReady }

package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/avelier/disgate/discord"
)

// GuildCreate announces a guild becoming available to the client.
type GuildCreate struct {
	discord.Guild
}

func (GuildCreate) Type() EventType { return EventTypeGuildCreate }

// GuildUpdate carries the full new state of an updated guild.
type GuildUpdate struct {
	discord.Guild
}

func (GuildUpdate) Type() EventType { return EventTypeGuildUpdate }

// GuildDelete announces a guild becoming unavailable, or the client leaving
// it (Unavailable is false in that case).
type GuildDelete struct {
	discord.UnavailableGuild
}

func (GuildDelete) Type() EventType { return EventTypeGuildDelete }

// GuildBanAdd announces a user being banned from a guild.
type GuildBanAdd struct {
	GuildID string       `json:"guild_id"`
	User    discord.User `json:"user"`
}

func (GuildBanAdd) Type() EventType { return EventTypeGuildBanAdd }

// GuildBanRemove announces a user being unbanned.
type GuildBanRemove struct {
	GuildID string       `json:"guild_id"`
	User    discord.User `json:"user"`
}

func (GuildBanRemove) Type() EventType { return EventTypeGuildBanRemove }

// GuildEmojisUpdate carries the full new emoji set of a guild.
type GuildEmojisUpdate struct {
	GuildID string          `json:"guild_id"`
	Emojis  []discord.Emoji `json:"emojis"`
}

func (GuildEmojisUpdate) Type() EventType { return EventTypeGuildEmojisUpdate }

// GuildIntegrationsUpdate signals that a guild's integrations changed.
type GuildIntegrationsUpdate struct {
	GuildID string `json:"guild_id"`
}

func (GuildIntegrationsUpdate) Type() EventType { return EventTypeGuildIntegrationsUpdate }

// GuildMemberAdd announces a user joining a guild. The body is the member
// object with guild_id flattened in alongside it.
type GuildMemberAdd struct {
	discord.GuildMember
	GuildID string `json:"guild_id"`
}

func (GuildMemberAdd) Type() EventType { return EventTypeGuildMemberAdd }

// UnmarshalJSON decodes the flattened body in two passes: the promoted member
// UnmarshalJSON would otherwise consume the whole body and drop guild_id.
func (e *GuildMemberAdd) UnmarshalJSON(data []byte) error {
	var head struct {
		GuildID *string `json:"guild_id"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	if head.GuildID == nil {
		return fmt.Errorf("missing required field %q", "guild_id")
	}
	if err := json.Unmarshal(data, &e.GuildMember); err != nil {
		return err
	}
	e.GuildID = *head.GuildID
	return nil
}

// GuildMemberUpdate carries a member's changed guild metadata.
type GuildMemberUpdate struct {
	GuildID string       `json:"guild_id"`
	Roles   []string     `json:"roles"`
	User    discord.User `json:"user"`
	Nick    *string      `json:"nick,omitempty"`
}

func (GuildMemberUpdate) Type() EventType { return EventTypeGuildMemberUpdate }

// GuildMemberRemove announces a user leaving or being removed from a guild.
type GuildMemberRemove struct {
	GuildID string       `json:"guild_id"`
	User    discord.User `json:"user"`
}

func (GuildMemberRemove) Type() EventType { return EventTypeGuildMemberRemove }

// GuildMembersChunk is one page of a requested guild member listing.
type GuildMembersChunk struct {
	GuildID string                `json:"guild_id"`
	Members []discord.GuildMember `json:"members"`
}

func (GuildMembersChunk) Type() EventType { return EventTypeGuildMembersChunk }

// GuildRoleCreate announces a new guild role.
type GuildRoleCreate struct {
	GuildID string       `json:"guild_id"`
	Role    discord.Role `json:"role"`
}

func (GuildRoleCreate) Type() EventType { return EventTypeGuildRoleCreate }

// GuildRoleUpdate carries the full new state of an updated role.
type GuildRoleUpdate struct {
	GuildID string       `json:"guild_id"`
	Role    discord.Role `json:"role"`
}

func (GuildRoleUpdate) Type() EventType { return EventTypeGuildRoleUpdate }

// GuildRoleDelete announces a deleted guild role.
type GuildRoleDelete struct {
	GuildID string `json:"guild_id"`
	RoleID  string `json:"role_id"`
}

func (GuildRoleDelete) Type() EventType { return EventTypeGuildRoleDelete }

package discord

// Guild is a server: a named collection of channels and members.
type Guild struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Icon        *string       `json:"icon"`
	OwnerID     string        `json:"owner_id"`
	Region      string        `json:"region,omitempty"`
	MemberCount *int          `json:"member_count,omitempty"`
	Unavailable bool          `json:"unavailable,omitempty"`
	Roles       []Role        `json:"roles,omitempty"`
	Emojis      []Emoji       `json:"emojis,omitempty"`
	Members     []GuildMember `json:"members,omitempty"`
	Channels    []Channel     `json:"channels,omitempty"`
}

// UnavailableGuild is the stub the gateway sends before a guild has loaded or
// after an outage made it unreachable.
type UnavailableGuild struct {
	ID          string `json:"id"`
	Unavailable bool   `json:"unavailable"`
}

// GuildMember is a user's guild-specific metadata.
type GuildMember struct {
	User         *User    `json:"user,omitempty"`
	Nick         *string  `json:"nick"`
	Roles        []string `json:"roles"`
	JoinedAt     string   `json:"joined_at"`
	PremiumSince *string  `json:"premium_since"`
	Deaf         bool     `json:"deaf"`
	Mute         bool     `json:"mute"`
}

// Role is a named permission set within a guild.
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       int    `json:"color"`
	Hoist       bool   `json:"hoist"`
	Position    int    `json:"position"`
	Permissions uint64 `json:"permissions"`
	Managed     bool   `json:"managed"`
	Mentionable bool   `json:"mentionable"`
}

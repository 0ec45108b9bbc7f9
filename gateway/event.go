package gateway

// EventType identifies one variant of the Event union. Dispatch variants use
// the wire event name; control variants use names the gateway never dispatches.
type EventType string

// Control event types.
const (
	EventTypeHello          EventType = "HELLO"
	EventTypeHeartbeat      EventType = "HEARTBEAT"
	EventTypeHeartbeatACK   EventType = "HEARTBEAT_ACK"
	EventTypeInvalidSession EventType = "INVALID_SESSION"
)

// Dispatch event types, matched exactly and case-sensitively against the
// frame's event name.
const (
	EventTypeReady     EventType = "READY"
	EventTypeResumed   EventType = "RESUMED"
	EventTypeReconnect EventType = "RECONNECT"

	EventTypeChannelCreate     EventType = "CHANNEL_CREATE"
	EventTypeChannelUpdate     EventType = "CHANNEL_UPDATE"
	EventTypeChannelDelete     EventType = "CHANNEL_DELETE"
	EventTypeChannelPinsUpdate EventType = "CHANNEL_PINS_UPDATE"

	EventTypeGuildCreate             EventType = "GUILD_CREATE"
	EventTypeGuildUpdate             EventType = "GUILD_UPDATE"
	EventTypeGuildDelete             EventType = "GUILD_DELETE"
	EventTypeGuildBanAdd             EventType = "GUILD_BAN_ADD"
	EventTypeGuildBanRemove          EventType = "GUILD_BAN_REMOVE"
	EventTypeGuildEmojisUpdate       EventType = "GUILD_EMOJIS_UPDATE"
	EventTypeGuildIntegrationsUpdate EventType = "GUILD_INTEGRATIONS_UPDATE"
	EventTypeGuildMemberAdd          EventType = "GUILD_MEMBER_ADD"
	EventTypeGuildMemberUpdate       EventType = "GUILD_MEMBER_UPDATE"
	EventTypeGuildMemberRemove       EventType = "GUILD_MEMBER_REMOVE"
	EventTypeGuildMembersChunk       EventType = "GUILD_MEMBER_CHUNK"
	EventTypeGuildRoleCreate         EventType = "GUILD_ROLE_CREATE"
	EventTypeGuildRoleUpdate         EventType = "GUILD_ROLE_UPDATE"
	EventTypeGuildRoleDelete         EventType = "GUILD_ROLE_DELETE"

	EventTypeMessageCreate              EventType = "MESSAGE_CREATE"
	EventTypeMessageUpdate              EventType = "MESSAGE_UPDATE"
	EventTypeMessageDelete              EventType = "MESSAGE_DELETE"
	EventTypeMessageDeleteBulk          EventType = "MESSAGE_DELETE_BULK"
	EventTypeMessageReactionAdd         EventType = "MESSAGE_REACTION_ADD"
	EventTypeMessageReactionRemove      EventType = "MESSAGE_REACTION_REMOVE"
	EventTypeMessageReactionRemoveAll   EventType = "MESSAGE_REACTION_REMOVE_ALL"
	EventTypeMessageReactionRemoveEmoji EventType = "MESSAGE_REACTION_REMOVE_EMOJI"

	EventTypePresenceUpdate EventType = "PRESENCE_UPDATE"
	EventTypeTypingStart    EventType = "TYPING_START"
	EventTypeUserUpdate     EventType = "USER_UPDATE"

	EventTypeVoiceStateUpdate  EventType = "VOICE_STATE_UPDATE"
	EventTypeVoiceServerUpdate EventType = "VOICE_SERVER_UPDATE"
)

// Event is one member of the closed union of gateway occurrences. Every
// variant lives in this package; the tag returned by Type is the sole
// discriminator.
type Event interface {
	Type() EventType
}

// Hello is the first frame after connecting. HeartbeatInterval is the time in
// milliseconds between client heartbeats.
type Hello struct {
	HeartbeatInterval int64 `json:"heartbeat_interval"`
}

func (Hello) Type() EventType { return EventTypeHello }

// Heartbeat is a server request for an immediate client heartbeat.
type Heartbeat struct{}

func (Heartbeat) Type() EventType { return EventTypeHeartbeat }

// HeartbeatAck acknowledges a client heartbeat.
type HeartbeatAck struct{}

func (HeartbeatAck) Type() EventType { return EventTypeHeartbeatACK }

// Reconnect tells the client to disconnect and resume. It is produced both by
// opcode 7 and by the RECONNECT dispatch event.
type Reconnect struct{}

func (Reconnect) Type() EventType { return EventTypeReconnect }

// InvalidSession invalidates the current session. Resumable reports whether
// the session may be resumed instead of re-identified.
type InvalidSession struct {
	Resumable bool
}

func (InvalidSession) Type() EventType { return EventTypeInvalidSession }

// Resumed confirms a successful session resume.
type Resumed struct{}

func (Resumed) Type() EventType { return EventTypeResumed }

package gateway

import (
	"encoding/json"
	"fmt"
)

// decoderFunc parses a dispatch payload body into one event variant. tag is
// the registry key, passed in so decode failures always name the event whose
// body was rejected.
type decoderFunc func(tag string, d json.RawMessage) (Event, error)

// decodeBody builds the decoder for variants whose body maps onto the variant
// struct. required lists the top-level fields the protocol always sends for
// this event; their absence is a decode failure, never a zero value. Types
// that validate themselves in UnmarshalJSON pass no keys. Unknown extra
// fields are ignored; wrong primitive types fail.
func decodeBody[E Event](required ...string) decoderFunc {
	return func(tag string, d json.RawMessage) (Event, error) {
		if len(required) > 0 {
			if err := checkRequiredKeys(d, required); err != nil {
				return nil, &FormatError{Field: tag, Err: err}
			}
		}
		var event E
		if err := json.Unmarshal(d, &event); err != nil {
			return nil, &FormatError{Field: tag, Err: err}
		}
		return event, nil
	}
}

// noBody is the decoder for variants that carry no payload.
func noBody[E Event](string, json.RawMessage) (Event, error) {
	var event E
	return event, nil
}

// checkRequiredKeys verifies that every listed key is present in the body.
func checkRequiredKeys(d json.RawMessage, keys []string) error {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(d, &body); err != nil {
		return err
	}
	for _, key := range keys {
		if _, ok := body[key]; !ok {
			return fmt.Errorf("missing required field %q", key)
		}
	}
	return nil
}

// dispatchDecoders is the registry of recognized dispatch events, built once
// at package init. Lookup is an exact, case-sensitive match; there is no
// fallback. MESSAGE_*, USER_UPDATE and GUILD_MEMBER_ADD bodies enforce their
// required fields in their own UnmarshalJSON.
var dispatchDecoders = map[string]decoderFunc{
	"READY":     decodeBody[Ready]("v", "user", "session_id", "guilds"),
	"RESUMED":   noBody[Resumed],
	"RECONNECT": noBody[Reconnect],

	"CHANNEL_CREATE":      decodeBody[ChannelCreate]("id", "type"),
	"CHANNEL_UPDATE":      decodeBody[ChannelUpdate]("id", "type"),
	"CHANNEL_DELETE":      decodeBody[ChannelDelete]("id", "type"),
	"CHANNEL_PINS_UPDATE": decodeBody[ChannelPinsUpdate]("channel_id"),

	"GUILD_CREATE":              decodeBody[GuildCreate]("id", "name", "owner_id"),
	"GUILD_UPDATE":              decodeBody[GuildUpdate]("id", "name", "owner_id"),
	"GUILD_DELETE":              decodeBody[GuildDelete]("id"),
	"GUILD_BAN_ADD":             decodeBody[GuildBanAdd]("guild_id", "user"),
	"GUILD_BAN_REMOVE":          decodeBody[GuildBanRemove]("guild_id", "user"),
	"GUILD_EMOJIS_UPDATE":       decodeBody[GuildEmojisUpdate]("guild_id", "emojis"),
	"GUILD_INTEGRATIONS_UPDATE": decodeBody[GuildIntegrationsUpdate]("guild_id"),
	"GUILD_MEMBER_ADD":          decodeBody[GuildMemberAdd](),
	"GUILD_MEMBER_UPDATE":       decodeBody[GuildMemberUpdate]("guild_id", "roles", "user"),
	"GUILD_MEMBER_REMOVE":       decodeBody[GuildMemberRemove]("guild_id", "user"),
	"GUILD_MEMBER_CHUNK":        decodeBody[GuildMembersChunk]("guild_id", "members"),
	"GUILD_ROLE_CREATE":         decodeBody[GuildRoleCreate]("guild_id", "role"),
	"GUILD_ROLE_UPDATE":         decodeBody[GuildRoleUpdate]("guild_id", "role"),
	"GUILD_ROLE_DELETE":         decodeBody[GuildRoleDelete]("guild_id", "role_id"),

	"MESSAGE_CREATE":                decodeBody[MessageCreate](),
	"MESSAGE_UPDATE":                decodeBody[MessageUpdate](),
	"MESSAGE_DELETE":                decodeBody[MessageDelete]("id", "channel_id"),
	"MESSAGE_DELETE_BULK":           decodeBody[MessageDeleteBulk]("ids", "channel_id"),
	"MESSAGE_REACTION_ADD":          decodeBody[MessageReactionAdd]("user_id", "channel_id", "message_id", "emoji"),
	"MESSAGE_REACTION_REMOVE":       decodeBody[MessageReactionRemove]("user_id", "channel_id", "message_id", "emoji"),
	"MESSAGE_REACTION_REMOVE_ALL":   decodeBody[MessageReactionRemoveAll]("channel_id", "message_id"),
	"MESSAGE_REACTION_REMOVE_EMOJI": decodeBody[MessageReactionRemoveEmoji]("channel_id", "message_id", "emoji"),

	"PRESENCE_UPDATE": decodeBody[PresenceUpdate]("user", "status"),
	"TYPING_START":    decodeBody[TypingStart]("channel_id", "user_id", "timestamp"),
	"USER_UPDATE":     decodeBody[UserUpdate](),

	"VOICE_STATE_UPDATE":  decodeBody[VoiceStateUpdate]("user_id", "session_id", "deaf", "mute", "self_deaf", "self_mute", "suppress"),
	"VOICE_SERVER_UPDATE": decodeBody[VoiceServerUpdate]("token", "guild_id", "endpoint"),
}

// resolveDispatch maps a dispatch frame's event name to its decoder and runs
// it. Unrecognized names are surfaced with the name attached; the caller
// decides whether that is fatal.
func resolveDispatch(tag string, d json.RawMessage) (Event, error) {
	decode, ok := dispatchDecoders[tag]
	if !ok {
		return nil, &UnknownEventError{Tag: tag}
	}
	return decode(tag, d)
}

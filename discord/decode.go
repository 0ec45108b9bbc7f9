package discord

import (
	"encoding/json"
	"fmt"
)

// Strict decoding: fields the protocol always sends must be present or the
// decode fails. encoding/json alone would silently zero them, turning a
// malformed payload into a plausible-looking value. Nullable fields stay
// pointers and are not listed; types whose fields are all optional on the
// wire decode plainly.

// requireKeys rejects a payload that omits any of the listed keys. kind names
// the entity in the error.
func requireKeys(kind string, data []byte, keys ...string) error {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	for _, key := range keys {
		if _, ok := body[key]; !ok {
			return fmt.Errorf("%s: missing required field %q", kind, key)
		}
	}
	return nil
}

func (u *User) UnmarshalJSON(data []byte) error {
	if err := requireKeys("user", data, "id", "username", "discriminator"); err != nil {
		return err
	}
	type user User
	var decoded user
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*u = User(decoded)
	return nil
}

func (e *Emoji) UnmarshalJSON(data []byte) error {
	if err := requireKeys("emoji", data, "name"); err != nil {
		return err
	}
	type emoji Emoji
	var decoded emoji
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*e = Emoji(decoded)
	return nil
}

func (r *Role) UnmarshalJSON(data []byte) error {
	err := requireKeys("role", data,
		"id", "name", "color", "hoist", "position", "permissions", "managed", "mentionable")
	if err != nil {
		return err
	}
	type role Role
	var decoded role
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*r = Role(decoded)
	return nil
}

func (g *GuildMember) UnmarshalJSON(data []byte) error {
	if err := requireKeys("member", data, "roles", "joined_at", "deaf", "mute"); err != nil {
		return err
	}
	type guildMember GuildMember
	var decoded guildMember
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*g = GuildMember(decoded)
	return nil
}

func (a *Attachment) UnmarshalJSON(data []byte) error {
	if err := requireKeys("attachment", data, "id", "filename", "size", "url", "proxy_url"); err != nil {
		return err
	}
	type attachment Attachment
	var decoded attachment
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*a = Attachment(decoded)
	return nil
}

func (r *Reaction) UnmarshalJSON(data []byte) error {
	if err := requireKeys("reaction", data, "count", "me", "emoji"); err != nil {
		return err
	}
	type reaction Reaction
	var decoded reaction
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*r = Reaction(decoded)
	return nil
}

func (c *MentionChannel) UnmarshalJSON(data []byte) error {
	if err := requireKeys("mention channel", data, "id", "guild_id", "type", "name"); err != nil {
		return err
	}
	type mentionChannel MentionChannel
	var decoded mentionChannel
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*c = MentionChannel(decoded)
	return nil
}

package discord

import (
	"encoding/json"
	"fmt"
)

// MessageKind is the closed set of message categories.
type MessageKind int

const (
	MessageKindRegular                    MessageKind = 0
	MessageKindRecipientAdd               MessageKind = 1
	MessageKindRecipientRemove            MessageKind = 2
	MessageKindCall                       MessageKind = 3
	MessageKindChannelNameChange          MessageKind = 4
	MessageKindChannelIconChange          MessageKind = 5
	MessageKindChannelPinnedMessage       MessageKind = 6
	MessageKindGuildMemberJoin            MessageKind = 7
	MessageKindUserPremiumGuildSub        MessageKind = 8
	MessageKindUserPremiumGuildSubT1      MessageKind = 9
	MessageKindUserPremiumGuildSubT2      MessageKind = 10
	MessageKindUserPremiumGuildSubT3      MessageKind = 11
	MessageKindChannelFollowAdd           MessageKind = 12
	MessageKindGuildDiscoveryDisqualified MessageKind = 14
	MessageKindGuildDiscoveryRequalified  MessageKind = 15
)

// UnmarshalJSON rejects values outside the known set so the enumeration stays
// closed. Note the gap at 13.
func (k *MessageKind) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch kind := MessageKind(v); kind {
	case MessageKindRegular,
		MessageKindRecipientAdd,
		MessageKindRecipientRemove,
		MessageKindCall,
		MessageKindChannelNameChange,
		MessageKindChannelIconChange,
		MessageKindChannelPinnedMessage,
		MessageKindGuildMemberJoin,
		MessageKindUserPremiumGuildSub,
		MessageKindUserPremiumGuildSubT1,
		MessageKindUserPremiumGuildSubT2,
		MessageKindUserPremiumGuildSubT3,
		MessageKindChannelFollowAdd,
		MessageKindGuildDiscoveryDisqualified,
		MessageKindGuildDiscoveryRequalified:
		*k = kind
		return nil
	default:
		return fmt.Errorf("unknown message type %d", v)
	}
}

// Message is a message sent in a channel
// (https://discord.com/developers/docs/resources/channel#message-object).
//
// A Message is constructed only by decoding an inbound payload and is
// immutable afterwards; actions never modify the receiver.
type Message struct {
	// ID of the message, platform-assigned and immutable.
	ID string `json:"id"`

	// ChannelID of the channel the message was sent in.
	ChannelID string `json:"channel_id"`

	// GuildID of the guild the message was sent in, if any.
	GuildID *string `json:"guild_id,omitempty"`

	// Author of the message, owned by copy.
	Author User `json:"author"`

	// Member holds the author's guild metadata when sent in a guild.
	Member *GuildMember `json:"member,omitempty"`

	// Content of the message.
	Content string `json:"content"`

	// Timestamp of when the message was sent, as sent on the wire.
	Timestamp string `json:"timestamp"`

	// EditedTimestamp of the last edit, nil if never edited.
	EditedTimestamp *string `json:"edited_timestamp"`

	// TTS reports whether this was a text-to-speech message.
	TTS bool `json:"tts"`

	// MentionEveryone reports whether the message mentions everyone.
	MentionEveryone bool `json:"mention_everyone"`

	// Mentions lists the users specifically mentioned.
	Mentions []User `json:"mentions"`

	// MentionRoles lists the role IDs specifically mentioned.
	MentionRoles []string `json:"mention_roles"`

	// MentionChannels lists the channels specifically mentioned. Absent on
	// the wire for messages without channel mentions.
	MentionChannels []MentionChannel `json:"mentions_channels,omitempty"`

	// Attachments lists any attached files.
	Attachments []Attachment `json:"attachments"`

	// Embeds lists any embedded content. Absent on the wire defaults to empty.
	Embeds []Embed `json:"embed,omitempty"`

	// Reactions lists the reactions on the message. Absent defaults to empty.
	Reactions []Reaction `json:"reactions,omitempty"`

	// Nonce validates that a message was sent.
	Nonce *string `json:"nonce,omitempty"`

	// Pinned reports whether the message is pinned in its channel.
	Pinned bool `json:"pinned"`

	// WebhookID is set when the message was produced by a webhook.
	WebhookID *string `json:"webhook_id,omitempty"`

	// Kind is the message category.
	Kind *MessageKind `json:"type,omitempty"`

	// Application carries rich-presence metadata for presence-related embeds.
	Application *MessageApplication `json:"application,omitempty"`

	// MessageReference links a crossposted message to its origin.
	MessageReference *MessageReference `json:"message_reference,omitempty"`

	// Flags is the message's feature bits ORed together.
	Flags *uint64 `json:"flags,omitempty"`
}

// MessageApplication is rich-presence metadata sent with presence-related
// embeds.
type MessageApplication struct {
	ID          string  `json:"id"`
	CoverImage  *string `json:"cover_image,omitempty"`
	Description string  `json:"description"`
	Icon        *string `json:"icon"`
	Name        string  `json:"name"`
}

// MessageReference is the origin linkage sent with crossposted messages.
type MessageReference struct {
	MessageID *string `json:"message_id,omitempty"`
	ChannelID *string `json:"channel_id,omitempty"`
	GuildID   *string `json:"guild_id,omitempty"`
}

// messageRequiredKeys are the fields the protocol documents as always present
// on a message. Their absence is a decode failure, never a zero value.
var messageRequiredKeys = []string{
	"id",
	"channel_id",
	"author",
	"content",
	"timestamp",
	"tts",
	"mention_everyone",
	"pinned",
}

// UnmarshalJSON decodes a message, rejecting payloads that omit any
// protocol-required field. encoding/json alone would silently zero them.
func (m *Message) UnmarshalJSON(data []byte) error {
	if err := requireKeys("message", data, messageRequiredKeys...); err != nil {
		return err
	}

	type message Message
	var decoded message
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*m = Message(decoded)
	return nil
}

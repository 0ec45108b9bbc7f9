package discord

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMessage = `{
	"id": "m1",
	"channel_id": "c1",
	"author": {"id":"u1","username":"ana","discriminator":"0001","avatar":null},
	"content": "hi",
	"timestamp": "2020-03-01T16:04:05.000000+00:00",
	"tts": true,
	"mention_everyone": false,
	"mentions": [],
	"mention_roles": [],
	"attachments": [],
	"pinned": true
}`

func TestMessageUnmarshalMinimal(t *testing.T) {
	var msg Message
	require.NoError(t, json.Unmarshal([]byte(validMessage), &msg))

	assert.Equal(t, "m1", msg.ID)
	assert.Equal(t, "c1", msg.ChannelID)
	assert.Equal(t, "u1", msg.Author.ID)
	assert.Equal(t, "hi", msg.Content)
	assert.True(t, msg.TTS)
	assert.False(t, msg.MentionEveryone)
	assert.True(t, msg.Pinned)

	assert.Empty(t, msg.Embeds)
	assert.Empty(t, msg.Reactions)
	assert.Empty(t, msg.MentionChannels)

	assert.Nil(t, msg.GuildID)
	assert.Nil(t, msg.Member)
	assert.Nil(t, msg.EditedTimestamp)
	assert.Nil(t, msg.Nonce)
	assert.Nil(t, msg.WebhookID)
	assert.Nil(t, msg.Kind)
	assert.Nil(t, msg.Application)
	assert.Nil(t, msg.MessageReference)
	assert.Nil(t, msg.Flags)
}

func TestMessageUnmarshalMissingRequiredField(t *testing.T) {
	for _, key := range messageRequiredKeys {
		t.Run(key, func(t *testing.T) {
			var body map[string]json.RawMessage
			require.NoError(t, json.Unmarshal([]byte(validMessage), &body))
			delete(body, key)
			data, err := json.Marshal(body)
			require.NoError(t, err)

			var msg Message
			err = json.Unmarshal(data, &msg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestMessageUnmarshalWrongPrimitiveType(t *testing.T) {
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(validMessage), &body))
	body["tts"] = json.RawMessage(`"yes"`)
	data, err := json.Marshal(body)
	require.NoError(t, err)

	var msg Message
	assert.Error(t, json.Unmarshal(data, &msg))
}

func TestMessageUnmarshalOptionalFields(t *testing.T) {
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(validMessage), &body))
	body["guild_id"] = json.RawMessage(`"g1"`)
	body["edited_timestamp"] = json.RawMessage(`"2020-03-02T00:00:00Z"`)
	body["type"] = json.RawMessage(`6`)
	body["flags"] = json.RawMessage(`4`)
	body["embed"] = json.RawMessage(`[{"title":"t"}]`)
	body["reactions"] = json.RawMessage(`[{"count":2,"me":false,"emoji":{"id":null,"name":"🦀"}}]`)
	data, err := json.Marshal(body)
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))

	require.NotNil(t, msg.GuildID)
	assert.Equal(t, "g1", *msg.GuildID)
	require.NotNil(t, msg.EditedTimestamp)
	assert.Equal(t, "2020-03-02T00:00:00Z", *msg.EditedTimestamp)
	require.NotNil(t, msg.Kind)
	assert.Equal(t, MessageKindChannelPinnedMessage, *msg.Kind)
	require.NotNil(t, msg.Flags)
	assert.Equal(t, uint64(4), *msg.Flags)
	require.Len(t, msg.Embeds, 1)
	assert.Equal(t, "t", msg.Embeds[0].Title)
	require.Len(t, msg.Reactions, 1)
	assert.Equal(t, 2, msg.Reactions[0].Count)
	assert.Equal(t, "🦀", msg.Reactions[0].Emoji.Name)
}

// The message type enumeration is closed: 13 is a hole in the protocol's
// numbering and anything outside the known set is a decode failure.
func TestMessageKindClosedSet(t *testing.T) {
	var kind MessageKind
	require.NoError(t, json.Unmarshal([]byte(`15`), &kind))
	assert.Equal(t, MessageKindGuildDiscoveryRequalified, kind)

	for _, raw := range []string{`13`, `16`, `-1`, `255`} {
		t.Run(raw, func(t *testing.T) {
			var kind MessageKind
			err := json.Unmarshal([]byte(raw), &kind)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unknown message type")
		})
	}
}

func TestMessageUnmarshalUnknownKind(t *testing.T) {
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(validMessage), &body))
	body["type"] = json.RawMessage(`13`)
	data, err := json.Marshal(body)
	require.NoError(t, err)

	var msg Message
	assert.Error(t, json.Unmarshal(data, &msg))
}

func TestMessageUnmarshalNotAnObject(t *testing.T) {
	var msg Message
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &msg))
}

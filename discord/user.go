// Package discord defines the entity types carried by gateway events and the
// REST API, plus convenience actions on messages. Values are constructed by
// decoding inbound payloads and are immutable afterwards: an edit arrives as a
// new value through an update event, never as a mutation of a delivered one.
package discord

// User is a platform account. Messages own their author by copy, not by
// reference.
type User struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Discriminator string  `json:"discriminator"`
	Avatar        *string `json:"avatar"`
	Bot           bool    `json:"bot,omitempty"`
}

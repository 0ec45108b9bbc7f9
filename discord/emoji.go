package discord

// Emoji is a unicode or custom guild emoji. Unicode emoji have a nil ID and
// carry the literal character in Name.
type Emoji struct {
	ID       *string `json:"id"`
	Name     string  `json:"name"`
	Animated bool    `json:"animated,omitempty"`
}

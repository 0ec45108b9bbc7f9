package gateway

import (
	"encoding/json"
)

// Resolve classifies a payload by opcode and produces the corresponding
// event. Dispatch frames are resolved through the event registry; every
// malformed or unrecognized input fails with a classified error rather than
// being dropped or defaulted.
func Resolve(p Payload) (Event, error) {
	switch p.Op {
	case OpcodeDispatch:
		if p.T == nil {
			return nil, &FormatError{Field: "t"}
		}
		if !p.hasD() {
			return nil, &FormatError{Field: "d"}
		}
		return resolveDispatch(*p.T, p.D)

	case OpcodeHeartbeat:
		return Heartbeat{}, nil

	case OpcodeReconnect:
		return Reconnect{}, nil

	case OpcodeInvalidSession:
		if !p.hasD() {
			return nil, &FormatError{Field: "d"}
		}
		// d must be exactly a boolean.
		var resumable bool
		if err := json.Unmarshal(p.D, &resumable); err != nil {
			return nil, &FormatError{Field: "d", Err: err}
		}
		return InvalidSession{Resumable: resumable}, nil

	case OpcodeHello:
		if !p.hasD() {
			return nil, &FormatError{Field: "d"}
		}
		var hello struct {
			HeartbeatInterval *int64 `json:"heartbeat_interval"`
		}
		if err := json.Unmarshal(p.D, &hello); err != nil {
			return nil, &FormatError{Field: "d", Err: err}
		}
		if hello.HeartbeatInterval == nil || *hello.HeartbeatInterval <= 0 {
			return nil, &FormatError{Field: "heartbeat_interval"}
		}
		return Hello{HeartbeatInterval: *hello.HeartbeatInterval}, nil

	case OpcodeHeartbeatACK:
		return HeartbeatAck{}, nil

	default:
		return nil, &UnexpectedOpcodeError{Op: p.Op}
	}
}

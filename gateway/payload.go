// Package gateway implements Discord gateway protocol decoding.
//
// The package converts raw gateway frames into a closed set of typed events.
// Decoding is pure: it performs no I/O, holds no state between calls, and
// concurrent calls on independent payloads need no coordination.
package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Opcode selects the control meaning of a gateway frame
// (https://discord.com/developers/docs/topics/opcodes-and-status-codes#gateway).
// The type is deliberately wide: any integer the wire carries must survive
// parsing so Resolve can classify it as unexpected.
type Opcode int

const (
	// OpcodeDispatch carries an application-level event identified by the
	// payload's event name.
	OpcodeDispatch Opcode = 0
	// OpcodeHeartbeat is sent by the server to request an immediate heartbeat.
	OpcodeHeartbeat Opcode = 1
	// OpcodeReconnect tells the client to disconnect and resume.
	OpcodeReconnect Opcode = 7
	// OpcodeInvalidSession invalidates the current session.
	OpcodeInvalidSession Opcode = 9
	// OpcodeHello is the first frame after connecting and carries the
	// heartbeat interval.
	OpcodeHello Opcode = 10
	// OpcodeHeartbeatACK acknowledges a client heartbeat.
	OpcodeHeartbeatACK Opcode = 11
)

// Payload is one decoded unit of the gateway stream. D and T are set only on
// dispatch frames; S is the sequence number the surrounding session tracks.
type Payload struct {
	Op Opcode          `json:"op"`
	D  json.RawMessage `json:"d,omitempty"`
	S  *int64          `json:"s,omitempty"`
	T  *string         `json:"t,omitempty"`
}

var jsonNull = []byte("null")

// hasD reports whether the payload body is present. An explicit JSON null is
// treated the same as an absent body.
func (p Payload) hasD() bool {
	return len(p.D) > 0 && !bytes.Equal(p.D, jsonNull)
}

// ParsePayload decodes a raw frame body into a Payload.
func ParsePayload(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("failed to decode payload: %w", &FormatError{Field: "payload", Err: err})
	}
	return p, nil
}

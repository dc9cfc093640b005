package sensor

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Message types carried in an Envelope.
const (
	MsgMotion = "motion"
	MsgHello  = "hello"
)

// ErrBadMessage is returned for frames that cannot be decoded into a known message.
var ErrBadMessage = errors.New("bad message")

// Envelope is the wire frame: a type tag and a raw payload.
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"`
}

// Motion is a device motion reading. Z is the gravity component along the
// axis perpendicular to the screen, in g.
type Motion struct {
	Z float64 `json:"z"`
}

// Hello is sent by the bridge after the socket opens.
type Hello struct {
	V int `json:"v"`
}

// Encode wraps payload in an Envelope of type t.
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("encode: empty type: %w", ErrBadMessage)
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", t, err)
	}
	return json.Marshal(Envelope{T: t, P: pb})
}

// DecodeEnvelope parses a frame.
func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("empty frame: %w", ErrBadMessage)
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	return e, nil
}

// DecodePayload unmarshals the payload of env into T.
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("empty payload for %q: %w", env.T, ErrBadMessage)
	}
	if err := json.Unmarshal(env.P, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	return out, nil
}

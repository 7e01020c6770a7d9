package message

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/danmuck/antlink/internal/protocol/ant"
	"github.com/danmuck/antlink/internal/protocol/frame"
)

// Variant is any message that can be framed: the generic Message, the
// ChannelMessage family and every concrete kind in this package.
type Variant interface {
	Type() ant.MessageID
	Payload() []byte
	SetPayload(p []byte) error
	MarshalBinary() ([]byte, error)
}

// Message is a type code plus a payload of at most frame.MaxPayloadLen bytes.
// Concrete kinds embed it and narrow the accepted payload lengths. The zero
// value is an empty message of type 0x00 accepting any legal payload length.
type Message struct {
	id      ant.MessageID
	payload []byte
	minLen  int
	maxLen  int
}

// New creates a generic message. msgType must fit in one byte.
func New(msgType int, payload []byte) (*Message, error) {
	if msgType < 0 || msgType > 0xFF {
		return nil, FieldRangeError{Field: "type", Value: msgType, Min: 0, Max: 0xFF}
	}
	m := &Message{id: ant.MessageID(msgType), minLen: 0, maxLen: frame.MaxPayloadLen}
	if err := m.SetPayload(payload); err != nil {
		return nil, err
	}
	return m, nil
}

func newMessage(id ant.MessageID, minLen, maxLen int) Message {
	return Message{id: id, payload: make([]byte, minLen), minLen: minLen, maxLen: maxLen}
}

func (m *Message) Type() ant.MessageID {
	return m.id
}

// Payload returns a copy of the payload bytes.
func (m *Message) Payload() []byte {
	out := make([]byte, len(m.payload))
	copy(out, m.payload)
	return out
}

// SetPayload replaces the payload. The length must be legal for the kind.
func (m *Message) SetPayload(p []byte) error {
	minLen, maxLen := m.bounds()
	if len(p) < minLen || len(p) > maxLen {
		return FieldLengthError{Field: "payload", Got: len(p), Min: minLen, Max: maxLen}
	}
	buf := make([]byte, len(p))
	copy(buf, p)
	m.payload = buf
	return nil
}

func (m *Message) bounds() (int, int) {
	if m.minLen == 0 && m.maxLen == 0 {
		return 0, frame.MaxPayloadLen
	}
	return m.minLen, m.maxLen
}

// Checksum returns the checksum byte the encoded frame will carry.
func (m *Message) Checksum() uint8 {
	return frame.Sync ^ uint8(len(m.payload)) ^ uint8(m.id) ^ frame.Checksum(m.payload)
}

// Size returns the encoded frame size.
func (m *Message) Size() int {
	return len(m.payload) + frame.Overhead
}

func (m *Message) MarshalBinary() ([]byte, error) {
	return frame.Encode(uint8(m.id), m.payload)
}

func (m *Message) String() string {
	return fmt.Sprintf("%s payload=%s", m.id, hex.EncodeToString(m.payload))
}

func (m *Message) u8(off int) uint8 {
	return m.payload[off]
}

func (m *Message) setU8(field string, off int, v int) error {
	if v < 0 || v > 0xFF {
		return FieldRangeError{Field: field, Value: v, Min: 0, Max: 0xFF}
	}
	m.payload[off] = uint8(v)
	return nil
}

func (m *Message) u16(off int) uint16 {
	return binary.LittleEndian.Uint16(m.payload[off : off+2])
}

func (m *Message) setU16(field string, off int, v int) error {
	if v < 0 || v > 0xFFFF {
		return FieldRangeError{Field: field, Value: v, Min: 0, Max: 0xFFFF}
	}
	binary.LittleEndian.PutUint16(m.payload[off:off+2], uint16(v))
	return nil
}

func (m *Message) bytesAt(off, n int) []byte {
	out := make([]byte, n)
	copy(out, m.payload[off:off+n])
	return out
}

func (m *Message) setBytes(field string, off int, b []byte, n int) error {
	if len(b) != n {
		return FieldLengthError{Field: field, Got: len(b), Min: n, Max: n}
	}
	copy(m.payload[off:off+n], b)
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

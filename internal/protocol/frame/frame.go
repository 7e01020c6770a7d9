package frame

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// Layout: Sync(1) | Length(1) | Type(1) | Payload(Length) | Checksum(1)
// Checksum is the XOR of every byte before it.
const (
	Sync          uint8 = 0xA4
	MaxPayloadLen       = 9
	Overhead            = 4
	MinFrameLen         = Overhead + 1
	MaxFrameLen         = MaxPayloadLen + Overhead
)

// Error categories. Decode and Encode wrap exactly one of these.
var (
	// ErrIncomplete means the buffer is shorter than the frame it starts;
	// read more bytes and decode again.
	ErrIncomplete = errors.New("frame: incomplete")
	// ErrCorrupted means the sync byte or checksum did not match.
	ErrCorrupted = errors.New("frame: corrupted")
	// ErrMalformed means a length or field value is outside its legal range.
	ErrMalformed = errors.New("frame: malformed")
)

// Frame is one decoded (type, payload) pair.
type Frame struct {
	Type    uint8
	Payload []byte
}

// Len returns the encoded size of f.
func (f Frame) Len() int {
	return len(f.Payload) + Overhead
}

func (f Frame) MarshalBinary() ([]byte, error) {
	return Encode(f.Type, f.Payload)
}

func (f Frame) String() string {
	return fmt.Sprintf("type=0x%02x len=%d payload=%s", f.Type, len(f.Payload), hex.EncodeToString(f.Payload))
}

// Checksum returns the running XOR of b.
func Checksum(b []byte) uint8 {
	var sum uint8
	for _, c := range b {
		sum ^= c
	}
	return sum
}

// Encode builds the wire bytes for one frame.
func Encode(msgType uint8, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayloadLen {
		return nil, fmt.Errorf("%w: payload length %d exceeds %d", ErrMalformed, len(payload), MaxPayloadLen)
	}
	buf := make([]byte, len(payload)+Overhead)
	buf[0] = Sync
	buf[1] = uint8(len(payload))
	buf[2] = msgType
	copy(buf[3:], payload)
	buf[len(buf)-1] = Checksum(buf[:len(buf)-1])
	return buf, nil
}

// Decode validates the frame at the start of b and returns it together with
// the number of bytes it occupies. Bytes past the frame are ignored so callers
// can advance a cursor by the returned count and decode again.
func Decode(b []byte) (Frame, int, error) {
	if len(b) < MinFrameLen {
		return Frame{}, 0, fmt.Errorf("%w: have %d bytes, need at least %d", ErrIncomplete, len(b), MinFrameLen)
	}

	sync, length, msgType := b[0], int(b[1]), b[2]
	if sync != Sync {
		return Frame{}, 0, fmt.Errorf("%w: sync byte 0x%02x", ErrCorrupted, sync)
	}
	if length > MaxPayloadLen {
		return Frame{}, 0, fmt.Errorf("%w: payload length %d exceeds %d", ErrMalformed, length, MaxPayloadLen)
	}
	size := length + Overhead
	if len(b) < size {
		return Frame{}, 0, fmt.Errorf("%w: have %d bytes, need %d", ErrIncomplete, len(b), size)
	}

	want := Checksum(b[:size-1])
	if got := b[size-1]; got != want {
		return Frame{}, 0, fmt.Errorf("%w: checksum 0x%02x, computed 0x%02x", ErrCorrupted, got, want)
	}

	payload := make([]byte, length)
	copy(payload, b[3:3+length])
	return Frame{Type: msgType, Payload: payload}, size, nil
}

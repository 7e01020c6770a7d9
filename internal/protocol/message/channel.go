package message

import (
	"github.com/danmuck/antlink/internal/protocol/ant"
	"github.com/danmuck/antlink/internal/protocol/frame"
)

// ChannelMessage is a message whose first payload byte is a channel number.
// A zero value has no channel byte yet: Channel reports 0 and SetChannel
// creates the byte.
type ChannelMessage struct {
	Message
}

// NewChannelMessage builds a payload of channel followed by extra.
func NewChannelMessage(msgType int, channel int, extra []byte) (*ChannelMessage, error) {
	if msgType < 0 || msgType > 0xFF {
		return nil, FieldRangeError{Field: "type", Value: msgType, Min: 0, Max: 0xFF}
	}
	if len(extra) > frame.MaxPayloadLen-1 {
		return nil, FieldLengthError{Field: "payload", Got: len(extra) + 1, Min: 1, Max: frame.MaxPayloadLen}
	}
	m := &ChannelMessage{newChannelMessage(ant.MessageID(msgType), 1, frame.MaxPayloadLen)}
	m.payload = append(m.payload, extra...)
	if err := m.SetChannel(channel); err != nil {
		return nil, err
	}
	return m, nil
}

// newChannelMessage reserves byte 0 for the channel number.
func newChannelMessage(id ant.MessageID, minLen, maxLen int) Message {
	if minLen < 1 {
		minLen = 1
	}
	return newMessage(id, minLen, maxLen)
}

func (m *ChannelMessage) Channel() uint8 {
	if len(m.payload) == 0 {
		return 0
	}
	return m.u8(0)
}

func (m *ChannelMessage) SetChannel(n int) error {
	if len(m.payload) == 0 {
		if n < 0 || n > 0xFF {
			return FieldRangeError{Field: "channel", Value: n, Min: 0, Max: 0xFF}
		}
		m.payload = []byte{uint8(n)}
		return nil
	}
	return m.setU8("channel", 0, n)
}

// fixedChannel is a channel message of exactly n payload bytes.
func fixedChannel(id ant.MessageID, n int) ChannelMessage {
	return ChannelMessage{newChannelMessage(id, n, n)}
}

// fixed is a non-channel message of exactly n payload bytes.
func fixed(id ant.MessageID, n int) Message {
	return newMessage(id, n, n)
}

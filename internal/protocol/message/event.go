package message

import "github.com/danmuck/antlink/internal/protocol/ant"

// ChannelEvent is either an RF event (message id 0x01) or the radio's
// response to a command, in which case the message id names that command.
type ChannelEvent struct {
	ChannelMessage
}

func NewChannelEvent(channel, messageID, code int) (*ChannelEvent, error) {
	m := &ChannelEvent{fixedChannel(ant.MsgChannelEvent, 3)}
	if err := firstErr(
		m.SetChannel(channel),
		m.SetMessageID(messageID),
		m.SetMessageCode(code),
	); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ChannelEvent) MessageID() uint8 {
	return m.u8(1)
}

func (m *ChannelEvent) SetMessageID(v int) error {
	return m.setU8("message_id", 1, v)
}

func (m *ChannelEvent) MessageCode() uint8 {
	return m.u8(2)
}

func (m *ChannelEvent) SetMessageCode(v int) error {
	return m.setU8("message_code", 2, v)
}

// IsResponse reports whether the event answers a command.
func (m *ChannelEvent) IsResponse() bool {
	return m.MessageID() != ant.EventMessageID
}

// RespondsTo returns the command this event answers. Only meaningful when
// IsResponse is true.
func (m *ChannelEvent) RespondsTo() ant.MessageID {
	return ant.MessageID(m.MessageID())
}

func (m *ChannelEvent) Code() ant.EventCode {
	return ant.EventCode(m.MessageCode())
}

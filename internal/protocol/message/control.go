package message

import "github.com/danmuck/antlink/internal/protocol/ant"

// SystemReset resets the radio. Its single payload byte is reserved.
type SystemReset struct {
	Message
}

func NewSystemReset() *SystemReset {
	return &SystemReset{fixed(ant.MsgSystemReset, 1)}
}

type ChannelOpen struct {
	ChannelMessage
}

func NewChannelOpen(channel int) (*ChannelOpen, error) {
	m := &ChannelOpen{fixedChannel(ant.MsgChannelOpen, 1)}
	if err := m.SetChannel(channel); err != nil {
		return nil, err
	}
	return m, nil
}

type ChannelClose struct {
	ChannelMessage
}

func NewChannelClose(channel int) (*ChannelClose, error) {
	m := &ChannelClose{fixedChannel(ant.MsgChannelClose, 1)}
	if err := m.SetChannel(channel); err != nil {
		return nil, err
	}
	return m, nil
}

// ChannelRequest asks the radio to send a message of the given type back,
// for example a channel status or the capabilities.
type ChannelRequest struct {
	ChannelMessage
}

func NewChannelRequest(channel int, requested ant.MessageID) (*ChannelRequest, error) {
	m := &ChannelRequest{fixedChannel(ant.MsgChannelRequest, 2)}
	if err := firstErr(m.SetChannel(channel), m.SetMessageID(int(requested))); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ChannelRequest) MessageID() ant.MessageID {
	return ant.MessageID(m.u8(1))
}

func (m *ChannelRequest) SetMessageID(v int) error {
	return m.setU8("message_id", 1, v)
}

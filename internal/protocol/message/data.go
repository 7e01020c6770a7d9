package message

import "github.com/danmuck/antlink/internal/protocol/ant"

// DataLen is the size of the data block carried by broadcast, acknowledged
// and burst messages.
const DataLen = 7

// dataMessage is the shared layout of the three data kinds: the channel byte
// followed by DataLen data bytes.
type dataMessage struct {
	ChannelMessage
}

func newDataMessage(id ant.MessageID, channel int, data []byte) (dataMessage, error) {
	m := dataMessage{fixedChannel(id, 1+DataLen)}
	if err := firstErr(m.SetChannel(channel), m.SetData(data)); err != nil {
		return dataMessage{}, err
	}
	return m, nil
}

func (m *dataMessage) Data() []byte {
	return m.bytesAt(1, DataLen)
}

func (m *dataMessage) SetData(data []byte) error {
	return m.setBytes("data", 1, data, DataLen)
}

type BroadcastData struct {
	dataMessage
}

// NewBroadcastData builds a broadcast data message. A nil data block is sent
// as zeros.
func NewBroadcastData(channel int, data []byte) (*BroadcastData, error) {
	if data == nil {
		data = make([]byte, DataLen)
	}
	dm, err := newDataMessage(ant.MsgBroadcastData, channel, data)
	if err != nil {
		return nil, err
	}
	return &BroadcastData{dm}, nil
}

type AcknowledgedData struct {
	dataMessage
}

func NewAcknowledgedData(channel int, data []byte) (*AcknowledgedData, error) {
	if data == nil {
		data = make([]byte, DataLen)
	}
	dm, err := newDataMessage(ant.MsgAcknowledgedData, channel, data)
	if err != nil {
		return nil, err
	}
	return &AcknowledgedData{dm}, nil
}

// BurstData carries one packet of a burst transfer. The upper three bits of
// the channel byte hold the burst sequence number.
type BurstData struct {
	dataMessage
}

func NewBurstData(channel int, data []byte) (*BurstData, error) {
	if data == nil {
		data = make([]byte, DataLen)
	}
	dm, err := newDataMessage(ant.MsgBurstData, channel, data)
	if err != nil {
		return nil, err
	}
	return &BurstData{dm}, nil
}

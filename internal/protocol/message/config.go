package message

import "github.com/danmuck/antlink/internal/protocol/ant"

const networkKeyLen = 8

// ChannelUnassign releases a channel.
type ChannelUnassign struct {
	ChannelMessage
}

func NewChannelUnassign(channel int) (*ChannelUnassign, error) {
	m := &ChannelUnassign{fixedChannel(ant.MsgChannelUnassign, 1)}
	if err := m.SetChannel(channel); err != nil {
		return nil, err
	}
	return m, nil
}

// ChannelAssign binds a channel to a channel type and network.
type ChannelAssign struct {
	ChannelMessage
}

func NewChannelAssign(channel, channelType, network int) (*ChannelAssign, error) {
	m := &ChannelAssign{fixedChannel(ant.MsgChannelAssign, 3)}
	if err := firstErr(
		m.SetChannel(channel),
		m.SetChannelType(channelType),
		m.SetNetworkNumber(network),
	); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ChannelAssign) ChannelType() uint8 {
	return m.u8(1)
}

func (m *ChannelAssign) SetChannelType(v int) error {
	return m.setU8("channel_type", 1, v)
}

func (m *ChannelAssign) NetworkNumber() uint8 {
	return m.u8(2)
}

func (m *ChannelAssign) SetNetworkNumber(v int) error {
	return m.setU8("network_number", 2, v)
}

// ChannelID sets the device number, device type and transmission type a
// channel pairs with.
type ChannelID struct {
	ChannelMessage
}

func NewChannelID(channel, deviceNumber, deviceType, transmissionType int) (*ChannelID, error) {
	m := &ChannelID{fixedChannel(ant.MsgChannelID, 5)}
	if err := firstErr(
		m.SetChannel(channel),
		m.SetDeviceNumber(deviceNumber),
		m.SetDeviceType(deviceType),
		m.SetTransmissionType(transmissionType),
	); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ChannelID) DeviceNumber() uint16 {
	return m.u16(1)
}

func (m *ChannelID) SetDeviceNumber(v int) error {
	return m.setU16("device_number", 1, v)
}

func (m *ChannelID) DeviceType() uint8 {
	return m.u8(3)
}

func (m *ChannelID) SetDeviceType(v int) error {
	return m.setU8("device_type", 3, v)
}

func (m *ChannelID) TransmissionType() uint8 {
	return m.u8(4)
}

func (m *ChannelID) SetTransmissionType(v int) error {
	return m.setU8("transmission_type", 4, v)
}

// ChannelPeriod sets the message period in 1/32768 s units.
type ChannelPeriod struct {
	ChannelMessage
}

func NewChannelPeriod(channel, period int) (*ChannelPeriod, error) {
	m := &ChannelPeriod{fixedChannel(ant.MsgChannelPeriod, 3)}
	if err := firstErr(m.SetChannel(channel), m.SetPeriod(period)); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ChannelPeriod) Period() uint16 {
	return m.u16(1)
}

func (m *ChannelPeriod) SetPeriod(v int) error {
	return m.setU16("period", 1, v)
}

// ChannelSearchTimeout sets the receive search timeout in 2.5 s units.
type ChannelSearchTimeout struct {
	ChannelMessage
}

func NewChannelSearchTimeout(channel, timeout int) (*ChannelSearchTimeout, error) {
	m := &ChannelSearchTimeout{fixedChannel(ant.MsgChannelSearchTimeout, 2)}
	if err := firstErr(m.SetChannel(channel), m.SetTimeout(timeout)); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ChannelSearchTimeout) Timeout() uint8 {
	return m.u8(1)
}

func (m *ChannelSearchTimeout) SetTimeout(v int) error {
	return m.setU8("timeout", 1, v)
}

// ChannelFrequency sets the RF frequency as an offset from 2400 MHz.
type ChannelFrequency struct {
	ChannelMessage
}

func NewChannelFrequency(channel, frequency int) (*ChannelFrequency, error) {
	m := &ChannelFrequency{fixedChannel(ant.MsgChannelFrequency, 2)}
	if err := firstErr(m.SetChannel(channel), m.SetFrequency(frequency)); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ChannelFrequency) Frequency() uint8 {
	return m.u8(1)
}

func (m *ChannelFrequency) SetFrequency(v int) error {
	return m.setU8("frequency", 1, v)
}

// ChannelTXPower sets the transmit power of one channel.
type ChannelTXPower struct {
	ChannelMessage
}

func NewChannelTXPower(channel, power int) (*ChannelTXPower, error) {
	m := &ChannelTXPower{fixedChannel(ant.MsgChannelTXPower, 2)}
	if err := firstErr(m.SetChannel(channel), m.SetPower(power)); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ChannelTXPower) Power() uint8 {
	return m.u8(1)
}

func (m *ChannelTXPower) SetPower(v int) error {
	return m.setU8("power", 1, v)
}

// NetworkKey installs an 8-byte key for a network number.
type NetworkKey struct {
	Message
}

func NewNetworkKey(network int, key []byte) (*NetworkKey, error) {
	m := &NetworkKey{fixed(ant.MsgNetworkKey, 1+networkKeyLen)}
	if err := firstErr(m.SetNumber(network), m.SetKey(key)); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *NetworkKey) Number() uint8 {
	return m.u8(0)
}

func (m *NetworkKey) SetNumber(v int) error {
	return m.setU8("network_number", 0, v)
}

func (m *NetworkKey) Key() []byte {
	return m.bytesAt(1, networkKeyLen)
}

func (m *NetworkKey) SetKey(key []byte) error {
	return m.setBytes("key", 1, key, networkKeyLen)
}

// TXPower sets the transmit power for all channels. Byte 0 is reserved.
type TXPower struct {
	Message
}

func NewTXPower(power int) (*TXPower, error) {
	m := &TXPower{fixed(ant.MsgTXPower, 2)}
	if err := m.SetPower(power); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *TXPower) Power() uint8 {
	return m.u8(1)
}

func (m *TXPower) SetPower(v int) error {
	return m.setU8("power", 1, v)
}

package message

import (
	"bytes"
	"encoding/binary"

	"github.com/danmuck/antlink/internal/protocol/ant"
)

const (
	versionLen      = 9
	serialNumberLen = 4
	capabilitiesLen = 4
)

// ChannelStatus answers a channel-request for the channel state.
type ChannelStatus struct {
	ChannelMessage
}

func NewChannelStatus(channel, status int) (*ChannelStatus, error) {
	m := &ChannelStatus{fixedChannel(ant.MsgChannelStatus, 2)}
	if err := firstErr(m.SetChannel(channel), m.SetStatus(status)); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ChannelStatus) Status() uint8 {
	return m.u8(1)
}

func (m *ChannelStatus) SetStatus(v int) error {
	return m.setU8("status", 1, v)
}

// State returns the channel state bits of the status byte.
func (m *ChannelStatus) State() uint8 {
	return m.Status() & ant.ChannelStatusMask
}

// Version carries the NUL-padded firmware version string.
type Version struct {
	Message
}

func NewVersion(version []byte) (*Version, error) {
	m := &Version{fixed(ant.MsgVersion, versionLen)}
	if err := m.SetVersion(version); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Version) Version() []byte {
	return m.bytesAt(0, versionLen)
}

func (m *Version) SetVersion(v []byte) error {
	return m.setBytes("version", 0, v, versionLen)
}

func (m *Version) String() string {
	return string(bytes.TrimRight(m.payload, "\x00"))
}

// Startup is sent by the radio after any reset.
type Startup struct {
	Message
}

func NewStartup(reason int) (*Startup, error) {
	m := &Startup{fixed(ant.MsgStartup, 1)}
	if err := m.SetReason(reason); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Startup) Reason() uint8 {
	return m.u8(0)
}

func (m *Startup) SetReason(v int) error {
	return m.setU8("startup_reason", 0, v)
}

// Capabilities describes the radio. AdvOptions2 is only present on the wire
// once it has been set, which makes the payload 5 bytes instead of 4.
type Capabilities struct {
	Message
}

func NewCapabilities(maxChannels, maxNetworks, stdOptions, advOptions int) (*Capabilities, error) {
	m := &Capabilities{newMessage(ant.MsgCapabilities, capabilitiesLen, capabilitiesLen+1)}
	if err := firstErr(
		m.SetMaxChannels(maxChannels),
		m.SetMaxNetworks(maxNetworks),
		m.SetStdOptions(stdOptions),
		m.SetAdvOptions(advOptions),
	); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Capabilities) MaxChannels() uint8 {
	return m.u8(0)
}

func (m *Capabilities) SetMaxChannels(v int) error {
	return m.setU8("max_channels", 0, v)
}

func (m *Capabilities) MaxNetworks() uint8 {
	return m.u8(1)
}

func (m *Capabilities) SetMaxNetworks(v int) error {
	return m.setU8("max_networks", 1, v)
}

func (m *Capabilities) StdOptions() uint8 {
	return m.u8(2)
}

func (m *Capabilities) SetStdOptions(v int) error {
	return m.setU8("std_options", 2, v)
}

func (m *Capabilities) AdvOptions() uint8 {
	return m.u8(3)
}

func (m *Capabilities) SetAdvOptions(v int) error {
	return m.setU8("adv_options", 3, v)
}

// HasAdvOptions2 reports whether the optional fifth byte is present.
func (m *Capabilities) HasAdvOptions2() bool {
	return len(m.payload) == capabilitiesLen+1
}

// AdvOptions2 returns the optional fifth byte, or 0 when it is absent.
func (m *Capabilities) AdvOptions2() uint8 {
	if !m.HasAdvOptions2() {
		return 0
	}
	return m.u8(capabilitiesLen)
}

// SetAdvOptions2 sets the optional fifth byte, growing the payload to 5 bytes.
func (m *Capabilities) SetAdvOptions2(v int) error {
	if v < 0 || v > 0xFF {
		return FieldRangeError{Field: "adv_options_2", Value: v, Min: 0, Max: 0xFF}
	}
	if !m.HasAdvOptions2() {
		m.payload = append(m.payload, 0)
	}
	m.payload[capabilitiesLen] = uint8(v)
	return nil
}

// ClearAdvOptions2 drops the optional byte, shrinking the payload to 4 bytes.
func (m *Capabilities) ClearAdvOptions2() {
	m.payload = m.payload[:capabilitiesLen]
}

// SerialNumber carries the 4-byte device serial.
type SerialNumber struct {
	Message
}

func NewSerialNumber(serial []byte) (*SerialNumber, error) {
	m := &SerialNumber{fixed(ant.MsgSerialNumber, serialNumberLen)}
	if err := m.SetSerialNumber(serial); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *SerialNumber) SerialNumber() []byte {
	return m.bytesAt(0, serialNumberLen)
}

func (m *SerialNumber) SetSerialNumber(serial []byte) error {
	return m.setBytes("serial_number", 0, serial, serialNumberLen)
}

// Uint32 returns the serial as a little-endian number.
func (m *SerialNumber) Uint32() uint32 {
	return binary.LittleEndian.Uint32(m.payload[:serialNumberLen])
}

// Package ant holds the numeric constants of the ANT serial message protocol.
package ant

import "fmt"

// MessageID is the type code carried in byte 2 of every serial frame.
type MessageID uint8

// Config messages.
const (
	MsgChannelUnassign      MessageID = 0x41
	MsgChannelAssign        MessageID = 0x42
	MsgChannelID            MessageID = 0x51
	MsgChannelPeriod        MessageID = 0x43
	MsgChannelSearchTimeout MessageID = 0x44
	MsgChannelFrequency     MessageID = 0x45
	MsgChannelTXPower       MessageID = 0x60
	MsgNetworkKey           MessageID = 0x46
	MsgTXPower              MessageID = 0x47
)

// Control messages.
const (
	MsgSystemReset    MessageID = 0x4A
	MsgChannelOpen    MessageID = 0x4B
	MsgChannelClose   MessageID = 0x4C
	MsgChannelRequest MessageID = 0x4D
)

// Data messages.
const (
	MsgBroadcastData    MessageID = 0x4E
	MsgAcknowledgedData MessageID = 0x4F
	MsgBurstData        MessageID = 0x50
)

// Event and requested-response messages.
const (
	MsgChannelEvent  MessageID = 0x40
	MsgChannelStatus MessageID = 0x52
	MsgVersion       MessageID = 0x3E
	MsgCapabilities  MessageID = 0x54
	MsgSerialNumber  MessageID = 0x61
	MsgStartup       MessageID = 0x6F
)

var messageNames = map[MessageID]string{
	MsgChannelUnassign:      "channel-unassign",
	MsgChannelAssign:        "channel-assign",
	MsgChannelID:            "channel-id",
	MsgChannelPeriod:        "channel-period",
	MsgChannelSearchTimeout: "channel-search-timeout",
	MsgChannelFrequency:     "channel-frequency",
	MsgChannelTXPower:       "channel-tx-power",
	MsgNetworkKey:           "network-key",
	MsgTXPower:              "tx-power",
	MsgSystemReset:          "system-reset",
	MsgChannelOpen:          "channel-open",
	MsgChannelClose:         "channel-close",
	MsgChannelRequest:       "channel-request",
	MsgBroadcastData:        "broadcast-data",
	MsgAcknowledgedData:     "acknowledged-data",
	MsgBurstData:            "burst-data",
	MsgChannelEvent:         "channel-event",
	MsgChannelStatus:        "channel-status",
	MsgVersion:              "version",
	MsgCapabilities:         "capabilities",
	MsgSerialNumber:         "serial-number",
	MsgStartup:              "startup",
}

func (id MessageID) String() string {
	if name, ok := messageNames[id]; ok {
		return name
	}
	return fmt.Sprintf("message(0x%02x)", uint8(id))
}

// EventCode is the message-code byte of a channel event or response.
type EventCode uint8

// EventMessageID marks a channel event as an RF event rather than a command response.
const EventMessageID uint8 = 0x01

const (
	ResponseNoError             EventCode = 0x00
	EventRxSearchTimeout        EventCode = 0x01
	EventRxFail                 EventCode = 0x02
	EventTx                     EventCode = 0x03
	EventTransferRxFailed       EventCode = 0x04
	EventTransferTxCompleted    EventCode = 0x05
	EventTransferTxFailed       EventCode = 0x06
	EventChannelClosed          EventCode = 0x07
	EventRxFailGoToSearch       EventCode = 0x08
	EventChannelCollision       EventCode = 0x09
	EventTransferTxStart        EventCode = 0x0A
	ChannelInWrongState         EventCode = 0x15
	ChannelNotOpened            EventCode = 0x16
	ChannelIDNotSet             EventCode = 0x18
	CloseAllChannels            EventCode = 0x19
	TransferInProgress          EventCode = 0x1F
	TransferSequenceNumberError EventCode = 0x20
	TransferInError             EventCode = 0x21
	InvalidMessage              EventCode = 0x28
	InvalidNetworkNumber        EventCode = 0x29
)

var eventNames = map[EventCode]string{
	ResponseNoError:             "response-no-error",
	EventRxSearchTimeout:        "rx-search-timeout",
	EventRxFail:                 "rx-fail",
	EventTx:                     "tx",
	EventTransferRxFailed:       "transfer-rx-failed",
	EventTransferTxCompleted:    "transfer-tx-completed",
	EventTransferTxFailed:       "transfer-tx-failed",
	EventChannelClosed:          "channel-closed",
	EventRxFailGoToSearch:       "rx-fail-go-to-search",
	EventChannelCollision:       "channel-collision",
	EventTransferTxStart:        "transfer-tx-start",
	ChannelInWrongState:         "channel-in-wrong-state",
	ChannelNotOpened:            "channel-not-opened",
	ChannelIDNotSet:             "channel-id-not-set",
	CloseAllChannels:            "close-all-channels",
	TransferInProgress:          "transfer-in-progress",
	TransferSequenceNumberError: "transfer-sequence-number-error",
	TransferInError:             "transfer-in-error",
	InvalidMessage:              "invalid-message",
	InvalidNetworkNumber:        "invalid-network-number",
}

func (c EventCode) String() string {
	if name, ok := eventNames[c]; ok {
		return name
	}
	return fmt.Sprintf("event(0x%02x)", uint8(c))
}

// Channel types for channel-assign.
const (
	ChannelTypeTwoWayReceive  uint8 = 0x00
	ChannelTypeTwoWayTransmit uint8 = 0x10
	ChannelTypeSharedReceive  uint8 = 0x20
	ChannelTypeSharedTransmit uint8 = 0x30
	ChannelTypeOneWayReceive  uint8 = 0x40
	ChannelTypeOneWayTransmit uint8 = 0x50
)

// Channel status values; the low two bits of the channel-status byte.
const (
	ChannelStatusUnassigned uint8 = 0x00
	ChannelStatusAssigned   uint8 = 0x01
	ChannelStatusSearching  uint8 = 0x02
	ChannelStatusTracking   uint8 = 0x03
	ChannelStatusMask       uint8 = 0x03
)

// Startup reasons reported by the startup message.
const (
	StartupPowerOnReset      uint8 = 0x00
	StartupHardwareResetLine uint8 = 0x01
	StartupWatchDogReset     uint8 = 0x02
	StartupCommandReset      uint8 = 0x20
	StartupSynchronousReset  uint8 = 0x40
	StartupSuspendReset      uint8 = 0x80
)

// Standard capability option bits (set bit means the feature is absent).
const (
	CapNoReceiveChannels  uint8 = 0x01
	CapNoTransmitChannels uint8 = 0x02
	CapNoReceiveMessages  uint8 = 0x04
	CapNoTransmitMessages uint8 = 0x08
	CapNoAckdMessages     uint8 = 0x10
	CapNoBurstMessages    uint8 = 0x20
)

// Channel parameter defaults.
const (
	DefaultChannelPeriod uint16 = 8192
	DefaultSearchTimeout uint8  = 0xFF
	DefaultFrequency     uint8  = 66
)

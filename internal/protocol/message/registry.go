package message

import (
	"fmt"
	"sort"

	"github.com/danmuck/antlink/internal/protocol/ant"
)

// Constructor returns a kind with its default payload, ready for SetPayload.
type Constructor func() Variant

// registry is written only from init and read-only afterwards, so lookups
// need no locking.
var registry = map[ant.MessageID]Constructor{}

func register(id ant.MessageID, ctor Constructor) {
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("message: duplicate registration for %s", id))
	}
	registry[id] = ctor
}

func init() {
	register(ant.MsgChannelUnassign, func() Variant { return &ChannelUnassign{fixedChannel(ant.MsgChannelUnassign, 1)} })
	register(ant.MsgChannelAssign, func() Variant { return &ChannelAssign{fixedChannel(ant.MsgChannelAssign, 3)} })
	register(ant.MsgChannelID, func() Variant { return &ChannelID{fixedChannel(ant.MsgChannelID, 5)} })
	register(ant.MsgChannelPeriod, func() Variant {
		m, _ := NewChannelPeriod(0, int(ant.DefaultChannelPeriod))
		return m
	})
	register(ant.MsgChannelSearchTimeout, func() Variant {
		m, _ := NewChannelSearchTimeout(0, int(ant.DefaultSearchTimeout))
		return m
	})
	register(ant.MsgChannelFrequency, func() Variant {
		m, _ := NewChannelFrequency(0, int(ant.DefaultFrequency))
		return m
	})
	register(ant.MsgChannelTXPower, func() Variant { return &ChannelTXPower{fixedChannel(ant.MsgChannelTXPower, 2)} })
	register(ant.MsgNetworkKey, func() Variant { return &NetworkKey{fixed(ant.MsgNetworkKey, 1+networkKeyLen)} })
	register(ant.MsgTXPower, func() Variant { return &TXPower{fixed(ant.MsgTXPower, 2)} })

	register(ant.MsgSystemReset, func() Variant { return NewSystemReset() })
	register(ant.MsgChannelOpen, func() Variant { return &ChannelOpen{fixedChannel(ant.MsgChannelOpen, 1)} })
	register(ant.MsgChannelClose, func() Variant { return &ChannelClose{fixedChannel(ant.MsgChannelClose, 1)} })
	register(ant.MsgChannelRequest, func() Variant {
		m, _ := NewChannelRequest(0, ant.MsgChannelStatus)
		return m
	})

	register(ant.MsgBroadcastData, func() Variant {
		return &BroadcastData{dataMessage{fixedChannel(ant.MsgBroadcastData, 1+DataLen)}}
	})
	register(ant.MsgAcknowledgedData, func() Variant {
		return &AcknowledgedData{dataMessage{fixedChannel(ant.MsgAcknowledgedData, 1+DataLen)}}
	})
	register(ant.MsgBurstData, func() Variant {
		return &BurstData{dataMessage{fixedChannel(ant.MsgBurstData, 1+DataLen)}}
	})

	register(ant.MsgChannelEvent, func() Variant { return &ChannelEvent{fixedChannel(ant.MsgChannelEvent, 3)} })
	register(ant.MsgChannelStatus, func() Variant { return &ChannelStatus{fixedChannel(ant.MsgChannelStatus, 2)} })
	register(ant.MsgVersion, func() Variant { return &Version{fixed(ant.MsgVersion, versionLen)} })
	register(ant.MsgStartup, func() Variant { return &Startup{fixed(ant.MsgStartup, 1)} })
	register(ant.MsgCapabilities, func() Variant {
		return &Capabilities{newMessage(ant.MsgCapabilities, capabilitiesLen, capabilitiesLen+1)}
	})
	register(ant.MsgSerialNumber, func() Variant { return &SerialNumber{fixed(ant.MsgSerialNumber, serialNumberLen)} })
}

// Lookup returns the constructor registered for id.
func Lookup(id ant.MessageID) (Constructor, bool) {
	ctor, ok := registry[id]
	return ctor, ok
}

// Registered returns every registered type code in ascending order.
func Registered() []ant.MessageID {
	ids := make([]ant.MessageID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
	return ids
}

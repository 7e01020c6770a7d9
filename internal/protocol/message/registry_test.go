package message

import (
	"testing"

	"github.com/danmuck/antlink/internal/protocol/ant"
	"github.com/danmuck/antlink/internal/testutil/testlog"
)

func TestRegistryCoversEveryKind(t *testing.T) {
	testlog.Start(t)
	want := []ant.MessageID{
		ant.MsgChannelUnassign, ant.MsgChannelAssign, ant.MsgChannelID,
		ant.MsgChannelPeriod, ant.MsgChannelSearchTimeout, ant.MsgChannelFrequency,
		ant.MsgChannelTXPower, ant.MsgNetworkKey, ant.MsgTXPower,
		ant.MsgSystemReset, ant.MsgChannelOpen, ant.MsgChannelClose, ant.MsgChannelRequest,
		ant.MsgBroadcastData, ant.MsgAcknowledgedData, ant.MsgBurstData,
		ant.MsgChannelEvent, ant.MsgChannelStatus, ant.MsgVersion,
		ant.MsgCapabilities, ant.MsgSerialNumber, ant.MsgStartup,
	}
	if got := len(Registered()); got != len(want) {
		t.Fatalf("registry size: got=%d want=%d", got, len(want))
	}
	for _, id := range want {
		ctor, ok := Lookup(id)
		if !ok {
			t.Fatalf("missing constructor for %s", id)
		}
		v := ctor()
		if v.Type() != id {
			t.Fatalf("constructor for %s built %s", id, v.Type())
		}
	}
}

func TestRegisteredIsSorted(t *testing.T) {
	testlog.Start(t)
	ids := Registered()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("not sorted at %d: %v", i, ids)
		}
	}
}

func TestConstructorsReturnIndependentInstances(t *testing.T) {
	testlog.Start(t)
	ctor, _ := Lookup(ant.MsgChannelOpen)
	a := ctor().(*ChannelOpen)
	b := ctor().(*ChannelOpen)
	if err := a.SetChannel(5); err != nil {
		t.Fatalf("set channel: %v", err)
	}
	if b.Channel() != 0 {
		t.Fatalf("instances share payload")
	}
}

func TestConstructorDefaults(t *testing.T) {
	testlog.Start(t)
	ctor, _ := Lookup(ant.MsgChannelPeriod)
	if p := ctor().(*ChannelPeriod).Period(); p != ant.DefaultChannelPeriod {
		t.Fatalf("default period: got=%d", p)
	}
	ctor, _ = Lookup(ant.MsgChannelRequest)
	if id := ctor().(*ChannelRequest).MessageID(); id != ant.MsgChannelStatus {
		t.Fatalf("default requested id: got=%s", id)
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	testlog.Start(t)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate registration")
		}
	}()
	register(ant.MsgChannelOpen, func() Variant { return NewSystemReset() })
}

func TestLookupUnknown(t *testing.T) {
	testlog.Start(t)
	if _, ok := Lookup(0x00); ok {
		t.Fatalf("expected 0x00 to be unregistered")
	}
}

package message

import (
	"bytes"
	"errors"
	"testing"

	"github.com/danmuck/antlink/internal/protocol/ant"
	"github.com/danmuck/antlink/internal/protocol/frame"
	"github.com/danmuck/antlink/internal/testutil/testlog"
)

func TestResolveUnknownTypeWhileDecodeSucceeds(t *testing.T) {
	testlog.Start(t)
	raw, err := frame.Encode(0x01, []byte{0xAA})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, _, err := frame.Decode(raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	_, n, err := Resolve(raw)
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
	if errors.Is(err, frame.ErrCorrupted) || errors.Is(err, frame.ErrMalformed) || errors.Is(err, frame.ErrIncomplete) {
		t.Fatalf("unknown type must not match a decode category: %v", err)
	}
	var ute UnknownTypeError
	if !errors.As(err, &ute) || ute.Type != 0x01 {
		t.Fatalf("expected UnknownTypeError for 0x01, got %v", err)
	}
	if n != len(raw) {
		t.Fatalf("expected consumed=%d, got %d", len(raw), n)
	}
}

func TestResolvePropagatesDecodeErrors(t *testing.T) {
	testlog.Start(t)
	raw, _ := frame.Encode(uint8(ant.MsgChannelOpen), []byte{1})
	cases := []struct {
		name string
		b    []byte
		want error
	}{
		{"incomplete", raw[:4], frame.ErrIncomplete},
		{"corrupted", append([]byte{0x00}, raw[1:]...), frame.ErrCorrupted},
		{"malformed", []byte{frame.Sync, 10, 0x4B, 0, 0}, frame.ErrMalformed},
	}
	for _, tc := range cases {
		_, n, err := Resolve(tc.b)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if n != 0 {
			t.Fatalf("%s: expected consumed=0, got %d", tc.name, n)
		}
	}
}

func TestResolveRejectsPayloadShapeMismatch(t *testing.T) {
	testlog.Start(t)
	// channel-id must carry exactly 5 bytes
	raw, _ := frame.Encode(uint8(ant.MsgChannelID), []byte{0, 1, 2})
	_, n, err := Resolve(raw)
	if !errors.Is(err, frame.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if n != len(raw) {
		t.Fatalf("expected consumed=%d, got %d", len(raw), n)
	}
}

func TestResolveRoundTripPopulatedKinds(t *testing.T) {
	testlog.Start(t)
	open, _ := NewChannelOpen(3)
	id, _ := NewChannelID(0, 1000, 5, 1)
	key, _ := NewNetworkKey(1, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	req, _ := NewChannelRequest(0, ant.MsgCapabilities)
	bd, _ := NewBroadcastData(1, []byte{1, 2, 3, 4, 5, 6, 7})
	ev, _ := NewChannelEvent(0, 1, int(ant.EventTx))
	caps, _ := NewCapabilities(8, 3, 0, 0)
	_ = caps.SetAdvOptions2(0x01)
	ver, _ := NewVersion([]byte("AP2-3.09\x00"))

	for _, v := range []Variant{open, id, key, req, bd, ev, caps, ver, NewSystemReset()} {
		raw, err := Encode(v)
		if err != nil {
			t.Fatalf("encode %s: %v", v.Type(), err)
		}
		got, n, err := Resolve(raw)
		if err != nil {
			t.Fatalf("resolve %s: %v", v.Type(), err)
		}
		if got.Type() != v.Type() || !bytes.Equal(got.Payload(), v.Payload()) || n != len(raw) {
			t.Fatalf("round-trip mismatch for %s: got payload=% x", v.Type(), got.Payload())
		}
	}
}

func TestResolveProducesIndependentInstances(t *testing.T) {
	testlog.Start(t)
	raw, _ := frame.Encode(uint8(ant.MsgChannelStatus), []byte{1, 2})
	a, _, err := Resolve(raw)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	b, _, _ := Resolve(raw)
	if err := a.(*ChannelStatus).SetStatus(3); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if b.(*ChannelStatus).Status() != 2 {
		t.Fatalf("decoded instances share payload")
	}
}

func TestResolveRoundTripEveryKind(t *testing.T) {
	testlog.Start(t)
	ids := Registered()
	if len(ids) != 22 {
		t.Fatalf("expected 22 registered kinds, got %d", len(ids))
	}
	for _, id := range ids {
		ctor, _ := Lookup(id)
		v := ctor()
		raw, err := Encode(v)
		if err != nil {
			t.Fatalf("encode %s: %v", id, err)
		}
		got, n, err := Resolve(raw)
		if err != nil {
			t.Fatalf("resolve %s: %v", id, err)
		}
		if got.Type() != id || !bytes.Equal(got.Payload(), v.Payload()) || n != len(raw) {
			t.Fatalf("round-trip mismatch for %s: got type=%s payload=% x consumed=%d", id, got.Type(), got.Payload(), n)
		}
	}
}

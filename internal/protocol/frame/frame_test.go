package frame

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeDecodeRoundTripAllTypesAndLengths(t *testing.T) {
	for typ := 0; typ <= 0xFF; typ++ {
		for n := 0; n <= MaxPayloadLen; n++ {
			payload := make([]byte, n)
			for i := range payload {
				payload[i] = byte(typ*31 + i*7)
			}
			raw, err := Encode(uint8(typ), payload)
			if err != nil {
				t.Fatalf("encode type=0x%02x len=%d: %v", typ, n, err)
			}
			if len(raw) != n+Overhead {
				t.Fatalf("encoded size: got=%d want=%d", len(raw), n+Overhead)
			}
			buf := raw
			if n == 0 {
				// a bare header is below the minimum frame length until the
				// next sync byte arrives
				buf = append(append([]byte(nil), raw...), Sync)
			}
			f, consumed, err := Decode(buf)
			if err != nil {
				t.Fatalf("decode type=0x%02x len=%d: %v", typ, n, err)
			}
			if f.Type != uint8(typ) || !bytes.Equal(f.Payload, payload) || consumed != n+Overhead {
				t.Fatalf("round-trip mismatch: got=%s consumed=%d", f, consumed)
			}
		}
	}
}

func TestDecodeStandaloneEmptyFrameIsIncomplete(t *testing.T) {
	raw, err := Encode(0x4A, nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(raw) != Overhead {
		t.Fatalf("encoded size: got=%d want=%d", len(raw), Overhead)
	}
	if _, n, err := Decode(raw); !errors.Is(err, ErrIncomplete) || n != 0 {
		t.Fatalf("expected ErrIncomplete with n=0, got n=%d err=%v", n, err)
	}
	f, n, err := Decode(append(raw, Sync))
	if err != nil {
		t.Fatalf("decode with trailing sync: %v", err)
	}
	if n != Overhead || f.Type != 0x4A || len(f.Payload) != 0 {
		t.Fatalf("unexpected frame: %s consumed=%d", f, n)
	}
}

func TestEncodeLengthBound(t *testing.T) {
	if _, err := Encode(0x4E, make([]byte, MaxPayloadLen)); err != nil {
		t.Fatalf("encode max payload: %v", err)
	}
	_, err := Encode(0x4E, make([]byte, MaxPayloadLen+1))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestEncodeChannelOpenScenario(t *testing.T) {
	raw, err := Encode(0x4B, []byte{0x03})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0xA4, 0x01, 0x4B, 0x03, 0xA4 ^ 0x01 ^ 0x4B ^ 0x03}
	if !bytes.Equal(raw, want) {
		t.Fatalf("frame mismatch: got=% x want=% x", raw, want)
	}
}

func TestDecodeShortBufferIsIncomplete(t *testing.T) {
	cases := [][]byte{
		nil,
		{Sync},
		{Sync, 0x00, 0x4A, 0x00},
		{0x00, 0xFF, 0xFF, 0xFF}, // garbage still reports incomplete below the minimum
	}
	for _, b := range cases {
		if _, _, err := Decode(b); !errors.Is(err, ErrIncomplete) {
			t.Fatalf("expected ErrIncomplete for % x, got %v", b, err)
		}
	}
}

func TestDecodeDeclaredLengthBeyondBufferIsIncomplete(t *testing.T) {
	raw, err := Encode(0x4E, []byte{0, 1, 2, 3, 4, 5, 6, 7})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for cut := MinFrameLen; cut < len(raw); cut++ {
		if _, _, err := Decode(raw[:cut]); !errors.Is(err, ErrIncomplete) {
			t.Fatalf("expected ErrIncomplete at %d bytes, got %v", cut, err)
		}
	}
}

func TestDecodeBadSyncIsCorrupted(t *testing.T) {
	// checksum is computed as if the sync byte were valid
	b := []byte{0xA5, 0x01, 0x4B, 0x03, Sync ^ 0x01 ^ 0x4B ^ 0x03}
	if _, _, err := Decode(b); !errors.Is(err, ErrCorrupted) {
		t.Fatalf("expected ErrCorrupted, got %v", err)
	}
}

func TestDecodeLengthOverMaxIsMalformed(t *testing.T) {
	b := []byte{Sync, MaxPayloadLen + 1, 0x4E, 0x00, 0x00}
	if _, _, err := Decode(b); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestDecodeSingleBitFlipIsCorrupted(t *testing.T) {
	raw, err := Encode(0x51, []byte{0x00, 0xE8, 0x03, 0x05, 0x01})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for i := range raw {
		if i == 1 {
			// length flips change the frame size; covered below
			continue
		}
		for bit := 0; bit < 8; bit++ {
			b := append([]byte(nil), raw...)
			b[i] ^= 1 << bit
			if _, _, err := Decode(b); !errors.Is(err, ErrCorrupted) {
				t.Fatalf("expected ErrCorrupted flipping byte=%d bit=%d, got %v", i, bit, err)
			}
		}
	}
}

func TestDecodeLengthBitFlipNeverSucceeds(t *testing.T) {
	raw, err := Encode(0x4E, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for bit := 0; bit < 8; bit++ {
		b := append([]byte(nil), raw...)
		b[1] ^= 1 << bit
		_, _, err := Decode(b)
		if err == nil {
			t.Fatalf("expected failure flipping length bit=%d", bit)
		}
		if !errors.Is(err, ErrCorrupted) && !errors.Is(err, ErrMalformed) && !errors.Is(err, ErrIncomplete) {
			t.Fatalf("unexpected error category flipping length bit=%d: %v", bit, err)
		}
	}
}

func TestDecodeConsumesExactlyOneFrame(t *testing.T) {
	first, _ := Encode(0x4B, []byte{0x01})
	second, _ := Encode(0x4C, []byte{0x02})
	stream := append(append([]byte(nil), first...), second...)

	f, n, err := Decode(stream)
	if err != nil {
		t.Fatalf("decode first: %v", err)
	}
	if f.Type != 0x4B || n != len(first) {
		t.Fatalf("unexpected first frame: %s consumed=%d", f, n)
	}
	f, n, err = Decode(stream[n:])
	if err != nil {
		t.Fatalf("decode second: %v", err)
	}
	if f.Type != 0x4C || n != len(second) {
		t.Fatalf("unexpected second frame: %s consumed=%d", f, n)
	}
}

func TestDecodedPayloadDoesNotAliasInput(t *testing.T) {
	raw, _ := Encode(0x4E, []byte{9, 9, 9})
	f, _, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	raw[3] = 0
	if f.Payload[0] != 9 {
		t.Fatalf("payload aliases input buffer")
	}
}

func TestMarshalBinaryMatchesEncode(t *testing.T) {
	f := Frame{Type: 0x46, Payload: []byte{2, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}}
	got, err := f.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want, _ := Encode(f.Type, f.Payload)
	if !bytes.Equal(got, want) || len(got) != f.Len() {
		t.Fatalf("marshal mismatch: got=% x want=% x", got, want)
	}
}

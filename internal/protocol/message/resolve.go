package message

import (
	"github.com/rs/zerolog/log"

	"github.com/danmuck/antlink/internal/protocol/ant"
	"github.com/danmuck/antlink/internal/protocol/frame"
)

// Resolve decodes the frame at the start of b and materialises its kind.
//
// consumed is the frame size whenever the frame itself was valid, including
// when the type is unknown or the payload does not fit the kind, so callers
// can skip it. It is 0 when frame.Decode failed.
func Resolve(b []byte) (v Variant, consumed int, err error) {
	f, n, err := frame.Decode(b)
	if err != nil {
		log.Trace().Err(err).Int("buffered", len(b)).Msg("message.Resolve decode failed")
		return nil, 0, err
	}
	v, err = FromFrame(f)
	if err != nil {
		return nil, n, err
	}
	return v, n, nil
}

// FromFrame installs a decoded frame's payload into the kind registered for
// its type code.
func FromFrame(f frame.Frame) (Variant, error) {
	id := ant.MessageID(f.Type)
	ctor, ok := Lookup(id)
	if !ok {
		log.Debug().Str("type", id.String()).Msg("message.FromFrame unknown type")
		return nil, UnknownTypeError{Type: id}
	}
	v := ctor()
	if err := v.SetPayload(f.Payload); err != nil {
		log.Debug().Err(err).Str("type", id.String()).Msg("message.FromFrame payload rejected")
		return nil, err
	}
	log.Trace().Str("type", id.String()).Int("len", len(f.Payload)).Msg("message.FromFrame ok")
	return v, nil
}

// Encode frames any message.
func Encode(v Variant) ([]byte, error) {
	return v.MarshalBinary()
}

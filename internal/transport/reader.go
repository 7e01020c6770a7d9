package transport

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/antlink/internal/protocol/frame"
	"github.com/danmuck/antlink/internal/protocol/message"
)

const readChunk = 64

// Stats counts what a Reader has seen on its stream.
type Stats struct {
	Messages  int
	Corrupted int
	Malformed int
	Unknown   int
	// Dropped is the number of bytes discarded while resynchronising.
	Dropped int
}

// Reader turns a byte stream into messages. It buffers across partial reads
// and resynchronises on the sync byte after corruption. Not safe for
// concurrent use.
type Reader struct {
	src   io.Reader
	buf   []byte
	chunk []byte
	stats Stats
}

func NewReader(src io.Reader) *Reader {
	return &Reader{
		src:   src,
		buf:   make([]byte, 0, frame.MaxFrameLen*4),
		chunk: make([]byte, readChunk),
	}
}

func (r *Reader) Stats() Stats {
	return r.stats
}

// Next returns the next message on the stream. Corrupted, malformed and
// unknown frames are skipped and counted. A zero-byte read (serial timeout)
// is retried until ctx is done.
func (r *Reader) Next(ctx context.Context) (message.Variant, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(r.buf) > 0 {
			v, n, err := message.Resolve(r.buf)
			switch {
			case err == nil:
				r.advance(n)
				r.stats.Messages++
				return v, nil
			case errors.Is(err, frame.ErrIncomplete):
				// need more bytes
			case errors.Is(err, message.ErrUnknownType):
				log.Warn().Err(err).Msg("transport.Reader skipping frame")
				r.stats.Unknown++
				r.advance(n)
				continue
			case errors.Is(err, frame.ErrCorrupted):
				log.Debug().Err(err).Msg("transport.Reader resync")
				r.stats.Corrupted++
				r.resync()
				continue
			case errors.Is(err, frame.ErrMalformed):
				log.Warn().Err(err).Msg("transport.Reader malformed frame")
				r.stats.Malformed++
				if n > 0 {
					r.advance(n)
				} else {
					r.resync()
				}
				continue
			default:
				return nil, err
			}
		}

		n, err := r.src.Read(r.chunk)
		if n > 0 {
			r.buf = append(r.buf, r.chunk[:n]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) && n > 0 {
				continue
			}
			if errors.Is(err, io.EOF) && len(r.buf) > 0 {
				r.stats.Dropped += len(r.buf)
				r.buf = r.buf[:0]
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
	}
}

func (r *Reader) advance(n int) {
	r.buf = append(r.buf[:0], r.buf[n:]...)
}

// resync drops bytes up to the next sync byte after the current one.
func (r *Reader) resync() {
	i := bytes.IndexByte(r.buf[1:], frame.Sync)
	if i < 0 {
		r.stats.Dropped += len(r.buf)
		r.buf = r.buf[:0]
		return
	}
	r.stats.Dropped += i + 1
	r.advance(i + 1)
}

// WriteMessage encodes v and writes the whole frame to w.
func WriteMessage(ctx context.Context, w io.Writer, v message.Variant) error {
	raw, err := message.Encode(v)
	if err != nil {
		return err
	}
	log.Debug().Str("type", v.Type().String()).Hex("frame", raw).Msg("transport.WriteMessage")
	return writeFull(ctx, w, raw)
}

func writeFull(ctx context.Context, w io.Writer, buf []byte) error {
	written := 0
	for written < len(buf) {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := w.Write(buf[written:])
		if err != nil {
			return err
		}
		written += n
	}
	return nil
}

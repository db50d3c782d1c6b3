// Package streamio implements the peek/discard, reserve/commit buffer
// contract that the HTTP decoder and encoder read and write through, plus a
// pooled reference Stream and the InputStream/OutputStream wrappers that
// turn it into a refill/drain pipeline against a blocking source or sink.
package streamio

import "errors"

// Stream is a contiguous, re-growable byte buffer with a read cursor and a
// write cursor. Data() exposes the unread bytes between the two cursors;
// Discard advances the read cursor; Reserve grows the buffer (if needed) and
// exposes writable capacity past the write cursor; Commit advances the write
// cursor over bytes the caller has just written into a slice returned by
// Reserve.
//
// A slice returned by Data or Reserve is a view into the Stream's backing
// array and is only valid until the next call to Discard, Reserve, or
// Commit.
type Stream interface {
	Data() []byte
	Discard(n int)
	Reserve(n int) []byte
	Commit(n int)
}

// Refiller supplies more bytes to a Stream, typically by reading from a
// socket or file into the region Stream.Reserve exposes and then calling
// Stream.Commit.
type Refiller interface {
	Refill(s Stream) error
}

// RefillerFunc adapts a function to a Refiller.
type RefillerFunc func(Stream) error

// Refill calls f.
func (f RefillerFunc) Refill(s Stream) error { return f(s) }

// Drainer consumes bytes from a Stream, typically by writing Stream.Data to
// a socket or file and then calling Stream.Discard.
type Drainer interface {
	Drain(s Stream) error
}

// DrainerFunc adapts a function to a Drainer.
type DrainerFunc func(Stream) error

// Drain calls f.
func (f DrainerFunc) Drain(s Stream) error { return f(s) }

// ErrEndOfStream is returned by a Refiller when no more bytes are available.
var ErrEndOfStream = errors.New("streamio: end of stream")

package streamio

import "github.com/valyala/bytebufferpool"

// BufferStream is the reference Stream implementation: a single growable
// byte slice, pooled via bytebufferpool across Connections so a busy server
// isn't allocating a fresh buffer per accepted connection.
type BufferStream struct {
	buf  *bytebufferpool.ByteBuffer
	r, w int
}

// NewBufferStream returns a Stream backed by a buffer drawn from the shared
// pool. Call Release when the Stream is no longer needed to return the
// buffer to the pool.
func NewBufferStream() *BufferStream {
	return &BufferStream{buf: bytebufferpool.Get()}
}

// Release returns the backing buffer to the pool. The BufferStream must not
// be used afterward.
func (s *BufferStream) Release() {
	if s.buf != nil {
		bytebufferpool.Put(s.buf)
		s.buf = nil
	}
}

// Data implements Stream.
func (s *BufferStream) Data() []byte { return s.buf.B[s.r:s.w] }

// Discard implements Stream.
func (s *BufferStream) Discard(n int) {
	if n < 0 || s.r+n > s.w {
		panic("streamio: Discard out of range")
	}
	s.r += n
	if s.r == s.w {
		s.r, s.w = 0, 0
	}
}

// Reserve implements Stream. It compacts unread bytes to the front of the
// buffer, or grows it, whenever the requested capacity isn't already
// available past the write cursor.
func (s *BufferStream) Reserve(n int) []byte {
	if n < 0 {
		panic("streamio: Reserve with negative size")
	}
	need := s.w + n
	if need > cap(s.buf.B) {
		if s.r > 0 {
			copy(s.buf.B[:cap(s.buf.B)], s.buf.B[s.r:s.w])
			s.w -= s.r
			s.r = 0
			need = s.w + n
		}
		if need > cap(s.buf.B) {
			newCap := cap(s.buf.B) * 2
			if newCap < need {
				newCap = need
			}
			if newCap < 4096 {
				newCap = 4096
			}
			grown := make([]byte, s.w, newCap)
			copy(grown, s.buf.B[:s.w])
			s.buf.B = grown
		}
	}
	if len(s.buf.B) < need {
		s.buf.B = s.buf.B[:need]
	}
	return s.buf.B[s.w:need]
}

// Commit implements Stream.
func (s *BufferStream) Commit(n int) {
	if n < 0 || s.w+n > len(s.buf.B) {
		panic("streamio: Commit out of range")
	}
	s.w += n
}

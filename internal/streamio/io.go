package streamio

// InputStream exposes a Stream through a peek/discard interface: Peek
// blocks, calling the Refiller as many times as necessary, until at least n
// bytes are buffered, then returns a view of exactly those n bytes. Discard
// advances past bytes the caller has finished with.
//
// Once a Refill call fails, the error is sticky: every subsequent Peek
// returns the same error without attempting further I/O. This mirrors the
// source decoder's isValid() guard, which latches the stream as faulted
// rather than letting callers retry a torn read.
type InputStream struct {
	base     Stream
	refiller Refiller
	err      error
}

// NewInputStream wraps base, refilling it via refiller on demand.
func NewInputStream(base Stream, refiller Refiller) *InputStream {
	return &InputStream{base: base, refiller: refiller}
}

// Err returns the sticky error latched by the last failed refill, or nil.
func (in *InputStream) Err() error { return in.err }

// Peek returns a view of the next n unread bytes, refilling as needed. The
// returned slice is valid only until the next call to Peek or Discard.
func (in *InputStream) Peek(n int) ([]byte, error) {
	if in.err != nil {
		return nil, in.err
	}
	for len(in.base.Data()) < n {
		if err := in.refiller.Refill(in.base); err != nil {
			in.err = err
			return nil, err
		}
	}
	return in.base.Data()[:n], nil
}

// Discard advances past the first n unread bytes.
func (in *InputStream) Discard(n int) {
	in.base.Discard(n)
}

// OutputStream exposes a Stream through a reserve/commit interface: Reserve
// returns a writable view of at least n bytes; Flush commits the n bytes the
// caller has written and then drains the Stream, calling the Drainer
// repeatedly until it is empty.
//
// As with InputStream, a failed drain latches a sticky error.
type OutputStream struct {
	base    Stream
	drainer Drainer
	err     error
}

// NewOutputStream wraps base, draining it via drainer after every Flush.
func NewOutputStream(base Stream, drainer Drainer) *OutputStream {
	return &OutputStream{base: base, drainer: drainer}
}

// Err returns the sticky error latched by the last failed drain, or nil.
func (out *OutputStream) Err() error { return out.err }

// Reserve returns a writable view of at least n bytes past the data already
// committed. The returned slice is valid only until the next call to
// Reserve, Commit, or Flush.
func (out *OutputStream) Reserve(n int) []byte {
	return out.base.Reserve(n)
}

// Flush commits n bytes written into the slice last returned by Reserve,
// then drains the stream until empty.
func (out *OutputStream) Flush(n int) error {
	if out.err != nil {
		return out.err
	}
	out.base.Commit(n)
	for len(out.base.Data()) > 0 {
		if err := out.drainer.Drain(out.base); err != nil {
			out.err = err
			return err
		}
	}
	return nil
}

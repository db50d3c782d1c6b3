package httpcore

import (
	"fmt"
	"io"
	"net"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/coreframe/httpcodec/httpmsg"
	"github.com/coreframe/httpcodec/internal/obslog"
	"github.com/coreframe/httpcodec/internal/obsmetrics"
	"github.com/coreframe/httpcodec/internal/streamio"
)

// DefaultMinReadBufferSize is the minimum number of bytes a Connection
// reserves per socket read, matching the reference implementation's
// ConnectionOptions::minReadBufferSize default.
const DefaultMinReadBufferSize = 4096

// Connection binds a Parser and a Dumper to a net.Conn, refilling the
// Parser's InputStream via Conn.Read and draining the Dumper's OutputStream
// via Conn.Write. It never changes codec behavior based on logging or
// metrics state — those are observers, not participants.
//
// Connection is not goroutine-safe; a single Connection must not be used
// from more than one goroutine concurrently.
type Connection struct {
	ID   uuid.UUID
	conn net.Conn

	inStream  *streamio.BufferStream
	outStream *streamio.BufferStream

	Parser *Parser
	Dumper *Dumper
}

// NewConnection wires a Parser and Dumper to conn. minReadBufferSize is
// floored at DefaultMinReadBufferSize if given as zero or negative.
func NewConnection(conn net.Conn, popts ParserOptions, dopts DumperOptions, minReadBufferSize int) *Connection {
	if minReadBufferSize <= 0 {
		minReadBufferSize = DefaultMinReadBufferSize
	}
	_ = dopts // no encode-side tunables yet; kept for signature symmetry, see options.go

	c := &Connection{
		ID:        uuid.New(),
		conn:      conn,
		inStream:  streamio.NewBufferStream(),
		outStream: streamio.NewBufferStream(),
	}

	in := streamio.NewInputStream(c.inStream, streamio.RefillerFunc(func(s streamio.Stream) error {
		buf := s.Reserve(minReadBufferSize)
		n, rerr := conn.Read(buf)
		if n > 0 {
			s.Commit(n)
		}
		if n == 0 {
			return httpmsg.ErrEndOfStream
		}
		if rerr != nil && rerr != io.EOF {
			return rerr
		}
		return nil
	}))

	out := streamio.NewOutputStream(c.outStream, streamio.DrainerFunc(func(s streamio.Stream) error {
		data := s.Data()
		n, werr := conn.Write(data)
		if n > 0 {
			s.Discard(n)
		}
		return werr
	}))

	c.Parser = NewParser(popts, in)
	c.Dumper = NewDumper(out)
	return c
}

// Close releases the Connection's pooled buffers and closes the underlying
// net.Conn.
func (c *Connection) Close() error {
	c.inStream.Release()
	c.outStream.Release()
	return c.conn.Close()
}

func (c *Connection) wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return errors.WithMessage(err, fmt.Sprintf("httpcore: connection %s: %s", c.ID, op))
}

func (c *Connection) errKind(err error) string {
	switch {
	case errors.Is(err, httpmsg.ErrInvalidMessage):
		return "invalid_message"
	case errors.Is(err, httpmsg.ErrUnknownMethod):
		return "unknown_method"
	case errors.Is(err, httpmsg.ErrUnknownStatus):
		return "unknown_status"
	case errors.Is(err, httpmsg.ErrStartLineTooLong):
		return "start_line_too_long"
	case errors.Is(err, httpmsg.ErrHeaderTooLarge):
		return "header_too_large"
	case errors.Is(err, httpmsg.ErrBodyTooLarge):
		return "body_too_large"
	case errors.Is(err, httpmsg.ErrEndOfStream):
		return "end_of_stream"
	default:
		return "unknown"
	}
}

// ReadRequest decodes the next request from conn, logging and counting the
// outcome.
func (c *Connection) ReadRequest(req *httpmsg.Request) error {
	if err := c.Parser.GetRequest(req); err != nil {
		obsmetrics.IncParseError(c.errKind(err))
		wrapped := c.wrap("ReadRequest", err)
		obslog.Errorf("%v", wrapped)
		return wrapped
	}
	obsmetrics.IncDecoded("request")
	return nil
}

// ReadResponse decodes the next response from conn, logging and counting
// the outcome.
func (c *Connection) ReadResponse(resp *httpmsg.Response) error {
	if err := c.Parser.GetResponse(resp); err != nil {
		obsmetrics.IncParseError(c.errKind(err))
		wrapped := c.wrap("ReadResponse", err)
		obslog.Errorf("%v", wrapped)
		return wrapped
	}
	obsmetrics.IncDecoded("response")
	return nil
}

// WriteRequest encodes req with a fixed Content-Length body of bodySize
// bytes, logging and counting the outcome.
func (c *Connection) WriteRequest(req *httpmsg.Request, bodySize uint64) error {
	if err := c.Dumper.PutRequest(req, bodySize); err != nil {
		wrapped := c.wrap("WriteRequest", err)
		obslog.Errorf("%v", wrapped)
		return wrapped
	}
	obsmetrics.IncEncoded("request")
	return nil
}

// WriteResponse encodes resp with a fixed Content-Length body of bodySize
// bytes, logging and counting the outcome.
func (c *Connection) WriteResponse(resp *httpmsg.Response, bodySize uint64) error {
	if err := c.Dumper.PutResponse(resp, bodySize); err != nil {
		wrapped := c.wrap("WriteResponse", err)
		obslog.Errorf("%v", wrapped)
		return wrapped
	}
	obsmetrics.IncEncoded("response")
	return nil
}

// PeekPayload delegates to Parser.PeekPayload.
func (c *Connection) PeekPayload(n uint64) ([]byte, error) {
	b, err := c.Parser.PeekPayload(n)
	if err != nil {
		return nil, c.wrap("PeekPayload", err)
	}
	return b, nil
}

// DiscardPayload delegates to Parser.DiscardPayload, counting the drained
// bytes and the chunk size when applicable.
func (c *Connection) DiscardPayload(n uint64) error {
	chunked := c.Parser.BodyIsChunked()
	if err := c.Parser.DiscardPayload(n); err != nil {
		return c.wrap("DiscardPayload", err)
	}
	obsmetrics.AddBodyBytes("decode", n)
	if chunked {
		obsmetrics.ObserveChunkSize(n)
	}
	return nil
}

// ReservePayload delegates to Dumper.ReservePayload.
func (c *Connection) ReservePayload(n uint64) []byte {
	return c.Dumper.ReservePayload(n)
}

// FlushPayload delegates to Dumper.FlushPayload, counting the flushed bytes.
func (c *Connection) FlushPayload(n uint64) error {
	if err := c.Dumper.FlushPayload(n); err != nil {
		return c.wrap("FlushPayload", err)
	}
	obsmetrics.AddBodyBytes("encode", n)
	return nil
}

package httpcore

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/coreframe/httpcodec/httpmsg"
	"github.com/coreframe/httpcodec/internal/streamio"
)

// Dumper encodes HTTP/1.1 requests or responses onto an OutputStream. Like
// Parser, it is not goroutine-safe and an instance that has returned an
// error must not be reused.
//
// A Dumper's zero value is not usable; construct one with NewDumper.
type Dumper struct {
	out *streamio.OutputStream

	chunked   bool
	remaining uint64 // remaining fixed-length body bytes; unused in chunked mode
}

// NewDumper returns a Dumper writing to out.
func NewDumper(out *streamio.OutputStream) *Dumper {
	return &Dumper{out: out}
}

// BodyIsChunked reports whether the message currently being encoded uses
// chunked transfer-encoding.
func (d *Dumper) BodyIsChunked() bool { return d.chunked }

// RemainingBodySize reports how many fixed-length body bytes remain
// unwritten. It is meaningless in chunked mode.
func (d *Dumper) RemainingBodySize() uint64 { return d.remaining }

// PutChunkedRequest writes req's start line and header block, selecting
// chunked transfer-encoding for the body. ReservePayload/FlushPayload must
// be used to write the body, ending with a zero-size flush.
func (d *Dumper) PutChunkedRequest(req *httpmsg.Request) error {
	return d.putRequest(req, true, 0)
}

// PutRequest writes req's start line and header block with a fixed
// Content-Length of bodySize. ReservePayload/FlushPayload must write exactly
// bodySize bytes in total before the next message.
func (d *Dumper) PutRequest(req *httpmsg.Request, bodySize uint64) error {
	return d.putRequest(req, false, bodySize)
}

func (d *Dumper) putRequest(req *httpmsg.Request, chunked bool, bodySize uint64) error {
	if d.chunked || d.remaining != 0 {
		panic("httpcore: Dumper.PutRequest called with an undrained body")
	}
	if err := d.dumpRequestStartLine(req); err != nil {
		return err
	}
	if err := d.dumpHeader(&req.Header, chunked, bodySize); err != nil {
		return err
	}
	d.chunked = chunked
	if !chunked {
		d.remaining = bodySize
	}
	return nil
}

// PutChunkedResponse is PutChunkedRequest's response counterpart.
func (d *Dumper) PutChunkedResponse(resp *httpmsg.Response) error {
	return d.putResponse(resp, true, 0)
}

// PutResponse is PutRequest's response counterpart.
func (d *Dumper) PutResponse(resp *httpmsg.Response, bodySize uint64) error {
	return d.putResponse(resp, false, bodySize)
}

func (d *Dumper) putResponse(resp *httpmsg.Response, chunked bool, bodySize uint64) error {
	if d.chunked || d.remaining != 0 {
		panic("httpcore: Dumper.PutResponse called with an undrained body")
	}
	if err := d.dumpResponseStartLine(resp); err != nil {
		return err
	}
	if err := d.dumpHeader(&resp.Header, chunked, bodySize); err != nil {
		return err
	}
	d.chunked = chunked
	if !chunked {
		d.remaining = bodySize
	}
	return nil
}

// ReservePayload returns a writable view of n body bytes. In chunked mode
// this reserves room for the chunk-size line and trailing CRLF around the n
// payload bytes too, but only the n payload bytes are returned; call
// FlushPayload with the same n once the caller has filled the view.
func (d *Dumper) ReservePayload(n uint64) []byte {
	if d.chunked {
		total := chunkSizeHexDigits + 2 + int(n) + 2
		buf := d.out.Reserve(total)
		return buf[chunkSizeHexDigits+2 : chunkSizeHexDigits+2+int(n)]
	}
	if n > d.remaining {
		panic("httpcore: ReservePayload n exceeds remaining body size")
	}
	return d.out.Reserve(int(n))
}

// FlushPayload commits n bytes written into the view last returned by
// ReservePayload. In chunked mode, a call with n == 0 closes the body (the
// terminating zero-size chunk); FlushPayload must not be called again until
// the next PutChunkedRequest/PutChunkedResponse.
func (d *Dumper) FlushPayload(n uint64) error {
	if d.chunked {
		total := chunkSizeHexDigits + 2 + int(n) + 2
		buf := d.out.Reserve(total)
		hex := fmt.Sprintf("%0*X", chunkSizeHexDigits, n)
		copy(buf, hex)
		buf[chunkSizeHexDigits], buf[chunkSizeHexDigits+1] = '\r', '\n'
		buf[total-2], buf[total-1] = '\r', '\n'
		if err := d.out.Flush(total); err != nil {
			return err
		}
		if n == 0 {
			d.chunked = false
		}
		return nil
	}
	if n > d.remaining {
		panic("httpcore: FlushPayload n exceeds remaining body size")
	}
	if err := d.out.Flush(int(n)); err != nil {
		return err
	}
	d.remaining -= n
	return nil
}

func (d *Dumper) flushLine(line *bytes.Buffer) error {
	n := line.Len()
	buf := d.out.Reserve(n)
	copy(buf, line.Bytes())
	return d.out.Flush(n)
}

func (d *Dumper) dumpRequestStartLine(req *httpmsg.Request) error {
	methodName := req.Method.String()
	if methodName == "" {
		return httpmsg.ErrUnknownMethod
	}
	u := &req.URI

	var line bytes.Buffer
	line.WriteString(methodName)
	line.WriteByte(' ')
	if u.PathName == "*" {
		line.WriteByte('*')
	} else {
		if u.SchemeName != "" {
			line.WriteString(u.SchemeName)
			line.WriteString("://")
			if u.UserInfo != "" {
				line.WriteString(u.UserInfo)
				line.WriteByte('@')
			}
			line.WriteString(u.HostName)
			if u.PortNumber != httpmsg.PortAbsent {
				line.WriteByte(':')
				line.WriteString(strconv.FormatUint(uint64(uint16(u.PortNumber)), 10))
			}
		}
		line.WriteString(u.PathName)
		if u.QueryString != "" {
			line.WriteByte('?')
			line.WriteString(u.QueryString)
		}
		if u.FragmentID != "" {
			line.WriteByte('#')
			line.WriteString(u.FragmentID)
		}
	}
	line.WriteByte(' ')
	line.WriteString("HTTP/")
	line.WriteString(strconv.FormatUint(uint64(req.MajorVersion), 10))
	line.WriteByte('.')
	line.WriteString(strconv.FormatUint(uint64(req.MinorVersion), 10))
	line.WriteString("\r\n")
	return d.flushLine(&line)
}

func (d *Dumper) dumpResponseStartLine(resp *httpmsg.Response) error {
	var line bytes.Buffer
	line.WriteString("HTTP/")
	line.WriteString(strconv.FormatUint(uint64(resp.MajorVersion), 10))
	line.WriteByte('.')
	line.WriteString(strconv.FormatUint(uint64(resp.MinorVersion), 10))
	line.WriteByte(' ')
	line.WriteString(strconv.Itoa(int(resp.StatusCode)))
	line.WriteByte(' ')
	line.WriteString(resp.ReasonPhrase)
	line.WriteString("\r\n")
	return d.flushLine(&line)
}

func (d *Dumper) dumpHeader(header *httpmsg.Header, chunked bool, bodySize uint64) error {
	var block bytes.Buffer
	if chunked {
		block.WriteString("Transfer-Encoding: chunked\r\n")
	} else {
		block.WriteString("Content-Length: ")
		block.WriteString(strconv.FormatUint(bodySize, contentLengthBase))
		block.WriteString("\r\n")
	}
	header.Traverse(func(_ int, name, value string) bool {
		block.WriteString(name)
		block.WriteString(": ")
		block.WriteString(value)
		block.WriteString("\r\n")
		return true
	})
	block.WriteString("\r\n")
	return d.flushLine(&block)
}

package httpcore

import (
	"bytes"

	"github.com/coreframe/httpcodec/httpmsg"
	"github.com/coreframe/httpcodec/internal/charset"
	"github.com/coreframe/httpcodec/internal/streamio"
)

// chunkSizeLineMax bounds a chunk-size line: chunkSizeHexDigits hex digits
// plus a trailing CRLF. The reference decoder derives this from
// (bits-in-size_t + 3) / 4 + 2; on a 64-bit size_t that's 16 + 2 = 18.
const chunkSizeLineMax = chunkSizeHexDigits + 2

// Parser decodes a stream of HTTP/1.1 requests or responses. It is not
// goroutine-safe, and an instance that has returned an error must not be
// reused — the underlying InputStream latches a sticky error, so further
// calls keep returning it.
//
// A Parser's zero value is not usable; construct one with NewParser.
type Parser struct {
	opts ParserOptions
	in   *streamio.InputStream

	chunked      bool
	remaining    uint64 // bodySize when !chunked, current chunk's remaining size when chunked
	maxChunkSize uint64 // remaining budget against opts.MaxBodySize, chunked mode only
}

// NewParser returns a Parser reading from in with the given limits.
func NewParser(opts ParserOptions, in *streamio.InputStream) *Parser {
	return &Parser{opts: opts, in: in}
}

// BodyIsChunked reports whether the most recently decoded message uses
// chunked transfer-encoding.
func (p *Parser) BodyIsChunked() bool { return p.chunked }

// RemainingBodyOrChunkSize reports how many body bytes (fixed-length mode)
// or current-chunk bytes (chunked mode) remain undrained.
func (p *Parser) RemainingBodyOrChunkSize() uint64 { return p.remaining }

// GetRequest decodes a request start line, header block, and framing
// information into req, leaving the body for PeekPayload/DiscardPayload.
// GetRequest must not be called again, nor GetResponse, until the previous
// message's body has been fully drained.
func (p *Parser) GetRequest(req *httpmsg.Request) error {
	if p.chunked || p.remaining != 0 {
		panic("httpcore: Parser.GetRequest called with an undrained body")
	}
	req.Reset()
	if err := p.parseRequestStartLine(req); err != nil {
		return err
	}
	if err := p.parseHeader(&req.Header); err != nil {
		return err
	}
	chunked, remaining, err := p.parseBodyOrChunkSize(&req.Header)
	if err != nil {
		return err
	}
	p.chunked, p.remaining = chunked, remaining
	return nil
}

// GetResponse decodes a response status line, header block, and framing
// information into resp. See GetRequest for the undrained-body precondition.
func (p *Parser) GetResponse(resp *httpmsg.Response) error {
	if p.chunked || p.remaining != 0 {
		panic("httpcore: Parser.GetResponse called with an undrained body")
	}
	resp.Reset()
	if err := p.parseResponseStartLine(resp); err != nil {
		return err
	}
	if err := p.parseHeader(&resp.Header); err != nil {
		return err
	}
	chunked, remaining, err := p.parseBodyOrChunkSize(&resp.Header)
	if err != nil {
		return err
	}
	p.chunked, p.remaining = chunked, remaining
	return nil
}

// PeekPayload returns a view of the next n bytes of body (or current chunk)
// data without consuming them. n must not exceed RemainingBodyOrChunkSize.
// When n equals the full remaining chunk size in chunked mode, the trailing
// CRLF that terminates the chunk is validated (but not included in the
// returned slice).
func (p *Parser) PeekPayload(n uint64) ([]byte, error) {
	if n > p.remaining {
		panic("httpcore: PeekPayload n exceeds remaining size")
	}
	if p.chunked && n == p.remaining {
		b, err := p.in.Peek(int(p.remaining) + 2)
		if err != nil {
			return nil, err
		}
		if b[p.remaining] != '\r' || b[p.remaining+1] != '\n' {
			return nil, httpmsg.ErrInvalidMessage
		}
		return b[:p.remaining], nil
	}
	return p.in.Peek(int(n))
}

// DiscardPayload consumes n bytes of body (or current chunk) data
// previously returned by PeekPayload. When n equals the full remaining
// chunk size in chunked mode, it also consumes the chunk's trailing CRLF
// and, unless that chunk was the terminating zero-size chunk, parses the
// next chunk's size.
func (p *Parser) DiscardPayload(n uint64) error {
	if n > p.remaining {
		panic("httpcore: DiscardPayload n exceeds remaining size")
	}
	if p.chunked && n == p.remaining {
		p.in.Discard(int(p.remaining) + 2)
		if p.remaining == 0 {
			p.chunked = false
			return nil
		}
		size, err := p.parseChunkSize()
		if err != nil {
			return err
		}
		p.remaining = size
		return nil
	}
	p.in.Discard(int(n))
	p.remaining -= n
	return nil
}

// peekUntilCRLF grows the InputStream's peeked window two bytes at a time
// until it ends in CRLF, mirroring the source decoder's
// peekCharsUntilCRLF: a trailing LF not preceded by CR, or a trailing CR
// alone, is not mistaken for the terminator and the window is advanced
// instead of backtracked. tooLongErr is returned if max is exceeded before a
// terminator is found.
func (p *Parser) peekUntilCRLF(max int, tooLongErr error) ([]byte, int, error) {
	n := 2
	for {
		if n > max {
			return nil, 0, tooLongErr
		}
		b, err := p.in.Peek(n)
		if err != nil {
			return nil, 0, err
		}
		c1, c2 := b[n-2], b[n-1]
		switch {
		case c2 == '\n':
			if c1 == '\r' {
				return b, n, nil
			}
			n += 2
		case c2 == '\r':
			n++
		default:
			n += 2
		}
	}
}

// peekUntilCRLFCRLF is peekUntilCRLF's four-byte-lookahead counterpart,
// used to find the end of the header block.
func (p *Parser) peekUntilCRLFCRLF(max int, tooLongErr error) ([]byte, int, error) {
	n := 4
	for {
		if n > max {
			return nil, 0, tooLongErr
		}
		b, err := p.in.Peek(n)
		if err != nil {
			return nil, 0, err
		}
		c1, c2, c3, c4 := b[n-4], b[n-3], b[n-2], b[n-1]
		switch {
		case c4 == '\n':
			switch {
			case c3 != '\r':
				n += 4
			case c2 == '\n' && c1 == '\r':
				return b, n, nil
			default:
				n += 2
			}
		case c4 == '\r':
			if c3 == '\n' && c2 == '\r' {
				n++
			} else {
				n += 3
			}
		default:
			n += 4
		}
	}
}

func byteAt(b []byte, i int) byte {
	if i < 0 || i >= len(b) {
		return 0
	}
	return b[i]
}

func indexSpace(b []byte, from int) int {
	for i := from; i < len(b); i++ {
		if charset.IsSpace(b[i]) {
			return i
		}
	}
	return -1
}

func skipSpace(b []byte, from int) int {
	i := from
	for i < len(b) && charset.IsSpace(b[i]) {
		i++
	}
	return i
}

func validatePrintOrSpace(b []byte) error {
	for _, c := range b {
		if !charset.IsPrint(c) && !charset.IsSpace(c) {
			return httpmsg.ErrInvalidMessage
		}
	}
	return nil
}

func (p *Parser) parseRequestStartLine(req *httpmsg.Request) error {
	b, n, err := p.peekUntilCRLF(p.opts.MaxStartLineSize, httpmsg.ErrStartLineTooLong)
	if err != nil {
		return err
	}
	line := b[:n-2]
	if len(line) == 0 {
		return httpmsg.ErrInvalidMessage
	}
	if err := validatePrintOrSpace(line); err != nil {
		return err
	}

	methodEnd := indexSpace(line, 0)
	if methodEnd == -1 {
		return httpmsg.ErrInvalidMessage
	}
	methodName := line[:methodEnd]

	uriStart := skipSpace(line, methodEnd)
	if uriStart == len(line) {
		return httpmsg.ErrInvalidMessage
	}
	uriEnd := indexSpace(line, uriStart)
	if uriEnd == -1 {
		return httpmsg.ErrInvalidMessage
	}
	uriTok := line[uriStart:uriEnd]

	versionStart := skipSpace(line, uriEnd)
	if versionStart == len(line) {
		return httpmsg.ErrInvalidMessage
	}
	versionTok := line[versionStart:]

	method, err := httpmsg.ParseMethod(methodName)
	if err != nil {
		return err
	}
	uri, err := parseURI(uriTok)
	if err != nil {
		return err
	}
	major, minor, err := parseVersion(versionTok)
	if err != nil {
		return err
	}

	req.Method = method
	req.URI = uri
	req.MajorVersion = major
	req.MinorVersion = minor
	p.in.Discard(n)
	return nil
}

func (p *Parser) parseResponseStartLine(resp *httpmsg.Response) error {
	b, n, err := p.peekUntilCRLF(p.opts.MaxStartLineSize, httpmsg.ErrStartLineTooLong)
	if err != nil {
		return err
	}
	line := b[:n-2]
	if len(line) == 0 {
		return httpmsg.ErrInvalidMessage
	}
	if err := validatePrintOrSpace(line); err != nil {
		return err
	}

	versionEnd := indexSpace(line, 0)
	if versionEnd == -1 {
		return httpmsg.ErrInvalidMessage
	}
	versionTok := line[:versionEnd]

	statusStart := skipSpace(line, versionEnd)
	if statusStart == len(line) {
		return httpmsg.ErrInvalidMessage
	}
	statusEnd := indexSpace(line, statusStart)
	if statusEnd == -1 {
		return httpmsg.ErrInvalidMessage
	}
	statusTok := line[statusStart:statusEnd]

	reasonStart := skipSpace(line, statusEnd)
	if reasonStart == len(line) {
		return httpmsg.ErrInvalidMessage
	}
	reasonTok := line[reasonStart:]

	major, minor, err := parseVersion(versionTok)
	if err != nil {
		return err
	}
	rawStatus, err := charset.ParseUint[uint32](statusTok, 10)
	if err != nil {
		return httpmsg.ErrInvalidMessage
	}
	status, err := httpmsg.ParseStatusCode(int(rawStatus))
	if err != nil {
		return err
	}

	resp.MajorVersion = major
	resp.MinorVersion = minor
	resp.StatusCode = status
	resp.ReasonPhrase = string(reasonTok)
	p.in.Discard(n)
	return nil
}

var httpVersionPrefix = []byte("HTTP/")

func parseVersion(s []byte) (uint16, uint16, error) {
	if len(s) < len(httpVersionPrefix) || !bytes.Equal(s[:len(httpVersionPrefix)], httpVersionPrefix) {
		return 0, 0, httpmsg.ErrInvalidMessage
	}
	rest := s[len(httpVersionPrefix):]
	dot := bytes.IndexByte(rest, '.')
	if dot == -1 {
		return 0, 0, httpmsg.ErrInvalidMessage
	}
	majorTok, minorTok := rest[:dot], rest[dot+1:]
	if len(majorTok) == 0 || len(minorTok) == 0 {
		return 0, 0, httpmsg.ErrInvalidMessage
	}
	major, err := charset.ParseUint[uint16](majorTok, 10)
	if err != nil {
		return 0, 0, httpmsg.ErrInvalidMessage
	}
	minor, err := charset.ParseUint[uint16](minorTok, 10)
	if err != nil {
		return 0, 0, httpmsg.ErrInvalidMessage
	}
	return major, minor, nil
}

// parseURI recognizes the asterisk-form ("*"), origin-form ("/path..."),
// and absolute-form ("scheme://[userinfo@]host[:port]/path[?query][#frag]")
// request targets, matching original_source/src/parser.cc's ParseURI. An
// absolute-form target with no "/" after the authority is rejected.
func parseURI(s []byte) (httpmsg.URI, error) {
	u := httpmsg.NewURI()
	if len(s) == 0 {
		return u, httpmsg.ErrInvalidMessage
	}
	if s[0] == '*' {
		if len(s) != 1 {
			return u, httpmsg.ErrInvalidMessage
		}
		u.PathName = "*"
		return u, nil
	}

	var schemeName, userInfo, hostName, portNumber []byte
	havePort := false
	pathStart := 0

	if s[0] != '/' {
		colon := bytes.IndexByte(s, ':')
		if colon == -1 || byteAt(s, colon+1) != '/' || byteAt(s, colon+2) != '/' {
			return u, httpmsg.ErrInvalidMessage
		}
		schemeName = s[:colon]
		hostStart := colon + 3
		slash := bytes.IndexByte(s[hostStart:], '/')
		if slash == -1 {
			return u, httpmsg.ErrInvalidMessage
		}
		pathStart = hostStart + slash
		authority := s[hostStart:pathStart]

		hostPort := authority
		if at := bytes.IndexByte(authority, '@'); at != -1 {
			userInfo = authority[:at]
			hostPort = authority[at+1:]
		}

		colonIdx := -1
		for i := len(hostPort) - 1; i >= 0; i-- {
			if hostPort[i] == ':' {
				colonIdx = i
				break
			}
		}
		if colonIdx != -1 {
			hostName = hostPort[:colonIdx]
			if port := hostPort[colonIdx+1:]; len(port) > 0 {
				portNumber = port
				havePort = true
			}
		} else {
			hostName = hostPort
		}
	}

	rest := s[pathStart:]
	var pathName, queryString, fragmentID []byte
	qIdx, hIdx := -1, -1
	for i, c := range rest {
		if c == '?' {
			qIdx = i
			break
		}
		if c == '#' {
			hIdx = i
			break
		}
	}
	switch {
	case qIdx != -1:
		pathName = rest[:qIdx]
		after := rest[qIdx+1:]
		if h := bytes.IndexByte(after, '#'); h != -1 {
			queryString, fragmentID = after[:h], after[h+1:]
		} else {
			queryString = after
		}
	case hIdx != -1:
		pathName = rest[:hIdx]
		fragmentID = rest[hIdx+1:]
	default:
		pathName = rest
	}

	if havePort {
		port, err := charset.ParseUint[uint16](portNumber, 10)
		if err != nil {
			return u, httpmsg.ErrInvalidMessage
		}
		u.PortNumber = int32(port)
	}
	u.SchemeName = string(schemeName)
	u.UserInfo = string(userInfo)
	u.HostName = string(hostName)
	u.PathName = string(pathName)
	u.QueryString = string(queryString)
	u.FragmentID = string(fragmentID)
	return u, nil
}

func (p *Parser) parseHeader(header *httpmsg.Header) error {
	b, err := p.in.Peek(2)
	if err != nil {
		return err
	}
	if b[0] == '\r' && b[1] == '\n' {
		p.in.Discard(2)
		return nil
	}

	full, n, err := p.peekUntilCRLFCRLF(p.opts.MaxHeaderSize, httpmsg.ErrHeaderTooLarge)
	if err != nil {
		return err
	}
	if err := validatePrintOrSpace(full[:n-4]); err != nil {
		return err
	}
	if err := parseHeaderFields(full[:n-2], header); err != nil {
		return err
	}
	p.in.Discard(n)
	return nil
}

// parseHeaderFields splits block — which always ends in CRLF — into fields
// using the same CRLF lookahead scan as peekUntilCRLF, just over an
// in-memory slice instead of a streamed one.
func parseHeaderFields(block []byte, header *httpmsg.Header) error {
	start := 0
	for {
		end := start
		for {
			c1, c2 := byteAt(block, end), byteAt(block, end+1)
			if c2 == '\n' {
				if c1 == '\r' {
					break
				}
				end += 2
			} else if c2 == '\r' {
				end++
			} else {
				end += 2
			}
		}
		if err := parseHeaderField(block[start:end], header); err != nil {
			return err
		}
		start = end + 2
		if start >= len(block) {
			return nil
		}
	}
}

func parseHeaderField(field []byte, header *httpmsg.Header) error {
	colon := bytes.IndexByte(field, ':')
	if colon <= 0 {
		return httpmsg.ErrInvalidMessage
	}
	name := field[:colon]
	value := field[colon+1:]
	start := skipSpace(value, 0)
	end := len(value)
	for end > start && charset.IsSpace(value[end-1]) {
		end--
	}
	header.AddField(string(name), string(value[start:end]))
	return nil
}

func (p *Parser) parseBodyOrChunkSize(header *httpmsg.Header) (bool, uint64, error) {
	header.Sort()

	chunked := false
	var searchErr error
	header.Search("Transfer-Encoding", func(idx int, value string) bool {
		if value == "chunked" {
			if chunked {
				searchErr = httpmsg.ErrInvalidMessage
				return false
			}
			chunked = true
			header.RemoveField(idx)
		}
		return true
	})
	if searchErr != nil {
		return false, 0, searchErr
	}

	var bodySize uint64
	bodySizeDefined := false
	header.Search("Content-Length", func(idx int, value string) bool {
		if value != "" {
			if bodySizeDefined {
				searchErr = httpmsg.ErrInvalidMessage
				return false
			}
			n, err := charset.ParseUint[uint64]([]byte(value), contentLengthBase)
			if err != nil {
				searchErr = httpmsg.ErrInvalidMessage
				return false
			}
			bodySize = n
			bodySizeDefined = true
		}
		header.RemoveField(idx)
		return true
	})
	if searchErr != nil {
		return false, 0, searchErr
	}

	if chunked {
		if bodySizeDefined {
			return false, 0, httpmsg.ErrInvalidMessage
		}
		p.maxChunkSize = uint64(p.opts.MaxBodySize)
		size, err := p.parseChunkSize()
		if err != nil {
			return false, 0, err
		}
		return true, size, nil
	}

	if bodySizeDefined {
		if bodySize > uint64(p.opts.MaxBodySize) {
			return false, 0, httpmsg.ErrBodyTooLarge
		}
		return false, bodySize, nil
	}
	return false, 0, nil
}

func (p *Parser) parseChunkSize() (uint64, error) {
	b, n, err := p.peekUntilCRLF(chunkSizeLineMax, httpmsg.ErrInvalidMessage)
	if err != nil {
		return 0, err
	}
	sizeTok := b[:n-2]
	if len(sizeTok) == 0 {
		return 0, httpmsg.ErrInvalidMessage
	}
	size, err := charset.ParseUint[uint64](sizeTok, 16)
	if err != nil {
		return 0, httpmsg.ErrInvalidMessage
	}
	if size > p.maxChunkSize {
		return 0, httpmsg.ErrBodyTooLarge
	}
	p.maxChunkSize -= size
	p.in.Discard(n)
	return size, nil
}

package httpcore

// ParserOptions bounds how much the Parser will buffer before giving up on
// a message, so a misbehaving or hostile peer can't force unbounded memory
// growth.
type ParserOptions struct {
	// MaxStartLineSize bounds the request/status line, including its CRLF.
	MaxStartLineSize int
	// MaxHeaderSize bounds the header block, including its terminating
	// CRLFCRLF.
	MaxHeaderSize int
	// MaxBodySize bounds a Content-Length body, and the running total of
	// chunked-body chunk sizes.
	MaxBodySize int
}

// DefaultParserOptions returns the reference decoder's defaults: 4 KiB start
// line, 16 KiB headers, 64 KiB body.
func DefaultParserOptions() ParserOptions {
	return ParserOptions{
		MaxStartLineSize: 4 * 1024,
		MaxHeaderSize:    16 * 1024,
		MaxBodySize:      64 * 1024,
	}
}

// DumperOptions currently has no tunables of its own — the encoder imposes
// no size limit on the bodies it writes, matching the reference encoder,
// which never consults maxBodySize. It exists so Dumper construction and
// Connection wiring have the same shape as the Parser side, and so a future
// encode-side limit (e.g. capping a single chunk's size) has somewhere to
// live without another breaking signature change.
type DumperOptions struct{}

// DefaultDumperOptions returns the zero-value DumperOptions.
func DefaultDumperOptions() DumperOptions {
	return DumperOptions{}
}

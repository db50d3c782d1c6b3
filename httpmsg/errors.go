// Package httpmsg defines the HTTP/1.1 message data model: URIs, headers,
// the method and status catalogs, and the Request/Response structs the
// httpcore Parser and Dumper read and write.
package httpmsg

import "errors"

// The seven error kinds a Parser or Dumper can report. They are sentinel
// values so callers can classify a failure with errors.Is instead of string
// matching. None of them carry additional context by design — anything that
// needs connection or operation context wraps these at the httpcore.Connection
// boundary instead.
var (
	// ErrInvalidMessage means the bytes read so far do not form a
	// syntactically valid start line, header field, or chunk framing.
	ErrInvalidMessage = errors.New("httpmsg: invalid message")

	// ErrUnknownMethod means a request's method token isn't one of the nine
	// recognized methods.
	ErrUnknownMethod = errors.New("httpmsg: unknown method")

	// ErrUnknownStatus means a response's numeric status code isn't one of
	// the 45 recognized codes.
	ErrUnknownStatus = errors.New("httpmsg: unknown status")

	// ErrStartLineTooLong means the request or status line exceeded
	// ParserOptions.MaxStartLineSize before a terminating CRLF was found.
	ErrStartLineTooLong = errors.New("httpmsg: start line too long")

	// ErrHeaderTooLarge means the header block exceeded
	// ParserOptions.MaxHeaderSize before a terminating CRLFCRLF was found.
	ErrHeaderTooLarge = errors.New("httpmsg: header too large")

	// ErrBodyTooLarge means a Content-Length value, or the running total of
	// chunk sizes, exceeded ParserOptions.MaxBodySize.
	ErrBodyTooLarge = errors.New("httpmsg: body too large")

	// ErrEndOfStream means the underlying transport returned no more bytes
	// while the Parser needed more to make progress.
	ErrEndOfStream = errors.New("httpmsg: end of stream")
)

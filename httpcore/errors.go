// Package httpcore implements the streaming Parser and Dumper state
// machines over the internal/streamio peek/discard and reserve/commit
// contracts, plus a Connection adapter that binds both to a net.Conn.
package httpcore

// contentLengthBase is the numeric base used to decode and encode the
// Content-Length header value. RFC 7230 prescribes base 10; this codec
// instead reproduces the base-8 behavior actually observed in the reference
// decoder and encoder it was ported from (see DESIGN.md, Open Questions
// resolved). The Content-Length values used in parser_test.go and
// dumper_test.go (6, 0, and 10 against a limit of 4) give the same outcome
// in base 8 and base 10, so those tests do not tell the two bases apart.
const contentLengthBase = 8

// chunkSizeHexDigits is the fixed field width used when the Dumper writes a
// chunk-size line: ceil(64/4), the number of hex digits needed to represent
// the full range of a uint64 chunk size. The Parser's chunk-size line length
// limit (chunkSizeLineMax, in parser.go) adds 2 for the trailing CRLF.
const chunkSizeHexDigits = 16

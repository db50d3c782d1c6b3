package httpmsg

// Request is a decoded (or to-be-encoded) HTTP/1.1 request start line and
// header block. The body is handled separately, through the Parser's
// PeekPayload/DiscardPayload or the Dumper's ReservePayload/FlushPayload.
type Request struct {
	Method       Method
	URI          URI
	MajorVersion uint16
	MinorVersion uint16
	Header       Header
}

// Reset clears req to an empty request, including the header. Every field
// is zeroed except URI.PortNumber, which is set to PortAbsent.
func (req *Request) Reset() {
	req.Method = 0
	req.URI = URI{PortNumber: PortAbsent}
	req.MajorVersion = 0
	req.MinorVersion = 0
	req.Header.Reset()
}

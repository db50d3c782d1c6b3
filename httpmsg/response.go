package httpmsg

// Response is a decoded (or to-be-encoded) HTTP/1.1 status line and header
// block. As with Request, the body is handled separately through the
// Parser/Dumper payload methods.
type Response struct {
	MajorVersion uint16
	MinorVersion uint16
	StatusCode   StatusCode
	ReasonPhrase string
	Header       Header
}

// Reset clears resp back to its zero value, including the header.
func (resp *Response) Reset() {
	resp.MajorVersion = 0
	resp.MinorVersion = 0
	resp.StatusCode = 0
	resp.ReasonPhrase = ""
	resp.Header.Reset()
}

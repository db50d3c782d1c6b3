package httpmsg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coreframe/httpcodec/httpmsg"
)

func TestStatusCatalogExhaustive(t *testing.T) {
	known := map[httpmsg.StatusCode]string{
		100: "Continue", 101: "Switching Protocol", 200: "OK", 201: "Created",
		202: "Accepted", 203: "Non-Authoritative Information", 204: "No Content",
		205: "Reset Content", 206: "Partial Content", 300: "Multiple Choices",
		301: "Moved Permanently", 302: "Found", 303: "See Other", 304: "Not Modified",
		307: "Temporary Redirect", 308: "Permanent Redirect", 400: "Bad Request",
		401: "Unauthorized", 403: "Forbidden", 404: "Not Found",
		405: "Method Not Allowed", 406: "Not Acceptable",
		407: "Proxy Authentication Required", 408: "Request Timeout", 409: "Conflict",
		410: "Gone", 411: "Length Required", 412: "Precondition Failed",
		413: "Payload Too Large", 414: "URI Too Long", 415: "Unsupported Media Type",
		416: "Range Not Satisfiable", 417: "Expectation Failed", 426: "Upgrade Required",
		428: "Precondition Required", 429: "Too Many Requests",
		431: "Request Header Fields Too Large", 451: "Unavailable For Legal Reasons",
		500: "Internal Server Error", 501: "Not Implemented", 502: "Bad Gateway",
		503: "Service Unavailable", 504: "Gateway Timeout",
		505: "HTTP Version Not Supported", 511: "Network Authentication Required",
	}
	require.Len(t, known, 45)
	for code, reason := range known {
		got, ok := httpmsg.DescribeStatus(code)
		require.True(t, ok, code)
		require.Equal(t, reason, got, code)

		parsed, err := httpmsg.ParseStatusCode(int(code))
		require.NoError(t, err, code)
		require.Equal(t, code, parsed)
	}
}

func TestStatusCodeUnknown(t *testing.T) {
	for _, raw := range []int{0, 99, 150, 299, 600, -1} {
		_, err := httpmsg.ParseStatusCode(raw)
		require.ErrorIs(t, err, httpmsg.ErrUnknownStatus)
	}
}

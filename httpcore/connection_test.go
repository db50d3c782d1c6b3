package httpcore

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreframe/httpcodec/httpmsg"
)

func TestConnection_RoundTrip(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	client := NewConnection(clientConn, DefaultParserOptions(), DefaultDumperOptions(), 0)
	server := NewConnection(serverConn, DefaultParserOptions(), DefaultDumperOptions(), 0)

	done := make(chan error, 1)
	go func() {
		var req httpmsg.Request
		if err := server.ReadRequest(&req); err != nil {
			done <- err
			return
		}
		for server.Parser.BodyIsChunked() || server.Parser.RemainingBodyOrChunkSize() != 0 {
			n := server.Parser.RemainingBodyOrChunkSize()
			if _, err := server.PeekPayload(n); err != nil {
				done <- err
				return
			}
			if err := server.DiscardPayload(n); err != nil {
				done <- err
				return
			}
		}

		var resp httpmsg.Response
		resp.MajorVersion, resp.MinorVersion = 1, 1
		resp.StatusCode = httpmsg.StatusOK
		resp.ReasonPhrase, _ = httpmsg.DescribeStatus(httpmsg.StatusOK)
		done <- server.WriteResponse(&resp, 0)
	}()

	var req httpmsg.Request
	req.Method = httpmsg.Get
	req.URI.PathName = "/ping"
	req.MajorVersion, req.MinorVersion = 1, 1
	require.NoError(t, client.WriteRequest(&req, 0))

	var resp httpmsg.Response
	require.NoError(t, client.ReadResponse(&resp))
	assert.Equal(t, httpmsg.StatusOK, resp.StatusCode)

	require.NoError(t, <-done)
}

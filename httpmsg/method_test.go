package httpmsg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coreframe/httpcodec/httpmsg"
)

func TestParseMethodAllNine(t *testing.T) {
	cases := []struct {
		token string
		want  httpmsg.Method
	}{
		{"CONNECT", httpmsg.Connect},
		{"DELETE", httpmsg.Delete},
		{"GET", httpmsg.Get},
		{"HEAD", httpmsg.Head},
		{"OPTIONS", httpmsg.Options},
		{"PATCH", httpmsg.Patch},
		{"POST", httpmsg.Post},
		{"PUT", httpmsg.Put},
		{"TRACE", httpmsg.Trace},
	}
	for _, c := range cases {
		got, err := httpmsg.ParseMethod([]byte(c.token))
		require.NoError(t, err, c.token)
		require.Equal(t, c.want, got, c.token)
		require.Equal(t, c.token, got.String())
	}
}

func TestParseMethodUnknown(t *testing.T) {
	for _, tok := range []string{"", "G", "GETT", "POS", "get", "PATCHX", "Px", "FOO"} {
		_, err := httpmsg.ParseMethod([]byte(tok))
		require.ErrorIs(t, err, httpmsg.ErrUnknownMethod, tok)
	}
}

package httpmsg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coreframe/httpcodec/httpmsg"
)

func TestHeaderZeroValueIsSorted(t *testing.T) {
	var h httpmsg.Header
	require.True(t, h.IsSorted())
	require.Equal(t, 0, h.Len())
}

func TestHeaderAddTraversePreservesInsertionOrder(t *testing.T) {
	var h httpmsg.Header
	h.AddField("Host", "example.com")
	h.AddField("Accept", "*/*")
	h.AddField("Host", "other.example.com")

	var got [][2]string
	h.Traverse(func(_ int, name, value string) bool {
		got = append(got, [2]string{name, value})
		return true
	})
	require.Equal(t, [][2]string{
		{"Host", "example.com"},
		{"Accept", "*/*"},
		{"Host", "other.example.com"},
	}, got)
}

func TestHeaderSortIsStableAndSearchFindsAllMatches(t *testing.T) {
	var h httpmsg.Header
	h.AddField("Host", "1")
	h.AddField("Accept", "a")
	h.AddField("Host", "2")
	h.AddField("Accept", "b")
	require.False(t, h.IsSorted())
	h.Sort()
	require.True(t, h.IsSorted())

	var hostValues []string
	h.Search("Host", func(_ int, value string) bool {
		hostValues = append(hostValues, value)
		return true
	})
	require.Equal(t, []string{"1", "2"}, hostValues)

	var acceptValues []string
	h.Search("Accept", func(_ int, value string) bool {
		acceptValues = append(acceptValues, value)
		return true
	})
	require.Equal(t, []string{"a", "b"}, acceptValues)
}

func TestHeaderRemoveFieldTombstones(t *testing.T) {
	var h httpmsg.Header
	h.AddField("Content-Length", "5")
	h.AddField("X-Trace", "abc")
	h.Sort()

	h.Search("Content-Length", func(index int, _ string) bool {
		h.RemoveField(index)
		return true
	})
	require.Equal(t, 2, h.Len(), "tombstoning must not shrink the slice")
	require.True(t, h.IsSorted(), "removal must not require re-sorting")

	var names []string
	h.Traverse(func(_ int, name, _ string) bool {
		names = append(names, name)
		return true
	})
	require.Equal(t, []string{"X-Trace"}, names)
}

func TestHeaderSearchPanicsWithoutSort(t *testing.T) {
	var h httpmsg.Header
	h.AddField("Host", "example.com")
	require.Panics(t, func() {
		h.Search("Host", func(int, string) bool { return true })
	})
}

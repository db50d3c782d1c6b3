package streamio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coreframe/httpcodec/internal/streamio"
)

func TestBufferStreamReserveCommitDiscard(t *testing.T) {
	s := streamio.NewBufferStream()
	defer s.Release()

	buf := s.Reserve(5)
	require.Len(t, buf, 5)
	copy(buf, "hello")
	s.Commit(5)
	require.Equal(t, []byte("hello"), s.Data())

	s.Discard(2)
	require.Equal(t, []byte("llo"), s.Data())

	more := s.Reserve(3)
	copy(more, "!!!")
	s.Commit(3)
	require.Equal(t, []byte("llo!!!"), s.Data())
}

func TestBufferStreamReserveCompactsBeforeGrowing(t *testing.T) {
	s := streamio.NewBufferStream()
	defer s.Release()

	copy(s.Reserve(4096), make([]byte, 4096))
	s.Commit(4096)
	s.Discard(4090)
	require.Equal(t, 6, len(s.Data()))

	buf := s.Reserve(4096)
	require.Len(t, buf, 4096)
}

type chunkRefiller struct {
	chunks [][]byte
	i      int
}

func (r *chunkRefiller) Refill(s streamio.Stream) error {
	if r.i >= len(r.chunks) {
		return streamio.ErrEndOfStream
	}
	c := r.chunks[r.i]
	r.i++
	copy(s.Reserve(len(c)), c)
	s.Commit(len(c))
	return nil
}

func TestInputStreamPeekAcrossRefills(t *testing.T) {
	base := streamio.NewBufferStream()
	defer base.Release()
	refiller := &chunkRefiller{chunks: [][]byte{[]byte("ab"), []byte("cd"), []byte("ef")}}
	in := streamio.NewInputStream(base, refiller)

	b, err := in.Peek(5)
	require.NoError(t, err)
	require.Equal(t, []byte("abcde"), b)

	in.Discard(5)
	b, err = in.Peek(1)
	require.NoError(t, err)
	require.Equal(t, []byte("f"), b)
}

func TestInputStreamStickyError(t *testing.T) {
	base := streamio.NewBufferStream()
	defer base.Release()
	refiller := &chunkRefiller{}
	in := streamio.NewInputStream(base, refiller)

	_, err := in.Peek(1)
	require.ErrorIs(t, err, streamio.ErrEndOfStream)

	_, err = in.Peek(1)
	require.ErrorIs(t, err, streamio.ErrEndOfStream)
	require.ErrorIs(t, in.Err(), streamio.ErrEndOfStream)
}

type collectDrainer struct {
	out []byte
}

func (d *collectDrainer) Drain(s streamio.Stream) error {
	d.out = append(d.out, s.Data()...)
	s.Discard(len(s.Data()))
	return nil
}

func TestOutputStreamFlushDrains(t *testing.T) {
	base := streamio.NewBufferStream()
	defer base.Release()
	drainer := &collectDrainer{}
	out := streamio.NewOutputStream(base, drainer)

	buf := out.Reserve(5)
	copy(buf, "howdy")
	require.NoError(t, out.Flush(5))
	require.Equal(t, []byte("howdy"), drainer.out)
}

package server

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	in       []string
	readErr  error
	out      []string
	writeErr error
	closed   bool
}

func (f *fakeConn) ReadLine() (string, error) {
	if len(f.in) == 0 {
		if f.readErr != nil {
			return "", f.readErr
		}
		return "", io.EOF
	}
	line := f.in[0]
	f.in = f.in[1:]
	return line, nil
}

func (f *fakeConn) WriteLine(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.out = append(f.out, text)
	return nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func (f *fakeConn) RemoteAddr() string { return "fake" }

func (f *fakeConn) Sep() string { return "\n" }

func runHandler(t *testing.T, b *Board, debug bool, in ...string) (*fakeConn, *Handler, error) {
	t.Helper()
	conn := &fakeConn{in: in}
	h := NewHandler(conn, NewProcessor(b, debug, conn.Sep()))
	err := h.Run("welcome")
	return conn, h, err
}

func TestHandlerWelcomeAndEOF(t *testing.T) {
	conn, h, err := runHandler(t, boardOf(t, ".."), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"welcome"}, conn.out)
	assert.True(t, conn.closed)
	assert.Equal(t, CS_CLOSING, h.State)
}

func TestHandlerUnknownCommandKeepsOpen(t *testing.T) {
	conn, _, err := runHandler(t, boardOf(t, ".."), false, "frobnicate", "look")
	require.NoError(t, err)
	require.Len(t, conn.out, 3)
	assert.Equal(t, "Commands:", conn.out[1][:len("Commands:")])
	assert.Equal(t, "- -", conn.out[2])
}

func TestHandlerByeCloses(t *testing.T) {
	for _, debug := range []bool{false, true} {
		conn, _, err := runHandler(t, boardOf(t, ".."), debug, "bye", "look")
		require.NoError(t, err)
		assert.Equal(t, []string{"welcome", "bye"}, conn.out)
		assert.True(t, conn.closed)
	}
}

func TestHandlerBoomClosesWithoutDebug(t *testing.T) {
	conn, _, err := runHandler(t, boardOf(t, "*."), false, "dig 0 0", "look")
	require.NoError(t, err)
	assert.Equal(t, []string{"welcome", "BOOM!"}, conn.out)
	assert.True(t, conn.closed)
}

func TestHandlerBoomKeepsOpenInDebug(t *testing.T) {
	conn, _, err := runHandler(t, boardOf(t, "*."), true, "dig 0 0", "look")
	require.NoError(t, err)
	assert.Equal(t, []string{"welcome", "BOOM!", "   "}, conn.out)
}

func TestHandlerReadError(t *testing.T) {
	boom := errors.New("reset by peer")
	conn := &fakeConn{in: []string{"look"}, readErr: boom}
	h := NewHandler(conn, NewProcessor(boardOf(t, "."), false, "\n"))
	assert.ErrorIs(t, h.Run("welcome"), boom)
	assert.Equal(t, []string{"welcome", "-"}, conn.out)
	assert.True(t, conn.closed)
}

func TestHandlerWriteError(t *testing.T) {
	broken := errors.New("broken pipe")
	conn := &fakeConn{in: []string{"look"}, writeErr: broken}
	h := NewHandler(conn, NewProcessor(boardOf(t, "."), false, "\n"))
	assert.ErrorIs(t, h.Run("welcome"), broken)
	assert.True(t, conn.closed)
	assert.Equal(t, CS_CONNECTED, h.State)
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "CONNECTED", CS_CONNECTED.Name())
	assert.Equal(t, "PROCESSING", CS_PROCESSING.Name())
	assert.Equal(t, "CLOSING", CS_CLOSING.Name())
	assert.Equal(t, "N/A", ConnState(0).Name())
}

package server

import (
	"bufio"
	"io"
	"net"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// MAX_LINE caps how much of one command line is kept. The rest of an
// overlong line is read and dropped, so the kept prefix fails to parse.
const MAX_LINE = 64 * 1024

// MAX_MESSAGE is the largest websocket message accepted at all.
const MAX_MESSAGE = 1 << 20

type tcpConn struct {
	conn net.Conn
	r    *bufio.Reader
	w    *bufio.Writer
}

// NewTCPConn reads newline delimited commands from c and answers with
// \r\n terminated responses.
func NewTCPConn(c net.Conn) LineConn {
	return &tcpConn{conn: c, r: bufio.NewReader(c), w: bufio.NewWriter(c)}
}

func (t *tcpConn) ReadLine() (string, error) {
	var line []byte
	for {
		chunk, err := t.r.ReadSlice('\n')
		if room := MAX_LINE - len(line); room > 0 {
			if len(chunk) > room {
				chunk = chunk[:room]
			}
			line = append(line, chunk...)
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err != nil {
			if err == io.EOF && len(line) > 0 {
				// last line without a terminator
				break
			}
			return "", err
		}
		break
	}
	return trimLine(line), nil
}

func trimLine(line []byte) string {
	s := strings.TrimSuffix(string(line), "\n")
	return strings.TrimSuffix(s, "\r")
}

func (t *tcpConn) WriteLine(text string) error {
	if _, err := t.w.WriteString(text + LINE_TERMINATOR); err != nil {
		return err
	}
	return t.w.Flush()
}

func (t *tcpConn) Close() error {
	return t.conn.Close()
}

func (t *tcpConn) RemoteAddr() string {
	return t.conn.RemoteAddr().String()
}

func (t *tcpConn) Sep() string {
	return LINE_TERMINATOR
}

type wsConn struct {
	conn *websocket.Conn
}

// NewWSConn treats every websocket message as one command line and sends
// every response as one text message.
func NewWSConn(c *websocket.Conn) LineConn {
	c.SetReadLimit(MAX_MESSAGE)
	return &wsConn{conn: c}
}

func (w *wsConn) ReadLine() (string, error) {
	_, r, err := w.conn.NextReader()
	if err == nil {
		var data []byte
		data, err = io.ReadAll(io.LimitReader(r, MAX_LINE))
		if err == nil {
			_, err = io.Copy(io.Discard, r)
		}
		if err == nil {
			return trimLine(data), nil
		}
	}
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return "", io.EOF
	}
	return "", err
}

func (w *wsConn) WriteLine(text string) error {
	return w.conn.WriteMessage(websocket.TextMessage, []byte(text))
}

func (w *wsConn) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = w.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return w.conn.Close()
}

func (w *wsConn) RemoteAddr() string {
	return w.conn.RemoteAddr().String()
}

func (w *wsConn) Sep() string {
	return "\n"
}

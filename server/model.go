package server

import (
	"net"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
)

// GameServer owns the shared board and counts the connected players.
type GameServer struct {
	Board    *Board
	Debug    bool
	Upgrader *websocket.Upgrader

	players atomic.Int32

	mu        sync.Mutex
	listeners []net.Listener
	closed    bool
}

type ConnState int

const (
	CS_CONNECTED ConnState = iota + 1
	CS_PROCESSING
	CS_CLOSING
)

// LineConn is one client seen as a stream of command lines.
type LineConn interface {
	ReadLine() (string, error)
	// WriteLine sends one response. The transport adds its own framing.
	WriteLine(text string) error
	Close() error
	RemoteAddr() string
	// Sep is the separator between rows of a multi-line response.
	Sep() string
}

package server

import (
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var ErrServerClosed = errors.New("game server closed")

const acceptBackoff = 50 * time.Millisecond

func NewGameServer(b *Board, debug bool) *GameServer {
	return &GameServer{
		Board:    b,
		Debug:    debug,
		Upgrader: &websocket.Upgrader{},
	}
}

// Players is the number of connections currently being served.
func (s *GameServer) Players() int32 {
	return s.players.Load()
}

// Serve accepts TCP clients on ln until ln is closed, one goroutine per
// client. Errors on a single accept are logged and the loop goes on.
func (s *GameServer) Serve(ln net.Listener) error {
	if !s.track(ln) {
		ln.Close()
		return ErrServerClosed
	}
	log.Infof("GameServer.Serve listening on %s", ln.Addr())
	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.isClosed() {
				return ErrServerClosed
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			log.Warnf("GameServer.Serve accept err %v", err)
			time.Sleep(acceptBackoff)
			continue
		}
		go s.ServeConn(NewTCPConn(conn))
	}
}

// ServeConn runs one client to completion against the shared board.
func (s *GameServer) ServeConn(conn LineConn) {
	players := s.players.Add(1)
	defer s.players.Add(-1)

	h := NewHandler(conn, NewProcessor(s.Board, s.Debug, conn.Sep()))
	h.log.Infof("GameServer.ServeConn connected, players:%d", players)
	if err := h.Run(WelcomeMessage(s.Board, players)); err != nil {
		h.log.Warnf("GameServer.ServeConn err %v", err)
	}
	h.log.Infof("GameServer.ServeConn closed, state:%s", h.State.Name())
}

// Close stops every Serve loop. Connections already accepted run on
// until their clients leave.
func (s *GameServer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	var err error
	for _, ln := range s.listeners {
		if e := ln.Close(); e != nil && err == nil {
			err = e
		}
	}
	s.listeners = nil
	return err
}

func (s *GameServer) track(ln net.Listener) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.listeners = append(s.listeners, ln)
	return true
}

func (s *GameServer) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// HandleHttpCall upgrades to a websocket and plays over it.
func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already answered the request
			log.Warnf("HandleHttpCall websocket upgrade err %v", err)
			return
		}
		s.ServeConn(NewWSConn(con))
	}
}

// HandleBoard answers with the current board render as plain text.
func (s *GameServer) HandleBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(s.Board.Look().Render("\n") + "\n")); err != nil {
			log.Warnf("HandleBoard write err %v", err)
		}
	}
}

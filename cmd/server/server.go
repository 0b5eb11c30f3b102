package main

import (
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/sweeper/config"
	"github.com/zucenko/sweeper/model"
	"github.com/zucenko/sweeper/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	board, err := newBoard(cfg)
	if err != nil {
		log.Fatalf("board: %v", err)
	}

	s := Server{
		GameServer: server.NewGameServer(board, cfg.Debug),
	}

	if cfg.HttpPort != 0 {
		s.routes()
		go func() {
			addr := fmt.Sprintf(":%d", cfg.HttpPort)
			log.Infof("HTTP listening on %s", addr)
			log.Fatalln(http.ListenAndServe(addr, s.router))
		}()
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Fatalln(s.GameServer.Serve(ln))
}

func newBoard(cfg config.Config) (*server.Board, error) {
	if cfg.File != "" {
		grid, err := server.Load(cfg.File)
		if err != nil {
			return nil, err
		}
		return server.NewBoard(grid), nil
	}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	grid, err := model.NewRandomGrid(cfg.Cols, cfg.Rows, cfg.BombProbability, rnd)
	if err != nil {
		return nil, err
	}
	log.Infof("random board %dx%d p=%.2f", cfg.Cols, cfg.Rows, cfg.BombProbability)
	return server.NewBoard(grid), nil
}

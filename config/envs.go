package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/sweeper/model"
)

var (
	ErrSizeAndFile        = errors.New("size and file are mutually exclusive")
	ErrInvalidSize        = errors.New("size must be COLS,ROWS with positive values")
	ErrInvalidPort        = errors.New("port must be between 0 and 65535")
	ErrInvalidProbability = errors.New("bomb probability must be between 0 and 1")
)

const (
	DefaultPort = 4444
	DefaultSize = 10
)

// Config holds the immutable startup parameters of the server.
type Config struct {
	Port     int // TCP port of the line protocol
	HttpPort int // Port for websocket play and board view, 0 disables it

	Cols, Rows      int     // Size of a random board
	BombProbability float64 // Chance of each random cell holding a bomb
	File            string  // Board file, replaces Cols/Rows when set

	Debug    bool // Keep connections open after an explosion
	LogLevel log.Level
}

// Load reads a .env file if one exists, takes MINESWEEPER_* environment
// variables as defaults and lets the command line flags in args override
// them.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debugf(".env file not found or could not be loaded: %v", err)
	}
	return parse(args, os.LookupEnv)
}

func parse(args []string, lookup func(string) (string, bool)) (Config, error) {
	c := Config{
		Port:            DefaultPort,
		Cols:            DefaultSize,
		Rows:            DefaultSize,
		BombProbability: model.DefaultBombProbability,
		LogLevel:        log.InfoLevel,
	}

	env := func(key string) (string, bool) {
		v, ok := lookup("MINESWEEPER_" + key)
		return v, ok && v != ""
	}
	var err error
	if v, ok := env("PORT"); ok {
		if c.Port, err = strconv.Atoi(v); err != nil {
			return c, fmt.Errorf("MINESWEEPER_PORT must be an integer: %w", err)
		}
	}
	if v, ok := env("HTTP_PORT"); ok {
		if c.HttpPort, err = strconv.Atoi(v); err != nil {
			return c, fmt.Errorf("MINESWEEPER_HTTP_PORT must be an integer: %w", err)
		}
	}
	size := ""
	if v, ok := env("SIZE"); ok {
		size = v
	}
	if v, ok := env("FILE"); ok {
		c.File = v
	}
	if v, ok := env("BOMB_PROBABILITY"); ok {
		if c.BombProbability, err = strconv.ParseFloat(v, 64); err != nil {
			return c, fmt.Errorf("MINESWEEPER_BOMB_PROBABILITY must be a number: %w", err)
		}
	}
	if v, ok := env("DEBUG"); ok {
		if c.Debug, err = strconv.ParseBool(v); err != nil {
			return c, fmt.Errorf("MINESWEEPER_DEBUG must be a boolean: %w", err)
		}
	}
	level := c.LogLevel.String()
	if v, ok := env("LOG_LEVEL"); ok {
		level = v
	}

	fs := flag.NewFlagSet("minesweeper", flag.ContinueOnError)
	fs.IntVar(&c.Port, "port", c.Port, "TCP port of the line protocol")
	fs.IntVar(&c.HttpPort, "http-port", c.HttpPort, "HTTP port for websocket play, 0 disables")
	fs.StringVar(&size, "size", size, "random board size as COLS,ROWS")
	fs.StringVar(&c.File, "file", c.File, "board file to load")
	fs.Float64Var(&c.BombProbability, "bomb-probability", c.BombProbability, "chance of a bomb in each random cell")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "keep connections open after an explosion")
	fs.StringVar(&level, "log-level", level, "logrus level")
	if err := fs.Parse(args); err != nil {
		return c, err
	}

	if size != "" && c.File != "" {
		return c, ErrSizeAndFile
	}
	if size != "" {
		if c.Cols, c.Rows, err = parseSize(size); err != nil {
			return c, err
		}
	}
	if c.Port < 0 || c.Port > 65535 || c.HttpPort < 0 || c.HttpPort > 65535 {
		return c, ErrInvalidPort
	}
	if c.BombProbability < 0 || c.BombProbability > 1 {
		return c, ErrInvalidProbability
	}
	if c.LogLevel, err = log.ParseLevel(level); err != nil {
		return c, err
	}
	return c, nil
}

func parseSize(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	cols, colsErr := strconv.Atoi(strings.TrimSpace(parts[0]))
	rows, rowsErr := strconv.Atoi(strings.TrimSpace(parts[1]))
	if colsErr != nil || rowsErr != nil || cols <= 0 || rows <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	return cols, rows, nil
}

package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/sweeper/model"
)

var ErrMalformedBoard = errors.New("malformed board file")

// MAX_BOARD_LINE is the longest board file line accepted, enough for
// rows of half a million columns.
const MAX_BOARD_LINE = 1 << 20

// Load reads a board file: a "<cols> <rows>" header followed by rows
// lines of cols space separated 0/1 bomb flags.
func Load(path string) (g *model.Grid, e error) {
	file, fileErr := os.Open(path)
	if fileErr != nil {
		e = fmt.Errorf("opening board file: %w", fileErr)
		return
	}
	defer file.Close()
	g, e = read(file)
	if e != nil {
		return nil, fmt.Errorf("%s: %w", path, e)
	}
	log.Infof("Load board %s %dx%d", path, g.Cols, g.Rows)
	return
}

func read(reader io.Reader) (*model.Grid, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	scanner.Buffer(make([]byte, 0, 64*1024), MAX_BOARD_LINE)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBoard, err)
		}
		return nil, fmt.Errorf("%w: missing header", ErrMalformedBoard)
	}
	cols, rows, err := readHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	bombs := make([][]bool, 0, rows)
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		s := strings.TrimSpace(scanner.Text())
		if len(bombs) == rows {
			if s != "" {
				return nil, fmt.Errorf("%w: line %d: more than %d rows", ErrMalformedBoard, lineNo, rows)
			}
			continue
		}
		line, err := readRow(s, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedBoard, lineNo, err)
		}
		bombs = append(bombs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedBoard, lineNo+1, err)
	}
	if len(bombs) != rows {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrMalformedBoard, rows, len(bombs))
	}
	return model.NewGridFromBombs(bombs)
}

func readHeader(s string) (cols, rows int, err error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: header %q", ErrMalformedBoard, s)
	}
	cols, colsErr := strconv.Atoi(fields[0])
	rows, rowsErr := strconv.Atoi(fields[1])
	if colsErr != nil || rowsErr != nil || cols <= 0 || rows <= 0 {
		return 0, 0, fmt.Errorf("%w: header %q", ErrMalformedBoard, s)
	}
	return cols, rows, nil
}

func readRow(s string, cols int) ([]bool, error) {
	fields := strings.Fields(s)
	if len(fields) != cols {
		return nil, fmt.Errorf("want %d cells, got %d", cols, len(fields))
	}
	line := make([]bool, 0, cols)
	for _, f := range fields {
		switch f {
		case "0":
			line = append(line, false)
		case "1":
			line = append(line, true)
		default:
			return nil, fmt.Errorf("bad cell %q", f)
		}
	}
	return line, nil
}

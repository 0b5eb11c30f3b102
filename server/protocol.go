package server

import (
	"strconv"
	"strings"
)

const (
	BOOM_MESSAGE = "BOOM!"
	BYE_MESSAGE  = "bye"
)

var helpLines = []string{
	"Commands:",
	"  look          show the board",
	"  dig X Y       dig the cell in column X, row Y",
	"  flag X Y      flag the cell in column X, row Y",
	"  deflag X Y    remove the flag from column X, row Y",
	"  help          show this message",
	"  bye           leave the game",
}

type ArgKind int

const (
	ARG_INT ArgKind = iota
)

type CommandKind int

const (
	CMD_LOOK CommandKind = iota
	CMD_HELP
	CMD_BYE
	CMD_DIG
	CMD_FLAG
	CMD_DEFLAG
)

type commandSpec struct {
	kind CommandKind
	args []ArgKind
}

// grammar maps the first word of a line to what must follow it.
var grammar = map[string]commandSpec{
	"look":   {kind: CMD_LOOK},
	"help":   {kind: CMD_HELP},
	"bye":    {kind: CMD_BYE},
	"dig":    {kind: CMD_DIG, args: []ArgKind{ARG_INT, ARG_INT}},
	"flag":   {kind: CMD_FLAG, args: []ArgKind{ARG_INT, ARG_INT}},
	"deflag": {kind: CMD_DEFLAG, args: []ArgKind{ARG_INT, ARG_INT}},
}

type Command struct {
	Kind CommandKind
	Args []int
}

// Parse matches one line against the grammar. Words are separated by
// exactly one space and an int is an optional '-' followed by digits.
func Parse(line string) (Command, bool) {
	words := strings.Split(line, " ")
	spec, found := grammar[words[0]]
	if !found || len(words)-1 != len(spec.args) {
		return Command{}, false
	}
	cmd := Command{Kind: spec.kind}
	for i, kind := range spec.args {
		switch kind {
		case ARG_INT:
			v, ok := parseInt(words[i+1])
			if !ok {
				return Command{}, false
			}
			cmd.Args = append(cmd.Args, v)
		}
	}
	return cmd, true
}

func parseInt(s string) (int, bool) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		// out of int range
		return 0, false
	}
	return v, true
}

// Response is the text to send back and whether the connection must be
// closed after sending it.
type Response struct {
	Text     string
	Close    bool
	Exploded bool
}

// Processor turns lines into board operations for one connection.
type Processor struct {
	Board *Board
	Debug bool
	// Sep joins board rows in a render.
	Sep string
}

func NewProcessor(b *Board, debug bool, sep string) *Processor {
	return &Processor{Board: b, Debug: debug, Sep: sep}
}

func (p *Processor) Handle(line string) Response {
	cmd, ok := Parse(line)
	if !ok {
		return p.help()
	}
	switch cmd.Kind {
	case CMD_LOOK:
		return p.look()
	case CMD_HELP:
		return p.help()
	case CMD_BYE:
		return Response{Text: BYE_MESSAGE, Close: true}
	case CMD_DIG:
		if p.Board.Dig(cmd.Args[0], cmd.Args[1]) == EXPLODED {
			return Response{Text: BOOM_MESSAGE, Close: !p.Debug, Exploded: true}
		}
		return p.look()
	case CMD_FLAG:
		p.Board.Flag(cmd.Args[0], cmd.Args[1])
		return p.look()
	case CMD_DEFLAG:
		p.Board.Deflag(cmd.Args[0], cmd.Args[1])
		return p.look()
	default:
		return p.help()
	}
}

func (p *Processor) look() Response {
	return Response{Text: p.Board.Look().Render(p.Sep)}
}

func (p *Processor) help() Response {
	return Response{Text: strings.Join(helpLines, p.Sep)}
}

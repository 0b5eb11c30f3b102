package server

import "fmt"

const LINE_TERMINATOR = "\r\n"

func (cs ConnState) Name() string {
	switch cs {
	case CS_CONNECTED:
		return "CONNECTED"
	case CS_PROCESSING:
		return "PROCESSING"
	case CS_CLOSING:
		return "CLOSING"
	default:
		return "N/A"
	}
}

func WelcomeMessage(b *Board, players int32) string {
	return fmt.Sprintf(
		"Welcome to Minesweeper. Board: %d columns by %d rows. Players: %d including you. Type 'help' for help.",
		b.Cols(), b.Rows(), players)
}

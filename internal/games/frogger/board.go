package frogger

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

// livesLabelCol is where the "Lives: " label starts on row 0.
const livesLabelCol = livesCounterCol - len("Lives: ")

// Board builds the static artwork: the lives header, a pod over every goal
// slot with a wall between pods, and the bank line above the start bank.
func Board(cfg config.FroggerConfig) []string {
	rows := make([][]rune, cfg.Board.Rows)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(" ", cfg.Board.Cols))
	}
	put := func(row, col int, s string) {
		if row < 0 || row >= len(rows) {
			return
		}
		for i, r := range s {
			if c := col + i; c >= 0 && c < len(rows[row]) {
				rows[row][c] = r
			}
		}
	}

	put(0, livesLabelCol, fmt.Sprintf("Lives: %d", cfg.Lives))

	inner := cfg.Goals.Width - 1
	for i, c := range cfg.Goals.Columns {
		put(1, c, "/"+strings.Repeat("-", inner)+"\\")
		put(2, c, "|"+strings.Repeat(" ", inner)+"|")
		put(3, c, "+"+strings.Repeat(" ", inner)+"+")
		if i+1 < len(cfg.Goals.Columns) {
			wallFrom := c + inner + 2
			put(3, wallFrom, strings.Repeat("-", cfg.Goals.Columns[i+1]-wallFrom))
		}
	}

	put(cfg.Board.StartBankRow-1, 0, strings.Repeat("\"", cfg.Board.Cols))

	board := make([]string, len(rows))
	for i, r := range rows {
		board[i] = strings.TrimRight(string(r), " ")
	}
	return board
}

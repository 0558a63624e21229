package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	EmptyCell  = ""
	CenterCell = 4
)

// WinCombos - the 8 winning lines: rows top to bottom, columns left to
// right, then the two diagonals. Scan order matters for the bot heuristic.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Board [9]string

// Apply - marks a cell. Callers validate against UnmarkedCells first; a
// failure here means a logic bug, not bad user input.
func (that *Board) Apply(cell int, mark string) error {
	if cell < 0 || cell >= len(that) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return nil
}

// UnmarkedCells - returns the empty cell indexes in ascending order.
func (that *Board) UnmarkedCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that *Board) IsFull() bool {
	return len(that.UnmarkedCells()) == 0
}

// WinningMark - returns the mark owning the first completed line, or an
// empty string when no line is complete.
func (that *Board) WinningMark() string {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that *Board) SomeoneWon() bool {
	return that.WinningMark() != EmptyCell
}

// FindAtRiskCell - returns the empty cell of the first line where mark
// already holds two of three cells, i.e. the cell that wins (or blocks)
// in one move.
func (that *Board) FindAtRiskCell(mark string) (int, bool) {
	for _, combo := range WinCombos {
		marked := 0
		empty := -1

		for _, idx := range combo {
			switch that[idx] {
			case mark:
				marked++
			case EmptyCell:
				empty = idx
			}
		}

		if marked == 2 && empty != -1 {
			return empty, true
		}
	}

	return -1, false
}

func (that *Board) IsCenterUnmarked() bool {
	return that[CenterCell] == EmptyCell
}

func (that *Board) Reset() {
	for i := range that {
		that[i] = EmptyCell
	}
}

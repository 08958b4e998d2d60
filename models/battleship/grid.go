package battleship

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-fleet/internal/error"
)

const (
	GridSize        int = 10
	ValidLowerBound int = 0
	ValidUpperBound int = GridSize - 1
)

const (
	PositionStateWater uint8 = iota
	PositionStateShip
	PositionStateHit
	PositionStateSunk
)

var positionStateSymbols = map[uint8]string{
	PositionStateWater: "~",
	PositionStateShip:  "□",
	PositionStateHit:   "*",
	PositionStateSunk:  "x",
}

type Coordinates struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func NewCoordinates(row, column int) Coordinates {
	return Coordinates{Row: row, Column: column}
}

// Parses the "row,column" form, e.g. "3,7".
func ParseCoordinates(raw string) (Coordinates, error) {
	rowRaw, columnRaw, found := strings.Cut(strings.TrimSpace(raw), ",")
	if !found {
		return Coordinates{}, cerr.ErrCoordinatesFormat(raw)
	}

	row, err := strconv.Atoi(strings.TrimSpace(rowRaw))
	if err != nil {
		return Coordinates{}, cerr.ErrCoordinatesFormat(raw)
	}
	column, err := strconv.Atoi(strings.TrimSpace(columnRaw))
	if err != nil {
		return Coordinates{}, cerr.ErrCoordinatesFormat(raw)
	}

	return NewCoordinates(row, column), nil
}

func (c Coordinates) IsInGrid() bool {
	return c.Row >= ValidLowerBound && c.Row <= ValidUpperBound &&
		c.Column >= ValidLowerBound && c.Column <= ValidUpperBound
}

// Returns the 8 Chebyshev neighbours of c. Some of them
// may lie outside the grid.
func (c Coordinates) Neighbours() []Coordinates {
	neighbours := make([]Coordinates, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			neighbours = append(neighbours, NewCoordinates(c.Row+dr, c.Column+dc))
		}
	}
	return neighbours
}

type Grid [][]uint8

// Creates a new default grid
// All indexes are zero/PositionStateWater
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]uint8, gridSize)
	}
	return grid
}

// Converts the position states into display symbols.
func (g Grid) Symbols() [][]string {
	symbols := make([][]string, len(g))
	for i, row := range g {
		symbols[i] = make([]string, len(row))
		for j, state := range row {
			symbols[i][j] = positionStateSymbols[state]
		}
	}
	return symbols
}

func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g.Symbols() {
		sb.WriteString(strings.Join(row, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

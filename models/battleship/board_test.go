package battleship

import (
	"errors"
	"reflect"
	"testing"

	cerr "github.com/saeidalz13/battleship-fleet/internal/error"
)

func p(sr, sc, er, ec int) Placement {
	return NewPlacement(NewCoordinates(sr, sc), NewCoordinates(er, ec))
}

func standardFleet() []Placement {
	return []Placement{
		p(0, 0, 0, 3),
		p(2, 0, 2, 2),
		p(4, 0, 4, 2),
		p(6, 0, 6, 1),
		p(8, 0, 8, 1),
		p(0, 5, 0, 6),
		p(0, 8, 0, 8),
		p(2, 5, 2, 5),
		p(4, 5, 4, 5),
		p(6, 5, 6, 5),
	}
}

func reversed(placements []Placement) []Placement {
	out := make([]Placement, len(placements))
	for i, pl := range placements {
		out[len(placements)-1-i] = pl
	}
	return out
}

func mustBoard(t *testing.T, placements []Placement) *Board {
	t.Helper()
	b, err := NewBoard(placements)
	if err != nil {
		t.Fatalf("failed to build board: %v", err)
	}
	return b
}

func TestNewBoardValid(t *testing.T) {
	tests := []struct {
		name       string
		placements []Placement
	}{
		{name: "standard fleet", placements: standardFleet()},
		{name: "standard fleet reversed", placements: reversed(standardFleet())},
		{
			name: "vertical ships and reversed ends",
			placements: []Placement{
				p(3, 9, 0, 9),
				p(0, 0, 2, 0),
				p(0, 2, 2, 2),
				p(0, 4, 1, 4),
				p(0, 6, 1, 6),
				p(4, 0, 5, 0),
				p(9, 9, 9, 9),
				p(9, 0, 9, 0),
				p(7, 4, 7, 4),
				p(5, 7, 5, 7),
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := mustBoard(t, test.placements)

			if len(b.Ships()) != FleetSize {
				t.Fatalf("expected ships: %d\tgot: %d", FleetSize, len(b.Ships()))
			}

			for _, ship := range b.Ships() {
				for _, segment := range ship.Segments() {
					outcome, err := b.Fire(segment.Coordinates())
					if err != nil {
						t.Fatal(err)
					}
					if outcome == OutcomeMiss {
						t.Fatalf("fire on occupied cell %+v returned miss", segment.Coordinates())
					}
				}
			}

			if !b.IsFleetSunk() {
				t.Fatal("every ship should be sunk after firing every segment")
			}
		})
	}
}

func TestNewBoardInvalid(t *testing.T) {
	adjacentOneDeckShips := []Placement{
		p(2, 0, 2, 3),
		p(4, 0, 4, 2),
		p(6, 0, 6, 2),
		p(8, 0, 8, 1),
		p(2, 6, 2, 7),
		p(4, 6, 4, 7),
		p(6, 6, 6, 6),
		p(8, 8, 8, 8),
		p(0, 0, 0, 0),
		p(0, 1, 0, 1),
	}

	wrongSizes := standardFleet()
	wrongSizes[6] = p(8, 8, 9, 8)

	// one two deck ship grown into a third three deck ship
	wrongTwoDeck := standardFleet()
	wrongTwoDeck[4] = p(8, 0, 8, 2)

	// the four deck ship shrunk into a third three deck ship
	wrongThreeDeck := standardFleet()
	wrongThreeDeck[0] = p(0, 0, 0, 2)

	// the four deck ship grown to five decks
	wrongFourDeck := standardFleet()
	wrongFourDeck[0] = p(0, 0, 0, 4)

	tests := []struct {
		name         string
		placements   []Placement
		expectedCode uint8
		expectedErr  string
		expected     int
		actual       int
		shipSize     int
		row, column  int
	}{
		{
			name:         "eleven ships",
			placements:   append(standardFleet(), p(9, 9, 9, 9)),
			expectedCode: cerr.FleetErrShipCount,
			expectedErr:  cerr.ErrShipCount(10, 11).Error(),
			expected:     10,
			actual:       11,
		},
		{
			name:         "nine ships",
			placements:   standardFleet()[:9],
			expectedCode: cerr.FleetErrShipCount,
			expectedErr:  cerr.ErrShipCount(10, 9).Error(),
			expected:     10,
			actual:       9,
		},
		{
			name:         "wrong one deck count",
			placements:   wrongSizes,
			expectedCode: cerr.FleetErrShipSize,
			expectedErr:  cerr.ErrShipSizeCount(1, 4, 3).Error(),
			expected:     4,
			actual:       3,
			shipSize:     1,
		},
		{
			name:         "wrong one deck count reversed",
			placements:   reversed(wrongSizes),
			expectedCode: cerr.FleetErrShipSize,
			expectedErr:  cerr.ErrShipSizeCount(1, 4, 3).Error(),
			expected:     4,
			actual:       3,
			shipSize:     1,
		},
		{
			name:         "wrong two deck count",
			placements:   wrongTwoDeck,
			expectedCode: cerr.FleetErrShipSize,
			expectedErr:  cerr.ErrShipSizeCount(2, 3, 2).Error(),
			expected:     3,
			actual:       2,
			shipSize:     2,
		},
		{
			name:         "wrong three deck count",
			placements:   wrongThreeDeck,
			expectedCode: cerr.FleetErrShipSize,
			expectedErr:  cerr.ErrShipSizeCount(3, 2, 3).Error(),
			expected:     2,
			actual:       3,
			shipSize:     3,
		},
		{
			name:         "wrong four deck count",
			placements:   wrongFourDeck,
			expectedCode: cerr.FleetErrShipSize,
			expectedErr:  cerr.ErrShipSizeCount(4, 1, 0).Error(),
			expected:     1,
			actual:       0,
			shipSize:     4,
		},
		{
			name:         "adjacent one deck ships",
			placements:   adjacentOneDeckShips,
			expectedCode: cerr.FleetErrAdjacent,
			expectedErr:  cerr.ErrShipsAdjacent(0, 1).Error(),
			row:          0,
			column:       1,
		},
		{
			name:         "diagonal ship",
			placements:   append([]Placement{p(0, 0, 1, 1)}, standardFleet()[1:]...),
			expectedCode: cerr.FleetErrNotAxisAligned,
			expectedErr:  cerr.ErrShipNotAxisAligned(0, 0, 1, 1).Error(),
		},
		{
			name:         "overlapping ships",
			placements:   append(standardFleet()[:6], p(0, 3, 0, 3), p(2, 5, 2, 5), p(4, 5, 4, 5), p(6, 5, 6, 5)),
			expectedCode: cerr.FleetErrOverlap,
			expectedErr:  cerr.ErrShipsOverlap(0, 3).Error(),
			row:          0,
			column:       3,
		},
		{
			name:         "out of grid bound",
			placements:   append(standardFleet()[:9], p(9, 9, 9, 10)),
			expectedCode: cerr.FleetErrOutOfBound,
			expectedErr:  cerr.ErrPlacementOutOfGridBound(9, 10).Error(),
			row:          9,
			column:       10,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := NewBoard(test.placements)
			if err == nil {
				t.Fatal("expected construction to fail")
			}
			if b != nil {
				t.Fatal("a failed construction must not return a board")
			}

			if err.Error() != test.expectedErr {
				t.Fatalf("expected err: %s\tgot: %s", test.expectedErr, err)
			}

			var fleetErr cerr.FleetErr
			if !errors.As(err, &fleetErr) {
				t.Fatalf("expected a FleetErr, got %T", err)
			}
			if fleetErr.Code() != test.expectedCode {
				t.Fatalf("expected code: %d\tgot: %d", test.expectedCode, fleetErr.Code())
			}
			if fleetErr.Expected() != test.expected || fleetErr.Actual() != test.actual {
				t.Fatalf("expected %d/%d\tgot: %d/%d", test.expected, test.actual, fleetErr.Expected(), fleetErr.Actual())
			}
			if fleetErr.ShipSize() != test.shipSize {
				t.Fatalf("expected ship size: %d\tgot: %d", test.shipSize, fleetErr.ShipSize())
			}
			if test.expectedCode == cerr.FleetErrAdjacent || test.expectedCode == cerr.FleetErrOverlap || test.expectedCode == cerr.FleetErrOutOfBound {
				row, column := fleetErr.Coordinates()
				if row != test.row || column != test.column {
					t.Fatalf("expected coordinates: (%d, %d)\tgot: (%d, %d)", test.row, test.column, row, column)
				}
			}
		})
	}
}

func TestFireSinksShip(t *testing.T) {
	tests := []struct {
		name  string
		order []Coordinates
	}{
		{
			name:  "left to right",
			order: []Coordinates{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		},
		{
			name:  "scattered",
			order: []Coordinates{{0, 3}, {0, 1}, {0, 0}, {0, 2}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := mustBoard(t, standardFleet())

			for i, c := range test.order {
				outcome, err := b.Fire(c)
				if err != nil {
					t.Fatal(err)
				}

				expected := OutcomeHit
				if i == len(test.order)-1 {
					expected = OutcomeSunk
				}
				if outcome != expected {
					t.Fatalf("shot %d at %+v: expected %s\tgot: %s", i, c, expected, outcome)
				}
			}

			ship := b.ShipAt(NewCoordinates(0, 0))
			if !ship.IsSunk() {
				t.Fatal("ship should be sunk")
			}

			// firing a dead segment again changes nothing
			outcome, err := b.Fire(NewCoordinates(0, 1))
			if err != nil {
				t.Fatal(err)
			}
			if outcome != OutcomeSunk {
				t.Fatalf("expected %s\tgot: %s", OutcomeSunk, outcome)
			}
			if !ship.IsSunk() || b.SunkenShips() != 1 {
				t.Fatalf("sunk status changed after repeated fire, sunken ships: %d", b.SunkenShips())
			}
		})
	}
}

func TestFireOutcomeTokens(t *testing.T) {
	b := mustBoard(t, standardFleet())

	tests := []struct {
		name     string
		target   Coordinates
		expected string
	}{
		{name: "hit", target: NewCoordinates(0, 0), expected: "Hit!"},
		{name: "miss", target: NewCoordinates(5, 5), expected: "Miss!"},
		{name: "one deck sunk", target: NewCoordinates(0, 8), expected: "Sunk!"},
		{name: "miss again", target: NewCoordinates(5, 5), expected: "Miss!"},
		{name: "miss next to ship", target: NewCoordinates(1, 0), expected: "Miss!"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			outcome, err := b.Fire(test.target)
			if err != nil {
				t.Fatal(err)
			}
			if outcome.String() != test.expected {
				t.Fatalf("expected: %s\tgot: %s", test.expected, outcome)
			}
		})
	}
}

func TestFireOutOfGridBound(t *testing.T) {
	b := mustBoard(t, standardFleet())

	tests := []Coordinates{{-1, 0}, {0, -1}, {10, 0}, {0, 10}}
	for _, c := range tests {
		outcome, err := b.Fire(c)
		if err == nil {
			t.Fatalf("expected error for %+v", c)
		}
		if err.Error() != cerr.ErrXorYOutOfGridBound(c.Row, c.Column).Error() {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome != OutcomeMiss {
			t.Fatalf("expected %s\tgot: %s", OutcomeMiss, outcome)
		}
	}
}

func TestRender(t *testing.T) {
	b := mustBoard(t, standardFleet())

	for _, c := range []Coordinates{{2, 0}, {0, 8}, {5, 5}} {
		if _, err := b.Fire(c); err != nil {
			t.Fatal(err)
		}
	}

	grid := b.Render()
	tests := []struct {
		name     string
		c        Coordinates
		expected uint8
	}{
		{name: "untouched ship", c: NewCoordinates(0, 0), expected: PositionStateShip},
		{name: "hit not sunk", c: NewCoordinates(2, 0), expected: PositionStateHit},
		{name: "sunk", c: NewCoordinates(0, 8), expected: PositionStateSunk},
		{name: "missed water", c: NewCoordinates(5, 5), expected: PositionStateWater},
		{name: "water", c: NewCoordinates(9, 9), expected: PositionStateWater},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if grid[test.c.Row][test.c.Column] != test.expected {
				t.Fatalf("expected state: %d\tgot: %d", test.expected, grid[test.c.Row][test.c.Column])
			}
		})
	}

	expectedFirstRow := "□ □ □ □ ~ □ □ ~ x ~"
	symbols := grid.Symbols()
	if len(symbols) != GridSize || len(symbols[0]) != GridSize {
		t.Fatalf("expected a %dx%d grid", GridSize, GridSize)
	}
	gotFirstRow := b.String()[:len(expectedFirstRow)]
	if gotFirstRow != expectedFirstRow {
		t.Fatalf("expected first row: %q\tgot: %q", expectedFirstRow, gotFirstRow)
	}
}

func TestSunkenShipsCoordinates(t *testing.T) {
	b := mustBoard(t, standardFleet())

	for _, c := range []Coordinates{{6, 0}, {6, 1}, {4, 5}, {0, 0}} {
		if _, err := b.Fire(c); err != nil {
			t.Fatal(err)
		}
	}

	expected := []Coordinates{{6, 0}, {6, 1}, {4, 5}}
	if got := b.SunkenShipsCoordinates(); !reflect.DeepEqual(expected, got) {
		t.Fatalf("expected: %+v\tgot: %+v", expected, got)
	}
	if b.SunkenShips() != 2 {
		t.Fatalf("expected sunken ships: %d\tgot: %d", 2, b.SunkenShips())
	}
	if b.IsFleetSunk() {
		t.Fatal("fleet should not be sunk yet")
	}
}

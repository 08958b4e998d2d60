package battleship

import (
	cerr "github.com/saeidalz13/battleship-fleet/internal/error"
)

const FleetSize int = 10

// Number of ships required per ship size. Sizes are checked
// in this order and the first mismatch is reported.
var fleetComposition = []struct {
	shipSize int
	count    int
}{
	{shipSize: 1, count: 4},
	{shipSize: 2, count: 3},
	{shipSize: 3, count: 2},
	{shipSize: 4, count: 1},
}

type Placement struct {
	Start Coordinates `json:"start"`
	End   Coordinates `json:"end"`
}

func NewPlacement(start, end Coordinates) Placement {
	return Placement{Start: start, End: end}
}

// Board holds the ships in an arena and maps every occupied
// cell to the index of its ship.
type Board struct {
	ships []*Ship
	field map[Coordinates]int
}

// Builds and validates a board. Either the full fleet is valid
// and a board is returned, or an error explaining the first
// violated rule is returned.
func NewBoard(placements []Placement) (*Board, error) {
	b := &Board{
		ships: make([]*Ship, 0, len(placements)),
		field: make(map[Coordinates]int, GridSize*GridSize),
	}

	for _, placement := range placements {
		for _, end := range []Coordinates{placement.Start, placement.End} {
			if !end.IsInGrid() {
				return nil, cerr.ErrPlacementOutOfGridBound(end.Row, end.Column)
			}
		}

		ship, err := NewShip(placement.Start, placement.End)
		if err != nil {
			return nil, err
		}
		if err := b.addShip(ship); err != nil {
			return nil, err
		}
	}

	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) addShip(ship *Ship) error {
	idx := len(b.ships)
	for _, segment := range ship.segments {
		c := segment.Coordinates()
		if _, prs := b.field[c]; prs {
			return cerr.ErrShipsOverlap(c.Row, c.Column)
		}
		b.field[c] = idx
	}
	b.ships = append(b.ships, ship)
	return nil
}

func (b *Board) validate() error {
	distinct := make(map[int]struct{}, len(b.ships))
	for _, idx := range b.field {
		distinct[idx] = struct{}{}
	}
	if len(distinct) != FleetSize {
		return cerr.ErrShipCount(FleetSize, len(distinct))
	}

	sizes := make(map[int]int, len(fleetComposition))
	for idx := range distinct {
		sizes[b.ships[idx].Size()]++
	}
	for _, fc := range fleetComposition {
		if sizes[fc.shipSize] != fc.count {
			return cerr.ErrShipSizeCount(fc.shipSize, fc.count, sizes[fc.shipSize])
		}
	}

	// Walk the ships in placement order so the reported
	// neighbour does not depend on map iteration.
	for idx, ship := range b.ships {
		for _, segment := range ship.segments {
			for _, n := range segment.Coordinates().Neighbours() {
				other, prs := b.field[n]
				if prs && other != idx {
					return cerr.ErrShipsAdjacent(n.Row, n.Column)
				}
			}
		}
	}

	return nil
}

// Fires at c. Empty water is a miss; outside the grid is an error.
func (b *Board) Fire(c Coordinates) (Outcome, error) {
	if !c.IsInGrid() {
		return OutcomeMiss, cerr.ErrXorYOutOfGridBound(c.Row, c.Column)
	}

	idx, prs := b.field[c]
	if !prs {
		return OutcomeMiss, nil
	}
	return b.ships[idx].resolveFire(c.Row, c.Column), nil
}

// Returns the ship occupying c, or nil for water.
func (b *Board) ShipAt(c Coordinates) *Ship {
	idx, prs := b.field[c]
	if !prs {
		return nil
	}
	return b.ships[idx]
}

func (b *Board) Ships() []*Ship {
	return b.ships
}

func (b *Board) SunkenShips() int {
	var sunken int
	for _, ship := range b.ships {
		if ship.sunk {
			sunken++
		}
	}
	return sunken
}

func (b *Board) IsFleetSunk() bool {
	return b.SunkenShips() == len(b.ships)
}

// Returns the cells of every sunk ship.
func (b *Board) SunkenShipsCoordinates() []Coordinates {
	var coords []Coordinates
	for _, ship := range b.ships {
		if ship.sunk {
			coords = append(coords, ship.HitCoordinates()...)
		}
	}
	return coords
}

func (b *Board) Render() Grid {
	grid := NewGrid(GridSize)

	for c, idx := range b.field {
		ship := b.ships[idx]
		segment := ship.findSegment(c.Row, c.Column)

		switch {
		case !segment.alive && ship.sunk:
			grid[c.Row][c.Column] = PositionStateSunk
		case !segment.alive:
			grid[c.Row][c.Column] = PositionStateHit
		default:
			grid[c.Row][c.Column] = PositionStateShip
		}
	}
	return grid
}

func (b *Board) String() string {
	return b.Render().String()
}

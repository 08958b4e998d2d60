package battleship

import (
	cerr "github.com/saeidalz13/battleship-fleet/internal/error"
)

type Outcome uint8

const (
	OutcomeMiss Outcome = iota
	OutcomeHit
	OutcomeSunk
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "Hit!"
	case OutcomeSunk:
		return "Sunk!"
	default:
		return "Miss!"
	}
}

type Ship struct {
	start    Coordinates
	end      Coordinates
	segments []*Segment
	sunk     bool
}

// Builds a ship occupying every cell between start and end
// inclusive. The two ends must share a row or a column.
func NewShip(start, end Coordinates) (*Ship, error) {
	if start.Row != end.Row && start.Column != end.Column {
		return nil, cerr.ErrShipNotAxisAligned(start.Row, start.Column, end.Row, end.Column)
	}

	sh := &Ship{start: start, end: end}
	sh.segments = sh.deriveSegments()
	return sh, nil
}

func (sh *Ship) deriveSegments() []*Segment {
	if sh.start.Row == sh.end.Row {
		from, to := ordered(sh.start.Column, sh.end.Column)
		segments := make([]*Segment, 0, to-from+1)
		for column := from; column <= to; column++ {
			segments = append(segments, newSegment(sh.start.Row, column))
		}
		return segments
	}

	from, to := ordered(sh.start.Row, sh.end.Row)
	segments := make([]*Segment, 0, to-from+1)
	for row := from; row <= to; row++ {
		segments = append(segments, newSegment(row, sh.start.Column))
	}
	return segments
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func (sh *Ship) Start() Coordinates {
	return sh.start
}

func (sh *Ship) End() Coordinates {
	return sh.end
}

func (sh *Ship) Size() int {
	return len(sh.segments)
}

func (sh *Ship) IsSunk() bool {
	return sh.sunk
}

func (sh *Ship) Segments() []*Segment {
	return sh.segments
}

func (sh *Ship) findSegment(row, column int) *Segment {
	for _, segment := range sh.segments {
		if segment.row == row && segment.column == column {
			return segment
		}
	}
	return nil
}

// Marks the segment at (row, column) as dead. The board only
// dispatches cells it mapped to this ship, so a missing segment
// is reported as a miss and nothing changes.
func (sh *Ship) resolveFire(row, column int) Outcome {
	segment := sh.findSegment(row, column)
	if segment == nil {
		return OutcomeMiss
	}
	segment.sink()

	for _, s := range sh.segments {
		if s.alive {
			return OutcomeHit
		}
	}

	sh.sunk = true
	return OutcomeSunk
}

func (sh *Ship) HitCoordinates() []Coordinates {
	hitCoordinates := make([]Coordinates, 0, len(sh.segments))
	for _, segment := range sh.segments {
		if !segment.alive {
			hitCoordinates = append(hitCoordinates, segment.Coordinates())
		}
	}
	return hitCoordinates
}

package battleship

// A single cell of a ship. Once dead it stays dead.
type Segment struct {
	row    int
	column int
	alive  bool
}

func newSegment(row, column int) *Segment {
	return &Segment{row: row, column: column, alive: true}
}

func (s *Segment) Coordinates() Coordinates {
	return NewCoordinates(s.row, s.column)
}

func (s *Segment) IsAlive() bool {
	return s.alive
}

func (s *Segment) sink() {
	s.alive = false
}

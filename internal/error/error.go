package error

import "fmt"

const (
	ConstErrFireFailed   = "fire operation failed"
	ConstErrBoardInvalid = "fleet placement is invalid"
)

func ErrBoardNotExists(boardUuid string) error {
	return fmt.Errorf("board with this uuid does not exist, uuid: %s", boardUuid)
}

func ErrBoardIsNil(boardUuid string) error {
	return fmt.Errorf("board with this uuid is nil, uuid: %s", boardUuid)
}

func ErrXorYOutOfGridBound(row, column int) error {
	return fmt.Errorf("incoming row or column is out of board grid bound\trow: %d\tcolumn: %d", row, column)
}

func ErrCoordinatesFormat(raw string) error {
	return fmt.Errorf("coordinates must be in the form row,column\tgot: %q", raw)
}

// Codes of FleetErr, one per validation rule.
const (
	FleetErrOutOfBound uint8 = iota
	FleetErrNotAxisAligned
	FleetErrOverlap
	FleetErrShipCount
	FleetErrShipSize
	FleetErrAdjacent
)

// FleetErr is returned when a board cannot be built from the
// given placements. Expected and Actual are only meaningful
// for the count and size rules, Row and Column for the rest.
type FleetErr struct {
	code     uint8
	desc     string
	expected int
	actual   int
	shipSize int
	row      int
	column   int
}

func NewFleetErr(code uint8) FleetErr {
	return FleetErr{code: code}
}

func (f FleetErr) AddDesc(desc string) FleetErr {
	f.desc = desc
	return f
}

var fleetErrRules = map[uint8]string{
	FleetErrOutOfBound:     "out of bound",
	FleetErrNotAxisAligned: "not axis aligned",
	FleetErrOverlap:        "overlap",
	FleetErrShipCount:      "ship count",
	FleetErrShipSize:       "ship size",
	FleetErrAdjacent:       "adjacent ships",
}

// Rule names the validation rule the error violates.
func (f FleetErr) Rule() string {
	if rule, prs := fleetErrRules[f.code]; prs {
		return rule
	}
	return "unknown"
}

func (f FleetErr) Error() string {
	return fmt.Sprintf("%s - rule: %s\tdesc: %s", ConstErrBoardInvalid, f.Rule(), f.desc)
}

func (f FleetErr) Code() uint8 {
	return f.code
}

func (f FleetErr) Expected() int {
	return f.expected
}

func (f FleetErr) Actual() int {
	return f.actual
}

func (f FleetErr) ShipSize() int {
	return f.shipSize
}

// Coordinates returns the cell the error points at.
func (f FleetErr) Coordinates() (int, int) {
	return f.row, f.column
}

func ErrPlacementOutOfGridBound(row, column int) error {
	f := NewFleetErr(FleetErrOutOfBound).AddDesc(fmt.Sprintf("ship end is out of board grid bound\trow: %d\tcolumn: %d", row, column))
	f.row, f.column = row, column
	return f
}

func ErrShipNotAxisAligned(startRow, startColumn, endRow, endColumn int) error {
	f := NewFleetErr(FleetErrNotAxisAligned).AddDesc(fmt.Sprintf("ship must sit in a single row or column\tstart: (%d, %d)\tend: (%d, %d)", startRow, startColumn, endRow, endColumn))
	f.row, f.column = startRow, startColumn
	return f
}

func ErrShipsOverlap(row, column int) error {
	f := NewFleetErr(FleetErrOverlap).AddDesc(fmt.Sprintf("cell is claimed by more than one ship: (%d, %d)", row, column))
	f.row, f.column = row, column
	return f
}

func ErrShipCount(expected, actual int) error {
	f := NewFleetErr(FleetErrShipCount).AddDesc(fmt.Sprintf("amount of ships must be %d, but %d is found", expected, actual))
	f.expected, f.actual = expected, actual
	return f
}

func ErrShipSizeCount(shipSize, expected, actual int) error {
	f := NewFleetErr(FleetErrShipSize).AddDesc(fmt.Sprintf("expected %d ships of size %d, but found %d", expected, shipSize, actual))
	f.shipSize, f.expected, f.actual = shipSize, expected, actual
	return f
}

func ErrShipsAdjacent(row, column int) error {
	f := NewFleetErr(FleetErrAdjacent).AddDesc(fmt.Sprintf("ships can't be next to each other: (%d, %d) is too close to the ship", row, column))
	f.row, f.column = row, column
	return f
}

package battleship

import (
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-fleet/internal/error"
)

type BoardManager interface {
	CreateBoard(placements []Placement) (string, *Board, error)
	FetchBoard(boardUuid string) (*Board, error)
	Fire(boardUuid string, c Coordinates) (FireResult, error)
	Render(boardUuid string) (Grid, error)
	Status(boardUuid string) (BoardStatus, error)
	TerminateBoard(boardUuid string)
}

// Snapshot of a board right after a shot, taken under the
// manager lock.
type FireResult struct {
	Outcome                Outcome
	SunkenShips            int
	IsFleetSunk            bool
	SunkenShipsCoordinates []Coordinates
}

type BoardStatus struct {
	Ships       int
	SunkenShips int
	IsFleetSunk bool
}

// FleetBoardManager serialises every access to the boards it
// holds. Boards themselves are not safe for concurrent use.
type FleetBoardManager struct {
	boards map[string]*Board
	mu     sync.RWMutex
}

var _ BoardManager = (*FleetBoardManager)(nil)

func NewFleetBoardManager() *FleetBoardManager {
	return &FleetBoardManager{
		boards: make(map[string]*Board, 10),
	}
}

func (fbm *FleetBoardManager) CreateBoard(placements []Placement) (string, *Board, error) {
	board, err := NewBoard(placements)
	if err != nil {
		return "", nil, err
	}

	boardUuid := uuid.NewString()[:6]

	fbm.mu.Lock()
	fbm.boards[boardUuid] = board
	fbm.mu.Unlock()

	return boardUuid, board, nil
}

func (fbm *FleetBoardManager) FetchBoard(boardUuid string) (*Board, error) {
	fbm.mu.RLock()
	defer fbm.mu.RUnlock()

	return fbm.fetchBoard(boardUuid)
}

func (fbm *FleetBoardManager) fetchBoard(boardUuid string) (*Board, error) {
	board, prs := fbm.boards[boardUuid]
	if !prs {
		return nil, cerr.ErrBoardNotExists(boardUuid)
	}

	if board == nil {
		return nil, cerr.ErrBoardIsNil(boardUuid)
	}

	return board, nil
}

// Fire mutates the board so it takes the write lock.
func (fbm *FleetBoardManager) Fire(boardUuid string, c Coordinates) (FireResult, error) {
	fbm.mu.Lock()
	defer fbm.mu.Unlock()

	board, err := fbm.fetchBoard(boardUuid)
	if err != nil {
		return FireResult{}, err
	}

	outcome, err := board.Fire(c)
	if err != nil {
		return FireResult{}, err
	}

	return FireResult{
		Outcome:                outcome,
		SunkenShips:            board.SunkenShips(),
		IsFleetSunk:            board.IsFleetSunk(),
		SunkenShipsCoordinates: board.SunkenShipsCoordinates(),
	}, nil
}

func (fbm *FleetBoardManager) Render(boardUuid string) (Grid, error) {
	fbm.mu.RLock()
	defer fbm.mu.RUnlock()

	board, err := fbm.fetchBoard(boardUuid)
	if err != nil {
		return nil, err
	}
	return board.Render(), nil
}

func (fbm *FleetBoardManager) Status(boardUuid string) (BoardStatus, error) {
	fbm.mu.RLock()
	defer fbm.mu.RUnlock()

	board, err := fbm.fetchBoard(boardUuid)
	if err != nil {
		return BoardStatus{}, err
	}

	return BoardStatus{
		Ships:       len(board.Ships()),
		SunkenShips: board.SunkenShips(),
		IsFleetSunk: board.IsFleetSunk(),
	}, nil
}

func (fbm *FleetBoardManager) TerminateBoard(boardUuid string) {
	fbm.mu.Lock()
	delete(fbm.boards, boardUuid)
	fbm.mu.Unlock()
}

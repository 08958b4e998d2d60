package api

import (
	"encoding/json"

	cerr "github.com/saeidalz13/battleship-fleet/internal/error"
	mb "github.com/saeidalz13/battleship-fleet/models/battleship"
	mc "github.com/saeidalz13/battleship-fleet/models/connection"
)

type RequestHandler interface {
	HandleCreateBoard(bm mb.BoardManager) (string, mc.Message[mc.RespCreateBoard])
	HandleFire(bm mb.BoardManager) (mc.Message[mc.RespFire], *mc.Message[mc.RespFleetSunk])
	HandleRender(bm mb.BoardManager) mc.Message[mc.RespRender]
	HandleBoardStatus(bm mb.BoardManager) mc.Message[mc.RespBoardStatus]
	HandleTerminateBoard(bm mb.BoardManager) mc.Message[mc.RespBoardStatus]
}

// Every incoming valid request will have this structure
// The request then is handled in line with RequestHandler interface
type Request struct {
	payload []byte
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload []byte) Request {
	return Request{payload: payload}
}

func (r Request) HandleCreateBoard(bm mb.BoardManager) (string, mc.Message[mc.RespCreateBoard]) {
	resp := mc.NewMessage[mc.RespCreateBoard](mc.CodeCreateBoard)

	var req mc.Message[mc.ReqCreateBoard]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "failed to unmarshal create board request")
		return "", resp
	}

	boardUuid, _, err := bm.CreateBoard(req.Payload.Placements)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrBoardInvalid)
		return "", resp
	}

	resp.AddPayload(mc.RespCreateBoard{BoardUuid: boardUuid})
	return boardUuid, resp
}

// The second message is only returned when the shot sank
// the last ship of the fleet.
func (r Request) HandleFire(bm mb.BoardManager) (mc.Message[mc.RespFire], *mc.Message[mc.RespFleetSunk]) {
	resp := mc.NewMessage[mc.RespFire](mc.CodeFire)

	var req mc.Message[mc.ReqFire]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "failed to unmarshal fire request")
		return resp, nil
	}

	result, err := bm.Fire(req.Payload.BoardUuid, mb.NewCoordinates(req.Payload.Row, req.Payload.Column))
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrFireFailed)
		return resp, nil
	}

	resp.AddPayload(mc.RespFire{
		Row:                    req.Payload.Row,
		Column:                 req.Payload.Column,
		Outcome:                result.Outcome.String(),
		SunkenShips:            result.SunkenShips,
		SunkenShipsCoordinates: result.SunkenShipsCoordinates,
	})

	if !result.IsFleetSunk {
		return resp, nil
	}

	fleetSunk := mc.NewMessage[mc.RespFleetSunk](mc.CodeFleetSunk)
	fleetSunk.AddPayload(mc.RespFleetSunk{BoardUuid: req.Payload.BoardUuid})
	return resp, &fleetSunk
}

func (r Request) HandleRender(bm mb.BoardManager) mc.Message[mc.RespRender] {
	resp := mc.NewMessage[mc.RespRender](mc.CodeRender)

	var req mc.Message[mc.ReqBoard]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "failed to unmarshal render request")
		return resp
	}

	grid, err := bm.Render(req.Payload.BoardUuid)
	if err != nil {
		resp.AddError(err.Error(), "")
		return resp
	}

	resp.AddPayload(mc.RespRender{Grid: grid.Symbols()})
	return resp
}

func (r Request) HandleBoardStatus(bm mb.BoardManager) mc.Message[mc.RespBoardStatus] {
	resp := mc.NewMessage[mc.RespBoardStatus](mc.CodeBoardStatus)

	var req mc.Message[mc.ReqBoard]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "failed to unmarshal board status request")
		return resp
	}

	status, err := bm.Status(req.Payload.BoardUuid)
	if err != nil {
		resp.AddError(err.Error(), "")
		return resp
	}

	resp.AddPayload(mc.RespBoardStatus{
		BoardUuid:   req.Payload.BoardUuid,
		Ships:       status.Ships,
		SunkenShips: status.SunkenShips,
		IsFleetSunk: status.IsFleetSunk,
	})
	return resp
}

func (r Request) HandleTerminateBoard(bm mb.BoardManager) mc.Message[mc.RespBoardStatus] {
	resp := mc.NewMessage[mc.RespBoardStatus](mc.CodeTerminateBoard)

	var req mc.Message[mc.ReqBoard]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "failed to unmarshal terminate board request")
		return resp
	}

	if _, err := bm.FetchBoard(req.Payload.BoardUuid); err != nil {
		resp.AddError(err.Error(), "")
		return resp
	}

	bm.TerminateBoard(req.Payload.BoardUuid)
	resp.AddPayload(mc.RespBoardStatus{BoardUuid: req.Payload.BoardUuid})
	return resp
}

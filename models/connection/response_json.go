package connection

import (
	mb "github.com/saeidalz13/battleship-fleet/models/battleship"
)

type RespCreateBoard struct {
	BoardUuid string `json:"board_uuid"`
}

type RespFire struct {
	Row                    int              `json:"row"`
	Column                 int              `json:"column"`
	Outcome                string           `json:"outcome"`
	SunkenShips            int              `json:"sunken_ships"`
	SunkenShipsCoordinates []mb.Coordinates `json:"sunken_ships_coordinates,omitempty"`
}

type RespRender struct {
	Grid [][]string `json:"grid"`
}

type RespBoardStatus struct {
	BoardUuid   string `json:"board_uuid"`
	Ships       int    `json:"ships"`
	SunkenShips int    `json:"sunken_ships"`
	IsFleetSunk bool   `json:"is_fleet_sunk"`
}

type RespFleetSunk struct {
	BoardUuid string `json:"board_uuid"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}

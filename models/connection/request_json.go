package connection

import (
	mb "github.com/saeidalz13/battleship-fleet/models/battleship"
)

type ReqCreateBoard struct {
	Placements []mb.Placement `json:"placements"`
}

type ReqFire struct {
	BoardUuid string `json:"board_uuid"`
	Row       int    `json:"row"`
	Column    int    `json:"column"`
}

// Used by render, status and terminate requests.
type ReqBoard struct {
	BoardUuid string `json:"board_uuid"`
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/rs/zerolog"
	"github.com/saeidalz13/battleship-fleet/db/sqlc"
	mb "github.com/saeidalz13/battleship-fleet/models/battleship"
	mc "github.com/saeidalz13/battleship-fleet/models/connection"
	"github.com/sqlc-dev/pqtype"
)

type RequestProcessor struct {
	boardManager mb.BoardManager
	analytics    *sqlc.AnalyticsManager
	ipnet        net.IPNet
	logger       zerolog.Logger
}

// analytics may be nil, in which case nothing is recorded.
func NewRequestProcessor(
	boardManager mb.BoardManager,
	analytics *sqlc.AnalyticsManager,
	logger zerolog.Logger,
) RequestProcessor {
	rp := RequestProcessor{
		boardManager: boardManager,
		analytics:    analytics,
		logger:       logger,
	}

	rp.ipnet = hostIpNet()
	return rp
}

// Picks the first non-loopback IPv4 address of the host.
// Falls back to loopback when the host has none.
func hostIpNet() net.IPNet {
	loopback := net.IPNet{IP: net.IPv4(127, 0, 0, 1).To4(), Mask: net.CIDRMask(32, 32)}

	ifaces, err := net.Interfaces()
	if err != nil {
		return loopback
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			var ip net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}

			if ip != nil && ip.To4() != nil && !ip.IsLoopback() {
				return net.IPNet{IP: ip.To4(), Mask: net.CIDRMask(32, 32)}
			}
		}
	}

	return loopback
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

// Reads JSON messages from r until EOF or ctx is done and
// writes one or more responses per message to w.
func (rp RequestProcessor) Process(ctx context.Context, r io.Reader, w io.Writer) error {
	decoder := json.NewDecoder(r)
	encoder := json.NewEncoder(w)
	hostInet := pqtype.Inet{IPNet: rp.ipnet, Valid: true}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var payload json.RawMessage
		if err := decoder.Decode(&payload); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to decode request: %w", err)
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil || signal.IsAbsent() {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err := encoder.Encode(msg); err != nil {
				return err
			}
			continue
		}

		req := NewRequest(payload)

		switch *signal.Code {
		case mc.CodeCreateBoard:
			boardUuid, respMsg := req.HandleCreateBoard(rp.boardManager)
			if respMsg.Error != nil {
				rp.logger.Warn().Str("error", respMsg.Error.ErrorDetails).Msg("board rejected")
			} else {
				rp.logger.Info().Str("board_uuid", boardUuid).Msg("board created")
				rp.recordAnalytics(ctx, hostInet, rp.analytics.IncrementBoardsCreatedCount)
			}

			if err := encoder.Encode(respMsg); err != nil {
				return err
			}

		case mc.CodeFire:
			respMsg, fleetSunk := req.HandleFire(rp.boardManager)
			if respMsg.Error == nil {
				rp.logger.Debug().
					Int("row", respMsg.Payload.Row).
					Int("column", respMsg.Payload.Column).
					Str("outcome", respMsg.Payload.Outcome).
					Msg("shot resolved")
				rp.recordAnalytics(ctx, hostInet, rp.analytics.IncrementShotsFiredCount)
			}

			if err := encoder.Encode(respMsg); err != nil {
				return err
			}

			if fleetSunk != nil {
				rp.logger.Info().Str("board_uuid", fleetSunk.Payload.BoardUuid).Msg("fleet sunk")
				if err := encoder.Encode(fleetSunk); err != nil {
					return err
				}
			}

		case mc.CodeRender:
			if err := encoder.Encode(req.HandleRender(rp.boardManager)); err != nil {
				return err
			}

		case mc.CodeBoardStatus:
			if err := encoder.Encode(req.HandleBoardStatus(rp.boardManager)); err != nil {
				return err
			}

		case mc.CodeTerminateBoard:
			respMsg := req.HandleTerminateBoard(rp.boardManager)
			if respMsg.Error == nil {
				rp.logger.Info().Str("board_uuid", respMsg.Payload.BoardUuid).Msg("board terminated")
			}
			if err := encoder.Encode(respMsg); err != nil {
				return err
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := encoder.Encode(respInvalidSignal); err != nil {
				return err
			}
		}
	}
}

func (rp RequestProcessor) recordAnalytics(ctx context.Context, hostInet pqtype.Inet, increment func(context.Context, pqtype.Inet) error) {
	if rp.analytics == nil {
		return
	}

	ctx, cancel := sqlc.WithQueryTimeout(ctx)
	defer cancel()

	// for now not failing the request for it
	if err := increment(ctx, hostInet); err != nil {
		rp.logger.Error().Err(err).Msg("failed to record analytics")
	}
}

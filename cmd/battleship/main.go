package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/saeidalz13/battleship-fleet/api"
	"github.com/saeidalz13/battleship-fleet/db"
	"github.com/saeidalz13/battleship-fleet/db/sqlc"
	"github.com/saeidalz13/battleship-fleet/internal/config"
	mb "github.com/saeidalz13/battleship-fleet/models/battleship"
)

func main() {
	fleetPath := flag.String("fleet", "", "path to a JSON list of placements; fires the positional row,column args at it and prints the board")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)
	log.Logger = logger

	if *fleetPath != "" {
		if err := runShots(os.Stdout, *fleetPath, flag.Args()); err != nil {
			logger.Fatal().Err(err).Msg("failed to play shots")
		}
		return
	}

	var analytics *sqlc.AnalyticsManager
	if cfg.AnalyticsEnabled() {
		conn := db.MustConnectToDb(cfg.DatabaseUrl, cfg.MigrationDir)
		defer conn.Close()
		analytics = sqlc.NewDbManager(conn).Analytics
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rp := api.NewRequestProcessor(mb.NewFleetBoardManager(), analytics, logger)
	logger.Info().Str("stage", cfg.Stage).Bool("analytics", analytics != nil).Msg("reading requests from stdin")

	if err := rp.Process(ctx, os.Stdin, os.Stdout); err != nil {
		logger.Error().Err(err).Msg("request processing stopped")
		os.Exit(1)
	}
}

// Logs go to stderr so stdout only carries responses.
func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var w io.Writer = os.Stderr
	if cfg.Stage == config.StageDev {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func runShots(w io.Writer, fleetPath string, shots []string) error {
	raw, err := os.ReadFile(fleetPath)
	if err != nil {
		return err
	}

	var placements []mb.Placement
	if err := json.Unmarshal(raw, &placements); err != nil {
		return fmt.Errorf("failed to parse fleet file %s: %w", fleetPath, err)
	}

	board, err := mb.NewBoard(placements)
	if err != nil {
		return err
	}

	for _, shot := range shots {
		c, err := mb.ParseCoordinates(shot)
		if err != nil {
			return err
		}

		outcome, err := board.Fire(c)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d,%d %s\n", c.Row, c.Column, outcome)
	}

	fmt.Fprint(w, board)
	return nil
}

package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

const analyticsIncrementBoardsCreatedCount = `INSERT INTO fleet_analytics (host_ip, boards_created)
VALUES ($1, 1)
ON CONFLICT (host_ip) DO UPDATE SET boards_created = fleet_analytics.boards_created + 1`

func (q *Queries) AnalyticsIncrementBoardsCreatedCount(ctx context.Context, hostIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, analyticsIncrementBoardsCreatedCount, hostIp)
	return err
}

const analyticsIncrementShotsFiredCount = `INSERT INTO fleet_analytics (host_ip, shots_fired)
VALUES ($1, 1)
ON CONFLICT (host_ip) DO UPDATE SET shots_fired = fleet_analytics.shots_fired + 1`

func (q *Queries) AnalyticsIncrementShotsFiredCount(ctx context.Context, hostIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, analyticsIncrementShotsFiredCount, hostIp)
	return err
}

const getBoardsCreatedCount = `SELECT boards_created FROM fleet_analytics WHERE host_ip = $1`

func (q *Queries) GetBoardsCreatedCount(ctx context.Context, hostIp pqtype.Inet) (int64, error) {
	row := q.db.QueryRowContext(ctx, getBoardsCreatedCount, hostIp)
	var boards_created int64
	err := row.Scan(&boards_created)
	return boards_created, err
}

const getShotsFiredCount = `SELECT shots_fired FROM fleet_analytics WHERE host_ip = $1`

func (q *Queries) GetShotsFiredCount(ctx context.Context, hostIp pqtype.Inet) (int64, error) {
	row := q.db.QueryRowContext(ctx, getShotsFiredCount, hostIp)
	var shots_fired int64
	err := row.Scan(&shots_fired)
	return shots_fired, err
}

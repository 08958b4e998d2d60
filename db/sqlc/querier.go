package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type Querier interface {
	AnalyticsIncrementBoardsCreatedCount(ctx context.Context, hostIp pqtype.Inet) error
	AnalyticsIncrementShotsFiredCount(ctx context.Context, hostIp pqtype.Inet) error
	GetBoardsCreatedCount(ctx context.Context, hostIp pqtype.Inet) (int64, error)
	GetShotsFiredCount(ctx context.Context, hostIp pqtype.Inet) (int64, error)
}

var _ Querier = (*Queries)(nil)

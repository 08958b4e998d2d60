package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementBoardsCreatedCount(ctx context.Context, hostIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementBoardsCreatedCount(ctx, hostIpNet)
}

func (a *AnalyticsManager) IncrementShotsFiredCount(ctx context.Context, hostIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementShotsFiredCount(ctx, hostIpNet)
}

func (a *AnalyticsManager) GetBoardsCreatedCount(ctx context.Context, hostIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetBoardsCreatedCount(ctx, hostIpNet)
}

func (a *AnalyticsManager) GetShotsFiredCount(ctx context.Context, hostIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetShotsFiredCount(ctx, hostIpNet)
}

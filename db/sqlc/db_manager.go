package sqlc

import (
	"context"
	"time"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

// Stores backed by the analytics database. The request processor
// takes a nil Analytics when no database is configured.
type DbManager struct {
	Analytics *AnalyticsManager
}

func NewDbManager(db DBTX) DbManager {
	return DbManager{
		Analytics: NewAnalyticsManager(New(db)),
	}
}

// Every analytics call is bounded by QuerierCtxTimeout.
func WithQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, QuerierCtxTimeout)
}

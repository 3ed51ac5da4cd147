package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"safesignal/internal/domain"
	"safesignal/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Stats struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStats(pool *pgxpool.Pool, logger *slog.Logger) *Stats {
	return &Stats{pool: pool, logger: logger}
}

// EventStats aggregates safety events over the trailing window: total
// count, distinct users and a per-risk-level breakdown taken from the
// persisted assessment.
func (s *Stats) EventStats(ctx context.Context, minutes int) (*domain.EventStats, error) {
	const op = "postgres.Stats.EventStats"

	if minutes < 1 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
SELECT
  COUNT(*),
  COUNT(DISTINCT user_id),
  COALESCE(assessment->>'risk_level', 'safe') AS level
FROM safety_events
WHERE created_at >= NOW() - make_interval(mins => $1)
GROUP BY ROLLUP (COALESCE(assessment->>'risk_level', 'safe'))
`

	rows, err := s.pool.Query(ctx, query, minutes)
	if err != nil {
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	stats := &domain.EventStats{ByRiskLevel: map[string]int64{}}
	for rows.Next() {
		var count, users int64
		var level *string
		if err := rows.Scan(&count, &users, &level); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		if level == nil {
			// rollup row carries the totals
			stats.EventCount = count
			stats.UserCount = users
			continue
		}
		stats.ByRiskLevel[*level] = count
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return stats, nil
}

package postgres

import (
	"context"
	"log/slog"

	"safesignal/internal/domain"
	"safesignal/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ZoneReader struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewZoneReader(pool *pgxpool.Pool, logger *slog.Logger) *ZoneReader {
	return &ZoneReader{pool: pool, logger: logger}
}

// ListActive returns the current active zone set. An empty result is
// valid: with no configured zones the pipeline's posture is safe.
func (r *ZoneReader) ListActive(ctx context.Context) ([]domain.RiskZone, error) {
	const op = "postgres.Zone.ListActive"

	const query = `
SELECT id, name, lat, lng, radius_m, risk_level, active, description, created_at
FROM risk_zones
WHERE active = TRUE AND deleted_at IS NULL
ORDER BY created_at
`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	zones := make([]domain.RiskZone, 0, 16)
	for rows.Next() {
		var z domain.RiskZone
		if err := rows.Scan(
			&z.ID,
			&z.Name,
			&z.Center.Latitude,
			&z.Center.Longitude,
			&z.RadiusMeters,
			&z.Level,
			&z.Active,
			&z.Description,
			&z.CreatedAt,
		); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return zones, nil
}

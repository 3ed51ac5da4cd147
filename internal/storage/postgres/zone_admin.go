package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"safesignal/internal/domain"
	"safesignal/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ZoneAdmin struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewZoneAdmin(pool *pgxpool.Pool, logger *slog.Logger) *ZoneAdmin {
	return &ZoneAdmin{pool: pool, logger: logger}
}

func (r *ZoneAdmin) Create(ctx context.Context, zone *domain.RiskZone) error {
	const op = "postgres.ZoneAdmin.Create"

	if zone == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if !zone.Center.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if zone.RadiusMeters <= 0 || !zone.Level.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	if zone.ID == uuid.Nil {
		zone.ID = uuid.New()
	}
	if zone.CreatedAt.IsZero() {
		zone.CreatedAt = time.Now().UTC()
	}

	const query = `
INSERT INTO risk_zones (id, name, lat, lng, radius_m, risk_level, active, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

	_, err := r.pool.Exec(ctx, query,
		zone.ID,
		zone.Name,
		zone.Center.Latitude,
		zone.Center.Longitude,
		zone.RadiusMeters,
		zone.Level,
		zone.Active,
		zone.Description,
		zone.CreatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *ZoneAdmin) List(ctx context.Context, page, limit int) ([]*domain.RiskZone, int64, error) {
	const op = "postgres.ZoneAdmin.List"

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	const countQuery = `SELECT COUNT(*) FROM risk_zones WHERE deleted_at IS NULL`

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, e.WrapError(ctx, op, err)
	}

	const query = `
SELECT id, name, lat, lng, radius_m, risk_level, active, description, created_at
FROM risk_zones
WHERE deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

	rows, err := r.pool.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	zones := make([]*domain.RiskZone, 0, limit)
	for rows.Next() {
		var z domain.RiskZone
		if err := rows.Scan(
			&z.ID, &z.Name, &z.Center.Latitude, &z.Center.Longitude,
			&z.RadiusMeters, &z.Level, &z.Active, &z.Description, &z.CreatedAt,
		); err != nil {
			return nil, 0, e.WrapError(ctx, op, err)
		}
		zones = append(zones, &z)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return zones, total, nil
}

func (r *ZoneAdmin) Get(ctx context.Context, id uuid.UUID) (*domain.RiskZone, error) {
	const op = "postgres.ZoneAdmin.Get"

	const query = `
SELECT id, name, lat, lng, radius_m, risk_level, active, description, created_at
FROM risk_zones
WHERE id = $1 AND deleted_at IS NULL
`

	var z domain.RiskZone
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&z.ID, &z.Name, &z.Center.Latitude, &z.Center.Longitude,
		&z.RadiusMeters, &z.Level, &z.Active, &z.Description, &z.CreatedAt,
	)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return &z, nil
}

func (r *ZoneAdmin) Update(ctx context.Context, zone *domain.RiskZone) error {
	const op = "postgres.ZoneAdmin.Update"

	if zone == nil || zone.ID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if !zone.Center.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
UPDATE risk_zones
SET name = $2, lat = $3, lng = $4, radius_m = $5, risk_level = $6, active = $7, description = $8
WHERE id = $1 AND deleted_at IS NULL
`

	tag, err := r.pool.Exec(ctx, query,
		zone.ID,
		zone.Name,
		zone.Center.Latitude,
		zone.Center.Longitude,
		zone.RadiusMeters,
		zone.Level,
		zone.Active,
		zone.Description,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (r *ZoneAdmin) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.ZoneAdmin.Delete"

	const query = `
UPDATE risk_zones
SET deleted_at = NOW(), active = FALSE
WHERE id = $1 AND deleted_at IS NULL
`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"safesignal/internal/domain"
	"safesignal/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileReader struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewProfileReader(pool *pgxpool.Pool, logger *slog.Logger) *ProfileReader {
	return &ProfileReader{pool: pool, logger: logger}
}

// NotificationTarget reads the push token and emergency contacts for a
// user. Profile data is owned elsewhere; this is a read-only view, and
// a missing profile is an empty target, not an error.
func (r *ProfileReader) NotificationTarget(ctx context.Context, userID uuid.UUID) (domain.NotificationTarget, error) {
	const op = "postgres.Profile.NotificationTarget"

	const query = `
SELECT COALESCE(push_token, ''), COALESCE(contacts, '[]'::jsonb)
FROM user_profiles
WHERE user_id = $1
`

	var target domain.NotificationTarget
	var contacts []byte
	err := r.pool.QueryRow(ctx, query, userID).Scan(&target.PushToken, &contacts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NotificationTarget{}, nil
		}
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return domain.NotificationTarget{}, e.WrapError(ctx, op, err)
	}

	if err := json.Unmarshal(contacts, &target.Contacts); err != nil {
		r.logger.Warn("contacts decode failed, ignoring",
			slog.String("op", op),
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
		target.Contacts = nil
	}

	return target, nil
}

package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"safesignal/internal/domain"
	"safesignal/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRecorder struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewEventRecorder(pool *pgxpool.Pool, logger *slog.Logger) *EventRecorder {
	return &EventRecorder{pool: pool, logger: logger}
}

// Record persists one safety event, assigning its id and UTC timestamp.
// The assessment and evidence ref are stored exactly as given. Failure
// here is fatal to the request: an unrecorded event did not happen.
func (r *EventRecorder) Record(ctx context.Context, event *domain.SafetyEvent) (*domain.SafetyEvent, error) {
	const op = "postgres.Event.Record"

	if event == nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if event.UserID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if !event.Location.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	stored := *event
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()
	if stored.Mode == "" {
		stored.Mode = domain.ModeNormal
	}

	var assessment []byte
	if stored.Assessment != nil {
		b, err := json.Marshal(stored.Assessment)
		if err != nil {
			return nil, fmt.Errorf("%s: marshal assessment: %w", op, e.ErrInternal)
		}
		assessment = b
	}

	const query = `
INSERT INTO safety_events (id, user_id, lat, lng, mode, source, evidence_url, assessment, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

	_, err := r.pool.Exec(ctx, query,
		stored.ID,
		stored.UserID,
		stored.Location.Latitude,
		stored.Location.Longitude,
		stored.Mode,
		stored.Source,
		stored.EvidenceURL,
		assessment,
		stored.CreatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("user_id", stored.UserID.String()),
		)
		return nil, e.WrapError(ctx, op, err)
	}

	return &stored, nil
}

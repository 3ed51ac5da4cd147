package postgres

import (
	"context"

	"safesignal/internal/domain"

	"github.com/google/uuid"
)

type ZoneAdminRepository interface {
	Create(ctx context.Context, zone *domain.RiskZone) error
	List(ctx context.Context, page, limit int) ([]*domain.RiskZone, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.RiskZone, error)
	Update(ctx context.Context, zone *domain.RiskZone) error
	Delete(ctx context.Context, id uuid.UUID) error // soft delete
}

// ZoneRepository is the pipeline's read-only view of the zone set: one
// snapshot of the active subset per call, no consistency across calls.
type ZoneRepository interface {
	ListActive(ctx context.Context) ([]domain.RiskZone, error)
}

// EventRepository is append-only. Record assigns the id and timestamp
// and returns the stored row; there is no update or delete.
type EventRepository interface {
	Record(ctx context.Context, event *domain.SafetyEvent) (*domain.SafetyEvent, error)
}

type ProfileRepository interface {
	NotificationTarget(ctx context.Context, userID uuid.UUID) (domain.NotificationTarget, error)
}

type StatsRepository interface {
	EventStats(ctx context.Context, minutes int) (*domain.EventStats, error)
}

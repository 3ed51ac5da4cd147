package service

import (
	"context"

	"safesignal/internal/domain"

	"github.com/google/uuid"
)

type ZoneAdminService interface {
	Create(ctx context.Context, req domain.CreateZoneRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.RiskZone, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.RiskZone, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateZoneRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SafetyService is the request-level pipeline: validate, assess,
// record, best-effort notify.
type SafetyService interface {
	Assess(ctx context.Context, userID uuid.UUID, req domain.AssessRequest) (domain.AssessResponse, error)
	SubmitSOS(ctx context.Context, userID uuid.UUID, req domain.SOSRequest) (domain.SOSResponse, error)
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.EventStats, error)
}

type Service struct {
	ZoneAdminService ZoneAdminService
	SafetyService    SafetyService
	StatsService     StatsService
}

func NewService(
	zoneAdminService ZoneAdminService,
	safetyService SafetyService,
	statsService StatsService,
) *Service {
	return &Service{
		ZoneAdminService: zoneAdminService,
		SafetyService:    safetyService,
		StatsService:     statsService,
	}
}

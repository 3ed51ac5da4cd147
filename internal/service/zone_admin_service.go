package service

import (
	"context"
	"fmt"
	"log/slog"

	"safesignal/internal/domain"
	"safesignal/internal/storage/postgres"
	"safesignal/pkg/e"
	"safesignal/pkg/validator"

	"github.com/google/uuid"
)

// ZoneCacheInvalidator drops the active-zone snapshot after a mutation
// so the pipeline picks up changes before the TTL expires.
type ZoneCacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type zoneAdminService struct {
	repo   postgres.ZoneAdminRepository
	cache  ZoneCacheInvalidator
	logger *slog.Logger
}

func NewZoneAdminService(repo postgres.ZoneAdminRepository, cache ZoneCacheInvalidator, logger *slog.Logger) ZoneAdminService {
	return &zoneAdminService{repo: repo, cache: cache, logger: logger}
}

func (s *zoneAdminService) Create(ctx context.Context, req domain.CreateZoneRequest) (uuid.UUID, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", e.ErrInvalidInput, err)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	zone := &domain.RiskZone{
		Name:         req.Name,
		Center:       domain.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude},
		RadiusMeters: req.RadiusMeters,
		Level:        req.Level,
		Active:       active,
		Description:  req.Description,
	}

	if err := s.repo.Create(ctx, zone); err != nil {
		return uuid.Nil, err
	}
	s.invalidate(ctx)
	return zone.ID, nil
}

func (s *zoneAdminService) List(ctx context.Context, page, limit int) ([]*domain.RiskZone, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.List(ctx, page, limit)
}

func (s *zoneAdminService) Get(ctx context.Context, id uuid.UUID) (*domain.RiskZone, error) {
	if id == uuid.Nil {
		return nil, e.ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *zoneAdminService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateZoneRequest) error {
	if id == uuid.Nil {
		return e.ErrInvalidInput
	}
	if err := validator.ValidateStruct(req); err != nil {
		return fmt.Errorf("%w: %s", e.ErrInvalidInput, err)
	}

	zone, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.Latitude != nil {
		zone.Center.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		zone.Center.Longitude = *req.Longitude
	}
	if req.RadiusMeters != nil {
		zone.RadiusMeters = *req.RadiusMeters
	}
	if req.Level != nil {
		zone.Level = *req.Level
	}
	if req.Active != nil {
		zone.Active = *req.Active
	}
	if req.Description != nil {
		zone.Description = *req.Description
	}

	if err := s.repo.Update(ctx, zone); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *zoneAdminService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return e.ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *zoneAdminService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("zone cache invalidation failed", slog.Any("error", err))
	}
}

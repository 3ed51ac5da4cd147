package service

import (
	"context"
	"fmt"

	"safesignal/internal/domain"
	"safesignal/internal/storage/postgres"
	"safesignal/pkg/e"
	"safesignal/pkg/validator"
)

type statsService struct {
	repo postgres.StatsRepository
}

func NewStatsService(repo postgres.StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.EventStats, error) {
	if req.Minutes == 0 {
		req.Minutes = 60
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", e.ErrInvalidInput, err)
	}
	return s.repo.EventStats(ctx, req.Minutes)
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"safesignal/internal/domain"
	"safesignal/internal/notify"
	"safesignal/pkg/e"
	"safesignal/pkg/validator"

	"github.com/google/uuid"
)

//go:generate mockgen -source=safety.go -destination=mocks/mock.go
type ZoneSource interface {
	ListActive(ctx context.Context) ([]domain.RiskZone, error)
}

type ZoneCache interface {
	Get(ctx context.Context) ([]domain.RiskZone, bool, error)
	Set(ctx context.Context, zones []domain.RiskZone, ttl time.Duration) error
}

type EventRecorder interface {
	Record(ctx context.Context, event *domain.SafetyEvent) (*domain.SafetyEvent, error)
}

type ProfileSource interface {
	NotificationTarget(ctx context.Context, userID uuid.UUID) (domain.NotificationTarget, error)
}

type PushDispatcher interface {
	Dispatch(ctx context.Context, target domain.NotificationTarget, event *domain.SafetyEvent) notify.Outcome
	Templates() notify.Templates
}

type AlertQueue interface {
	Enqueue(ctx context.Context, payload domain.ContactAlertPayload) error
}

type safetyService struct {
	engine     *RiskEngine
	zones      ZoneSource
	cache      ZoneCache
	cacheTTL   time.Duration
	events     EventRecorder
	profiles   ProfileSource
	dispatcher PushDispatcher
	alerts     AlertQueue
	logger     *slog.Logger
}

func NewSafetyService(
	engine *RiskEngine,
	zones ZoneSource,
	cache ZoneCache,
	cacheTTL time.Duration,
	events EventRecorder,
	profiles ProfileSource,
	dispatcher PushDispatcher,
	alerts AlertQueue,
	logger *slog.Logger,
) SafetyService {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &safetyService{
		engine:     engine,
		zones:      zones,
		cache:      cache,
		cacheTTL:   cacheTTL,
		events:     events,
		profiles:   profiles,
		dispatcher: dispatcher,
		alerts:     alerts,
		logger:     logger,
	}
}

// Assess runs the passive "am I near danger?" check. The check itself
// is recorded like any other safety event; matched zones additionally
// fan out to the contact-alert queue.
func (s *safetyService) Assess(ctx context.Context, userID uuid.UUID, req domain.AssessRequest) (domain.AssessResponse, error) {
	if userID == uuid.Nil {
		return domain.AssessResponse{}, e.ErrUnauthorized
	}
	if err := validator.ValidateStruct(req); err != nil {
		return domain.AssessResponse{}, fmt.Errorf("%w: %s", e.ErrInvalidCoordinates, err)
	}

	point := domain.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}

	zones, err := s.zoneSnapshot(ctx)
	if err != nil {
		return domain.AssessResponse{}, err
	}

	assessment := s.engine.Assess(point, zones)

	stored, err := s.events.Record(ctx, &domain.SafetyEvent{
		UserID:     userID,
		Location:   point,
		Mode:       domain.ModeNormal,
		Source:     "assess",
		Assessment: &assessment,
	})
	if err != nil {
		s.logger.Error("assess event record failed",
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
		return domain.AssessResponse{}, err
	}

	if len(assessment.MatchedZones) > 0 {
		if target, terr := s.profiles.NotificationTarget(ctx, userID); terr == nil {
			s.enqueueContactAlert(ctx, target, stored, assessment)
		}
	}

	return domain.AssessResponse{
		RiskLevel:    assessment.Level,
		ActiveZones:  zoneHits(assessment.MatchedZones),
		NearestZone:  nearestHit(assessment.NearestZone),
		UserLocation: point,
	}, nil
}

// SubmitSOS runs the full pipeline: validate, assess, record (fatal on
// failure), then best-effort push and contact fan-out. Everything after
// the durable write fails open; the response describes the event, not
// the notification.
func (s *safetyService) SubmitSOS(ctx context.Context, userID uuid.UUID, req domain.SOSRequest) (domain.SOSResponse, error) {
	if userID == uuid.Nil {
		return domain.SOSResponse{}, e.ErrUnauthorized
	}
	if err := validator.ValidateStruct(req); err != nil {
		return domain.SOSResponse{}, fmt.Errorf("%w: %s", e.ErrInvalidCoordinates, err)
	}

	mode := req.Mode
	if mode == "" {
		mode = domain.ModeNormal
	}
	source := req.Source
	if source == "" {
		source = "mobile"
	}

	point := domain.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}

	zones, err := s.zoneSnapshot(ctx)
	if err != nil {
		return domain.SOSResponse{}, err
	}

	assessment := s.engine.Assess(point, zones)

	stored, err := s.events.Record(ctx, &domain.SafetyEvent{
		UserID:      userID,
		Location:    point,
		Mode:        mode,
		Source:      source,
		EvidenceURL: req.EvidenceURL,
		Assessment:  &assessment,
	})
	if err != nil {
		s.logger.Error("sos event record failed",
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
		return domain.SOSResponse{}, err
	}

	s.logger.Info("sos recorded",
		slog.String("event_id", stored.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("risk_level", string(assessment.Level)),
		slog.Int("matched_zones", len(assessment.MatchedZones)))

	var outcome notify.Outcome
	target, terr := s.profiles.NotificationTarget(ctx, userID)
	if terr != nil {
		s.logger.Warn("notification target lookup failed",
			slog.String("user_id", userID.String()),
			slog.Any("error", terr))
		outcome = notify.Outcome{Status: notify.StatusFailed, Reason: "target lookup failed"}
	} else {
		outcome = s.notifyUser(ctx, target, stored)
		s.enqueueContactAlert(ctx, target, stored, assessment)
	}

	ts := req.Timestamp
	if ts.IsZero() {
		ts = stored.CreatedAt
	}

	resp := domain.SOSResponse{
		ID:          stored.ID.String(),
		Latitude:    point.Latitude,
		Longitude:   point.Longitude,
		Timestamp:   ts,
		EvidenceURL: stored.EvidenceURL,
		Mode:        stored.Mode,
		Source:      stored.Source,
		RiskLevel:   assessment.Level,
		Notification: domain.NotificationOutcome{
			Status: string(outcome.Status),
			Reason: outcome.Reason,
		},
		Message: s.dispatcher.Templates().For(mode).Ack,
	}
	return resp, nil
}

// zoneSnapshot reads the active set through the cache, falling through
// to the store on a miss. Cache trouble must never fail the pipeline.
func (s *safetyService) zoneSnapshot(ctx context.Context) ([]domain.RiskZone, error) {
	if s.cache != nil {
		zones, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("zone cache read failed, falling through", slog.Any("error", err))
		} else if ok {
			return zones, nil
		}
	}

	zones, err := s.zones.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, zones, s.cacheTTL); err != nil {
			s.logger.Warn("zone cache write failed", slog.Any("error", err))
		}
	}
	return zones, nil
}

// notifyUser dispatches the push. Runs strictly after the durable
// write; every failure is absorbed into the outcome.
func (s *safetyService) notifyUser(ctx context.Context, target domain.NotificationTarget, event *domain.SafetyEvent) notify.Outcome {
	outcome := s.dispatcher.Dispatch(ctx, target, event)
	s.logger.Info("notification dispatched",
		slog.String("event_id", event.ID.String()),
		slog.String("status", string(outcome.Status)),
		slog.String("reason", outcome.Reason))
	return outcome
}

func (s *safetyService) enqueueContactAlert(ctx context.Context, target domain.NotificationTarget, event *domain.SafetyEvent, assessment domain.RiskAssessment) {
	if s.alerts == nil || len(target.Contacts) == 0 {
		return
	}

	ids := make([]uuid.UUID, 0, len(assessment.MatchedZones))
	for _, m := range assessment.MatchedZones {
		ids = append(ids, m.Zone.ID)
	}

	payload := domain.ContactAlertPayload{
		UserID:    event.UserID,
		Latitude:  event.Location.Latitude,
		Longitude: event.Location.Longitude,
		RiskLevel: assessment.Level,
		ZoneIDs:   ids,
		Contacts:  target.Contacts,
		CheckedAt: event.CreatedAt,
	}
	if err := s.alerts.Enqueue(ctx, payload); err != nil {
		s.logger.Error("contact alert enqueue failed",
			slog.String("event_id", event.ID.String()),
			slog.Any("error", err))
	}
}

func zoneHits(matches []domain.ZoneMatch) []domain.ZoneHit {
	hits := make([]domain.ZoneHit, 0, len(matches))
	for _, m := range matches {
		hits = append(hits, domain.ZoneHit{
			ID:             m.Zone.ID.String(),
			Name:           m.Zone.Name,
			Level:          m.Zone.Level,
			DistanceMeters: m.DistanceMeters,
		})
	}
	return hits
}

func nearestHit(m *domain.ZoneMatch) *domain.ZoneHit {
	if m == nil {
		return nil
	}
	return &domain.ZoneHit{
		ID:             m.Zone.ID.String(),
		Name:           m.Zone.Name,
		Level:          m.Zone.Level,
		DistanceMeters: m.DistanceMeters,
	}
}

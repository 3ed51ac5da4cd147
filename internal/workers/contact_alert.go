package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"safesignal/internal/config"
	"safesignal/internal/domain"
	"safesignal/internal/redis"
	"safesignal/pkg/e"
)

// ContactAlertSender drains the redis queue and posts contact-alert
// payloads to the emergency webhook. This channel sits outside the
// request pipeline, so bounded retries are fine here.
type ContactAlertSender struct {
	logger *slog.Logger
	cfg    config.ContactsConfig
	queue  *redis.AlertQueue
	http   *http.Client
}

func NewContactAlertSender(logger *slog.Logger, cfg config.ContactsConfig, q *redis.AlertQueue) *ContactAlertSender {
	return &ContactAlertSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *ContactAlertSender) Run(ctx context.Context) {
	if s.cfg.Disabled || s.cfg.WebhookURL == "" {
		s.logger.Info("contact alert sender disabled")
		return
	}

	s.logger.Info("contact alert sender started", slog.String("url", s.cfg.WebhookURL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("contact alert sender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending contact alert",
			slog.String("user_id", payload.UserID.String()),
			slog.String("risk_level", string(payload.RiskLevel)),
			slog.Int("contacts", len(payload.Contacts)))
		s.sendWithRetry(ctx, payload)
	}
}

func (s *ContactAlertSender) sendWithRetry(ctx context.Context, p domain.ContactAlertPayload) {
	const maxRetries = 3

	body, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("marshal contact alert failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WebhookURL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create alert request failed", slog.String("error", err.Error()))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("contact alert delivery failed",
			slog.Int("attempt", attempt),
			slog.String("reason", reason),
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}
}

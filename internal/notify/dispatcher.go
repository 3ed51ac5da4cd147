package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"safesignal/internal/config"
	"safesignal/internal/domain"
)

type OutcomeStatus string

const (
	StatusSent            OutcomeStatus = "sent"
	StatusSkippedNoTarget OutcomeStatus = "skipped-no-target"
	StatusFailed          OutcomeStatus = "failed"
)

// Outcome is diagnostic metadata, never an error: dispatch failures
// must not propagate into the pipeline's response status.
type Outcome struct {
	Status OutcomeStatus
	Reason string
}

// pushMessage is the messaging provider's call contract. Retry and
// delivery guarantees are the provider's business, not ours.
type pushMessage struct {
	TargetToken string            `json:"targetToken"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data"`
}

type Dispatcher struct {
	logger    *slog.Logger
	cfg       config.PushConfig
	templates Templates
	http      *http.Client
}

func NewDispatcher(logger *slog.Logger, cfg config.PushConfig, templates Templates) *Dispatcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	if templates == nil {
		templates = DefaultTemplates()
	}
	return &Dispatcher{
		logger:    logger,
		cfg:       cfg,
		templates: templates,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

// Templates exposes the active template set so the orchestrator can
// use the same mode-keyed acknowledgement texts.
func (d *Dispatcher) Templates() Templates {
	return d.templates
}

// Dispatch sends one time-boxed, at-most-once push for a recorded
// event. A missing push token is a skip, not a failure. Exactly one
// attempt: retries belong to the provider.
func (d *Dispatcher) Dispatch(ctx context.Context, target domain.NotificationTarget, event *domain.SafetyEvent) Outcome {
	if target.PushToken == "" {
		return Outcome{Status: StatusSkippedNoTarget}
	}
	if d.cfg.Disabled {
		return Outcome{Status: StatusFailed, Reason: "push disabled"}
	}

	tpl := d.templates.For(event.Mode)
	level := domain.RiskSafe
	if event.Assessment != nil {
		level = event.Assessment.Level
	}

	msg := pushMessage{
		TargetToken: target.PushToken,
		Title:       tpl.Title,
		Body:        tpl.Body,
		Data: map[string]string{
			"event_id":   event.ID.String(),
			"risk_level": string(level),
			"latitude":   strconv.FormatFloat(event.Location.Latitude, 'f', -1, 64),
			"longitude":  strconv.FormatFloat(event.Location.Longitude, 'f', -1, 64),
		},
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return Outcome{Status: StatusFailed, Reason: err.Error()}
	}

	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return Outcome{Status: StatusFailed, Reason: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.http.Do(req)
	if err != nil {
		d.logger.Warn("push dispatch failed",
			slog.String("event_id", event.ID.String()),
			slog.String("reason", err.Error()))
		return Outcome{Status: StatusFailed, Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		d.logger.Warn("push provider rejected message",
			slog.String("event_id", event.ID.String()),
			slog.String("status", resp.Status))
		return Outcome{Status: StatusFailed, Reason: fmt.Sprintf("provider status %s", resp.Status)}
	}

	return Outcome{Status: StatusSent}
}

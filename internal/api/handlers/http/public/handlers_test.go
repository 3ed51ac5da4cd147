package public_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"safesignal/internal/api/handlers/http/public"
	mock_public "safesignal/internal/api/handlers/http/public/mocks"
	"safesignal/internal/domain"
	"safesignal/internal/middleware"
	"safesignal/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newHandler(t *testing.T) (*public.Handler, *mock_public.MockSafetyPipeline) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	pipeline := mock_public.NewMockSafetyPipeline(ctrl)
	return public.NewHandler(newTestLogger(), pipeline), pipeline
}

func authedRequest(t *testing.T, userID uuid.UUID, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func TestSafetyAssess_OK(t *testing.T) {
	t.Parallel()
	h, pipeline := newHandler(t)

	userID := uuid.New()
	want := domain.AssessResponse{
		RiskLevel: domain.RiskDanger,
		ActiveZones: []domain.ZoneHit{
			{ID: uuid.New().String(), Name: "Harbor", Level: domain.RiskDanger, DistanceMeters: 12.5},
		},
		UserLocation: domain.Coordinate{Latitude: 6.9271, Longitude: 79.8612},
	}
	want.NearestZone = &want.ActiveZones[0]

	pipeline.EXPECT().
		Assess(gomock.Any(), userID, domain.AssessRequest{Latitude: 6.9271, Longitude: 79.8612}).
		Return(want, nil)

	rec := httptest.NewRecorder()
	h.SafetyAssess(rec, authedRequest(t, userID, http.MethodPost, "/api/v1/safety/assess",
		`{"latitude": 6.9271, "longitude": 79.8612}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var got domain.AssessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.RiskLevel != domain.RiskDanger {
		t.Errorf("risk_level = %s, want %s", got.RiskLevel, domain.RiskDanger)
	}
	if got.NearestZone == nil || got.NearestZone.Name != "Harbor" {
		t.Errorf("nearest_zone = %+v, want Harbor", got.NearestZone)
	}
}

func TestSafetyAssess_NoIdentityIs401(t *testing.T) {
	t.Parallel()
	h, _ := newHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/safety/assess",
		bytes.NewBufferString(`{"latitude": 1, "longitude": 2}`))
	h.SafetyAssess(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestSafetyAssess_BadJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"truncated", `{"latitude": 1,`},
		{"unknown field", `{"latitude": 1, "longitude": 2, "speed": 40}`},
		{"trailing garbage", `{"latitude": 1, "longitude": 2}{}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newHandler(t)

			rec := httptest.NewRecorder()
			h.SafetyAssess(rec, authedRequest(t, uuid.New(), http.MethodPost, "/api/v1/safety/assess", tc.body))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestSafetyAssess_InvalidCoordinatesIs400(t *testing.T) {
	t.Parallel()
	h, pipeline := newHandler(t)

	userID := uuid.New()
	pipeline.EXPECT().
		Assess(gomock.Any(), userID, gomock.Any()).
		Return(domain.AssessResponse{}, fmt.Errorf("service.Assess: %w", e.ErrInvalidCoordinates))

	rec := httptest.NewRecorder()
	h.SafetyAssess(rec, authedRequest(t, userID, http.MethodPost, "/api/v1/safety/assess",
		`{"latitude": 91, "longitude": 0}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
}

func TestSafetySOS_Created(t *testing.T) {
	t.Parallel()
	h, pipeline := newHandler(t)

	userID := uuid.New()
	eventID := uuid.New().String()
	pipeline.EXPECT().
		SubmitSOS(gomock.Any(), userID, domain.SOSRequest{Latitude: 6.9, Longitude: 79.8, Mode: domain.ModeDiscreet}).
		Return(domain.SOSResponse{
			ID:           eventID,
			Latitude:     6.9,
			Longitude:    79.8,
			Mode:         domain.ModeDiscreet,
			Source:       "mobile",
			RiskLevel:    domain.RiskSafe,
			Notification: domain.NotificationOutcome{Status: "sent"},
			Message:      "Content updated.",
		}, nil)

	rec := httptest.NewRecorder()
	h.SafetySOS(rec, authedRequest(t, userID, http.MethodPost, "/api/v1/safety/sos",
		`{"latitude": 6.9, "longitude": 79.8, "mode": "discreet"}`))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var got domain.SOSResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != eventID {
		t.Errorf("id = %s, want %s", got.ID, eventID)
	}
	if got.Message != "Content updated." {
		t.Errorf("message = %q, want disguised ack", got.Message)
	}
}

// A failed or skipped push still yields 201: delivery problems are
// reported in the body, never as an error status.
func TestSafetySOS_NotificationFailureStillCreated(t *testing.T) {
	t.Parallel()

	outcomes := []domain.NotificationOutcome{
		{Status: "failed", Reason: "provider status 503"},
		{Status: "skipped-no-target"},
	}

	for _, outcome := range outcomes {
		outcome := outcome
		t.Run(outcome.Status, func(t *testing.T) {
			t.Parallel()
			h, pipeline := newHandler(t)

			userID := uuid.New()
			pipeline.EXPECT().
				SubmitSOS(gomock.Any(), userID, gomock.Any()).
				Return(domain.SOSResponse{
					ID:           uuid.New().String(),
					RiskLevel:    domain.RiskCaution,
					Notification: outcome,
				}, nil)

			rec := httptest.NewRecorder()
			h.SafetySOS(rec, authedRequest(t, userID, http.MethodPost, "/api/v1/safety/sos",
				`{"latitude": 1, "longitude": 2}`))

			if rec.Code != http.StatusCreated {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
			}

			var got domain.SOSResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if got.Notification.Status != outcome.Status {
				t.Errorf("notification.status = %q, want %q", got.Notification.Status, outcome.Status)
			}
		})
	}
}

func TestSafetySOS_RecordFailureIs500(t *testing.T) {
	t.Parallel()
	h, pipeline := newHandler(t)

	userID := uuid.New()
	pipeline.EXPECT().
		SubmitSOS(gomock.Any(), userID, gomock.Any()).
		Return(domain.SOSResponse{}, fmt.Errorf("service.SubmitSOS: %w", e.ErrInternal))

	rec := httptest.NewRecorder()
	h.SafetySOS(rec, authedRequest(t, userID, http.MethodPost, "/api/v1/safety/sos",
		`{"latitude": 1, "longitude": 2}`))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

package public

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"safesignal/internal/domain"
	"safesignal/internal/middleware"

	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type SafetyPipeline interface {
	Assess(ctx context.Context, userID uuid.UUID, req domain.AssessRequest) (domain.AssessResponse, error)
	SubmitSOS(ctx context.Context, userID uuid.UUID, req domain.SOSRequest) (domain.SOSResponse, error)
}

type Handler struct {
	logger *slog.Logger
	Safety SafetyPipeline
}

func NewHandler(logger *slog.Logger, safety SafetyPipeline) *Handler {
	return &Handler{
		logger: logger,
		Safety: safety,
	}
}

func (h *Handler) SafetyAssess(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	var req domain.AssessRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.Safety.Assess(r.Context(), userID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) SafetySOS(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	var req domain.SOSRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.log(r).Info("sos submitted",
		slog.String("user_id", userID.String()),
		slog.String("mode", string(req.Mode)))

	resp, err := h.Safety.SubmitSOS(r.Context(), userID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, resp)
}

// decode rejects unknown fields and trailing garbage, like every other
// inbound surface here.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, target any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	return true
}

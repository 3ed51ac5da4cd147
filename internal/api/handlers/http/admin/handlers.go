package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"safesignal/internal/domain"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ZoneAdmin interface {
	Create(ctx context.Context, req domain.CreateZoneRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.RiskZone, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.RiskZone, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateZoneRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.EventStats, error)
}

type Handler struct {
	logger *slog.Logger
	Zones  ZoneAdmin
	Stats  StatsGetter
}

func NewHandler(logger *slog.Logger, zones ZoneAdmin, stats StatsGetter) *Handler {
	return &Handler{
		logger: logger,
		Zones:  zones,
		Stats:  stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminZoneCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	l.Info("creating risk zone",
		slog.String("name", req.Name),
		slog.Float64("lat", req.Latitude),
		slog.Float64("lng", req.Longitude),
		slog.Float64("radius_m", req.RadiusMeters),
		slog.String("risk_level", string(req.Level)),
	)

	id, err := h.Zones.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) AdminZoneList(w http.ResponseWriter, r *http.Request) {
	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)

	zones, total, err := h.Zones.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]domain.RiskZone, 0, len(zones))
	for _, z := range zones {
		out = append(out, *z)
	}

	h.writeJSON(w, http.StatusOK, domain.ListZonesResponse{
		Zones: out,
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

func (h *Handler) AdminZoneGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.zoneID(w, r)
	if !ok {
		return
	}

	zone, err := h.Zones.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, zone)
}

func (h *Handler) AdminZoneUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.zoneID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.Zones.Update(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminZoneDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.zoneID(w, r)
	if !ok {
		return
	}

	if err := h.Zones.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	req := domain.StatsRequest{
		Minutes: parseInt(r.URL.Query().Get("minutes"), 60),
	}

	stats, err := h.Stats.GetStats(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) zoneID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid zone id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

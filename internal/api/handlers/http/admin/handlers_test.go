package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"safesignal/internal/api/handlers/http/admin"
	mock_admin "safesignal/internal/api/handlers/http/admin/mocks"
	"safesignal/internal/domain"
	"safesignal/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

type fixture struct {
	router *chi.Mux
	zones  *mock_admin.MockZoneAdmin
	stats  *mock_admin.MockStatsGetter
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	zones := mock_admin.NewMockZoneAdmin(ctrl)
	stats := mock_admin.NewMockStatsGetter(ctrl)
	h := admin.NewHandler(newTestLogger(), zones, stats)

	r := chi.NewRouter()
	r.Post("/zones", h.AdminZoneCreate)
	r.Get("/zones", h.AdminZoneList)
	r.Get("/zones/{id}", h.AdminZoneGet)
	r.Put("/zones/{id}", h.AdminZoneUpdate)
	r.Delete("/zones/{id}", h.AdminZoneDelete)
	r.Get("/stats", h.AdminStats)

	return fixture{router: r, zones: zones, stats: stats}
}

func (f fixture) do(method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(method, target, bytes.NewBufferString(body)))
	return rec
}

func TestAdminZoneCreate(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	id := uuid.New()
	f.zones.EXPECT().
		Create(gomock.Any(), domain.CreateZoneRequest{
			Name:         "Market alley",
			Latitude:     6.93,
			Longitude:    79.85,
			RadiusMeters: 250,
			Level:        domain.RiskCaution,
		}).
		Return(id, nil)

	rec := f.do(http.MethodPost, "/zones",
		`{"name":"Market alley","latitude":6.93,"longitude":79.85,"radius_m":250,"risk_level":"caution"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["id"] != id.String() {
		t.Errorf("id = %s, want %s", resp["id"], id)
	}
}

func TestAdminZoneCreate_InvalidInputIs400(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.zones.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, fmt.Errorf("service.CreateZone: %w", e.ErrInvalidInput))

	rec := f.do(http.MethodPost, "/zones",
		`{"name":"","latitude":6.93,"longitude":79.85,"radius_m":-5,"risk_level":"caution"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAdminZoneList_Pagination(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	zones := []*domain.RiskZone{
		{ID: uuid.New(), Name: "Harbor", Level: domain.RiskDanger, CreatedAt: time.Now().UTC()},
		{ID: uuid.New(), Name: "Station", Level: domain.RiskCaution, CreatedAt: time.Now().UTC()},
	}
	f.zones.EXPECT().List(gomock.Any(), 2, 10).Return(zones, int64(12), nil)

	rec := f.do(http.MethodGet, "/zones?page=2&limit=10", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp domain.ListZonesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Zones) != 2 || resp.Total != 12 || resp.Page != 2 || resp.Limit != 10 {
		t.Errorf("unexpected page envelope: %+v", resp)
	}
}

func TestAdminZoneGet_NotFound(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	id := uuid.New()
	f.zones.EXPECT().
		Get(gomock.Any(), id).
		Return(nil, fmt.Errorf("service.GetZone: %w", e.ErrNotFound))

	rec := f.do(http.MethodGet, "/zones/"+id.String(), "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestAdminZoneGet_BadID(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/zones/not-a-uuid", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAdminZoneUpdate_NoContent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	id := uuid.New()
	f.zones.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req domain.UpdateZoneRequest) error {
			if req.Active == nil || *req.Active {
				t.Errorf("active = %v, want false", req.Active)
			}
			if req.Name != nil {
				t.Errorf("name should stay unset on a partial update, got %q", *req.Name)
			}
			return nil
		})

	rec := f.do(http.MethodPut, "/zones/"+id.String(), `{"active":false}`)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestAdminZoneDelete_NoContent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	id := uuid.New()
	f.zones.EXPECT().Delete(gomock.Any(), id).Return(nil)

	rec := f.do(http.MethodDelete, "/zones/"+id.String(), "")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestAdminStats(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.stats.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 30}).
		Return(&domain.EventStats{
			UserCount:  3,
			EventCount: 7,
			ByRiskLevel: map[string]int64{
				"danger": 2,
				"safe":   5,
			},
		}, nil)

	rec := f.do(http.MethodGet, "/stats?minutes=30", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got domain.EventStats
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.EventCount != 7 || got.ByRiskLevel["danger"] != 2 {
		t.Errorf("unexpected stats: %+v", got)
	}
}

func TestAdminStats_DefaultWindow(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.stats.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 60}).
		Return(&domain.EventStats{ByRiskLevel: map[string]int64{}}, nil)

	rec := f.do(http.MethodGet, "/stats", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

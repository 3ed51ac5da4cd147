package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	internalredis "safesignal/internal/redis"

	"safesignal/internal/domain"
	"safesignal/pkg/e"
)

func newTestRedis(t *testing.T) (*internalredis.Redis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &internalredis.Redis{Client: client}, mr
}

func TestZoneCache_MissThenHit(t *testing.T) {
	t.Parallel()

	r, _ := newTestRedis(t)
	cache := internalredis.NewZoneCache(r)
	ctx := context.Background()

	if _, ok, err := cache.Get(ctx); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v, want miss without error", ok, err)
	}

	zones := []domain.RiskZone{{
		ID:           uuid.New(),
		Name:         "riverside",
		Center:       domain.Coordinate{Latitude: 1, Longitude: 2},
		RadiusMeters: 300,
		Level:        domain.RiskCaution,
		Active:       true,
	}}
	if err := cache.Set(ctx, zones, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := cache.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].ID != zones[0].ID || got[0].Level != domain.RiskCaution {
		t.Fatalf("cached zones mismatch: %+v", got)
	}
}

func TestZoneCache_EmptySnapshotIsAHit(t *testing.T) {
	t.Parallel()

	r, _ := newTestRedis(t)
	cache := internalredis.NewZoneCache(r)
	ctx := context.Background()

	// An empty zone set is a valid snapshot and must be cached as one,
	// otherwise every request with no configured zones misses.
	if err := cache.Set(ctx, []domain.RiskZone{}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := cache.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v, want hit", ok, err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d zones, want 0", len(got))
	}
}

func TestZoneCache_Invalidate(t *testing.T) {
	t.Parallel()

	r, _ := newTestRedis(t)
	cache := internalredis.NewZoneCache(r)
	ctx := context.Background()

	if err := cache.Set(ctx, []domain.RiskZone{}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok, _ := cache.Get(ctx); ok {
		t.Fatal("cache must miss after invalidation")
	}
}

func TestAlertQueue_RoundTrip(t *testing.T) {
	t.Parallel()

	r, _ := newTestRedis(t)
	q := internalredis.NewAlertQueue(r.Client, "alerts:test")
	ctx := context.Background()

	payload := domain.ContactAlertPayload{
		UserID:    uuid.New(),
		Latitude:  55.75,
		Longitude: 37.61,
		RiskLevel: domain.RiskDanger,
		ZoneIDs:   []uuid.UUID{uuid.New()},
		Contacts:  []domain.EmergencyContact{{Name: "Dana", Phone: "+100"}},
		CheckedAt: time.Now().UTC().Truncate(time.Second),
	}

	if err := q.Enqueue(ctx, payload); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	got, err := q.BRPop(ctx, time.Second)
	if err != nil {
		t.Fatalf("brpop: %v", err)
	}
	if got.UserID != payload.UserID || got.RiskLevel != payload.RiskLevel {
		t.Fatalf("payload mismatch: %+v", got)
	}
	if len(got.Contacts) != 1 || got.Contacts[0].Phone != "+100" {
		t.Fatalf("contacts mismatch: %+v", got.Contacts)
	}
}

func TestAlertQueue_EmptyReturnsSentinel(t *testing.T) {
	t.Parallel()

	r, _ := newTestRedis(t)
	q := internalredis.NewAlertQueue(r.Client, "alerts:test")

	_, err := q.BRPop(context.Background(), 50*time.Millisecond)
	if !errors.Is(err, e.ErrQueueEmpty) {
		t.Fatalf("err = %v, want ErrQueueEmpty", err)
	}
}

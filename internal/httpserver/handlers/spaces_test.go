package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BillJamesM/UdubHacks/internal/catalog"
	"github.com/BillJamesM/UdubHacks/internal/domain"
	"github.com/BillJamesM/UdubHacks/internal/httpserver/deps"
	"github.com/BillJamesM/UdubHacks/internal/ledger"
	"github.com/BillJamesM/UdubHacks/internal/logger"
	"github.com/BillJamesM/UdubHacks/internal/reservation"
)

type nopStore struct{}

func (nopStore) Save(_ context.Context, _ []domain.Booking) error { return nil }
func (nopStore) Load(_ context.Context) ([]domain.Booking, error) { return nil, nil }

func newTestDeps(t *testing.T) deps.Deps {
	t.Helper()

	log := logger.New("error", false)
	cat := catalog.New()
	cat.Replace([]*domain.Space{
		{
			ID:         "CP-324A",
			Name:       "CP-324A",
			Building:   "Main Library",
			Capacity:   4,
			Features:   []string{"whiteboard"},
			NoiseLevel: domain.NoiseCollaborative,
		},
		{
			ID:         "lib-commons",
			Name:       "Library Commons",
			Building:   "Main Library",
			Capacity:   50,
			Features:   []string{"power outlets"},
			NoiseLevel: domain.NoiseQuiet,
		},
	})
	led := ledger.New(nopStore{}, log)

	now := func() time.Time { return time.Date(2025, 5, 17, 9, 0, 0, 0, time.UTC) }
	return deps.Deps{
		Logger:       log,
		Reservations: reservation.New(cat, led, log, now),
	}
}

func getSpaces(t *testing.T, d deps.Deps, target string) (int, spacesResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	Spaces(d)(rec, req)

	var resp spacesResponse
	if rec.Code == http.StatusOK {
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return rec.Code, resp
}

func TestSpacesNoiseFilters(t *testing.T) {
	d := newTestDeps(t)

	tests := []struct {
		name      string
		target    string
		wantCount int
	}{
		{"unfiltered", "/api/spaces", 2},
		{"noise any is unconstrained", "/api/spaces?noise=any", 2},
		{"noise quiet", "/api/spaces?noise=quiet", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := getSpaces(t, d, tt.target)
			if code != http.StatusOK {
				t.Fatalf("status = %d, want 200", code)
			}
			if resp.Count != tt.wantCount {
				t.Errorf("count = %d, want %d", resp.Count, tt.wantCount)
			}
		})
	}

	_, resp := getSpaces(t, d, "/api/spaces?noise=any")
	if resp.Filter.NoiseLevel != "" {
		t.Errorf("noise=any must not constrain the filter, got %q", resp.Filter.NoiseLevel)
	}
}

func TestSpacesFreeText(t *testing.T) {
	d := newTestDeps(t)

	code, resp := getSpaces(t, d, "/api/spaces?q=somewhere+quiet+to+study")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if resp.Filter.NoiseLevel != domain.NoiseQuiet {
		t.Errorf("extracted noise = %q, want %q", resp.Filter.NoiseLevel, domain.NoiseQuiet)
	}
	if resp.Count != 1 || resp.Spaces[0].ID != "lib-commons" {
		t.Errorf("results = %+v, want only lib-commons", resp.Spaces)
	}
}

func TestSpacesBadMinCapacity(t *testing.T) {
	d := newTestDeps(t)

	for _, target := range []string{
		"/api/spaces?min_capacity=abc",
		"/api/spaces?min_capacity=-1",
	} {
		code, _ := getSpaces(t, d, target)
		if code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, code)
		}
	}
}

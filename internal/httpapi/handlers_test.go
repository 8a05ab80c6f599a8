package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"revos/internal/analytics"
	"revos/internal/config"
	"revos/internal/dataset"
	"revos/internal/repository"
)

func newTestServer(t *testing.T) (*Server, *dataset.Store) {
	t.Helper()

	repo, err := repository.NewJSON(filepath.Join(t.TempDir(), "analytics-db.json"))
	if err != nil {
		t.Fatalf("NewJSON() error = %v", err)
	}
	if err := repo.Save(analytics.SampleDocument()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	store := dataset.NewStore(analytics.SampleTopProblems())
	return New(&config.AppConfig{Port: 4000}, repo, store), store
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestDashboardReturnsWholeDocument(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analytics/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}

	var doc analytics.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(doc.Trend) != 20 || len(doc.TopProblems) != 10 {
		t.Errorf("document sections: trend=%d topProblems=%d", len(doc.Trend), len(doc.TopProblems))
	}
	if len(doc.ChannelMix) == 0 || len(doc.Scatter) == 0 || len(doc.RatePlans) == 0 {
		t.Errorf("document missing sections")
	}
}

func TestDashboardReflectsLiveStore(t *testing.T) {
	srv, store := newTestServer(t)
	store.ReplaceAll([]analytics.TopProblem{
		{Channel: "Expedia", RatePlan: "BAR", Revenue: 42, CancelRate: 0.1},
	})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analytics/dashboard", nil))

	var doc analytics.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(doc.TopProblems) != 1 || doc.TopProblems[0].Channel != "Expedia" {
		t.Errorf("topProblems did not reflect store: %+v", doc.TopProblems)
	}
}

func TestDashboardMissingDatabase(t *testing.T) {
	repo, err := repository.NewJSON(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("NewJSON() error = %v", err)
	}
	srv := New(&config.AppConfig{Port: 4000}, repo, dataset.NewStore(nil))

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analytics/dashboard", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

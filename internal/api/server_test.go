package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/latticeplan/syclop/pkg/kinematic"
)

func testServer() *Server {
	return New(log.New(io.Discard), nil)
}

func TestHealthz_ReturnsOK(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestCreatePlan_OpenFieldSolvesQuickly(t *testing.T) {
	srv := testServer()
	body, _ := json.Marshal(createPlanRequest{Scenario: "open-field", Seed: 1, Timeout: "2s"})
	req := httptest.NewRequest(http.MethodPost, "/plans/", bytes.NewReader(body))
	w := httptest.NewRecorder()

	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body = %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var resp createPlanResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RunID != "" {
		t.Errorf("RunID = %q, want empty (no recorder configured)", resp.RunID)
	}
	if resp.NumRegions == 0 {
		t.Error("NumRegions = 0, want at least one explored region")
	}
}

func TestCreatePlan_UnknownScenarioReturns400(t *testing.T) {
	srv := testServer()
	body, _ := json.Marshal(createPlanRequest{Scenario: "does-not-exist"})
	req := httptest.NewRequest(http.MethodPost, "/plans/", bytes.NewReader(body))
	w := httptest.NewRecorder()

	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestCreatePlan_InvalidTimeoutReturns400(t *testing.T) {
	srv := testServer()
	body, _ := json.Marshal(createPlanRequest{Scenario: "open-field", Timeout: "not-a-duration"})
	req := httptest.NewRequest(http.MethodPost, "/plans/", bytes.NewReader(body))
	w := httptest.NewRecorder()

	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetPlan_WithoutRecorderReturns404(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodGet, "/plans/some-id", nil)
	w := httptest.NewRecorder()

	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestSingleStateSource_YieldsOnceThenExhausts(t *testing.T) {
	src := newSingleStateSource(kinematic.Point{1, 2})
	if _, ok := src.NextStart(); !ok {
		t.Fatal("expected first NextStart to succeed")
	}
	if _, ok := src.NextStart(); ok {
		t.Error("expected second NextStart to report exhaustion")
	}
}

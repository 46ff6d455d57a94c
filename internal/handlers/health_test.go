package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestHealthCheck_Healthy(t *testing.T) {
	h, _ := newTestHandlers(t)
	router := newTestRouter(h)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp HealthResponse
	decodeJSON(t, w, &resp)

	if resp.Status != statusHealthy {
		t.Errorf("Status = %q, want %q", resp.Status, statusHealthy)
	}
	if !resp.Ready {
		t.Error("Ready = false, want true")
	}
	if resp.MediaRoot == "" {
		t.Error("MediaRoot is empty")
	}
	if resp.GoVersion == "" {
		t.Error("GoVersion is empty")
	}
	if resp.NumCPU < 1 {
		t.Errorf("NumCPU = %d, want >= 1", resp.NumCPU)
	}
	if resp.Uptime == "" {
		t.Error("Uptime is empty")
	}
}

func TestHealthCheck_MediaRootGone(t *testing.T) {
	h, root := newTestHandlers(t)

	// Simulate the media mount disappearing. The scanner root was
	// created by t.TempDir so the cleanup tolerates this.
	if err := os.RemoveAll(root); err != nil {
		t.Fatalf("Failed to remove media root: %v", err)
	}

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	h.HealthCheck(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}

	var resp HealthResponse
	decodeJSON(t, w, &resp)
	if resp.Status != statusDegraded {
		t.Errorf("Status = %q, want %q", resp.Status, statusDegraded)
	}
	if resp.Ready {
		t.Error("Ready = true, want false")
	}
}

func TestLivenessCheck(t *testing.T) {
	h, _ := newTestHandlers(t)
	router := newTestRouter(h)

	req := httptest.NewRequest("GET", "/livez", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]string
	decodeJSON(t, w, &resp)
	if resp["status"] != "alive" {
		t.Errorf("status = %q, want %q", resp["status"], "alive")
	}
}

func TestLivenessCheck_Head(t *testing.T) {
	h, _ := newTestHandlers(t)
	router := newTestRouter(h)

	req := httptest.NewRequest("HEAD", "/livez", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.Len() != 0 {
		t.Errorf("HEAD body length = %d, want 0", w.Body.Len())
	}
}

func TestReadinessCheck(t *testing.T) {
	h, root := newTestHandlers(t)
	router := newTestRouter(h)

	req := httptest.NewRequest("GET", "/readyz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]string
	decodeJSON(t, w, &resp)
	if resp["status"] != "ready" {
		t.Errorf("status = %q, want %q", resp["status"], "ready")
	}

	if err := os.RemoveAll(root); err != nil {
		t.Fatalf("Failed to remove media root: %v", err)
	}

	req = httptest.NewRequest("GET", "/readyz", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
	decodeJSON(t, w, &resp)
	if resp["status"] != "not_ready" {
		t.Errorf("status = %q, want %q", resp["status"], "not_ready")
	}
}

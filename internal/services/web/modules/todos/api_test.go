package todos

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	apperrors "github.com/louisbranch/todolist/internal/services/web/platform/errors"
)

func mountAPI(t *testing.T, gateway TodoGateway, userID int, origins []string) http.Handler {
	t.Helper()
	mount, err := NewAPIWithGateway(gateway, testBase(userID), origins).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func TestAPIListReturnsVisibleTodos(t *testing.T) {
	t.Parallel()

	h := mountAPI(t, newFakeGateway(sampleTodos()...), 7, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/todos?filter=active", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var payload listResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got := ids(payload.Todos); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Fatalf("todos = %v", got)
	}
	if payload.Filter != "active" || payload.ActiveCount != 2 || payload.CompletedCount != 1 || payload.Total != 3 {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestAPIListErrorUsesStatusAndMessage(t *testing.T) {
	t.Parallel()

	gateway := newFakeGateway()
	gateway.listErr = apperrors.E(apperrors.KindUnavailable, "down")
	h := mountAPI(t, gateway, 7, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/todos", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	var payload map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["error"] != "Unable to load todos" {
		t.Fatalf("error = %q", payload["error"])
	}
}

func TestAPIListWithoutUserIsUnauthorized(t *testing.T) {
	t.Parallel()

	h := mountAPI(t, newFakeGateway(), 0, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/todos", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestAPIRejectsOtherMethods(t *testing.T) {
	t.Parallel()

	h := mountAPI(t, newFakeGateway(), 7, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/todos", nil))

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != http.MethodGet {
		t.Fatalf("Allow = %q", got)
	}
}

func TestAPICORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantHeader string
	}{
		{name: "allowed origin", origins: []string{" https://app.example.com "}, origin: "https://app.example.com", wantHeader: "https://app.example.com"},
		{name: "other origin", origins: []string{"https://app.example.com"}, origin: "https://evil.example.com"},
		{name: "no origins configured", origin: "https://app.example.com"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := mountAPI(t, newFakeGateway(sampleTodos()...), 7, tc.origins)
			req := httptest.NewRequest(http.MethodOptions, "/api/todos", nil)
			req.Header.Set("Origin", tc.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tc.wantHeader {
				t.Fatalf("Access-Control-Allow-Origin = %q, want %q", got, tc.wantHeader)
			}
		})
	}
}

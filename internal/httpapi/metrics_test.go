package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestItoa(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"}, {200, "200"}, {404, "404"}, {500, "500"}, {1, "1"},
	}
	for _, c := range cases {
		if got := itoa(c.in); got != c.want {
			t.Fatalf("itoa(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStatusRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: rec, status: 200}
	sr.WriteHeader(http.StatusTeapot)
	if sr.status != http.StatusTeapot || rec.Code != http.StatusTeapot {
		t.Fatalf("status not captured: %d/%d", sr.status, rec.Code)
	}
}

func TestRoutePatternOrPathFallback(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/models", nil)
	if got := routePatternOrPath(r); got != "/v1/models" {
		t.Fatalf("got %q", got)
	}
}

func TestMetricsMiddlewarePassesThrough(t *testing.T) {
	called := false
	h := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if !called || w.Code != http.StatusNoContent {
		t.Fatalf("middleware broke handler: called=%v code=%d", called, w.Code)
	}
}

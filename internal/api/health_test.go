package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	okPing := func(context.Context) error { return nil }
	badPing := func(context.Context) error { return assertErr{} }

	cases := []struct {
		name       string
		ping       func(context.Context) error
		path       string
		want       int
		wantStatus string
	}{
		{name: "healthz ok", ping: badPing, path: "/healthz", want: 200, wantStatus: "ok"},
		{name: "readyz ok", ping: okPing, path: "/readyz", want: 200, wantStatus: "ready"},
		{name: "readyz without dependency", ping: nil, path: "/readyz", want: 200, wantStatus: "ready"},
		{name: "readyz degraded", ping: badPing, path: "/readyz", want: 503, wantStatus: "degraded"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			NewHealthHandler("postgres", tc.ping).Register(r)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body["status"] != tc.wantStatus {
				t.Fatalf("status %q, want %q", body["status"], tc.wantStatus)
			}
		})
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "err" }

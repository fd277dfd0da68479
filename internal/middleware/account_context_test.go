package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAccountContext(t *testing.T) {
	var (
		got string
		ok  bool
	)
	h := AccountContext()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = GetAccount(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(AccountHeader, "  acc-1 ")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if !ok || got != "acc-1" {
		t.Fatalf("expected acc-1, got %q ok=%v", got, ok)
	}

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if ok {
		t.Fatalf("expected no account without header, got %q", got)
	}
}

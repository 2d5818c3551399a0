package httpapi

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
)

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(&stubSource{})

	resp := get(t, router, "/repos/octocat/Hello-World/issues")

	if resp.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.Code)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(&stubSource{})

	req := httptest.NewRequest(http.MethodPost, "/repos/octocat/Hello-World/pulls", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", recorder.Code)
	}
}

func TestRouter_GeneratesRequestID(t *testing.T) {
	router := newTestRouter(&stubSource{body: []byte(`[]`)})

	resp := get(t, router, "/repos/octocat/Hello-World/pulls")

	id := resp.Header().Get(requestIDHeader)
	if id == "" {
		t.Fatal("response is missing a request id")
	}
	if !regexp.MustCompile(`^[0-9a-f-]{36}$`).MatchString(id) {
		t.Errorf("request id = %q, want a UUID", id)
	}
}

func TestRouter_EchoesCallerRequestID(t *testing.T) {
	router := newTestRouter(&stubSource{body: []byte(`[]`)})

	req := httptest.NewRequest(http.MethodGet, "/repos/octocat/Hello-World/pulls", nil)
	req.Header.Set(requestIDHeader, "caller-supplied-id")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if got := recorder.Header().Get(requestIDHeader); got != "caller-supplied-id" {
		t.Errorf("request id = %q, want the caller's id echoed back", got)
	}
}

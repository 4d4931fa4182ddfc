package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func probe(t *testing.T, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestChecker_Lifecycle(t *testing.T) {
	c := NewChecker()
	assert.Equal(t, "starting", c.State())

	c.SetReady()
	assert.Equal(t, "ready", c.State())

	c.SetDraining()
	assert.Equal(t, "draining", c.State())
}

func TestLivenessHandler_AlwaysOK(t *testing.T) {
	c := NewChecker()
	assert.Equal(t, http.StatusOK, probe(t, c.LivenessHandler()).Code)

	c.SetDraining()
	assert.Equal(t, http.StatusOK, probe(t, c.LivenessHandler()).Code)
}

func TestReadinessHandler(t *testing.T) {
	c := NewChecker()

	rec := probe(t, c.ReadinessHandler())
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"starting"}`, rec.Body.String())

	c.SetReady()
	rec = probe(t, c.ReadinessHandler())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())

	c.SetDraining()
	rec = probe(t, c.ReadinessHandler())
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRegister(t *testing.T) {
	c := NewChecker()
	c.SetReady()

	mux := http.NewServeMux()
	c.Register(mux)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, err := http.Get(srv.URL + path)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	}
}

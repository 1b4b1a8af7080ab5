package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guidesmith/guidesmith/internal/guide"
	"github.com/guidesmith/guidesmith/pkg/logger"
	"github.com/guidesmith/guidesmith/pkg/metrics"
)

type fakePipeline struct {
	lastQuestion string
	lastSource   string
}

func (f *fakePipeline) Generate(_ context.Context, question, sourceContains string) guide.Guide {
	f.lastQuestion = question
	f.lastSource = sourceContains
	g := guide.Guide{
		Title: "How to test handlers",
		Steps: []guide.Step{{Number: 1, Title: "step", Action: "act"}},
	}
	g.Normalize()
	return g
}

func newTestServer(t *testing.T) (*Server, *fakePipeline) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.StaticDir = t.TempDir()
	p := &fakePipeline{}
	log := logger.NewLoggerClient(logger.Config{Level: "error", ServiceName: "test"})
	return NewServer(cfg, p, metrics.NewMetrics(metrics.NewConfig()), log), p
}

func TestHowtoJSON(t *testing.T) {
	s, p := newTestServer(t)

	body := strings.NewReader(`{"question": "How do I test?", "source": "manual"}`)
	req := httptest.NewRequest(http.MethodPost, "/howto/json", body)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "How do I test?", p.lastQuestion)
	assert.Equal(t, "manual", p.lastSource)

	var g guide.Guide
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.Equal(t, "How to test handlers", g.Title)
	require.Len(t, g.Steps, 1)
}

func TestHowtoJSONEmptyBodyUsesPlaceholder(t *testing.T) {
	s, p := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/howto/json", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultQuestion, p.lastQuestion)
}

func TestHowtoJSONMalformedBody(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/howto/json", strings.NewReader(`{"question":`))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok": true}`, rec.Body.String())
}

func TestStaticImages(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StaticDir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfg.StaticDir, "abcd.png"), []byte("png-bytes"), 0o644))

	log := logger.NewLoggerClient(logger.Config{Level: "error", ServiceName: "test"})
	s := NewServer(cfg, &fakePipeline{}, metrics.NewMetrics(metrics.NewConfig()), log)

	req := httptest.NewRequest(http.MethodGet, "/static/images/abcd.png", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())
}

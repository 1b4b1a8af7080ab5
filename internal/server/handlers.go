package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/guidesmith/guidesmith/internal/guide"
)

// defaultQuestion stands in when a request carries no question, so the
// endpoint still demonstrates the full document shape.
const defaultQuestion = "placeholder"

// GuideGenerator is the pipeline surface the handlers depend on.
type GuideGenerator interface {
	Generate(ctx context.Context, question, sourceContains string) guide.Guide
}

// howtoRequest is the body of POST /howto/json.
type howtoRequest struct {
	Question string `json:"question"`
	Source   string `json:"source"`
}

// handleHowtoJSON generates a guide for the posted question. The pipeline
// never fails, so the endpoint always answers 200 with a complete guide;
// only an unreadable body is rejected.
func (s *Server) handleHowtoJSON(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer s.metrics.RecordRequestDuration(start, "/howto/json")

	var req howtoRequest
	// An empty body is allowed and behaves like {}.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.log.Warn("rejecting malformed howto request", err, nil)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if req.Question == "" {
		req.Question = defaultQuestion
	}

	s.log.Info("generating guide", nil, map[string]interface{}{
		"question": req.Question,
		"source":   req.Source,
	})

	g := s.pipeline.Generate(r.Context(), req.Question, req.Source)
	writeJSON(w, http.StatusOK, g)
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

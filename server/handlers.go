package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/batch"
	"github.com/katalvlaran/seqalign/render"
)

// AlignRequest is the body of POST /v1/align. Scoring fields left out fall
// back to the server defaults.
type AlignRequest struct {
	A string `json:"a"`
	B string `json:"b"`
	batch.Scoring
	// Matrix asks for the full score matrix in the response.
	Matrix bool `json:"matrix,omitempty"`
}

// AlignResponse is the body returned by POST /v1/align.
type AlignResponse struct {
	RequestID string `json:"request_id"`
	render.Report
	Matrix [][]int64 `json:"matrix,omitempty"`
}

// BatchRequest is the body of POST /v1/batch.
type BatchRequest struct {
	Scoring *batch.Scoring `json:"scoring,omitempty"`
	Pairs   []batch.Pair   `json:"pairs"`
}

// BatchResponse is the body returned by POST /v1/batch; Results follow the
// order of the request pairs.
type BatchResponse struct {
	RequestID string          `json:"request_id"`
	Config    align.Config    `json:"config"`
	Results   []render.Report `json:"results"`
}

type errorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

func (s *Server) handleAlign(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if !s.decode(w, r, &req) {
		return
	}
	cfg, err := req.Scoring.Apply(s.cfg.Scoring)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	la, lb := utf8.RuneCountInString(req.A), utf8.RuneCountInString(req.B)
	if limit := s.cfg.MaxSequenceLength; limit > 0 && (la > limit || lb > limit) {
		s.writeError(w, r, http.StatusRequestEntityTooLarge,
			fmt.Errorf("lengths %d/%d, limit %d: %w", la, lb, limit, ErrSequenceTooLong))
		return
	}

	start := time.Now()
	res, sm, err := align.AlignWithMatrix(req.A, req.B, cfg)
	s.metrics.Observe(string(cfg.Mode), (la+1)*(lb+1), res.Score, time.Since(start), err)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	resp := AlignResponse{
		RequestID: RequestID(r.Context()),
		Report:    render.NewReport(cfg, res),
	}
	if req.Matrix {
		resp.Matrix = sm.Cells()
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !s.decode(w, r, &req) {
		return
	}
	if len(req.Pairs) == 0 {
		s.writeError(w, r, http.StatusBadRequest, batch.ErrNoPairs)
		return
	}
	cfg, err := req.Scoring.Apply(s.cfg.Scoring)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	for k := range req.Pairs {
		if req.Pairs[k].ID == "" {
			req.Pairs[k].ID = uuid.NewString()
		}
	}

	observe := func(o batch.Outcome) {
		cells := (utf8.RuneCountInString(o.Pair.A) + 1) * (utf8.RuneCountInString(o.Pair.B) + 1)
		s.metrics.Observe(string(cfg.Mode), cells, o.Result.Score, o.Duration, o.Err)
	}
	outcomes, err := batch.Run(r.Context(), req.Pairs, cfg,
		batch.WithParallel(s.cfg.Parallel),
		batch.WithMaxLength(s.cfg.MaxSequenceLength),
		batch.WithObserver(observe),
	)
	if err != nil {
		s.logger.Warn("batch interrupted", "request_id", RequestID(r.Context()), "error", err)
		s.writeError(w, r, http.StatusServiceUnavailable, err)
		return
	}

	resp := BatchResponse{
		RequestID: RequestID(r.Context()),
		Config:    cfg,
		Results:   make([]render.Report, len(outcomes)),
	}
	for k, o := range outcomes {
		resp.Results[k] = render.OutcomeReport(cfg, o)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads a JSON body into v, answering 400/413 itself on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.writeError(w, r, http.StatusRequestEntityTooLarge, err)
			return false
		}
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return false
	}

	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.Debug("request rejected", "request_id", RequestID(r.Context()), "status", status, "error", err)
	s.writeJSON(w, status, errorResponse{RequestID: RequestID(r.Context()), Error: err.Error()})
}

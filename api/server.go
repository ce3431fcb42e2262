// Package api - Thin, deterministic HTTP layer.
// The API is only responsible for input ingestion, evaluator orchestration
// and output serialization; it performs no unity-check logic itself.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"unity-check/core/evaluator"
	"unity-check/core/output"
	"unity-check/core/types"
	"unity-check/internal/errors"
	"unity-check/internal/logging"
)

// Server is the API server
type Server struct {
	mux       *http.ServeMux
	evaluator *evaluator.Evaluator
	version   string
}

// NewServer creates a new API server
func NewServer(version string, eval *evaluator.Evaluator) *Server {
	s := &Server{
		mux:       http.NewServeMux(),
		evaluator: eval,
		version:   version,
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /evaluate", s.handleEvaluate)
	s.mux.HandleFunc("GET /norms", s.handleNorms)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleEvaluate handles POST /evaluate
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	requestID := generateRequestID()

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	strategy, err := evaluator.ParseStrategy(req.Strategy)
	if err != nil {
		s.writeDomainError(w, requestID, err)
		return
	}

	results, err := s.evaluator.EvaluateBatch(ctx, req.Cases, strategy)
	if err != nil {
		s.writeDomainError(w, requestID, err)
		return
	}

	resp := &EvaluateResponse{
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Results:   mapResults(results),
		Summary:   types.Summarize(results),
		Metadata: &ResponseMetadata{
			Strategy:      string(strategy),
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}

	logging.Debug("evaluate request served",
		zap.String("request_id", requestID),
		zap.Int("cases", len(req.Cases)),
		zap.String("strategy", string(strategy)))

	s.writeJSON(w, resp, http.StatusOK)
}

// handleNorms handles GET /norms
func (s *Server) handleNorms(w http.ResponseWriter, r *http.Request) {
	entries := make([]NormEntry, 0, 3)
	for _, n := range types.Norms() {
		max, _ := n.MaxMass()
		entries = append(entries, NormEntry{Norm: n, MaxMass: max})
	}
	s.writeJSON(w, map[string]interface{}{"norms": entries}, http.StatusOK)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"version": s.version}, http.StatusOK)
}

// mapResults converts evaluator results to response payloads
func mapResults(results []*types.EvaluationResult) []CaseResult {
	mapped := make([]CaseResult, 0, len(results))
	for _, r := range results {
		cr := CaseResult{
			Name:               r.Name,
			Volume:             r.Case.Volume,
			Density:            r.Case.Density,
			Norm:               r.Case.Norm,
			Mass:               r.Mass,
			MaxMass:            r.MaxMass,
			UtilizationPercent: r.UtilizationPercent,
			Status:             r.Status,
		}
		// legend scale caps at 100
		value := int(r.UtilizationPercent.IntPart())
		if value > 100 {
			value = 100
		}
		if color, err := output.UtilizationColor(value); err == nil {
			cr.Color = color.Hex()
		}
		mapped = append(mapped, cr)
	}
	return mapped
}

// writeDomainError maps domain error types to HTTP status codes
func (s *Server) writeDomainError(w http.ResponseWriter, requestID string, err error) {
	errType := errors.TypeOf(err)
	status := http.StatusInternalServerError
	switch errType {
	case errors.TypeInput, errors.TypeEmptyBatch, errors.TypeUnknownNorm, errors.TypeParsing:
		status = http.StatusBadRequest
	case errors.TypeExternalService:
		status = http.StatusBadGateway
	}
	s.writeError(w, requestID, string(errType), err.Error(), status)
}

func (s *Server) writeError(w http.ResponseWriter, requestID, errType, message string, status int) {
	logging.Warn("request failed",
		zap.String("request_id", requestID),
		zap.String("type", errType),
		zap.Int("status", status))

	resp := &ErrorResponse{
		RequestID: requestID,
		Error: ErrorBody{
			Type:    errType,
			Message: message,
		},
	}
	s.writeJSON(w, resp, status)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func generateRequestID() string {
	return "eval-" + uuid.NewString()
}

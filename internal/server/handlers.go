package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/investcalc/calculators/internal/domain"
	"github.com/investcalc/calculators/internal/output"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProducts(w http.ResponseWriter, _ *http.Request) {
	products := domain.Products()
	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, productResponse{Product: p, Mode: p.Mode(), Labels: p.Labels()})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	result, cached, ok := s.project(w, r, "")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newResultResponse(result, cached))
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	result, _, ok := s.project(w, r, "")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, output.BuildChart(result))
}

// productHandler serves a calculator endpoint whose product is fixed by the path.
func (s *Server) productHandler(product domain.Product) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, cached, ok := s.project(w, r, product)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, newResultResponse(result, cached))
	}
}

// project decodes the request and runs it through the service. It writes the
// error response itself and reports whether the caller should continue.
func (s *Server) project(w http.ResponseWriter, r *http.Request, product domain.Product) (*domain.ProjectionResult, bool, bool) {
	var req projectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, string(domain.CodeInvalidInput), "request body too large")
			return nil, false, false
		}
		writeError(w, http.StatusBadRequest, string(domain.CodeInvalidInput), "invalid request body")
		return nil, false, false
	}
	if product != "" {
		req.Product = string(product)
	}

	input, err := req.toInput()
	if err != nil {
		s.writeServiceError(w, err)
		return nil, false, false
	}
	result, cached, err := s.svc.Project(r.Context(), input)
	if err != nil {
		s.writeServiceError(w, err)
		return nil, false, false
	}
	return result, cached, true
}

func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	if ve, ok := domain.AsValidationError(err); ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{Code: string(ve.Code), Field: ve.Field, Message: ve.Message}})
		return
	}
	s.logger.Error("projection failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

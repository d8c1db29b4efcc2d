/*
handlers.go - HTTP API handlers for the payroll engine

PURPOSE:
  Exposes the payroll pipeline via REST. Handles HTTP request/response,
  JSON serialization, and delegates to the runner and run store.

REQUEST FLOW:
  POST /api/runs executes one full pipeline run synchronously (load,
  validate, calculate, sink), persists it, and returns the summary. The
  engine is a single atomic call per request; there is no partial or
  interleaved state to expose.

ERROR HANDLING:
  - 404: unknown run ID
  - 422: run aborted on a data-completeness/validation error
  - 500: everything else

SEE ALSO:
  - dto.go: Response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Runner *payroll.Runner
	Store  store.RunStore
	Log    logrus.FieldLogger
}

// NewHandler creates a new handler.
func NewHandler(runner *payroll.Runner, st store.RunStore, log logrus.FieldLogger) *Handler {
	return &Handler{Runner: runner, Store: st, Log: log}
}

// =============================================================================
// RUN HANDLERS
// =============================================================================

// TriggerRun executes one payroll run and persists it.
func (h *Handler) TriggerRun(w http.ResponseWriter, r *http.Request) {
	report, err := h.Runner.Run(r.Context())
	if err != nil {
		if payroll.IsFatal(err) {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		h.Log.WithError(err).Error("run failed")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	rec := store.RunRecord{
		ID:          report.ID,
		StartedAt:   report.StartedAt,
		CompletedAt: report.CompletedAt,
		ResultCount: len(report.Results),
	}
	if err := h.Store.SaveRun(r.Context(), rec, report.Results); err != nil {
		h.Log.WithError(err).Error("persisting run failed")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRunDTO(rec))
}

// ListRuns returns all persisted runs, most recent first.
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.Store.ListRuns(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]RunDTO, 0, len(runs))
	for _, rec := range runs {
		dtos = append(dtos, toRunDTO(rec))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetRun returns one run's summary.
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrRunNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, toRunDTO(*rec))
}

// GetResults returns one run's ordered results.
func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.Store.Results(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrRunNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]ResultDTO, 0, len(results))
	for _, result := range results {
		dtos = append(dtos, toResultDTO(result))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Health is a liveness check.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorDTO{Error: err.Error()})
}

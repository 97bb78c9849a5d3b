// Package api exposes the engine's query surface over HTTP: evaluate a
// candidate shift, audit a centre's week, and report weekly cost. The engine
// itself has no transport concerns; this is a thin JSON adapter over the
// services layer.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/conflicts"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/services"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/timeutil"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/db"
)

// API exposes the HTTP handlers.
type API struct {
	store  db.Store
	logger *zap.Logger
}

// New creates the API wrapper.
func New(store db.Store, logger *zap.Logger) *API {
	return &API{store: store, logger: logger}
}

// Routes builds the router.
func (a *API) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/shifts/evaluate", instrument("evaluate", a.handleEvaluate))
	r.Get("/api/roster/{centreID}/{weekOf}/conflicts", instrument("audit", a.handleAudit))
	r.Get("/api/roster/{centreID}/{weekOf}/cost", instrument("cost", a.handleCost))

	return r
}

func (a *API) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var candidate roster.Shift
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		a.writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := services.EvaluateShift(r.Context(), a.store, a.logger, candidate)
	if err != nil {
		a.writeError(w, statusFor(err), err)
		return
	}

	countConflicts(result.Conflicts)
	a.writeJSON(w, http.StatusOK, result)
}

func (a *API) handleAudit(w http.ResponseWriter, r *http.Request) {
	req := services.AuditRequest{
		CentreID: chi.URLParam(r, "centreID"),
		WeekOf:   chi.URLParam(r, "weekOf"),
	}

	report, err := services.AuditRoster(r.Context(), a.store, a.logger, req)
	if err != nil {
		a.writeError(w, statusFor(err), err)
		return
	}

	countConflicts(report.Conflicts)
	a.writeJSON(w, http.StatusOK, report)
}

func (a *API) handleCost(w http.ResponseWriter, r *http.Request) {
	req := services.CostReportRequest{
		CentreID: chi.URLParam(r, "centreID"),
		WeekOf:   chi.URLParam(r, "weekOf"),
	}

	report, err := services.CostReport(r.Context(), a.store, a.logger, req)
	if err != nil {
		a.writeError(w, statusFor(err), err)
		return
	}

	a.writeJSON(w, http.StatusOK, report)
}

// statusFor maps engine errors to HTTP codes: malformed or inconsistent input
// is the caller's fault, anything else is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, timeutil.ErrInvalidTimeFormat),
		errors.Is(err, roster.ErrInvalidDate),
		errors.Is(err, conflicts.ErrUnknownStaff),
		errors.Is(err, conflicts.ErrNegativeDuration):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func countConflicts(found []conflicts.Conflict) {
	for _, c := range found {
		conflictsDetected.WithLabelValues(string(c.Type)).Inc()
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, err error) {
	a.logger.Warn("Request failed", zap.Int("status", status), zap.Error(err))
	a.writeJSON(w, status, map[string]string{"error": err.Error()})
}

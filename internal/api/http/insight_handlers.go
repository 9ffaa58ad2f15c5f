// Package http contains the chi handlers for the insight API.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/edupulse/edupulse/internal/cache"
	"github.com/edupulse/edupulse/internal/insight"

	"github.com/go-chi/chi/v5"
)

// EvaluateHandler is the stateless entry point: StudentData in,
// Evaluation out, nothing persisted. The optional delay is the
// cosmetic "processing" affordance; it honors request cancellation.
func EvaluateHandler(delay time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data insight.StudentData
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		ev, err := insight.Evaluate(data)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		if !waitOrCancel(r, delay) {
			return
		}
		_ = json.NewEncoder(w).Encode(ev)
	}
}

// EvaluateStudentHandler evaluates the student's latest stored
// snapshot, persists the result and refreshes the cache.
func EvaluateStudentHandler(store insight.Store, evalCache *cache.EvaluationCache, delay time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := chi.URLParam(r, "studentID")
		snap, err := store.LatestSnapshot(studentID)
		if err != nil {
			if errors.Is(err, insight.ErrSnapshotNotFound) {
				http.Error(w, err.Error(), 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		ev, err := insight.Evaluate(snap.Data)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		ev.StudentID = studentID
		ev.SnapshotID = snap.ID
		ev, err = store.PutEvaluation(ev)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if evalCache != nil {
			_ = evalCache.SetLatest(r.Context(), ev)
		}
		if !waitOrCancel(r, delay) {
			return
		}
		_ = json.NewEncoder(w).Encode(ev)
	}
}

// LatestEvaluationHandler serves the most recent evaluation, cache
// first when a cache is configured.
func LatestEvaluationHandler(store insight.Store, evalCache *cache.EvaluationCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := chi.URLParam(r, "studentID")
		if evalCache != nil {
			if ev, err := evalCache.GetLatest(r.Context(), studentID); err == nil {
				_ = json.NewEncoder(w).Encode(ev)
				return
			}
		}
		ev, err := store.LatestEvaluation(studentID)
		if err != nil {
			if errors.Is(err, insight.ErrEvaluationNotFound) {
				http.Error(w, err.Error(), 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		if evalCache != nil {
			_ = evalCache.SetLatest(r.Context(), ev)
		}
		_ = json.NewEncoder(w).Encode(ev)
	}
}

// ListEvaluationsHandler returns evaluation history, newest first.
func ListEvaluationsHandler(store insight.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := chi.URLParam(r, "studentID")
		limit := 0
		if q := r.URL.Query().Get("limit"); q != "" {
			n, err := strconv.Atoi(q)
			if err != nil || n < 0 {
				http.Error(w, "bad limit", 400)
				return
			}
			limit = n
		}
		evals, err := store.ListEvaluations(studentID, limit)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(evals)
	}
}

// waitOrCancel sleeps for d unless the request is cancelled first.
// Returns false when the client went away.
func waitOrCancel(r *http.Request, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	select {
	case <-time.After(d):
		return true
	case <-r.Context().Done():
		return false
	}
}

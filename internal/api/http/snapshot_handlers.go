package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edupulse/edupulse/internal/cache"
	"github.com/edupulse/edupulse/internal/insight"

	"github.com/go-chi/chi/v5"
)

// PutSnapshotHandler stores a validated StudentData snapshot and
// invalidates any cached evaluation for the student. Derived values
// for the new snapshot appear only after the next evaluation call.
func PutSnapshotHandler(store insight.Store, evalCache *cache.EvaluationCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := chi.URLParam(r, "studentID")
		var data insight.StudentData
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if err := insight.Validate(data); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		snap, err := store.PutSnapshot(studentID, data)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if evalCache != nil {
			_ = evalCache.Invalidate(r.Context(), studentID)
		}
		_ = json.NewEncoder(w).Encode(snap)
	}
}

// GetSnapshotHandler returns the latest stored snapshot.
func GetSnapshotHandler(store insight.Store) http.HandlerFunc {
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
		_ = json.NewEncoder(w).Encode(snap)
	}
}

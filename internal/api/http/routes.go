package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/peppypick/recruit-analytics/internal/job"
)

// MountAPI mounts the dashboard endpoints under /api.
func MountAPI(r chi.Router, store job.Store) {
	r.Route("/api", func(ar chi.Router) {
		ar.Get("/jobs", ListJobsHandler(store))
		ar.Get("/jobs/{jobID}/analytics", JobAnalyticsHandler(store))
	})
}

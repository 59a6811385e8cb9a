package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/peppypick/recruit-analytics/internal/job"
)

// GET /api/jobs?company_id=...
func ListJobsHandler(store job.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := strings.TrimSpace(r.URL.Query().Get("company_id"))
		if companyID == "" {
			http.Error(w, "company_id is required", http.StatusBadRequest)
			return
		}
		list, err := store.ListJobs(r.Context(), companyID)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(list)
	}
}

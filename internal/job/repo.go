package job

import "context"

// Store is the read side of the recruiting pipeline consumed by the HTTP API.
type Store interface {
	// ListJobs returns a company's jobs newest first, with application and
	// submission counts.
	ListJobs(ctx context.Context, companyID string) ([]Summary, error)

	// JobAnalytics fetches one job's raw records and aggregates, runs the
	// analytics engine over them, and assembles the dashboard payload.
	JobAnalytics(ctx context.Context, jobID string) (Analytics, error)
}

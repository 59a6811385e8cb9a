package job

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/peppypick/recruit-analytics/internal/analytics"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) ListJobs(ctx context.Context, companyID string) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT j.job_id, j.job_title, j.created_date, c.comp_name, c.company_logo,
		       COUNT(DISTINCT ac.cand_id),
		       COUNT(DISTINCT r.resp_user_id),
		       COUNT(DISTINCT CASE WHEN r.final_score IS NOT NULL THEN r.resp_user_id END)
		FROM jobs j
		LEFT JOIN companies c ON j.comp_id = c.comp_id
		LEFT JOIN applied_candidates ac ON j.job_id = ac.job_id
		LEFT JOIN responses r ON j.job_id = r.resp_job_id
		WHERE j.comp_id = $1
		GROUP BY j.job_id, j.job_title, j.created_date, c.comp_name, c.company_logo
		ORDER BY j.created_date DESC`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var (
			sm       Summary
			compName sql.NullString
		)
		if err := rows.Scan(&sm.JobID, &sm.JobTitle, &sm.CreatedDate, &compName, &sm.CompanyLogo,
			&sm.TotalApplications, &sm.TotalSubmissions, &sm.CompletedSubmissions); err != nil {
			return nil, fmt.Errorf("list jobs: %w", err)
		}
		sm.CompName = compName.String
		out = append(out, sm)
	}
	return out, rows.Err()
}

func (s *SQLStore) JobAnalytics(ctx context.Context, jobID string) (Analytics, error) {
	responses, err := s.fetchResponses(ctx, jobID)
	if err != nil {
		return Analytics{}, err
	}
	overview, err := s.fetchOverview(ctx, jobID)
	if err != nil {
		return Analytics{}, err
	}
	timeline, err := s.fetchTimeline(ctx, jobID)
	if err != nil {
		return Analytics{}, err
	}
	tech, err := s.fetchTechAggregate(ctx, jobID)
	if err != nil {
		return Analytics{}, err
	}
	geography, err := s.fetchGeography(ctx, jobID)
	if err != nil {
		return Analytics{}, err
	}

	derived := analytics.Compute(jobID, responses)
	return Analytics{
		Overview:          overview,
		Timeline:          timeline,
		VideoAssessment:   derived.VideoAssessment,
		MCQPerformance:    derived.MCQPerformance,
		ResumeAnalysis:    derived.ResumeAnalysis,
		CaseStudy:         derived.CaseStudy,
		TechnicalInsights: analytics.ShapeTechnical(tech),
		Geography:         geography,
	}, nil
}

func (s *SQLStore) fetchResponses(ctx context.Context, jobID string) ([]analytics.Response, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT report_card, resp_video_aws_nums, resp_test_writing_score, resp_test_writing
		FROM responses
		WHERE resp_job_id = $1`, jobID)
	if err != nil {
		return nil, fmt.Errorf("fetch responses: %w", err)
	}
	defer rows.Close()

	var out []analytics.Response
	for rows.Next() {
		var report, frames, writingScore, writing sql.NullString
		if err := rows.Scan(&report, &frames, &writingScore, &writing); err != nil {
			return nil, fmt.Errorf("fetch responses: %w", err)
		}
		out = append(out, analytics.Response{
			ReportCard:       report.String,
			VideoFrames:      frames.String,
			WritingScore:     writingScore.String,
			WritingSubmitted: writing.Valid && writing.String != "",
		})
	}
	return out, rows.Err()
}

func (s *SQLStore) fetchOverview(ctx context.Context, jobID string) (analytics.Overview, error) {
	var total, complete, incomplete int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT ac.cand_id),
		       COUNT(DISTINCT CASE WHEN r.final_score IS NOT NULL THEN r.resp_user_id END),
		       COUNT(DISTINCT CASE WHEN r.final_score IS NULL AND r.resp_user_id IS NOT NULL THEN r.resp_user_id END)
		FROM jobs j
		LEFT JOIN applied_candidates ac ON j.job_id = ac.job_id
		LEFT JOIN responses r ON j.job_id = r.resp_job_id
		WHERE j.job_id = $1`, jobID).Scan(&total, &complete, &incomplete)
	if err != nil {
		return analytics.Overview{}, fmt.Errorf("fetch overview: %w", err)
	}
	return analytics.ShapeOverview(total, complete, incomplete), nil
}

func (s *SQLStore) fetchTimeline(ctx context.Context, jobID string) ([]TimelinePoint, error) {
	// Unix timestamps bucket into calendar days differently per dialect.
	q := `
		SELECT date(ac.created_at, 'unixepoch') AS day, COUNT(ac.cand_id)
		FROM applied_candidates ac
		WHERE ac.job_id = $1
		GROUP BY day
		ORDER BY day`
	if s.driver == "postgres" {
		q = `
		SELECT to_char(to_timestamp(ac.created_at), 'YYYY-MM-DD') AS day, COUNT(ac.cand_id)
		FROM applied_candidates ac
		WHERE ac.job_id = $1
		GROUP BY day
		ORDER BY day`
	}
	rows, err := s.db.QueryContext(ctx, q, jobID)
	if err != nil {
		return nil, fmt.Errorf("fetch timeline: %w", err)
	}
	defer rows.Close()

	out := []TimelinePoint{}
	for rows.Next() {
		var p TimelinePoint
		if err := rows.Scan(&p.Date, &p.Applications); err != nil {
			return nil, fmt.Errorf("fetch timeline: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLStore) fetchTechAggregate(ctx context.Context, jobID string) (analytics.TechAggregate, error) {
	var (
		agg analytics.TechAggregate
		avg sql.NullFloat64
		max sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT resp_user_id),
		       COUNT(DISTINCT CASE WHEN tab_switch_count = 0 THEN resp_user_id END),
		       COUNT(DISTINCT CASE WHEN tab_switch_count > 0 THEN resp_user_id END),
		       COUNT(DISTINCT CASE WHEN resp_video_resp IS NOT NULL THEN resp_user_id END),
		       COUNT(DISTINCT CASE WHEN resp_screen_recording_s3 IS NOT NULL THEN resp_user_id END),
		       AVG(tab_switch_count),
		       MAX(tab_switch_count)
		FROM responses
		WHERE resp_job_id = $1`, jobID).Scan(
		&agg.TotalResponses, &agg.Compliant, &agg.NonCompliant,
		&agg.VideoUploads, &agg.ScreenRecordings, &avg, &max)
	if err != nil {
		return analytics.TechAggregate{}, fmt.Errorf("fetch technical aggregate: %w", err)
	}
	if avg.Valid {
		agg.AvgTabSwitches = &avg.Float64
	}
	if max.Valid {
		m := int(max.Int64)
		agg.MaxTabSwitches = &m
	}
	return agg, nil
}

func (s *SQLStore) fetchGeography(ctx context.Context, jobID string) ([]GeoPoint, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT COALESCE(ac.home_address, 'Unknown'), COUNT(DISTINCT ac.cand_id)
		FROM applied_candidates ac
		WHERE ac.job_id = $1
		GROUP BY ac.home_address`, jobID)
	if err != nil {
		return nil, fmt.Errorf("fetch geography: %w", err)
	}
	defer rows.Close()

	out := []GeoPoint{}
	for rows.Next() {
		var g GeoPoint
		if err := rows.Scan(&g.HomeAddress, &g.CandidateCount); err != nil {
			return nil, fmt.Errorf("fetch geography: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

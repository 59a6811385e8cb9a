package job

import "github.com/peppypick/recruit-analytics/internal/analytics"

// Summary is one row of the company job list. CompanyLogo marshals as base64
// text, or null when the company has no logo.
type Summary struct {
	JobID                string `json:"job_id"`
	JobTitle             string `json:"job_title"`
	CreatedDate          int64  `json:"created_date"`
	CompName             string `json:"comp_name"`
	CompanyLogo          []byte `json:"company_logo"`
	TotalApplications    int    `json:"total_applications"`
	TotalSubmissions     int    `json:"total_submissions"`
	CompletedSubmissions int    `json:"completed_submissions"`
}

type TimelinePoint struct {
	Date         string `json:"date"`
	Applications int    `json:"applications"`
}

// GeoPoint groups candidates by home address; unresolved addresses land under
// the literal "Unknown".
type GeoPoint struct {
	HomeAddress    string `json:"home_address"`
	CandidateCount int    `json:"candidate_count"`
}

// Analytics is the full dashboard payload for one job.
type Analytics struct {
	Overview          analytics.Overview           `json:"overview"`
	Timeline          []TimelinePoint              `json:"timeline"`
	VideoAssessment   analytics.VideoAssessment    `json:"video_assessment"`
	MCQPerformance    analytics.MCQPerformance     `json:"mcq_performance"`
	ResumeAnalysis    analytics.ResumeAnalysis     `json:"resume_analysis"`
	CaseStudy         analytics.CaseStudy          `json:"case_study"`
	TechnicalInsights *analytics.TechnicalInsights `json:"technical_insights"`
	Geography         []GeoPoint                   `json:"geography"`
}

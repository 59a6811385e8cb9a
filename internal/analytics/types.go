// Package analytics turns raw per-candidate assessment records into the derived
// statistics blocks served by the dashboard. Every function here is a pure view
// over its inputs: malformed documents are logged and skipped, never fatal.
package analytics

// Response is the analyzer's view of one candidate submission. Raw JSON payloads
// stay encoded until the analyzer that owns them decodes them; an empty string
// means the column was NULL.
type Response struct {
	ReportCard       string // report document: scores and sub-test responses
	VideoFrames      string // per-frame emotion samples
	WritingScore     string // writing-test relevance/sentiment scores
	WritingSubmitted bool   // a non-empty writing submission was stored
}

type EmotionCount struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}

type VideoAssessment struct {
	AverageScore      float64        `json:"average_score"`
	AboveIdeal        int            `json:"above_ideal"`
	EmotionalAnalysis []EmotionCount `json:"emotional_analysis"`
}

type DifficultyStat struct {
	Level       string `json:"level"`
	SuccessRate int    `json:"successRate"`
	Correct     int    `json:"correct"`
	Total       int    `json:"total"`
}

type MCQPerformance struct {
	AverageScore       float64          `json:"average_score"`
	AboveIdeal         int              `json:"above_ideal"`
	DifficultyAnalysis []DifficultyStat `json:"difficulty_analysis"`
}

type ResumeAnalysis struct {
	KeywordMatch   int `json:"keyword_match"`
	RelevanceScore int `json:"relevance_score"`
}

type CaseStudy struct {
	AverageScore             float64  `json:"average_score"`
	CompletionRate           int      `json:"completion_rate"`
	AboveThresholdPercentage int      `json:"above_threshold_percentage"`
	KeyInsights              []string `json:"key_insights"`
}

type TabSwitching struct {
	Average      float64 `json:"average"`
	Max          int     `json:"max"`
	Compliant    int     `json:"compliant"`
	NonCompliant int     `json:"non_compliant"`
}

type TechnicalInsights struct {
	TotalResponses         int          `json:"total_responses"`
	TabSwitching           TabSwitching `json:"tab_switching"`
	VideoUploadSuccess     int          `json:"video_upload_success"`
	ScreenRecordingSuccess int          `json:"screen_recording_success"`
}

type Overview struct {
	TotalApplications     int `json:"total_applications"`
	CompleteSubmissions   int `json:"complete_submissions"`
	IncompleteSubmissions int `json:"incomplete_submissions"`
	NotStarted            int `json:"not_started"`
}

// Result bundles the blocks derived from one job's response records.
type Result struct {
	VideoAssessment VideoAssessment
	MCQPerformance  MCQPerformance
	ResumeAnalysis  ResumeAnalysis
	CaseStudy       CaseStudy
}

// Compute runs every record-level analyzer over the same record set. It is a
// pure function: no shared state, safe to call concurrently across requests.
func Compute(jobID string, responses []Response) Result {
	return Result{
		VideoAssessment: AnalyzeVideo(jobID, responses),
		MCQPerformance:  AnalyzeMCQ(jobID, responses),
		ResumeAnalysis:  AnalyzeResume(jobID, responses),
		CaseStudy:       AnalyzeWriting(jobID, responses),
	}
}

package analytics

import (
	"encoding/json"
	"reflect"
	"testing"
)

func withReport(raw string) Response { return Response{ReportCard: raw} }
func withFrames(raw string) Response { return Response{VideoFrames: raw} }

func withWriting(score string, submitted bool) Response {
	return Response{WritingScore: score, WritingSubmitted: submitted}
}

// reportWithMCQ double-encodes an mcq_response array the way report documents
// store it.
func reportWithMCQ(t *testing.T, mcq string) Response {
	t.Helper()
	report, err := json.Marshal(map[string]string{"mcq_response": mcq})
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}
	return Response{ReportCard: string(report)}
}

/* ---------------------------------- video ---------------------------------- */

func TestAnalyzeVideo_SingleScore(t *testing.T) {
	got := AnalyzeVideo("job-1", []Response{withReport(`{"video_score": "8.0"}`)})
	if got.AverageScore != 8.0 {
		t.Fatalf("average_score = %v, want 8.0", got.AverageScore)
	}
	if got.AboveIdeal != 1 {
		t.Fatalf("above_ideal = %d, want 1", got.AboveIdeal)
	}
}

func TestAnalyzeVideo_NumericScoreAndRounding(t *testing.T) {
	got := AnalyzeVideo("job-1", []Response{
		withReport(`{"video_score": 6}`),
		withReport(`{"video_score": "7.5"}`),
	})
	if got.AverageScore != 6.8 {
		t.Fatalf("average_score = %v, want 6.8", got.AverageScore)
	}
	if got.AboveIdeal != 1 {
		t.Fatalf("above_ideal = %d, want 1", got.AboveIdeal)
	}
}

func TestAnalyzeVideo_ConfidenceThresholdIsStrict(t *testing.T) {
	got := AnalyzeVideo("job-1", []Response{
		withFrames(`[{"em_type": ["HAPPY", 80]}, {"em_type": ["SAD", 30]}]`),
	})
	want := []EmotionCount{{Emotion: "HAPPY", Count: 1}}
	if !reflect.DeepEqual(got.EmotionalAnalysis, want) {
		t.Fatalf("emotional_analysis = %+v, want %+v", got.EmotionalAnalysis, want)
	}

	// Exactly 50 is not above the threshold.
	got = AnalyzeVideo("job-1", []Response{withFrames(`[{"em_type": ["HAPPY", 50]}]`)})
	if len(got.EmotionalAnalysis) != 0 {
		t.Fatalf("confidence 50 should be excluded, got %+v", got.EmotionalAnalysis)
	}
}

func TestAnalyzeVideo_UnknownEmotionDropped(t *testing.T) {
	got := AnalyzeVideo("job-1", []Response{
		withFrames(`[{"em_type": ["ECSTATIC", 90]}, {"em_type": ["CALM", 90]}]`),
	})
	want := []EmotionCount{{Emotion: "CALM", Count: 1}}
	if !reflect.DeepEqual(got.EmotionalAnalysis, want) {
		t.Fatalf("emotional_analysis = %+v, want %+v", got.EmotionalAnalysis, want)
	}
}

func TestAnalyzeVideo_SortedByCountDescending(t *testing.T) {
	got := AnalyzeVideo("job-1", []Response{
		withFrames(`[{"em_type": ["NERVOUS", 90]}, {"em_type": ["HAPPY", 90]}, {"em_type": ["HAPPY", 70]}]`),
	})
	if len(got.EmotionalAnalysis) != 2 {
		t.Fatalf("want 2 emotions, got %+v", got.EmotionalAnalysis)
	}
	if got.EmotionalAnalysis[0].Emotion != "HAPPY" || got.EmotionalAnalysis[0].Count != 2 {
		t.Fatalf("want HAPPY first with count 2, got %+v", got.EmotionalAnalysis)
	}
}

func TestAnalyzeVideo_BadFramesDoNotLoseScore(t *testing.T) {
	got := AnalyzeVideo("job-1", []Response{
		{ReportCard: `{"video_score": "9.0"}`, VideoFrames: `not json`},
	})
	if got.AverageScore != 9.0 || got.AboveIdeal != 1 {
		t.Fatalf("score should survive a bad frame payload, got %+v", got)
	}
	if len(got.EmotionalAnalysis) != 0 {
		t.Fatalf("bad frames should contribute nothing, got %+v", got.EmotionalAnalysis)
	}
}

func TestAnalyzeVideo_MalformedTuplesIgnored(t *testing.T) {
	got := AnalyzeVideo("job-1", []Response{
		withFrames(`[{"em_type": ["HAPPY"]}, {"em_type": ["HAPPY", "85"]}, {}]`),
	})
	// One-element tuples and frames without em_type are skipped; string
	// confidence is accepted.
	want := []EmotionCount{{Emotion: "HAPPY", Count: 1}}
	if !reflect.DeepEqual(got.EmotionalAnalysis, want) {
		t.Fatalf("emotional_analysis = %+v, want %+v", got.EmotionalAnalysis, want)
	}
}

/* ----------------------------------- mcq ----------------------------------- */

func TestAnalyzeMCQ_MalformedReportSkipped(t *testing.T) {
	got := AnalyzeMCQ("job-1", []Response{
		withReport(`{"mcq_test_score": "7/10"}`),
		withReport(`not a report`),
	})
	if got.AverageScore != 7.0 {
		t.Fatalf("average_score = %v, want 7.0", got.AverageScore)
	}
	if got.AboveIdeal != 0 {
		t.Fatalf("above_ideal = %d, want 0", got.AboveIdeal)
	}
}

func TestAnalyzeMCQ_DifficultyBreakdown(t *testing.T) {
	mcq := `[
		{"difficultyLevel": "Easy", "candidateResponse": "a", "answer": "a"},
		{"difficultyLevel": "EASY", "candidateResponse": "b", "answer": "c"}
	]`
	got := AnalyzeMCQ("job-1", []Response{reportWithMCQ(t, mcq)})
	if len(got.DifficultyAnalysis) != 3 {
		t.Fatalf("want 3 buckets, got %+v", got.DifficultyAnalysis)
	}
	easy := got.DifficultyAnalysis[0]
	if easy.Level != "Easy" || easy.Correct != 1 || easy.Total != 2 || easy.SuccessRate != 50 {
		t.Fatalf("easy bucket = %+v, want correct=1 total=2 successRate=50", easy)
	}
	for _, st := range got.DifficultyAnalysis[1:] {
		if st.Total != 0 || st.SuccessRate != 0 {
			t.Fatalf("untouched bucket should be zero, got %+v", st)
		}
	}
}

func TestAnalyzeMCQ_UnknownDifficultyDropped(t *testing.T) {
	mcq := `[{"difficultyLevel": "impossible", "candidateResponse": "a", "answer": "a"}]`
	got := AnalyzeMCQ("job-1", []Response{reportWithMCQ(t, mcq)})
	for _, st := range got.DifficultyAnalysis {
		if st.Total != 0 {
			t.Fatalf("unknown difficulty must not count, got %+v", st)
		}
	}
}

func TestAnalyzeMCQ_BadFractionSkipsWholeRecord(t *testing.T) {
	report := `{"mcq_test_score": "seven/10", "mcq_response": "[{\"difficultyLevel\": \"easy\", \"candidateResponse\": \"a\", \"answer\": \"a\"}]"}`
	got := AnalyzeMCQ("job-1", []Response{withReport(report)})
	if got.AverageScore != 0 {
		t.Fatalf("average_score = %v, want 0", got.AverageScore)
	}
	if got.DifficultyAnalysis[0].Total != 0 {
		t.Fatalf("record with bad score must be skipped entirely, got %+v", got.DifficultyAnalysis)
	}
}

func TestAnalyzeMCQ_AverageAndAboveIdeal(t *testing.T) {
	got := AnalyzeMCQ("job-1", []Response{
		withReport(`{"mcq_test_score": "8/10"}`),
		withReport(`{"mcq_test_score": "7/10"}`),
	})
	if got.AverageScore != 7.5 {
		t.Fatalf("average_score = %v, want 7.5", got.AverageScore)
	}
	if got.AboveIdeal != 1 {
		t.Fatalf("above_ideal = %d, want 1", got.AboveIdeal)
	}
}

/* ---------------------------------- resume ---------------------------------- */

func TestAnalyzeResume_EmptyFieldDoesNotContribute(t *testing.T) {
	got := AnalyzeResume("job-1", []Response{
		withReport(`{"resume_keyword": "", "resume_relevance_to_jd": "0.9"}`),
	})
	if got.KeywordMatch != 0 {
		t.Fatalf("keyword_match = %d, want 0", got.KeywordMatch)
	}
	if got.RelevanceScore != 90 {
		t.Fatalf("relevance_score = %d, want 90", got.RelevanceScore)
	}
}

func TestAnalyzeResume_BadFieldSkipsOnlyThatField(t *testing.T) {
	got := AnalyzeResume("job-1", []Response{
		withReport(`{"resume_keyword": "lots", "resume_relevance_to_jd": "0.5"}`),
	})
	if got.KeywordMatch != 0 {
		t.Fatalf("keyword_match = %d, want 0", got.KeywordMatch)
	}
	if got.RelevanceScore != 50 {
		t.Fatalf("relevance_score = %d, want 50", got.RelevanceScore)
	}
}

/* --------------------------------- writing --------------------------------- */

func TestAnalyzeWriting_CompletionUsesAllRecords(t *testing.T) {
	got := AnalyzeWriting("job-1", []Response{
		withWriting(`{"relevance_score": 8, "sentiment_score": 9}`, true),
		{}, // never started the writing test
	})
	if got.AverageScore != 8.5 {
		t.Fatalf("average_score = %v, want 8.5", got.AverageScore)
	}
	if got.CompletionRate != 50 {
		t.Fatalf("completion_rate = %d, want 50", got.CompletionRate)
	}
	if got.AboveThresholdPercentage != 100 {
		t.Fatalf("above_threshold_percentage = %d, want 100", got.AboveThresholdPercentage)
	}
	wantInsights := []string{
		"100% candidates scored above ideal threshold",
		"50% completion rate indicates poor engagement",
		"Average score: 8.5/10",
	}
	if !reflect.DeepEqual(got.KeyInsights, wantInsights) {
		t.Fatalf("key_insights = %q, want %q", got.KeyInsights, wantInsights)
	}
}

func TestAnalyzeWriting_MissingSubScoresDefaultToZero(t *testing.T) {
	got := AnalyzeWriting("job-1", []Response{withWriting(`{"relevance_score": 6}`, false)})
	if got.AverageScore != 3.0 {
		t.Fatalf("average_score = %v, want 3.0", got.AverageScore)
	}
	if got.CompletionRate != 0 {
		t.Fatalf("completion_rate = %d, want 0", got.CompletionRate)
	}
}

func TestAnalyzeWriting_MalformedScoreSkipped(t *testing.T) {
	got := AnalyzeWriting("job-1", []Response{
		withWriting(`{broken`, true),
		withWriting(`{"relevance_score": 7, "sentiment_score": 7}`, true),
	})
	if got.AverageScore != 7.0 {
		t.Fatalf("average_score = %v, want 7.0", got.AverageScore)
	}
	if got.CompletionRate != 50 {
		t.Fatalf("completion_rate = %d, want 50", got.CompletionRate)
	}
}

func TestAnalyzeWriting_EngagementWording(t *testing.T) {
	recs := []Response{withWriting(`{"relevance_score": 5, "sentiment_score": 5}`, true)}
	got := AnalyzeWriting("job-1", recs)
	if got.CompletionRate != 100 {
		t.Fatalf("completion_rate = %d, want 100", got.CompletionRate)
	}
	if got.KeyInsights[1] != "100% completion rate indicates good engagement" {
		t.Fatalf("unexpected engagement insight: %q", got.KeyInsights[1])
	}
}

/* ----------------------------- shaping helpers ----------------------------- */

func TestShapeOverview_NotStartedUnclamped(t *testing.T) {
	got := ShapeOverview(10, 6, 3)
	if got.NotStarted != 1 {
		t.Fatalf("not_started = %d, want 1", got.NotStarted)
	}
	// Independent count sources can disagree; the negative value is surfaced.
	got = ShapeOverview(10, 8, 3)
	if got.NotStarted != -1 {
		t.Fatalf("not_started = %d, want -1", got.NotStarted)
	}
}

func TestShapeTechnical_AbsentWhenNoResponses(t *testing.T) {
	if got := ShapeTechnical(TechAggregate{}); got != nil {
		t.Fatalf("want nil technical insights, got %+v", got)
	}
}

func TestShapeTechnical_NullAggregatesDefaultToZero(t *testing.T) {
	avg := 1.5
	max := 4
	got := ShapeTechnical(TechAggregate{
		TotalResponses: 5, Compliant: 3, NonCompliant: 2,
		VideoUploads: 5, ScreenRecordings: 4,
		AvgTabSwitches: &avg, MaxTabSwitches: &max,
	})
	if got == nil {
		t.Fatal("want technical insights, got nil")
	}
	if got.TabSwitching.Average != 1.5 || got.TabSwitching.Max != 4 {
		t.Fatalf("tab_switching = %+v", got.TabSwitching)
	}

	got = ShapeTechnical(TechAggregate{TotalResponses: 1})
	if got.TabSwitching.Average != 0 || got.TabSwitching.Max != 0 {
		t.Fatalf("null aggregates should default to 0, got %+v", got.TabSwitching)
	}
}

/* --------------------------------- engine ---------------------------------- */

func TestCompute_EmptyRecordSetDefaults(t *testing.T) {
	got := Compute("job-1", nil)
	if got.VideoAssessment.AverageScore != 0 || got.VideoAssessment.AboveIdeal != 0 {
		t.Fatalf("video defaults wrong: %+v", got.VideoAssessment)
	}
	if len(got.VideoAssessment.EmotionalAnalysis) != 0 {
		t.Fatalf("emotional_analysis should be empty, got %+v", got.VideoAssessment.EmotionalAnalysis)
	}
	if got.MCQPerformance.AverageScore != 0 || len(got.MCQPerformance.DifficultyAnalysis) != 3 {
		t.Fatalf("mcq defaults wrong: %+v", got.MCQPerformance)
	}
	for _, st := range got.MCQPerformance.DifficultyAnalysis {
		if st.Total != 0 || st.SuccessRate != 0 {
			t.Fatalf("difficulty bucket should be zero, got %+v", st)
		}
	}
	if got.ResumeAnalysis.KeywordMatch != 0 || got.ResumeAnalysis.RelevanceScore != 0 {
		t.Fatalf("resume defaults wrong: %+v", got.ResumeAnalysis)
	}
	if got.CaseStudy.AverageScore != 0 || got.CaseStudy.CompletionRate != 0 {
		t.Fatalf("case study defaults wrong: %+v", got.CaseStudy)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	recs := []Response{
		{
			ReportCard:       `{"video_score": "8.2", "mcq_test_score": "6/10", "resume_keyword": "0.7", "resume_relevance_to_jd": "0.8"}`,
			VideoFrames:      `[{"em_type": ["CONFIDENT", 77]}, {"em_type": ["CALM", 61]}]`,
			WritingScore:     `{"relevance_score": 7.5, "sentiment_score": 8.5}`,
			WritingSubmitted: true,
		},
		withReport(`garbage`),
	}
	first := Compute("job-1", recs)
	second := Compute("job-1", recs)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("engine is not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestCompute_PercentagesStayInRange(t *testing.T) {
	recs := []Response{
		{
			ReportCard:       `{"mcq_test_score": "10/10", "mcq_response": "[{\"difficultyLevel\": \"hard\", \"candidateResponse\": \"x\", \"answer\": \"x\"}]", "resume_keyword": "1.0"}`,
			WritingScore:     `{"relevance_score": 10, "sentiment_score": 10}`,
			WritingSubmitted: true,
		},
	}
	got := Compute("job-1", recs)
	for _, st := range got.MCQPerformance.DifficultyAnalysis {
		if st.SuccessRate < 0 || st.SuccessRate > 100 {
			t.Fatalf("successRate out of range: %+v", st)
		}
	}
	if got.CaseStudy.CompletionRate < 0 || got.CaseStudy.CompletionRate > 100 {
		t.Fatalf("completion_rate out of range: %d", got.CaseStudy.CompletionRate)
	}
	if got.CaseStudy.AboveThresholdPercentage < 0 || got.CaseStudy.AboveThresholdPercentage > 100 {
		t.Fatalf("above_threshold_percentage out of range: %d", got.CaseStudy.AboveThresholdPercentage)
	}
	if got.ResumeAnalysis.KeywordMatch != 100 {
		t.Fatalf("keyword_match = %d, want 100", got.ResumeAnalysis.KeywordMatch)
	}
}

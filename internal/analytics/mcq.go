package analytics

import (
	"encoding/json"
	"log"
	"reflect"
	"strings"
)

// difficultyLevels is the fixed bucket order for the difficulty breakdown.
// Unknown difficulty strings are dropped.
var difficultyLevels = []string{"easy", "medium", "hard"}

// QuestionResult is one element of a report's mcq_response array. Responses and
// answers keep whatever JSON shape the test produced; correctness is exact
// value equality.
type QuestionResult struct {
	DifficultyLevel   string          `json:"difficultyLevel"`
	CandidateResponse json.RawMessage `json:"candidateResponse"`
	Answer            json.RawMessage `json:"answer"`
}

func (q QuestionResult) correct() bool {
	var got, want any
	if err := json.Unmarshal(q.CandidateResponse, &got); err != nil {
		return false
	}
	if err := json.Unmarshal(q.Answer, &want); err != nil {
		return false
	}
	return reflect.DeepEqual(got, want)
}

type difficultyCounts struct {
	correct int
	total   int
}

// AnalyzeMCQ computes the average MCQ score and per-difficulty success rates.
// A report that fails to decode anywhere skips the whole record for this
// analyzer, not just the offending field.
func AnalyzeMCQ(jobID string, responses []Response) MCQPerformance {
	counts := map[string]*difficultyCounts{}
	for _, level := range difficultyLevels {
		counts[level] = &difficultyCounts{}
	}

	var scores []float64
	for _, r := range responses {
		report, ok, err := parseReport(r.ReportCard)
		if err != nil {
			log.Printf("analytics: job %s: mcq: skipping unreadable report card: %v", jobID, err)
			continue
		}
		if !ok {
			continue
		}

		if report.MCQTestScore != nil {
			n, err := parseScoreFraction(*report.MCQTestScore)
			if err != nil {
				log.Printf("analytics: job %s: mcq: skipping record: %v", jobID, err)
				continue
			}
			scores = append(scores, float64(n))
		}

		if report.MCQResponse != nil {
			var questions []QuestionResult
			if err := json.Unmarshal([]byte(*report.MCQResponse), &questions); err != nil {
				log.Printf("analytics: job %s: mcq: skipping unreadable mcq_response: %v", jobID, err)
				continue
			}
			for _, q := range questions {
				c, ok := counts[strings.ToLower(q.DifficultyLevel)]
				if !ok {
					continue
				}
				c.total++
				if q.correct() {
					c.correct++
				}
			}
		}
	}

	breakdown := make([]DifficultyStat, 0, len(difficultyLevels))
	for _, level := range difficultyLevels {
		c := counts[level]
		rate := 0
		if c.total > 0 {
			rate = roundInt(float64(c.correct) / float64(c.total) * 100)
		}
		breakdown = append(breakdown, DifficultyStat{
			Level:       strings.ToUpper(level[:1]) + level[1:],
			SuccessRate: rate,
			Correct:     c.correct,
			Total:       c.total,
		})
	}

	return MCQPerformance{
		AverageScore:       round1(mean(scores)),
		AboveIdeal:         countAbove(scores, idealThreshold),
		DifficultyAnalysis: breakdown,
	}
}

package analytics

import (
	"fmt"
	"log"
	"strconv"
)

// AnalyzeWriting derives the case-study block from writing-test scores. Each
// scored record contributes the mean of its relevance and sentiment scores.
// The completion denominator is the full record set, not just scored records.
func AnalyzeWriting(jobID string, responses []Response) CaseStudy {
	var avgs []float64
	completed := 0
	for _, r := range responses {
		if r.WritingScore == "" {
			continue
		}
		ws, err := parseWritingScore(r.WritingScore)
		if err != nil {
			log.Printf("analytics: job %s: writing: skipping unreadable writing score: %v", jobID, err)
			continue
		}
		avgs = append(avgs, (ws.RelevanceScore+ws.SentimentScore)/2)
		if r.WritingSubmitted {
			completed++
		}
	}

	completionRate := 0
	if len(responses) > 0 {
		completionRate = roundInt(float64(completed) / float64(len(responses)) * 100)
	}
	abovePct := 0
	if len(avgs) > 0 {
		abovePct = roundInt(float64(countAbove(avgs, idealThreshold)) / float64(len(avgs)) * 100)
	}
	avg := round1(mean(avgs))

	engagement := "poor"
	switch {
	case completionRate > 80:
		engagement = "good"
	case completionRate > 60:
		engagement = "average"
	}

	avgText := "0"
	if len(avgs) > 0 {
		avgText = strconv.FormatFloat(avg, 'f', 1, 64)
	}

	return CaseStudy{
		AverageScore:             avg,
		CompletionRate:           completionRate,
		AboveThresholdPercentage: abovePct,
		KeyInsights: []string{
			fmt.Sprintf("%d%% candidates scored above ideal threshold", abovePct),
			fmt.Sprintf("%d%% completion rate indicates %s engagement", completionRate, engagement),
			fmt.Sprintf("Average score: %s/10", avgText),
		},
	}
}

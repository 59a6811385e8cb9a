package analytics

import (
	"log"
	"sort"
)

// emotionLabels is the closed set of accepted frame classifications, in
// declaration order. Labels outside this set are dropped.
var emotionLabels = []string{"CALM", "CONFIDENT", "NERVOUS", "SAD", "HAPPY", "ANGRY", "CONFUSED"}

// confidenceThreshold is the strict cutoff below which a frame classification
// is not trusted.
const confidenceThreshold = 50

// AnalyzeVideo collects video scores from report documents and tallies
// high-confidence emotion frames. Ties in emotion counts keep declaration
// order; callers must not rely on tie order.
func AnalyzeVideo(jobID string, responses []Response) VideoAssessment {
	known := make(map[string]int, len(emotionLabels))
	for _, label := range emotionLabels {
		known[label] = 0
	}

	var scores []float64
	for _, r := range responses {
		report, ok, err := parseReport(r.ReportCard)
		if err != nil {
			log.Printf("analytics: job %s: video: skipping unreadable report card: %v", jobID, err)
		} else if ok && !report.VideoScore.Absent() {
			v, err := report.VideoScore.Float()
			if err != nil {
				log.Printf("analytics: job %s: video: bad video_score: %v", jobID, err)
			} else {
				scores = append(scores, v)
			}
		}

		if r.VideoFrames == "" {
			continue
		}
		frames, err := parseFrames(r.VideoFrames)
		if err != nil {
			log.Printf("analytics: job %s: video: skipping unreadable emotion frames: %v", jobID, err)
			continue
		}
		for _, f := range frames {
			label, confidence, ok := f.tuple()
			if !ok || confidence <= confidenceThreshold {
				continue
			}
			if _, accepted := known[label]; accepted {
				known[label]++
			}
		}
	}

	emotions := make([]EmotionCount, 0, len(emotionLabels))
	for _, label := range emotionLabels {
		if known[label] > 0 {
			emotions = append(emotions, EmotionCount{Emotion: label, Count: known[label]})
		}
	}
	sort.SliceStable(emotions, func(i, j int) bool { return emotions[i].Count > emotions[j].Count })

	return VideoAssessment{
		AverageScore:      round1(mean(scores)),
		AboveIdeal:        countAbove(scores, idealThreshold),
		EmotionalAnalysis: emotions,
	}
}

package analytics

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// optNumber is a report-card field that may arrive as a JSON number, a decimal
// string, an empty string, or not at all. Empty and absent both read as Absent;
// the raw text is parsed lazily so a bad value only fails the field that holds it.
type optNumber struct {
	present bool
	raw     string
}

func (n *optNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s != "" {
			n.present = true
			n.raw = s
		}
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	n.present = true
	n.raw = num.String()
	return nil
}

func (n optNumber) Absent() bool { return !n.present }

func (n optNumber) Float() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(n.raw), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", n.raw)
	}
	return v, nil
}

// reportCard is the per-candidate assessment result bundle. mcq_response is
// double-encoded: a JSON array serialized into a string field of the report.
type reportCard struct {
	VideoScore      optNumber `json:"video_score"`
	MCQTestScore    *string   `json:"mcq_test_score"`
	MCQResponse     *string   `json:"mcq_response"`
	ResumeKeyword   optNumber `json:"resume_keyword"`
	ResumeRelevance optNumber `json:"resume_relevance_to_jd"`
}

// parseReport decodes a report document. ok is false when the record has no
// report at all; err is set when one exists but cannot be decoded.
func parseReport(raw string) (reportCard, bool, error) {
	var rc reportCard
	if raw == "" {
		return rc, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &rc); err != nil {
		return reportCard{}, false, err
	}
	return rc, true, nil
}

// emotionFrame is one video frame sample. em_type is a 2-element tuple of
// emotion label and confidence; confidence shows up as number or string
// depending on the producer.
type emotionFrame struct {
	EmType []json.RawMessage `json:"em_type"`
}

// tuple validates the em_type pair and returns its label and confidence.
func (f emotionFrame) tuple() (label string, confidence float64, ok bool) {
	if len(f.EmType) != 2 {
		return "", 0, false
	}
	if err := json.Unmarshal(f.EmType[0], &label); err != nil {
		return "", 0, false
	}
	if err := json.Unmarshal(f.EmType[1], &confidence); err != nil {
		var s string
		if err := json.Unmarshal(f.EmType[1], &s); err != nil {
			return "", 0, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return "", 0, false
		}
		confidence = v
	}
	return label, confidence, true
}

func parseFrames(raw string) ([]emotionFrame, error) {
	var frames []emotionFrame
	if err := json.Unmarshal([]byte(raw), &frames); err != nil {
		return nil, err
	}
	return frames, nil
}

// writingScore carries the writing-test sub-scores; absent keys default to 0.
type writingScore struct {
	RelevanceScore float64 `json:"relevance_score"`
	SentimentScore float64 `json:"sentiment_score"`
}

func parseWritingScore(raw string) (writingScore, error) {
	var ws writingScore
	if err := json.Unmarshal([]byte(raw), &ws); err != nil {
		return writingScore{}, err
	}
	return ws, nil
}

// parseScoreFraction extracts the numerator of a "correct/total" score string.
func parseScoreFraction(s string) (int, error) {
	head, _, _ := strings.Cut(s, "/")
	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, fmt.Errorf("bad score fraction %q", s)
	}
	return n, nil
}

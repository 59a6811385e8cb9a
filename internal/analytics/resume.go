package analytics

import "log"

// AnalyzeResume averages resume keyword and relevance scores and scales them to
// percentages. Empty fields contribute nothing; a bad value drops only that
// field, not the record.
func AnalyzeResume(jobID string, responses []Response) ResumeAnalysis {
	var keyword, relevance []float64
	for _, r := range responses {
		report, ok, err := parseReport(r.ReportCard)
		if err != nil {
			log.Printf("analytics: job %s: resume: skipping unreadable report card: %v", jobID, err)
			continue
		}
		if !ok {
			continue
		}
		if !report.ResumeKeyword.Absent() {
			if v, err := report.ResumeKeyword.Float(); err != nil {
				log.Printf("analytics: job %s: resume: bad resume_keyword: %v", jobID, err)
			} else {
				keyword = append(keyword, v)
			}
		}
		if !report.ResumeRelevance.Absent() {
			if v, err := report.ResumeRelevance.Float(); err != nil {
				log.Printf("analytics: job %s: resume: bad resume_relevance_to_jd: %v", jobID, err)
			} else {
				relevance = append(relevance, v)
			}
		}
	}
	return ResumeAnalysis{
		KeywordMatch:   roundInt(mean(keyword) * 100),
		RelevanceScore: roundInt(mean(relevance) * 100),
	}
}

// Command seed loads a demo company, job, candidates and assessment responses
// into the recruiting store so the dashboard has data to render locally.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/peppypick/recruit-analytics/internal/config"
	"github.com/peppypick/recruit-analytics/internal/db"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	driver := flag.String("driver", cfg.DBDriver, "db driver (sqlite|postgres)")
	dsn := flag.String("dsn", cfg.DBDSN, "db dsn")
	company := flag.String("company", "PeppyPick Demo Co", "company name")
	jobTitle := flag.String("job", "Backend Engineer", "job title")
	candidates := flag.Int("candidates", 12, "number of candidates to seed")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(*driver), *dsn)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	compID := uuid.NewString()
	jobID := uuid.NewString()
	now := time.Now()

	mustExec(ctx, dbh, `INSERT INTO companies (comp_id, comp_name) VALUES ($1, $2)`, compID, *company)
	mustExec(ctx, dbh, `INSERT INTO jobs (job_id, comp_id, job_title, created_date) VALUES ($1, $2, $3, $4)`,
		jobID, compID, *jobTitle, now.Unix())

	addresses := []string{"Bengaluru", "Mumbai", "Chennai", "Hyderabad", ""}
	emotions := []string{"CALM", "CONFIDENT", "NERVOUS", "HAPPY", "CONFUSED"}

	for i := 0; i < *candidates; i++ {
		candID := uuid.NewString()
		appliedAt := now.AddDate(0, 0, -rand.Intn(14))
		addr := addresses[rand.Intn(len(addresses))]

		var home any
		if addr != "" {
			home = addr
		}
		mustExec(ctx, dbh, `INSERT INTO applied_candidates (cand_id, job_id, home_address, created_at)
			VALUES ($1, $2, $3, $4)`, candID, jobID, home, appliedAt.Unix())

		// Roughly two thirds of applicants start the assessment.
		if rand.Intn(3) == 0 {
			continue
		}
		seedResponse(ctx, dbh, jobID, candID, appliedAt, emotions)
	}

	log.Printf("seeded company=%s job=%s candidates=%d", compID, jobID, *candidates)
}

func seedResponse(ctx context.Context, dbh *sql.DB, jobID, userID string, at time.Time, emotions []string) {
	correct := rand.Intn(11)
	mcq := make([]map[string]any, 0, 10)
	for q := 0; q < 10; q++ {
		level := []string{"easy", "medium", "hard"}[q%3]
		answer := fmt.Sprintf("option-%d", q%4)
		resp := answer
		if q >= correct {
			resp = fmt.Sprintf("option-%d", (q+1)%4)
		}
		mcq = append(mcq, map[string]any{
			"difficultyLevel":   level,
			"candidateResponse": resp,
			"answer":            answer,
		})
	}
	mcqJSON, _ := json.Marshal(mcq)

	report, _ := json.Marshal(map[string]any{
		"video_score":            fmt.Sprintf("%.1f", 4+rand.Float64()*6),
		"mcq_test_score":         fmt.Sprintf("%d/10", correct),
		"mcq_response":           string(mcqJSON),
		"resume_keyword":         fmt.Sprintf("%.2f", rand.Float64()),
		"resume_relevance_to_jd": fmt.Sprintf("%.2f", rand.Float64()),
	})

	frames := make([]map[string]any, 0, 20)
	for f := 0; f < 20; f++ {
		frames = append(frames, map[string]any{
			"em_type": []any{emotions[rand.Intn(len(emotions))], 30 + rand.Float64()*70},
		})
	}
	framesJSON, _ := json.Marshal(frames)

	writing, _ := json.Marshal(map[string]any{
		"relevance_score": 3 + rand.Float64()*7,
		"sentiment_score": 3 + rand.Float64()*7,
	})

	var finalScore any
	if rand.Intn(4) > 0 {
		finalScore = 40 + rand.Float64()*60
	}

	mustExec(ctx, dbh, `INSERT INTO responses
		(resp_id, resp_job_id, resp_user_id, report_card, resp_video_aws_nums,
		 resp_test_writing_score, resp_test_writing, tab_switch_count,
		 resp_video_resp, resp_screen_recording_s3, final_score, resp_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		uuid.NewString(), jobID, userID, string(report), string(framesJSON),
		string(writing), "The candidate's essay on system design.", rand.Intn(5),
		"s3://peppypick/video/"+userID, "s3://peppypick/screen/"+userID,
		finalScore, at.Add(2*time.Hour).Unix())
}

func mustExec(ctx context.Context, dbh *sql.DB, q string, args ...any) {
	if _, err := dbh.ExecContext(ctx, q, args...); err != nil {
		log.Fatalf("seed: %v", err)
	}
}

package trends

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vegas-mcp/backend/internal/dates"
)

// Repository issues the aggregate queries for the trends endpoints.
// All queries accept an optional date filter on questions.asked_at; a
// nil range means all-time.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a trends repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Overview holds the raw aggregate counts for the overview endpoint.
type Overview struct {
	TotalQuestions int
	TotalAnswers   int
	CorrectAnswers int
	EarliestAsked  *time.Time
	LatestAsked    *time.Time
}

// Overview returns question/answer totals and the observed asked_at
// bounds for the in-scope data.
func (r *Repository) Overview(ctx context.Context, rng *dates.Range) (Overview, error) {
	var o Overview
	qQuery := `SELECT COUNT(*), MIN(asked_at), MAX(asked_at) FROM questions` + questionFilter(rng, "asked_at")
	if err := r.pool.QueryRow(ctx, qQuery, rangeArgs(rng)...).
		Scan(&o.TotalQuestions, &o.EarliestAsked, &o.LatestAsked); err != nil {
		return Overview{}, fmt.Errorf("overview questions: %w", err)
	}
	aQuery := `SELECT COUNT(*), COUNT(*) FILTER (WHERE a.is_correct)
		FROM answers a JOIN questions q ON q.id = a.question_id` + questionFilter(rng, "q.asked_at")
	if err := r.pool.QueryRow(ctx, aQuery, rangeArgs(rng)...).
		Scan(&o.TotalAnswers, &o.CorrectAnswers); err != nil {
		return Overview{}, fmt.Errorf("overview answers: %w", err)
	}
	return o, nil
}

// Distribution groups in-scope questions by one of the tag columns and
// returns per-category counts, largest first. The column comes from a
// fixed dimension table, never from user input.
func (r *Repository) Distribution(ctx context.Context, column string, rng *dates.Range) ([]CategoryCount, error) {
	query := fmt.Sprintf(`SELECT %s, COUNT(*) FROM questions%s GROUP BY %s ORDER BY COUNT(*) DESC`,
		column, questionFilter(rng, "asked_at"), column)
	rows, err := r.pool.Query(ctx, query, rangeArgs(rng)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []CategoryCount{}
	for rows.Next() {
		var cc CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}

// TemporalBucket is one time bucket with its question count.
type TemporalBucket struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// Temporal truncates asked_at to the given unit ("day", "week" or
// "month") and counts questions per bucket, ascending. Buckets with no
// questions are not emitted.
func (r *Repository) Temporal(ctx context.Context, unit string, rng *dates.Range) ([]TemporalBucket, error) {
	query := fmt.Sprintf(`SELECT DATE_TRUNC('%s', asked_at) AS bucket, COUNT(*) FROM questions%s
		GROUP BY bucket ORDER BY bucket`, unit, questionFilter(rng, "asked_at"))
	rows, err := r.pool.Query(ctx, query, rangeArgs(rng)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []TemporalBucket{}
	for rows.Next() {
		var b TemporalBucket
		if err := rows.Scan(&b.Date, &b.Count); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Prompts returns the prompt text of all in-scope questions for
// keyword extraction.
func (r *Repository) Prompts(ctx context.Context, rng *dates.Range) ([]string, error) {
	query := `SELECT prompt FROM questions` + questionFilter(rng, "asked_at")
	rows, err := r.pool.Query(ctx, query, rangeArgs(rng)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []string{}
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// QualityRows fetches in-scope questions joined with their answers,
// grouped per question and ordered by answer creation time with id as
// tie-break, as ComputeQuality expects.
func (r *Repository) QualityRows(ctx context.Context, rng *dates.Range) ([]QualityRow, error) {
	query := `SELECT q.id, q.asked_at, a.created_at, COALESCE(a.is_correct, FALSE)
		FROM questions q LEFT JOIN answers a ON a.question_id = q.id` +
		questionFilter(rng, "q.asked_at") +
		` ORDER BY q.id, a.created_at, a.id`
	rows, err := r.pool.Query(ctx, query, rangeArgs(rng)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []QualityRow{}
	for rows.Next() {
		var qr QualityRow
		if err := rows.Scan(&qr.QuestionID, &qr.AskedAt, &qr.AnswerAt, &qr.IsCorrect); err != nil {
			return nil, err
		}
		out = append(out, qr)
	}
	return out, rows.Err()
}

func questionFilter(rng *dates.Range, column string) string {
	if rng == nil {
		return ""
	}
	return fmt.Sprintf(" WHERE %s >= $1 AND %s < $2", column, column)
}

func rangeArgs(rng *dates.Range) []any {
	if rng == nil {
		return nil
	}
	return []any{rng.Start, rng.End}
}

package questions

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vegas-mcp/backend/internal/dates"
	"github.com/vegas-mcp/backend/internal/models"
)

const questionColumns = `id, prompt, language, topic_language, framework, runtime, source_ide, github_repo, asked_at, updated_at`

// Repository handles question persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a questions repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new question.
func (r *Repository) Create(ctx context.Context, q *models.Question) error {
	const query = `INSERT INTO questions (id, prompt, language, topic_language, framework, runtime, source_ide, github_repo)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
		RETURNING id, asked_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		q.Prompt, q.Language, q.TopicLanguage, q.Framework, q.Runtime, q.SourceIde, q.GithubRepo).
		Scan(&q.ID, &q.AskedAt, &q.UpdatedAt)
}

// GetByID returns a question by ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	const query = `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)
	var q models.Question
	if err := scanQuestion(row, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// ListAll returns every question, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]models.Question, error) {
	const query = `SELECT ` + questionColumns + ` FROM questions ORDER BY asked_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectQuestions(rows)
}

// ListInRange returns questions asked within the half-open interval
// [rng.Start, rng.End).
func (r *Repository) ListInRange(ctx context.Context, rng dates.Range) ([]models.Question, error) {
	const query = `SELECT ` + questionColumns + ` FROM questions
		WHERE asked_at >= $1 AND asked_at < $2
		ORDER BY asked_at DESC`
	rows, err := r.pool.Query(ctx, query, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectQuestions(rows)
}

// Delete removes a question; its answers go with it via ON DELETE
// CASCADE. Returns false when no question matched.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM questions WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanQuestion(row pgx.Row, q *models.Question) error {
	return row.Scan(&q.ID, &q.Prompt, &q.Language, &q.TopicLanguage, &q.Framework,
		&q.Runtime, &q.SourceIde, &q.GithubRepo, &q.AskedAt, &q.UpdatedAt)
}

func collectQuestions(rows pgx.Rows) ([]models.Question, error) {
	out := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := scanQuestion(rows, &q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

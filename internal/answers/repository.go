package answers

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vegas-mcp/backend/internal/models"
)

const answerColumns = `id, question_id, content, is_correct, created_at, updated_at`

// Repository handles answer persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an answers repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new answer referencing an existing question. The
// foreign key rejects answers whose question does not exist.
func (r *Repository) Create(ctx context.Context, a *models.Answer) error {
	const query = `INSERT INTO answers (id, question_id, content, is_correct)
		VALUES (gen_random_uuid(), $1, $2, $3)
		RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, a.QuestionID, a.Content, a.IsCorrect).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// GetByID returns an answer by ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Answer, error) {
	const query = `SELECT ` + answerColumns + ` FROM answers WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)
	var a models.Answer
	if err := scanAnswer(row, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAll returns every answer.
func (r *Repository) ListAll(ctx context.Context) ([]models.Answer, error) {
	const query = `SELECT ` + answerColumns + ` FROM answers`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAnswers(rows)
}

// ListByQuestion returns all answers for a question, oldest first with
// id as tie-break so "first answer" is deterministic.
func (r *Repository) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]models.Answer, error) {
	const query = `SELECT ` + answerColumns + ` FROM answers
		WHERE question_id = $1
		ORDER BY created_at, id`
	rows, err := r.pool.Query(ctx, query, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAnswers(rows)
}

func scanAnswer(row pgx.Row, a *models.Answer) error {
	return row.Scan(&a.ID, &a.QuestionID, &a.Content, &a.IsCorrect, &a.CreatedAt, &a.UpdatedAt)
}

func collectAnswers(rows pgx.Rows) ([]models.Answer, error) {
	out := []models.Answer{}
	for rows.Next() {
		var a models.Answer
		if err := scanAnswer(rows, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

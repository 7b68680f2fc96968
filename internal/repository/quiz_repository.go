package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizdeck/quiz-backend/internal/model"
)

// QuizRepository handles theme, question, and answer data access.
type QuizRepository struct {
	pool *pgxpool.Pool
}

// NewQuizRepository creates a new QuizRepository.
func NewQuizRepository(pool *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{pool: pool}
}

// CreateTheme inserts a new theme. Returns ErrDuplicate when the title
// already exists.
func (r *QuizRepository) CreateTheme(ctx context.Context, t *model.Theme) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO themes (title) VALUES ($1) RETURNING id`, t.Title,
	).Scan(&t.ID)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// GetThemeByTitle retrieves a theme by its unique title. Returns (nil, nil)
// when absent.
func (r *QuizRepository) GetThemeByTitle(ctx context.Context, title string) (*model.Theme, error) {
	t := &model.Theme{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title FROM themes WHERE title = $1`, title,
	).Scan(&t.ID, &t.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// GetThemeByID retrieves a theme by ID. Returns (nil, nil) when absent.
func (r *QuizRepository) GetThemeByID(ctx context.Context, id int) (*model.Theme, error) {
	t := &model.Theme{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title FROM themes WHERE id = $1`, id,
	).Scan(&t.ID, &t.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// ListThemes retrieves all themes ordered by id.
func (r *QuizRepository) ListThemes(ctx context.Context) ([]model.Theme, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title FROM themes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var themes []model.Theme
	for rows.Next() {
		var t model.Theme
		if err := rows.Scan(&t.ID, &t.Title); err != nil {
			return nil, err
		}
		themes = append(themes, t)
	}
	return themes, rows.Err()
}

// CreateQuestion inserts a question and its answers in one transaction:
// either all rows exist afterwards or none do. Returns ErrDuplicate when
// the question title already exists.
func (r *QuizRepository) CreateQuestion(ctx context.Context, q *model.Question) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO questions (title, theme_id) VALUES ($1, $2) RETURNING id`,
		q.Title, q.ThemeID,
	).Scan(&q.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}

	for i := range q.Answers {
		q.Answers[i].QuestionID = q.ID
		err := tx.QueryRow(ctx,
			`INSERT INTO answers (title, is_correct, question_id) VALUES ($1, $2, $3) RETURNING id`,
			q.Answers[i].Title, q.Answers[i].IsCorrect, q.ID,
		).Scan(&q.Answers[i].ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetQuestionByTitle retrieves a question by its unique title with its
// answers populated. Returns (nil, nil) when absent.
func (r *QuizRepository) GetQuestionByTitle(ctx context.Context, title string) (*model.Question, error) {
	q := &model.Question{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, theme_id FROM questions WHERE title = $1`, title,
	).Scan(&q.ID, &q.Title, &q.ThemeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	answers, err := r.answersFor(ctx, []int{q.ID})
	if err != nil {
		return nil, err
	}
	q.Answers = answers[q.ID]
	return q, nil
}

// ListQuestions retrieves all questions with their answers eagerly
// populated, ordered by id. If themeID is non-nil only questions of that
// theme are returned.
func (r *QuizRepository) ListQuestions(ctx context.Context, themeID *int) ([]model.Question, error) {
	query := `SELECT id, title, theme_id FROM questions`
	args := []interface{}{}
	if themeID != nil {
		query += ` WHERE theme_id = $1`
		args = append(args, *themeID)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	var ids []int
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.Title, &q.ThemeID); err != nil {
			return nil, err
		}
		questions = append(questions, q)
		ids = append(ids, q.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return questions, nil
	}

	answers, err := r.answersFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range questions {
		questions[i].Answers = answers[questions[i].ID]
	}
	return questions, nil
}

// answersFor loads the answers of the given questions in one query,
// grouped by question id.
func (r *QuizRepository) answersFor(ctx context.Context, questionIDs []int) (map[int][]model.Answer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, is_correct, question_id FROM answers
		 WHERE question_id = ANY($1) ORDER BY id`, questionIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := make(map[int][]model.Answer)
	for rows.Next() {
		var a model.Answer
		if err := rows.Scan(&a.ID, &a.Title, &a.IsCorrect, &a.QuestionID); err != nil {
			return nil, err
		}
		answers[a.QuestionID] = append(answers[a.QuestionID], a)
	}
	return answers, rows.Err()
}

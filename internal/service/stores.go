package service

import (
	"context"

	"github.com/quizdeck/quiz-backend/internal/model"
)

// AdminStore is the persistence contract for admin accounts. Lookups
// return (nil, nil) when no row matches.
type AdminStore interface {
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	GetByID(ctx context.Context, id int) (*model.Admin, error)
	Create(ctx context.Context, a *model.Admin) error
}

// QuizStore is the persistence contract for themes, questions, and
// answers. CreateQuestion must persist the question and its answers
// atomically. Lookups return (nil, nil) when no row matches.
type QuizStore interface {
	CreateTheme(ctx context.Context, t *model.Theme) error
	GetThemeByTitle(ctx context.Context, title string) (*model.Theme, error)
	GetThemeByID(ctx context.Context, id int) (*model.Theme, error)
	ListThemes(ctx context.Context) ([]model.Theme, error)
	CreateQuestion(ctx context.Context, q *model.Question) error
	GetQuestionByTitle(ctx context.Context, title string) (*model.Question, error)
	ListQuestions(ctx context.Context, themeID *int) ([]model.Question, error)
}

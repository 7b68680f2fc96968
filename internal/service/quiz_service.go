package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/quizdeck/quiz-backend/internal/model"
	"github.com/quizdeck/quiz-backend/internal/repository"
	"github.com/rs/zerolog"
)

// Quiz content validation errors. CreateQuestion reports the first failure
// in declaration order; tests depend on that precedence.
var (
	ErrNoCorrectAnswer = errors.New("no answer is flagged correct")
	ErrMultipleCorrect = errors.New("more than one answer is flagged correct")
	ErrTooFewAnswers   = errors.New("fewer than two answers")
	ErrThemeNotFound   = errors.New("theme not found")
	ErrQuestionExists  = errors.New("question title already exists")
	ErrThemeExists     = errors.New("theme title already exists")
)

// QuizService handles theme and question business logic.
type QuizService struct {
	quizStore QuizStore
	log       zerolog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(quizStore QuizStore, log zerolog.Logger) *QuizService {
	return &QuizService{
		quizStore: quizStore,
		log:       log.With().Str("component", "quiz_service").Logger(),
	}
}

// CreateTheme persists a theme with a globally unique title. Returns
// ErrThemeExists when the title is taken, whether discovered by the
// pre-check or by the unique constraint under a race.
func (s *QuizService) CreateTheme(ctx context.Context, title string) (*model.Theme, error) {
	existing, err := s.quizStore.GetThemeByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("lookup theme: %w", err)
	}
	if existing != nil {
		return nil, ErrThemeExists
	}

	theme := &model.Theme{Title: title}
	if err := s.quizStore.CreateTheme(ctx, theme); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrThemeExists
		}
		return nil, fmt.Errorf("create theme: %w", err)
	}
	return theme, nil
}

// ListThemes retrieves all themes.
func (s *QuizService) ListThemes(ctx context.Context) ([]model.Theme, error) {
	return s.quizStore.ListThemes(ctx)
}

// CreateQuestion validates and persists a question with its answers.
// Checks run in a fixed order, first failure wins: answer-shape rules
// before the theme lookup, the theme lookup before the title uniqueness
// check.
func (s *QuizService) CreateQuestion(ctx context.Context, title string, themeID int, answers []model.Answer) (*model.Question, error) {
	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}
	if correct == 0 {
		return nil, ErrNoCorrectAnswer
	}
	if correct > 1 {
		return nil, ErrMultipleCorrect
	}
	if len(answers) < 2 {
		return nil, ErrTooFewAnswers
	}

	theme, err := s.quizStore.GetThemeByID(ctx, themeID)
	if err != nil {
		return nil, fmt.Errorf("lookup theme: %w", err)
	}
	if theme == nil {
		return nil, ErrThemeNotFound
	}

	existing, err := s.quizStore.GetQuestionByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("lookup question: %w", err)
	}
	if existing != nil {
		return nil, ErrQuestionExists
	}

	question := &model.Question{
		Title:   title,
		ThemeID: themeID,
		Answers: answers,
	}
	if err := s.quizStore.CreateQuestion(ctx, question); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrQuestionExists
		}
		return nil, fmt.Errorf("create question: %w", err)
	}
	return question, nil
}

// GetQuestionByTitle retrieves a question with its answers. Returns
// (nil, nil) when absent.
func (s *QuizService) GetQuestionByTitle(ctx context.Context, title string) (*model.Question, error) {
	return s.quizStore.GetQuestionByTitle(ctx, title)
}

// ListQuestions retrieves questions with their answers, optionally
// filtered to a single theme.
func (s *QuizService) ListQuestions(ctx context.Context, themeID *int) ([]model.Question, error) {
	return s.quizStore.ListQuestions(ctx, themeID)
}

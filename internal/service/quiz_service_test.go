package service

import (
	"context"
	"errors"
	"testing"

	"github.com/quizdeck/quiz-backend/internal/model"
	"github.com/rs/zerolog"
)

// fakeQuizStore is an in-memory QuizStore for exercising the service
// without Postgres.
type fakeQuizStore struct {
	themes    []model.Theme
	questions []model.Question
	nextID    int
}

func newFakeQuizStore() *fakeQuizStore {
	return &fakeQuizStore{nextID: 1}
}

func (f *fakeQuizStore) CreateTheme(_ context.Context, t *model.Theme) error {
	for _, existing := range f.themes {
		if existing.Title == t.Title {
			return errors.New("duplicate row")
		}
	}
	t.ID = f.nextID
	f.nextID++
	f.themes = append(f.themes, *t)
	return nil
}

func (f *fakeQuizStore) GetThemeByTitle(_ context.Context, title string) (*model.Theme, error) {
	for _, t := range f.themes {
		if t.Title == title {
			theme := t
			return &theme, nil
		}
	}
	return nil, nil
}

func (f *fakeQuizStore) GetThemeByID(_ context.Context, id int) (*model.Theme, error) {
	for _, t := range f.themes {
		if t.ID == id {
			theme := t
			return &theme, nil
		}
	}
	return nil, nil
}

func (f *fakeQuizStore) ListThemes(_ context.Context) ([]model.Theme, error) {
	return append([]model.Theme(nil), f.themes...), nil
}

func (f *fakeQuizStore) CreateQuestion(_ context.Context, q *model.Question) error {
	q.ID = f.nextID
	f.nextID++
	for i := range q.Answers {
		q.Answers[i].ID = f.nextID
		f.nextID++
		q.Answers[i].QuestionID = q.ID
	}
	f.questions = append(f.questions, *q)
	return nil
}

func (f *fakeQuizStore) GetQuestionByTitle(_ context.Context, title string) (*model.Question, error) {
	for _, q := range f.questions {
		if q.Title == title {
			question := q
			return &question, nil
		}
	}
	return nil, nil
}

func (f *fakeQuizStore) ListQuestions(_ context.Context, themeID *int) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if themeID == nil || q.ThemeID == *themeID {
			out = append(out, q)
		}
	}
	return out, nil
}

func newQuizService(store QuizStore) *QuizService {
	return NewQuizService(store, zerolog.Nop())
}

func answers(flags ...bool) []model.Answer {
	out := make([]model.Answer, len(flags))
	for i, correct := range flags {
		out[i] = model.Answer{Title: "option", IsCorrect: correct}
	}
	return out
}

func TestCreateQuestionValidationOrder(t *testing.T) {
	store := newFakeQuizStore()
	svc := newQuizService(store)
	ctx := context.Background()

	theme, err := svc.CreateTheme(ctx, "History")
	if err != nil {
		t.Fatalf("create theme: %v", err)
	}

	tests := []struct {
		name    string
		title   string
		themeID int
		answers []model.Answer
		want    error
	}{
		{
			name:    "no correct answer",
			title:   "Q1",
			themeID: theme.ID,
			answers: answers(false, false),
			want:    ErrNoCorrectAnswer,
		},
		{
			name:    "multiple correct answers",
			title:   "Q1",
			themeID: theme.ID,
			answers: answers(true, true),
			want:    ErrMultipleCorrect,
		},
		{
			name:    "single answer",
			title:   "Q1",
			themeID: theme.ID,
			answers: answers(true),
			want:    ErrTooFewAnswers,
		},
		{
			// The answer-shape checks run before any lookup: a payload
			// that is both shapeless and aimed at a missing theme still
			// reports the shape error.
			name:    "shape checked before theme lookup",
			title:   "Q1",
			themeID: 9999,
			answers: answers(false, false),
			want:    ErrNoCorrectAnswer,
		},
		{
			name:    "missing theme",
			title:   "Q1",
			themeID: 9999,
			answers: answers(true, false),
			want:    ErrThemeNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateQuestion(ctx, tc.title, tc.themeID, tc.answers)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCreateQuestionThemeCheckedBeforeUniqueness(t *testing.T) {
	store := newFakeQuizStore()
	svc := newQuizService(store)
	ctx := context.Background()

	theme, err := svc.CreateTheme(ctx, "Science")
	if err != nil {
		t.Fatalf("create theme: %v", err)
	}
	if _, err := svc.CreateQuestion(ctx, "Taken", theme.ID, answers(true, false)); err != nil {
		t.Fatalf("create question: %v", err)
	}

	// Same duplicate title but a missing theme: the theme check wins.
	_, err = svc.CreateQuestion(ctx, "Taken", 9999, answers(true, false))
	if !errors.Is(err, ErrThemeNotFound) {
		t.Fatalf("got %v, want ErrThemeNotFound", err)
	}

	_, err = svc.CreateQuestion(ctx, "Taken", theme.ID, answers(true, false))
	if !errors.Is(err, ErrQuestionExists) {
		t.Fatalf("got %v, want ErrQuestionExists", err)
	}
}

func TestCreateThemeDuplicate(t *testing.T) {
	store := newFakeQuizStore()
	svc := newQuizService(store)
	ctx := context.Background()

	if _, err := svc.CreateTheme(ctx, "Geography"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.CreateTheme(ctx, "Geography"); !errors.Is(err, ErrThemeExists) {
		t.Fatalf("got %v, want ErrThemeExists", err)
	}

	themes, err := svc.ListThemes(ctx)
	if err != nil {
		t.Fatalf("list themes: %v", err)
	}
	count := 0
	for _, th := range themes {
		if th.Title == "Geography" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one Geography theme, got %d", count)
	}
}

func TestCreateQuestionRoundTrip(t *testing.T) {
	store := newFakeQuizStore()
	svc := newQuizService(store)
	ctx := context.Background()

	theme, err := svc.CreateTheme(ctx, "Math")
	if err != nil {
		t.Fatalf("create theme: %v", err)
	}

	submitted := []model.Answer{
		{Title: "4", IsCorrect: true},
		{Title: "5", IsCorrect: false},
		{Title: "22", IsCorrect: false},
	}
	created, err := svc.CreateQuestion(ctx, "2+2?", theme.ID, submitted)
	if err != nil {
		t.Fatalf("create question: %v", err)
	}

	got, err := svc.GetQuestionByTitle(ctx, "2+2?")
	if err != nil {
		t.Fatalf("get question: %v", err)
	}
	if got == nil {
		t.Fatal("question not found after create")
	}
	if got.ID != created.ID || got.ThemeID != theme.ID {
		t.Fatalf("unexpected question identity: %+v", got)
	}
	if len(got.Answers) != len(submitted) {
		t.Fatalf("expected %d answers, got %d", len(submitted), len(got.Answers))
	}
	for i, a := range got.Answers {
		if a.Title != submitted[i].Title || a.IsCorrect != submitted[i].IsCorrect {
			t.Fatalf("answer %d mismatch: %+v vs %+v", i, a, submitted[i])
		}
	}
}

func TestListQuestionsFiltersByTheme(t *testing.T) {
	store := newFakeQuizStore()
	svc := newQuizService(store)
	ctx := context.Background()

	first, _ := svc.CreateTheme(ctx, "First")
	second, _ := svc.CreateTheme(ctx, "Second")

	if _, err := svc.CreateQuestion(ctx, "Q-first", first.ID, answers(true, false)); err != nil {
		t.Fatalf("create question: %v", err)
	}
	if _, err := svc.CreateQuestion(ctx, "Q-second", second.ID, answers(true, false)); err != nil {
		t.Fatalf("create question: %v", err)
	}

	questions, err := svc.ListQuestions(ctx, &second.ID)
	if err != nil {
		t.Fatalf("list questions: %v", err)
	}
	if len(questions) != 1 || questions[0].Title != "Q-second" {
		t.Fatalf("expected only Q-second, got %+v", questions)
	}
	for _, q := range questions {
		if len(q.Answers) == 0 {
			t.Fatalf("question %q returned without answers", q.Title)
		}
	}

	all, err := svc.ListQuestions(ctx, nil)
	if err != nil {
		t.Fatalf("list all questions: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(all))
	}
}

package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quiz-backend/internal/model"
	"github.com/quizdeck/quiz-backend/internal/response"
	"github.com/quizdeck/quiz-backend/internal/service"
	"github.com/quizdeck/quiz-backend/internal/validator"
	"github.com/rs/zerolog"
)

// QuizHandler handles theme and question management endpoints.
type QuizHandler struct {
	quizService *service.QuizService
	log         zerolog.Logger
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService, log zerolog.Logger) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		log:         log.With().Str("component", "quiz_handler").Logger(),
	}
}

// CreateTheme godoc
// POST /quiz.create_theme
func (h *QuizHandler) CreateTheme(c *gin.Context) {
	var req model.CreateThemeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithData(c, response.KindBadRequest, "Validation failed", fields)
		return
	}

	theme, err := h.quizService.CreateTheme(c.Request.Context(), req.Title)
	if err != nil {
		if errors.Is(err, service.ErrThemeExists) {
			response.Fail(c, response.KindConflict, "Theme with this title already exists")
			return
		}
		h.failInternal(c, err)
		return
	}

	response.OK(c, gin.H{"id": theme.ID, "title": theme.Title})
}

// ListThemes godoc
// GET /quiz.list_themes
func (h *QuizHandler) ListThemes(c *gin.Context) {
	themes, err := h.quizService.ListThemes(c.Request.Context())
	if err != nil {
		h.failInternal(c, err)
		return
	}

	if themes == nil {
		themes = []model.Theme{}
	}

	response.OK(c, gin.H{"themes": themes})
}

// CreateQuestion godoc
// POST /quiz.create_question
// Semantic answer-shape failures map to bad_request in a fixed order,
// followed by the theme existence check and the title uniqueness check.
func (h *QuizHandler) CreateQuestion(c *gin.Context) {
	var req model.CreateQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithData(c, response.KindBadRequest, "Validation failed", fields)
		return
	}

	answers := make([]model.Answer, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = model.Answer{Title: a.Title, IsCorrect: *a.IsCorrect}
	}

	question, err := h.quizService.CreateQuestion(c.Request.Context(), req.Title, req.ThemeID, answers)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoCorrectAnswer):
			response.Fail(c, response.KindBadRequest, "At least one answer must be correct")
		case errors.Is(err, service.ErrMultipleCorrect):
			response.Fail(c, response.KindBadRequest, "Only one answer can be correct")
		case errors.Is(err, service.ErrTooFewAnswers):
			response.Fail(c, response.KindBadRequest, "Question must have at least two answers")
		case errors.Is(err, service.ErrThemeNotFound):
			response.Fail(c, response.KindNotFound, "Theme not found")
		case errors.Is(err, service.ErrQuestionExists):
			response.Fail(c, response.KindConflict, "Question with this title already exists")
		default:
			h.failInternal(c, err)
		}
		return
	}

	response.OK(c, question)
}

// ListQuestions godoc
// GET /quiz.list_questions?theme_id=<optional int>
func (h *QuizHandler) ListQuestions(c *gin.Context) {
	var themeID *int
	if raw := c.Query("theme_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, response.KindBadRequest, "theme_id must be an integer")
			return
		}
		themeID = &id
	}

	questions, err := h.quizService.ListQuestions(c.Request.Context(), themeID)
	if err != nil {
		h.failInternal(c, err)
		return
	}

	if questions == nil {
		questions = []model.Question{}
	}

	response.OK(c, gin.H{"questions": questions})
}

func (h *QuizHandler) failInternal(c *gin.Context, err error) {
	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	response.Fail(c, response.KindInternal, err.Error())
}

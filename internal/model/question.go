package model

// Question is a prompt with a unique title belonging to one theme.
type Question struct {
	ID      int      `json:"id"`
	Title   string   `json:"title"`
	ThemeID int      `json:"theme_id"`
	Answers []Answer `json:"answers"`
}

// Answer is one option of a question. Its id and owning question are
// internal; the API serializes answers as {title, is_correct} only.
type Answer struct {
	ID         int    `json:"-"`
	QuestionID int    `json:"-"`
	Title      string `json:"title"`
	IsCorrect  bool   `json:"is_correct"`
}

// AnswerPayload is one submitted answer option.
// IsCorrect is a pointer so that an explicit false passes "required".
type AnswerPayload struct {
	Title     string `json:"title" binding:"required,min=1,max=255"`
	IsCorrect *bool  `json:"is_correct" binding:"required"`
}

// CreateQuestionRequest is the payload for creating a question with its
// answers. The answer-shape rules (count, exactly one correct) are not
// binding tags: the quiz service checks them in a fixed order so error
// precedence stays deterministic.
type CreateQuestionRequest struct {
	Title   string          `json:"title" binding:"required,min=1,max=255"`
	ThemeID int             `json:"theme_id" binding:"required"`
	Answers []AnswerPayload `json:"answers" binding:"dive"`
}

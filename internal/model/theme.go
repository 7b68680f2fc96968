package model

// Theme is a named category grouping questions.
type Theme struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// CreateThemeRequest is the payload for creating a theme.
type CreateThemeRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
}

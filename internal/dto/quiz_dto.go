package dto

import "time"

// QuizCreateDTO is for trainers creating a new quiz.
type QuizCreateDTO struct {
	Title                 string   `json:"title" binding:"required"`
	Description           string   `json:"description" binding:"required"`
	PassingCriteria       *float64 `json:"passing_criteria" binding:"omitempty,gte=0,lte=100"` // defaults to 60
	Duration              int      `json:"duration" binding:"omitempty,gt=0"`                  // minutes, defaults to 30
	TotalMarks            int      `json:"total_marks" binding:"omitempty,gt=0"`               // defaults to 100
	IsPublished           bool     `json:"is_published"`
	AllowMultipleAttempts bool     `json:"allow_multiple_attempts"`
	ShuffleQuestions      bool     `json:"shuffle_questions"`
}

// QuizUpdateDTO carries a partial update; nil fields are left untouched.
type QuizUpdateDTO struct {
	Title                 *string  `json:"title"`
	Description           *string  `json:"description"`
	PassingCriteria       *float64 `json:"passing_criteria" binding:"omitempty,gte=0,lte=100"`
	Duration              *int     `json:"duration" binding:"omitempty,gt=0"`
	TotalMarks            *int     `json:"total_marks" binding:"omitempty,gt=0"`
	IsPublished           *bool    `json:"is_published"`
	AllowMultipleAttempts *bool    `json:"allow_multiple_attempts"`
	ShuffleQuestions      *bool    `json:"shuffle_questions"`
}

type QuizResponseDTO struct {
	ID                    uint      `json:"id"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	TrainerID             string    `json:"trainer_id"`
	PassingCriteria       float64   `json:"passing_criteria"`
	Duration              int       `json:"duration"`
	TotalMarks            int       `json:"total_marks"`
	IsPublished           bool      `json:"is_published"`
	AllowMultipleAttempts bool      `json:"allow_multiple_attempts"`
	ShuffleQuestions      bool      `json:"shuffle_questions"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// QuizListFilterDTO mirrors the query parameters accepted by the quiz listing.
type QuizListFilterDTO struct {
	TrainerID   *string
	IsPublished *bool
}

package dto

import "time"

type OptionDTO struct {
	OptionText string `json:"option_text" binding:"required"`
	IsCorrect  bool   `json:"is_correct"`
}

// QuestionCreateDTO is for trainers adding a question to a quiz. Type-specific
// fields (Options vs CorrectAnswer) are validated in the service against the
// MCQ / TRUE_FALSE invariants.
type QuestionCreateDTO struct {
	QuestionType  string      `json:"question_type" binding:"required,oneof=MCQ TRUE_FALSE"`
	QuestionText  string      `json:"question_text" binding:"required"`
	Options       []OptionDTO `json:"options" binding:"omitempty,dive"`
	CorrectAnswer *string     `json:"correct_answer"`
	Marks         int         `json:"marks" binding:"omitempty,gt=0"`
	OrderIndex    int         `json:"order_index"`
}

// OptionResponseDTO hides IsCorrect from learners: the pointer is nil unless
// the caller is the owning trainer asking for answers.
type OptionResponseDTO struct {
	ID         uint   `json:"id"`
	OptionText string `json:"option_text"`
	IsCorrect  *bool  `json:"is_correct,omitempty"`
}

type QuestionResponseDTO struct {
	ID            uint                `json:"id"`
	QuizID        uint                `json:"quiz_id"`
	QuestionType  string              `json:"question_type"`
	QuestionText  string              `json:"question_text"`
	Options       []OptionResponseDTO `json:"options,omitempty"`
	CorrectAnswer *string             `json:"correct_answer,omitempty"`
	Marks         int                 `json:"marks"`
	OrderIndex    int                 `json:"order_index"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionTypeMCQ       = "MCQ"
	QuestionTypeTrueFalse = "TRUE_FALSE"
)

type Question struct {
	ID            uint             `gorm:"primarykey" json:"id"`
	QuizID        uint             `json:"quiz_id" gorm:"not null;index"`
	QuestionType  string           `json:"question_type" gorm:"not null"` // "MCQ" or "TRUE_FALSE"
	QuestionText  string           `json:"question_text" gorm:"type:text;not null"`
	Options       []QuestionOption `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	CorrectAnswer *string          `json:"correct_answer,omitempty"` // "true"/"false", TRUE_FALSE only
	Marks         int              `json:"marks" gorm:"not null;default:1"`
	OrderIndex    int              `json:"order_index" gorm:"not null;default:0"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
}

type QuestionOption struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	QuestionID uint   `json:"question_id" gorm:"not null;index"`
	OptionText string `json:"option_text" gorm:"type:text;not null"`
	IsCorrect  bool   `json:"is_correct" gorm:"not null;default:false"`
}

// CorrectOption returns the option flagged correct, or nil when none is.
// The authoring invariants guarantee exactly one for MCQ questions; grading
// still tolerates a violation by scoring the answer incorrect.
func (q *Question) CorrectOption() *QuestionOption {
	for i := range q.Options {
		if q.Options[i].IsCorrect {
			return &q.Options[i]
		}
	}
	return nil
}

package model

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID                    uint           `gorm:"primarykey" json:"id"`
	Title                 string         `json:"title" gorm:"not null"`
	Description           string         `json:"description" gorm:"type:text;not null"`
	TrainerID             string         `json:"trainer_id" gorm:"not null;index"`
	PassingCriteria       float64        `json:"passing_criteria" gorm:"not null;default:60"` // percentage, 0-100
	Duration              int            `json:"duration" gorm:"not null;default:30"`         // minutes, enforced client-side
	TotalMarks            int            `json:"total_marks" gorm:"not null;default:100"`
	IsPublished           bool           `json:"is_published" gorm:"not null;default:false"`
	AllowMultipleAttempts bool           `json:"allow_multiple_attempts" gorm:"not null;default:false"`
	ShuffleQuestions      bool           `json:"shuffle_questions" gorm:"not null;default:false"`
	Questions             []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`
}

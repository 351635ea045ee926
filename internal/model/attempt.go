package model

import (
	"time"
)

// QuizAttempt is a learner's graded submission. It is written exactly once at
// grading time and never updated or deleted afterwards, so there are no
// UpdatedAt/DeletedAt columns. TotalMarks is copied from the quiz at submit
// time; later quiz edits do not rewrite historical attempts.
type QuizAttempt struct {
	ID                 uint            `gorm:"primarykey" json:"id"`
	QuizID             uint            `json:"quiz_id" gorm:"not null;index:idx_attempts_quiz_learner,priority:1"`
	LearnerID          string          `json:"learner_id" gorm:"not null;index:idx_attempts_quiz_learner,priority:2"`
	Answers            []AttemptAnswer `json:"answers,omitempty" gorm:"foreignKey:QuizAttemptID;constraint:OnDelete:CASCADE"`
	TotalMarksObtained int             `json:"total_marks_obtained" gorm:"not null;default:0"`
	TotalMarks         int             `json:"total_marks" gorm:"not null"`
	Percentage         float64         `json:"percentage" gorm:"not null"`
	Passed             bool            `json:"passed" gorm:"not null"`
	StartTime          time.Time       `json:"start_time" gorm:"not null"`
	EndTime            time.Time       `json:"end_time" gorm:"not null"`
	TimeTaken          int             `json:"time_taken"` // whole seconds
	CreatedAt          time.Time       `json:"created_at"`
}

// AttemptAnswer holds one graded answer. QuestionID is a weak reference: the
// question may be deleted later and the row stays valid.
type AttemptAnswer struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	QuizAttemptID  uint   `json:"quiz_attempt_id" gorm:"not null;index"`
	QuestionID     uint   `json:"question_id" gorm:"not null"`
	SelectedAnswer string `json:"selected_answer" gorm:"type:text;not null"`
	IsCorrect      bool   `json:"is_correct" gorm:"not null"`
	MarksObtained  int    `json:"marks_obtained" gorm:"not null;default:0"`
}

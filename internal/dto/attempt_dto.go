package dto

import "time"

// AnswerSubmitDTO is one answer inside a submission.
type AnswerSubmitDTO struct {
	QuestionID     uint   `json:"question_id" binding:"required"`
	SelectedAnswer string `json:"selected_answer" binding:"required"`
}

// AttemptSubmitDTO is the full submission payload. StartTime is
// client-supplied and trusted as-is; the server only assigns the end time.
type AttemptSubmitDTO struct {
	QuizID    uint              `json:"quiz_id" binding:"required"`
	StartTime time.Time         `json:"start_time" binding:"required"`
	Answers   []AnswerSubmitDTO `json:"answers" binding:"required,min=1,dive"`
}

type AttemptAnswerDTO struct {
	QuestionID     uint   `json:"question_id"`
	SelectedAnswer string `json:"selected_answer"`
	IsCorrect      bool   `json:"is_correct"`
	MarksObtained  int    `json:"marks_obtained"`
}

type AttemptResponseDTO struct {
	ID                 uint               `json:"id"`
	QuizID             uint               `json:"quiz_id"`
	LearnerID          string             `json:"learner_id"`
	Answers            []AttemptAnswerDTO `json:"answers,omitempty"`
	TotalMarksObtained int                `json:"total_marks_obtained"`
	TotalMarks         int                `json:"total_marks"`
	Percentage         float64            `json:"percentage"`
	Passed             bool               `json:"passed"`
	StartTime          time.Time          `json:"start_time"`
	EndTime            time.Time          `json:"end_time"`
	TimeTaken          int                `json:"time_taken"`
	CreatedAt          time.Time          `json:"created_at"`
}

// AttemptResultDTO is returned from a submission: the graded record plus a
// human-readable pass/fail message.
type AttemptResultDTO struct {
	AttemptResponseDTO
	Message string `json:"message"`
}

// AttemptDetailDTO enriches an attempt with the parent quiz's title and
// passing criteria, read fresh at fetch time.
type AttemptDetailDTO struct {
	AttemptResponseDTO
	QuizTitle           string  `json:"quiz_title"`
	QuizPassingCriteria float64 `json:"quiz_passing_criteria"`
}

type LearnerStatsDTO struct {
	TotalAttempts     int     `json:"total_attempts"`
	Passed            int     `json:"passed"`
	Failed            int     `json:"failed"`
	AveragePercentage float64 `json:"average_percentage"`
}

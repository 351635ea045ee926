package grading

import (
	"strings"

	"github.com/ptnguyen/quizhub/internal/model"
)

// SubmittedAnswer is one (question id, selected answer) pair as received from
// the learner, before any evaluation.
type SubmittedAnswer struct {
	QuestionID     uint
	SelectedAnswer string
}

// EvaluatedAnswer is a SubmittedAnswer with derived correctness and marks.
type EvaluatedAnswer struct {
	QuestionID     uint
	SelectedAnswer string
	IsCorrect      bool
	MarksObtained  int
}

// Result is the outcome of grading a full submission.
type Result struct {
	Answers            []EvaluatedAnswer
	TotalMarksObtained int
}

// Strategy decides correctness for a single question type.
type Strategy interface {
	IsCorrect(q model.Question, selected string) bool
}

// mcqStrategy: exact, case-sensitive match against the text of the option
// flagged correct. No trimming or normalization. A question with no flagged
// option scores incorrect.
type mcqStrategy struct{}

func (mcqStrategy) IsCorrect(q model.Question, selected string) bool {
	opt := q.CorrectOption()
	return opt != nil && selected == opt.OptionText
}

// trueFalseStrategy: lower-cased equality, so "TRUE"/"True"/"true" are
// equivalent.
type trueFalseStrategy struct{}

func (trueFalseStrategy) IsCorrect(q model.Question, selected string) bool {
	return q.CorrectAnswer != nil && strings.ToLower(selected) == strings.ToLower(*q.CorrectAnswer)
}

// Engine grades submissions. It is pure: no I/O, no error returns; the same
// inputs always produce the same Result.
type Engine struct {
	strategies map[string]Strategy
}

func NewEngine() *Engine {
	return &Engine{
		strategies: map[string]Strategy{
			model.QuestionTypeMCQ:       mcqStrategy{},
			model.QuestionTypeTrueFalse: trueFalseStrategy{},
		},
	}
}

// Evaluate scores every submitted answer, in submission order, against the
// authoritative question set. An answer whose question id is not in
// questionsByID (deleted question, malformed payload) degrades to
// incorrect/zero marks with the rest of its fields passed through verbatim;
// it never aborts the submission. Marks are all-or-nothing per question.
func (e *Engine) Evaluate(questionsByID map[uint]model.Question, submitted []SubmittedAnswer) Result {
	result := Result{Answers: make([]EvaluatedAnswer, 0, len(submitted))}

	for _, ans := range submitted {
		evaluated := EvaluatedAnswer{
			QuestionID:     ans.QuestionID,
			SelectedAnswer: ans.SelectedAnswer,
		}

		question, exists := questionsByID[ans.QuestionID]
		if exists {
			if strategy, ok := e.strategies[question.QuestionType]; ok && strategy.IsCorrect(question, ans.SelectedAnswer) {
				evaluated.IsCorrect = true
				evaluated.MarksObtained = question.Marks
			}
		}

		result.TotalMarksObtained += evaluated.MarksObtained
		result.Answers = append(result.Answers, evaluated)
	}

	return result
}

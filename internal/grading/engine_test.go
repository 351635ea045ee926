package grading

import (
	"reflect"
	"testing"

	"github.com/ptnguyen/quizhub/internal/model"
)

func strptr(s string) *string { return &s }

func mcqQuestion(id uint, marks int, correct string, others ...string) model.Question {
	q := model.Question{
		ID:           id,
		QuestionType: model.QuestionTypeMCQ,
		Marks:        marks,
		Options:      []model.QuestionOption{{OptionText: correct, IsCorrect: true}},
	}
	for _, o := range others {
		q.Options = append(q.Options, model.QuestionOption{OptionText: o})
	}
	return q
}

func trueFalseQuestion(id uint, marks int, correct string) model.Question {
	return model.Question{
		ID:            id,
		QuestionType:  model.QuestionTypeTrueFalse,
		Marks:         marks,
		CorrectAnswer: strptr(correct),
	}
}

func TestEvaluate_MCQExactMatch(t *testing.T) {
	engine := NewEngine()
	questions := map[uint]model.Question{1: mcqQuestion(1, 5, "OptionA", "OptionB")}

	result := engine.Evaluate(questions, []SubmittedAnswer{{QuestionID: 1, SelectedAnswer: "OptionA"}})
	if !result.Answers[0].IsCorrect || result.Answers[0].MarksObtained != 5 {
		t.Fatalf("expected correct with 5 marks, got %+v", result.Answers[0])
	}
	if result.TotalMarksObtained != 5 {
		t.Fatalf("expected total 5, got %d", result.TotalMarksObtained)
	}
}

func TestEvaluate_MCQNoTrimmingOrCaseFolding(t *testing.T) {
	engine := NewEngine()
	questions := map[uint]model.Question{1: mcqQuestion(1, 5, "OptionA", "OptionB")}

	for _, selected := range []string{" OptionA", "OptionA ", "optiona"} {
		result := engine.Evaluate(questions, []SubmittedAnswer{{QuestionID: 1, SelectedAnswer: selected}})
		if result.Answers[0].IsCorrect {
			t.Fatalf("selected %q should not match %q", selected, "OptionA")
		}
		if result.Answers[0].MarksObtained != 0 {
			t.Fatalf("incorrect answer must obtain 0 marks, got %d", result.Answers[0].MarksObtained)
		}
	}
}

func TestEvaluate_MCQNoFlaggedCorrectOption(t *testing.T) {
	engine := NewEngine()
	q := model.Question{
		ID:           1,
		QuestionType: model.QuestionTypeMCQ,
		Marks:        3,
		Options: []model.QuestionOption{
			{OptionText: "A"},
			{OptionText: "B"},
		},
	}

	result := engine.Evaluate(map[uint]model.Question{1: q}, []SubmittedAnswer{{QuestionID: 1, SelectedAnswer: "A"}})
	if result.Answers[0].IsCorrect {
		t.Fatal("question without a flagged correct option must score incorrect")
	}
}

func TestEvaluate_TrueFalseCaseInsensitive(t *testing.T) {
	engine := NewEngine()
	questions := map[uint]model.Question{1: trueFalseQuestion(1, 2, "true")}

	for _, selected := range []string{"true", "True", "TRUE"} {
		result := engine.Evaluate(questions, []SubmittedAnswer{{QuestionID: 1, SelectedAnswer: selected}})
		if !result.Answers[0].IsCorrect {
			t.Fatalf("selected %q should match correct answer \"true\"", selected)
		}
		if result.Answers[0].MarksObtained != 2 {
			t.Fatalf("expected 2 marks, got %d", result.Answers[0].MarksObtained)
		}
	}

	result := engine.Evaluate(questions, []SubmittedAnswer{{QuestionID: 1, SelectedAnswer: "false"}})
	if result.Answers[0].IsCorrect {
		t.Fatal("\"false\" must not match correct answer \"true\"")
	}
}

func TestEvaluate_MissingQuestionDegrades(t *testing.T) {
	engine := NewEngine()
	questions := map[uint]model.Question{1: mcqQuestion(1, 4, "A", "B")}

	result := engine.Evaluate(questions, []SubmittedAnswer{
		{QuestionID: 99, SelectedAnswer: "whatever"},
		{QuestionID: 1, SelectedAnswer: "A"},
	})

	if len(result.Answers) != 2 {
		t.Fatalf("a missing question must not abort the submission, got %d answers", len(result.Answers))
	}
	if result.Answers[0].IsCorrect || result.Answers[0].MarksObtained != 0 {
		t.Fatalf("missing question must degrade to incorrect/0, got %+v", result.Answers[0])
	}
	if result.Answers[0].QuestionID != 99 || result.Answers[0].SelectedAnswer != "whatever" {
		t.Fatalf("missing question fields must pass through verbatim, got %+v", result.Answers[0])
	}
	if !result.Answers[1].IsCorrect || result.TotalMarksObtained != 4 {
		t.Fatalf("remaining answers must still grade, got total %d", result.TotalMarksObtained)
	}
}

func TestEvaluate_NoPartialCredit(t *testing.T) {
	engine := NewEngine()
	questions := map[uint]model.Question{
		1: mcqQuestion(1, 7, "A", "B"),
		2: trueFalseQuestion(2, 3, "false"),
	}

	result := engine.Evaluate(questions, []SubmittedAnswer{
		{QuestionID: 1, SelectedAnswer: "B"},
		{QuestionID: 2, SelectedAnswer: "False"},
	})

	for _, ans := range result.Answers {
		q := questions[ans.QuestionID]
		if ans.MarksObtained != 0 && ans.MarksObtained != q.Marks {
			t.Fatalf("marks must be all-or-nothing, question %d got %d of %d", ans.QuestionID, ans.MarksObtained, q.Marks)
		}
	}
	if result.TotalMarksObtained != 3 {
		t.Fatalf("expected total 3, got %d", result.TotalMarksObtained)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	engine := NewEngine()
	questions := map[uint]model.Question{
		1: mcqQuestion(1, 2, "Paris", "London", "Berlin"),
		2: trueFalseQuestion(2, 1, "true"),
		3: mcqQuestion(3, 5, "42", "41"),
	}
	submitted := []SubmittedAnswer{
		{QuestionID: 1, SelectedAnswer: "Paris"},
		{QuestionID: 2, SelectedAnswer: "FALSE"},
		{QuestionID: 3, SelectedAnswer: "41"},
		{QuestionID: 7, SelectedAnswer: "dangling"},
	}

	first := engine.Evaluate(questions, submitted)
	second := engine.Evaluate(questions, submitted)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("grading must be deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

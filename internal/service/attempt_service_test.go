package service

import (
	"testing"
	"time"

	"github.com/ptnguyen/quizhub/internal/apperror"
	"github.com/ptnguyen/quizhub/internal/dto"
	"github.com/ptnguyen/quizhub/internal/grading"
	"github.com/ptnguyen/quizhub/internal/model"
)

type attemptFixture struct {
	quizzes   *fakeQuizRepo
	questions *fakeQuestionRepo
	attempts  *fakeAttemptRepo
	svc       *attemptService
	now       time.Time
}

func newAttemptFixture() *attemptFixture {
	f := &attemptFixture{
		quizzes:   newFakeQuizRepo(),
		questions: newFakeQuestionRepo(),
		attempts:  newFakeAttemptRepo(),
		now:       time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	f.svc = &attemptService{
		quizRepo:     f.quizzes,
		questionRepo: f.questions,
		attemptRepo:  f.attempts,
		engine:       grading.NewEngine(),
		now:          func() time.Time { return f.now },
	}
	return f
}

func (f *attemptFixture) seedQuiz(quiz model.Quiz) uint {
	f.quizzes.Create(&quiz)
	return quiz.ID
}

func (f *attemptFixture) seedMCQ(quizID uint, marks int, correct string, others ...string) uint {
	q := model.Question{
		QuizID:       quizID,
		QuestionType: model.QuestionTypeMCQ,
		QuestionText: "q",
		Marks:        marks,
		Options:      []model.QuestionOption{{OptionText: correct, IsCorrect: true}},
	}
	for _, o := range others {
		q.Options = append(q.Options, model.QuestionOption{OptionText: o})
	}
	f.questions.Create(&q)
	return q.ID
}

func submission(quizID uint, start time.Time, answers ...dto.AnswerSubmitDTO) dto.AttemptSubmitDTO {
	return dto.AttemptSubmitDTO{QuizID: quizID, StartTime: start, Answers: answers}
}

func TestSubmitAttempt_QuizNotFound(t *testing.T) {
	f := newAttemptFixture()

	_, err := f.svc.SubmitAttempt("learner-1", submission(99, f.now, dto.AnswerSubmitDTO{QuestionID: 1, SelectedAnswer: "A"}))
	if apperror.KindOf(err) != apperror.KindNotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestSubmitAttempt_UnpublishedRejected(t *testing.T) {
	f := newAttemptFixture()
	quizID := f.seedQuiz(model.Quiz{Title: "Draft", TrainerID: "trainer-1", TotalMarks: 100, PassingCriteria: 60})

	_, err := f.svc.SubmitAttempt("learner-1", submission(quizID, f.now, dto.AnswerSubmitDTO{QuestionID: 1, SelectedAnswer: "A"}))
	if apperror.KindOf(err) != apperror.KindInvalidState {
		t.Fatalf("expected InvalidState for unpublished quiz, got %v", err)
	}
}

func TestSubmitAttempt_DuplicateRejectedWhenSingleAttempt(t *testing.T) {
	f := newAttemptFixture()
	quizID := f.seedQuiz(model.Quiz{Title: "Quiz", TrainerID: "trainer-1", IsPublished: true, TotalMarks: 10, PassingCriteria: 50})
	questionID := f.seedMCQ(quizID, 10, "A", "B")

	if _, err := f.svc.SubmitAttempt("learner-1", submission(quizID, f.now, dto.AnswerSubmitDTO{QuestionID: questionID, SelectedAnswer: "A"})); err != nil {
		t.Fatalf("first submission should succeed: %v", err)
	}
	_, err := f.svc.SubmitAttempt("learner-1", submission(quizID, f.now, dto.AnswerSubmitDTO{QuestionID: questionID, SelectedAnswer: "A"}))
	if apperror.KindOf(err) != apperror.KindConflict {
		t.Fatalf("expected Conflict on second submission, got %v", err)
	}

	// A different learner is not affected.
	if _, err := f.svc.SubmitAttempt("learner-2", submission(quizID, f.now, dto.AnswerSubmitDTO{QuestionID: questionID, SelectedAnswer: "A"})); err != nil {
		t.Fatalf("other learner's submission should succeed: %v", err)
	}
}

func TestSubmitAttempt_MultipleAttemptsAllowed(t *testing.T) {
	f := newAttemptFixture()
	quizID := f.seedQuiz(model.Quiz{Title: "Quiz", TrainerID: "trainer-1", IsPublished: true, AllowMultipleAttempts: true, TotalMarks: 10, PassingCriteria: 50})
	questionID := f.seedMCQ(quizID, 10, "A", "B")

	for i := 0; i < 2; i++ {
		if _, err := f.svc.SubmitAttempt("learner-1", submission(quizID, f.now, dto.AnswerSubmitDTO{QuestionID: questionID, SelectedAnswer: "A"})); err != nil {
			t.Fatalf("submission %d should succeed: %v", i+1, err)
		}
	}
	if len(f.attempts.attempts) != 2 {
		t.Fatalf("expected 2 persisted attempts, got %d", len(f.attempts.attempts))
	}
}

func TestSubmitAttempt_PassBoundaryInclusive(t *testing.T) {
	f := newAttemptFixture()
	quizID := f.seedQuiz(model.Quiz{Title: "Quiz", TrainerID: "trainer-1", IsPublished: true, TotalMarks: 100, PassingCriteria: 60})
	questionID := f.seedMCQ(quizID, 60, "A", "B")

	resp, err := f.svc.SubmitAttempt("learner-1", submission(quizID, f.now, dto.AnswerSubmitDTO{QuestionID: questionID, SelectedAnswer: "A"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Percentage != 60.0 {
		t.Fatalf("expected percentage 60.0, got %v", resp.Percentage)
	}
	if !resp.Passed {
		t.Fatal("scoring exactly the passing criteria must pass")
	}
	if resp.Message != passMessage {
		t.Fatalf("expected pass message, got %q", resp.Message)
	}
}

func TestSubmitAttempt_ZeroTotalMarksGuard(t *testing.T) {
	f := newAttemptFixture()
	quizID := f.seedQuiz(model.Quiz{Title: "Quiz", TrainerID: "trainer-1", IsPublished: true, TotalMarks: 0, PassingCriteria: 60})
	questionID := f.seedMCQ(quizID, 10, "A", "B")

	resp, err := f.svc.SubmitAttempt("learner-1", submission(quizID, f.now, dto.AnswerSubmitDTO{QuestionID: questionID, SelectedAnswer: "A"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Percentage != 0 {
		t.Fatalf("zero total marks must yield percentage 0, got %v", resp.Percentage)
	}
	if resp.Passed {
		t.Fatal("percentage 0 must not pass a 60%% criteria")
	}
}

func TestSubmitAttempt_TimeTakenFloorsToSeconds(t *testing.T) {
	f := newAttemptFixture()
	quizID := f.seedQuiz(model.Quiz{Title: "Quiz", TrainerID: "trainer-1", IsPublished: true, TotalMarks: 10, PassingCriteria: 50})
	questionID := f.seedMCQ(quizID, 10, "A", "B")

	start := f.now.Add(-61*time.Second - 900*time.Millisecond)
	resp, err := f.svc.SubmitAttempt("learner-1", submission(quizID, start, dto.AnswerSubmitDTO{QuestionID: questionID, SelectedAnswer: "A"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.TimeTaken != 61 {
		t.Fatalf("expected time taken 61s (floored), got %d", resp.TimeTaken)
	}
	if !resp.StartTime.Equal(start) || !resp.EndTime.Equal(f.now) {
		t.Fatalf("start/end times not preserved: %v / %v", resp.StartTime, resp.EndTime)
	}
}

func TestSubmitAttempt_EndToEndScenario(t *testing.T) {
	f := newAttemptFixture()
	quizID := f.seedQuiz(model.Quiz{Title: "Geography", TrainerID: "trainer-1", IsPublished: true, TotalMarks: 4, PassingCriteria: 50})
	q1 := f.seedMCQ(quizID, 2, "Paris", "London")
	q2 := f.seedMCQ(quizID, 2, "Berlin", "Madrid")

	resp, err := f.svc.SubmitAttempt("learner-1", submission(quizID, f.now,
		dto.AnswerSubmitDTO{QuestionID: q1, SelectedAnswer: "Paris"},
		dto.AnswerSubmitDTO{QuestionID: q2, SelectedAnswer: "Madrid"},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.TotalMarksObtained != 2 || resp.TotalMarks != 4 {
		t.Fatalf("expected 2/4 marks, got %d/%d", resp.TotalMarksObtained, resp.TotalMarks)
	}
	if resp.Percentage != 50.0 || !resp.Passed {
		t.Fatalf("expected 50.0%% and passed, got %v passed=%v", resp.Percentage, resp.Passed)
	}
	if len(resp.Answers) != 2 {
		t.Fatalf("expected 2 graded answers, got %d", len(resp.Answers))
	}
	if !resp.Answers[0].IsCorrect || resp.Answers[0].MarksObtained != 2 {
		t.Fatalf("first answer should be correct for 2 marks, got %+v", resp.Answers[0])
	}
	if resp.Answers[1].IsCorrect || resp.Answers[1].MarksObtained != 0 {
		t.Fatalf("second answer should be incorrect for 0 marks, got %+v", resp.Answers[1])
	}
}

func TestGetAttemptByID_EnrichedWithQuizSnapshot(t *testing.T) {
	f := newAttemptFixture()
	quizID := f.seedQuiz(model.Quiz{Title: "Geography", TrainerID: "trainer-1", IsPublished: true, TotalMarks: 10, PassingCriteria: 70})
	questionID := f.seedMCQ(quizID, 10, "A", "B")

	created, err := f.svc.SubmitAttempt("learner-1", submission(quizID, f.now, dto.AnswerSubmitDTO{QuestionID: questionID, SelectedAnswer: "A"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	detail, err := f.svc.GetAttemptByID(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.QuizTitle != "Geography" || detail.QuizPassingCriteria != 70 {
		t.Fatalf("expected fresh quiz snapshot, got %q / %v", detail.QuizTitle, detail.QuizPassingCriteria)
	}

	// Quiz deleted later: the attempt still reads, snapshot fields empty.
	f.quizzes.Delete(quizID)
	detail, err = f.svc.GetAttemptByID(created.ID)
	if err != nil {
		t.Fatalf("attempt must stay readable after quiz deletion: %v", err)
	}
	if detail.QuizTitle != "" {
		t.Fatalf("expected empty snapshot for deleted quiz, got %q", detail.QuizTitle)
	}
}

func TestGetAttemptByID_NotFound(t *testing.T) {
	f := newAttemptFixture()
	if _, err := f.svc.GetAttemptByID(42); apperror.KindOf(err) != apperror.KindNotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestGetLearnerAttempts_NewestFirst(t *testing.T) {
	f := newAttemptFixture()
	quizID := f.seedQuiz(model.Quiz{Title: "Quiz", TrainerID: "trainer-1", IsPublished: true, AllowMultipleAttempts: true, TotalMarks: 10, PassingCriteria: 50})
	questionID := f.seedMCQ(quizID, 10, "A", "B")

	first, _ := f.svc.SubmitAttempt("learner-1", submission(quizID, f.now, dto.AnswerSubmitDTO{QuestionID: questionID, SelectedAnswer: "B"}))
	second, _ := f.svc.SubmitAttempt("learner-1", submission(quizID, f.now, dto.AnswerSubmitDTO{QuestionID: questionID, SelectedAnswer: "A"}))

	attempts, err := f.svc.GetLearnerAttempts(quizID, "learner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}
	if attempts[0].ID != second.ID || attempts[1].ID != first.ID {
		t.Fatalf("expected most-recent-first ordering, got ids %d, %d", attempts[0].ID, attempts[1].ID)
	}
}

func TestGetQuizAttempts_TrainerOwnershipEnforced(t *testing.T) {
	f := newAttemptFixture()
	quizID := f.seedQuiz(model.Quiz{Title: "Quiz", TrainerID: "trainer-1", IsPublished: true, TotalMarks: 10, PassingCriteria: 50})

	if _, err := f.svc.GetQuizAttempts(quizID, "trainer-2"); apperror.KindOf(err) != apperror.KindForbidden {
		t.Fatalf("expected Forbidden for non-owner, got %v", err)
	}
	if _, err := f.svc.GetQuizAttempts(quizID, "trainer-1"); err != nil {
		t.Fatalf("owner must be able to list attempts: %v", err)
	}
}

func TestGetLearnerStats_Aggregation(t *testing.T) {
	f := newAttemptFixture()
	for _, a := range []struct {
		percentage float64
		passed     bool
	}{
		{80, true},
		{40, false},
		{100, true},
	} {
		f.attempts.attempts = append(f.attempts.attempts, model.QuizAttempt{
			ID:         f.attempts.nextID,
			QuizID:     1,
			LearnerID:  "learner-1",
			Percentage: a.percentage,
			Passed:     a.passed,
		})
		f.attempts.nextID++
	}

	stats, err := f.svc.GetLearnerStats("learner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalAttempts != 3 || stats.Passed != 2 || stats.Failed != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if want := 220.0 / 3.0; stats.AveragePercentage != want {
		t.Fatalf("expected average %v, got %v", want, stats.AveragePercentage)
	}
}

func TestGetLearnerStats_EmptyHasZeroAverage(t *testing.T) {
	f := newAttemptFixture()

	stats, err := f.svc.GetLearnerStats("learner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalAttempts != 0 || stats.AveragePercentage != 0 {
		t.Fatalf("expected zeroed stats, got %+v", stats)
	}
}

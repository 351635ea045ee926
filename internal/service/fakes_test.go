package service

import (
	"sort"
	"time"

	"github.com/ptnguyen/quizhub/internal/dto"
	"github.com/ptnguyen/quizhub/internal/model"
	"github.com/ptnguyen/quizhub/internal/repository"
	"gorm.io/gorm"
)

/* ---------- In-memory fakes satisfying the repository interfaces ---------- */

type fakeQuizRepo struct {
	quizzes map[uint]model.Quiz
	nextID  uint
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: map[uint]model.Quiz{}, nextID: 1}
}

func (r *fakeQuizRepo) Create(quiz *model.Quiz) error {
	quiz.ID = r.nextID
	r.nextID++
	quiz.CreatedAt = time.Now()
	r.quizzes[quiz.ID] = *quiz
	return nil
}

func (r *fakeQuizRepo) FindByID(id uint) (*model.Quiz, error) {
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &quiz, nil
}

func (r *fakeQuizRepo) FindAll(filter dto.QuizListFilterDTO) ([]model.Quiz, error) {
	var out []model.Quiz
	for _, quiz := range r.quizzes {
		if filter.TrainerID != nil && quiz.TrainerID != *filter.TrainerID {
			continue
		}
		if filter.IsPublished != nil && quiz.IsPublished != *filter.IsPublished {
			continue
		}
		out = append(out, quiz)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeQuizRepo) Update(quiz *model.Quiz) error {
	if _, ok := r.quizzes[quiz.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.quizzes[quiz.ID] = *quiz
	return nil
}

func (r *fakeQuizRepo) Delete(id uint) error {
	delete(r.quizzes, id)
	return nil
}

type fakeQuestionRepo struct {
	questions map[uint]model.Question
	nextID    uint
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: map[uint]model.Question{}, nextID: 1}
}

func (r *fakeQuestionRepo) Create(question *model.Question) error {
	question.ID = r.nextID
	r.nextID++
	r.questions[question.ID] = *question
	return nil
}

func (r *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	question, ok := r.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &question, nil
}

func (r *fakeQuestionRepo) FindByQuizID(quizID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range r.questions {
		if q.QuizID == quizID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (r *fakeQuestionRepo) Update(question *model.Question) error {
	if _, ok := r.questions[question.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.questions[question.ID] = *question
	return nil
}

func (r *fakeQuestionRepo) Delete(id uint) error {
	delete(r.questions, id)
	return nil
}

type fakeAttemptRepo struct {
	attempts []model.QuizAttempt
	nextID   uint
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{nextID: 1}
}

func (r *fakeAttemptRepo) Create(attempt *model.QuizAttempt) error {
	attempt.ID = r.nextID
	r.nextID++
	attempt.CreatedAt = time.Now()
	r.attempts = append(r.attempts, *attempt)
	return nil
}

func (r *fakeAttemptRepo) CreateExclusive(attempt *model.QuizAttempt) error {
	exists, _ := r.ExistsByQuizAndLearner(attempt.QuizID, attempt.LearnerID)
	if exists {
		return repository.ErrDuplicateAttempt
	}
	return r.Create(attempt)
}

func (r *fakeAttemptRepo) ExistsByQuizAndLearner(quizID uint, learnerID string) (bool, error) {
	for _, a := range r.attempts {
		if a.QuizID == quizID && a.LearnerID == learnerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAttemptRepo) FindByID(id uint) (*model.QuizAttempt, error) {
	for _, a := range r.attempts {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// newestFirst mimics the ORDER BY created_at DESC of the real repository:
// insertion order is chronological, so reversing it is enough.
func newestFirst(attempts []model.QuizAttempt) []model.QuizAttempt {
	out := make([]model.QuizAttempt, 0, len(attempts))
	for i := len(attempts) - 1; i >= 0; i-- {
		out = append(out, attempts[i])
	}
	return out
}

func (r *fakeAttemptRepo) FindByQuizAndLearner(quizID uint, learnerID string) ([]model.QuizAttempt, error) {
	var out []model.QuizAttempt
	for _, a := range r.attempts {
		if a.QuizID == quizID && a.LearnerID == learnerID {
			out = append(out, a)
		}
	}
	return newestFirst(out), nil
}

func (r *fakeAttemptRepo) FindByQuiz(quizID uint) ([]model.QuizAttempt, error) {
	var out []model.QuizAttempt
	for _, a := range r.attempts {
		if a.QuizID == quizID {
			out = append(out, a)
		}
	}
	return newestFirst(out), nil
}

func (r *fakeAttemptRepo) FindAllByLearner(learnerID string) ([]model.QuizAttempt, error) {
	var out []model.QuizAttempt
	for _, a := range r.attempts {
		if a.LearnerID == learnerID {
			out = append(out, a)
		}
	}
	return newestFirst(out), nil
}

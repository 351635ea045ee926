package repository

import (
	"errors"

	"github.com/ptnguyen/quizhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDuplicateAttempt is returned by CreateExclusive when the learner already
// has a persisted attempt for the quiz.
var ErrDuplicateAttempt = errors.New("attempt already exists for this quiz and learner")

// AttemptRepository persists graded attempts. Attempts are immutable: there
// is no update or delete.
type AttemptRepository interface {
	Create(attempt *model.QuizAttempt) error
	CreateExclusive(attempt *model.QuizAttempt) error
	ExistsByQuizAndLearner(quizID uint, learnerID string) (bool, error)
	FindByID(id uint) (*model.QuizAttempt, error)
	FindByQuizAndLearner(quizID uint, learnerID string) ([]model.QuizAttempt, error)
	FindByQuiz(quizID uint) ([]model.QuizAttempt, error)
	FindAllByLearner(learnerID string) ([]model.QuizAttempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.QuizAttempt) error {
	// GORM creates the associated answers along with the attempt.
	return r.db.Create(attempt).Error
}

// CreateExclusive inserts the attempt only if no attempt exists yet for the
// (quiz, learner) pair. The parent quiz row is locked FOR UPDATE inside the
// transaction so two concurrent submissions by the same learner serialize;
// the loser gets ErrDuplicateAttempt. This is the storage-level second line
// of defense behind the service's check-then-act.
func (r *attemptRepository) CreateExclusive(attempt *model.QuizAttempt) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var quiz model.Quiz
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&quiz, attempt.QuizID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.QuizAttempt{}).
			Where("quiz_id = ? AND learner_id = ?", attempt.QuizID, attempt.LearnerID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateAttempt
		}

		return tx.Create(attempt).Error
	})
}

func (r *attemptRepository) ExistsByQuizAndLearner(quizID uint, learnerID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.QuizAttempt{}).
		Where("quiz_id = ? AND learner_id = ?", quizID, learnerID).
		Count(&count).Error
	return count > 0, err
}

func (r *attemptRepository) FindByID(id uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	if err := r.db.Preload("Answers").First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByQuizAndLearner(quizID uint, learnerID string) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.Preload("Answers").
		Where("quiz_id = ? AND learner_id = ?", quizID, learnerID).
		Order("created_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindByQuiz(quizID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.Preload("Answers").
		Where("quiz_id = ?", quizID).
		Order("created_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindAllByLearner(learnerID string) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.Where("learner_id = ?", learnerID).
		Order("created_at DESC").
		Find(&attempts).Error
	return attempts, err
}

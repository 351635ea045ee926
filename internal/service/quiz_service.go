package service

import (
	"github.com/jinzhu/copier"
	"github.com/ptnguyen/quizhub/internal/apperror"
	"github.com/ptnguyen/quizhub/internal/dto"
	"github.com/ptnguyen/quizhub/internal/model"
	"github.com/ptnguyen/quizhub/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuizService interface {
	CreateQuiz(trainerID string, req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
	GetAllQuizzes(filter dto.QuizListFilterDTO) ([]dto.QuizResponseDTO, error)
	GetQuiz(id uint) (*dto.QuizResponseDTO, error)
	UpdateQuiz(id uint, trainerID string, req dto.QuizUpdateDTO) (*dto.QuizResponseDTO, error)
	DeleteQuiz(id uint, trainerID string) error
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) CreateQuiz(trainerID string, req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	quiz := model.Quiz{
		Title:                 req.Title,
		Description:           req.Description,
		TrainerID:             trainerID,
		PassingCriteria:       60,
		Duration:              30,
		TotalMarks:            100,
		IsPublished:           req.IsPublished,
		AllowMultipleAttempts: req.AllowMultipleAttempts,
		ShuffleQuestions:      req.ShuffleQuestions,
	}
	if req.PassingCriteria != nil {
		quiz.PassingCriteria = *req.PassingCriteria
	}
	if req.Duration > 0 {
		quiz.Duration = req.Duration
	}
	if req.TotalMarks > 0 {
		quiz.TotalMarks = req.TotalMarks
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("trainerID", trainerID).Msg("CreateQuiz: failed to persist quiz")
		return nil, apperror.Unavailable("storage unavailable", err)
	}

	var resp dto.QuizResponseDTO
	copier.Copy(&resp, &quiz)
	return &resp, nil
}

func (s *quizService) GetAllQuizzes(filter dto.QuizListFilterDTO) ([]dto.QuizResponseDTO, error) {
	quizzes, err := s.quizRepo.FindAll(filter)
	if err != nil {
		log.Error().Err(err).Msg("GetAllQuizzes: repository error")
		return nil, apperror.Unavailable("storage unavailable", err)
	}

	resp := make([]dto.QuizResponseDTO, 0, len(quizzes))
	for i := range quizzes {
		var q dto.QuizResponseDTO
		copier.Copy(&q, &quizzes[i])
		resp = append(resp, q)
	}
	return resp, nil
}

func (s *quizService) GetQuiz(id uint) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		return nil, storageErr(err, "Quiz not found")
	}

	var resp dto.QuizResponseDTO
	copier.Copy(&resp, quiz)
	return &resp, nil
}

func (s *quizService) UpdateQuiz(id uint, trainerID string, req dto.QuizUpdateDTO) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		return nil, storageErr(err, "Quiz not found")
	}
	if quiz.TrainerID != trainerID {
		return nil, apperror.Forbidden("Not authorized to update this quiz")
	}

	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}
	if req.PassingCriteria != nil {
		quiz.PassingCriteria = *req.PassingCriteria
	}
	if req.Duration != nil {
		quiz.Duration = *req.Duration
	}
	if req.TotalMarks != nil {
		quiz.TotalMarks = *req.TotalMarks
	}
	if req.IsPublished != nil {
		quiz.IsPublished = *req.IsPublished
	}
	if req.AllowMultipleAttempts != nil {
		quiz.AllowMultipleAttempts = *req.AllowMultipleAttempts
	}
	if req.ShuffleQuestions != nil {
		quiz.ShuffleQuestions = *req.ShuffleQuestions
	}

	if err := s.quizRepo.Update(quiz); err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("UpdateQuiz: failed to persist changes")
		return nil, apperror.Unavailable("storage unavailable", err)
	}

	var resp dto.QuizResponseDTO
	copier.Copy(&resp, quiz)
	return &resp, nil
}

// DeleteQuiz removes the quiz and cascades its questions. Historical attempts
// stay in place; their answers keep the now-dangling question ids.
func (s *quizService) DeleteQuiz(id uint, trainerID string) error {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		return storageErr(err, "Quiz not found")
	}
	if quiz.TrainerID != trainerID {
		return apperror.Forbidden("Not authorized to delete this quiz")
	}

	if err := s.quizRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("DeleteQuiz: failed to delete quiz")
		return apperror.Unavailable("storage unavailable", err)
	}
	log.Info().Uint("quizID", id).Str("trainerID", trainerID).Msg("Quiz and questions deleted")
	return nil
}

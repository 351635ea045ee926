package service

import (
	"math/rand"

	"github.com/jinzhu/copier"
	"github.com/ptnguyen/quizhub/internal/apperror"
	"github.com/ptnguyen/quizhub/internal/dto"
	"github.com/ptnguyen/quizhub/internal/model"
	"github.com/ptnguyen/quizhub/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	AddQuestion(quizID uint, trainerID string, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	GetQuizQuestions(quizID uint, callerID string, includeAnswers bool) ([]dto.QuestionResponseDTO, error)
	UpdateQuestion(questionID uint, trainerID string, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	DeleteQuestion(questionID uint, trainerID string) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
	quizRepo     repository.QuizRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository, quizRepo repository.QuizRepository) QuestionService {
	return &questionService{questionRepo: questionRepo, quizRepo: quizRepo}
}

// validateQuestion enforces the authoring invariants: an MCQ question needs
// at least 2 options with exactly one flagged correct; a TRUE_FALSE question
// needs a "true"/"false" correct answer. Violations never reach storage.
func validateQuestion(req dto.QuestionCreateDTO) error {
	switch req.QuestionType {
	case model.QuestionTypeMCQ:
		if len(req.Options) < 2 {
			return apperror.Validation("MCQ must have at least 2 options")
		}
		correct := 0
		for _, opt := range req.Options {
			if opt.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return apperror.Validation("MCQ must have exactly one correct answer")
		}
	case model.QuestionTypeTrueFalse:
		if req.CorrectAnswer == nil || (*req.CorrectAnswer != "true" && *req.CorrectAnswer != "false") {
			return apperror.Validation("TRUE_FALSE question must have a correct answer of \"true\" or \"false\"")
		}
	default:
		return apperror.Validation("question_type must be MCQ or TRUE_FALSE")
	}
	return nil
}

func buildQuestionModel(quizID uint, req dto.QuestionCreateDTO) model.Question {
	question := model.Question{
		QuizID:       quizID,
		QuestionType: req.QuestionType,
		QuestionText: req.QuestionText,
		Marks:        1,
		OrderIndex:   req.OrderIndex,
	}
	if req.Marks > 0 {
		question.Marks = req.Marks
	}
	switch req.QuestionType {
	case model.QuestionTypeMCQ:
		for _, opt := range req.Options {
			question.Options = append(question.Options, model.QuestionOption{
				OptionText: opt.OptionText,
				IsCorrect:  opt.IsCorrect,
			})
		}
	case model.QuestionTypeTrueFalse:
		question.CorrectAnswer = req.CorrectAnswer
	}
	return question
}

func (s *questionService) AddQuestion(quizID uint, trainerID string, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		return nil, storageErr(err, "Quiz not found")
	}
	if quiz.TrainerID != trainerID {
		return nil, apperror.Forbidden("Not authorized to add questions to this quiz")
	}
	if err := validateQuestion(req); err != nil {
		return nil, err
	}

	question := buildQuestionModel(quizID, req)
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("AddQuestion: failed to persist question")
		return nil, apperror.Unavailable("storage unavailable", err)
	}

	resp := toQuestionDTO(&question, true)
	return &resp, nil
}

// GetQuizQuestions lists a quiz's questions in display order. Correct answers
// are stripped unless the caller owns the quiz and asked for them; when the
// quiz shuffles and answers are hidden, presentation order is randomized.
func (s *questionService) GetQuizQuestions(quizID uint, callerID string, includeAnswers bool) ([]dto.QuestionResponseDTO, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		return nil, storageErr(err, "Quiz not found")
	}

	questions, err := s.questionRepo.FindByQuizID(quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetQuizQuestions: repository error")
		return nil, apperror.Unavailable("storage unavailable", err)
	}

	withAnswers := includeAnswers && quiz.TrainerID == callerID

	resp := make([]dto.QuestionResponseDTO, 0, len(questions))
	for i := range questions {
		resp = append(resp, toQuestionDTO(&questions[i], withAnswers))
	}

	if quiz.ShuffleQuestions && !withAnswers {
		rand.Shuffle(len(resp), func(i, j int) { resp[i], resp[j] = resp[j], resp[i] })
	}
	return resp, nil
}

func (s *questionService) UpdateQuestion(questionID uint, trainerID string, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		return nil, storageErr(err, "Question not found")
	}
	quiz, err := s.quizRepo.FindByID(question.QuizID)
	if err != nil {
		return nil, storageErr(err, "Quiz not found")
	}
	if quiz.TrainerID != trainerID {
		return nil, apperror.Forbidden("Not authorized to update this question")
	}
	if err := validateQuestion(req); err != nil {
		return nil, err
	}

	updated := buildQuestionModel(question.QuizID, req)
	updated.ID = question.ID
	updated.CreatedAt = question.CreatedAt

	if err := s.questionRepo.Update(&updated); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("UpdateQuestion: failed to persist changes")
		return nil, apperror.Unavailable("storage unavailable", err)
	}

	resp := toQuestionDTO(&updated, true)
	return &resp, nil
}

func (s *questionService) DeleteQuestion(questionID uint, trainerID string) error {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		return storageErr(err, "Question not found")
	}
	quiz, err := s.quizRepo.FindByID(question.QuizID)
	if err != nil {
		return storageErr(err, "Quiz not found")
	}
	if quiz.TrainerID != trainerID {
		return apperror.Forbidden("Not authorized to delete this question")
	}

	if err := s.questionRepo.Delete(questionID); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("DeleteQuestion: failed to delete question")
		return apperror.Unavailable("storage unavailable", err)
	}
	return nil
}

func toQuestionDTO(q *model.Question, withAnswers bool) dto.QuestionResponseDTO {
	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, q)
	resp.Options = make([]dto.OptionResponseDTO, 0, len(q.Options))
	for _, opt := range q.Options {
		optDTO := dto.OptionResponseDTO{ID: opt.ID, OptionText: opt.OptionText}
		if withAnswers {
			isCorrect := opt.IsCorrect
			optDTO.IsCorrect = &isCorrect
		}
		resp.Options = append(resp.Options, optDTO)
	}
	if !withAnswers {
		resp.CorrectAnswer = nil
	}
	return resp
}

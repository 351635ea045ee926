package service

import (
	"errors"
	"math"
	"time"

	"github.com/jinzhu/copier"
	"github.com/ptnguyen/quizhub/internal/apperror"
	"github.com/ptnguyen/quizhub/internal/dto"
	"github.com/ptnguyen/quizhub/internal/grading"
	"github.com/ptnguyen/quizhub/internal/model"
	"github.com/ptnguyen/quizhub/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	passMessage = "Congratulations! You passed the quiz."
	failMessage = "Quiz submitted. Keep learning!"
)

// AttemptService is the attempt lifecycle manager: it enforces submission
// preconditions, orchestrates grading, persists the immutable attempt record,
// and serves the read paths over attempts.
type AttemptService interface {
	SubmitAttempt(learnerID string, req dto.AttemptSubmitDTO) (*dto.AttemptResultDTO, error)
	GetAttemptByID(id uint) (*dto.AttemptDetailDTO, error)
	GetLearnerAttempts(quizID uint, learnerID string) ([]dto.AttemptResponseDTO, error)
	GetQuizAttempts(quizID uint, trainerID string) ([]dto.AttemptResponseDTO, error)
	GetLearnerStats(learnerID string) (*dto.LearnerStatsDTO, error)
}

type attemptService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	engine       *grading.Engine
	now          func() time.Time
}

func NewAttemptService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	engine *grading.Engine,
) AttemptService {
	return &attemptService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		engine:       engine,
		now:          time.Now,
	}
}

// SubmitAttempt runs the submission pipeline: eligibility checks, grading,
// timing, persistence. Each check short-circuits with a classified error.
// The attempt is fully computed before the single persist call, so no
// multi-store transaction is needed.
func (s *attemptService) SubmitAttempt(learnerID string, req dto.AttemptSubmitDTO) (*dto.AttemptResultDTO, error) {
	quiz, err := s.quizRepo.FindByID(req.QuizID)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", req.QuizID).Msg("SubmitAttempt: quiz lookup failed")
		return nil, storageErr(err, "Quiz not found")
	}

	if !quiz.IsPublished {
		return nil, apperror.InvalidState("Quiz is not published yet")
	}

	if !quiz.AllowMultipleAttempts {
		exists, err := s.attemptRepo.ExistsByQuizAndLearner(quiz.ID, learnerID)
		if err != nil {
			return nil, apperror.Unavailable("storage unavailable", err)
		}
		if exists {
			return nil, apperror.Conflict("Multiple attempts not allowed for this quiz")
		}
	}

	questions, err := s.questionRepo.FindByQuizID(quiz.ID)
	if err != nil {
		return nil, apperror.Unavailable("storage unavailable", err)
	}
	questionsByID := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		questionsByID[q.ID] = q
	}

	submitted := make([]grading.SubmittedAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		submitted = append(submitted, grading.SubmittedAnswer{
			QuestionID:     a.QuestionID,
			SelectedAnswer: a.SelectedAnswer,
		})
	}
	result := s.engine.Evaluate(questionsByID, submitted)

	endTime := s.now()
	timeTaken := int(math.Floor(endTime.Sub(req.StartTime).Seconds()))

	percentage := 0.0
	if quiz.TotalMarks > 0 {
		percentage = float64(result.TotalMarksObtained) / float64(quiz.TotalMarks) * 100
	}
	passed := percentage >= quiz.PassingCriteria

	attempt := model.QuizAttempt{
		QuizID:             quiz.ID,
		LearnerID:          learnerID,
		TotalMarksObtained: result.TotalMarksObtained,
		TotalMarks:         quiz.TotalMarks,
		Percentage:         percentage,
		Passed:             passed,
		StartTime:          req.StartTime,
		EndTime:            endTime,
		TimeTaken:          timeTaken,
	}
	for _, ans := range result.Answers {
		attempt.Answers = append(attempt.Answers, model.AttemptAnswer{
			QuestionID:     ans.QuestionID,
			SelectedAnswer: ans.SelectedAnswer,
			IsCorrect:      ans.IsCorrect,
			MarksObtained:  ans.MarksObtained,
		})
	}

	if quiz.AllowMultipleAttempts {
		err = s.attemptRepo.Create(&attempt)
	} else {
		err = s.attemptRepo.CreateExclusive(&attempt)
	}
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAttempt) {
			return nil, apperror.Conflict("Multiple attempts not allowed for this quiz")
		}
		log.Error().Err(err).Uint("quizID", quiz.ID).Str("learnerID", learnerID).Msg("SubmitAttempt: failed to persist attempt")
		return nil, apperror.Unavailable("storage unavailable", err)
	}

	log.Info().
		Uint("attemptID", attempt.ID).
		Uint("quizID", quiz.ID).
		Str("learnerID", learnerID).
		Int("marks", attempt.TotalMarksObtained).
		Float64("percentage", attempt.Percentage).
		Bool("passed", attempt.Passed).
		Msg("Attempt graded")

	resp := dto.AttemptResultDTO{AttemptResponseDTO: toAttemptDTO(&attempt)}
	if passed {
		resp.Message = passMessage
	} else {
		resp.Message = failMessage
	}
	return &resp, nil
}

// GetAttemptByID returns the attempt enriched with the parent quiz's current
// title and passing criteria. The snapshot is taken at read time; a quiz
// deleted since the attempt leaves the enrichment fields empty.
func (s *attemptService) GetAttemptByID(id uint) (*dto.AttemptDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByID(id)
	if err != nil {
		return nil, storageErr(err, "Attempt not found")
	}

	resp := dto.AttemptDetailDTO{AttemptResponseDTO: toAttemptDTO(attempt)}
	if quiz, err := s.quizRepo.FindByID(attempt.QuizID); err == nil {
		resp.QuizTitle = quiz.Title
		resp.QuizPassingCriteria = quiz.PassingCriteria
	} else {
		log.Warn().Err(err).Uint("quizID", attempt.QuizID).Msg("GetAttemptByID: quiz snapshot unavailable")
	}
	return &resp, nil
}

func (s *attemptService) GetLearnerAttempts(quizID uint, learnerID string) ([]dto.AttemptResponseDTO, error) {
	attempts, err := s.attemptRepo.FindByQuizAndLearner(quizID, learnerID)
	if err != nil {
		return nil, apperror.Unavailable("storage unavailable", err)
	}
	return toAttemptDTOs(attempts), nil
}

// GetQuizAttempts is the trainer-only view over every attempt on a quiz.
func (s *attemptService) GetQuizAttempts(quizID uint, trainerID string) ([]dto.AttemptResponseDTO, error) {
	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		return nil, storageErr(err, "Quiz not found")
	}
	if quiz.TrainerID != trainerID {
		return nil, apperror.Forbidden("Not authorized to view attempts for this quiz")
	}

	attempts, err := s.attemptRepo.FindByQuiz(quizID)
	if err != nil {
		return nil, apperror.Unavailable("storage unavailable", err)
	}
	return toAttemptDTOs(attempts), nil
}

func (s *attemptService) GetLearnerStats(learnerID string) (*dto.LearnerStatsDTO, error) {
	attempts, err := s.attemptRepo.FindAllByLearner(learnerID)
	if err != nil {
		return nil, apperror.Unavailable("storage unavailable", err)
	}

	stats := dto.LearnerStatsDTO{TotalAttempts: len(attempts)}
	sum := 0.0
	for _, a := range attempts {
		if a.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
		sum += a.Percentage
	}
	if len(attempts) > 0 {
		stats.AveragePercentage = sum / float64(len(attempts))
	}
	return &stats, nil
}

func toAttemptDTO(attempt *model.QuizAttempt) dto.AttemptResponseDTO {
	var resp dto.AttemptResponseDTO
	copier.Copy(&resp, attempt)
	resp.Answers = make([]dto.AttemptAnswerDTO, 0, len(attempt.Answers))
	for _, ans := range attempt.Answers {
		resp.Answers = append(resp.Answers, dto.AttemptAnswerDTO{
			QuestionID:     ans.QuestionID,
			SelectedAnswer: ans.SelectedAnswer,
			IsCorrect:      ans.IsCorrect,
			MarksObtained:  ans.MarksObtained,
		})
	}
	return resp
}

func toAttemptDTOs(attempts []model.QuizAttempt) []dto.AttemptResponseDTO {
	resp := make([]dto.AttemptResponseDTO, 0, len(attempts))
	for i := range attempts {
		resp = append(resp, toAttemptDTO(&attempts[i]))
	}
	return resp
}

package learner

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ptnguyen/quizhub/internal/controller"
	"github.com/ptnguyen/quizhub/internal/dto"
	"github.com/ptnguyen/quizhub/internal/middleware"
	"github.com/ptnguyen/quizhub/internal/service"
	"github.com/rs/zerolog/log"
)

// AttemptController covers the learner surface: browsing quizzes, submitting
// attempts, and reading graded history and stats.
type AttemptController struct {
	quizService     service.QuizService
	questionService service.QuestionService
	attemptService  service.AttemptService
}

func NewAttemptController(qs service.QuizService, qts service.QuestionService, ats service.AttemptService) *AttemptController {
	return &AttemptController{quizService: qs, questionService: qts, attemptService: ats}
}

// GetAllQuizzes godoc
// @Summary List quizzes
// @Description Lists quizzes newest first, optionally filtered by trainer_id and is_published.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param trainer_id query string false "Filter by owning trainer"
// @Param is_published query bool false "Filter by publication state"
// @Success 200 {array} dto.QuizResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /quizzes [get]
func (c *AttemptController) GetAllQuizzes(ctx *gin.Context) {
	var filter dto.QuizListFilterDTO
	if v := ctx.Query("trainer_id"); v != "" {
		filter.TrainerID = &v
	}
	if v := ctx.Query("is_published"); v != "" {
		published := v == "true"
		filter.IsPublished = &published
	}

	resp, err := c.quizService.GetAllQuizzes(filter)
	if err != nil {
		log.Error().Err(err).Msg("GetAllQuizzes: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetQuiz godoc
// @Summary Get a quiz
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id} [get]
func (c *AttemptController) GetQuiz(ctx *gin.Context) {
	quizID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.quizService.GetQuiz(quizID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetQuizQuestions godoc
// @Summary List a quiz's questions
// @Description Questions in display order with correct answers stripped. The owning trainer may pass include_answers=true; shuffled quizzes randomize presentation order for everyone else.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param include_answers query bool false "Include correct answers (owner only)"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id}/questions [get]
func (c *AttemptController) GetQuizQuestions(ctx *gin.Context) {
	quizID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	includeAnswers := ctx.Query("include_answers") == "true"

	resp, err := c.questionService.GetQuizQuestions(quizID, middleware.CallerID(ctx), includeAnswers)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAttempt godoc
// @Summary (Learner) Submit a quiz attempt
// @Description Grades the submitted answers against the quiz's question set and persists the immutable attempt record.
// @Tags Learner - Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body dto.AttemptSubmitDTO true "Quiz id, start time, answers"
// @Success 201 {object} dto.AttemptResultDTO
// @Failure 400 {object} dto.ErrorResponse "Unpublished quiz, duplicate attempt, or invalid body"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /attempts [post]
func (c *AttemptController) SubmitAttempt(ctx *gin.Context) {
	var req dto.AttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	learnerID := middleware.CallerID(ctx)
	log.Info().Uint("quizID", req.QuizID).Str("learnerID", learnerID).Int("answerCount", len(req.Answers)).Msg("Received attempt submission")

	resp, err := c.attemptService.SubmitAttempt(learnerID, req)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", req.QuizID).Str("learnerID", learnerID).Msg("SubmitAttempt: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetAttempt godoc
// @Summary Get an attempt by id
// @Description Returns the graded attempt enriched with the quiz's current title and passing criteria.
// @Tags Learner - Attempts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{id} [get]
func (c *AttemptController) GetAttempt(ctx *gin.Context) {
	attemptID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.attemptService.GetAttemptByID(attemptID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetMyAttempts godoc
// @Summary (Learner) List own attempts for a quiz
// @Description The caller's attempts on the quiz, most recent first.
// @Tags Learner - Attempts
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {array} dto.AttemptResponseDTO
// @Router /attempts/quiz/{quiz_id}/learner [get]
func (c *AttemptController) GetMyAttempts(ctx *gin.Context) {
	quizID, ok := controller.ParseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}

	resp, err := c.attemptService.GetLearnerAttempts(quizID, middleware.CallerID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetStats godoc
// @Summary (Learner) Aggregate attempt statistics
// @Description Attempt count, pass/fail split, and mean percentage across all of the caller's attempts.
// @Tags Learner - Attempts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.LearnerStatsDTO
// @Router /attempts/stats [get]
func (c *AttemptController) GetStats(ctx *gin.Context) {
	resp, err := c.attemptService.GetLearnerStats(middleware.CallerID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

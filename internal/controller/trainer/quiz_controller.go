package trainer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ptnguyen/quizhub/internal/controller"
	"github.com/ptnguyen/quizhub/internal/dto"
	"github.com/ptnguyen/quizhub/internal/middleware"
	"github.com/ptnguyen/quizhub/internal/service"
	"github.com/rs/zerolog/log"
)

// QuizController covers the trainer-only authoring surface: quiz CRUD,
// question CRUD, and the quiz-wide attempt listing.
type QuizController struct {
	quizService     service.QuizService
	questionService service.QuestionService
	attemptService  service.AttemptService
}

func NewQuizController(qs service.QuizService, qts service.QuestionService, ats service.AttemptService) *QuizController {
	return &QuizController{quizService: qs, questionService: qts, attemptService: ats}
}

// CreateQuiz godoc
// @Summary (Trainer) Create a quiz
// @Description Creates a quiz owned by the calling trainer.
// @Tags Trainer - Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz body dto.QuizCreateDTO true "Quiz metadata"
// @Success 201 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Trainer role required"
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.quizService.CreateQuiz(middleware.CallerID(ctx), req)
	if err != nil {
		log.Error().Err(err).Msg("CreateQuiz: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateQuiz godoc
// @Summary (Trainer) Update a quiz
// @Description Partially updates a quiz. Only the owning trainer may update it.
// @Tags Trainer - Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param quiz body dto.QuizUpdateDTO true "Fields to update"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 403 {object} dto.ErrorResponse "Not the quiz owner"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	quizID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuizUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.quizService.UpdateQuiz(quizID, middleware.CallerID(ctx), req)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("UpdateQuiz: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuiz godoc
// @Summary (Trainer) Delete a quiz
// @Description Deletes a quiz and all of its questions. Historical attempts are kept.
// @Tags Trainer - Quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Not the quiz owner"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	quizID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.quizService.DeleteQuiz(quizID, middleware.CallerID(ctx)); err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("DeleteQuiz: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Quiz and questions deleted successfully"})
}

// AddQuestion godoc
// @Summary (Trainer) Add a question to a quiz
// @Description Adds an MCQ or TRUE_FALSE question. MCQ needs at least 2 options with exactly one correct; TRUE_FALSE needs a "true"/"false" correct answer.
// @Tags Trainer - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param question body dto.QuestionCreateDTO true "Question definition"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invariant violation or invalid body"
// @Failure 403 {object} dto.ErrorResponse "Not the quiz owner"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id}/questions [post]
func (c *QuizController) AddQuestion(ctx *gin.Context) {
	quizID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.questionService.AddQuestion(quizID, middleware.CallerID(ctx), req)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("AddQuestion: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateQuestion godoc
// @Summary (Trainer) Update a question
// @Description Replaces a question's content and option set, re-validating the type invariants.
// @Tags Trainer - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param question_id path int true "Question ID"
// @Param question body dto.QuestionCreateDTO true "Question definition"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invariant violation or invalid body"
// @Failure 403 {object} dto.ErrorResponse "Not the quiz owner"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /quizzes/{id}/questions/{question_id} [put]
func (c *QuizController) UpdateQuestion(ctx *gin.Context) {
	questionID, ok := controller.ParseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.questionService.UpdateQuestion(questionID, middleware.CallerID(ctx), req)
	if err != nil {
		log.Warn().Err(err).Uint("questionID", questionID).Msg("UpdateQuestion: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuestion godoc
// @Summary (Trainer) Delete a question
// @Description Deletes a question. Existing attempt answers keep its id as a dangling reference.
// @Tags Trainer - Questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Not the quiz owner"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /quizzes/{id}/questions/{question_id} [delete]
func (c *QuizController) DeleteQuestion(ctx *gin.Context) {
	questionID, ok := controller.ParseIDParam(ctx, "question_id")
	if !ok {
		return
	}

	if err := c.questionService.DeleteQuestion(questionID, middleware.CallerID(ctx)); err != nil {
		log.Warn().Err(err).Uint("questionID", questionID).Msg("DeleteQuestion: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Question deleted successfully"})
}

// GetQuizAttempts godoc
// @Summary (Trainer) List all attempts for a quiz
// @Description Returns every learner's attempts on the quiz, most recent first. Owner only.
// @Tags Trainer - Attempts
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {array} dto.AttemptResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Not the quiz owner"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /attempts/quiz/{quiz_id}/all [get]
func (c *QuizController) GetQuizAttempts(ctx *gin.Context) {
	quizID, ok := controller.ParseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}

	resp, err := c.attemptService.GetQuizAttempts(quizID, middleware.CallerID(ctx))
	if err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("GetQuizAttempts: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

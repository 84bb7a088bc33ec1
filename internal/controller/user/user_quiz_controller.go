package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizapi/internal/controller"
	"github.com/lshigami/quizapi/internal/dto"
	"github.com/lshigami/quizapi/internal/service"
	"github.com/rs/zerolog/log"
)

type UserQuizController struct {
	userQuizService       service.UserQuizService
	quizSubmissionService service.QuizSubmissionService
}

func NewUserQuizController(uqs service.UserQuizService, qss service.QuizSubmissionService) *UserQuizController {
	return &UserQuizController{
		userQuizService:       uqs,
		quizSubmissionService: qss,
	}
}

// GetAllQuizzes godoc
// @Summary List quizzes
// @Description Every quiz, newest first. Questions are not included.
// @Tags User - Quizzes
// @Produce json
// @Success 200 {object} dto.QuizListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *UserQuizController) GetAllQuizzes(ctx *gin.Context) {
	quizzes, err := c.userQuizService.GetAllQuizzes(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, dto.QuizListResponse{Quizzes: quizzes})
}

// GetQuizDetails godoc
// @Summary Get a quiz with its questions
// @Description Questions come in creation order. Correct answers are never included.
// @Tags User - Quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{id} [get]
func (c *UserQuizController) GetQuizDetails(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	quiz, err := c.userQuizService.GetQuizDetails(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, dto.QuizDetailResponse{Quiz: *quiz})
}

// SubmitQuiz godoc
// @Summary Submit answers and get a score
// @Description Scores the answers against the stored correct options. Answers for questions outside the quiz are ignored.
// @Description Nothing is stored.
// @Tags User - Quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param submission body dto.QuizSubmitDTO true "Selected option per question"
// @Success 200 {object} dto.ScoreResultDTO
// @Failure 400 {object} dto.ErrorResponse "No answers, invalid quiz ID, or malformed body"
// @Failure 404 {object} dto.ErrorResponse "Quiz or questions not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{id}/submit [post]
func (c *UserQuizController) SubmitQuiz(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}

	var req dto.QuizSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Uint("quizID", id).Msg("User SubmitQuiz: Failed to bind JSON")
		_ = ctx.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	result, err := c.quizSubmissionService.SubmitQuiz(ctx.Request.Context(), id, req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

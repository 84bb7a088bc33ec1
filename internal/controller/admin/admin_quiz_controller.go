package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizapi/internal/controller"
	"github.com/lshigami/quizapi/internal/dto"
	"github.com/lshigami/quizapi/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminQuizController struct {
	adminQuizService service.AdminQuizService
}

func NewAdminQuizController(adminQuizService service.AdminQuizService) *AdminQuizController {
	return &AdminQuizController{adminQuizService: adminQuizService}
}

// CreateQuiz godoc
// @Summary (Admin) Create a quiz with its questions
// @Description Validates every question, then stores the quiz and all questions in one transaction.
// @Description A question whose options contain single-letter keys (a..z) is multiple choice and its correct_option must name one of the option keys.
// @Description Any other options object makes it free text, graded by exact match against correct_option.
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Security AdminToken
// @Param quiz body dto.QuizCreateDTO true "Quiz title and questions (see dto.QuestionCreateDTO for one entry)"
// @Success 201 {object} dto.QuizCreatedResponse "Quiz created"
// @Failure 400 {object} dto.ErrorResponse "Missing title/questions, invalid questions, or malformed body"
// @Failure 401 {object} dto.ErrorResponse "Missing or wrong admin token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [post]
func (c *AdminQuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuiz: Failed to bind JSON")
		_ = ctx.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	quiz, err := c.adminQuizService.CreateQuiz(ctx.Request.Context(), req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.QuizCreatedResponse{Quiz: *quiz})
}

// DeleteQuiz godoc
// @Summary (Admin) Delete a quiz
// @Description Deletes the quiz and, through the foreign key cascade, all of its questions.
// @Tags Admin - Quizzes
// @Produce json
// @Security AdminToken
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizDeletedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID"
// @Failure 401 {object} dto.ErrorResponse "Missing or wrong admin token"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{id} [delete]
func (c *AdminQuizController) DeleteQuiz(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.adminQuizService.DeleteQuiz(ctx.Request.Context(), id); err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, dto.QuizDeletedResponse{Deleted: id})
}

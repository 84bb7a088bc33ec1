package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizapi/internal/dto"
	"github.com/lshigami/quizapi/internal/service"
	"github.com/rs/zerolog/log"
)

// ErrorHandler renders the last error a handler attached with ctx.Error. Handlers
// only attach errors; the status code and body shape are decided here.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		ginErr := c.Errors.Last()
		status, body := errorResponse(ginErr)
		if status >= http.StatusInternalServerError {
			log.Error().Err(ginErr.Err).
				Str("request_id", c.GetString(RequestIDKey)).
				Str("path", c.Request.URL.Path).
				Msg("Request failed")
		}
		c.AbortWithStatusJSON(status, body)
	}
}

var sentinelStatus = map[error]int{
	service.ErrInvalidQuiz:       http.StatusBadRequest,
	service.ErrNoAnswers:         http.StatusBadRequest,
	service.ErrQuizNotFound:      http.StatusNotFound,
	service.ErrQuestionsNotFound: http.StatusNotFound,
}

func errorResponse(ginErr *gin.Error) (int, dto.ErrorResponse) {
	err := ginErr.Err

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid questions", Details: verr.Issues}
	}
	for sentinel, status := range sentinelStatus {
		if errors.Is(err, sentinel) {
			return status, dto.ErrorResponse{Error: sentinel.Error()}
		}
	}

	if ginErr.IsType(gin.ErrorTypeBind) {
		return http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Message: err.Error()}
	}
	return http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error", Message: err.Error()}
}

// Recovery turns a panic into the same 500 body the error handler produces.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: fmt.Sprint(recovered),
		})
	})
}

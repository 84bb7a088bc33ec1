package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/quizapi/internal/dto"
)

var (
	ErrInvalidQuiz       = errors.New("title and questions[] required")
	ErrNoAnswers         = errors.New("answers[] required")
	ErrQuizNotFound      = errors.New("Quiz not found")
	ErrQuestionsNotFound = errors.New("Quiz or questions not found")
)

// ValidationError carries every problem found in a quiz's questions.
type ValidationError struct {
	Issues []dto.ValidationIssue
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid questions: %d issue(s)", len(e.Issues))
}

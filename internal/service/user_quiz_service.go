package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/quizapi/internal/dto"
	"github.com/lshigami/quizapi/internal/repository"
	"github.com/rs/zerolog/log"
)

type UserQuizService interface {
	GetAllQuizzes(ctx context.Context) ([]dto.QuizSummaryDTO, error)
	GetQuizDetails(ctx context.Context, quizID uint) (*dto.QuizDetailDTO, error)
}

type userQuizService struct {
	quizRepo repository.QuizRepository
}

func NewUserQuizService(quizRepo repository.QuizRepository) UserQuizService {
	return &userQuizService{quizRepo: quizRepo}
}

func (s *userQuizService) GetAllQuizzes(ctx context.Context) ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all quizzes from repository")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	dtos := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	if err := copier.Copy(&dtos, &quizzes); err != nil {
		return nil, fmt.Errorf("error preparing quiz list: %w", err)
	}
	return dtos, nil
}

func (s *userQuizService) GetQuizDetails(ctx context.Context, quizID uint) (*dto.QuizDetailDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(ctx, quizID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrQuizNotFound
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to get quiz details from repository")
		return nil, fmt.Errorf("error fetching quiz %d: %w", quizID, err)
	}

	resp := dto.QuizDetailDTO{
		ID:        quiz.ID,
		Title:     quiz.Title,
		Questions: make([]dto.QuestionResponseDTO, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		resp.Questions = append(resp.Questions, dto.QuestionResponseDTO{
			ID:      q.ID,
			Text:    q.Text,
			Kind:    string(q.Kind),
			Options: []byte(q.Options),
		})
	}
	return &resp, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/quizapi/internal/dto"
	"github.com/lshigami/quizapi/internal/model"
	"github.com/lshigami/quizapi/internal/repository"
	"github.com/rs/zerolog/log"
)

type AdminQuizService interface {
	CreateQuiz(ctx context.Context, req dto.QuizCreateDTO) (*dto.QuizSummaryDTO, error)
	DeleteQuiz(ctx context.Context, id uint) error
}

type adminQuizService struct {
	quizRepo repository.QuizRepository
}

func NewAdminQuizService(quizRepo repository.QuizRepository) AdminQuizService {
	return &adminQuizService{quizRepo: quizRepo}
}

func (s *adminQuizService) CreateQuiz(ctx context.Context, req dto.QuizCreateDTO) (*dto.QuizSummaryDTO, error) {
	questions, err := ValidateQuiz(req.Title, req.Questions)
	if err != nil {
		return nil, err
	}

	quiz := model.Quiz{
		Title:     req.Title,
		Questions: questions,
	}
	if err := s.quizRepo.CreateWithQuestions(ctx, &quiz); err != nil {
		log.Error().Err(err).Int("questionCount", len(questions)).Msg("Failed to create quiz in database")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	log.Info().Uint("quizID", quiz.ID).Int("questionCount", len(questions)).Msg("Quiz created")

	var resp dto.QuizSummaryDTO
	if err := copier.Copy(&resp, &quiz); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *adminQuizService) DeleteQuiz(ctx context.Context, id uint) error {
	if err := s.quizRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrQuizNotFound
		}
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to delete quiz")
		return fmt.Errorf("database error deleting quiz %d: %w", id, err)
	}
	log.Info().Uint("quizID", id).Msg("Quiz deleted")
	return nil
}

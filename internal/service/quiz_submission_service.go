package service

import (
	"context"
	"fmt"

	"github.com/lshigami/quizapi/internal/dto"
	"github.com/lshigami/quizapi/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuizSubmissionService scores a set of answers against a quiz. Nothing about
// the submission is stored.
type QuizSubmissionService interface {
	SubmitQuiz(ctx context.Context, quizID uint, req dto.QuizSubmitDTO) (*dto.ScoreResultDTO, error)
}

type quizSubmissionService struct {
	questionRepo   repository.QuestionRepository
	scoreConverter ScoreConverterService
}

func NewQuizSubmissionService(questionRepo repository.QuestionRepository, scoreConverter ScoreConverterService) QuizSubmissionService {
	return &quizSubmissionService{
		questionRepo:   questionRepo,
		scoreConverter: scoreConverter,
	}
}

// SubmitQuiz credits an answer when the selected option equals the stored
// correct option exactly. The total counts only questions that resolved to this
// quiz, and each of them is credited at most once.
func (s *quizSubmissionService) SubmitQuiz(ctx context.Context, quizID uint, req dto.QuizSubmitDTO) (*dto.ScoreResultDTO, error) {
	if len(req.Answers) == 0 {
		return nil, ErrNoAnswers
	}

	questionIDs := make([]uint, 0, len(req.Answers))
	seen := make(map[uint]bool, len(req.Answers))
	for _, answer := range req.Answers {
		if !seen[answer.QuestionID] {
			seen[answer.QuestionID] = true
			questionIDs = append(questionIDs, answer.QuestionID)
		}
	}

	correctOptions, err := s.questionRepo.FindCorrectOptions(ctx, quizID, questionIDs)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("SubmitQuiz: Failed to load correct options")
		return nil, fmt.Errorf("error loading answers for quiz %d: %w", quizID, err)
	}
	if len(correctOptions) == 0 {
		return nil, ErrQuestionsNotFound
	}

	correct := 0
	scored := make(map[uint]bool, len(correctOptions))
	for _, answer := range req.Answers {
		expected, ok := correctOptions[answer.QuestionID]
		if !ok {
			log.Debug().Uint("questionID", answer.QuestionID).Uint("quizID", quizID).Msg("SubmitQuiz: Answer for a question not part of this quiz, skipping.")
			continue
		}
		if scored[answer.QuestionID] {
			continue
		}
		scored[answer.QuestionID] = true
		if answer.SelectedOption == expected {
			correct++
		}
	}

	total := len(correctOptions)
	percentage, err := s.scoreConverter.ConvertToPercentage(correct, total)
	if err != nil {
		return nil, err
	}

	log.Info().Uint("quizID", quizID).Int("correct", correct).Int("total", total).Msg("Quiz submission scored")

	return &dto.ScoreResultDTO{
		QuizID:          quizID,
		TotalQuestions:  total,
		Correct:         correct,
		ScorePercentage: percentage,
	}, nil
}

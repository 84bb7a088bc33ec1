package repository

import (
	"context"
	"errors"

	"github.com/lshigami/quizapi/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	// FindCorrectOptions returns question id -> correct option for the ids that
	// belong to quizID. Ids from other quizzes, or unknown ids, are left out.
	FindCorrectOptions(ctx context.Context, quizID uint, questionIDs []uint) (map[uint]string, error)
	FindByID(ctx context.Context, id uint) (*model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindCorrectOptions(ctx context.Context, quizID uint, questionIDs []uint) (map[uint]string, error) {
	answers := make(map[uint]string)
	if len(questionIDs) == 0 {
		return answers, nil
	}

	var rows []struct {
		ID            uint
		CorrectOption string
	}
	err := r.db.WithContext(ctx).
		Model(&model.Question{}).
		Select("id", "correct_option").
		Where("quiz_id = ? AND id IN ?", quizID, questionIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		answers[row.ID] = row.CorrectOption
	}
	return answers, nil
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

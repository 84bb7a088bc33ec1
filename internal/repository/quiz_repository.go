package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/quizapi/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizRepository interface {
	CreateWithQuestions(ctx context.Context, quiz *model.Quiz) error
	FindAll(ctx context.Context) ([]model.Quiz, error)
	FindByIDWithQuestions(ctx context.Context, id uint) (*model.Quiz, error)
	Delete(ctx context.Context, id uint) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

// CreateWithQuestions inserts the quiz and then its questions in slice order, all
// in one transaction. Nothing is kept unless every question row was written.
func (r *quizRepository) CreateWithQuestions(ctx context.Context, quiz *model.Quiz) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(quiz).Error; err != nil {
			return fmt.Errorf("insert quiz: %w", err)
		}

		var inserted int64
		for i := range quiz.Questions {
			question := &quiz.Questions[i]
			question.QuizID = quiz.ID
			result := tx.Create(question)
			if result.Error != nil {
				return fmt.Errorf("insert question %d: %w", i, result.Error)
			}
			inserted += result.RowsAffected
		}

		if inserted != int64(len(quiz.Questions)) {
			return fmt.Errorf("%w: inserted %d, expected %d", ErrPartialInsert, inserted, len(quiz.Questions))
		}
		return nil
	})
}

func (r *quizRepository) FindAll(ctx context.Context) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.WithContext(ctx).
		Select("id", "title").
		Order("id DESC").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) FindByIDWithQuestions(ctx context.Context, id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.WithContext(ctx).Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id ASC")
	}).First(&quiz, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// Delete removes the quiz row; its questions go with it through the
// ON DELETE CASCADE foreign key.
func (r *quizRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Quiz{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

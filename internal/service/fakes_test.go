package service

import (
	"context"
	"sort"

	"github.com/lshigami/quizapi/internal/model"
	"github.com/lshigami/quizapi/internal/repository"
)

type fakeQuizRepo struct {
	quizzes map[uint]model.Quiz
	nextID  uint
	err     error

	createCalls int
	deleteCalls int
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: make(map[uint]model.Quiz), nextID: 1}
}

func (f *fakeQuizRepo) CreateWithQuestions(_ context.Context, quiz *model.Quiz) error {
	f.createCalls++
	if f.err != nil {
		return f.err
	}
	quiz.ID = f.nextID
	f.nextID++
	for i := range quiz.Questions {
		quiz.Questions[i].ID = uint(100*quiz.ID) + uint(i)
		quiz.Questions[i].QuizID = quiz.ID
	}
	f.quizzes[quiz.ID] = *quiz
	return nil
}

func (f *fakeQuizRepo) FindAll(_ context.Context) ([]model.Quiz, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Quiz, 0, len(f.quizzes))
	for _, q := range f.quizzes {
		out = append(out, model.Quiz{ID: q.ID, Title: q.Title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeQuizRepo) FindByIDWithQuestions(_ context.Context, id uint) (*model.Quiz, error) {
	if f.err != nil {
		return nil, f.err
	}
	q, ok := f.quizzes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &q, nil
}

func (f *fakeQuizRepo) Delete(_ context.Context, id uint) error {
	f.deleteCalls++
	if f.err != nil {
		return f.err
	}
	if _, ok := f.quizzes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.quizzes, id)
	return nil
}

type fakeQuestionRepo struct {
	// quiz id -> question id -> correct option
	answers map[uint]map[uint]string
	err     error

	lastIDs []uint
}

func (f *fakeQuestionRepo) FindCorrectOptions(_ context.Context, quizID uint, questionIDs []uint) (map[uint]string, error) {
	f.lastIDs = questionIDs
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[uint]string)
	for _, id := range questionIDs {
		if opt, ok := f.answers[quizID][id]; ok {
			out[id] = opt
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) FindByID(_ context.Context, id uint) (*model.Question, error) {
	for quizID, byID := range f.answers {
		if opt, ok := byID[id]; ok {
			return &model.Question{ID: id, QuizID: quizID, CorrectOption: opt}, nil
		}
	}
	return nil, repository.ErrNotFound
}

package model

import (
	"gorm.io/datatypes"
)

// QuestionKind is decided once when a question is authored and stored alongside it.
type QuestionKind string

const (
	KindChoice   QuestionKind = "choice"    // multiple choice or true/false, keyed by single letters
	KindFreeText QuestionKind = "free_text" // correct_option is a reference answer
)

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	QuizID        uint           `json:"quiz_id" gorm:"not null;index"`
	Text          string         `json:"text" gorm:"type:text;not null"`
	Kind          QuestionKind   `json:"kind" gorm:"type:text;not null"`
	Options       datatypes.JSON `json:"options" gorm:"type:jsonb;not null"`
	CorrectOption string         `json:"-" gorm:"column:correct_option;type:text;not null"`
}

func (Question) TableName() string {
	return "questions"
}

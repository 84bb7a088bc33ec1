package model

type Quiz struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	Title     string     `gorm:"type:text;not null" json:"title"`
	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

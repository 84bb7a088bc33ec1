package dto

import "encoding/json"

// QuizSummaryDTO is used for listing quizzes and as the create response.
type QuizSummaryDTO struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// QuestionResponseDTO is a question as shown to quiz takers; the correct option is never included.
type QuestionResponseDTO struct {
	ID      uint            `json:"id"`
	Text    string          `json:"text"`
	Kind    string          `json:"kind" enums:"choice,free_text"`
	Options json.RawMessage `json:"options" swaggertype:"object"`
}

type QuizDetailDTO struct {
	ID        uint                  `json:"id"`
	Title     string                `json:"title"`
	Questions []QuestionResponseDTO `json:"questions"`
}

type ScoreResultDTO struct {
	QuizID          uint `json:"quizId"`
	TotalQuestions  int  `json:"totalQuestions"`
	Correct         int  `json:"correct"`
	ScorePercentage int  `json:"scorePercentage"`
}

package dto

import "encoding/json"

// QuizCreateDTO is the admin payload for authoring a quiz. Questions stay raw
// so every entry can be checked and reported by index, whatever its shape.
type QuizCreateDTO struct {
	Title     string            `json:"title" example:"World capitals"`
	Questions []json.RawMessage `json:"questions" swaggertype:"array,object"`
}

// QuestionCreateDTO documents the expected shape of one entry of QuizCreateDTO.Questions.
type QuestionCreateDTO struct {
	Text          string                     `json:"text" example:"Capital of France?"`
	Options       map[string]json.RawMessage `json:"options" swaggertype:"object"`
	CorrectOption string                     `json:"correct_option" example:"a"`
}

type AnswerDTO struct {
	QuestionID     uint   `json:"questionId"`
	SelectedOption string `json:"selectedOption"`
}

type QuizSubmitDTO struct {
	Answers []AnswerDTO `json:"answers"`
}

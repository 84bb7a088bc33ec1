package service

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/lshigami/quizapi/internal/dto"
	"github.com/lshigami/quizapi/internal/model"
	"gorm.io/datatypes"
)

const (
	ReasonNotObject           = "question must be object"
	ReasonTextRequired        = "text required"
	ReasonOptionsRequired     = "options object required"
	ReasonTooFewOptions       = "at least two options required"
	ReasonCorrectRequired     = "correct_option required"
	ReasonCorrectNotInOptions = "correct_option key not in options"
	minChoiceOptions          = 2
)

// ValidateQuiz checks a whole quiz before anything is written. Every invalid
// question is reported, not only the first one. On success it returns the
// questions, classified and ready to insert, in submission order.
func ValidateQuiz(title string, questions []json.RawMessage) ([]model.Question, error) {
	if strings.TrimSpace(title) == "" || len(questions) == 0 {
		return nil, ErrInvalidQuiz
	}

	var issues []dto.ValidationIssue
	drafts := make([]model.Question, 0, len(questions))
	for i, raw := range questions {
		question, reasons := validateQuestion(raw)
		for _, reason := range reasons {
			issues = append(issues, dto.ValidationIssue{Index: i, Reason: reason})
		}
		if len(reasons) == 0 {
			drafts = append(drafts, question)
		}
	}

	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	return drafts, nil
}

func validateQuestion(raw json.RawMessage) (model.Question, []string) {
	var fields map[string]json.RawMessage
	if !isJSONObject(raw) || json.Unmarshal(raw, &fields) != nil {
		return model.Question{}, []string{ReasonNotObject}
	}

	var reasons []string

	text, ok := jsonString(fields["text"])
	if !ok || strings.TrimSpace(text) == "" {
		reasons = append(reasons, ReasonTextRequired)
	}

	var options map[string]json.RawMessage
	if !isJSONObject(fields["options"]) || json.Unmarshal(fields["options"], &options) != nil {
		return model.Question{}, append(reasons, ReasonOptionsRequired)
	}

	correct, ok := jsonString(fields["correct_option"])
	hasCorrect := ok && correct != ""

	kind := ClassifyOptions(options)
	if kind == model.KindChoice {
		if countChoiceKeys(options) < minChoiceOptions {
			reasons = append(reasons, ReasonTooFewOptions)
		}
		if !hasCorrect {
			reasons = append(reasons, ReasonCorrectRequired)
		} else if _, exists := options[correct]; !exists {
			reasons = append(reasons, ReasonCorrectNotInOptions)
		}
	} else if !hasCorrect {
		reasons = append(reasons, ReasonCorrectRequired)
	}

	if len(reasons) > 0 {
		return model.Question{}, reasons
	}

	// Re-encoding sorts the keys, so choices are stored as a, b, c...
	normalized, err := json.Marshal(options)
	if err != nil {
		return model.Question{}, []string{ReasonOptionsRequired}
	}

	return model.Question{
		Text:          text,
		Kind:          kind,
		Options:       datatypes.JSON(normalized),
		CorrectOption: correct,
	}, nil
}

// ClassifyOptions decides a question's kind from its option keys: any single
// lowercase letter key makes it a choice question, anything else is free text.
func ClassifyOptions(options map[string]json.RawMessage) model.QuestionKind {
	if countChoiceKeys(options) > 0 {
		return model.KindChoice
	}
	return model.KindFreeText
}

func countChoiceKeys(options map[string]json.RawMessage) int {
	n := 0
	for key := range options {
		if isChoiceKey(key) {
			n++
		}
	}
	return n
}

func isChoiceKey(key string) bool {
	return len(key) == 1 && key[0] >= 'a' && key[0] <= 'z'
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func jsonString(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", false
	}
	return s, true
}

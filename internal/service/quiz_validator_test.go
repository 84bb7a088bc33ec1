package service

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/lshigami/quizapi/internal/dto"
	"github.com/lshigami/quizapi/internal/model"
)

func rawQuestions(items ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		out = append(out, json.RawMessage(item))
	}
	return out
}

func TestValidateQuizRejectsMissingTitleOrQuestions(t *testing.T) {
	valid := rawQuestions(`{"text":"q","options":{"a":"1","b":"2"},"correct_option":"a"}`)

	cases := []struct {
		name      string
		title     string
		questions []json.RawMessage
	}{
		{"empty title", "", valid},
		{"blank title", "   ", valid},
		{"nil questions", "Quiz", nil},
		{"empty questions", "Quiz", []json.RawMessage{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateQuiz(tc.title, tc.questions)
			if !errors.Is(err, ErrInvalidQuiz) {
				t.Fatalf("expected ErrInvalidQuiz, got %v", err)
			}
		})
	}
}

func TestValidateQuizReportsEveryInvalidQuestion(t *testing.T) {
	questions := rawQuestions(
		`{"text":"ok","options":{"a":"1","b":"2"},"correct_option":"b"}`,
		`null`,
		`"just a string"`,
		`{"options":{"a":"1","b":"2"},"correct_option":"a"}`,
		`{"text":"no options","correct_option":"a"}`,
		`{"text":"one choice","options":{"a":"1"},"correct_option":"a"}`,
		`{"text":"bad key","options":{"a":"1","b":"2"},"correct_option":"c"}`,
		`{"text":"missing correct","options":{"a":"1","b":"2"}}`,
		`{"text":"free text","options":{"reference":"x"},"correct_option":""}`,
		`{"text":"free ok","options":{"placeholder":"Type here"},"correct_option":"anything goes"}`,
		`{"text":"","options":null,"correct_option":7}`,
		`{"text":"array options","options":["a","b"],"correct_option":"a"}`,
	)

	_, err := ValidateQuiz("Mixed", questions)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}

	want := []dto.ValidationIssue{
		{Index: 1, Reason: ReasonNotObject},
		{Index: 2, Reason: ReasonNotObject},
		{Index: 3, Reason: ReasonTextRequired},
		{Index: 4, Reason: ReasonOptionsRequired},
		{Index: 5, Reason: ReasonTooFewOptions},
		{Index: 6, Reason: ReasonCorrectNotInOptions},
		{Index: 7, Reason: ReasonCorrectRequired},
		{Index: 8, Reason: ReasonCorrectRequired},
		{Index: 10, Reason: ReasonTextRequired},
		{Index: 10, Reason: ReasonOptionsRequired},
		{Index: 11, Reason: ReasonOptionsRequired},
	}
	if !reflect.DeepEqual(verr.Issues, want) {
		t.Fatalf("unexpected issues:\n got %+v\nwant %+v", verr.Issues, want)
	}
}

func TestValidateQuizChoiceNeedsTwoLetterKeys(t *testing.T) {
	// One letter key plus a non-letter key is still a choice question with a single choice.
	_, err := ValidateQuiz("Quiz", rawQuestions(`{"text":"q","options":{"a":"1","hint":"h"},"correct_option":"a"}`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Issues) != 1 || verr.Issues[0].Reason != ReasonTooFewOptions {
		t.Fatalf("unexpected issues %+v", verr.Issues)
	}

	// Any key present in options is an acceptable answer, letter or not.
	questions, err := ValidateQuiz("Quiz", rawQuestions(`{"text":"q","options":{"a":"1","b":"2","hint":"h"},"correct_option":"hint"}`))
	if err != nil {
		t.Fatalf("expected correct_option naming an existing key to pass, got %v", err)
	}
	if questions[0].Kind != model.KindChoice || questions[0].CorrectOption != "hint" {
		t.Fatalf("unexpected question %+v", questions[0])
	}

	_, err = ValidateQuiz("Quiz", rawQuestions(`{"text":"q","options":{"a":"1","b":"2","hint":"h"},"correct_option":"c"}`))
	if !errors.As(err, &verr) || len(verr.Issues) != 1 || verr.Issues[0].Reason != ReasonCorrectNotInOptions {
		t.Fatalf("expected correct_option key not in options, got %v", err)
	}
}

func TestValidateQuizClassifiesAndNormalizes(t *testing.T) {
	questions, err := ValidateQuiz("Quiz", rawQuestions(
		`{"text":"Capital?","options":{"c":"Berlin","a":"Paris","b":"Rome"},"correct_option":"a"}`,
		`{"text":"Explain","options":{"reference":"x"},"correct_option":"Photosynthesis"}`,
		`{"text":"True?","options":{"a":"True","b":"False"},"correct_option":"b"}`,
	))
	if err != nil {
		t.Fatalf("ValidateQuiz failed: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}

	if questions[0].Kind != model.KindChoice || questions[1].Kind != model.KindFreeText || questions[2].Kind != model.KindChoice {
		t.Fatalf("unexpected kinds: %s %s %s", questions[0].Kind, questions[1].Kind, questions[2].Kind)
	}
	if got := string(questions[0].Options); got != `{"a":"Paris","b":"Rome","c":"Berlin"}` {
		t.Fatalf("expected sorted choice options, got %s", got)
	}
	if questions[1].CorrectOption != "Photosynthesis" || questions[1].Text != "Explain" {
		t.Fatalf("unexpected free text question %+v", questions[1])
	}
}

func TestClassifyOptions(t *testing.T) {
	cases := []struct {
		options string
		want    model.QuestionKind
	}{
		{`{"a":"x","b":"y"}`, model.KindChoice},
		{`{"reference":"x"}`, model.KindFreeText},
		{`{"A":"x","B":"y"}`, model.KindFreeText},
		{`{"ab":"x","1":"y"}`, model.KindFreeText},
		{`{}`, model.KindFreeText},
		{`{"z":"only"}`, model.KindChoice},
	}
	for _, tc := range cases {
		var options map[string]json.RawMessage
		if err := json.Unmarshal([]byte(tc.options), &options); err != nil {
			t.Fatalf("bad fixture %s: %v", tc.options, err)
		}
		if got := ClassifyOptions(options); got != tc.want {
			t.Fatalf("ClassifyOptions(%s) = %s, want %s", tc.options, got, tc.want)
		}
	}
}

func TestValidateQuizBlankTextIsMissing(t *testing.T) {
	_, err := ValidateQuiz("Quiz", rawQuestions(`{"text":" \t ","options":{"a":"1","b":"2"},"correct_option":"a"}`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Issues) != 1 || verr.Issues[0].Reason != ReasonTextRequired {
		t.Fatalf("unexpected issues %+v", verr.Issues)
	}
}

package dto

type QuizCreatedResponse struct {
	Quiz QuizSummaryDTO `json:"quiz"`
}

type QuizListResponse struct {
	Quizzes []QuizSummaryDTO `json:"quizzes"`
}

type QuizDetailResponse struct {
	Quiz QuizDetailDTO `json:"quiz"`
}

type QuizDeletedResponse struct {
	Deleted uint `json:"deleted"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ValidationIssue reports one problem with the question at Index.
type ValidationIssue struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Details []ValidationIssue `json:"details,omitempty"`
}

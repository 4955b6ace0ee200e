package api

import "github.com/abhisek/middlemath/internal/problemgen"

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is a machine-readable error code, e.g. UNKNOWN_GRADE.
	Code string `json:"code,omitempty"`
}

// Error codes.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnknownGrade   = "UNKNOWN_GRADE"
	CodeUnknownTopic   = "UNKNOWN_TOPIC"
	CodeInternal       = "INTERNAL"
	CodeUnavailable    = "UNAVAILABLE"
)

// TopicResponse is one topic of a grade.
type TopicResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// TopicsResponse answers GET /v1/grades/:grade/topics.
type TopicsResponse struct {
	Grade  int             `json:"grade"`
	Topics []TopicResponse `json:"topics"`
}

// ProblemResponse answers GET /v1/grades/:grade/topics/:topic/problem.
type ProblemResponse struct {
	Grade int    `json:"grade"`
	Topic string `json:"topic"`
	problemgen.Problem
}

// CheckRequest is the body of POST /v1/check. CorrectAnswer may be a JSON
// number or string.
type CheckRequest struct {
	UserAnswer    string            `json:"user_answer"`
	CorrectAnswer problemgen.Answer `json:"correct_answer"`
}

// CheckResponse answers POST /v1/check.
type CheckResponse struct {
	Correct bool   `json:"correct"`
	Display string `json:"display"` // correct answer with any alternate form
}

// FormatResponse answers GET /v1/format.
type FormatResponse struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// StatsResponse answers GET /v1/stats.
type StatsResponse struct {
	Topics []TopicStats `json:"topics"`
}

// TopicStats is the practice accuracy for one grade and topic.
type TopicStats struct {
	Grade    int     `json:"grade"`
	Topic    string  `json:"topic"`
	Attempts int     `json:"attempts"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// HealthResponse answers GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

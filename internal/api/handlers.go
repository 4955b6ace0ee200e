// Package api serves the problem generator and answer checker over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abhisek/middlemath/internal/answer"
	"github.com/abhisek/middlemath/internal/problemgen"
	"github.com/abhisek/middlemath/internal/sampler"
	"github.com/abhisek/middlemath/internal/schema"
	"github.com/abhisek/middlemath/internal/store"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 4 << 10

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	registry *problemgen.Registry
	events   store.EventRepo // optional
	version  string
}

// NewHandlers creates handlers over registry. events may be nil, in which
// case GET /v1/stats answers 503.
func NewHandlers(registry *problemgen.Registry, events store.EventRepo, version string) *Handlers {
	return &Handlers{registry: registry, events: events, version: version}
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: h.version})
}

// HandleTopics handles GET /v1/grades/:grade/topics.
func (h *Handlers) HandleTopics(c *gin.Context) {
	logger := requestLogger(c, "HandleTopics")

	grade, ok := h.parseGrade(c, logger)
	if !ok {
		return
	}

	topics, err := h.registry.Topics(grade)
	if err != nil {
		h.writeError(c, logger, err)
		return
	}

	resp := TopicsResponse{Grade: int(grade), Topics: make([]TopicResponse, 0, len(topics))}
	for _, t := range topics {
		resp.Topics = append(resp.Topics, TopicResponse{ID: string(t.ID), Title: t.Title})
	}
	c.JSON(http.StatusOK, resp)
}

// HandleProblem handles GET /v1/grades/:grade/topics/:topic/problem.
//
// Query Parameters:
//
//	seed: optional unsigned integer; the same seed returns the same problem
func (h *Handlers) HandleProblem(c *gin.Context) {
	logger := requestLogger(c, "HandleProblem")

	grade, ok := h.parseGrade(c, logger)
	if !ok {
		return
	}
	topic, err := h.registry.ParseTopicID(grade, c.Param("topic"))
	if err != nil {
		h.writeError(c, logger, err)
		return
	}

	var p problemgen.Problem
	if raw := c.Query("seed"); raw != "" {
		seed, perr := strconv.ParseUint(raw, 10, 64)
		if perr != nil {
			logger.Warn("Invalid seed", "seed", raw)
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "seed must be an unsigned integer", Code: CodeInvalidRequest})
			return
		}
		p, err = h.registry.GenerateWith(sampler.NewSeeded(seed), grade, topic)
	} else {
		p, err = h.registry.Generate(grade, topic)
	}
	if err != nil {
		h.writeError(c, logger, err)
		return
	}

	problemsGenerated.WithLabelValues(strconv.Itoa(int(grade)), string(topic)).Inc()
	logger.Debug("Problem generated", "grade", int(grade), "topic", topic)
	c.JSON(http.StatusOK, ProblemResponse{Grade: int(grade), Topic: string(topic), Problem: p})
}

// HandleCheck handles POST /v1/check.
//
// Request Body:
//
//	CheckRequest, validated against CheckRequestSchema
func (h *Handlers) HandleCheck(c *gin.Context) {
	logger := requestLogger(c, "HandleCheck")

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
	if err != nil || len(raw) > maxBodyBytes {
		logger.Warn("Unreadable request body", "error", err, "bytes", len(raw))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Code: CodeInvalidRequest})
		return
	}
	if err := schema.Validate(CheckRequestSchema, raw); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeInvalidRequest})
		return
	}

	var req CheckRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Code: CodeInvalidRequest})
		return
	}

	correct := req.CorrectAnswer.Matches(req.UserAnswer)
	result := "incorrect"
	if correct {
		result = "correct"
	}
	answersChecked.WithLabelValues(result).Inc()

	c.JSON(http.StatusOK, CheckResponse{Correct: correct, Display: req.CorrectAnswer.Display()})
}

// HandleFormat handles GET /v1/format?value=.
func (h *Handlers) HandleFormat(c *gin.Context) {
	logger := requestLogger(c, "HandleFormat")

	raw := c.Query("value")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		logger.Warn("Invalid value", "value", raw)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "value must be a finite number", Code: CodeInvalidRequest})
		return
	}
	c.JSON(http.StatusOK, FormatResponse{Value: v, Formatted: answer.Format(v)})
}

// HandleStats handles GET /v1/stats.
func (h *Handlers) HandleStats(c *gin.Context) {
	logger := requestLogger(c, "HandleStats")

	if h.events == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "practice log is not configured", Code: CodeUnavailable})
		return
	}

	acc, err := h.events.TopicAccuracy(c.Request.Context())
	if err != nil {
		h.writeError(c, logger, err)
		return
	}

	resp := StatsResponse{Topics: make([]TopicStats, 0, len(acc))}
	for _, a := range acc {
		resp.Topics = append(resp.Topics, TopicStats{
			Grade:    a.Grade,
			Topic:    a.Topic,
			Attempts: a.Attempts,
			Correct:  a.Correct,
			Accuracy: a.Accuracy(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) parseGrade(c *gin.Context, logger *slog.Logger) (problemgen.Grade, bool) {
	raw := c.Param("grade")
	n, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("Invalid grade", "grade", raw)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "grade must be an integer", Code: CodeInvalidRequest})
		return 0, false
	}
	grade, err := h.registry.ParseGrade(n)
	if err != nil {
		h.writeError(c, logger, err)
		return 0, false
	}
	return grade, true
}

// writeError maps err to a status code and error code.
func (h *Handlers) writeError(c *gin.Context, logger *slog.Logger, err error) {
	statusCode := http.StatusInternalServerError
	errCode := CodeInternal

	if errors.Is(err, problemgen.ErrUnknownGrade) {
		statusCode = http.StatusNotFound
		errCode = CodeUnknownGrade
	} else if errors.Is(err, problemgen.ErrUnknownTopic) {
		statusCode = http.StatusNotFound
		errCode = CodeUnknownTopic
	}

	if statusCode >= http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
	} else {
		logger.Warn("Request rejected", "error", err)
	}
	c.JSON(statusCode, ErrorResponse{Error: err.Error(), Code: errCode})
}

// requestIDKey is the gin context key holding the request ID.
const requestIDKey = "request_id"

// getOrCreateRequestID returns the X-Request-ID header, generating one when
// absent, and echoes it on the response.
func getOrCreateRequestID(c *gin.Context) string {
	if id := c.GetString(requestIDKey); id != "" {
		return id
	}
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	c.Set(requestIDKey, requestID)
	return requestID
}

func requestLogger(c *gin.Context, handler string) *slog.Logger {
	return slog.With("request_id", getOrCreateRequestID(c), "handler", handler)
}

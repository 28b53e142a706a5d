// Package apperrors provides the error envelope used to surface failures
// from the engine's external collaborators (primarily the index oracle).
package apperrors

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Severity classifies how serious an error envelope is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityLevel maps severity names to numeric levels.
var SeverityLevel = map[Severity]int{
	SeverityInfo:     0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Well-known error codes emitted by the engine.
const (
	CodeIndexError     = "INDEX_ERROR"
	CodeInvalidOptions = "INVALID_OPTIONS"
)

// ErrorEnvelope is a structured, JSON-serializable error used across the
// engine's public API boundary.
type ErrorEnvelope struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp string                 `json:"timestamp"`

	Severity      Severity    `json:"severity,omitempty"`
	SeverityLevel int         `json:"severity_level,omitempty"`
	CorrelationID string      `json:"correlation_id,omitempty"`
	Original      interface{} `json:"original,omitempty"`
}

// NewErrorEnvelope creates a new error envelope with required fields.
func NewErrorEnvelope(code, message string) *ErrorEnvelope {
	return &ErrorEnvelope{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// IndexError wraps a failure surfaced by the index oracle (spec §7: fatal for
// the whole call, the cache is not updated).
func IndexError(strategy string, cause error) *ErrorEnvelope {
	return NewErrorEnvelope(CodeIndexError, fmt.Sprintf("index strategy %q failed", strategy)).
		WithDetails(map[string]interface{}{"strategy": strategy}).
		WithOriginal(cause)
}

// WithSeverity sets severity, defaulting to info and returning an error for
// an unrecognized value.
func (e *ErrorEnvelope) WithSeverity(severity Severity) (*ErrorEnvelope, error) {
	switch severity {
	case SeverityInfo, SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		e.Severity = severity
		e.SeverityLevel = SeverityLevel[severity]
		return e, nil
	default:
		e.Severity = SeverityInfo
		e.SeverityLevel = SeverityLevel[SeverityInfo]
		return e, fmt.Errorf("invalid severity %q, must be one of: info, low, medium, high, critical", severity)
	}
}

// WithCorrelationID attaches a correlation identifier.
func (e *ErrorEnvelope) WithCorrelationID(id string) *ErrorEnvelope {
	e.CorrelationID = id
	return e
}

// WithOriginal records the wrapped cause.
func (e *ErrorEnvelope) WithOriginal(original error) *ErrorEnvelope {
	if original != nil {
		e.Original = original.Error()
	}
	return e
}

// WithDetails attaches structured details.
func (e *ErrorEnvelope) WithDetails(details map[string]interface{}) *ErrorEnvelope {
	e.Details = details
	return e
}

// Error implements the error interface.
func (e *ErrorEnvelope) Error() string {
	severity := e.Severity
	if severity == "" {
		severity = SeverityInfo
	}
	msg := fmt.Sprintf("[%s] %s: %s", e.Code, severity, e.Message)
	if e.Original != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Original)
	}
	return msg
}

// MarshalJSON ensures proper JSON serialization despite the Error() method.
func (e *ErrorEnvelope) MarshalJSON() ([]byte, error) {
	type Alias ErrorEnvelope
	return json.Marshal((*Alias)(e))
}

// GenerateCorrelationID creates a new UUID for correlating a search call
// across log lines.
func GenerateCorrelationID() string {
	return uuid.New().String()
}

// JoinDetails renders details as a short "k=v, k=v" string for log lines.
func JoinDetails(details map[string]interface{}) string {
	if len(details) == 0 {
		return ""
	}
	parts := make([]string, 0, len(details))
	for k, v := range details {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(parts, ", ")
}

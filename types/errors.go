package types

import (
	"errors"
	"fmt"
)

// FailureKind identifies which pipeline stage produced an error.
type FailureKind string

const (
	FailureInvalidInput  FailureKind = "invalid_input"
	FailureStorage       FailureKind = "storage"
	FailureExtraction    FailureKind = "extraction"
	FailureSummarization FailureKind = "summarization"
	FailureIndexing      FailureKind = "indexing"
	FailureConfiguration FailureKind = "configuration"
	FailureSearchBackend FailureKind = "search_backend"
	FailureProjection    FailureKind = "result_projection"
)

// PipelineError wraps a backend error with the stage that produced it.
// Every remote failure is terminal for the request; nothing is retried.
type PipelineError struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func NewPipelineError(kind FailureKind, message string, err error) *PipelineError {
	return &PipelineError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// KindOf returns the failure kind of err, or empty string if err is not a
// PipelineError.
func KindOf(err error) FailureKind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

package models

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes a fatal pipeline failure for the final result.
type ErrorKind string

const (
	KindFetch              ErrorKind = "FetchError"
	KindContentUnavailable ErrorKind = "ContentUnavailable"
	KindMetadataService    ErrorKind = "MetadataServiceError"
	KindMetadataParse      ErrorKind = "MetadataParseError"
	KindConversion         ErrorKind = "ConversionError"
	KindTimeParse          ErrorKind = "TimeParseError"
	KindUpload             ErrorKind = "UploadError"
	KindInternal           ErrorKind = "InternalError"
)

// PipelineError carries the taxonomy kind alongside the underlying error.
type PipelineError struct {
	Kind ErrorKind
	Err  error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewError builds a PipelineError from a format string.
func NewError(kind ErrorKind, format string, args ...any) *PipelineError {
	return &PipelineError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// WrapError attaches a kind to an existing error.
func WrapError(kind ErrorKind, err error) *PipelineError {
	return &PipelineError{Kind: kind, Err: err}
}

// KindOf extracts the kind from an error chain, defaulting to KindInternal.
func KindOf(err error) ErrorKind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindInternal
}

// MessageOf returns the error message without the kind prefix, since the
// kind is reported separately in the result.
func MessageOf(err error) string {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}

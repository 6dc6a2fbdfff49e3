// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import "fmt"

// ErrorCode classifies a failure at the CLI boundary.
type ErrorCode string

const (
	// ErrCodeInvalidVersion indicates input that is not a valid PEP 440
	// version string.
	ErrCodeInvalidVersion ErrorCode = "INVALID_VERSION"
	// ErrCodeInvalidTransition indicates a version transition that is not
	// valid for the current version state, such as an alpha bump on a
	// version already in beta.
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	// ErrCodeNoVersionSource indicates the project declares no readable
	// version.
	ErrCodeNoVersionSource ErrorCode = "NO_VERSION_SOURCE"
	// ErrCodeVcs indicates a version-control operation failed.
	ErrCodeVcs ErrorCode = "VCS_FAILURE"
	// ErrCodeDirtyRepository indicates an operation that requires a clean
	// working tree found uncommitted changes.
	ErrCodeDirtyRepository ErrorCode = "DIRTY_REPOSITORY"
	// ErrCodeConfig indicates the tool configuration could not be loaded.
	ErrCodeConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeUnsupported indicates a policy decision that has no
	// implementation yet.
	ErrCodeUnsupported ErrorCode = "UNSUPPORTED"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// StructuredError provides structured error information for the CLI
// boundary. It includes an error code for programmatic handling, a
// human-readable message, the underlying cause, and optional context.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// LogAttrs returns the error fields as alternating key/value pairs for
// structured logging.
func (e *StructuredError) LogAttrs() []any {
	attrs := []any{"code", string(e.Code)}
	if e.Cause != nil {
		attrs = append(attrs, "cause", e.Cause.Error())
	}
	for k, v := range e.Context {
		attrs = append(attrs, k, v)
	}
	return attrs
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a code and message.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

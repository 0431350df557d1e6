// Package errors provides standardized error messaging for the semantic
// analysis core.
package errors

import (
	"fmt"
	"runtime"
)

// ErrorCategory represents different categories of errors.
type ErrorCategory string

const (
	CategorySemantic   ErrorCategory = "SEMANTIC"
	CategoryValidation ErrorCategory = "VALIDATION"
)

// StandardError provides a consistent error format.
type StandardError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Context  map[string]interface{}
	Caller   string
}

// Error implements the error interface.
func (e *StandardError) Error() string {
	return fmt.Sprintf("[%s:%s] %s (caller: %s)", e.Category, e.Code, e.Message, e.Caller)
}

// NewStandardError creates a new standardized error.
func NewStandardError(category ErrorCategory, code, message string, context map[string]interface{}) *StandardError {
	pc, _, _, ok := runtime.Caller(1)
	caller := "unknown"
	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}

	return &StandardError{
		Category: category,
		Code:     code,
		Message:  message,
		Context:  context,
		Caller:   caller,
	}
}

// DuplicatedMember reports that an anonymous-struct type or pattern uses the
// same field name twice. It is the single conversion-time failure mode the
// core exposes when lowering a surface type or pattern to an HIRType.
func DuplicatedMember(name string) *StandardError {
	return NewStandardError(CategoryValidation, "DUPLICATED_MEMBER",
		fmt.Sprintf("member %q is duplicated", name),
		map[string]interface{}{"member": name})
}

// IsDuplicatedMember reports whether err is a DuplicatedMember StandardError.
func IsDuplicatedMember(err error) bool {
	se, ok := err.(*StandardError)
	return ok && se.Code == "DUPLICATED_MEMBER"
}

package util

import (
	"errors"
	"fmt"
)

var (
	ErrTestNotFound       = errors.New("test not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrAnswerNotFound     = errors.New("answer not found")
	ErrSessionNotFound    = errors.New("testing session not found")
	ErrInvalidTest        = errors.New("test cannot be started")
	ErrQuestionValidation = errors.New("question has no correct answer")
	ErrDataAccess         = errors.New("data access failed")
)

// NotFoundError is returned by every locate-by-id operation.
// Kind is one of the *NotFound sentinels.
type NotFoundError struct {
	Kind error
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return e.Kind
}

func TestNotFound(id string) error {
	return &NotFoundError{Kind: ErrTestNotFound, ID: id}
}

func QuestionNotFound(id string) error {
	return &NotFoundError{Kind: ErrQuestionNotFound, ID: id}
}

func AnswerNotFound(id string) error {
	return &NotFoundError{Kind: ErrAnswerNotFound, ID: id}
}

func SessionNotFound(id string) error {
	return &NotFoundError{Kind: ErrSessionNotFound, ID: id}
}

// InvalidTestError means a test is not ready to be attempted.
// QuestionText is empty when the test has no questions at all.
type InvalidTestError struct {
	Reason       string
	QuestionText string
}

func (e *InvalidTestError) Error() string {
	if e.QuestionText == "" {
		return fmt.Sprintf("%v: %s", ErrInvalidTest, e.Reason)
	}
	return fmt.Sprintf("%v: question %q %s", ErrInvalidTest, e.QuestionText, e.Reason)
}

func (e *InvalidTestError) Unwrap() error {
	return ErrInvalidTest
}

// QuestionValidationError aborts a save: the question has answers but none is correct.
type QuestionValidationError struct {
	TestID       string
	TestTitle    string
	QuestionID   string
	QuestionText string
}

func (e *QuestionValidationError) Error() string {
	return fmt.Sprintf("%v: question %q in test %q", ErrQuestionValidation, e.QuestionText, e.TestTitle)
}

func (e *QuestionValidationError) Unwrap() error {
	return ErrQuestionValidation
}

// DataAccessError wraps a storage read or write failure.
type DataAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *DataAccessError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %s: %v", ErrDataAccess, e.Op, e.Err)
	}
	return fmt.Sprintf("%v: %s %s: %v", ErrDataAccess, e.Op, e.Path, e.Err)
}

func (e *DataAccessError) Unwrap() []error {
	return []error{ErrDataAccess, e.Err}
}

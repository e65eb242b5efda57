package usecases

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormula   = errors.New("invalid formula")
	ErrFormulaExecution = errors.New("formula execution failed")
	ErrPermissionDenied = errors.New("permission denied")
)

// ValidationError reports where the formula of an indicator failed.
type ValidationError struct {
	IndicatorName string
	Line          int
	Column        int
	Message       string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("error in formula of indicator %q at line %d, column %d: %s", e.IndicatorName, e.Line, e.Column, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidFormula
}

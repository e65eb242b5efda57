package domain

import "errors"

var (
	ErrIndicatorNameRequired = errors.New("indicator name is required")
	ErrIndicatorRequired     = errors.New("indicator is required")
	ErrInvalidValueKind      = errors.New("invalid value kind")
	ErrValueKindMismatch     = errors.New("value does not match the indicator value kind")
	ErrInvalidColor          = errors.New("color must be a 7 character hex string like #00FF00")
	ErrReportProjectRequired = errors.New("report project is required")
	ErrReportDateRequired    = errors.New("report date is required")
)

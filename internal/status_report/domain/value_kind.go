package domain

import "strings"

type ValueKind string

const (
	ValueKindNumeric ValueKind = "numeric"
	ValueKindBoolean ValueKind = "boolean"
	ValueKindText    ValueKind = "text"
)

func ParseValueKind(value string) (ValueKind, error) {
	switch kind := ValueKind(strings.ToLower(strings.TrimSpace(value))); kind {
	case ValueKindNumeric, ValueKindBoolean, ValueKindText:
		return kind, nil
	default:
		return "", ErrInvalidValueKind
	}
}

func (k ValueKind) IsValid() bool {
	_, err := ParseValueKind(string(k))
	return err == nil
}

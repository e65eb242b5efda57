package domain

import (
	"strconv"
	"time"

	"status-report-server/internal/infra/utils"
	shareddomain "status-report-server/internal/shared_kernel/domain"
)

// IndicatorValue is the computed result of one indicator for one report.
// Only the slot matching ValueKind is ever set.
type IndicatorValue struct {
	ID          shareddomain.ID
	IndicatorID shareddomain.ID
	ReportID    *shareddomain.ID

	// mirrored from the report
	ProjectID *shareddomain.ID
	Date      *time.Time

	// mirrored from the indicator
	Name      shareddomain.Name
	Sequence  int
	ValueKind ValueKind

	Numeric *float64
	Boolean *bool
	Text    *string
	Color   Color

	CreatedAt utils.Time
	UpdatedAt utils.Time
}

// MirrorIndicator copies the indicator attributes a value displays.
func (v *IndicatorValue) MirrorIndicator(indicator Indicator) {
	v.IndicatorID = indicator.ID
	v.Name = indicator.Name
	v.Sequence = indicator.Sequence
	v.ValueKind = indicator.ValueKind
	if indicator.ReportID != nil {
		id := *indicator.ReportID
		v.ReportID = &id
	}
}

// MirrorReport copies project and date from the owning report. A nil
// report clears them.
func (v *IndicatorValue) MirrorReport(report *Report) {
	if report == nil {
		v.ProjectID = nil
		v.Date = nil
		return
	}
	id := report.ID
	projectID := report.ProjectID
	date := report.Date
	v.ReportID = &id
	v.ProjectID = &projectID
	v.Date = &date
}

// SetValue stores raw in the slot selected by ValueKind. Nil leaves every
// slot unset.
func (v *IndicatorValue) SetValue(raw any) error {
	v.Numeric, v.Boolean, v.Text = nil, nil, nil
	if raw == nil {
		return nil
	}

	switch v.ValueKind {
	case ValueKindNumeric:
		n, ok := toFloat(raw)
		if !ok {
			return ErrValueKindMismatch
		}
		v.Numeric = &n
	case ValueKindBoolean:
		b, ok := raw.(bool)
		if !ok {
			return ErrValueKindMismatch
		}
		v.Boolean = &b
	case ValueKindText:
		s, ok := raw.(string)
		if !ok {
			return ErrValueKindMismatch
		}
		v.Text = &s
	default:
		return ErrInvalidValueKind
	}
	return nil
}

// Raw returns the content of the active slot, nil when unset.
func (v IndicatorValue) Raw() any {
	switch v.ValueKind {
	case ValueKindNumeric:
		if v.Numeric != nil {
			return *v.Numeric
		}
	case ValueKindBoolean:
		if v.Boolean != nil {
			return *v.Boolean
		}
	case ValueKindText:
		if v.Text != nil {
			return *v.Text
		}
	}
	return nil
}

func (v *IndicatorValue) SetColor(value string) error {
	c, err := ParseColor(value)
	if err != nil {
		return err
	}
	v.Color = c
	return nil
}

// DisplayValue renders the active slot as text. An unset slot renders empty.
func (v IndicatorValue) DisplayValue() string {
	switch raw := v.Raw().(type) {
	case float64:
		return strconv.FormatFloat(raw, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(raw)
	case string:
		return raw
	default:
		return ""
	}
}

func toFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func NewIndicatorValueBuilder() *indicatorValueBuilder {
	return &indicatorValueBuilder{}
}

type indicatorValueBuilder struct {
	actions []indicatorValueHandler
}

type indicatorValueHandler func(v *IndicatorValue) error

func (b *indicatorValueBuilder) WithIndicator(value Indicator) *indicatorValueBuilder {
	b.actions = append(b.actions, func(d *IndicatorValue) error {
		d.MirrorIndicator(value)
		return nil
	})
	return b
}

func (b *indicatorValueBuilder) WithReport(value *Report) *indicatorValueBuilder {
	b.actions = append(b.actions, func(d *IndicatorValue) error {
		d.MirrorReport(value)
		return nil
	})
	return b
}

func (b *indicatorValueBuilder) WithColor(value string) *indicatorValueBuilder {
	b.actions = append(b.actions, func(d *IndicatorValue) error {
		return d.SetColor(value)
	})
	return b
}

func (b *indicatorValueBuilder) WithValue(value any) *indicatorValueBuilder {
	b.actions = append(b.actions, func(d *IndicatorValue) error {
		return d.SetValue(value)
	})
	return b
}

// Build applies actions in order, so WithIndicator must come before WithValue.
func (b *indicatorValueBuilder) Build() (IndicatorValue, error) {
	now := utils.Now()
	result := IndicatorValue{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Color:     ColorGreen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return IndicatorValue{}, err
		}
	}

	if result.IndicatorID.IsEmpty() {
		return IndicatorValue{}, ErrIndicatorRequired
	}

	return result, nil
}

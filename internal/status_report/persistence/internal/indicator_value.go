package internal

import (
	"time"

	"status-report-server/internal/infra/pubsub"
	"status-report-server/internal/infra/utils"
	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/domain"
)

type IndicatorValue struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	IndicatorID string     `json:"indicator_id" gorm:"not null;uniqueIndex:idx_value_indicator_report"`
	ReportID    *string    `json:"report_id,omitempty" gorm:"uniqueIndex:idx_value_indicator_report"`
	ProjectID   *string    `json:"project_id,omitempty" gorm:"index"`
	Date        *time.Time `json:"date,omitempty"`
	Name        string     `json:"name"`
	Sequence    int        `json:"sequence"`
	ValueKind   string     `json:"value_kind"`
	Numeric     *float64   `json:"value_numeric,omitempty" gorm:"column:value_numeric"`
	Boolean     *bool      `json:"value_boolean,omitempty" gorm:"column:value_boolean"`
	Text        *string    `json:"value_text,omitempty" gorm:"column:value_text"`
	Color       string     `json:"color" gorm:"size:7;not null"`
	CreatedAt   utils.Time `json:"created_at"`
	UpdatedAt   utils.Time `json:"updated_at"`
}

func (IndicatorValue) TableName() string {
	return "status_indicator_values"
}

func idString(id *shareddomain.ID) *string {
	if id == nil {
		return nil
	}
	return utils.StringPtr(id.String())
}

func idValue(id *string) *shareddomain.ID {
	if id == nil {
		return nil
	}
	return utils.Ptr(shareddomain.ID(*id))
}

func FromIndicatorValue(value domain.IndicatorValue) IndicatorValue {
	return IndicatorValue{
		ID:          value.ID.String(),
		IndicatorID: value.IndicatorID.String(),
		ReportID:    idString(value.ReportID),
		ProjectID:   idString(value.ProjectID),
		Date:        value.Date,
		Name:        string(value.Name),
		Sequence:    value.Sequence,
		ValueKind:   string(value.ValueKind),
		Numeric:     value.Numeric,
		Boolean:     value.Boolean,
		Text:        value.Text,
		Color:       value.Color.String(),
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
	}
}

func (v IndicatorValue) ToDomain() domain.IndicatorValue {
	var date *time.Time
	if v.Date != nil {
		date = utils.TimePtr(v.Date.UTC())
	}

	return domain.IndicatorValue{
		ID:          shareddomain.ID(v.ID),
		IndicatorID: shareddomain.ID(v.IndicatorID),
		ReportID:    idValue(v.ReportID),
		ProjectID:   idValue(v.ProjectID),
		Date:        date,
		Name:        shareddomain.Name(v.Name),
		Sequence:    v.Sequence,
		ValueKind:   domain.ValueKind(v.ValueKind),
		Numeric:     v.Numeric,
		Boolean:     v.Boolean,
		Text:        v.Text,
		Color:       domain.Color(v.Color),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

// Changes lists the columns written by an update, unset slots included.
func (v IndicatorValue) Changes() map[string]any {
	return map[string]any{
		"report_id":     v.ReportID,
		"project_id":    v.ProjectID,
		"date":          v.Date,
		"name":          v.Name,
		"sequence":      v.Sequence,
		"value_kind":    v.ValueKind,
		"value_numeric": v.Numeric,
		"value_boolean": v.Boolean,
		"value_text":    v.Text,
		"color":         v.Color,
		"updated_at":    v.UpdatedAt,
	}
}

const (
	EventValueCreated = "created"
	EventValueUpdated = "updated"
)

// IndicatorValueEvent is published on every stored change of a value.
type IndicatorValueEvent struct {
	Type         string              `json:"type"`
	ID           string              `json:"id"`
	IndicatorID  string              `json:"indicator_id"`
	ReportID     *string             `json:"report_id,omitempty"`
	ProjectID    *string             `json:"project_id,omitempty"`
	Name         string              `json:"name"`
	ValueKind    string              `json:"value_kind"`
	DisplayValue string              `json:"display_value"`
	Color        string              `json:"color"`
	OccurredAt   time.Time           `json:"occurred_at"`
	Trace        pubsub.TraceHeaders `json:"trace"`
}

func NewIndicatorValueEvent(eventType string, value domain.IndicatorValue, trace pubsub.TraceHeaders) IndicatorValueEvent {
	return IndicatorValueEvent{
		Type:         eventType,
		ID:           value.ID.String(),
		IndicatorID:  value.IndicatorID.String(),
		ReportID:     idString(value.ReportID),
		ProjectID:    idString(value.ProjectID),
		Name:         string(value.Name),
		ValueKind:    string(value.ValueKind),
		DisplayValue: value.DisplayValue(),
		Color:        value.Color.String(),
		OccurredAt:   time.Now().UTC(),
		Trace:        trace,
	}
}

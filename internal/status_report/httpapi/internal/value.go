package internal

import (
	"time"

	"status-report-server/internal/infra/utils"
	"status-report-server/internal/status_report/domain"
)

type ValueUpdateRequest struct {
	Value any    `json:"value"`
	Color string `json:"color,omitempty"`
}

type ValueResponse struct {
	ID           string    `json:"id"`
	IndicatorID  string    `json:"indicator_id"`
	ReportID     *string   `json:"report_id,omitempty"`
	ProjectID    *string   `json:"project_id,omitempty"`
	Date         *string   `json:"date,omitempty"`
	Name         string    `json:"name"`
	Sequence     int       `json:"sequence"`
	ValueKind    string    `json:"value_kind"`
	ValueNumeric *float64  `json:"value_numeric,omitempty"`
	ValueBoolean *bool     `json:"value_boolean,omitempty"`
	ValueText    *string   `json:"value_text,omitempty"`
	DisplayValue string    `json:"display_value"`
	Color        string    `json:"color"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToValueResponse(value domain.IndicatorValue) ValueResponse {
	response := ValueResponse{
		ID:           value.ID.String(),
		IndicatorID:  value.IndicatorID.String(),
		Name:         string(value.Name),
		Sequence:     value.Sequence,
		ValueKind:    string(value.ValueKind),
		ValueNumeric: value.Numeric,
		ValueBoolean: value.Boolean,
		ValueText:    value.Text,
		DisplayValue: value.DisplayValue(),
		Color:        value.Color.String(),
		CreatedAt:    value.CreatedAt.Time,
		UpdatedAt:    value.UpdatedAt.Time,
	}
	if value.ReportID != nil {
		response.ReportID = utils.StringPtr(value.ReportID.String())
	}
	if value.ProjectID != nil {
		response.ProjectID = utils.StringPtr(value.ProjectID.String())
	}
	if value.Date != nil {
		response.Date = utils.StringPtr(value.Date.Format(utils.DateLayout))
	}
	return response
}

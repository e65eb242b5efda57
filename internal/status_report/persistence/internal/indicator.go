package internal

import (
	"status-report-server/internal/infra/utils"
	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/domain"
)

type Indicator struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	Version   int        `json:"version"`
	Name      string     `json:"name" gorm:"not null"`
	ReportID  *string    `json:"report_id,omitempty" gorm:"index"`
	Sequence  int        `json:"sequence"`
	ValueKind string     `json:"value_kind" gorm:"not null"`
	Formula   string     `json:"formula" gorm:"type:text"`
	CreatedAt utils.Time `json:"created_at"`
	UpdatedAt utils.Time `json:"updated_at"`
}

func (Indicator) TableName() string {
	return "status_indicators"
}

func FromIndicator(value domain.Indicator) Indicator {
	var reportID *string
	if value.ReportID != nil {
		reportID = utils.StringPtr(value.ReportID.String())
	}

	return Indicator{
		ID:        value.ID.String(),
		Version:   int(value.Version),
		Name:      string(value.Name),
		ReportID:  reportID,
		Sequence:  value.Sequence,
		ValueKind: string(value.ValueKind),
		Formula:   value.Formula,
		CreatedAt: value.CreatedAt,
		UpdatedAt: value.UpdatedAt,
	}
}

func (i Indicator) ToDomain() domain.Indicator {
	var reportID *shareddomain.ID
	if i.ReportID != nil {
		reportID = utils.Ptr(shareddomain.ID(*i.ReportID))
	}

	return domain.Indicator{
		ID:        shareddomain.ID(i.ID),
		Version:   shareddomain.Version(i.Version),
		Name:      shareddomain.Name(i.Name),
		ReportID:  reportID,
		Sequence:  i.Sequence,
		ValueKind: domain.ValueKind(i.ValueKind),
		Formula:   i.Formula,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// Changes lists the columns written by an update.
func (i Indicator) Changes() map[string]any {
	return map[string]any{
		"version":    i.Version,
		"name":       i.Name,
		"report_id":  i.ReportID,
		"sequence":   i.Sequence,
		"value_kind": i.ValueKind,
		"formula":    i.Formula,
		"updated_at": i.UpdatedAt,
	}
}

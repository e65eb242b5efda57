package domain

import (
	"errors"
	"time"

	"status-report-server/internal/infra/utils"
	shareddomain "status-report-server/internal/shared_kernel/domain"
)

var (
	ErrAnalyticAccountRequired = errors.New("analytic account is required")
)

// AnalyticLine is a time or cost entry booked on an analytic account.
// Timesheet entries carry hours in UnitAmount.
type AnalyticLine struct {
	ID          shareddomain.ID
	AccountID   shareddomain.ID
	Name        string
	Date        time.Time
	UnitAmount  float64
	Amount      float64
	IsTimesheet bool
	UserID      *shareddomain.ID
}

func NewAnalyticLineBuilder() *analyticLineBuilder {
	return &analyticLineBuilder{}
}

type analyticLineBuilder struct {
	actions []analyticLineHandler
}

type analyticLineHandler func(v *AnalyticLine) error

func (b *analyticLineBuilder) WithAccountID(value shareddomain.ID) *analyticLineBuilder {
	b.actions = append(b.actions, func(d *AnalyticLine) error {
		d.AccountID = value
		return nil
	})
	return b
}

func (b *analyticLineBuilder) WithName(value string) *analyticLineBuilder {
	b.actions = append(b.actions, func(d *AnalyticLine) error {
		d.Name = value
		return nil
	})
	return b
}

func (b *analyticLineBuilder) WithDate(value time.Time) *analyticLineBuilder {
	b.actions = append(b.actions, func(d *AnalyticLine) error {
		d.Date = utils.TruncateToDate(value)
		return nil
	})
	return b
}

func (b *analyticLineBuilder) WithUnitAmount(value float64) *analyticLineBuilder {
	b.actions = append(b.actions, func(d *AnalyticLine) error {
		d.UnitAmount = value
		return nil
	})
	return b
}

func (b *analyticLineBuilder) WithAmount(value float64) *analyticLineBuilder {
	b.actions = append(b.actions, func(d *AnalyticLine) error {
		d.Amount = value
		return nil
	})
	return b
}

func (b *analyticLineBuilder) AsTimesheet() *analyticLineBuilder {
	b.actions = append(b.actions, func(d *AnalyticLine) error {
		d.IsTimesheet = true
		return nil
	})
	return b
}

func (b *analyticLineBuilder) WithUserID(value shareddomain.ID) *analyticLineBuilder {
	b.actions = append(b.actions, func(d *AnalyticLine) error {
		if !value.IsEmpty() {
			d.UserID = &value
		}
		return nil
	})
	return b
}

func (b *analyticLineBuilder) Build() (AnalyticLine, error) {
	result := AnalyticLine{
		ID:   shareddomain.ID(utils.GenerateUUID()),
		Date: utils.TruncateToDate(time.Now()),
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return AnalyticLine{}, err
		}
	}

	if result.AccountID.IsEmpty() {
		return AnalyticLine{}, ErrAnalyticAccountRequired
	}

	return result, nil
}

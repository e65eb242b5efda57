package domain

import (
	"strings"

	"status-report-server/internal/infra/utils"
	shareddomain "status-report-server/internal/shared_kernel/domain"
)

const DefaultSequence = 10

// DefaultFormula is the body given to indicators created without one.
const DefaultFormula = `// Bindings: self, date, sales, invoices, analytic_lines,
// timesheets, non_timesheets, green, orange, red.
// Assign the result to value and optionally pick a color:
//   value = sum(map(timesheets, .unit_amount))
//   color = value > 100 ? red : green
value = nil
color = green
`

type Indicator struct {
	ID        shareddomain.ID
	Version   shareddomain.Version
	Name      shareddomain.Name
	ReportID  *shareddomain.ID
	Sequence  int
	ValueKind ValueKind
	Formula   string
	CreatedAt utils.Time
	UpdatedAt utils.Time
}

func (i *Indicator) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrIndicatorNameRequired
	}
	i.Name = shareddomain.Name(name)
	return nil
}

func (i *Indicator) ChangeValueKind(kind ValueKind) error {
	if !kind.IsValid() {
		return ErrInvalidValueKind
	}
	i.ValueKind = kind
	return nil
}

func (i *Indicator) Touch() {
	i.Version++
	i.UpdatedAt = utils.Now()
}

func NewIndicatorBuilder() *indicatorBuilder {
	return &indicatorBuilder{}
}

type indicatorBuilder struct {
	actions []indicatorHandler
}

type indicatorHandler func(v *Indicator) error

func (b *indicatorBuilder) WithName(value string) *indicatorBuilder {
	b.actions = append(b.actions, func(d *Indicator) error {
		return d.Rename(value)
	})
	return b
}

func (b *indicatorBuilder) WithReportID(value shareddomain.ID) *indicatorBuilder {
	b.actions = append(b.actions, func(d *Indicator) error {
		if value.IsEmpty() {
			d.ReportID = nil
			return nil
		}
		d.ReportID = &value
		return nil
	})
	return b
}

func (b *indicatorBuilder) WithSequence(value int) *indicatorBuilder {
	b.actions = append(b.actions, func(d *Indicator) error {
		d.Sequence = value
		return nil
	})
	return b
}

func (b *indicatorBuilder) WithValueKind(value ValueKind) *indicatorBuilder {
	b.actions = append(b.actions, func(d *Indicator) error {
		return d.ChangeValueKind(value)
	})
	return b
}

func (b *indicatorBuilder) WithFormula(value string) *indicatorBuilder {
	b.actions = append(b.actions, func(d *Indicator) error {
		if strings.TrimSpace(value) == "" {
			return nil
		}
		d.Formula = value
		return nil
	})
	return b
}

func (b *indicatorBuilder) Build() (Indicator, error) {
	now := utils.Now()
	result := Indicator{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		Sequence:  DefaultSequence,
		Formula:   DefaultFormula,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Indicator{}, err
		}
	}

	if result.Name == "" {
		return Indicator{}, ErrIndicatorNameRequired
	}
	if result.ValueKind == "" {
		return Indicator{}, ErrInvalidValueKind
	}

	return result, nil
}

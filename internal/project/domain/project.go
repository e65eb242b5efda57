package domain

import (
	"errors"
	"strings"

	"status-report-server/internal/infra/utils"
	shareddomain "status-report-server/internal/shared_kernel/domain"
)

var (
	ErrProjectNameRequired = errors.New("project name is required")
)

type Project struct {
	ID                shareddomain.ID
	Name              shareddomain.Name
	AnalyticAccountID *shareddomain.ID
	CreatedAt         utils.Time
}

func (p Project) HasAnalyticAccount() bool {
	return p.AnalyticAccountID != nil && !p.AnalyticAccountID.IsEmpty()
}

func NewProjectBuilder() *projectBuilder {
	return &projectBuilder{}
}

type projectBuilder struct {
	actions []projectHandler
}

type projectHandler func(v *Project) error

func (b *projectBuilder) WithName(value string) *projectBuilder {
	b.actions = append(b.actions, func(d *Project) error {
		d.Name = shareddomain.Name(strings.TrimSpace(value))
		return nil
	})
	return b
}

func (b *projectBuilder) WithAnalyticAccountID(value shareddomain.ID) *projectBuilder {
	b.actions = append(b.actions, func(d *Project) error {
		if value.IsEmpty() {
			d.AnalyticAccountID = nil
			return nil
		}
		d.AnalyticAccountID = &value
		return nil
	})
	return b
}

func (b *projectBuilder) Build() (Project, error) {
	result := Project{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		CreatedAt: utils.Now(),
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Project{}, err
		}
	}

	if result.Name == "" {
		return Project{}, ErrProjectNameRequired
	}

	return result, nil
}

package domain

import (
	"errors"
	"time"

	"status-report-server/internal/infra/utils"
	shareddomain "status-report-server/internal/shared_kernel/domain"
)

type SaleOrderState string

const (
	SaleOrderStateDraft     SaleOrderState = "draft"
	SaleOrderStateSent      SaleOrderState = "sent"
	SaleOrderStateSale      SaleOrderState = "sale"
	SaleOrderStateDone      SaleOrderState = "done"
	SaleOrderStateCancelled SaleOrderState = "cancel"
)

var ErrInvalidSaleOrderState = errors.New("invalid sale order state")

func ParseSaleOrderState(value string) (SaleOrderState, error) {
	switch state := SaleOrderState(value); state {
	case SaleOrderStateDraft, SaleOrderStateSent, SaleOrderStateSale, SaleOrderStateDone, SaleOrderStateCancelled:
		return state, nil
	case "":
		return SaleOrderStateDraft, nil
	default:
		return "", ErrInvalidSaleOrderState
	}
}

type SaleOrder struct {
	ID                shareddomain.ID
	Name              string
	AnalyticAccountID shareddomain.ID
	State             SaleOrderState
	AmountUntaxed     float64
	AmountTotal       float64
	OrderedAt         time.Time
}

func NewSaleOrder(name string, analyticAccountID shareddomain.ID, state SaleOrderState, amountUntaxed, amountTotal float64, orderedAt time.Time) (SaleOrder, error) {
	if analyticAccountID.IsEmpty() {
		return SaleOrder{}, ErrAnalyticAccountRequired
	}
	if orderedAt.IsZero() {
		orderedAt = time.Now()
	}

	return SaleOrder{
		ID:                shareddomain.ID(utils.GenerateUUID()),
		Name:              name,
		AnalyticAccountID: analyticAccountID,
		State:             state,
		AmountUntaxed:     amountUntaxed,
		AmountTotal:       amountTotal,
		OrderedAt:         orderedAt.UTC(),
	}, nil
}

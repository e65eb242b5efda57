package domain

import (
	"errors"
	"time"

	"status-report-server/internal/infra/utils"
	shareddomain "status-report-server/internal/shared_kernel/domain"
)

type InvoiceKind string

const (
	InvoiceKindCustomerInvoice InvoiceKind = "out_invoice"
	InvoiceKindVendorBill      InvoiceKind = "in_invoice"
	InvoiceKindCustomerRefund  InvoiceKind = "out_refund"
	InvoiceKindVendorRefund    InvoiceKind = "in_refund"
)

type InvoiceState string

const (
	InvoiceStateDraft     InvoiceState = "draft"
	InvoiceStateOpen      InvoiceState = "open"
	InvoiceStatePaid      InvoiceState = "paid"
	InvoiceStateCancelled InvoiceState = "cancel"
)

var (
	ErrInvalidInvoiceKind  = errors.New("invalid invoice kind")
	ErrInvalidInvoiceState = errors.New("invalid invoice state")
	ErrInvoiceLinesEmpty   = errors.New("invoice must have at least one line")
)

func ParseInvoiceKind(value string) (InvoiceKind, error) {
	switch kind := InvoiceKind(value); kind {
	case InvoiceKindCustomerInvoice, InvoiceKindVendorBill, InvoiceKindCustomerRefund, InvoiceKindVendorRefund:
		return kind, nil
	case "":
		return InvoiceKindCustomerInvoice, nil
	default:
		return "", ErrInvalidInvoiceKind
	}
}

func ParseInvoiceState(value string) (InvoiceState, error) {
	switch state := InvoiceState(value); state {
	case InvoiceStateDraft, InvoiceStateOpen, InvoiceStatePaid, InvoiceStateCancelled:
		return state, nil
	case "":
		return InvoiceStateDraft, nil
	default:
		return "", ErrInvalidInvoiceState
	}
}

type Invoice struct {
	ID            shareddomain.ID
	Number        string
	Kind          InvoiceKind
	State         InvoiceState
	AmountUntaxed float64
	AmountTotal   float64
	Residual      float64
	InvoicedAt    time.Time
	Lines         []InvoiceLine
}

// InvoiceLine links part of an invoice to an analytic account. Formulas
// reach invoices through their lines' accounts.
type InvoiceLine struct {
	ID                shareddomain.ID
	InvoiceID         shareddomain.ID
	AnalyticAccountID *shareddomain.ID
	Description       string
	Quantity          float64
	PriceSubtotal     float64
}

func NewInvoice(number string, kind InvoiceKind, state InvoiceState, amountTotal, residual float64, invoicedAt time.Time, lines []InvoiceLine) (Invoice, error) {
	if len(lines) == 0 {
		return Invoice{}, ErrInvoiceLinesEmpty
	}
	if invoicedAt.IsZero() {
		invoicedAt = time.Now()
	}

	result := Invoice{
		ID:         shareddomain.ID(utils.GenerateUUID()),
		Number:     number,
		Kind:       kind,
		State:      state,
		Residual:   residual,
		InvoicedAt: utils.TruncateToDate(invoicedAt),
		Lines:      make([]InvoiceLine, len(lines)),
	}

	for i, line := range lines {
		if line.ID.IsEmpty() {
			line.ID = shareddomain.ID(utils.GenerateUUID())
		}
		line.InvoiceID = result.ID
		result.AmountUntaxed += line.PriceSubtotal
		result.Lines[i] = line
	}

	result.AmountTotal = amountTotal
	if result.AmountTotal == 0 {
		result.AmountTotal = result.AmountUntaxed
	}

	return result, nil
}

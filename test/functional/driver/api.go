package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"status-report-server/internal/infra/auth"
	shareddomain "status-report-server/internal/shared_kernel/domain"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
	token   string
	issuer  *auth.JWTAuthenticator
}

func NewAPIDriver(stack *Stack) *APIDriver {
	return &APIDriver{
		baseURL: stack.Server.URL,
		client:  stack.Server.Client(),
		issuer:  stack.Authenticator,
	}
}

// ActAs signs the following requests for actor. An empty id makes them
// anonymous again.
func (d *APIDriver) ActAs(id string, role shareddomain.Role) error {
	if id == "" {
		d.token = ""
		return nil
	}

	token, err := d.issuer.Issue(shareddomain.Actor{ID: shareddomain.ID(id), Role: role}, time.Hour)
	if err != nil {
		return err
	}
	d.token = token
	return nil
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.do(http.MethodGet, "/healthz", nil)
}

func (d *APIDriver) CreateProject(name, analyticAccountID string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/projects", map[string]any{
		"name":                name,
		"analytic_account_id": analyticAccountID,
	})
}

func (d *APIDriver) AddSaleOrder(projectID, name, state string, amountUntaxed float64) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/projects/%s/sale-orders", projectID), map[string]any{
		"name":           name,
		"state":          state,
		"amount_untaxed": amountUntaxed,
		"amount_total":   amountUntaxed,
	})
}

func (d *APIDriver) AddInvoice(projectID, number, kind, state, analyticAccountID string, amountUntaxed, residual float64) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/projects/%s/invoices", projectID), map[string]any{
		"number":   number,
		"kind":     kind,
		"state":    state,
		"residual": residual,
		"lines": []map[string]any{{
			"analytic_account_id": analyticAccountID,
			"description":         number,
			"quantity":            1,
			"price_subtotal":      amountUntaxed,
		}},
	})
}

func (d *APIDriver) AddAnalyticLine(projectID, name string, unitAmount, amount float64, timesheet bool) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/projects/%s/analytic-lines", projectID), map[string]any{
		"name":         name,
		"unit_amount":  unitAmount,
		"amount":       amount,
		"is_timesheet": timesheet,
	})
}

func (d *APIDriver) CreateReport(projectID, date string, installCatalog bool) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/status-reports", map[string]any{
		"project_id":      projectID,
		"date":            date,
		"install_catalog": installCatalog,
	})
}

func (d *APIDriver) GetReport(id string) (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/status-reports/"+id, nil)
}

func (d *APIDriver) RescheduleReport(id, date string) (*http.Response, error) {
	return d.do(http.MethodPut, "/v1/status-reports/"+id, map[string]any{"date": date})
}

func (d *APIDriver) DeleteReport(id string) (*http.Response, error) {
	return d.do(http.MethodDelete, "/v1/status-reports/"+id, nil)
}

func (d *APIDriver) ListReportValues(id string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/status-reports/%s/values", id), nil)
}

func (d *APIDriver) ListReportIndicators(id string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/status-reports/%s/indicators", id), nil)
}

func (d *APIDriver) CreateReportIndicator(reportID, name, kind, formula string) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/status-reports/%s/indicators", reportID), map[string]any{
		"name":       name,
		"value_kind": kind,
		"formula":    formula,
	})
}

func (d *APIDriver) UpdateIndicatorFormula(id, name, kind, formula string) (*http.Response, error) {
	return d.do(http.MethodPut, "/v1/indicators/"+id, map[string]any{
		"name":       name,
		"value_kind": kind,
		"formula":    formula,
	})
}

func (d *APIDriver) ValidateFormula(name, formula string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/indicators/validate", map[string]any{
		"name":    name,
		"formula": formula,
	})
}

func (d *APIDriver) ComputeValue(reportID, indicatorID string) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/status-reports/%s/indicators/%s/compute", reportID, indicatorID), map[string]any{})
}

func (d *APIDriver) GetValue(id string) (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/indicator-values/"+id, nil)
}

func (d *APIDriver) UpdateValue(id string, value any) (*http.Response, error) {
	return d.do(http.MethodPut, "/v1/indicator-values/"+id, map[string]any{"value": value})
}

func (d *APIDriver) RecomputeValue(id string) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/indicator-values/%s/recompute", id), nil)
}

func (d *APIDriver) do(method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, d.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if d.token != "" {
		req.Header.Set("Authorization", "Bearer "+d.token)
	}
	return d.client.Do(req)
}

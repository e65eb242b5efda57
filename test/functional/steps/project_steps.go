package steps

import (
	"net/http"
	"strconv"
)

func (fc *FeatureContext) aProjectOnAnalyticAccount(name, account string) error {
	data := fc.expect(http.StatusCreated)(fc.apiDriver.CreateProject(name, account))
	fc.projectID = data["id"].(string)
	fc.accountID = account
	return nil
}

func (fc *FeatureContext) theProjectHasASaleOrder(name, state, amount string) error {
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return err
	}
	fc.expect(http.StatusCreated)(fc.apiDriver.AddSaleOrder(fc.projectID, name, state, value))
	return nil
}

func (fc *FeatureContext) theProjectHasACustomerInvoice(number, state, amount, due string) error {
	untaxed, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return err
	}
	residual, err := strconv.ParseFloat(due, 64)
	if err != nil {
		return err
	}
	fc.expect(http.StatusCreated)(fc.apiDriver.AddInvoice(fc.projectID, number, "out_invoice", state, fc.accountID, untaxed, residual))
	return nil
}

func (fc *FeatureContext) theProjectHasATimesheetLine(name, hours, cost string) error {
	unitAmount, err := strconv.ParseFloat(hours, 64)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(cost, 64)
	if err != nil {
		return err
	}
	fc.expect(http.StatusCreated)(fc.apiDriver.AddAnalyticLine(fc.projectID, name, unitAmount, -amount, true))
	return nil
}

package steps

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"status-report-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

type FeatureContext struct {
	apiDriver    *driver.APIDriver
	response     *http.Response
	responseData map[string]any
	projectID    string
	accountID    string
	reportID     string
	indicatorIDs map[string]string
	valueID      string
	require      *require.Assertions
	t            godog.TestingT
}

func NewFeatureContext(stack *driver.Stack) *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver(stack),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Step(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.Step(`^I am the user "([^"]*)"$`, fc.iAmTheUser)
	ctx.Step(`^I am the system user "([^"]*)"$`, fc.iAmTheSystemUser)
	ctx.Step(`^I am anonymous$`, fc.iAmAnonymous)

	// Healthz steps
	ctx.Step(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Step(`^the response should contain status information$`, fc.theResponseShouldContainStatusInformation)

	// Project steps
	ctx.Step(`^a project "([^"]*)" on analytic account "([^"]*)"$`, fc.aProjectOnAnalyticAccount)
	ctx.Step(`^the project has a sale order "([^"]*)" in state "([^"]*)" worth ([\d.]+)$`, fc.theProjectHasASaleOrder)
	ctx.Step(`^the project has a customer invoice "([^"]*)" in state "([^"]*)" worth ([\d.]+) with ([\d.]+) due$`, fc.theProjectHasACustomerInvoice)
	ctx.Step(`^the project has a timesheet line "([^"]*)" of ([\d.]+) hours costing ([\d.]+)$`, fc.theProjectHasATimesheetLine)

	// Report steps
	ctx.Step(`^I create a status report for the project on "([^"]*)" with the default catalog$`, fc.iCreateAStatusReportWithTheDefaultCatalog)
	ctx.Step(`^an empty status report for the project on "([^"]*)"$`, fc.anEmptyStatusReport)
	ctx.Step(`^I list the indicators of the report$`, fc.iListTheIndicatorsOfTheReport)
	ctx.Step(`^the report should have (\d+) indicators starting with "([^"]*)"$`, fc.theReportShouldHaveIndicatorsStartingWith)
	ctx.Step(`^I move the report to "([^"]*)"$`, fc.iMoveTheReportTo)
	ctx.Step(`^I delete the report$`, fc.iDeleteTheReport)
	ctx.Step(`^the report values should all be dated "([^"]*)"$`, fc.theReportValuesShouldAllBeDated)

	// Indicator steps
	ctx.Step(`^I add the indicator "([^"]*)" of kind "([^"]*)" with formula:$`, fc.iAddTheIndicatorWithFormula)
	ctx.Step(`^I change the formula of "([^"]*)" to:$`, fc.iChangeTheFormulaOf)
	ctx.Step(`^I validate the formula:$`, fc.iValidateTheFormula)
	ctx.Step(`^the formula should be reported invalid at line (\d+)$`, fc.theFormulaShouldBeReportedInvalidAtLine)
	ctx.Step(`^the formula should be reported valid$`, fc.theFormulaShouldBeReportedValid)

	// Value steps
	ctx.Step(`^I compute the indicator "([^"]*)"$`, fc.iComputeTheIndicator)
	ctx.Step(`^the value should display "([^"]*)" in color "([^"]*)"$`, fc.theValueShouldDisplayInColor)
	ctx.Step(`^I set the value to (.+)$`, fc.iSetTheValueTo)
	ctx.Step(`^I recompute the value$`, fc.iRecomputeTheValue)
	ctx.Step(`^I fetch the value$`, fc.iFetchTheValue)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return ctx, fc.apiDriver.ActAs("", "")
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.projectID = ""
	fc.accountID = ""
	fc.reportID = ""
	fc.indicatorIDs = map[string]string{}
	fc.valueID = ""
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(target)
}

// expect returns a recorder that stores the response and fails the step
// unless it carries status.
func (fc *FeatureContext) expect(status int) func(*http.Response, error) map[string]any {
	return func(response *http.Response, err error) map[string]any {
		fc.require.NoError(err)
		fc.response = response
		fc.require.Equal(status, response.StatusCode, "unexpected status code")

		var data map[string]any
		fc.require.NoError(fc.decodeBody(response.Body, &data))
		fc.responseData = data
		return data
	}
}

// keep records response without asserting on it.
func (fc *FeatureContext) keep(response *http.Response, err error) error {
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

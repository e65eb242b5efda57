package steps

import (
	"net/http"

	"github.com/cucumber/godog"
)

func (fc *FeatureContext) iAddTheIndicatorWithFormula(name, kind string, formula *godog.DocString) error {
	response, err := fc.apiDriver.CreateReportIndicator(fc.reportID, name, kind, formula.Content)
	if err != nil {
		return err
	}
	fc.response = response
	if response.StatusCode != http.StatusCreated {
		return nil
	}

	var data map[string]any
	fc.require.NoError(fc.decodeBody(response.Body, &data))
	fc.indicatorIDs[name] = data["id"].(string)
	return nil
}

func (fc *FeatureContext) iChangeTheFormulaOf(name string, formula *godog.DocString) error {
	id, ok := fc.indicatorIDs[name]
	fc.require.True(ok, "unknown indicator %q", name)

	data := fc.expect(http.StatusOK)(fc.apiDriver.UpdateIndicatorFormula(id, name, "numeric", formula.Content))
	fc.require.Equal(formula.Content, data["formula"])
	return nil
}

func (fc *FeatureContext) iValidateTheFormula(formula *godog.DocString) error {
	fc.expect(http.StatusOK)(fc.apiDriver.ValidateFormula("Probe", formula.Content))
	return nil
}

func (fc *FeatureContext) theFormulaShouldBeReportedInvalidAtLine(line int) error {
	fc.require.Equal(false, fc.responseData["valid"])
	fc.require.EqualValues(line, fc.responseData["line"])
	fc.require.NotEmpty(fc.responseData["message"])
	return nil
}

func (fc *FeatureContext) theFormulaShouldBeReportedValid() error {
	fc.require.Equal(true, fc.responseData["valid"])
	return nil
}

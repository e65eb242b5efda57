package steps

import (
	"net/http"
)

func (fc *FeatureContext) iCreateAStatusReportWithTheDefaultCatalog(date string) error {
	data := fc.expect(http.StatusCreated)(fc.apiDriver.CreateReport(fc.projectID, date, true))
	fc.reportID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) anEmptyStatusReport(date string) error {
	data := fc.expect(http.StatusCreated)(fc.apiDriver.CreateReport(fc.projectID, date, false))
	fc.reportID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) iListTheIndicatorsOfTheReport() error {
	data := fc.expect(http.StatusOK)(fc.apiDriver.ListReportIndicators(fc.reportID))
	for _, item := range data["data"].([]any) {
		indicator := item.(map[string]any)
		fc.indicatorIDs[indicator["name"].(string)] = indicator["id"].(string)
	}
	return nil
}

func (fc *FeatureContext) theReportShouldHaveIndicatorsStartingWith(count int, first string) error {
	items := fc.responseData["data"].([]any)
	fc.require.Len(items, count)
	fc.require.Equal(first, items[0].(map[string]any)["name"])
	return nil
}

func (fc *FeatureContext) iMoveTheReportTo(date string) error {
	fc.expect(http.StatusOK)(fc.apiDriver.RescheduleReport(fc.reportID, date))
	return nil
}

func (fc *FeatureContext) iDeleteTheReport() error {
	return fc.keep(fc.apiDriver.DeleteReport(fc.reportID))
}

func (fc *FeatureContext) theReportValuesShouldAllBeDated(date string) error {
	data := fc.expect(http.StatusOK)(fc.apiDriver.ListReportValues(fc.reportID))
	items := data["data"].([]any)
	fc.require.NotEmpty(items)
	for _, item := range items {
		fc.require.Equal(date, item.(map[string]any)["date"])
	}
	return nil
}

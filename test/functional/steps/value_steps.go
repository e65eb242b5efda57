package steps

import (
	"encoding/json"
	"net/http"
)

func (fc *FeatureContext) iComputeTheIndicator(name string) error {
	id, ok := fc.indicatorIDs[name]
	fc.require.True(ok, "unknown indicator %q", name)

	response, err := fc.apiDriver.ComputeValue(fc.reportID, id)
	if err != nil {
		return err
	}
	fc.response = response
	if response.StatusCode != http.StatusCreated {
		return nil
	}

	var data map[string]any
	fc.require.NoError(fc.decodeBody(response.Body, &data))
	fc.responseData = data
	fc.valueID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) theValueShouldDisplayInColor(display, color string) error {
	fc.require.Equal(display, fc.responseData["display_value"])
	fc.require.Equal(color, fc.responseData["color"])
	return nil
}

// iSetTheValueTo takes a JSON literal such as 12, true or "late".
func (fc *FeatureContext) iSetTheValueTo(literal string) error {
	var value any
	if err := json.Unmarshal([]byte(literal), &value); err != nil {
		return err
	}
	return fc.keep(fc.apiDriver.UpdateValue(fc.valueID, value))
}

func (fc *FeatureContext) iRecomputeTheValue() error {
	response, err := fc.apiDriver.RecomputeValue(fc.valueID)
	if err != nil {
		return err
	}
	fc.response = response
	if response.StatusCode == http.StatusOK {
		var data map[string]any
		fc.require.NoError(fc.decodeBody(response.Body, &data))
		fc.responseData = data
	}
	return nil
}

func (fc *FeatureContext) iFetchTheValue() error {
	response, err := fc.apiDriver.GetValue(fc.valueID)
	if err != nil {
		return err
	}
	fc.response = response
	if response.StatusCode == http.StatusOK {
		var data map[string]any
		fc.require.NoError(fc.decodeBody(response.Body, &data))
		fc.responseData = data
	}
	return nil
}

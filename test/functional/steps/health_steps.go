package steps

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	return fc.keep(fc.apiDriver.GetHealthz())
}

func (fc *FeatureContext) theResponseShouldContainStatusInformation() error {
	var data map[string]any
	fc.require.NoError(fc.decodeBody(fc.response.Body, &data))

	fc.require.Equal("success", data["status"], "status should be 'success'")
	fc.require.NotEmpty(data["version"], "version should be present")
	return nil
}

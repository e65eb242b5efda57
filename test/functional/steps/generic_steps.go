package steps

import (
	shareddomain "status-report-server/internal/shared_kernel/domain"
)

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code")
	return nil
}

func (fc *FeatureContext) iAmTheUser(id string) error {
	return fc.apiDriver.ActAs(id, shareddomain.RoleUser)
}

func (fc *FeatureContext) iAmTheSystemUser(id string) error {
	return fc.apiDriver.ActAs(id, shareddomain.RoleSystem)
}

func (fc *FeatureContext) iAmAnonymous() error {
	return fc.apiDriver.ActAs("", "")
}

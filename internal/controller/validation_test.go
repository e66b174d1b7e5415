package controller

import "testing"

func TestValidateUpdateOrgV1InputWithoutFields(t *testing.T) {
	input := handleUpdateOrgV1Input{OrganizationId: "some-org-id"}
	if err := validateUpdateOrgV1Input(input); err == nil {
		t.Errorf("expected a patch with no fields to be rejected")
	}
}

func TestValidateUpdateOrgV1InputWithValidField(t *testing.T) {
	name := "Updated Org Name"
	input := handleUpdateOrgV1Input{Name: &name}
	if err := validateUpdateOrgV1Input(input); err != nil {
		t.Errorf("expected a patch with a valid name to pass validation, got: %s", err)
	}
}

func TestValidateUpdateOrgV1InputWithInvalidEmail(t *testing.T) {
	adminEmail := "not-an-email"
	input := handleUpdateOrgV1Input{AdminEmail: &adminEmail}
	if err := validateUpdateOrgV1Input(input); err == nil {
		t.Errorf("expected a patch with an invalid adminEmail to be rejected")
	}
}

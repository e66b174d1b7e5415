package controller

import (
	"errors"
	"fmt"
	"orgmaster/internal/validate"
)

func validateCreateOrgV1Input(input handleCreateOrgV1Input) error {
	errs := []error{}
	if err := validate.OrgName(input.Name); err != nil {
		errs = append(errs, fmt.Errorf("failed to validate name: %w", err))
	}
	if err := validate.Email(input.AdminEmail); err != nil {
		errs = append(errs, fmt.Errorf("failed to validate adminEmail: %w", err))
	}
	if err := validate.Password(input.Password); err != nil {
		errs = append(errs, fmt.Errorf("failed to validate password: %w", err))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func validateUpdateOrgV1Input(input handleUpdateOrgV1Input) error {
	if input.Name == nil && input.AdminEmail == nil && input.Password == nil {
		return fmt.Errorf("failed to receive any fields to update")
	}
	errs := []error{}
	if input.Name != nil {
		if err := validate.OrgName(*input.Name); err != nil {
			errs = append(errs, fmt.Errorf("failed to validate name: %w", err))
		}
	}
	if input.AdminEmail != nil {
		if err := validate.Email(*input.AdminEmail); err != nil {
			errs = append(errs, fmt.Errorf("failed to validate adminEmail: %w", err))
		}
	}
	if input.Password != nil {
		if err := validate.Password(*input.Password); err != nil {
			errs = append(errs, fmt.Errorf("failed to validate password: %w", err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

package models

import "fmt"

var (
	ErrorDuplicateEntry = fmt.Errorf("duplicate_entry")
	ErrorNotFound       = fmt.Errorf("not_found")

	errorNoDatabaseConnection  = fmt.Errorf("no_database_connection")
	errorInputValidationFailed = fmt.Errorf("input_validation_failed")
)

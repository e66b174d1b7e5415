package controller

import "errors"

var (
	ErrorAuthRequired       = errors.New("auth_required")
	ErrorMissingToken       = errors.New("missing_token")
	ErrorForbidden          = errors.New("forbidden")
	ErrorInvalidCredentials = errors.New("invalid_credentials")
	ErrorInvalidInput       = errors.New("invalid_input")
	ErrorEmailExists        = errors.New("email_exists")
	ErrorNotFound           = errors.New("not_found")
	ErrorDatabaseIssue      = errors.New("database_issue")
	ErrorGeneric            = errors.New("generic_error")

	ErrorMissingDatabaseConnection = errors.New("missing_database_connection")
	ErrorMissingJwtSigningSecret   = errors.New("missing_jwt_signing_secret")
	ErrorMissingServiceLog         = errors.New("missing_service_log")
)

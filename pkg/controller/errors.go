package controller

import "errors"

var (
	// ErrorOutputNil is returned when a successful response carries no
	// data where some was expected
	ErrorOutputNil = errors.New("output_nil")

	ErrorAuthRequired       = errors.New("auth_required")
	ErrorMissingToken       = errors.New("missing_token")
	ErrorTokenExpired       = errors.New("jwt_token_expired")
	ErrorTokenSignature     = errors.New("jwt_token_signature")
	ErrorTokenMalformed     = errors.New("jwt_token_malformed")
	ErrorClaimsInvalid      = errors.New("jwt_claims_invalid")
	ErrorForbidden          = errors.New("forbidden")
	ErrorInvalidCredentials = errors.New("invalid_credentials")
	ErrorInvalidInput       = errors.New("invalid_input")
	ErrorEmailExists        = errors.New("email_exists")
	ErrorNotFound           = errors.New("not_found")
	ErrorDatabaseIssue      = errors.New("database_issue")
	ErrorGeneric            = errors.New("generic_error")
)

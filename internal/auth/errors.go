package auth

import "errors"

var (
	// ErrorJwtTokenExpired indicates the token has expired
	ErrorJwtTokenExpired = errors.New("jwt_token_expired")
	// ErrorJwtTokenSignature indicates token signature validation failed
	ErrorJwtTokenSignature = errors.New("jwt_token_signature")
	// ErrorJwtTokenMalformed indicates the token couldn't be parsed at all
	ErrorJwtTokenMalformed = errors.New("jwt_token_malformed")
	// ErrorJwtClaimsInvalid indicates that the claim data couldn't be parsed
	ErrorJwtClaimsInvalid = errors.New("jwt_claims_invalid")

	ErrorJwtSecretMissing = errors.New("jwt_secret_missing")

	ErrorPasswordMissing = errors.New("password_missing")
	ErrorHashFormat      = errors.New("hash_format_invalid")
)

package tests

import (
	intAuth "orgmaster/internal/auth"
	intController "orgmaster/internal/controller"
	pkgController "orgmaster/pkg/controller"
	"testing"
)

func validateSimilarity(name string, i, j error, t *testing.T) {
	if i.Error() != j.Error() {
		t.Errorf("expected %s to be consistent across pkg/controller and internal/controller", name)
	}
}

func TestControllerErrors(t *testing.T) {
	validateSimilarity("ErrorAuthRequired", pkgController.ErrorAuthRequired, intController.ErrorAuthRequired, t)
	validateSimilarity("ErrorMissingToken", pkgController.ErrorMissingToken, intController.ErrorMissingToken, t)
	validateSimilarity("ErrorForbidden", pkgController.ErrorForbidden, intController.ErrorForbidden, t)
	validateSimilarity("ErrorInvalidCredentials", pkgController.ErrorInvalidCredentials, intController.ErrorInvalidCredentials, t)
	validateSimilarity("ErrorInvalidInput", pkgController.ErrorInvalidInput, intController.ErrorInvalidInput, t)
	validateSimilarity("ErrorEmailExists", pkgController.ErrorEmailExists, intController.ErrorEmailExists, t)
	validateSimilarity("ErrorNotFound", pkgController.ErrorNotFound, intController.ErrorNotFound, t)
	validateSimilarity("ErrorDatabaseIssue", pkgController.ErrorDatabaseIssue, intController.ErrorDatabaseIssue, t)
	validateSimilarity("ErrorGeneric", pkgController.ErrorGeneric, intController.ErrorGeneric, t)
}

func TestAuthErrors(t *testing.T) {
	validateSimilarity("ErrorTokenExpired", pkgController.ErrorTokenExpired, intAuth.ErrorJwtTokenExpired, t)
	validateSimilarity("ErrorTokenSignature", pkgController.ErrorTokenSignature, intAuth.ErrorJwtTokenSignature, t)
	validateSimilarity("ErrorTokenMalformed", pkgController.ErrorTokenMalformed, intAuth.ErrorJwtTokenMalformed, t)
	validateSimilarity("ErrorClaimsInvalid", pkgController.ErrorClaimsInvalid, intAuth.ErrorJwtClaimsInvalid, t)
}

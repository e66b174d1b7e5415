package tests

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"orgmaster/internal/auth"
	"orgmaster/internal/common"
	intController "orgmaster/internal/controller"
	pkgController "orgmaster/pkg/controller"
	"testing"
)

func TestStaleSessionMapsToAuthRequired(t *testing.T) {
	// every 401 code the bearer middleware can reply with means the
	// stored session is no longer usable and a fresh login is needed
	errorCodes := []error{
		intController.ErrorMissingToken,
		auth.ErrorJwtTokenExpired,
		auth.ErrorJwtTokenSignature,
		auth.ErrorJwtTokenMalformed,
		auth.ErrorJwtClaimsInvalid,
	}
	for _, errorCode := range errorCodes {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to validate bearer token", errorCode)
		}))

		client, err := pkgController.NewClient(pkgController.NewClientOpts{
			ControllerUrl: server.URL,
			BearerAuth: &pkgController.NewClientBearerAuthOpts{
				Token: "stale-token",
			},
			Id: "tests",
		})
		if err != nil {
			server.Close()
			t.Fatalf("failed to create client: %s", err)
		}

		if _, err := client.UpdateOrgV1(pkgController.UpdateOrgV1Input{}); !errors.Is(err, pkgController.ErrorAuthRequired) {
			t.Errorf("expected UpdateOrgV1 with code[%s] to return ErrorAuthRequired, got: %s", errorCode, err)
		}
		if _, err := client.DeleteOrgV1(pkgController.DeleteOrgV1Input{}); !errors.Is(err, pkgController.ErrorAuthRequired) {
			t.Errorf("expected DeleteOrgV1 with code[%s] to return ErrorAuthRequired, got: %s", errorCode, err)
		}

		server.Close()
	}
}

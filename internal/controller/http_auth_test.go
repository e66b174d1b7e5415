package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"orgmaster/internal/auth"
	"orgmaster/internal/common"
	"testing"
	"time"
)

func startAuthedHandler(t *testing.T) (http.Handler, *bool) {
	t.Helper()
	serviceLogs := make(chan common.ServiceLog, 16)
	go func() {
		for range serviceLogs {
		}
	}()
	wasNextInvoked := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wasNextInvoked = true
		session, ok := r.Context().Value(userAuthRequestContext).(identity)
		if !ok {
			t.Errorf("expected an identity in the request context")
		}
		if session.AdminEmail == "" || session.OrgId == "" {
			t.Errorf("expected the identity to be populated, got %+v", session)
		}
		w.WriteHeader(http.StatusOK)
	})
	return getRouteAuther(serviceLogs)(next), &wasNextInvoked
}

func getResponseErrorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body common.HttpResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response body: %s", err)
	}
	errorCode, _ := body.Data.(string)
	return errorCode
}

func TestRouteAutherWithoutAuthorizationHeader(t *testing.T) {
	jwtSigningSecret = "test-secret"
	handler, wasNextInvoked := startAuthedHandler(t)

	request := httptest.NewRequest(http.MethodPut, "/org/update", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected status %v, got %v", http.StatusUnauthorized, recorder.Code)
	}
	if errorCode := getResponseErrorCode(t, recorder); errorCode != ErrorMissingToken.Error() {
		t.Errorf("expected error code[%s], got [%s]", ErrorMissingToken, errorCode)
	}
	if *wasNextInvoked {
		t.Errorf("expected the wrapped handler to not be invoked")
	}
}

func TestRouteAutherWithoutBearerPrefix(t *testing.T) {
	jwtSigningSecret = "test-secret"
	handler, wasNextInvoked := startAuthedHandler(t)

	request := httptest.NewRequest(http.MethodPut, "/org/update", nil)
	request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected status %v, got %v", http.StatusUnauthorized, recorder.Code)
	}
	if errorCode := getResponseErrorCode(t, recorder); errorCode != auth.ErrorJwtTokenMalformed.Error() {
		t.Errorf("expected error code[%s], got [%s]", auth.ErrorJwtTokenMalformed, errorCode)
	}
	if *wasNextInvoked {
		t.Errorf("expected the wrapped handler to not be invoked")
	}
}

func TestRouteAutherWithGarbageToken(t *testing.T) {
	jwtSigningSecret = "test-secret"
	handler, wasNextInvoked := startAuthedHandler(t)

	request := httptest.NewRequest(http.MethodPut, "/org/update", nil)
	request.Header.Set("Authorization", "Bearer aaaa.bbbb.cccc")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected status %v, got %v", http.StatusUnauthorized, recorder.Code)
	}
	if *wasNextInvoked {
		t.Errorf("expected the wrapped handler to not be invoked")
	}
}

func TestRouteAutherWithExpiredToken(t *testing.T) {
	jwtSigningSecret = "test-secret"
	handler, wasNextInvoked := startAuthedHandler(t)

	expiredToken, err := auth.GenerateJwt(auth.GenerateJwtOpts{
		Audience: jwtAudience,
		Id:       "test-token",
		Issuer:   jwtIssuer,
		OrgId:    "some-org-id",
		Secret:   jwtSigningSecret,
		Subject:  "admin@example.com",
		Ttl:      0,
	})
	if err != nil {
		t.Fatalf("failed to generate token: %s", err)
	}

	request := httptest.NewRequest(http.MethodPut, "/org/update", nil)
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", expiredToken))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected status %v, got %v", http.StatusUnauthorized, recorder.Code)
	}
	if errorCode := getResponseErrorCode(t, recorder); errorCode != auth.ErrorJwtTokenExpired.Error() {
		t.Errorf("expected error code[%s], got [%s]", auth.ErrorJwtTokenExpired, errorCode)
	}
	if *wasNextInvoked {
		t.Errorf("expected the wrapped handler to not be invoked")
	}
}

func TestRouteAutherWithWrongSignature(t *testing.T) {
	jwtSigningSecret = "test-secret"
	handler, wasNextInvoked := startAuthedHandler(t)

	forgedToken, err := auth.GenerateJwt(auth.GenerateJwtOpts{
		Audience: jwtAudience,
		Id:       "test-token",
		Issuer:   jwtIssuer,
		OrgId:    "some-org-id",
		Secret:   "a-different-secret",
		Subject:  "admin@example.com",
		Ttl:      time.Hour,
	})
	if err != nil {
		t.Fatalf("failed to generate token: %s", err)
	}

	request := httptest.NewRequest(http.MethodPut, "/org/update", nil)
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", forgedToken))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected status %v, got %v", http.StatusUnauthorized, recorder.Code)
	}
	if errorCode := getResponseErrorCode(t, recorder); errorCode != auth.ErrorJwtTokenSignature.Error() {
		t.Errorf("expected error code[%s], got [%s]", auth.ErrorJwtTokenSignature, errorCode)
	}
	if *wasNextInvoked {
		t.Errorf("expected the wrapped handler to not be invoked")
	}
}

func TestRouteAutherWithValidToken(t *testing.T) {
	jwtSigningSecret = "test-secret"
	handler, wasNextInvoked := startAuthedHandler(t)

	validToken, err := auth.GenerateJwt(auth.GenerateJwtOpts{
		Audience: jwtAudience,
		Id:       "test-token",
		Issuer:   jwtIssuer,
		OrgId:    "some-org-id",
		Secret:   jwtSigningSecret,
		Subject:  "admin@example.com",
		Ttl:      time.Hour,
	})
	if err != nil {
		t.Fatalf("failed to generate token: %s", err)
	}

	request := httptest.NewRequest(http.MethodPut, "/org/update", nil)
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", validToken))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected status %v, got %v", http.StatusOK, recorder.Code)
	}
	if !*wasNextInvoked {
		t.Errorf("expected the wrapped handler to be invoked")
	}
}

package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"orgmaster/internal/auth"
	"orgmaster/internal/common"
	"strings"
)

const userAuthRequestContext common.HttpContextKey = "controller-auth"

type identity struct {
	// AdminEmail is the email of the admin the token was issued for
	AdminEmail string `json:"adminEmail"`

	// OrgId is the identifier of the admin's organization
	OrgId string `json:"orgId"`

	// SourceIp is the IP address that the request came from
	SourceIp string `json:"sourceIp"`

	// UserAgent is the user agent of the request
	UserAgent string `json:"userAgent"`
}

// getRouteAuther returns a middleware that resolves the bearer token
// into an identity before any database access happens; requests without
// a verifiable token never reach the wrapped handler.
func getRouteAuther(serviceLogs chan<- common.ServiceLog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			serviceLogs <- common.ServiceLogf(common.LogLevelTrace, "auth middleware is executing")
			authorizationHeader := r.Header.Get("Authorization")
			if authorizationHeader == "" {
				common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to receive an authorization header", ErrorMissingToken)
				return
			}
			if !strings.HasPrefix(authorizationHeader, "Bearer ") {
				common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to receive a bearer authorization header", auth.ErrorJwtTokenMalformed)
				return
			}
			authorizationToken := strings.TrimPrefix(authorizationHeader, "Bearer ")
			claims, err := auth.ValidateJwt(jwtSigningSecret, authorizationToken)
			if err != nil {
				errorCode := auth.ErrorJwtTokenMalformed
				switch {
				case errors.Is(err, auth.ErrorJwtTokenExpired):
					errorCode = auth.ErrorJwtTokenExpired
				case errors.Is(err, auth.ErrorJwtTokenSignature):
					errorCode = auth.ErrorJwtTokenSignature
				case errors.Is(err, auth.ErrorJwtClaimsInvalid):
					errorCode = auth.ErrorJwtClaimsInvalid
				}
				common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to validate bearer token", errorCode)
				return
			}
			if log, ok := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger); ok {
				log(common.LogLevelInfo, fmt.Sprintf("processing request from admin[%s] of org[%s]", claims.Subject, claims.OrgId))
			}
			identityInstance := identity{
				AdminEmail: claims.Subject,
				OrgId:      claims.OrgId,
				SourceIp:   r.RemoteAddr,
				UserAgent:  r.UserAgent(),
			}
			authContext := context.WithValue(r.Context(), userAuthRequestContext, identityInstance)
			next.ServeHTTP(w, r.WithContext(authContext))
		})
	}
}

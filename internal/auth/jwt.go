package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the structure of the JWT payload. The registered
// subject claim carries the admin's email address.
type Claims struct {
	OrgId string `json:"orgId"`
	jwt.RegisteredClaims
}

type GenerateJwtOpts struct {
	Audience string
	Id       string
	Issuer   string
	OrgId    string
	Secret   string
	Subject  string
	Ttl      time.Duration
}

// GenerateJwt creates a signed JWT for an org admin.
func GenerateJwt(opts GenerateJwtOpts) (string, error) {
	if opts.Secret == "" {
		return "", ErrorJwtSecretMissing
	}
	now := time.Now()
	claims := Claims{
		OrgId: opts.OrgId,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{opts.Audience},
			ID:        opts.Id,
			Issuer:    opts.Issuer,
			Subject:   opts.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(opts.Ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(opts.Secret))
}

// ValidateJwt verifies the token's signature and expiry. Expiry is
// checked against the verifier's own clock with zero leeway. Returns
// the Claims if valid, otherwise one of the ErrorJwt* values.
func ValidateJwt(jwtSecret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("failed to validate token signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %s", ErrorJwtTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, fmt.Errorf("%w: %s", ErrorJwtTokenSignature, err)
		default:
			return nil, fmt.Errorf("%w: %s", ErrorJwtTokenMalformed, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrorJwtClaimsInvalid
	}
	if claims.Subject == "" || claims.OrgId == "" {
		return nil, ErrorJwtClaimsInvalid
	}

	if claims.ExpiresAt == nil || !time.Now().Before(claims.ExpiresAt.Time) {
		return nil, ErrorJwtTokenExpired
	}

	return claims, nil
}

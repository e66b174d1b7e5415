package auth

import (
	"errors"
	"testing"
	"time"
)

const testJwtSecret = "test-signing-secret"

func TestGenerateJwtRoundTrip(t *testing.T) {
	token, err := GenerateJwt(GenerateJwtOpts{
		Audience: "orgmaster/test",
		Issuer:   "orgmaster/controller",
		OrgId:    "org-00000000",
		Secret:   testJwtSecret,
		Subject:  "admin@acme-corp.com",
		Ttl:      time.Hour,
	})
	if err != nil {
		t.Fatalf("failed to generate jwt: %s", err)
	}

	claims, err := ValidateJwt(testJwtSecret, token)
	if err != nil {
		t.Fatalf("failed to validate jwt: %s", err)
	}
	if claims.Subject != "admin@acme-corp.com" {
		t.Errorf("expected subject[admin@acme-corp.com], got subject[%s]", claims.Subject)
	}
	if claims.OrgId != "org-00000000" {
		t.Errorf("expected orgId[org-00000000], got orgId[%s]", claims.OrgId)
	}
}

func TestGenerateJwtWithoutSecret(t *testing.T) {
	if _, err := GenerateJwt(GenerateJwtOpts{
		OrgId:   "org-00000000",
		Subject: "admin@acme-corp.com",
		Ttl:     time.Hour,
	}); !errors.Is(err, ErrorJwtSecretMissing) {
		t.Errorf("expected ErrorJwtSecretMissing, got %s", err)
	}
}

func TestValidateJwtZeroTtl(t *testing.T) {
	token, err := GenerateJwt(GenerateJwtOpts{
		OrgId:   "org-00000000",
		Secret:  testJwtSecret,
		Subject: "admin@acme-corp.com",
		Ttl:     0,
	})
	if err != nil {
		t.Fatalf("failed to generate jwt: %s", err)
	}
	if _, err := ValidateJwt(testJwtSecret, token); !errors.Is(err, ErrorJwtTokenExpired) {
		t.Errorf("expected ErrorJwtTokenExpired, got %s", err)
	}
}

func TestValidateJwtWrongSecret(t *testing.T) {
	token, err := GenerateJwt(GenerateJwtOpts{
		OrgId:   "org-00000000",
		Secret:  testJwtSecret,
		Subject: "admin@acme-corp.com",
		Ttl:     time.Hour,
	})
	if err != nil {
		t.Fatalf("failed to generate jwt: %s", err)
	}
	if _, err := ValidateJwt("a-different-secret", token); !errors.Is(err, ErrorJwtTokenSignature) {
		t.Errorf("expected ErrorJwtTokenSignature, got %s", err)
	}
}

func TestValidateJwtGarbage(t *testing.T) {
	for _, tokenStr := range []string{"", "not-a-token", "aaaa.bbbb.cccc"} {
		if _, err := ValidateJwt(testJwtSecret, tokenStr); !errors.Is(err, ErrorJwtTokenMalformed) {
			t.Errorf("expected ErrorJwtTokenMalformed for token[%s], got %s", tokenStr, err)
		}
	}
}

func TestValidateJwtMissingOrgClaim(t *testing.T) {
	token, err := GenerateJwt(GenerateJwtOpts{
		Secret:  testJwtSecret,
		Subject: "admin@acme-corp.com",
		Ttl:     time.Hour,
	})
	if err != nil {
		t.Fatalf("failed to generate jwt: %s", err)
	}
	if _, err := ValidateJwt(testJwtSecret, token); !errors.Is(err, ErrorJwtClaimsInvalid) {
		t.Errorf("expected ErrorJwtClaimsInvalid, got %s", err)
	}
}

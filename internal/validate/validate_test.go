package validate

import (
	"errors"
	"testing"
)

func TestOrgName(t *testing.T) {
	valid := []string{
		"Acme",
		"Acme, Inc.",
		"O'Brien & Sons (Holdings)",
		"a",
	}
	for _, orgName := range valid {
		if err := OrgName(orgName); err != nil {
			t.Errorf("expected orgName[%s] to be valid, got %s", orgName, err)
		}
	}

	if err := OrgName(""); !errors.Is(err, ErrorStringTooShort) {
		t.Errorf("expected an empty name to fail with ErrorStringTooShort, got %s", err)
	}
	if err := OrgName("acme\x00corp"); !errors.Is(err, ErrorNotUnicodeAlnum) {
		t.Errorf("expected a control character to be rejected, got %s", err)
	}
}

func TestEmail(t *testing.T) {
	valid := []string{
		"admin@acme-corp.com",
		"a.b-c_d@sub.example.io",
	}
	for _, email := range valid {
		if err := Email(email); err != nil {
			t.Errorf("expected email[%s] to be valid, got %s", email, err)
		}
	}

	if err := Email(""); !errors.Is(err, ErrorEmailMissing) {
		t.Errorf("expected an empty email to fail with ErrorEmailMissing, got %s", err)
	}
	if err := Email("not-an-email"); !errors.Is(err, ErrorEmailInvalidAt) {
		t.Errorf("expected a missing @ to fail with ErrorEmailInvalidAt, got %s", err)
	}
	if err := Email("a@b@c.com"); !errors.Is(err, ErrorEmailInvalidAt) {
		t.Errorf("expected a double @ to fail with ErrorEmailInvalidAt, got %s", err)
	}
	if err := Email("admin@"); !errors.Is(err, ErrorEmailEmptyDomain) {
		t.Errorf("expected an empty domain to fail with ErrorEmailEmptyDomain, got %s", err)
	}
	if err := Email("admin@-bad-.com"); !errors.Is(err, ErrorEmailDomainInvalid) {
		t.Errorf("expected a malformed domain to fail with ErrorEmailDomainInvalid, got %s", err)
	}
}

func TestPassword(t *testing.T) {
	if err := Password("p"); err != nil {
		t.Errorf("expected any non-empty password to be valid, got %s", err)
	}
	if err := Password(""); !errors.Is(err, ErrorStringTooShort) {
		t.Errorf("expected an empty password to fail with ErrorStringTooShort, got %s", err)
	}
}

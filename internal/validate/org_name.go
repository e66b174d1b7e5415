package validate

var (
	allowedSymbolsInOrgName = []rune{'.', ',', '-', ' ', '&', '!', '(', ')', ':', '\''}
)

const (
	// the source system accepts any non-empty name
	OrgNameMinLength = 1
	OrgNameMaxLength = 255
)

func OrgName(orgName string) error {
	return do(
		orgName,
		andS(
			hasMinLength(OrgNameMinLength),
			hasMaxLength(OrgNameMaxLength),
		),
		orR(
			isUnicodeAlnum(),
			isCharacterInAllowlist(allowedSymbolsInOrgName),
		),
	)
}

package validate

const (
	// the source system imposes no password policy beyond non-emptiness
	minimumPasswordLength = 1
	maximumPasswordLength = 512
)

func Password(password string) error {
	return do(
		password,
		andS(
			hasMinLength(minimumPasswordLength),
			hasMaxLength(maximumPasswordLength),
		),
	)
}

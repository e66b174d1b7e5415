package validate

import (
	"errors"
	"unicode"
)

var (
	ErrorNotInAllowlistedCharacters = errors.New("not_in_allowlisted_characters")
	ErrorNotUnicodeAlnum            = errors.New("not_unicode_alphanumeric")
	ErrorStringTooShort             = errors.New("string_too_short")
	ErrorStringTooLong              = errors.New("string_too_long")
)

func hasMaxLength(l int) StringRule {
	return func(s string) error {
		if len(s) > l {
			return ErrorStringTooLong
		}
		return nil
	}
}

func hasMinLength(l int) StringRule {
	return func(s string) error {
		if len(s) < l {
			return ErrorStringTooShort
		}
		return nil
	}
}

func isCharacterInAllowlist(runes []rune) RuneRule {
	runeMap := map[rune]struct{}{}
	for _, runeInstance := range runes {
		runeMap[runeInstance] = struct{}{}
	}
	return func(curr rune, prev rune) error {
		if _, ok := runeMap[curr]; ok {
			return nil
		}
		return ErrorNotInAllowlistedCharacters
	}
}

func isUnicodeAlnum() RuneRule {
	return func(curr rune, prev rune) error {
		if unicode.IsLetter(curr) || unicode.IsDigit(curr) {
			return nil
		}
		return ErrorNotUnicodeAlnum
	}
}

package usecase

import (
	"fmt"
	"regexp"
)

var (
	// Optional leading minus, digits, optional fractional part. Full match.
	numberPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

	// Digits, arithmetic operators, the variable letters x/y/z in either
	// case, whitespace and '='. Nothing else reaches the upstream service.
	equationPattern = regexp.MustCompile(`^[0-9+\-*/xXyYzZ=\s]+$`)
)

// ValidateNumber reports whether v looks like a signed integer or decimal.
// It is purely lexical; "0" is as valid a leading coefficient as any other.
func ValidateNumber(v string) error {
	if !numberPattern.MatchString(v) {
		return newError(ErrorInvalidInput, fmt.Sprintf("%q is not a valid number", v), nil)
	}
	return nil
}

// ValidateEquation restricts eq to the allowed character set. It does not
// check structure; an equation without '=' passes and is left to the
// upstream service to reject.
func ValidateEquation(eq string) error {
	if !equationPattern.MatchString(eq) {
		return newError(ErrorInvalidInput, fmt.Sprintf("%q contains characters outside the allowed equation set", eq), nil)
	}
	return nil
}

func validateNumbers(vals ...string) error {
	for _, v := range vals {
		if err := ValidateNumber(v); err != nil {
			return err
		}
	}
	return nil
}

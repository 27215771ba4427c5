package usecase

import (
	"fmt"
	"strings"
)

// BuildQuadraticQuery renders the fixed template "solve ax^2 + bx + c = 0".
// Coefficients are substituted verbatim, sign included, so a=1, b=-2, c=3
// yields "solve 1x^2 + -2x + 3 = 0".
func BuildQuadraticQuery(a, b, c string) string {
	return fmt.Sprintf("solve %sx^2 + %sx + %s = 0", a, b, c)
}

// BuildTwoUnknownEquation renders "ax + by = c".
func BuildTwoUnknownEquation(a, b, c string) string {
	return fmt.Sprintf("%sx + %sy = %s", a, b, c)
}

// BuildThreeUnknownEquation renders "ax + by + cz = d".
func BuildThreeUnknownEquation(a, b, c, d string) string {
	return fmt.Sprintf("%sx + %sy + %sz = %s", a, b, c, d)
}

// BuildSystemQuery joins equations into "solve EQ1, EQ2[, EQ3]".
func BuildSystemQuery(equations []string) string {
	return "solve " + strings.Join(equations, ", ")
}

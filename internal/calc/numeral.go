package calc

import (
	"strconv"
	"strings"
)

// ErrDivideByZeroText replaces the result on the display when the divisor is zero.
const ErrDivideByZeroText = "Error: division by zero"

const (
	zero           = "0"
	resultDecimals = 10
)

// parseOr reads a numeral buffer. Anything that is not a complete decimal numeral
// (empty buffer, a lone sign, the division error text) reads as fallback.
func parseOr(text string, fallback float64) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fallback
	}
	return v
}

// canonicalize renders an evaluation result: fixed ten decimals, then trailing
// zeros and a dangling point removed.
func canonicalize(v float64) string {
	s := strconv.FormatFloat(v, 'f', resultDecimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return zero
	}
	return s
}

// formatShort renders the shortest text that reads back as v. Memory recall and
// the special functions use it instead of canonicalize.
func formatShort(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func toggleSign(s string) string {
	if strings.HasPrefix(s, "-") {
		return s[1:]
	}
	return "-" + s
}

// appendDigit appends d, replacing a lone "0" instead of prefixing it.
func appendDigit(buf string, d rune) string {
	if buf == zero {
		return string(d)
	}
	return buf + string(d)
}

func dropLast(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(r[:len(r)-1])
}

package utils

import (
	"strconv"
	"strings"
)

// Digits strips everything but 0-9 from s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCEP formats a postal code progressively as NNNNN-NNN. The hyphen
// only appears once more than 5 digits are present. Input beyond 8 digits
// is dropped.
func FormatCEP(value string) string {
	digits := Digits(value)
	if len(digits) > 8 {
		digits = digits[:8]
	}
	if len(digits) <= 5 {
		return digits
	}
	return digits[:5] + "-" + digits[5:]
}

// FormatCPF formats an 11-digit CPF progressively as NNN.NNN.NNN-NN,
// adding each separator only once the group before it is complete.
func FormatCPF(value string) string {
	digits := Digits(value)
	if len(digits) > 11 {
		digits = digits[:11]
	}
	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return digits[:3] + "." + digits[3:]
	case len(digits) <= 9:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:]
	default:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
	}
}

// FormatPhone formats a Brazilian phone number, isolating the area code
// once 2+ digits are entered and hyphenating 11-digit numbers as
// (NN) NNNNN-NNNN.
func FormatPhone(value string) string {
	digits := Digits(value)
	if len(digits) > 11 {
		digits = digits[:11]
	}
	if len(digits) <= 10 {
		if len(digits) <= 2 {
			return digits
		}
		return "(" + digits[:2] + ") " + digits[2:]
	}
	return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
}

// FormatBRL renders a price as Brazilian currency, e.g. "R$ 1.234,56".
func FormatBRL(value float64) string {
	s := strconv.FormatFloat(value, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	assert.Equal(t, "01310100", Digits("01310-100"))
	assert.Equal(t, "11987654321", Digits("(11) 98765-4321"))
	assert.Equal(t, "", Digits("abc"))
	assert.Equal(t, "", Digits(""))
}

func TestFormatCEP(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"0", "0"},
		{"01310", "01310"},
		{"013101", "01310-1"},
		{"01310100", "01310-100"},
		{"01310-100", "01310-100"},
		{"013101009999", "01310-100"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCEP(tt.in), "input %q", tt.in)
	}
}

func TestFormatCPFProgressive(t *testing.T) {
	input := "12345678901"
	want := []string{
		"1",
		"12",
		"123",
		"123.4",
		"123.45",
		"123.456",
		"123.456.7",
		"123.456.78",
		"123.456.789",
		"123.456.789-0",
		"123.456.789-01",
	}
	for i := 1; i <= len(input); i++ {
		assert.Equal(t, want[i-1], FormatCPF(input[:i]))
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"1", "1"},
		{"11", "11"},
		{"119", "(11) 9"},
		{"1134567890", "(11) 34567890"},
		{"11987654321", "(11) 98765-4321"},
		{"(11) 98765-4321", "(11) 98765-4321"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPhone(tt.in), "input %q", tt.in)
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{9.9, "R$ 9,90"},
		{149.9, "R$ 149,90"},
		{1234.56, "R$ 1.234,56"},
		{1234567.89, "R$ 1.234.567,89"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBRL(tt.in))
	}
}

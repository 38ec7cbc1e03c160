package yanumparse_test

import (
	"testing"

	"github.com/YaCodeDev/GoYaNumParse/yanumparse"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()

	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestTryParseDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"123.45", "123.45", true},
		{" -0.5 ", "-0.5", true},
		{"+.25", "0.25", true},
		{"5.", "5", true},
		{"79228162514264337593543950335", "79228162514264337593543950335", true},
		{"79228162514264337593543950336", "0", false},
		{"12345678901234567890.123456789012345678", "12345678901234567890.123456789", true},
		{"-1.23456789012345678901234567895", "-1.2345678901234567890123456790", true},
		{"79228162514264337593543950334.9", "79228162514264337593543950335", true},
		{"79228162514264337593543950335.5", "0", false},
		{"1e5", "0", false},
		{"1,000", "0", false},
		{"NaN", "0", false},
		{"", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := yanumparse.TryParseDecimal(yanumparse.Text(tt.input))

			assert.Equal(t, tt.ok, ok)
			assertDecimal(t, tt.want, got)
		})
	}
}

func TestParseDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Valid", "42.0001", "42.0001"},
		{"Empty", "", "0"},
		{"Whitespace", "\t ", "0"},
		{"Malformed", "abc", "0"},
		{"Exponent Is Malformed", "1e3", "0"},
		{"Too Large", "79228162514264337593543950336", "79228162514264337593543950335"},
		{"Too Negative", "-79228162514264337593543950336", "-79228162514264337593543950335"},
		{"Rounded Scale", "0.00000000000000000000000000005", "0.0000000000000000000000000001"},
		{"Rounded Precision", "98765432109876543210.98765432198765", "98765432109876543210.98765432"},
		{"Rounded Into Overflow", "79228162514264337593543950335.5", "79228162514264337593543950335"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := yanumparse.ParseDecimal(yanumparse.Text(tt.input))
			require.Nil(t, err)

			assertDecimal(t, tt.want, got)
		})
	}

	t.Run("Bounds", func(t *testing.T) {
		assert.True(t, yanumparse.DecimalMin.Equal(yanumparse.DecimalMax.Neg()))
	})
}

func TestParseDecimal_Idempotent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"0", "-1.5", "3.14159", "79228162514264337593543950335", " 12.000 "} {
		first, err := yanumparse.ParseDecimal(yanumparse.Text(input))
		require.Nil(t, err)

		second, err := yanumparse.ParseDecimal(yanumparse.Text(first.String()))
		require.Nil(t, err)

		assert.True(t, first.Equal(second), "input %q: %s != %s", input, first, second)
	}
}

package yanumparse_test

import (
	"math"
	"testing"

	"github.com/YaCodeDev/GoYaNumParse/yanumparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryParseFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  float32
		ok    bool
	}{
		{"3.5", 3.5, true},
		{" 2.5e3 ", 2500, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"-0.25", -0.25, true},
		{"1e39", 0, false},
		{"0x1p3", 0, false},
		{"inf", 0, false},
		{"1,5", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := yanumparse.TryParseFloat(yanumparse.Text(tt.input))

			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestParseFloat(t *testing.T) {
	t.Parallel()

	t.Run("NaN Sentinel", func(t *testing.T) {
		for _, input := range []string{"", "  ", "abc", "0x1p3", "1_000", "1,5"} {
			got, err := yanumparse.ParseFloat(yanumparse.Text(input))
			require.Nil(t, err)

			assert.True(t, math.IsNaN(float64(got)), "input %q gave %v", input, got)
		}
	})

	t.Run("Saturates", func(t *testing.T) {
		got, err := yanumparse.ParseFloat(yanumparse.Text("1e39"))
		require.Nil(t, err)
		assert.True(t, math.IsInf(float64(got), 1))

		got, err = yanumparse.ParseFloat(yanumparse.Text("-1e39"))
		require.Nil(t, err)
		assert.True(t, math.IsInf(float64(got), -1))
	})

	t.Run("Symbols", func(t *testing.T) {
		got, err := yanumparse.ParseFloat(yanumparse.Text("Infinity"))
		require.Nil(t, err)
		assert.True(t, math.IsInf(float64(got), 1))

		got, err = yanumparse.ParseFloat(yanumparse.Text("-infinity"))
		require.Nil(t, err)
		assert.True(t, math.IsInf(float64(got), -1))

		got, err = yanumparse.ParseFloat(yanumparse.Text("-∞"))
		require.Nil(t, err)
		assert.True(t, math.IsInf(float64(got), -1))

		checked, ok := yanumparse.TryParseFloat(yanumparse.Text("NaN"))
		assert.True(t, ok)
		assert.True(t, math.IsNaN(float64(checked)))
	})

	t.Run("Valid", func(t *testing.T) {
		got, err := yanumparse.ParseFloat(yanumparse.Text("1.25"))
		require.Nil(t, err)

		assert.Equal(t, float32(1.25), got)
	})
}

func TestParseDouble(t *testing.T) {
	t.Parallel()

	t.Run("Epsilon Sentinel", func(t *testing.T) {
		for _, input := range []string{"not a number", "", " ", "1e400", "-1e400", "0x10"} {
			got, err := yanumparse.ParseDouble(yanumparse.Text(input))
			require.Nil(t, err)

			assert.Equal(t, math.SmallestNonzeroFloat64, got, "input %q", input)
		}
	})

	t.Run("Underflow Is Zero", func(t *testing.T) {
		got, err := yanumparse.ParseDouble(yanumparse.Text("1e-400"))
		require.Nil(t, err)

		assert.Zero(t, got)
	})

	t.Run("Valid", func(t *testing.T) {
		got, err := yanumparse.ParseDouble(yanumparse.Text(" 1.7976931348623157e308 "))
		require.Nil(t, err)
		assert.Equal(t, math.MaxFloat64, got)

		checked, ok := yanumparse.TryParseDouble(yanumparse.Text("-2.5E-3"))
		assert.True(t, ok)
		assert.Equal(t, -0.0025, checked)
	})

	t.Run("Checked Overflow Fails", func(t *testing.T) {
		got, ok := yanumparse.TryParseDouble(yanumparse.Text("1e400"))

		assert.False(t, ok)
		assert.Zero(t, got)
	})
}

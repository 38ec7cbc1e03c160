package yanumparse_test

import (
	"net/http"
	"strconv"
	"sync"
	"testing"

	"github.com/YaCodeDev/GoYaNumParse/yaerrors"
	"github.com/YaCodeDev/GoYaNumParse/yanumparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelParsers_NilInputRaises(t *testing.T) {
	t.Parallel()

	parsers := map[string]func() yaerrors.Error{
		"ParseInteger":         func() yaerrors.Error { _, err := yanumparse.ParseInteger(nil); return err },
		"ParseUnsignedInteger": func() yaerrors.Error { _, err := yanumparse.ParseUnsignedInteger(nil); return err },
		"ParseByte":            func() yaerrors.Error { _, err := yanumparse.ParseByte(nil); return err },
		"ParseSignedByte":      func() yaerrors.Error { _, err := yanumparse.ParseSignedByte(nil); return err },
		"ParseShort":           func() yaerrors.Error { _, err := yanumparse.ParseShort(nil); return err },
		"ParseUnsignedShort":   func() yaerrors.Error { _, err := yanumparse.ParseUnsignedShort(nil); return err },
		"ParseLong":            func() yaerrors.Error { _, err := yanumparse.ParseLong(nil); return err },
		"ParseUnsignedLong":    func() yaerrors.Error { _, err := yanumparse.ParseUnsignedLong(nil); return err },
		"ParseFloat":           func() yaerrors.Error { _, err := yanumparse.ParseFloat(nil); return err },
		"ParseDouble":          func() yaerrors.Error { _, err := yanumparse.ParseDouble(nil); return err },
		"ParseDecimal":         func() yaerrors.Error { _, err := yanumparse.ParseDecimal(nil); return err },
	}

	for name, parse := range parsers {
		t.Run(name, func(t *testing.T) {
			err := parse()
			require.NotNil(t, err)

			assert.ErrorIs(t, err, yanumparse.ErrNilInput)
			assert.Equal(t, http.StatusBadRequest, err.Code())
		})
	}
}

func TestCheckedParsers_NilInputFails(t *testing.T) {
	t.Parallel()

	parsers := map[string]func() bool{
		"TryParseInteger":         func() bool { _, ok := yanumparse.TryParseInteger(nil); return ok },
		"TryParseUnsignedInteger": func() bool { _, ok := yanumparse.TryParseUnsignedInteger(nil); return ok },
		"TryParseByte":            func() bool { _, ok := yanumparse.TryParseByte(nil); return ok },
		"TryParseSignedByte":      func() bool { _, ok := yanumparse.TryParseSignedByte(nil); return ok },
		"TryParseShort":           func() bool { _, ok := yanumparse.TryParseShort(nil); return ok },
		"TryParseUnsignedShort":   func() bool { _, ok := yanumparse.TryParseUnsignedShort(nil); return ok },
		"TryParseLong":            func() bool { _, ok := yanumparse.TryParseLong(nil); return ok },
		"TryParseUnsignedLong":    func() bool { _, ok := yanumparse.TryParseUnsignedLong(nil); return ok },
		"TryParseFloat":           func() bool { _, ok := yanumparse.TryParseFloat(nil); return ok },
		"TryParseDouble":          func() bool { _, ok := yanumparse.TryParseDouble(nil); return ok },
		"TryParseDecimal":         func() bool { _, ok := yanumparse.TryParseDecimal(nil); return ok },
	}

	for name, parse := range parsers {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, parse())
			})
		})
	}
}

func TestCheckedAndSentinelAgree(t *testing.T) {
	t.Parallel()

	literals := []string{"0", "1", "7", "100", "127", "255", " 42 ", "32767", "65535"}

	for _, literal := range literals {
		t.Run(literal, func(t *testing.T) {
			input := yanumparse.Text(literal)

			if want, ok := yanumparse.TryParseInteger(input); ok {
				got, err := yanumparse.ParseInteger(input)
				require.Nil(t, err)
				assert.Equal(t, want, got)
			}

			if want, ok := yanumparse.TryParseUnsignedInteger(input); ok {
				got, err := yanumparse.ParseUnsignedInteger(input)
				require.Nil(t, err)
				assert.Equal(t, want, got)
			}

			if want, ok := yanumparse.TryParseByte(input); ok {
				got, err := yanumparse.ParseByte(input)
				require.Nil(t, err)
				assert.Equal(t, want, got)
			}

			if want, ok := yanumparse.TryParseSignedByte(input); ok {
				got, err := yanumparse.ParseSignedByte(input)
				require.Nil(t, err)
				assert.Equal(t, want, got)
			}

			if want, ok := yanumparse.TryParseShort(input); ok {
				got, err := yanumparse.ParseShort(input)
				require.Nil(t, err)
				assert.Equal(t, want, got)
			}

			if want, ok := yanumparse.TryParseUnsignedShort(input); ok {
				got, err := yanumparse.ParseUnsignedShort(input)
				require.Nil(t, err)
				assert.Equal(t, want, got)
			}

			if want, ok := yanumparse.TryParseLong(input); ok {
				got, err := yanumparse.ParseLong(input)
				require.Nil(t, err)
				assert.Equal(t, want, got)
			}

			if want, ok := yanumparse.TryParseUnsignedLong(input); ok {
				got, err := yanumparse.ParseUnsignedLong(input)
				require.Nil(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	t.Parallel()

	for _, value := range []int64{0, 1, -1, 1 << 40, -(1 << 62)} {
		first, err := yanumparse.ParseLong(yanumparse.Text(strconv.FormatInt(value, 10)))
		require.Nil(t, err)

		second, err := yanumparse.ParseLong(yanumparse.Text(strconv.FormatInt(first, 10)))
		require.Nil(t, err)

		assert.Equal(t, value, second)
	}
}

func TestParsers_ConcurrentUse(t *testing.T) {
	t.Parallel()

	const workers = 16

	var wg sync.WaitGroup

	results := make([]int32, workers)

	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			value, _ := yanumparse.ParseInteger(yanumparse.Text(strconv.Itoa(i * 1000)))
			results[i] = value
		}()
	}

	wg.Wait()

	for i, value := range results {
		assert.Equal(t, int32(i*1000), value)
	}
}

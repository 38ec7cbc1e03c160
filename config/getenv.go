package config

import (
	"fmt"
	"net/http"
	"os"

	"github.com/YaCodeDev/GoYaNumParse/valueparser"
	"github.com/YaCodeDev/GoYaNumParse/yaerrors"
	"github.com/YaCodeDev/GoYaNumParse/yalogger"
)

// GetEnv retrieves the value of an environment variable, parses it to the specified type T,
// and returns it. If the variable is not set, it returns a fallback value.
// If the variable is required and not set, it logs an error and exits the program.
//
// Example usage:
//
//	myInt := GetEnv("MY_ENV_VAR", 42, true, log)
//
// EXITS if the environment variable is required and not set.
func GetEnv[T valueparser.ParsableType](
	key string,
	fallback T,
	required bool,
	log yalogger.Logger,
) T {
	safetyCheck(&log)

	value, err := GetEnvHandlingError(key, fallback, required, log)
	if err != nil {
		log.Fatalf("Environment variable %s is required: %v", key, err)
	}

	return value
}

// GetEnvHandlingError is GetEnv that reports a missing required variable as
// ErrValueIsRequired instead of terminating.
func GetEnvHandlingError[T valueparser.ParsableType](
	key string,
	fallback T,
	required bool,
	log yalogger.Logger,
) (T, yaerrors.Error) {
	safetyCheck(&log)

	if value, exists := os.LookupEnv(key); exists {
		parsed, err := valueparser.ParseValue[T](value)
		if err == nil {
			return parsed, nil
		}

		log.WithField(LogFieldKey, key).Errorf("Failed to parse environment variable %s: %v", key, err)
	}

	if required {
		return fallback, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrValueIsRequired,
			"get env: "+key,
		)
	}

	log.WithField(LogFieldKey, key).Warnf(
		"Environment variable %s is not set or failed to parse, using default value %v",
		key,
		fallback,
	)

	return fallback, nil
}

// GetEnvSentinel reads a numeric environment variable through the best-effort parser of
// T (see valueparser.ParseValueOrSentinel). A variable that is not set is absent input,
// so it surfaces as yanumparse.ErrNilInput. Whenever the text is not a valid literal and
// the returned value is a sentinel, a warning is logged.
//
// Example usage:
//
//	retries, err := GetEnvSentinel[int32]("MAX_RETRIES", log)
//	if err != nil {
//		// Handle error
//	}
func GetEnvSentinel[T valueparser.NumericType](key string, log yalogger.Logger) (T, yaerrors.Error) {
	safetyCheck(&log)

	var input *string

	if value, exists := os.LookupEnv(key); exists {
		input = &value
	}

	parsed, err := valueparser.ParseValueOrSentinel[T](input)
	if err != nil {
		return parsed, err.WrapWithLog(fmt.Sprintf("get env sentinel: %s", key), log)
	}

	if _, checkErr := valueparser.ParseValue[T](*input); checkErr != nil {
		log.WithField(LogFieldKey, key).Warnf(
			"Environment variable %s=%q is not a valid %T, using sentinel %v",
			key,
			*input,
			parsed,
			parsed,
		)
	}

	return parsed, nil
}

// GetEnvArray retrieves the value of an environment variable, splits it by a specified separator, (default is ","),
// parses each part into the specified type T, and returns a slice of T.
// If the variable is not set, it returns a fallback value.
// If the variable is required and not set, it logs an error and exits the program.
//
// Example usage:
//
//	myArray := GetEnvArray("MY_ENV_VAR", []int{1, 2, 3}, nil, true, log)
//
// EXITS if the environment variable is required and not set.
func GetEnvArray[T valueparser.ParsableType](
	key string,
	fallback []T,
	separator *string,
	required bool,
	log yalogger.Logger,
) []T {
	safetyCheck(&log)

	if value, exists := os.LookupEnv(key); exists {
		parsed, err := valueparser.ParseArray[T](value, separator)
		if err == nil {
			return parsed
		}

		log.Errorf("Failed to parse environment variable %s: %v", key, err)
	}

	if required {
		log.Fatalf("Environment variable %s is required", key)
	}

	log.Warnf("Environment variable %s is not set, using default value %v", key, fallback)

	return fallback
}

// GetEnvMap retrieves the value of an environment variable, splits it by a specified entry separator (default is ","),
// and each entry by a specified key-value separator (default is ":").
// It parses the key and value into the specified types K and V, and returns a map of K to V.
// If the variable is not set, it returns a fallback value.
// If the variable is required and not set, it logs an error and exits the program.
//
// Example usage:
//
//	myMap := GetEnvMap("MY_ENV_VAR", map[string]int{"key": 1}, true, nil, nil, log)
//
// EXITS if the environment variable is required and not set.
func GetEnvMap[K valueparser.ParsableComparableType, V valueparser.ParsableType](
	key string,
	fallback map[K]V,
	required bool,
	entrySeparator *string,
	kvSeparator *string,
	log yalogger.Logger,
) map[K]V {
	safetyCheck(&log)

	if value, exists := os.LookupEnv(key); exists {
		parsed, err := valueparser.ParseMap[K, V](value, entrySeparator, kvSeparator)
		if err == nil {
			return parsed
		}

		log.Errorf("Failed to parse environment variable %s: %v", key, err)
	}

	if required {
		log.Fatalf("Environment variable %s is required", key)
	}

	log.Warnf("Environment variable %s is not set, using default value %v", key, fallback)

	return fallback
}

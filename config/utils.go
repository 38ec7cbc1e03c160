package config

import (
	"strings"

	"github.com/YaCodeDev/GoYaNumParse/yalogger"
)

// safetyCheck ensures that the logger is not nil before performing any operations.
// If the logger is nil, it initializes a new logger and logs a warning message.
func safetyCheck(log *yalogger.Logger) {
	if log == nil {
		return
	}

	if *log == nil {
		*log = yalogger.NewBaseLogger(nil).NewLogger()

		(*log).Warn("Logger is nil, using default logger")
	}
}

// toScreamingSnakeCase converts a string to SCREAMING_SNAKE_CASE.
// For example, "HTTPResponse" becomes "HTTP_RESPONSE" and "maxRetries" becomes "MAX_RETRIES".
func toScreamingSnakeCase(s string) string {
	s = matchFirstCap.ReplaceAllString(s, "${1}_${2}")
	s = matchAllCap.ReplaceAllString(s, "${1}_${2}")

	return strings.ToUpper(s)
}

// EnvKey joins Go-style names into an environment variable key.
//
// Example usage:
//
//	EnvKey("Server", "MaxConns") // SERVER_MAX_CONNS
func EnvKey(names ...string) string {
	parts := make([]string, 0, len(names))

	for _, name := range names {
		if name == "" {
			continue
		}

		parts = append(parts, toScreamingSnakeCase(name))
	}

	return strings.Join(parts, KeySeparator)
}

package config

import (
	"fmt"
	"net/http"
	"os"

	"github.com/YaCodeDev/GoYaNumParse/yaerrors"
	"github.com/YaCodeDev/GoYaNumParse/yalogger"
	"github.com/joho/godotenv"
)

// LoadDotEnv reads the KEY=VALUE pairs of the .env file at path into the process environment.
// Variables that are already set win over the file.
//
// Example usage:
//
//	if err := LoadDotEnv(DotEnvFile, log); err != nil {
//		// Handle error
//	}
func LoadDotEnv(path string, log yalogger.Logger) yaerrors.Error {
	safetyCheck(&log)

	file, err := os.Open(path)
	if err != nil {
		return yaerrors.FromError(
			http.StatusNotFound,
			err,
			"load dotenv: open "+path,
		)
	}
	defer file.Close()

	values, err := godotenv.Parse(file)
	if err != nil {
		return yaerrors.FromErrorWithLog(
			http.StatusUnprocessableEntity,
			ErrInvalidDotEnvFileFormat,
			fmt.Sprintf("load dotenv: %s: %v", path, err),
			log,
		)
	}

	for key, value := range values {
		if _, exists := os.LookupEnv(key); exists {
			log.WithField(LogFieldKey, key).Debugf("Environment variable %s is already set, skipping %s", key, path)

			continue
		}

		if err := os.Setenv(key, value); err != nil {
			return yaerrors.FromError(
				http.StatusInternalServerError,
				err,
				"load dotenv: set "+key,
			)
		}
	}

	return nil
}

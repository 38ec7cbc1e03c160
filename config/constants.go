package config

import "regexp"

const (
	DotEnvFile   = ".env"
	KeySeparator = "_"
	LogFieldKey  = "env_key"
)

var (
	matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
	matchAllCap   = regexp.MustCompile("([a-z0-9])([A-Z])")
)

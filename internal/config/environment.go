package config

import (
	"strings"
)

// Environment is the deployment stage read from APP_ENV.
type Environment int32

const (
	EnvUndefined Environment = iota
	EnvLocal
	EnvDev
	EnvUAT
	EnvProd
)

var environmentNames = map[Environment]string{
	EnvLocal: "local",
	EnvDev:   "dev",
	EnvUAT:   "uat",
	EnvProd:  "prod",
}

// ParseEnvironment is case-insensitive; unknown names are EnvUndefined.
func ParseEnvironment(s string) Environment {
	s = strings.ToLower(strings.TrimSpace(s))
	for env, name := range environmentNames {
		if name == s {
			return env
		}
	}
	return EnvUndefined
}

func (e Environment) String() string {
	if name, ok := environmentNames[e]; ok {
		return name
	}
	return "undefined"
}

func (e Environment) IsProd() bool {
	return e == EnvProd
}

// VerboseLogging reports whether debug level logs are emitted.
// Only local and unnamed stages qualify.
func (e Environment) VerboseLogging() bool {
	return e == EnvLocal || e == EnvUndefined
}

// Environment parses the configured stage.
func (c Config) Environment() Environment {
	return ParseEnvironment(c.App.Env)
}

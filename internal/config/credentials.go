// Where: internal/config/credentials.go
// What: One-shot loading of Argo CD login credentials from env file and process env.
// Why: The state machine consumes a typed, fully-optional struct instead of
//      reading environment variables implicitly at login time.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names consumed at startup.
const (
	EnvHost     = "ARGO_HOST"
	EnvPort     = "ARGO_PORT"
	EnvUsername = "ARGO_USERNAME"
	EnvPassword = "ARGO_PASSWORD"
	EnvInsecure = "ARGO_INSECURE_SKIP_VERIFY"
)

// DefaultEnvFile is the key-value file loaded when --env-file is not given.
const DefaultEnvFile = ".env"

// Value is an optional string setting. Set distinguishes "absent" from
// "present but empty" so a missing credential is prompted for, never
// silently defaulted.
type Value struct {
	Raw string
	Set bool
}

// Flag is an optional boolean setting.
type Flag struct {
	On  bool
	Set bool
}

// Credentials holds the startup login configuration. Every field is
// optional; missing fields are filled interactively by the caller.
type Credentials struct {
	Host     Value
	Port     Value
	Username Value
	Password Value
	Insecure Flag
}

// Load reads the env file (if it exists) into the process environment and
// returns the credentials found there. It is called once at startup and the
// file is never re-read.
func Load(envFile string) Credentials {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if _, err := os.Stat(envFile); err == nil {
		// Existing process env wins over file values, same as godotenv's
		// default non-overload behavior.
		_ = godotenv.Load(envFile)
	}
	return FromEnv()
}

// FromEnv builds credentials from the current process environment only.
func FromEnv() Credentials {
	creds := Credentials{
		Host:     lookup(EnvHost),
		Port:     lookup(EnvPort),
		Username: lookup(EnvUsername),
		Password: lookup(EnvPassword),
	}
	if raw, ok := os.LookupEnv(EnvInsecure); ok && strings.TrimSpace(raw) != "" {
		creds.Insecure = Flag{On: ParseBool(raw), Set: true}
	}
	return creds
}

// ParseBool accepts true|1|yes (case-insensitive) as true.
func ParseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

func lookup(key string) Value {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return Value{}
	}
	return Value{Raw: raw, Set: true}
}

package config

import "fmt"

// ConfigError reports an environment value that could not be coerced to its
// declared field type. It is fatal at startup: the server must not begin
// accepting connections with an invalid configuration.
type ConfigError struct {
	Key   string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

package generator

import "errors"

var (
	// ErrEmptyCredential is returned when Configure receives a blank key.
	ErrEmptyCredential = errors.New("api key is empty")
	// ErrEmptyItem is returned when Generate receives a blank item name.
	ErrEmptyItem = errors.New("item name is empty")
	// ErrNotConfigured is returned by Generate before any credential was accepted.
	ErrNotConfigured = errors.New("api key is not configured")
)

// ConfigurationError means the credential was rejected or could not be registered.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return "configure api key: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// GenerationError wraps any failure of the generation call itself.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "generate ideas: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Cause returns the underlying failure of a ConfigurationError or
// GenerationError, or err itself for anything else.
func Cause(err error) error {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr.Err
	}
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Err
	}
	return err
}

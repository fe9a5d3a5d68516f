package sketch

import (
	"errors"
	"fmt"
)

// Sentinel errors for the sketch package.
var (
	// ErrInvalidConfig is returned when an application option is out of range.
	// The concrete error is a *ConfigError naming the offending field.
	ErrInvalidConfig = errors.New("sketch: invalid configuration")

	// ErrTypeMismatch is returned when a dynamically decoded value has the
	// wrong kind, such as a bounds entry that is not a list of four numbers.
	ErrTypeMismatch = errors.New("sketch: type mismatch")

	// ErrStackUnderflow is returned by Pop when only the root style frame remains.
	ErrStackUnderflow = errors.New("sketch: style stack underflow")

	// ErrExport is returned when captured frames cannot be written.
	ErrExport = errors.New("sketch: export failed")

	// ErrMissingCallback is returned by New when the setup or draw callback
	// has not been provided.
	ErrMissingCallback = errors.New("sketch: missing callback")

	// ErrCaptureUnavailable is returned by a Surface that cannot read back
	// its rendered frame yet.
	ErrCaptureUnavailable = errors.New("sketch: surface capture unavailable")
)

// ConfigError describes a rejected configuration value.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sketch: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

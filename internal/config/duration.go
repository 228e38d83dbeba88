package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration to support human-readable YAML values
// ("10s", "1m30s") as well as bare numbers interpreted as seconds.
type Duration struct {
	time.Duration
}

// DurationFrom creates a Duration from a standard time.Duration.
func DurationFrom(d time.Duration) Duration {
	return Duration{Duration: d}
}

// MarshalYAML emits the duration as a string.
func (d Duration) MarshalYAML() (any, error) {
	return d.Duration.String(), nil
}

// UnmarshalYAML accepts either a string duration or numeric seconds.
// The node tag decides the interpretation: yaml.v3 happily decodes a bare
// scalar like 10 into a string, so decode-and-retry would never reach the
// numeric branch.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Tag {
	case "!!str":
		var raw string
		if err := value.Decode(&raw); err != nil {
			return fmt.Errorf("invalid duration value %q: %w", value.Value, err)
		}
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", raw, err)
		}
		d.Duration = parsed
		return nil
	case "!!int", "!!float":
		var seconds float64
		if err := value.Decode(&seconds); err != nil {
			return fmt.Errorf("invalid duration value %q: %w", value.Value, err)
		}
		d.Duration = time.Duration(seconds * float64(time.Second))
		return nil
	}

	return fmt.Errorf("invalid duration value %q", value.Value)
}

// IsZero reports whether the duration is zero.
func (d Duration) IsZero() bool {
	return d.Duration == 0
}

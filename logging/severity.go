package logging

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Severity is the ordered importance level of a log record.
type Severity int

const (
	// SeverityUnknown sits below every real level. Out-of-range values
	// normalize to it instead of failing.
	SeverityUnknown Severity = iota
	// SeverityDebug is for debugging information; the diagnostic helpers
	// on Logger all log at this level.
	SeverityDebug
	// SeverityVerbose is for detailed diagnostics still useful to an end
	// user.
	SeverityVerbose
	// SeverityInfo is for ordinary events such as configuration or state
	// changes.
	SeverityInfo
	// SeverityWarning is for recoverable or retryable trouble.
	SeverityWarning
	// SeverityError is for definite failures that may still be
	// recoverable.
	SeverityError
	// SeverityWtf is the highest level, reserved for conditions the
	// program asserts can never happen.
	SeverityWtf
)

var severityNames = [...]string{
	"Unknown",
	"Debug",
	"Verbose",
	"Info",
	"Warning",
	"Error",
	"Wtf",
}

// String returns the identifier-style name, or "Unknown" for out-of-range
// values.
func (s Severity) String() string {
	if s < SeverityUnknown || s > SeverityWtf {
		return "Unknown"
	}
	return severityNames[s]
}

// Title returns the fixed title destinations print. Every value without a
// dedicated title, including SeverityUnknown, maps to "Unclassified".
func (s Severity) Title() string {
	switch s {
	case SeverityDebug, SeverityVerbose, SeverityInfo, SeverityWarning, SeverityError, SeverityWtf:
		return severityNames[s]
	default:
		return "Unclassified"
	}
}

// normalize clamps out-of-range values to SeverityUnknown.
func (s Severity) normalize() Severity {
	if s < SeverityUnknown || s > SeverityWtf {
		return SeverityUnknown
	}
	return s
}

// ParseSeverity converts a case-insensitive severity name. "warn" is
// accepted as an alias for "warning".
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(name) {
	case "unknown":
		return SeverityUnknown, nil
	case "debug":
		return SeverityDebug, nil
	case "verbose":
		return SeverityVerbose, nil
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	case "wtf":
		return SeverityWtf, nil
	}
	return SeverityUnknown, fmt.Errorf("unknown severity %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(s.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, so severities appear by name in
// config files.
func (s Severity) MarshalYAML() (any, error) {
	return strings.ToLower(s.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Severity) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(name))
}

// Set implements pflag.Value, so a *Severity can back a command-line flag.
func (s *Severity) Set(value string) error {
	return s.UnmarshalText([]byte(value))
}

// Type implements pflag.Value.
func (s *Severity) Type() string {
	return "severity"
}

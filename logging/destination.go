package logging

// Destination receives the log records a Logger dispatches to it. A record
// is delivered iff the destination's inclusive bounds admit its severity.
//
// Errors passed to LogError and LogMessageError are opaque payloads: the
// destination renders their text and nothing else. The returned error is
// the destination's own failure to deliver (a write error, for example) and
// surfaces unretried to the Log caller.
type Destination interface {
	LogMessage(severity Severity, message string) error
	LogError(severity Severity, err error) error
	LogMessageError(severity Severity, message string, err error) error

	MinSeverity() Severity
	MaxSeverity() Severity
	SetMinSeverity(severity Severity)
	SetMaxSeverity(severity Severity)
}

// SeverityBounds holds a destination's inclusive delivery range. Embed it
// to satisfy the bounds half of the Destination interface.
//
// Bounds are read on every dispatch and written during setup; mutating them
// concurrently with logging needs external synchronization.
type SeverityBounds struct {
	min Severity
	max Severity
}

// AllSeverities returns bounds that admit every severity.
func AllSeverities() SeverityBounds {
	return SeverityBounds{min: SeverityUnknown, max: SeverityWtf}
}

// MinSeverity returns the lower bound.
func (b *SeverityBounds) MinSeverity() Severity {
	return b.min
}

// MaxSeverity returns the upper bound.
func (b *SeverityBounds) MaxSeverity() Severity {
	return b.max
}

// SetMinSeverity sets the lower bound. Out-of-range values clamp to
// SeverityUnknown; this is normalization, not an error.
func (b *SeverityBounds) SetMinSeverity(severity Severity) {
	b.min = severity.normalize()
}

// SetMaxSeverity sets the upper bound, clamping like SetMinSeverity.
func (b *SeverityBounds) SetMaxSeverity(severity Severity) {
	b.max = severity.normalize()
}

// Admits reports whether severity falls inside the inclusive range.
func (b *SeverityBounds) Admits(severity Severity) bool {
	return severity >= b.min && severity <= b.max
}

// errorText renders the opaque error payload carried through a log call.
func errorText(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}

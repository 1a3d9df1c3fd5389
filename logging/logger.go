package logging

import (
	"errors"
	"runtime"
	"strings"
	"sync"

	"github.com/cliutil-go/cliutil/pretty"
)

// Logger fans each log request out to its attached destinations in
// attachment order. It owns no destination exclusively: the same
// destination can be attached to several loggers, or to one logger twice.
type Logger struct {
	mu           sync.Mutex
	destinations []Destination
}

// New returns a fresh, independent Logger with no destinations attached.
func New() *Logger {
	return &Logger{}
}

var (
	sharedOnce   sync.Once
	sharedLogger *Logger
)

// Shared returns the process-wide Logger, created on first use. Every call
// returns the same instance. Prefer passing a Logger from New explicitly;
// Shared exists for call sites that cannot take one.
func Shared() *Logger {
	sharedOnce.Do(func() {
		sharedLogger = New()
	})
	return sharedLogger
}

// AddDestination appends destination to the dispatch list. Attachment order
// is delivery order; duplicates are allowed and delivered once per
// attachment.
func (l *Logger) AddDestination(destination Destination) {
	l.mu.Lock()
	l.destinations = append(l.destinations, destination)
	l.mu.Unlock()
}

// ClearDestinations detaches every destination. The destination objects
// themselves are untouched and can be reattached.
func (l *Logger) ClearDestinations() {
	l.mu.Lock()
	l.destinations = nil
	l.mu.Unlock()
}

// snapshot copies the dispatch list so destinations run outside the lock.
func (l *Logger) snapshot() []Destination {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Destination, len(l.destinations))
	copy(out, l.destinations)
	return out
}

// Log delivers a record at severity to every destination whose bounds admit
// it. The variadic tail takes one of three classic shapes:
//
//	Log(sev, "message")       delivered via LogMessage
//	Log(sev, err)             delivered via LogError
//	Log(sev, "message", err)  delivered via LogMessageError
//
// Any other shape is rendered with the pretty package and delivered as a
// message, so Log(sev, value) works for arbitrary values. Destination
// failures are not caught; they come back joined.
func (l *Logger) Log(severity Severity, args ...any) error {
	if len(args) == 0 {
		return nil
	}
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			return l.each(severity, func(d Destination) error {
				return d.LogError(severity, err)
			})
		}
	}
	if len(args) == 2 {
		message, haveMessage := args[0].(string)
		err, haveErr := args[1].(error)
		if haveMessage && haveErr {
			return l.each(severity, func(d Destination) error {
				return d.LogMessageError(severity, message, err)
			})
		}
	}

	message := formatMessage(args)
	return l.each(severity, func(d Destination) error {
		return d.LogMessage(severity, message)
	})
}

// LogDebug logs at SeverityDebug.
func (l *Logger) LogDebug(args ...any) error {
	return l.Log(SeverityDebug, args...)
}

// LogVerbose logs at SeverityVerbose.
func (l *Logger) LogVerbose(args ...any) error {
	return l.Log(SeverityVerbose, args...)
}

// LogInfo logs at SeverityInfo.
func (l *Logger) LogInfo(args ...any) error {
	return l.Log(SeverityInfo, args...)
}

// LogWarning logs at SeverityWarning.
func (l *Logger) LogWarning(args ...any) error {
	return l.Log(SeverityWarning, args...)
}

// LogError logs at SeverityError.
func (l *Logger) LogError(args ...any) error {
	return l.Log(SeverityError, args...)
}

// LogWtf logs at SeverityWtf, for conditions that should be impossible.
func (l *Logger) LogWtf(args ...any) error {
	return l.Log(SeverityWtf, args...)
}

// LogUnimplementedMethod logs the calling function as unimplemented, at the
// Debug level. The caller's identity comes from the runtime call stack.
func (l *Logger) LogUnimplementedMethod() error {
	return l.Log(SeverityDebug, "Unimplemented method: "+callerName(2))
}

// LogUnhandledError logs err at the Debug level as an exception the caller
// caught but cannot do anything with.
func (l *Logger) LogUnhandledError(err error) error {
	return l.Log(SeverityDebug, "Unhandled exception", err)
}

// LogUnimplementedFeature logs the named feature as unimplemented, at the
// Debug level.
func (l *Logger) LogUnimplementedFeature(feature string) error {
	return l.Log(SeverityDebug, "Unimplemented feature: "+feature)
}

// LogToDo logs a TODO marker at the Debug level.
func (l *Logger) LogToDo(message string) error {
	return l.Log(SeverityDebug, "TODO: "+message)
}

func (l *Logger) each(severity Severity, deliver func(Destination) error) error {
	var errs []error
	for _, d := range l.snapshot() {
		if severity >= d.MinSeverity() && severity <= d.MaxSeverity() {
			if err := deliver(d); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// formatMessage turns a free-form argument list into one message. Strings
// pass through; everything else renders with the pretty package.
func formatMessage(args []any) string {
	if len(args) == 1 {
		if s, ok := args[0].(string); ok {
			return s
		}
	}
	parts := make([]string, len(args))
	for i, arg := range args {
		if s, ok := arg.(string); ok {
			parts[i] = s
			continue
		}
		parts[i] = pretty.Sprint(arg)
	}
	return strings.Join(parts, " ")
}

func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

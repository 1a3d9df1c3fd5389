package ansi

import (
	"os"
	"sync"

	"golang.org/x/term"
)

type colorMode int

const (
	colorAuto colorMode = iota
	colorOn
	colorOff
)

var (
	// mu protects mode
	mu   sync.RWMutex
	mode = colorAuto
)

// ForceColor enables color output regardless of terminal detection and
// environment variables.
func ForceColor() {
	mu.Lock()
	mode = colorOn
	mu.Unlock()
}

// NoColor disables color output unconditionally.
func NoColor() {
	mu.Lock()
	mode = colorOff
	mu.Unlock()
}

// AutoColor restores the default behavior of detecting terminal support.
func AutoColor() {
	mu.Lock()
	mode = colorAuto
	mu.Unlock()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Enabled reports whether escape sequences should be written to f.
// Precedence: the ForceColor/NoColor override, then the NO_COLOR and
// FORCE_COLOR environment variables, then terminal detection.
func Enabled(f *os.File) bool {
	mu.RLock()
	m := mode
	mu.RUnlock()

	switch m {
	case colorOn:
		return true
	case colorOff:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return IsTerminal(f)
}

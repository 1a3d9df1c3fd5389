// Package dialog delivers log records as desktop alert dialogs.
//
// A dialog per record is obtrusive, so callers usually tighten the bounds
// before attaching:
//
//	d := dialog.NewDestination()
//	d.SetMinSeverity(logging.SeverityError)
//	logger.AddDestination(d)
package dialog

import (
	"github.com/gen2brain/beeep"

	"github.com/cliutil-go/cliutil/logging"
)

// alert is the platform alert entry point, swappable in tests.
var alert = beeep.Alert

// Destination shows each admitted log record as an alert dialog. The
// severity title becomes the dialog title.
type Destination struct {
	logging.SeverityBounds

	appIcon string
}

// NewDestination returns a dialog destination admitting every severity.
func NewDestination() *Destination {
	return &Destination{SeverityBounds: logging.AllSeverities()}
}

// SetIcon sets the icon path passed to the platform alert. Empty means the
// platform default.
func (d *Destination) SetIcon(path string) {
	d.appIcon = path
}

// LogMessage shows message in a dialog titled with the severity.
func (d *Destination) LogMessage(severity logging.Severity, message string) error {
	return alert(severity.Title(), message, d.appIcon)
}

// LogError shows the error's text in a dialog titled with the severity.
func (d *Destination) LogError(severity logging.Severity, err error) error {
	return alert(severity.Title(), "caught exception: "+errText(err), d.appIcon)
}

// LogMessageError shows message and the error's text in one dialog.
func (d *Destination) LogMessageError(severity logging.Severity, message string, err error) error {
	return alert(severity.Title(), message+" with caught exception "+errText(err), d.appIcon)
}

func errText(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}

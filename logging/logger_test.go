package logging

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record is one delivery captured by recordingDestination.
type record struct {
	severity Severity
	message  string
	err      error
	hasMsg   bool
	hasErr   bool
}

// recordingDestination is a test double capturing every delivery.
type recordingDestination struct {
	SeverityBounds
	records []record
	fail    error
}

func newRecordingDestination() *recordingDestination {
	return &recordingDestination{SeverityBounds: AllSeverities()}
}

func (d *recordingDestination) LogMessage(severity Severity, message string) error {
	d.records = append(d.records, record{severity: severity, message: message, hasMsg: true})
	return d.fail
}

func (d *recordingDestination) LogError(severity Severity, err error) error {
	d.records = append(d.records, record{severity: severity, err: err, hasErr: true})
	return d.fail
}

func (d *recordingDestination) LogMessageError(severity Severity, message string, err error) error {
	d.records = append(d.records, record{severity: severity, message: message, err: err, hasMsg: true, hasErr: true})
	return d.fail
}

func TestLoggerDeliversMessage(t *testing.T) {
	logger := New()
	dest := newRecordingDestination()
	logger.AddDestination(dest)

	require.NoError(t, logger.LogInfo("second message"))

	require.Len(t, dest.records, 1)
	rec := dest.records[0]
	assert.Equal(t, SeverityInfo, rec.severity)
	assert.Equal(t, "second message", rec.message)
	assert.False(t, rec.hasErr, "no error payload expected")

	logger.ClearDestinations()
	require.NoError(t, logger.LogInfo("after clear"))
	assert.Len(t, dest.records, 1, "detached destination must not receive further deliveries")
}

func TestLoggerSeverityFiltering(t *testing.T) {
	logger := New()
	dest := newRecordingDestination()
	dest.SetMinSeverity(SeverityWarning)
	dest.SetMaxSeverity(SeverityWtf)
	logger.AddDestination(dest)

	require.NoError(t, logger.Log(SeverityInfo, "filtered"))
	assert.Empty(t, dest.records, "Info must not reach bounds [Warning, Wtf]")

	require.NoError(t, logger.Log(SeverityError, "delivered"))
	require.Len(t, dest.records, 1)
	assert.Equal(t, SeverityError, dest.records[0].severity)
}

func TestLoggerDispatchShapes(t *testing.T) {
	logger := New()
	dest := newRecordingDestination()
	logger.AddDestination(dest)

	payload := errors.New("payload")

	require.NoError(t, logger.Log(SeverityError, payload))
	require.NoError(t, logger.Log(SeverityError, "context", payload))
	require.NoError(t, logger.Log(SeverityInfo, "plain"))

	require.Len(t, dest.records, 3)

	assert.True(t, dest.records[0].hasErr)
	assert.False(t, dest.records[0].hasMsg)
	assert.Equal(t, payload, dest.records[0].err)

	assert.True(t, dest.records[1].hasErr)
	assert.True(t, dest.records[1].hasMsg)
	assert.Equal(t, "context", dest.records[1].message)

	assert.False(t, dest.records[2].hasErr)
	assert.Equal(t, "plain", dest.records[2].message)
}

func TestLoggerRendersArbitraryValues(t *testing.T) {
	logger := New()
	dest := newRecordingDestination()
	logger.AddDestination(dest)

	require.NoError(t, logger.LogInfo([]int{1, 2, 3}))
	require.Len(t, dest.records, 1)
	assert.Equal(t, "[ 1, 2, 3 ]", dest.records[0].message)

	require.NoError(t, logger.LogInfo("queue:", []string{"a"}))
	require.Len(t, dest.records, 2)
	assert.Equal(t, `queue: [ "a" ]`, dest.records[1].message)
}

func TestLoggerEmptyCallIsNoOp(t *testing.T) {
	logger := New()
	dest := newRecordingDestination()
	logger.AddDestination(dest)

	require.NoError(t, logger.Log(SeverityInfo))
	assert.Empty(t, dest.records)
}

func TestLoggerAttachmentOrderAndDuplicates(t *testing.T) {
	logger := New()
	var order []string
	first := &orderedDestination{SeverityBounds: AllSeverities(), name: "first", order: &order}
	second := &orderedDestination{SeverityBounds: AllSeverities(), name: "second", order: &order}

	logger.AddDestination(first)
	logger.AddDestination(second)
	logger.AddDestination(first) // duplicates are delivered per attachment

	require.NoError(t, logger.LogInfo("x"))
	assert.Equal(t, []string{"first", "second", "first"}, order)
}

type orderedDestination struct {
	SeverityBounds
	name  string
	order *[]string
}

func (d *orderedDestination) LogMessage(Severity, string) error {
	*d.order = append(*d.order, d.name)
	return nil
}

func (d *orderedDestination) LogError(Severity, error) error {
	*d.order = append(*d.order, d.name)
	return nil
}

func (d *orderedDestination) LogMessageError(Severity, string, error) error {
	*d.order = append(*d.order, d.name)
	return nil
}

func TestLoggerSurfacesDestinationFailures(t *testing.T) {
	logger := New()
	failure := errors.New("dialog unavailable")
	failing := newRecordingDestination()
	failing.fail = failure
	healthy := newRecordingDestination()

	logger.AddDestination(failing)
	logger.AddDestination(healthy)

	err := logger.LogError("boom")
	require.Error(t, err)
	assert.ErrorIs(t, err, failure)
	// The failure does not stop dispatch to later destinations.
	assert.Len(t, healthy.records, 1)
}

func TestConvenienceFamilies(t *testing.T) {
	logger := New()
	dest := newRecordingDestination()
	logger.AddDestination(dest)

	require.NoError(t, logger.LogDebug("d"))
	require.NoError(t, logger.LogVerbose("v"))
	require.NoError(t, logger.LogInfo("i"))
	require.NoError(t, logger.LogWarning("w"))
	require.NoError(t, logger.LogError("e"))
	require.NoError(t, logger.LogWtf("?"))

	want := []Severity{
		SeverityDebug,
		SeverityVerbose,
		SeverityInfo,
		SeverityWarning,
		SeverityError,
		SeverityWtf,
	}
	require.Len(t, dest.records, len(want))
	for i, severity := range want {
		assert.Equal(t, severity, dest.records[i].severity)
	}
}

func TestDiagnosticHelpers(t *testing.T) {
	logger := New()
	dest := newRecordingDestination()
	logger.AddDestination(dest)

	payload := errors.New("unexpected EOF")

	require.NoError(t, logger.LogUnimplementedMethod())
	require.NoError(t, logger.LogUnhandledError(payload))
	require.NoError(t, logger.LogUnimplementedFeature("color themes"))
	require.NoError(t, logger.LogToDo("handle symlinks"))

	require.Len(t, dest.records, 4)
	for _, rec := range dest.records {
		assert.Equal(t, SeverityDebug, rec.severity)
	}

	assert.True(t, strings.HasPrefix(dest.records[0].message, "Unimplemented method: "))
	assert.Contains(t, dest.records[0].message, "TestDiagnosticHelpers")

	assert.Equal(t, "Unhandled exception", dest.records[1].message)
	assert.Equal(t, payload, dest.records[1].err)

	assert.Equal(t, "Unimplemented feature: color themes", dest.records[2].message)
	assert.Equal(t, "TODO: handle symlinks", dest.records[3].message)
}

func TestSharedLoggerIdentity(t *testing.T) {
	assert.Same(t, Shared(), Shared())
	assert.NotSame(t, Shared(), New())
	assert.NotSame(t, New(), New())
}

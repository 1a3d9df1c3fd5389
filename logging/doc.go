// Package logging is a leveled logging facade that fans each log request
// out to zero or more registered destinations, each with its own inclusive
// severity range.
//
// A Destination is anything that can receive a message, an error payload,
// or both, and exposes mutable min/max severity bounds. The package ships a
// console destination writing "[<Title>] <message>" lines to a swappable
// stream, and a Prometheus-backed destination counting records per
// severity. Package dialog adds a native desktop alert destination.
//
//	logger := logging.New()
//	logger.AddDestination(logging.NewConsoleDestination())
//	logger.LogInfo("service started")
//
// The facade catches nothing: destination failures surface to the Log
// caller, joined when several destinations fail. A process-wide instance is
// available through Shared; prefer passing a Logger explicitly and keep
// Shared for call sites that cannot take one.
package logging

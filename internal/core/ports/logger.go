// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a diagnostic message, hidden unless verbose output is enabled.
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
}

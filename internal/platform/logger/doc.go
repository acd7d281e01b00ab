// Package logger provides structured logging functionality for the application.
//
// It builds on log/slog: Setup installs a JSON handler at the configured
// level, and request-scoped loggers travel through context.Context via
// WithLogger and FromContext.
package logger

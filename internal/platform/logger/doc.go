// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Logs go to stderr, or to a size-rotated file
// when one is configured. Loggers and trace IDs travel through context.Context.
package logger

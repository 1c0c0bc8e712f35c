// Package logger builds configured log/slog loggers with json or text
// output, static service attributes, and context-driven attribute injection
// (for example a request ID extractor registered by HTTP middleware).
package logger

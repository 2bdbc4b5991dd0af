package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Commands
	FieldCommand = "command"
	FieldLevel   = "level"

	// Samples and schema
	FieldModelID   = "model_id"
	FieldAttribute = "attribute"
	FieldKind      = "kind"
	FieldLabel     = "label"
	FieldRelation  = "relation"
	FieldMissing   = "missing"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount  = "count"
	FieldRecord = "record"

	// Files and paths
	FieldFile   = "file"
	FieldFormat = "format"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Adapter struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewAdapter() *Adapter {
//	    return &Adapter{logger: logger.ComponentLogger("instance")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
//	sampleLogger := logger.ChildLogger(base, logger.FieldModelID, id)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}

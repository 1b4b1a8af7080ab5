// Package logger provides the structured JSON logger used across the
// service.
//
// It wraps go.uber.org/zap behind a small fixed API
// (Debug/Info/Warn/Error/Fatal) that accepts an optional error and free-form
// field maps:
//
//	log.Warn("retrieval disabled", err, map[string]interface{}{
//	    "question_len": len(question),
//	})
//
// Configuration comes from LOG_LEVEL and LOG_SERVICE_NAME. The FXModule
// provides Config and *Logger and registers a shutdown hook that flushes
// buffered entries.
package logger

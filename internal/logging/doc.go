// Package logging provides structured logging for vmsg on top of log/slog.
//
// Text output uses [Handler], a compact single-line format that adds colour
// when writing to a terminal. JSON output uses the standard library handler.
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//	})
//	ctx = logging.NewContext(ctx, logger)
//
// Downstream code retrieves it with [FromContext], which falls back to
// slog.Default when the context carries no logger.
//
// In tests, [ForTest] routes output through t.Log.
package logging

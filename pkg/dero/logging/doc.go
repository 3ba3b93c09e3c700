// Package logging provides the small logging facade used by the dero
// boundary and converter.
//
// The Logger interface wraps the subset of log/slog the library needs. A
// shared library must not write to the host process's streams on its own, so
// the boundary defaults to Discard and only logs when the embedding program
// supplies a logger:
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger := logging.New(slog.New(handler))
//
// # Caller text
//
// Text passed through the C boundary belongs to the caller and may be
// sensitive. Log its length, never its contents; use Redacted to keep the
// attribute key visible:
//
//	logger.Debug(ctx, "conversion rejected", "bytes", n, logging.Redacted("text"))
//	// Logs: bytes=12 text="[redacted]"
package logging

package tabview

import (
	"log/slog"
	"os"
)

// tabLogLevel controls the log level for engine debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var tabLogLevel = new(slog.LevelVar)

// tabLogger is the logger for engine debugging.
var tabLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: tabLogLevel}))

// SetVerbose enables or disables verbose/debug logging for the engine.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		tabLogLevel.Set(slog.LevelDebug)
	} else {
		tabLogLevel.Set(slog.LevelInfo)
	}
}

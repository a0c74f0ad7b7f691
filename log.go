package microgui

import (
	"log/slog"
	"os"
)

// guiLogLevel controls the log level for GUI debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var guiLogLevel = new(slog.LevelVar)

// guiLogger is the default logger for canvas and window debugging.
// Canvas instances use it unless WithLogger overrides it.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

// SetVerbose enables or disables verbose/debug logging for GUI components.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// guiVerbose returns true if GUI debug logging is enabled.
func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

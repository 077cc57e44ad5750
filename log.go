package picker

import (
	"log/slog"
	"os"
)

// pickerLogLevel controls the log level for picker debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var pickerLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the picker.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		pickerLogLevel.Set(slog.LevelDebug)
	} else {
		pickerLogLevel.Set(slog.LevelInfo)
	}
}

// pickerLogger is the logger for picker internals.
var pickerLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: pickerLogLevel}))

package flasher

import "time"

// Programming phases reported through Progress.
const (
	// PhasePinging means the flasher is checking the bootloader is alive
	PhasePinging = "pinging"

	// PhaseFlashing means pages are being erased and written
	PhaseFlashing = "flashing"

	// PhaseComplete means the operation finished successfully
	PhaseComplete = "complete"
)

// Progress contains information about the flashing progress.
// Passed to ProgressCallback during Flash.
type Progress struct {
	// Phase is the current operation phase (see Phase* constants)
	Phase string

	// CurrentPage is the number of pages written so far
	CurrentPage int

	// TotalPages is the total number of pages to write
	TotalPages int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// BytesWritten is the total number of bytes written so far
	BytesWritten int

	// ElapsedTime is the time elapsed since flashing started
	ElapsedTime time.Duration
}

// ProgressCallback is called periodically during flashing to report
// progress. Implementations should return quickly to avoid stalling the
// byte stream.
type ProgressCallback func(Progress)

// Logger is an optional logging interface. It keeps the library free of
// logging dependencies; adapt your framework of choice to it.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}

package flasher

import "time"

// Config holds the flasher configuration.
type Config struct {
	// ProgressCallback is called during flashing to report progress (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// CommandDelay is an optional pause after each command frame, for
	// transports that need the bootloader to drain between commands
	CommandDelay time.Duration

	// Retries is the number of retry attempts for failed transport writes
	Retries int

	// PingBeforeFlash sends a ping before the first page is touched
	PingBeforeFlash bool
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		CommandDelay:    0,
		Retries:         3,
		PingBeforeFlash: true,
	}
}

// Option is a functional option for configuring the Flasher.
type Option func(*Config)

// WithProgressCallback sets a callback function to track flashing progress.
//
// Example:
//
//	f := flasher.New(device,
//	    flasher.WithProgressCallback(func(p flasher.Progress) {
//	        fmt.Printf("%.1f%% complete\n", p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for the flasher operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithCommandDelay sets a pause applied after each command frame.
func WithCommandDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.CommandDelay = delay
		}
	}
}

// WithRetries sets the number of retry attempts for failed writes.
func WithRetries(retries int) Option {
	return func(c *Config) {
		if retries >= 0 {
			c.Retries = retries
		}
	}
}

// WithPingBeforeFlash enables or disables the leading ping.
// Default is true.
func WithPingBeforeFlash(ping bool) Option {
	return func(c *Config) {
		c.PingBeforeFlash = ping
	}
}

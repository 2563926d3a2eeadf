package device

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmarder/go-tockboot/protocol"
)

// Handler receives decoded commands from a Dispatcher.
//
// WritePage data is copied out of the parser's internal buffer before the
// call, so implementations may retain the slice.
type Handler interface {
	// Ping handles a liveness check
	Ping()

	// Info handles a device information request
	Info()

	// Reset handles a bootloader reset request
	Reset()

	// ErasePage erases the flash page at addr
	ErasePage(addr uint32) error

	// WritePage writes a full page of data at addr
	WritePage(addr uint32, data []byte) error

	// BadCommand handles a command whose payload was too short
	BadCommand()
}

// Config holds the dispatcher configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger
}

// Logger is an optional logging interface, mirroring flasher.Logger.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Option is a functional option for configuring the Dispatcher.
type Option func(*Config)

// WithLogger sets a logger for dispatcher operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// Dispatcher reads the bootloader command stream and dispatches decoded
// commands to a Handler. It owns one Parser, so one Dispatcher serves one
// session; run concurrent sessions on separate instances.
type Dispatcher struct {
	handler Handler
	parser  *protocol.Parser
	config  Config
}

// New creates a Dispatcher delivering commands to the given handler.
func New(handler Handler, opts ...Option) *Dispatcher {
	if handler == nil {
		panic("handler cannot be nil")
	}

	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Dispatcher{
		handler: handler,
		parser:  protocol.NewParser(),
		config:  cfg,
	}
}

// Run consumes r until EOF, a read error, or context cancellation,
// feeding the parser one byte at a time and dispatching every decoded
// command. EOF returns nil. The context is checked between reads, so
// cancellation takes effect at the next byte boundary.
func (d *Dispatcher) Run(ctx context.Context, r io.Reader) error {
	br := bufio.NewReader(r)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}

		cmd := d.parser.Receive(b)
		if cmd == nil {
			continue
		}
		if err := d.dispatch(cmd); err != nil {
			return err
		}
	}
}

// Receive feeds a single byte without a reader, for callers that manage
// their own transport loop. It reports any handler error for a command
// completed by this byte.
func (d *Dispatcher) Receive(b byte) error {
	cmd := d.parser.Receive(b)
	if cmd == nil {
		return nil
	}
	return d.dispatch(cmd)
}

func (d *Dispatcher) dispatch(cmd protocol.Command) error {
	d.logDebug("command received", "kind", cmd.Kind())

	switch c := cmd.(type) {
	case protocol.Ping:
		d.handler.Ping()
	case protocol.Info:
		d.handler.Info()
	case protocol.Reset:
		d.handler.Reset()
	case protocol.ErasePage:
		if err := d.handler.ErasePage(c.Address); err != nil {
			return fmt.Errorf("erase page 0x%08X: %w", c.Address, err)
		}
	case protocol.WritePage:
		// The parser's buffer is reused on the next byte; hand the
		// handler its own copy.
		data := make([]byte, len(c.Data))
		copy(data, c.Data)
		if err := d.handler.WritePage(c.Address, data); err != nil {
			return fmt.Errorf("write page 0x%08X: %w", c.Address, err)
		}
	case protocol.BadCommand:
		d.logDebug("bad command", "buffered", d.parser.Buffered())
		d.handler.BadCommand()
	}
	return nil
}

// logDebug logs a debug message if a logger is configured.
func (d *Dispatcher) logDebug(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Debug(msg, keysAndValues...)
	}
}

package flasher

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmarder/go-tockboot/image"
	"github.com/dmarder/go-tockboot/protocol"
)

// Flasher drives the bootloader command stream on the host side.
// It writes command frames to the device transport; acknowledgement
// handling is transport-specific and left to the caller.
type Flasher struct {
	device io.Writer
	config Config
}

// New creates a new Flasher with the given device and options.
// The device is any io.Writer carrying bytes to the bootloader (serial
// port, USB endpoint, socket, pipe).
//
// Example:
//
//	port, _ := serial.Open("/dev/ttyACM0", mode)
//	f := flasher.New(port,
//	    flasher.WithProgressCallback(progressFunc),
//	    flasher.WithCommandDelay(5*time.Millisecond),
//	)
func New(device io.Writer, opts ...Option) *Flasher {
	if device == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Flasher{
		device: device,
		config: cfg,
	}
}

// Flash programs a firmware image:
//  1. Optionally ping the bootloader
//  2. For each page: erase, then write, with progress tracking
//
// The image start address must be page-aligned. The operation can be
// cancelled via context between pages.
//
// Example:
//
//	img, _ := image.Load("app.bin", 0x00030000)
//	err := f.Flash(context.Background(), img)
func (f *Flasher) Flash(ctx context.Context, img *image.Image) error {
	if img == nil {
		return fmt.Errorf("image cannot be nil")
	}
	if img.StartAddress%protocol.PageSize != 0 {
		return &AddressAlignmentError{Address: img.StartAddress}
	}

	startTime := time.Now()

	if f.config.PingBeforeFlash {
		f.reportProgress(Progress{
			Phase:      PhasePinging,
			TotalPages: len(img.Pages),
		})
		if err := f.Ping(ctx); err != nil {
			return fmt.Errorf("ping: %w", err)
		}
	}

	f.logDebug("flashing image",
		"start_address", fmt.Sprintf("0x%08X", img.StartAddress),
		"pages", len(img.Pages),
		"bytes", img.Size,
	)

	bytesWritten := 0
	for i, page := range img.Pages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}

		addr := img.PageAddress(i)
		if err := f.ErasePage(ctx, addr); err != nil {
			return fmt.Errorf("erase page %d (address=0x%08X): %w", i, addr, err)
		}
		if err := f.WritePage(ctx, addr, page); err != nil {
			return fmt.Errorf("write page %d (address=0x%08X): %w", i, addr, err)
		}

		bytesWritten += len(page)
		f.reportProgress(Progress{
			Phase:        PhaseFlashing,
			CurrentPage:  i + 1,
			TotalPages:   len(img.Pages),
			Percentage:   float64(i+1) / float64(len(img.Pages)) * 100,
			BytesWritten: bytesWritten,
			ElapsedTime:  time.Since(startTime),
		})
	}

	f.reportProgress(Progress{
		Phase:        PhaseComplete,
		CurrentPage:  len(img.Pages),
		TotalPages:   len(img.Pages),
		Percentage:   100,
		BytesWritten: bytesWritten,
		ElapsedTime:  time.Since(startTime),
	})

	f.logInfo("flashing complete",
		"pages", len(img.Pages),
		"bytes", bytesWritten,
		"elapsed", time.Since(startTime).String(),
	)

	return nil
}

// Ping sends a Ping command.
func (f *Flasher) Ping(ctx context.Context) error {
	return f.writeFrame(ctx, "ping", protocol.BuildPingCmd())
}

// Info sends an Info command.
func (f *Flasher) Info(ctx context.Context) error {
	return f.writeFrame(ctx, "info", protocol.BuildInfoCmd())
}

// Reset sends a Reset command.
func (f *Flasher) Reset(ctx context.Context) error {
	return f.writeFrame(ctx, "reset", protocol.BuildResetCmd())
}

// ErasePage sends an Erase Page command for the given address.
func (f *Flasher) ErasePage(ctx context.Context, addr uint32) error {
	return f.writeFrame(ctx, "erase page", protocol.BuildErasePageCmd(addr))
}

// WritePage sends a Write Page command. The data must be exactly
// protocol.PageSize bytes.
func (f *Flasher) WritePage(ctx context.Context, addr uint32, data []byte) error {
	frame, err := protocol.BuildWritePageCmd(addr, data)
	if err != nil {
		return err
	}
	return f.writeFrame(ctx, "write page", frame)
}

// writeFrame writes one command frame, retrying transport errors up to
// the configured attempt count, then applies the inter-command delay.
func (f *Flasher) writeFrame(ctx context.Context, command string, frame []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	attempts := f.config.Retries + 1
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if _, err := f.device.Write(frame); err != nil {
			lastErr = err
			f.logDebug("write failed", "command", command, "attempt", attempt+1, "error", err.Error())
			continue
		}
		lastErr = nil
		break
	}
	if lastErr != nil {
		return &WriteError{Command: command, Attempts: attempts, Err: lastErr}
	}

	if f.config.CommandDelay > 0 {
		select {
		case <-time.After(f.config.CommandDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

// reportProgress calls the progress callback if configured.
func (f *Flasher) reportProgress(progress Progress) {
	if f.config.ProgressCallback != nil {
		f.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (f *Flasher) logDebug(msg string, keysAndValues ...interface{}) {
	if f.config.Logger != nil {
		f.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (f *Flasher) logInfo(msg string, keysAndValues ...interface{}) {
	if f.config.Logger != nil {
		f.config.Logger.Info(msg, keysAndValues...)
	}
}

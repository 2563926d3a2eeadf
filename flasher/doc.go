// Package flasher provides a high-level API for programming devices
// running the Tock bootloader.
//
// # Overview
//
// The Flasher turns a firmware image into the bootloader command stream:
// an optional leading ping, then an erase and write for every flash page,
// with progress tracking and context cancellation between pages.
//
// # Basic Usage
//
//	// User provides the transport (io.Writer)
//	port, _ := serial.Open("/dev/ttyACM0", mode)
//
//	img, err := image.Load("app.bin", 0x00030000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f := flasher.New(port)
//	err = f.Flash(context.Background(), img)
//
// # Progress Tracking
//
//	f := flasher.New(port,
//	    flasher.WithProgressCallback(func(p flasher.Progress) {
//	        fmt.Printf("[%s] %.1f%% - Page %d/%d\n",
//	            p.Phase, p.Percentage, p.CurrentPage, p.TotalPages)
//	    }),
//	)
//
// # Configuration Options
//
//	f := flasher.New(port,
//	    flasher.WithLogger(myLogger),
//	    flasher.WithCommandDelay(5*time.Millisecond),
//	    flasher.WithRetries(5),
//	    flasher.WithPingBeforeFlash(false),
//	)
//
// # Transport Independence
//
// This package does NOT implement hardware communication. Any io.Writer
// works: serial port, USB, socket, or an in-process pipe to a device
// simulator. Commands are written fire-and-forget; if your transport
// carries bootloader acknowledgements, read them outside this package.
// Use WithCommandDelay to pace transports without flow control.
package flasher

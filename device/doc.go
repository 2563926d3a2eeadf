// Package device provides the device-side command dispatcher for the
// Tock bootloader protocol.
//
// A Dispatcher pairs a protocol.Parser with a Handler: it reads the
// inbound byte stream, and every time the parser completes a command it
// invokes the matching handler method. Page data is copied out of the
// parser's reusable buffer before dispatch, so handlers own their slices.
//
// # Usage
//
//	flash := device.NewMemFlash()
//	d := device.New(flash)
//	if err := d.Run(ctx, port); err != nil {
//	    log.Fatal(err)
//	}
//
// MemFlash is a ready-made in-memory Handler for tests and simulators;
// real bootloaders implement Handler against actual flash.
//
// Semantic validation (address alignment, range checks) belongs here, in
// the Handler, not in the parser: the wire format carries any 32-bit
// address, and what is acceptable depends on the device.
package device

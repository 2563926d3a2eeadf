// Package image loads raw firmware binaries and splits them into
// flash pages for programming.
//
// The bootloader erases and writes flash in fixed-size pages
// (protocol.PageSize bytes), so an image is represented as a start
// address plus a sequence of full pages. The final page is padded with
// 0xFF, the erased-flash value, when the binary does not end on a page
// boundary.
//
// # Usage
//
// Load an image from disk:
//
//	img, err := image.Load("app.bin", 0x00030000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d pages, %d bytes\n", len(img.Pages), img.Size)
//
// Or from any io.Reader:
//
//	img, err := image.LoadReader(r, 0x00030000)
package image

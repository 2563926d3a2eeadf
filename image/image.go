package image

import (
	"fmt"
	"io"
	"os"

	"github.com/dmarder/go-tockboot/protocol"
)

// Image is a firmware binary split into flash pages.
type Image struct {
	// StartAddress is the flash address of the first page
	StartAddress uint32

	// Size is the length of the original binary in bytes, before padding
	Size int

	// Pages holds the page payloads. Every page is exactly
	// protocol.PageSize bytes; the last page is 0xFF-padded.
	Pages [][]byte
}

// Load reads a raw firmware binary from the given file path and splits it
// into pages starting at startAddress.
//
// Example:
//
//	img, err := image.Load("app.bin", 0x00030000)
func Load(path string, startAddress uint32) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadReader(f, startAddress)
}

// LoadReader reads a raw firmware binary from any io.Reader and splits it
// into pages starting at startAddress. This is useful for testing and
// reading from non-file sources.
func LoadReader(r io.Reader, startAddress uint32) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image")
	}

	numPages := (len(data) + protocol.PageSize - 1) / protocol.PageSize
	img := &Image{
		StartAddress: startAddress,
		Size:         len(data),
		Pages:        make([][]byte, 0, numPages),
	}

	for off := 0; off < len(data); off += protocol.PageSize {
		page := make([]byte, protocol.PageSize)
		end := off + protocol.PageSize
		if end > len(data) {
			end = len(data)
		}
		n := copy(page, data[off:end])
		for i := n; i < protocol.PageSize; i++ {
			page[i] = 0xFF // erased-flash fill
		}
		img.Pages = append(img.Pages, page)
	}

	return img, nil
}

// PageAddress returns the flash address of page i.
func (img *Image) PageAddress(i int) uint32 {
	return img.StartAddress + uint32(i)*protocol.PageSize
}

// TotalBytes returns the number of bytes that will be written to flash,
// including padding in the final page.
func (img *Image) TotalBytes() int {
	return len(img.Pages) * protocol.PageSize
}

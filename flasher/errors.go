package flasher

import "fmt"

// AddressAlignmentError indicates an image start address that is not on a
// flash page boundary.
type AddressAlignmentError struct {
	Address uint32
}

func (e *AddressAlignmentError) Error() string {
	return fmt.Sprintf("address 0x%08X is not page-aligned", e.Address)
}

// WriteError indicates that a command frame could not be written to the
// transport after all retry attempts.
type WriteError struct {
	Command  string
	Attempts int
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: write failed after %d attempts: %v", e.Command, e.Attempts, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

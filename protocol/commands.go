package protocol

// Command is a fully decoded protocol operation produced by the Parser.
//
// The set of implementations is closed: Ping, Info, Reset, ErasePage,
// WritePage, BadCommand, plus the reserved operations below that have no
// wire code assigned yet.
type Command interface {
	// Kind returns a short human-readable name for logging.
	Kind() string

	isCommand()
}

// Ping checks that the bootloader is alive. No payload.
type Ping struct{}

// Info requests device identification information. No payload.
type Info struct{}

// Reset resets the bootloader state. No payload.
type Reset struct{}

// ErasePage erases one flash page.
type ErasePage struct {
	// Address is the page address, decoded little-endian from the last
	// AddressSize buffered bytes
	Address uint32
}

// WritePage writes one flash page.
type WritePage struct {
	// Address is the page address, decoded little-endian
	Address uint32

	// Data is the PageSize-byte page payload. It aliases the parser's
	// internal buffer and is only valid until the next call to Receive;
	// copy it before feeding the parser more bytes if it must be retained.
	Data []byte
}

// BadCommand signals a recognized command code whose required payload was
// not sufficiently buffered. The consumer decides whether to resynchronize
// or abort; the parser itself remains usable.
type BadCommand struct{}

// Reserved operations. These are part of the command vocabulary but have
// no wire code in the current decode table, so the Parser never produces
// them. Assigning codes later is a table addition, not a structural change.
type (
	// ReadRange reads a range of flash memory.
	ReadRange struct{}

	// SetAttribute stores a bootloader attribute.
	SetAttribute struct{}

	// GetAttribute reads a bootloader attribute.
	GetAttribute struct{}

	// CrcInternalFlash computes a CRC over internal flash.
	CrcInternalFlash struct{}

	// ChangeBaudRate switches the transport baud rate.
	ChangeBaudRate struct{}
)

func (Ping) Kind() string             { return "ping" }
func (Info) Kind() string             { return "info" }
func (Reset) Kind() string            { return "reset" }
func (ErasePage) Kind() string        { return "erase page" }
func (WritePage) Kind() string        { return "write page" }
func (BadCommand) Kind() string       { return "bad command" }
func (ReadRange) Kind() string        { return "read range" }
func (SetAttribute) Kind() string     { return "set attribute" }
func (GetAttribute) Kind() string     { return "get attribute" }
func (CrcInternalFlash) Kind() string { return "crc internal flash" }
func (ChangeBaudRate) Kind() string   { return "change baud rate" }

func (Ping) isCommand()             {}
func (Info) isCommand()             {}
func (Reset) isCommand()            {}
func (ErasePage) isCommand()        {}
func (WritePage) isCommand()        {}
func (BadCommand) isCommand()       {}
func (ReadRange) isCommand()        {}
func (SetAttribute) isCommand()     {}
func (GetAttribute) isCommand()     {}
func (CrcInternalFlash) isCommand() {}
func (ChangeBaudRate) isCommand()   {}

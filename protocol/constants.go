package protocol

// EscapeByte introduces a command terminator. A literal 0xFC data byte is
// sent doubled (0xFC 0xFC) to distinguish it from a terminator.
const EscapeByte = 0xFC

// Command codes per the Tock bootloader serial protocol.
// The code byte follows an unescaped EscapeByte and terminates the frame.
const (
	// CmdPing checks that the bootloader is alive
	CmdPing = 0x01

	// CmdInfo requests device identification information
	CmdInfo = 0x03

	// CmdReset resets the bootloader state
	CmdReset = 0x05

	// CmdErasePage erases the flash page at a 4-byte little-endian address
	CmdErasePage = 0x06

	// CmdWritePage writes a full flash page: 4-byte little-endian address
	// followed by PageSize bytes of data
	CmdWritePage = 0x07
)

// Payload geometry.
const (
	// PageSize is the size of one flash page in bytes, the unit of
	// erase and write operations
	PageSize = 512

	// AddressSize is the size of a flash address on the wire (little-endian)
	AddressSize = 4

	// WritePagePayloadSize is the total payload for a write page command:
	// address followed by one page of data
	WritePagePayloadSize = AddressSize + PageSize

	// BufferCapacity is the parser's accumulation buffer size, sized to
	// hold the largest supported payload (a write page) with headroom
	BufferCapacity = 520
)

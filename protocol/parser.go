package protocol

import "encoding/binary"

// parserState tracks how the next input byte is interpreted.
type parserState int

const (
	// stateLoading accumulates raw payload bytes into the buffer
	stateLoading parserState = iota

	// stateEscape means the previous byte was EscapeByte; the current
	// byte is either a doubled literal or a command code
	stateEscape
)

// Parser is an incremental decoder for the bootloader command stream.
// It consumes one byte per Receive call and emits a Command as soon as a
// frame terminator completes one.
//
// A Parser holds a single fixed-capacity buffer that is reused across
// frames, so it allocates nothing per byte. It is not safe for concurrent
// use; give each session its own instance.
type Parser struct {
	state  parserState
	buffer [BufferCapacity]byte
	count  int
}

// NewParser returns a Parser ready to receive bytes.
func NewParser() *Parser {
	return &Parser{state: stateLoading}
}

// Receive consumes one inbound byte. It returns nil while no complete
// command is decodable, and a non-nil Command exactly when this byte
// completes a frame.
//
// A returned WritePage's Data slice aliases the parser's internal buffer
// and is invalidated by the next Receive call.
func (p *Parser) Receive(b byte) Command {
	if p.state == stateEscape {
		return p.handleEscape(b)
	}
	return p.handleLoading(b)
}

// Buffered returns the number of payload bytes accumulated for the
// current frame.
func (p *Parser) Buffered() int {
	return p.count
}

// Reset discards any accumulated payload and returns to the initial state.
func (p *Parser) Reset() {
	p.state = stateLoading
	p.count = 0
}

// load appends one payload byte. Bytes beyond capacity are dropped rather
// than growing the buffer, which bounds memory on malformed input.
func (p *Parser) load(b byte) {
	if p.count < len(p.buffer) {
		p.buffer[p.count] = b
		p.count++
	}
}

func (p *Parser) handleLoading(b byte) Command {
	if b == EscapeByte {
		p.state = stateEscape
	} else {
		p.load(b)
	}
	return nil
}

// handleEscape resolves the byte following an escape marker. The state
// always returns to loading, whether or not a command is emitted. The
// buffer count is reset only when a command (including BadCommand) is
// emitted; an unrecognized code leaves the accumulated payload intact.
func (p *Parser) handleEscape(b byte) Command {
	p.state = stateLoading

	var cmd Command
	switch b {
	case EscapeByte:
		// Doubled escape: a literal 0xFC data byte.
		p.load(b)
		return nil
	case CmdPing:
		cmd = Ping{}
	case CmdInfo:
		cmd = Info{}
	case CmdReset:
		cmd = Reset{}
	case CmdErasePage:
		cmd = p.decodeErasePage()
	case CmdWritePage:
		cmd = p.decodeWritePage()
	default:
		return nil
	}

	p.count = 0
	return cmd
}

// decodeErasePage extracts the page address from the last AddressSize
// buffered bytes, little-endian.
func (p *Parser) decodeErasePage() Command {
	if p.count < AddressSize {
		return BadCommand{}
	}
	addr := binary.LittleEndian.Uint32(p.buffer[p.count-AddressSize : p.count])
	return ErasePage{Address: addr}
}

// decodeWritePage extracts the address and page data from the last
// WritePagePayloadSize buffered bytes: AddressSize little-endian address
// bytes followed by PageSize data bytes in arrival order.
func (p *Parser) decodeWritePage() Command {
	if p.count < WritePagePayloadSize {
		return BadCommand{}
	}
	start := p.count - WritePagePayloadSize
	addr := binary.LittleEndian.Uint32(p.buffer[start : start+AddressSize])
	return WritePage{
		Address: addr,
		Data:    p.buffer[start+AddressSize : start+WritePagePayloadSize],
	}
}

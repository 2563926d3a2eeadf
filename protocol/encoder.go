package protocol

import (
	"encoding/binary"
	"fmt"
)

// BuildPingCmd constructs a Ping command frame.
//
// Frame structure:
//
//	[ESC][CMD_PING]
func BuildPingCmd() []byte {
	return []byte{EscapeByte, CmdPing}
}

// BuildInfoCmd constructs an Info command frame.
//
// Frame structure:
//
//	[ESC][CMD_INFO]
func BuildInfoCmd() []byte {
	return []byte{EscapeByte, CmdInfo}
}

// BuildResetCmd constructs a Reset command frame.
//
// Frame structure:
//
//	[ESC][CMD_RESET]
func BuildResetCmd() []byte {
	return []byte{EscapeByte, CmdReset}
}

// BuildErasePageCmd constructs an Erase Page command frame.
//
// Frame structure:
//
//	[ADDR(4, little-endian, escaped)][ESC][CMD_ERASE_PAGE]
func BuildErasePageCmd(addr uint32) []byte {
	var addrBytes [AddressSize]byte
	binary.LittleEndian.PutUint32(addrBytes[:], addr)

	frame := make([]byte, 0, 2*AddressSize+2)
	frame = AppendEscaped(frame, addrBytes[:])
	frame = append(frame, EscapeByte, CmdErasePage)
	return frame
}

// BuildWritePageCmd constructs a Write Page command frame.
// The data must be exactly PageSize bytes.
//
// Frame structure:
//
//	[ADDR(4, little-endian, escaped)][DATA(512, escaped)][ESC][CMD_WRITE_PAGE]
//
// Returns the complete frame ready to send, or an error if validation fails.
func BuildWritePageCmd(addr uint32, data []byte) ([]byte, error) {
	if len(data) != PageSize {
		return nil, fmt.Errorf("page data must be exactly %d bytes, got %d", PageSize, len(data))
	}

	var addrBytes [AddressSize]byte
	binary.LittleEndian.PutUint32(addrBytes[:], addr)

	frame := make([]byte, 0, 2*WritePagePayloadSize+2)
	frame = AppendEscaped(frame, addrBytes[:])
	frame = AppendEscaped(frame, data)
	frame = append(frame, EscapeByte, CmdWritePage)
	return frame, nil
}

// AppendEscaped appends src to dst with every literal EscapeByte doubled,
// and returns the extended slice.
func AppendEscaped(dst, src []byte) []byte {
	for _, b := range src {
		if b == EscapeByte {
			dst = append(dst, EscapeByte, EscapeByte)
		} else {
			dst = append(dst, b)
		}
	}
	return dst
}

// Package protocol implements the Tock bootloader serial command protocol.
//
// This package provides an incremental parser for decoding the command
// stream a host tool sends to the bootloader, and builder functions for
// producing that stream on the host side.
//
// # Protocol Overview
//
// The protocol is byte-oriented and escape-framed. There is no length
// prefix: a frame is zero or more payload bytes followed by a two-byte
// terminator consisting of the escape marker and a command code:
//
//	Frame: [PAYLOAD...][ESC][CMD]
//
// Where:
//   - ESC = escape marker (0xFC)
//   - CMD = command code (see Cmd* constants)
//
// A literal 0xFC payload byte is sent doubled (0xFC 0xFC) so it cannot be
// mistaken for a terminator.
//
// Payload layout per command:
//
//	Ping, Info, Reset:  no payload
//	ErasePage:          [ADDR(4, little-endian)]
//	WritePage:          [ADDR(4, little-endian)][DATA(512)]
//
// # Parsing
//
// The Parser consumes one byte at a time and emits a Command as soon as a
// terminator completes one:
//
//	p := protocol.NewParser()
//	for _, b := range stream {
//	    if cmd := p.Receive(b); cmd != nil {
//	        // act on cmd
//	    }
//	}
//
// A nil return means no complete command is decodable yet. A WritePage's
// Data slice aliases the parser's internal buffer and must be copied
// before the next Receive call if it is retained.
//
// # Command Builders
//
// Use the Build* functions to create command frames on the host side:
//
//	frame := protocol.BuildErasePageCmd(0x00030000)
//	frame, err := protocol.BuildWritePageCmd(0x00030000, page)
//
// The builders apply the escaping rules, so payload bytes never need
// pre-processing.
//
// # Error Handling
//
// The parser never fails: malformed input is absorbed. A command code
// reached with too little buffered payload decodes to BadCommand, an
// unrecognized code after the escape marker emits nothing, and payload
// beyond the buffer capacity is dropped. The parser always remains usable.
package protocol

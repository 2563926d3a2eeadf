package device

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmarder/go-tockboot/protocol"
)

func TestRunDispatchesCommands(t *testing.T) {
	page := bytes.Repeat([]byte{0x42}, protocol.PageSize)

	var stream []byte
	stream = append(stream, protocol.BuildPingCmd()...)
	stream = append(stream, protocol.BuildErasePageCmd(0x00030000)...)
	wp, err := protocol.BuildWritePageCmd(0x00030000, page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stream = append(stream, wp...)
	stream = append(stream, protocol.BuildResetCmd()...)

	flash := NewMemFlash()
	d := New(flash)

	if err := d.Run(context.Background(), bytes.NewReader(stream)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if flash.Pings() != 1 {
		t.Errorf("pings = %d, want 1", flash.Pings())
	}
	if flash.Resets() != 1 {
		t.Errorf("resets = %d, want 1", flash.Resets())
	}
	if got := flash.Page(0x00030000); !bytes.Equal(got, page) {
		t.Errorf("stored page does not match written data")
	}
	if addrs := flash.Addresses(); len(addrs) != 1 || addrs[0] != 0x00030000 {
		t.Errorf("addresses = %v, want [0x00030000]", addrs)
	}
}

func TestRunWritePageDataIsOwnedCopy(t *testing.T) {
	pageA := bytes.Repeat([]byte{0xAA}, protocol.PageSize)
	pageB := bytes.Repeat([]byte{0xBB}, protocol.PageSize)

	var stream []byte
	for i, page := range [][]byte{pageA, pageB} {
		frame, err := protocol.BuildWritePageCmd(uint32(i)*protocol.PageSize, page)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stream = append(stream, frame...)
	}

	flash := NewMemFlash()
	d := New(flash)
	if err := d.Run(context.Background(), bytes.NewReader(stream)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The second frame reuses the parser buffer; the first stored page
	// must not have been clobbered.
	if got := flash.Page(0); !bytes.Equal(got, pageA) {
		t.Errorf("page A was clobbered by buffer reuse")
	}
	if got := flash.Page(protocol.PageSize); !bytes.Equal(got, pageB) {
		t.Errorf("page B does not match written data")
	}
}

func TestRunBadCommand(t *testing.T) {
	// Two payload bytes are not enough for an erase address.
	stream := []byte{0x01, 0x02, protocol.EscapeByte, protocol.CmdErasePage}

	flash := NewMemFlash()
	d := New(flash)
	if err := d.Run(context.Background(), bytes.NewReader(stream)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if flash.BadCommands() != 1 {
		t.Errorf("bad commands = %d, want 1", flash.BadCommands())
	}
	if len(flash.Addresses()) != 0 {
		t.Errorf("no pages should have been touched")
	}
}

func TestRunHandlerErrorStopsLoop(t *testing.T) {
	// Unaligned erase address: MemFlash rejects it.
	stream := protocol.BuildErasePageCmd(0x00030001)
	stream = append(stream, protocol.BuildPingCmd()...)

	flash := NewMemFlash()
	d := New(flash)
	err := d.Run(context.Background(), bytes.NewReader(stream))
	if err == nil {
		t.Fatal("expected error for unaligned erase")
	}
	if flash.Pings() != 0 {
		t.Errorf("pings = %d, want 0 (loop should stop on handler error)", flash.Pings())
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New(NewMemFlash())
	err := d.Run(ctx, bytes.NewReader(protocol.BuildPingCmd()))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("port gone")
}

func TestRunReadError(t *testing.T) {
	d := New(NewMemFlash())
	err := d.Run(context.Background(), failingReader{})
	if err == nil || errors.Is(err, io.EOF) {
		t.Fatalf("error = %v, want wrapped read error", err)
	}
}

func TestReceiveByteAtATime(t *testing.T) {
	flash := NewMemFlash()
	d := New(flash)

	for _, b := range protocol.BuildErasePageCmd(0x00001000) {
		if err := d.Receive(b); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := flash.Page(0x00001000); got == nil {
		t.Fatal("page was not erased")
	} else if got[0] != 0xFF {
		t.Errorf("erased page byte = 0x%02X, want 0xFF", got[0])
	}
}

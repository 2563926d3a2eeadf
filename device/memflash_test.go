package device

import (
	"bytes"
	"testing"

	"github.com/dmarder/go-tockboot/protocol"
)

func TestMemFlashValidation(t *testing.T) {
	tests := []struct {
		name    string
		addr    uint32
		data    []byte
		wantErr bool
	}{
		{name: "aligned full page", addr: 0x1000, data: make([]byte, protocol.PageSize), wantErr: false},
		{name: "unaligned address", addr: 0x1001, data: make([]byte, protocol.PageSize), wantErr: true},
		{name: "short data", addr: 0x1000, data: make([]byte, 100), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemFlash()
			err := m.WritePage(tt.addr, tt.data)
			if tt.wantErr != (err != nil) {
				t.Errorf("error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestMemFlashEraseThenWrite(t *testing.T) {
	m := NewMemFlash()

	if err := m.ErasePage(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page := m.Page(0); page[0] != 0xFF {
		t.Errorf("erased byte = 0x%02X, want 0xFF", page[0])
	}

	data := bytes.Repeat([]byte{0x7E}, protocol.PageSize)
	if err := m.WritePage(0, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(m.Page(0), data) {
		t.Errorf("stored page does not match written data")
	}

	// MemFlash stores a copy: mutating the caller's slice afterwards
	// must not change flash contents.
	data[0] = 0x00
	if m.Page(0)[0] != 0x7E {
		t.Errorf("stored page aliases caller data")
	}
}

package device

import (
	"fmt"
	"sort"

	"github.com/dmarder/go-tockboot/protocol"
)

// MemFlash is an in-memory Handler that simulates flash storage, for
// tests and device simulators. It enforces page alignment, which is the
// consumer's job: the parser deliberately does not validate addresses.
type MemFlash struct {
	pages  map[uint32][]byte
	pings  int
	infos  int
	resets int
	bad    int
}

// NewMemFlash returns an empty simulated flash.
func NewMemFlash() *MemFlash {
	return &MemFlash{pages: make(map[uint32][]byte)}
}

func (m *MemFlash) Ping()  { m.pings++ }
func (m *MemFlash) Info()  { m.infos++ }
func (m *MemFlash) Reset() { m.resets++ }

// ErasePage fills the page at addr with 0xFF.
func (m *MemFlash) ErasePage(addr uint32) error {
	if addr%protocol.PageSize != 0 {
		return fmt.Errorf("erase address 0x%08X is not page-aligned", addr)
	}
	page := make([]byte, protocol.PageSize)
	for i := range page {
		page[i] = 0xFF
	}
	m.pages[addr] = page
	return nil
}

// WritePage stores a copy of data at addr.
func (m *MemFlash) WritePage(addr uint32, data []byte) error {
	if addr%protocol.PageSize != 0 {
		return fmt.Errorf("write address 0x%08X is not page-aligned", addr)
	}
	if len(data) != protocol.PageSize {
		return fmt.Errorf("page data must be %d bytes, got %d", protocol.PageSize, len(data))
	}
	page := make([]byte, protocol.PageSize)
	copy(page, data)
	m.pages[addr] = page
	return nil
}

func (m *MemFlash) BadCommand() { m.bad++ }

// Page returns the stored page at addr, or nil if never written.
func (m *MemFlash) Page(addr uint32) []byte {
	return m.pages[addr]
}

// Addresses returns the addresses of all stored pages in ascending order.
func (m *MemFlash) Addresses() []uint32 {
	addrs := make([]uint32, 0, len(m.pages))
	for addr := range m.pages {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// Pings returns the number of ping commands handled.
func (m *MemFlash) Pings() int { return m.pings }

// Resets returns the number of reset commands handled.
func (m *MemFlash) Resets() int { return m.resets }

// BadCommands returns the number of malformed commands handled.
func (m *MemFlash) BadCommands() int { return m.bad }

// MIT License · 09/2023

package m6502

// Bus is the 64 KiB flat address space. Every address is backed either by
// the RAM array or, for addresses whose page has been mapped, by a Device.
// A page is 256 bytes wide, selected by the high byte of the address; a
// page maps to at most one Device at a time, and a later Map overwrites an
// earlier one.
//
// The page table is a fixed 256-slot array of non-owning Device
// references, the same shape IntuitionEngine's machine bus uses for its
// (much larger) 32-bit I/O region table: index by page, nil means "plain
// RAM", non-nil means "delegate".
type Bus struct {
	ram   [1 << 16]byte
	pages [256]Device
}

// NewBus returns a Bus with all of RAM zeroed and no device mappings.
func NewBus() *Bus {
	return &Bus{}
}

// Read returns the byte at addr, delegating to a mapped Device if the
// addr's page has one.
func (b *Bus) Read(addr uint16) byte {
	if dev := b.pages[addr>>8]; dev != nil {
		return dev.Read(addr)
	}
	return b.ram[addr]
}

// Write stores byte at addr, delegating to a mapped Device if the addr's
// page has one.
func (b *Bus) Write(addr uint16, v byte) {
	if dev := b.pages[addr>>8]; dev != nil {
		dev.Write(addr, v)
		return
	}
	b.ram[addr] = v
}

// Read16 composes a little-endian word from addr (low byte) and addr+1
// (high byte). The high-byte address wraps modulo 2^16.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// Write16 decomposes v into little-endian bytes at addr and addr+1,
// wrapping the high-byte address modulo 2^16.
func (b *Bus) Write16(addr uint16, v uint16) {
	b.Write(addr, byte(v))
	b.Write(addr+1, byte(v>>8))
}

// Map installs dev over the given page (the address range page*0x100
// through page*0x100+0xFF). A later Map call for the same page replaces
// the earlier mapping.
func (b *Bus) Map(page byte, dev Device) {
	b.pages[page] = dev
}

// MapRange installs dev over every page from loPage to hiPage inclusive.
func (b *Bus) MapRange(loPage, hiPage byte, dev Device) {
	for p := int(loPage); p <= int(hiPage); p++ {
		b.pages[p] = dev
	}
}

// Unmap clears any device mapping for page, restoring plain RAM.
func (b *Bus) Unmap(page byte) {
	b.pages[page] = nil
}

// Reset zeroes RAM and clears every page mapping.
func (b *Bus) Reset() {
	b.ram = [1 << 16]byte{}
	b.pages = [256]Device{}
}

// Peek returns the raw RAM byte at addr, bypassing any mapped Device. This
// is the assembler's back door for deterministic code placement: code is
// always written to RAM even on pages that are later mapped to a device.
func (b *Bus) Peek(addr uint16) byte {
	return b.ram[addr]
}

// Poke stores v directly into RAM at addr, bypassing any mapped Device.
func (b *Bus) Poke(addr uint16, v byte) {
	b.ram[addr] = v
}

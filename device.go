// MIT License · 09/2023

package m6502

// Device is a memory-mapped peripheral. It sees the full 16-bit address of
// every access routed to it and may inspect the low byte to select a
// sub-register. A Device is a long-lived collaborator owned by the caller;
// the Bus holds only a non-owning reference once mapped.
//
// A Device must not assume anything about read/write ordering beyond what
// real hardware would: the core does not coalesce accesses and makes no
// extra promises.
type Device interface {
	Read(addr uint16) byte
	Write(addr uint16, b byte)
}

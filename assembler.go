// MIT License · 09/2023

package m6502

import "log"

// patchKind distinguishes a one-byte (branch displacement) deferred patch
// from a two-byte (absolute address) one.
type patchKind uint8

const (
	patchByte patchKind = iota
	patchWord
)

type patchSite struct {
	addr uint16
	kind patchKind
}

// Ref is a forward reference to a label that has not been bound yet. Pass
// it to EmitRef in place of a literal operand; once Label binds
// the name, every site that referenced it is patched in place.
type Ref struct {
	name string
}

// Assembler is a fluent, stateful code emitter bound to a Bus. It tracks a
// moving origin and writes directly to RAM (bypassing any mapped device),
// exactly like the Bus.Poke back door it is built on. It is a convenience
// for tests and for callers assembling code programmatically — it is never
// part of the runtime fetch path and must not be used from Step.
type Assembler struct {
	bus    *Bus
	origin uint16
	labels map[string]uint16
	sites  map[string][]patchSite
	log    *log.Logger
}

// NewAssembler returns an Assembler bound to bus, with the origin at 0 and
// no diagnostic logger. Use SetLogger to attach one.
func NewAssembler(bus *Bus) *Assembler {
	return &Assembler{
		bus:    bus,
		labels: make(map[string]uint16),
		sites:  make(map[string][]patchSite),
	}
}

// SetLogger attaches a logger used only to report label-patch diagnostics;
// a nil logger (the default) disables this entirely. It has no effect on
// the bytes emitted.
func (a *Assembler) SetLogger(l *log.Logger) *Assembler {
	a.log = l
	return a
}

// Org sets the write origin.
func (a *Assembler) Org(addr uint16) *Assembler {
	a.origin = addr
	return a
}

// Here returns the current origin.
func (a *Assembler) Here() uint16 {
	return a.origin
}

// Ref returns a forward reference to name. The name need not be bound by
// Label yet — EmitRef records the reference and Label patches every
// outstanding reference once the name is finally bound.
func (a *Assembler) Ref(name string) Ref {
	return Ref{name: name}
}

// Label records the current origin as the named location and patches
// every deferred operand byte previously emitted against that name.
func (a *Assembler) Label(name string) *Assembler {
	a.labels[name] = a.origin
	for _, site := range a.sites[name] {
		a.patch(site, a.origin)
	}
	delete(a.sites, name)
	return a
}

// Emit looks up the opcode byte for (mnemonic, mode) via Encode, writes it
// at the origin, writes 0, 1 or 2 operand bytes depending on the mode's
// length, and advances the origin. immediate is taken low-byte-first for
// 2-byte instructions and little-endian for 3-byte instructions; it is
// ignored for 1-byte instructions. Emit does not validate the
// (mnemonic, mode) pair beyond the opcode table: a pair absent from the
// table is a programming error and returns ErrUndefinedEncoding.
func (a *Assembler) Emit(m Mnemonic, mode Mode, immediate uint16) error {
	opcode, ok := Encode(m, mode)
	if !ok {
		return undefinedEncodingFor(m, mode)
	}
	a.bus.Poke(a.origin, opcode)
	switch mode.Len() {
	case 2:
		a.bus.Poke(a.origin+1, byte(immediate))
	case 3:
		a.bus.Poke(a.origin+1, byte(immediate))
		a.bus.Poke(a.origin+2, byte(immediate>>8))
	}
	a.origin += mode.Len()
	return nil
}

// EmitRef is like Emit but the operand is a Ref to a label: the operand
// bytes are written as 0 for now and recorded as a patch site, to be
// filled in when the referenced label is finally bound via Label. mode
// must be a branch (Relative, one byte) or an absolute/indirect mode
// (two bytes).
func (a *Assembler) EmitRef(m Mnemonic, mode Mode, ref Ref) error {
	opcode, ok := Encode(m, mode)
	if !ok {
		return undefinedEncodingFor(m, mode)
	}
	a.bus.Poke(a.origin, opcode)

	var kind patchKind
	var operandAddr uint16
	switch mode.Len() {
	case 2:
		kind, operandAddr = patchByte, a.origin+1
	case 3:
		kind, operandAddr = patchWord, a.origin+1
	}

	if resolved, ok := a.labels[ref.name]; ok {
		a.patch(patchSite{addr: operandAddr, kind: kind}, resolved)
	} else {
		a.sites[ref.name] = append(a.sites[ref.name], patchSite{addr: operandAddr, kind: kind})
		if a.log != nil {
			a.log.Printf("m6502: assembler: deferred reference to %q at %04X", ref.name, operandAddr)
		}
	}

	a.origin += mode.Len()
	return nil
}

// patch fills in a previously-emitted deferred operand now that its
// label's address is known.
func (a *Assembler) patch(site patchSite, target uint16) {
	switch site.kind {
	case patchByte:
		// Relative branch: displacement relative to the byte after the
		// two-byte branch instruction, i.e. site.addr+1.
		disp := int32(target) - int32(site.addr+1)
		a.bus.Poke(site.addr, byte(int8(disp)))
	case patchWord:
		a.bus.Poke(site.addr, byte(target))
		a.bus.Poke(site.addr+1, byte(target>>8))
	}
}

// Resolve reports whether name has been bound by Label, and the address it
// resolved to. It returns an error-free 0, false for an unbound name —
// use it for diagnostics, not control flow (EmitRef already defers
// unresolved names automatically).
func (a *Assembler) Resolve(name string) (uint16, bool) {
	addr, ok := a.labels[name]
	return addr, ok
}

// Pending returns the names of every label referenced via EmitRef that was
// never bound by a matching Label call. A non-empty result after assembly
// finishes means the program has a dangling jump/branch target.
func (a *Assembler) Pending() []string {
	names := make([]string, 0, len(a.sites))
	for name := range a.sites {
		names = append(names, name)
	}
	return names
}

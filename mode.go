// MIT License · 09/2023

package m6502

// Mode identifies one of the thirteen documented 6502 addressing modes.
type Mode uint8

const (
	Implied Mode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX // (d,X)
	IndirectY // (d),Y
	Relative
)

var modeNames = [...]string{
	Implied:     "IMPLIED",
	Accumulator: "ACCUMULATOR",
	Immediate:   "IMMEDIATE",
	ZeroPage:    "ZPG",
	ZeroPageX:   "ZPG_X",
	ZeroPageY:   "ZPG_Y",
	Absolute:    "ABS",
	AbsoluteX:   "ABS_X",
	AbsoluteY:   "ABS_Y",
	Indirect:    "INDIRECT",
	IndirectX:   "X_IND",
	IndirectY:   "IND_Y",
	Relative:    "REL",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "?"
}

// Len returns the instruction length in bytes (opcode byte included) for
// the given addressing mode.
func (m Mode) Len() uint16 {
	switch m {
	case Implied, Accumulator:
		return 1
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, IndirectX, IndirectY, Relative:
		return 2
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	}
	return 1
}

// operand reads the operand value named by mode for the instruction at
// r.PC. It does not advance PC and does not handle ACCUMULATOR (callers
// that target the accumulator read r.A directly) or modes with no operand
// value (Implied, Relative, Indirect — the latter is used only by JMP,
// which computes its own target).
func operand(r *Registers, b *Bus, m Mode) byte {
	return b.Read(effectiveAddress(r, b, m))
}

// effectiveAddress computes the final memory address named by mode,
// applied to the instruction at r.PC. Zero-page indexing wraps within
// page zero; absolute indexing wraps within the full 16-bit space.
func effectiveAddress(r *Registers, b *Bus, m Mode) uint16 {
	switch m {
	case ZeroPage:
		return uint16(b.Read(r.PC + 1))
	case ZeroPageX:
		return uint16(b.Read(r.PC+1) + r.X)
	case ZeroPageY:
		return uint16(b.Read(r.PC+1) + r.Y)
	case Absolute:
		return b.Read16(r.PC + 1)
	case AbsoluteX:
		return b.Read16(r.PC+1) + uint16(r.X)
	case AbsoluteY:
		return b.Read16(r.PC+1) + uint16(r.Y)
	case IndirectX:
		zp := b.Read(r.PC+1) + r.X
		lo := b.Read(uint16(zp))
		hi := b.Read(uint16(zp + 1))
		return uint16(lo) | uint16(hi)<<8
	case IndirectY:
		zp := b.Read(r.PC + 1)
		lo := b.Read(uint16(zp))
		hi := b.Read(uint16(zp + 1))
		base := uint16(lo) | uint16(hi)<<8
		return base + uint16(r.Y)
	case Relative:
		return r.PC + 2 + uint16(int8(b.Read(r.PC+1)))
	default:
		return 0
	}
}

// branchTarget returns the PC that a taken branch instruction lands on,
// relative to the byte immediately after the two-byte branch instruction.
func branchTarget(r *Registers, b *Bus) uint16 {
	return effectiveAddress(r, b, Relative)
}

// indirectJMPTarget reads the 16-bit JMP target through an indirect
// pointer, reproducing the NMOS page-wrap bug: the high byte is fetched
// from (pointer & 0xFF00) | ((pointer+1) & 0x00FF), never crossing into
// the next page even when the pointer sits at a page boundary.
func indirectJMPTarget(ptr uint16, b *Bus) uint16 {
	lo := b.Read(ptr)
	hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
	hi := b.Read(hiAddr)
	return uint16(lo) | uint16(hi)<<8
}

// MIT License · 09/2023

package m6502

import "fmt"

// Registers is the 6502 architectural register file: PC, A, X, Y, SP and
// six independent status flags. The B ("break") flag has no storage of its
// own — it exists only in the packed status byte produced by ReadFlags,
// set to 1 whenever the software pushes it (BRK, PHP).
type Registers struct {
	PC uint16
	A  byte
	X  byte
	Y  byte
	SP byte

	C bool // Carry
	Z bool // Zero
	I bool // Interrupt disable
	D bool // Decimal (stored, never alters ADC/SBC)
	V bool // Overflow
	N bool // Negative
}

// NewRegisters returns a Registers value with every field zeroed, matching
// the reset state.
func NewRegisters() *Registers {
	r := &Registers{}
	r.Reset()
	return r
}

// Reset zeroes every field.
func (r *Registers) Reset() {
	*r = Registers{}
}

// StackAddress returns the true memory address of the stack pointer:
// 0x0100 | SP.
func (r *Registers) StackAddress() uint16 {
	return 0x0100 | uint16(r.SP)
}

// ReadFlags packs the six status flags plus the given B bit into a single
// byte, low bit first: C, Z, I, D, B, 1, V, N. Bit 5 is always 1.
func (r *Registers) ReadFlags(brk bool) byte {
	var p byte
	if r.C {
		p |= 1 << 0
	}
	if r.Z {
		p |= 1 << 1
	}
	if r.I {
		p |= 1 << 2
	}
	if r.D {
		p |= 1 << 3
	}
	if brk {
		p |= 1 << 4
	}
	p |= 1 << 5
	if r.V {
		p |= 1 << 6
	}
	if r.N {
		p |= 1 << 7
	}
	return p
}

// WriteFlags unpacks C, Z, I, D, V, N from p (bits 0,1,2,3,6,7). Bits 4
// (B) and 5 are ignored, matching PLP/RTI semantics: the break flag and
// the constant-1 bit are never restored into real state.
func (r *Registers) WriteFlags(p byte) {
	r.C = p&(1<<0) != 0
	r.Z = p&(1<<1) != 0
	r.I = p&(1<<2) != 0
	r.D = p&(1<<3) != 0
	r.V = p&(1<<6) != 0
	r.N = p&(1<<7) != 0
}

// setNZ sets Z and N from v and returns v unchanged, letting callers chain
// it directly around the value being stored.
func (r *Registers) setNZ(v byte) byte {
	r.Z = v == 0
	r.N = v&0x80 != 0
	return v
}

// String renders a compact register/flag dump, e.g. "PC=C000 A=00 X=00
// Y=00 SP=FD N-----C" for N and C set (flags in NV-DIZC order, '-' when
// clear). It is a debugging convenience only — the
// core never calls it and it has no effect on emulation.
func (r *Registers) String() string {
	flag := func(set bool, ch byte) byte {
		if set {
			return ch
		}
		return '-'
	}
	return fmt.Sprintf(
		"PC=%04X A=%02X X=%02X Y=%02X SP=%02X %c%c-%c%c%c%c",
		r.PC, r.A, r.X, r.Y, r.SP,
		flag(r.N, 'N'), flag(r.V, 'V'),
		flag(r.D, 'D'), flag(r.I, 'I'), flag(r.Z, 'Z'), flag(r.C, 'C'),
	)
}

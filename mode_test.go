package m6502

import "testing"

func TestEffectiveAddressZeroPageWrapsWithinPageZero(t *testing.T) {
	b := NewBus()
	r := NewRegisters()
	r.PC = 0x0200
	r.X = 0x05
	b.Poke(0x0201, 0xFF) // base zp operand 0xFF, +X wraps to 0x04

	if got, want := effectiveAddress(r, b, ZeroPageX), uint16(0x0004); got != want {
		t.Fatalf("ZeroPageX EA = %04X, want %04X", got, want)
	}
}

func TestEffectiveAddressAbsoluteXWrapsFullSpace(t *testing.T) {
	b := NewBus()
	r := NewRegisters()
	r.PC = 0x0200
	r.X = 0x10
	b.Write16(0x0201, 0xFFF8)

	if got, want := effectiveAddress(r, b, AbsoluteX), uint16(0x0008); got != want {
		t.Fatalf("AbsoluteX EA = %04X, want %04X (16-bit wrap)", got, want)
	}
}

func TestIndirectXPointerWrapsWithinZeroPage(t *testing.T) {
	b := NewBus()
	r := NewRegisters()
	r.PC = 0x0200
	r.X = 0x01
	b.Poke(0x0201, 0xFF) // zp operand 0xFF, +X=1 wraps to 0x00
	b.Poke(0x0000, 0x34)
	b.Poke(0x0001, 0x12)

	if got, want := effectiveAddress(r, b, IndirectX), uint16(0x1234); got != want {
		t.Fatalf("IndirectX EA = %04X, want %04X", got, want)
	}
}

func TestIndirectYBaseThenAddsY(t *testing.T) {
	b := NewBus()
	r := NewRegisters()
	r.PC = 0x0200
	r.Y = 0x10
	b.Poke(0x0201, 0x80)
	b.Poke(0x0080, 0x00)
	b.Poke(0x0081, 0x20)

	if got, want := effectiveAddress(r, b, IndirectY), uint16(0x2010); got != want {
		t.Fatalf("IndirectY EA = %04X, want %04X", got, want)
	}
}

func TestIndirectYPointerWrapsWithinZeroPage(t *testing.T) {
	b := NewBus()
	r := NewRegisters()
	r.PC = 0x0200
	r.Y = 0x01
	b.Poke(0x0201, 0xFF) // pointer low at 0xFF, high wraps to 0x00
	b.Poke(0x00FF, 0x00)
	b.Poke(0x0000, 0x30)

	if got, want := effectiveAddress(r, b, IndirectY), uint16(0x3001); got != want {
		t.Fatalf("IndirectY EA = %04X, want %04X", got, want)
	}
}

func TestRelativeTargetIsSignedFromByteAfterBranch(t *testing.T) {
	b := NewBus()
	r := NewRegisters()
	r.PC = 0x0200
	b.Poke(0x0201, 0xFE) // -2: lands back on the branch opcode itself

	if got, want := effectiveAddress(r, b, Relative), uint16(0x0200); got != want {
		t.Fatalf("Relative target = %04X, want %04X", got, want)
	}
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	b := NewBus()
	b.Poke(0x20FF, 0x34)
	b.Poke(0x2100, 0x56) // would be the high byte on CMOS silicon
	b.Poke(0x2000, 0x12) // the NMOS bug reads this instead

	got := indirectJMPTarget(0x20FF, b)
	if want := uint16(0x1234); got != want {
		t.Fatalf("indirectJMPTarget(0x20FF) = %04X, want %04X (NMOS page-wrap bug)", got, want)
	}
}

package m6502

import "testing"

type testDevice struct {
	readVal    byte
	reads      int
	writes     int
	lastWAddr  uint16
	lastWValue byte
}

func (d *testDevice) Read(addr uint16) byte {
	d.reads++
	return d.readVal
}

func (d *testDevice) Write(addr uint16, v byte) {
	d.writes++
	d.lastWAddr, d.lastWValue = addr, v
}

func TestBusDeviceReadDispatch(t *testing.T) {
	b := NewBus()
	dev := &testDevice{readVal: 0xAB}
	b.Map(0xC0, dev)

	if got := b.Read(0xC000); got != 0xAB {
		t.Fatalf("Read(0xC000) = %02X, want AB", got)
	}
	if got := b.Read(0xC0FF); got != 0xAB {
		t.Fatalf("Read(0xC0FF) = %02X, want AB", got)
	}
	if dev.reads != 2 {
		t.Fatalf("reads = %d, want 2", dev.reads)
	}
}

func TestBusDeviceWriteDispatch(t *testing.T) {
	b := NewBus()
	dev := &testDevice{}
	b.Map(0xC0, dev)

	b.Write(0xC010, 0x77)
	if dev.writes != 1 || dev.lastWAddr != 0xC010 || dev.lastWValue != 0x77 {
		t.Fatalf("unexpected device state: %+v", dev)
	}
}

func TestBusUnmappedPagesUseRAM(t *testing.T) {
	b := NewBus()
	dev := &testDevice{}
	b.Map(0xC0, dev)

	b.Write(0x0050, 0xEE)
	if got := b.Read(0x0050); got != 0xEE {
		t.Fatalf("Read(0x0050) = %02X, want EE", got)
	}
	if dev.reads != 0 || dev.writes != 0 {
		t.Fatalf("unmapped page touched device: %+v", dev)
	}
}

func TestBusMapRange(t *testing.T) {
	b := NewBus()
	dev := &testDevice{readVal: 0x99}
	b.MapRange(0xC0, 0xCF, dev)

	if got := b.Read(0xC000); got != 0x99 {
		t.Fatalf("Read(0xC000) = %02X, want 99", got)
	}
	if got := b.Read(0xCF00); got != 0x99 {
		t.Fatalf("Read(0xCF00) = %02X, want 99", got)
	}
	b.Poke(0xBF00, 0x11)
	if got := b.Read(0xBF00); got != 0x11 {
		t.Fatalf("page below range leaked to device: Read(0xBF00) = %02X", got)
	}
}

func TestBusPeekPokeBypassDevice(t *testing.T) {
	b := NewBus()
	dev := &testDevice{readVal: 0xAB}
	b.Map(0xC0, dev)

	b.Poke(0xC000, 0x55)
	if got := b.Peek(0xC000); got != 0x55 {
		t.Fatalf("Peek(0xC000) = %02X, want 55", got)
	}
	if dev.reads != 0 || dev.writes != 0 {
		t.Fatalf("Peek/Poke touched device: %+v", dev)
	}
	if got := b.Read(0xC000); got != 0xAB {
		t.Fatalf("Read(0xC000) = %02X, want AB (still routed through device)", got)
	}
}

func TestBusRead16Write16Wrap(t *testing.T) {
	b := NewBus()
	b.Write16(0xFFFF, 0xCAFE)
	if got := b.Read(0xFFFF); got != 0xFE {
		t.Fatalf("low byte at 0xFFFF = %02X, want FE", got)
	}
	if got := b.Read(0x0000); got != 0xCA {
		t.Fatalf("high byte wrapped to 0x0000 = %02X, want CA", got)
	}
	if got := b.Read16(0xFFFF); got != 0xCAFE {
		t.Fatalf("Read16(0xFFFF) = %04X, want CAFE", got)
	}
}

func TestBusReset(t *testing.T) {
	b := NewBus()
	dev := &testDevice{}
	b.Map(0xC0, dev)
	b.Poke(0x10, 0xFF)

	b.Reset()

	if got := b.Peek(0x10); got != 0x00 {
		t.Fatalf("RAM not cleared by Reset: %02X", got)
	}
	b.Write(0xC000, 0x01)
	if dev.writes != 0 {
		t.Fatalf("device mapping survived Reset")
	}
}

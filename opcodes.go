// MIT License · 09/2023

package m6502

// Opcode is a (mnemonic, byte, addressing mode) triple: one entry of the
// canonical NMOS 6502 ISA.
type Opcode struct {
	Mnemonic Mnemonic
	Byte     byte
	Mode     Mode
}

// opcodeTable enumerates all 151 documented opcodes. Byte values are the
// canonical ones (see masswerk.at/6502); grouping mirrors the 16x16 opcode
// matrix, one row per addressing-mode family.
var opcodeTable = [...]Opcode{
	// Implied / single-byte, plus JSR (absolute).
	{BRK, 0x00, Implied},
	{JSR, 0x20, Absolute},
	{RTI, 0x40, Implied},
	{RTS, 0x60, Implied},
	{PHP, 0x08, Implied},
	{PLP, 0x28, Implied},
	{PHA, 0x48, Implied},
	{PLA, 0x68, Implied},
	{DEY, 0x88, Implied},
	{TAY, 0xA8, Implied},
	{INY, 0xC8, Implied},
	{INX, 0xE8, Implied},
	{TXA, 0x8A, Implied},
	{TAX, 0xAA, Implied},
	{DEX, 0xCA, Implied},
	{NOP, 0xEA, Implied},
	{CLC, 0x18, Implied},
	{SEC, 0x38, Implied},
	{CLI, 0x58, Implied},
	{SEI, 0x78, Implied},
	{TYA, 0x98, Implied},
	{CLV, 0xB8, Implied},
	{CLD, 0xD8, Implied},
	{SED, 0xF8, Implied},
	{TXS, 0x9A, Implied},
	{TSX, 0xBA, Implied},

	// Relative (branches).
	{BPL, 0x10, Relative},
	{BMI, 0x30, Relative},
	{BVC, 0x50, Relative},
	{BVS, 0x70, Relative},
	{BCC, 0x90, Relative},
	{BCS, 0xB0, Relative},
	{BNE, 0xD0, Relative},
	{BEQ, 0xF0, Relative},

	// Immediate.
	{LDY, 0xA0, Immediate},
	{CPY, 0xC0, Immediate},
	{CPX, 0xE0, Immediate},
	{ORA, 0x09, Immediate},
	{AND, 0x29, Immediate},
	{EOR, 0x49, Immediate},
	{ADC, 0x69, Immediate},
	{LDA, 0xA9, Immediate},
	{CMP, 0xC9, Immediate},
	{SBC, 0xE9, Immediate},
	{LDX, 0xA2, Immediate},

	// (Indirect,X).
	{ORA, 0x01, IndirectX},
	{AND, 0x21, IndirectX},
	{EOR, 0x41, IndirectX},
	{ADC, 0x61, IndirectX},
	{STA, 0x81, IndirectX},
	{LDA, 0xA1, IndirectX},
	{CMP, 0xC1, IndirectX},
	{SBC, 0xE1, IndirectX},

	// (Indirect),Y.
	{ORA, 0x11, IndirectY},
	{AND, 0x31, IndirectY},
	{EOR, 0x51, IndirectY},
	{ADC, 0x71, IndirectY},
	{STA, 0x91, IndirectY},
	{LDA, 0xB1, IndirectY},
	{CMP, 0xD1, IndirectY},
	{SBC, 0xF1, IndirectY},

	// Zero page.
	{BIT, 0x24, ZeroPage},
	{STY, 0x84, ZeroPage},
	{LDY, 0xA4, ZeroPage},
	{CPY, 0xC4, ZeroPage},
	{CPX, 0xE4, ZeroPage},
	{ORA, 0x05, ZeroPage},
	{AND, 0x25, ZeroPage},
	{EOR, 0x45, ZeroPage},
	{ADC, 0x65, ZeroPage},
	{STA, 0x85, ZeroPage},
	{LDA, 0xA5, ZeroPage},
	{CMP, 0xC5, ZeroPage},
	{SBC, 0xE5, ZeroPage},
	{ASL, 0x06, ZeroPage},
	{ROL, 0x26, ZeroPage},
	{LSR, 0x46, ZeroPage},
	{ROR, 0x66, ZeroPage},
	{STX, 0x86, ZeroPage},
	{LDX, 0xA6, ZeroPage},
	{DEC, 0xC6, ZeroPage},
	{INC, 0xE6, ZeroPage},

	// Zero page, X.
	{STY, 0x94, ZeroPageX},
	{LDY, 0xB4, ZeroPageX},
	{ORA, 0x15, ZeroPageX},
	{AND, 0x35, ZeroPageX},
	{EOR, 0x55, ZeroPageX},
	{ADC, 0x75, ZeroPageX},
	{STA, 0x95, ZeroPageX},
	{LDA, 0xB5, ZeroPageX},
	{CMP, 0xD5, ZeroPageX},
	{SBC, 0xF5, ZeroPageX},
	{ASL, 0x16, ZeroPageX},
	{ROL, 0x36, ZeroPageX},
	{LSR, 0x56, ZeroPageX},
	{ROR, 0x76, ZeroPageX},
	{DEC, 0xD6, ZeroPageX},
	{INC, 0xF6, ZeroPageX},

	// Zero page, Y.
	{STX, 0x96, ZeroPageY},
	{LDX, 0xB6, ZeroPageY},

	// Absolute.
	{BIT, 0x2C, Absolute},
	{JMP, 0x4C, Absolute},
	{STY, 0x8C, Absolute},
	{LDY, 0xAC, Absolute},
	{CPY, 0xCC, Absolute},
	{CPX, 0xEC, Absolute},
	{ORA, 0x0D, Absolute},
	{AND, 0x2D, Absolute},
	{EOR, 0x4D, Absolute},
	{ADC, 0x6D, Absolute},
	{STA, 0x8D, Absolute},
	{LDA, 0xAD, Absolute},
	{CMP, 0xCD, Absolute},
	{SBC, 0xED, Absolute},
	{ASL, 0x0E, Absolute},
	{ROL, 0x2E, Absolute},
	{LSR, 0x4E, Absolute},
	{ROR, 0x6E, Absolute},
	{STX, 0x8E, Absolute},
	{LDX, 0xAE, Absolute},
	{DEC, 0xCE, Absolute},
	{INC, 0xEE, Absolute},

	// Indirect (JMP only).
	{JMP, 0x6C, Indirect},

	// Absolute, X.
	{ORA, 0x1D, AbsoluteX},
	{AND, 0x3D, AbsoluteX},
	{EOR, 0x5D, AbsoluteX},
	{ADC, 0x7D, AbsoluteX},
	{STA, 0x9D, AbsoluteX},
	{LDA, 0xBD, AbsoluteX},
	{CMP, 0xDD, AbsoluteX},
	{SBC, 0xFD, AbsoluteX},
	{ASL, 0x1E, AbsoluteX},
	{ROL, 0x3E, AbsoluteX},
	{LSR, 0x5E, AbsoluteX},
	{ROR, 0x7E, AbsoluteX},
	{DEC, 0xDE, AbsoluteX},
	{INC, 0xFE, AbsoluteX},
	{LDY, 0xBC, AbsoluteX},

	// Absolute, Y.
	{ORA, 0x19, AbsoluteY},
	{AND, 0x39, AbsoluteY},
	{EOR, 0x59, AbsoluteY},
	{ADC, 0x79, AbsoluteY},
	{STA, 0x99, AbsoluteY},
	{LDA, 0xB9, AbsoluteY},
	{CMP, 0xD9, AbsoluteY},
	{SBC, 0xF9, AbsoluteY},
	{LDX, 0xBE, AbsoluteY},

	// Accumulator.
	{ASL, 0x0A, Accumulator},
	{ROL, 0x2A, Accumulator},
	{LSR, 0x4A, Accumulator},
	{ROR, 0x6A, Accumulator},
}

var (
	decodeTable [256]*Opcode
	encodeTable map[Mnemonic]map[Mode]byte
)

func init() {
	encodeTable = make(map[Mnemonic]map[Mode]byte, numMnemonics)
	for i := range opcodeTable {
		op := &opcodeTable[i]
		decodeTable[op.Byte] = op
		if encodeTable[op.Mnemonic] == nil {
			encodeTable[op.Mnemonic] = make(map[Mode]byte, 1)
		}
		encodeTable[op.Mnemonic][op.Mode] = op.Byte
	}
}

// Decode maps an opcode byte to its (mnemonic, mode) record. The second
// return value is false for any byte not in the documented table — an
// undocumented opcode.
func Decode(code byte) (Opcode, bool) {
	if op := decodeTable[code]; op != nil {
		return *op, true
	}
	return Opcode{}, false
}

// Encode maps a (mnemonic, mode) pair to its opcode byte, as used by the
// assembler. The second return value is false if the pair names no
// documented opcode.
func Encode(m Mnemonic, mode Mode) (byte, bool) {
	if byMode, ok := encodeTable[m]; ok {
		if b, ok := byMode[mode]; ok {
			return b, true
		}
	}
	return 0, false
}

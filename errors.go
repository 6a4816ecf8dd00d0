// MIT License · 09/2023

package m6502

import "github.com/pkg/errors"

// ErrUndefinedOpcode is returned by Step when the fetched byte does not
// name any documented opcode. Decoding an undocumented byte is a fatal
// condition: the emulator does not invent semantics for it.
var ErrUndefinedOpcode = errors.New("m6502: undefined opcode")

// ErrUndefinedEncoding is returned by the Assembler's Emit and EmitRef
// when the requested (mnemonic, mode) pair names no documented opcode
// (Encode itself reports that case by returning false).
var ErrUndefinedEncoding = errors.New("m6502: undefined (mnemonic, mode) encoding")

func undefinedOpcodeAt(pc uint16, code byte) error {
	return errors.Wrapf(ErrUndefinedOpcode, "at PC=%04X: byte %02X", pc, code)
}

func undefinedEncodingFor(m Mnemonic, mode Mode) error {
	return errors.Wrapf(ErrUndefinedEncoding, "%s %s", m, mode)
}

// unknownLabelError builds an error naming a label that is referenced but
// never defined. No function in this package returns it; the Assembler
// reports such names through Pending instead.
func unknownLabelError(name string) error {
	return errors.Errorf("m6502: assembler: undefined label %q", name)
}

package cpu

import "fmt"

// Disassemble formats the instruction at addr and returns it together with
// the address of the next instruction. Bytes with no handler come out as
// a .DB directive. Only the bytes of the instruction are read.
func Disassemble(mem ReadWriter, addr uint16) (string, uint16) {
	opcode := mem.Read8(addr)
	in, ok := Lookup(opcode)
	if !ok {
		return fmt.Sprintf(".DB $%02X", opcode), addr + 1
	}

	var operand [2]uint8
	for i := uint16(0); i < in.Mode.Size(); i++ {
		operand[i] = mem.Read8(addr + 1 + i)
	}
	return FormatInstruction(in, addr, operand), addr + in.Size()
}

// FormatInstruction renders in with its operand bytes in assembler syntax.
// pc is the address of the opcode; branch targets are shown relative to it
// as absolute addresses.
func FormatInstruction(in Instruction, pc uint16, operand [2]uint8) string {
	lo := operand[0]
	word := uint16(lo) | uint16(operand[1])<<8

	switch in.Mode {
	case ModeACC:
		return in.Name + " A"
	case ModeIMM:
		return fmt.Sprintf("%s #$%02X", in.Name, lo)
	case ModeZP:
		return fmt.Sprintf("%s $%02X", in.Name, lo)
	case ModeZPX:
		return fmt.Sprintf("%s $%02X,X", in.Name, lo)
	case ModeZPY:
		return fmt.Sprintf("%s $%02X,Y", in.Name, lo)
	case ModeABS:
		return fmt.Sprintf("%s $%04X", in.Name, word)
	case ModeABSX:
		return fmt.Sprintf("%s $%04X,X", in.Name, word)
	case ModeABSY:
		return fmt.Sprintf("%s $%04X,Y", in.Name, word)
	case ModeIND:
		return fmt.Sprintf("%s ($%04X)", in.Name, word)
	case ModeINDX:
		return fmt.Sprintf("%s ($%02X,X)", in.Name, lo)
	case ModeINDY:
		return fmt.Sprintf("%s ($%02X),Y", in.Name, lo)
	case ModeREL:
		return fmt.Sprintf("%s $%04X", in.Name, pc+in.Size()+uint16(int8(lo)))
	}
	return in.Name
}

// DisassembleRange disassembles n instructions starting at addr.
func DisassembleRange(mem ReadWriter, addr uint16, n int) []Line {
	lines := make([]Line, 0, n)
	for i := 0; i < n; i++ {
		text, next := Disassemble(mem, addr)
		lines = append(lines, Line{Addr: addr, Size: next - addr, Text: text})
		addr = next
	}
	return lines
}

// Line is one disassembled instruction.
type Line struct {
	Addr uint16
	Size uint16
	Text string
}

package cpu

// Mode is an addressing mode: how an instruction finds its operand.
type Mode uint8

const (
	// Implied
	// Operand is implicit.
	// Example: CLC (Clear Carry Flag)
	ModeIMP Mode = iota + 1

	// Accumulator
	// Operand is the accumulator.
	// Example: LSR A (Logical Shift Right on Accumulator)
	ModeACC

	// Immediate
	// Operand is the byte following the opcode.
	// Example: LDA #$10 (Load Accumulator with $10)
	ModeIMM

	// Zero Page
	// Operand is located in the first 256 bytes of memory.
	// Example: LDA $10 (Load Accumulator from address $0010)
	ModeZP

	// Zero Page, X
	// Zero page address plus X, wrapping inside the zero page.
	// Example: LDA $10,X
	ModeZPX

	// Zero Page, Y
	// Zero page address plus Y, wrapping inside the zero page.
	// Example: LDX $10,Y
	ModeZPY

	// Absolute
	// Full 16-bit address.
	// Example: LDA $1234
	ModeABS

	// Absolute, X
	// Full 16-bit address plus X. Crossing a page may cost a cycle.
	// Example: LDA $1234,X
	ModeABSX

	// Absolute, Y
	// Full 16-bit address plus Y. Crossing a page may cost a cycle.
	// Example: LDA $1234,Y
	ModeABSY

	// Indirect
	// Address is fetched from a pointer. Only JMP uses it, including
	// the hardware bug: a pointer at $xxFF takes its high byte from $xx00.
	// Example: JMP ($1234)
	ModeIND

	// Indexed Indirect (X)
	// Pointer is in zero page at operand + X.
	// Example: LDA ($10,X)
	ModeINDX

	// Indirect Indexed (Y)
	// Pointer is in zero page at operand, Y is added to the pointer.
	// Example: LDA ($10),Y
	ModeINDY

	// Relative
	// Signed 8-bit offset from the address following the branch.
	// Example: BNE $10
	ModeREL
)

func (mode Mode) String() string {
	switch mode {
	case ModeIMP:
		return "IMP"
	case ModeACC:
		return "ACC"
	case ModeIMM:
		return "IMM"
	case ModeZP:
		return "ZP"
	case ModeZPX:
		return "ZPX"
	case ModeZPY:
		return "ZPY"
	case ModeABS:
		return "ABS"
	case ModeABSX:
		return "ABSX"
	case ModeABSY:
		return "ABSY"
	case ModeIND:
		return "IND"
	case ModeINDX:
		return "INDX"
	case ModeINDY:
		return "INDY"
	case ModeREL:
		return "REL"
	}
	return "???"
}

// Size returns the number of operand bytes following the opcode.
func (mode Mode) Size() uint16 {
	switch mode {
	case ModeIMM, ModeZP, ModeZPX, ModeZPY, ModeINDX, ModeINDY, ModeREL:
		return 1
	case ModeABS, ModeABSX, ModeABSY, ModeIND:
		return 2
	}
	return 0
}

// operand is the resolved location of an instruction's operand.
type operand struct {
	mode        Mode
	addr        uint16 // effective address, branch target for ModeREL
	base        uint16 // address before indexing
	value       uint8  // ModeIMM only
	pageCrossed bool
}

func isDiffPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

// resolve computes the operand location for mode and advances PC past the
// operand bytes.
func (c *CPU) resolve(mode Mode) operand {
	op := operand{mode: mode}

	switch mode {
	case ModeIMP, ModeACC:

	case ModeIMM:
		op.addr = c.reg.PC
		op.value = c.fetch8()

	case ModeZP:
		op.addr = uint16(c.fetch8())
		op.base = op.addr

	case ModeZPX:
		zp := c.fetch8()
		op.base = uint16(zp)
		op.addr = uint16(zp + c.reg.X)

	case ModeZPY:
		zp := c.fetch8()
		op.base = uint16(zp)
		op.addr = uint16(zp + c.reg.Y)

	case ModeABS:
		op.addr = c.fetch16()
		op.base = op.addr

	case ModeABSX:
		op.base = c.fetch16()
		op.addr = op.base + uint16(c.reg.X)
		op.pageCrossed = isDiffPage(op.base, op.addr)

	case ModeABSY:
		op.base = c.fetch16()
		op.addr = op.base + uint16(c.reg.Y)
		op.pageCrossed = isDiffPage(op.base, op.addr)

	case ModeIND:
		op.base = c.fetch16()
		op.addr = c.read16Page(op.base)

	case ModeINDX:
		zp := c.fetch8() + c.reg.X
		op.base = uint16(zp)
		op.addr = c.read16Page(uint16(zp))

	case ModeINDY:
		zp := c.fetch8()
		op.base = c.read16Page(uint16(zp))
		op.addr = op.base + uint16(c.reg.Y)
		op.pageCrossed = isDiffPage(op.base, op.addr)

	case ModeREL:
		offset := int8(c.fetch8())
		op.base = c.reg.PC
		op.addr = c.reg.PC + uint16(offset)
		op.pageCrossed = isDiffPage(op.base, op.addr)
	}

	return op
}

// load reads the operand value.
func (c *CPU) load(op operand) uint8 {
	switch op.mode {
	case ModeACC:
		return c.reg.A
	case ModeIMM:
		return op.value
	case ModeIMP:
		return 0
	}
	return c.read8(op.addr)
}

// store writes the result back to where the operand came from.
func (c *CPU) store(op operand, v uint8) {
	if op.mode == ModeACC {
		c.reg.A = v
		return
	}
	c.write8(op.addr, v)
}

// pagePenalty charges the extra cycle read instructions pay when indexing
// crosses a page.
func (c *CPU) pagePenalty(op operand) {
	if op.pageCrossed {
		c.extra++
	}
}

package cpu

// The stack is located in the fixed memory page $0100 to $01FF.
const stackStartAddr = uint16(0x100)

// StackPolicy decides what happens when the stack pointer would wrap.
type StackPolicy uint8

const (
	// StackWrap lets the 8-bit stack pointer wrap silently, like the
	// hardware does.
	StackWrap StackPolicy = iota

	// StackStrict refuses a push at SP=$00 and a pop at SP=$FF. The
	// instruction faults before touching memory and the CPU halts.
	StackStrict
)

func (p StackPolicy) String() string {
	switch p {
	case StackWrap:
		return "wrap"
	case StackStrict:
		return "strict"
	}
	return "???"
}

// stackCanPush reports whether n bytes fit on the stack. Under StackWrap
// they always do.
func (c *CPU) stackCanPush(n int) bool {
	if c.stackPolicy != StackStrict || int(c.reg.SP) >= n {
		return true
	}
	c.fail(&StackError{Op: "push", SP: c.reg.SP, PC: c.instrPC, Err: ErrStackOverflow})
	return false
}

// stackCanPop reports whether n bytes can be pulled from the stack.
func (c *CPU) stackCanPop(n int) bool {
	if c.stackPolicy != StackStrict || int(c.reg.SP)+n <= 0xff {
		return true
	}
	c.fail(&StackError{Op: "pop", SP: c.reg.SP, PC: c.instrPC, Err: ErrStackUnderflow})
	return false
}

func (c *CPU) stackPush8(data uint8) {
	if !c.stackCanPush(1) {
		return
	}
	c.write8(stackStartAddr|uint16(c.reg.SP), data)
	c.reg.SP--
}

func (c *CPU) stackPop8() uint8 {
	if !c.stackCanPop(1) {
		return 0
	}
	c.reg.SP++
	return c.read8(stackStartAddr | uint16(c.reg.SP))
}

// stackPeek8 returns the byte the next pop would return.
func (c *CPU) stackPeek8() uint8 {
	return c.read8(stackStartAddr | uint16(c.reg.SP+1))
}

func (c *CPU) stackPush16(data uint16) {
	if !c.stackCanPush(2) {
		return
	}
	c.stackPush8(uint8(data >> 8))
	c.stackPush8(uint8(data))
}

func (c *CPU) stackPop16() uint16 {
	if !c.stackCanPop(2) {
		return 0
	}
	lo := uint16(c.stackPop8())
	hi := uint16(c.stackPop8())
	return lo | hi<<8
}

// Push pushes a byte onto the stack outside of instruction execution.
// A refused push does not halt the CPU.
func (c *CPU) Push(data uint8) error {
	c.instrPC = c.reg.PC
	c.stackPush8(data)
	return c.takeFault()
}

// Pop pulls a byte from the stack outside of instruction execution.
func (c *CPU) Pop() (uint8, error) {
	c.instrPC = c.reg.PC
	v := c.stackPop8()
	return v, c.takeFault()
}

// Peek returns the byte on top of the stack without pulling it.
func (c *CPU) Peek() uint8 {
	return c.stackPeek8()
}

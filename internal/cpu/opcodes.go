package cpu

// addWithCarry computes A + m + C into A. SBC feeds it the complement of
// its operand. Decimal mode is not emulated: D is stored but ignored.
func (c *CPU) addWithCarry(m uint8) {
	r16 := uint16(c.reg.A) + uint16(m)
	if c.reg.Flag(FlagC) {
		r16++
	}
	r8 := uint8(r16)
	c.reg.SetFlag(FlagC, r16 > 0xff)
	c.reg.SetFlag(FlagV, (r8^c.reg.A)&(r8^m)&0x80 != 0)
	c.reg.A = r8
	c.reg.setZN(r8)
}

func (c *CPU) compare(reg, m uint8) {
	c.reg.SetFlag(FlagC, reg >= m)
	c.reg.setZN(reg - m)
}

func (c *CPU) shiftLeft(v uint8, carryIn bool) uint8 {
	c.reg.SetFlag(FlagC, v&0x80 != 0)
	v <<= 1
	if carryIn {
		v |= 0x01
	}
	c.reg.setZN(v)
	return v
}

func (c *CPU) shiftRight(v uint8, carryIn bool) uint8 {
	c.reg.SetFlag(FlagC, v&0x01 != 0)
	v >>= 1
	if carryIn {
		v |= 0x80
	}
	c.reg.setZN(v)
	return v
}

// jmpIf takes a branch. A taken branch costs one cycle, landing on another
// page costs one more.
func (c *CPU) jmpIf(condition bool, op operand) {
	if !condition {
		return
	}
	c.extra++
	if op.pageCrossed {
		c.extra++
	}
	c.reg.PC = op.addr
}

// Add with Carry
// A = A + M + C
//
// Flags affected: N, Z, C, V
func (c *CPU) adc(op operand) {
	c.addWithCarry(c.load(op))
	c.pagePenalty(op)
}

// Logical AND
// A = A & M
//
// Flags affected: N, Z
func (c *CPU) and(op operand) {
	c.reg.A &= c.load(op)
	c.reg.setZN(c.reg.A)
	c.pagePenalty(op)
}

// Arithmetic Shift Left
// M = M << 1, bit 7 goes to C
//
// Flags affected: N, Z, C
func (c *CPU) asl(op operand) {
	c.store(op, c.shiftLeft(c.load(op), false))
}

// Branch if Carry Clear
func (c *CPU) bcc(op operand) {
	c.jmpIf(!c.reg.Flag(FlagC), op)
}

// Branch if Carry Set
func (c *CPU) bcs(op operand) {
	c.jmpIf(c.reg.Flag(FlagC), op)
}

// Branch if Equal
func (c *CPU) beq(op operand) {
	c.jmpIf(c.reg.Flag(FlagZ), op)
}

// Bit Test
// Z = A & M == 0, N = M bit 7, V = M bit 6
func (c *CPU) bit(op operand) {
	m := c.load(op)
	c.reg.SetFlag(FlagZ, c.reg.A&m == 0)
	c.reg.SetFlag(FlagN, m&0x80 != 0)
	c.reg.SetFlag(FlagV, m&0x40 != 0)
}

// Branch if Minus
func (c *CPU) bmi(op operand) {
	c.jmpIf(c.reg.Flag(FlagN), op)
}

// Branch if Not Equal
func (c *CPU) bne(op operand) {
	c.jmpIf(!c.reg.Flag(FlagZ), op)
}

// Branch if Positive
func (c *CPU) bpl(op operand) {
	c.jmpIf(!c.reg.Flag(FlagN), op)
}

// Force Interrupt
// The byte after BRK is padding: the return address skips it.
func (c *CPU) brk(op operand) {
	if !c.stackCanPush(3) {
		return
	}
	c.stackPush16(c.reg.PC + 1)
	c.stackPush8(c.reg.P | uint8(FlagB|FlagU))
	c.reg.SetFlag(FlagI, true)
	c.reg.PC = c.read16(vectorIRQ)
}

// Branch if Overflow Clear
func (c *CPU) bvc(op operand) {
	c.jmpIf(!c.reg.Flag(FlagV), op)
}

// Branch if Overflow Set
func (c *CPU) bvs(op operand) {
	c.jmpIf(c.reg.Flag(FlagV), op)
}

// Clear Carry Flag
func (c *CPU) clc(op operand) {
	c.reg.SetFlag(FlagC, false)
}

// Clear Decimal Mode
func (c *CPU) cld(op operand) {
	c.reg.SetFlag(FlagD, false)
}

// Clear Interrupt Disable
func (c *CPU) cli(op operand) {
	c.reg.SetFlag(FlagI, false)
}

// Clear Overflow Flag
func (c *CPU) clv(op operand) {
	c.reg.SetFlag(FlagV, false)
}

// Compare
// Z = A == M, C = A >= M, N = (A - M) bit 7
func (c *CPU) cmp(op operand) {
	c.compare(c.reg.A, c.load(op))
	c.pagePenalty(op)
}

// Compare X Register
func (c *CPU) cpx(op operand) {
	c.compare(c.reg.X, c.load(op))
}

// Compare Y Register
func (c *CPU) cpy(op operand) {
	c.compare(c.reg.Y, c.load(op))
}

// Decrement Memory
func (c *CPU) dec(op operand) {
	v := c.load(op) - 1
	c.store(op, v)
	c.reg.setZN(v)
}

// Decrement X Register
func (c *CPU) dex(op operand) {
	c.reg.X--
	c.reg.setZN(c.reg.X)
}

// Decrement Y Register
func (c *CPU) dey(op operand) {
	c.reg.Y--
	c.reg.setZN(c.reg.Y)
}

// Exclusive OR
// A = A ^ M
//
// Flags affected: N, Z
func (c *CPU) eor(op operand) {
	c.reg.A ^= c.load(op)
	c.reg.setZN(c.reg.A)
	c.pagePenalty(op)
}

// Increment Memory
func (c *CPU) inc(op operand) {
	v := c.load(op) + 1
	c.store(op, v)
	c.reg.setZN(v)
}

// Increment X Register
func (c *CPU) inx(op operand) {
	c.reg.X++
	c.reg.setZN(c.reg.X)
}

// Increment Y Register
func (c *CPU) iny(op operand) {
	c.reg.Y++
	c.reg.setZN(c.reg.Y)
}

// Jump
func (c *CPU) jmp(op operand) {
	c.reg.PC = op.addr
}

// Jump to Subroutine
// Pushes the address of the last byte of the JSR instruction.
func (c *CPU) jsr(op operand) {
	c.stackPush16(c.reg.PC - 1)
	c.reg.PC = op.addr
}

// Load Accumulator
func (c *CPU) lda(op operand) {
	c.reg.A = c.load(op)
	c.reg.setZN(c.reg.A)
	c.pagePenalty(op)
}

// Load X Register
func (c *CPU) ldx(op operand) {
	c.reg.X = c.load(op)
	c.reg.setZN(c.reg.X)
	c.pagePenalty(op)
}

// Load Y Register
func (c *CPU) ldy(op operand) {
	c.reg.Y = c.load(op)
	c.reg.setZN(c.reg.Y)
	c.pagePenalty(op)
}

// Logical Shift Right
// M = M >> 1, bit 0 goes to C
//
// Flags affected: N, Z, C
func (c *CPU) lsr(op operand) {
	c.store(op, c.shiftRight(c.load(op), false))
}

// No Operation
// Unofficial variants read their operand and throw it away.
func (c *CPU) nop(op operand) {
	if op.mode != ModeIMP {
		_ = c.load(op)
	}
	c.pagePenalty(op)
}

// Logical Inclusive OR
// A = A | M
//
// Flags affected: N, Z
func (c *CPU) ora(op operand) {
	c.reg.A |= c.load(op)
	c.reg.setZN(c.reg.A)
	c.pagePenalty(op)
}

// Push Accumulator
func (c *CPU) pha(op operand) {
	c.stackPush8(c.reg.A)
}

// Push Processor Status
// B and U are always set in the pushed copy.
func (c *CPU) php(op operand) {
	c.stackPush8(c.reg.P | uint8(FlagB|FlagU))
}

// Pull Accumulator
func (c *CPU) pla(op operand) {
	c.reg.A = c.stackPop8()
	c.reg.setZN(c.reg.A)
}

// Pull Processor Status
// B only exists on the stack, it is dropped when pulled.
func (c *CPU) plp(op operand) {
	c.reg.P = c.stackPop8() &^ uint8(FlagB)
}

// Rotate Left
// M = M << 1 | C, bit 7 goes to C
//
// Flags affected: N, Z, C
func (c *CPU) rol(op operand) {
	c.store(op, c.shiftLeft(c.load(op), c.reg.Flag(FlagC)))
}

// Rotate Right
// M = M >> 1 | C << 7, bit 0 goes to C
//
// Flags affected: N, Z, C
func (c *CPU) ror(op operand) {
	c.store(op, c.shiftRight(c.load(op), c.reg.Flag(FlagC)))
}

// Return from Interrupt
func (c *CPU) rti(op operand) {
	if !c.stackCanPop(3) {
		return
	}
	c.reg.P = c.stackPop8() &^ uint8(FlagB)
	c.reg.PC = c.stackPop16()
}

// Return from Subroutine
func (c *CPU) rts(op operand) {
	c.reg.PC = c.stackPop16() + 1
}

// Subtract with Carry
// A = A - M - (1 - C)
//
// Flags affected: N, Z, C, V
func (c *CPU) sbc(op operand) {
	c.addWithCarry(^c.load(op))
	c.pagePenalty(op)
}

// Set Carry Flag
func (c *CPU) sec(op operand) {
	c.reg.SetFlag(FlagC, true)
}

// Set Decimal Flag
func (c *CPU) sed(op operand) {
	c.reg.SetFlag(FlagD, true)
}

// Set Interrupt Disable
func (c *CPU) sei(op operand) {
	c.reg.SetFlag(FlagI, true)
}

// Store Accumulator
func (c *CPU) sta(op operand) {
	c.store(op, c.reg.A)
}

// Store X Register
func (c *CPU) stx(op operand) {
	c.store(op, c.reg.X)
}

// Store Y Register
func (c *CPU) sty(op operand) {
	c.store(op, c.reg.Y)
}

// Transfer Accumulator to X
func (c *CPU) tax(op operand) {
	c.reg.X = c.reg.A
	c.reg.setZN(c.reg.X)
}

// Transfer Accumulator to Y
func (c *CPU) tay(op operand) {
	c.reg.Y = c.reg.A
	c.reg.setZN(c.reg.Y)
}

// Transfer Stack Pointer to X
func (c *CPU) tsx(op operand) {
	c.reg.X = c.reg.SP
	c.reg.setZN(c.reg.X)
}

// Transfer X to Accumulator
func (c *CPU) txa(op operand) {
	c.reg.A = c.reg.X
	c.reg.setZN(c.reg.A)
}

// Transfer X to Stack Pointer
// The only transfer that leaves the flags alone.
func (c *CPU) txs(op operand) {
	c.reg.SP = c.reg.X
}

// Transfer Y to Accumulator
func (c *CPU) tya(op operand) {
	c.reg.A = c.reg.Y
	c.reg.setZN(c.reg.A)
}

// Unofficial opcodes. Most of them run two official operations on the
// same operand; the read-modify-write ones never pay the page penalty.

// ASL then ORA
func (c *CPU) slo(op operand) {
	v := c.shiftLeft(c.load(op), false)
	c.store(op, v)
	c.reg.A |= v
	c.reg.setZN(c.reg.A)
}

// ROL then AND
func (c *CPU) rla(op operand) {
	v := c.shiftLeft(c.load(op), c.reg.Flag(FlagC))
	c.store(op, v)
	c.reg.A &= v
	c.reg.setZN(c.reg.A)
}

// LSR then EOR
func (c *CPU) sre(op operand) {
	v := c.shiftRight(c.load(op), false)
	c.store(op, v)
	c.reg.A ^= v
	c.reg.setZN(c.reg.A)
}

// ROR then ADC
func (c *CPU) rra(op operand) {
	v := c.shiftRight(c.load(op), c.reg.Flag(FlagC))
	c.store(op, v)
	c.addWithCarry(v)
}

// DEC then CMP
func (c *CPU) dcp(op operand) {
	v := c.load(op) - 1
	c.store(op, v)
	c.compare(c.reg.A, v)
}

// INC then SBC
func (c *CPU) isb(op operand) {
	v := c.load(op) + 1
	c.store(op, v)
	c.addWithCarry(^v)
}

// M = A & X
func (c *CPU) sax(op operand) {
	c.store(op, c.reg.A&c.reg.X)
}

// LDA then TAX
func (c *CPU) lax(op operand) {
	v := c.load(op)
	c.reg.A = v
	c.reg.X = v
	c.reg.setZN(v)
	c.pagePenalty(op)
}

// AND, then bit 7 of the result goes to C
func (c *CPU) anc(op operand) {
	c.reg.A &= c.load(op)
	c.reg.setZN(c.reg.A)
	c.reg.SetFlag(FlagC, c.reg.A&0x80 != 0)
}

// AND then LSR A
func (c *CPU) alr(op operand) {
	c.reg.A = c.shiftRight(c.reg.A&c.load(op), false)
}

// AND then ROR A, with C and V taken from bits 6 and 5 of the result
func (c *CPU) arr(op operand) {
	v := c.reg.A & c.load(op)
	v >>= 1
	if c.reg.Flag(FlagC) {
		v |= 0x80
	}
	c.reg.A = v
	c.reg.setZN(v)
	c.reg.SetFlag(FlagC, v&0x40 != 0)
	c.reg.SetFlag(FlagV, (v>>6^v>>5)&0x01 != 0)
}

// unstableMagic is the value the analog ANE/LXA behavior is most often
// observed to OR into A.
const unstableMagic = 0xee

// A = (A | magic) & X & M. Unstable on real hardware.
func (c *CPU) ane(op operand) {
	c.reg.A = (c.reg.A | unstableMagic) & c.reg.X & c.load(op)
	c.reg.setZN(c.reg.A)
}

// A = X = (A | magic) & M. Unstable on real hardware.
func (c *CPU) lxa(op operand) {
	v := (c.reg.A | unstableMagic) & c.load(op)
	c.reg.A = v
	c.reg.X = v
	c.reg.setZN(v)
}

// X = (A & X) - M, setting C like CMP
func (c *CPU) sbx(op operand) {
	t := c.reg.A & c.reg.X
	m := c.load(op)
	c.reg.SetFlag(FlagC, t >= m)
	c.reg.X = t - m
	c.reg.setZN(c.reg.X)
}

// A = X = SP = M & SP
func (c *CPU) las(op operand) {
	v := c.load(op) & c.reg.SP
	c.reg.A = v
	c.reg.X = v
	c.reg.SP = v
	c.reg.setZN(v)
	c.pagePenalty(op)
}

// storeHighAnd stores v ANDed with the high byte of the base address plus
// one. When indexing crossed a page the stored value also replaces the
// high byte of the target address.
func (c *CPU) storeHighAnd(op operand, v uint8) {
	v &= uint8(op.base>>8) + 1
	addr := op.addr
	if op.pageCrossed {
		addr = uint16(v)<<8 | addr&0x00ff
	}
	c.write8(addr, v)
}

func (c *CPU) sha(op operand) {
	c.storeHighAnd(op, c.reg.A&c.reg.X)
}

func (c *CPU) shx(op operand) {
	c.storeHighAnd(op, c.reg.X)
}

func (c *CPU) shy(op operand) {
	c.storeHighAnd(op, c.reg.Y)
}

// SP = A & X, then stored like SHA
func (c *CPU) shs(op operand) {
	c.reg.SP = c.reg.A & c.reg.X
	c.storeHighAnd(op, c.reg.SP)
}

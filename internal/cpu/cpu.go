// Package cpu is a cycle-counted interpreter for the NMOS 6502.
//
// The CPU owns its registers and clock and reaches memory only through a
// ReadWriter. Every instruction runs to completion inside Step, there is no
// mid-instruction state. Fatal conditions (invalid opcode, stack fault
// under StackStrict, no progress) halt the CPU and are returned as errors.
package cpu

import (
	"context"
	"fmt"

	"github.com/nevisdale/m6502/internal/bus"
)

const (
	vectorNMI   = uint16(0xfffa)
	vectorReset = uint16(0xfffc)
	vectorIRQ   = uint16(0xfffe)
)

const (
	initialSP = uint8(0xfd)
	initialP  = uint8(FlagU | FlagI)

	// resetCycles is what the reset sequence costs before the first fetch.
	resetCycles = 7

	// DefaultSpinLimit is how many times in a row the same instruction may
	// be fetched before the CPU gives up.
	DefaultSpinLimit = 5
)

type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

// State is a read-only snapshot of the CPU.
type State struct {
	Registers
	Cycles uint64
}

// Trace is handed to a Tracer after an instruction has been fetched and
// decoded, before it executes.
type Trace struct {
	State
	Opcode      uint8
	Operand     [2]uint8 // only the first Instruction.Mode.Size() bytes are meaningful
	Instruction Instruction
}

type Tracer interface {
	Trace(t Trace)
}

// BrkHandler is consulted before BRK executes, with PC already past the
// opcode. Returning nil lets BRK run as usual; returning an error halts the
// CPU with PC back on the BRK.
type BrkHandler interface {
	OnBrk(c *CPU) error
}

type CPU struct {
	reg    Registers
	mem    ReadWriter
	cycles uint64
	extra  uint8 // page and branch penalties of the current instruction

	instrPC uint16 // address of the current opcode
	fault   error  // first error raised by the current instruction
	halted  error

	spinPC    uint16
	spinCount int
	spinArmed bool

	stackPolicy StackPolicy
	unofficial  bool
	spinLimit   int
	tracer      Tracer
	brkHandler  BrkHandler
}

type Option func(*CPU)

func WithStackPolicy(p StackPolicy) Option {
	return func(c *CPU) { c.stackPolicy = p }
}

// WithUnofficial enables or disables the unofficial opcodes. Disabled
// unofficial opcodes are invalid.
func WithUnofficial(enabled bool) Option {
	return func(c *CPU) { c.unofficial = enabled }
}

// WithSpinLimit sets how many consecutive fetches of the same instruction
// are tolerated. Zero disables the check.
func WithSpinLimit(n int) Option {
	return func(c *CPU) { c.spinLimit = n }
}

func WithTracer(t Tracer) Option {
	return func(c *CPU) { c.tracer = t }
}

func WithBrkHandler(h BrkHandler) Option {
	return func(c *CPU) { c.brkHandler = h }
}

func New(mem ReadWriter, opts ...Option) *CPU {
	c := &CPU{
		mem:        mem,
		unofficial: true,
		spinLimit:  DefaultSpinLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.initRegisters()
	return c
}

func (c *CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

func (c *CPU) read16(addr uint16) uint16 {
	return bus.Read16(c.mem, addr)
}

// read16Page reads a pointer without carrying into the next page.
func (c *CPU) read16Page(addr uint16) uint16 {
	return bus.Read16Page(c.mem, addr)
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

func (c *CPU) fetch8() uint8 {
	v := c.read8(c.reg.PC)
	c.reg.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := uint16(c.fetch8())
	hi := uint16(c.fetch8())
	return lo | hi<<8
}

// fail records err as the fault of the current instruction. Only the
// first one is kept.
func (c *CPU) fail(err error) {
	if c.fault == nil {
		c.fault = err
	}
}

func (c *CPU) takeFault() error {
	err := c.fault
	c.fault = nil
	return err
}

func (c *CPU) initRegisters() {
	c.reg = Registers{SP: initialSP, P: initialP}
	c.extra = 0
	c.fault = nil
	c.halted = nil
	c.spinArmed = false
	c.spinCount = 0
}

// Load copies program into memory at addr, wrapping at the end of the
// address space, and points PC at it. Registers and the clock start over.
func (c *CPU) Load(program []uint8, addr uint16) error {
	if len(program) > 0x10000 {
		return fmt.Errorf("%s: %w", f("load %d bytes at $%04X", len(program), addr), ErrProgramTooLarge)
	}
	for i, v := range program {
		c.write8(addr+uint16(i), v)
	}
	c.initRegisters()
	c.reg.PC = addr
	c.cycles = 0
	return nil
}

// Reset the CPU to its initial state and jump through the reset vector.
func (c *CPU) Reset() {
	c.initRegisters()
	c.reg.PC = c.read16(vectorReset)
	c.cycles = resetCycles
}

// Interrupt request signal. Ignored while I is set.
func (c *CPU) IRQ() error {
	if c.reg.Flag(FlagI) {
		return nil
	}
	return c.interrupt(vectorIRQ)
}

// Non-maskable interrupt request signal
func (c *CPU) NMI() error {
	return c.interrupt(vectorNMI)
}

func (c *CPU) interrupt(vector uint16) error {
	if c.halted != nil {
		return fmt.Errorf("%w: %w", ErrHalted, c.halted)
	}
	c.instrPC = c.reg.PC
	if !c.stackCanPush(3) {
		return c.takeFault()
	}
	c.stackPush16(c.reg.PC)
	c.stackPush8(c.reg.P&^uint8(FlagB) | uint8(FlagU))
	c.reg.SetFlag(FlagI, true)
	c.reg.PC = c.read16(vector)
	c.cycles += 7
	c.spinArmed = false
	return nil
}

// Step executes one instruction.
func (c *CPU) Step() error {
	if c.halted != nil {
		return fmt.Errorf("%w: %w", ErrHalted, c.halted)
	}

	saved := c.reg
	c.instrPC = c.reg.PC
	opcode := c.fetch8()
	in := instrs[opcode]
	if in.fn == nil || (in.unofficial && !c.unofficial) {
		return c.abort(saved, &OpcodeError{Opcode: opcode, PC: c.instrPC})
	}

	if err := c.checkSpin(); err != nil {
		return c.abort(saved, err)
	}

	if c.tracer != nil {
		c.tracer.Trace(c.snapshot(opcode, in))
	}

	if opcode == 0x00 && c.brkHandler != nil {
		if err := c.brkHandler.OnBrk(c); err != nil {
			return c.abort(saved, err)
		}
	}

	op := c.resolve(in.mode)
	in.fn(c, op)
	if err := c.takeFault(); err != nil {
		c.extra = 0
		return c.abort(saved, err)
	}
	c.cycles += uint64(in.cycles) + uint64(c.extra)
	c.extra = 0
	return nil
}

// abort puts the registers back to where they were before the failed
// instruction and halts the CPU.
func (c *CPU) abort(saved Registers, err error) error {
	c.reg = saved
	c.halted = err
	return err
}

// checkSpin counts consecutive fetches of the same instruction. This is a
// heuristic: a program waiting in place for an interrupt trips it too.
func (c *CPU) checkSpin() error {
	if c.spinLimit <= 0 {
		return nil
	}
	if c.spinArmed && c.spinPC == c.instrPC {
		c.spinCount++
	} else {
		c.spinPC = c.instrPC
		c.spinCount = 1
		c.spinArmed = true
	}
	if c.spinCount > c.spinLimit {
		return &SpinError{PC: c.instrPC, Count: c.spinCount}
	}
	return nil
}

func (c *CPU) snapshot(opcode uint8, in instr) Trace {
	t := Trace{
		State:  c.State(),
		Opcode: opcode,
		Instruction: Instruction{
			Name:     in.name,
			Mode:     in.mode,
			Cycles:   in.cycles,
			Official: !in.unofficial,
		},
	}
	t.PC = c.instrPC
	for i := uint16(0); i < in.mode.Size(); i++ {
		t.Operand[i] = c.read8(c.instrPC + 1 + i)
	}
	return t
}

// Run steps until an error, until limit instructions have executed (0
// means no limit) or until ctx is done. It returns the number of
// instructions executed.
func (c *CPU) Run(ctx context.Context, limit uint64) (uint64, error) {
	var n uint64
	for limit == 0 || n < limit {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if err := c.Step(); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (c *CPU) State() State {
	return State{Registers: c.reg, Cycles: c.cycles}
}

func (c *CPU) Registers() Registers {
	return c.reg
}

// SetRegisters replaces the register file. The clock and halt state are
// left alone.
func (c *CPU) SetRegisters(r Registers) {
	c.reg = r
	c.spinArmed = false
}

func (c *CPU) SetPC(pc uint16) {
	c.reg.PC = pc
	c.spinArmed = false
}

// Cycles returns the number of clock ticks elapsed since Load or Reset.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Halted returns the error that halted the CPU, or nil while it runs.
func (c *CPU) Halted() error {
	return c.halted
}

func (c *CPU) StackPolicy() StackPolicy {
	return c.stackPolicy
}

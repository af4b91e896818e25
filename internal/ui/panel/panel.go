// Package panel holds the frame-driven run control and the text blocks
// of the debug window, independent of the window toolkit.
package panel

import (
	"fmt"
	"strings"

	"github.com/nevisdale/m6502/internal/bus"
	"github.com/nevisdale/m6502/internal/cpu"
)

// CyclesPerFrame is the CPU time of one NTSC frame.
const CyclesPerFrame = 29780

type Target interface {
	Step() error
	CPU() *cpu.CPU
	Bus() *bus.Bus
}

// Controller decides how much the target runs on every frame.
type Controller struct {
	target Target
	budget uint64

	paused  bool
	oneStep bool
	err     error
}

// NewController starts paused. budget is the number of CPU cycles to run
// per frame while not paused.
func NewController(t Target, budget uint64) *Controller {
	return &Controller{
		target: t,
		budget: budget,
		paused: true,
	}
}

func (c *Controller) TogglePause() {
	c.paused = !c.paused
}

// OneStepAndStop executes a single instruction on the next frame and
// leaves the controller paused.
func (c *Controller) OneStepAndStop() {
	c.paused = true
	c.oneStep = true
}

func (c *Controller) Run() {
	c.paused = false
}

// Frame advances the target for one frame. After the first error the
// target is left alone.
func (c *Controller) Frame() {
	if c.err != nil {
		return
	}

	if c.paused {
		if c.oneStep {
			c.oneStep = false
			c.step()
		}
		return
	}

	start := c.target.CPU().Cycles()
	for c.err == nil && c.target.CPU().Cycles()-start < c.budget {
		c.step()
	}
}

func (c *Controller) step() {
	if err := c.target.Step(); err != nil {
		c.err = err
		c.paused = true
	}
}

func (c *Controller) Paused() bool {
	return c.paused
}

// Err returns the error that stopped the target.
func (c *Controller) Err() error {
	return c.err
}

// Registers renders the register file, flags and clock.
func Registers(c *cpu.CPU) string {
	regs := c.Registers()

	var b strings.Builder
	fmt.Fprintf(&b, " STATUS: %s\n", cpu.StatusString(regs.P))
	fmt.Fprintf(&b, " PC: $%04X\n", regs.PC)
	fmt.Fprintf(&b, " A: $%02X [%03d]", regs.A, regs.A)
	fmt.Fprintf(&b, " X: $%02X [%03d]", regs.X, regs.X)
	fmt.Fprintf(&b, " Y: $%02X [%03d]\n", regs.Y, regs.Y)
	fmt.Fprintf(&b, " SP: $%02X\n", regs.SP)
	fmt.Fprintf(&b, " CYC: %d\n", c.Cycles())
	return b.String()
}

// Disassembly lists n instructions starting at PC, the first one marked.
func Disassembly(c *cpu.CPU, mem cpu.ReadWriter, n int) string {
	var b strings.Builder
	for i, line := range cpu.DisassembleRange(mem, c.Registers().PC, n) {
		mark := ' '
		if i == 0 {
			mark = '*'
		}
		fmt.Fprintf(&b, "%c$%04X: %s\n", mark, line.Addr, line.Text)
	}
	return b.String()
}

// ZeroPage renders $0000-$00FF as 16 rows of 16 bytes.
func ZeroPage(mem cpu.ReadWriter) string {
	var b strings.Builder
	for row := 0; row < 0x100; row += 0x10 {
		fmt.Fprintf(&b, "%02X:", row)
		for i := 0; i < 0x10; i++ {
			fmt.Fprintf(&b, " %02X", mem.Read8(uint16(row+i)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Package nes wires the CPU into an NES-shaped machine: mirrored RAM, the
// PPU register window and a cartridge, with the PPU clocked from the CPU
// cycle counter.
package nes

import (
	"context"
	"fmt"

	"github.com/nevisdale/m6502/internal/bus"
	"github.com/nevisdale/m6502/internal/cart"
	"github.com/nevisdale/m6502/internal/cpu"
)

// ppuDotsPerCycle is the PPU to CPU clock ratio on NTSC machines.
const ppuDotsPerCycle = 3

type Machine struct {
	bus  *bus.Bus
	cpu  *cpu.CPU
	ppu  *PPU
	cart *cart.Cart
}

// New builds a machine around c and resets it. Games idle in tight loops
// while waiting for the vblank NMI, so the CPU spin guard is off unless
// opts turn it back on.
func New(c *cart.Cart, opts ...cpu.Option) (*Machine, error) {
	m := &Machine{
		bus:  bus.NewNES(),
		ppu:  NewPPU(),
		cart: c,
	}
	if err := m.bus.Attach(bus.PPURegStart, bus.PPURegEnd, m.ppu); err != nil {
		return nil, fmt.Errorf("%s: %w", f("attach PPU"), err)
	}
	if err := m.bus.Attach(bus.CartStart, bus.CartEnd, c); err != nil {
		return nil, fmt.Errorf("%s: %w", f("attach cartridge"), err)
	}
	opts = append([]cpu.Option{cpu.WithSpinLimit(0)}, opts...)
	m.cpu = cpu.New(m.bus, opts...)
	m.Reset()
	return m, nil
}

// Reset clears RAM and the PPU and jumps through the reset vector.
func (m *Machine) Reset() {
	m.bus.Reset()
	m.ppu.Reset()
	m.cpu.Reset()
}

// Step runs one CPU instruction and lets the PPU catch up with the cycles
// it took. An NMI raised by the PPU is delivered before the next
// instruction.
func (m *Machine) Step() error {
	before := m.cpu.Cycles()
	if err := m.cpu.Step(); err != nil {
		return err
	}
	m.catchUp(before)

	if m.ppu.takeNMI() {
		before = m.cpu.Cycles()
		if err := m.cpu.NMI(); err != nil {
			return err
		}
		m.catchUp(before)
	}
	return nil
}

func (m *Machine) catchUp(since uint64) {
	for n := (m.cpu.Cycles() - since) * ppuDotsPerCycle; n > 0; n-- {
		m.ppu.Tick()
	}
}

// Run steps until an error, until limit instructions have executed (0
// means no limit) or until ctx is done.
func (m *Machine) Run(ctx context.Context, limit uint64) (uint64, error) {
	var n uint64
	for limit == 0 || n < limit {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if err := m.Step(); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (m *Machine) CPU() *cpu.CPU {
	return m.cpu
}

func (m *Machine) Bus() *bus.Bus {
	return m.bus
}

func (m *Machine) PPU() *PPU {
	return m.ppu
}

func (m *Machine) Cart() *cart.Cart {
	return m.cart
}

package main

import (
	"github.com/nevisdale/m6502/internal/bus"
	"github.com/nevisdale/m6502/internal/cpu"
)

// flatMachine runs a raw binary in a flat 64KB address space. Reset puts
// the image back and restarts it at its load address.
type flatMachine struct {
	bus   *bus.Bus
	cpu   *cpu.CPU
	image []uint8
	addr  uint16
}

func newFlatMachine(image []uint8, addr uint16, opts ...cpu.Option) (*flatMachine, error) {
	m := &flatMachine{
		bus:   bus.New(),
		image: image,
		addr:  addr,
	}
	m.cpu = cpu.New(m.bus, opts...)
	if err := m.cpu.Load(image, addr); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *flatMachine) Step() error {
	return m.cpu.Step()
}

func (m *flatMachine) Reset() {
	m.bus.Reset()
	// the image fit on the first load
	_ = m.cpu.Load(m.image, m.addr)
}

func (m *flatMachine) CPU() *cpu.CPU {
	return m.cpu
}

func (m *flatMachine) Bus() *bus.Bus {
	return m.bus
}

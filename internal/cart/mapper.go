package cart

import "fmt"

type mapper interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

func newMapper(c *Cart) (mapper, error) {
	switch c.header.Mapper {
	case mapperNROM:
		if c.header.PRGBanks > maxSupportedBanks {
			return nil, fmt.Errorf("%s: %w", f("NROM with %d PRG banks", c.header.PRGBanks), ErrUnsupportedMapper)
		}
		return nrom{c}, nil
	}
	return nil, fmt.Errorf("%s: %w", f("mapper %d", c.header.Mapper), ErrUnsupportedMapper)
}

// nrom is mapper 0: PRG RAM at $6000-$7FFF and 16KB or 32KB of PRG ROM at
// $8000-$FFFF. A single 16KB bank is mirrored into $C000-$FFFF.
type nrom struct {
	cart *Cart
}

func (m nrom) mapPRG(addr uint16) uint16 {
	if m.cart.header.PRGBanks > 1 {
		return addr & 0x7fff
	}
	return addr & 0x3fff
}

func (m nrom) Read8(addr uint16) uint8 {
	switch {
	case addr >= prgROMStart:
		return m.cart.prg[m.mapPRG(addr)]
	case addr >= prgRAMStart:
		return m.cart.ram[addr-prgRAMStart]
	}
	return 0
}

func (m nrom) Write8(addr uint16, data uint8) {
	switch {
	case addr >= prgROMStart:
		// ROM
	case addr >= prgRAMStart:
		m.cart.ram[addr-prgRAMStart] = data
	}
}

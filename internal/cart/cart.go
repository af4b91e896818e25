// Package cart loads iNES cartridge images and maps them into the CPU
// address space.
package cart

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	inesMagic         = 0x1a53454e // "NES\x1A"
	trainerSizeBytes  = 512
	prgBankSizeBytes  = 0x4000
	chrBankSizeBytes  = 0x2000
	prgRAMSizeBytes   = 0x2000
	prgRAMStart       = 0x6000
	prgROMStart       = 0x8000
	flags6Mirroring   = 0x01
	flags6Battery     = 0x02
	flags6Trainer     = 0x04
	flags6FourScreen  = 0x08
	flags6MapperLo    = 0xf0
	flags7MapperHi    = 0xf0
	mapperNROM        = 0
	maxSupportedBanks = 2
)

type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
)

func (m Mirroring) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorFourScreen:
		return "four-screen"
	}
	return fmt.Sprintf("Mirroring(%d)", uint8(m))
}

// Header is the decoded 16-byte iNES header.
type Header struct {
	PRGBanks  uint8 // 16KB units
	CHRBanks  uint8 // 8KB units, 0 means the board has CHR RAM
	Mapper    uint8
	Mirroring Mirroring
	Battery   bool
	Trainer   bool
}

type rawHeader struct {
	Magic      uint32
	PrgRomSize uint8
	ChrRomSize uint8
	Flags6     uint8
	Flags7     uint8
	Flags8     uint8
	Flags9     uint8
	Flags10    uint8
	_          [5]uint8 // unused
}

func (h rawHeader) decode() Header {
	mirroring := Mirroring(h.Flags6 & flags6Mirroring)
	if h.Flags6&flags6FourScreen != 0 {
		mirroring = MirrorFourScreen
	}
	return Header{
		PRGBanks: h.PrgRomSize,
		CHRBanks: h.ChrRomSize,
		// flag6: lower 4 bits of mapper ID
		// flag7: upper 4 bits of mapper ID
		Mapper:    h.Flags7&flags7MapperHi | (h.Flags6&flags6MapperLo)>>4,
		Mirroring: mirroring,
		Battery:   h.Flags6&flags6Battery != 0,
		Trainer:   h.Flags6&flags6Trainer != 0,
	}
}

// Cart is a loaded cartridge. It implements bus.ReadWriter for
// $4020-$FFFF; the range below $6000 is unmapped and reads as zero.
type Cart struct {
	header Header
	prg    []uint8
	chr    []uint8
	ram    [prgRAMSizeBytes]uint8
	mapper mapper
}

// LoadFile reads an iNES image from path.
func LoadFile(path string) (*Cart, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	c, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load reads an iNES image from r.
func Load(r io.Reader) (*Cart, error) {
	var raw rawHeader
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", f("header"), truncated(err))
	}
	if raw.Magic != inesMagic {
		return nil, ErrBadMagic
	}

	header := raw.decode()
	if header.PRGBanks == 0 {
		return nil, ErrNoPRG
	}

	if header.Trainer {
		if _, err := io.CopyN(io.Discard, r, trainerSizeBytes); err != nil {
			return nil, fmt.Errorf("%s: %w", f("trainer"), truncated(err))
		}
	}

	c := &Cart{
		header: header,
		prg:    make([]uint8, int(header.PRGBanks)*prgBankSizeBytes),
		chr:    make([]uint8, int(header.CHRBanks)*chrBankSizeBytes),
	}
	if _, err := io.ReadFull(r, c.prg); err != nil {
		return nil, fmt.Errorf("%s: %w", f("PRG ROM"), truncated(err))
	}
	if _, err := io.ReadFull(r, c.chr); err != nil {
		return nil, fmt.Errorf("%s: %w", f("CHR ROM"), truncated(err))
	}

	m, err := newMapper(c)
	if err != nil {
		return nil, err
	}
	c.mapper = m
	return c, nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

func (c *Cart) Header() Header {
	return c.header
}

func (c *Cart) Read8(addr uint16) uint8 {
	return c.mapper.Read8(addr)
}

func (c *Cart) Write8(addr uint16, data uint8) {
	c.mapper.Write8(addr, data)
}

// ReadCHR reads the pattern memory as seen from the PPU ($0000-$1FFF).
func (c *Cart) ReadCHR(addr uint16) uint8 {
	if len(c.chr) == 0 {
		return 0
	}
	return c.chr[int(addr)%len(c.chr)]
}

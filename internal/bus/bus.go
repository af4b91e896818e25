// Package bus implements the CPU's 16-bit address space.
//
// Every address is valid: addresses are uint16, so any computed address
// is already reduced modulo the size of the space. Regions of the space
// can be mirrored (resolved by a modulo on the offset, never by copying)
// or routed to external devices that own the cells behind them.
package bus

import "fmt"

const (
	// Detailed NES CPU memory map used by NewNES:
	//
	// $0000-$07FF: Internal RAM
	//   Zero page ($0000-$00FF), stack page ($0100-$01FF) and general RAM.
	//
	// $0800-$1FFF: Mirrors of $0000-$07FF
	//   Any access to these addresses reaches the corresponding cell in $0000-$07FF.
	//
	// $2000-$2007: PPU Registers
	// $2008-$3FFF: Mirrors of $2000-$2007 (every 8 bytes)
	//
	// $4000-$4017: APU and I/O Registers
	// $4018-$401F: APU and I/O functionality that is normally disabled
	//
	// $4020-$FFFF: Cartridge Space
	//   $6000-$7FFF: Cartridge RAM (optional)
	//   $8000-$FFFF: PRG-ROM
	SizeBytes = 0x10000

	RAMStart     = 0x0000
	RAMSizeBytes = 0x0800
	RAMEnd       = 0x1fff

	PPURegStart     = 0x2000
	PPURegSizeBytes = 0x0008
	PPURegEnd       = 0x3fff

	APUStart = 0x4000
	APUEnd   = 0x401f

	CartStart = 0x4020
	CartEnd   = 0xffff
)

// ReadWriter is implemented by everything that sits on the bus: the bus
// itself, attached devices and cartridges.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

type region struct {
	lo   uint16
	hi   uint16
	size uint32     // mirror period, 0 means no mirroring
	dev  ReadWriter // nil means backing cells
}

func (r region) contains(addr uint16) bool {
	return addr >= r.lo && addr <= r.hi
}

// canonical folds a mirrored address back onto the first period of the region.
func (r region) canonical(addr uint16) uint16 {
	if r.size == 0 {
		return addr
	}
	return r.lo + uint16(uint32(addr-r.lo)%r.size)
}

type Bus struct {
	mem     [SizeBytes]uint8
	regions []region
}

// New returns a flat 64KB address space without mirrors or devices.
func New() *Bus {
	return &Bus{}
}

// NewNES returns an address space laid out like the NES CPU bus: RAM
// mirrored through $1FFF and the PPU register window mirrored through
// $3FFF. Devices can be attached on top of the mirrors with Attach.
func NewNES() *Bus {
	b := New()
	b.MustMirror(RAMStart, RAMEnd, RAMSizeBytes)
	b.MustMirror(PPURegStart, PPURegEnd, PPURegSizeBytes)
	return b
}

// Mirror makes every address in [lo, hi] resolve to lo + (addr-lo) % size.
func (b *Bus) Mirror(lo, hi uint16, size uint32) error {
	if hi < lo {
		return fmt.Errorf("%s: %w", f("mirror $%04X-$%04X", lo, hi), ErrBadRegion)
	}
	if size == 0 || size > uint32(hi-lo)+1 {
		return fmt.Errorf("%s: %w", f("mirror size $%X", size), ErrBadRegion)
	}
	b.regions = append(b.regions, region{lo: lo, hi: hi, size: size})
	return nil
}

// MustMirror is like Mirror but panics on a malformed region. It is meant
// for fixed layouts built at startup.
func (b *Bus) MustMirror(lo, hi uint16, size uint32) {
	if err := b.Mirror(lo, hi, size); err != nil {
		panic(err)
	}
}

// Attach routes [lo, hi] to dev. If the range is also mirrored, the device
// receives the canonical (folded) address. Later attachments take
// precedence over earlier ones.
func (b *Bus) Attach(lo, hi uint16, dev ReadWriter) error {
	if hi < lo {
		return fmt.Errorf("%s: %w", f("attach $%04X-$%04X", lo, hi), ErrBadRegion)
	}
	if dev == nil {
		return fmt.Errorf("%s: %w", f("attach $%04X-$%04X", lo, hi), ErrNoDevice)
	}
	b.regions = append(b.regions, region{lo: lo, hi: hi, dev: dev})
	return nil
}

// resolve returns the canonical address and the device owning it, if any.
func (b *Bus) resolve(addr uint16) (uint16, ReadWriter) {
	var dev ReadWriter
	for _, r := range b.regions {
		if !r.contains(addr) {
			continue
		}
		if r.dev != nil {
			dev = r.dev
			continue
		}
		addr = r.canonical(addr)
	}
	return addr, dev
}

func (b *Bus) Read8(addr uint16) uint8 {
	addr, dev := b.resolve(addr)
	if dev != nil {
		return dev.Read8(addr)
	}
	return b.mem[addr]
}

// Peeker is implemented by devices whose reads have side effects. Peek8
// returns what Read8 would without changing the device.
type Peeker interface {
	Peek8(addr uint16) uint8
}

// Peek8 reads addr without disturbing the device behind it. Devices that
// do not implement Peeker are read normally.
func (b *Bus) Peek8(addr uint16) uint8 {
	addr, dev := b.resolve(addr)
	if dev == nil {
		return b.mem[addr]
	}
	if p, ok := dev.(Peeker); ok {
		return p.Peek8(addr)
	}
	return dev.Read8(addr)
}

// View returns the bus as seen by debuggers: reads go through Peek8,
// writes are passed through.
func (b *Bus) View() ReadWriter {
	return view{b}
}

type view struct {
	bus *Bus
}

func (v view) Read8(addr uint16) uint8 {
	return v.bus.Peek8(addr)
}

func (v view) Write8(addr uint16, data uint8) {
	v.bus.Write8(addr, data)
}

func (b *Bus) Write8(addr uint16, data uint8) {
	addr, dev := b.resolve(addr)
	if dev != nil {
		dev.Write8(addr, data)
		return
	}
	b.mem[addr] = data
}

// Read16 reads a little endian word from rw. The high byte comes from
// addr+1, wrapping at the end of the address space.
func Read16(rw ReadWriter, addr uint16) uint16 {
	return uint16(rw.Read8(addr)) | uint16(rw.Read8(addr+1))<<8
}

// Read16Page reads a little endian word whose high byte is taken from the
// same page as addr. This is how the 6502 fetches pointers: a pointer at
// $xxFF takes its high byte from $xx00.
func Read16Page(rw ReadWriter, addr uint16) uint16 {
	hi := addr&0xff00 | uint16(uint8(addr)+1)
	return uint16(rw.Read8(addr)) | uint16(rw.Read8(hi))<<8
}

func (b *Bus) Read16(addr uint16) uint16 {
	return Read16(b, addr)
}

func (b *Bus) Read16Page(addr uint16) uint16 {
	return Read16Page(b, addr)
}

// Load copies data into the address space starting at addr. Copying wraps
// at the end of the space; a buffer larger than the space is rejected.
func (b *Bus) Load(data []uint8, addr uint16) error {
	if len(data) > SizeBytes {
		return fmt.Errorf("%s: %w", f("load %d bytes at $%04X", len(data), addr), ErrTooLarge)
	}
	for i, v := range data {
		b.Write8(addr+uint16(i), v)
	}
	return nil
}

// Reset clears the backing cells. Regions and devices stay in place.
func (b *Bus) Reset() {
	clear(b.mem[:])
}

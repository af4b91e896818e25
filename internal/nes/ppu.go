package nes

const (
	dotsPerScanline   = 341
	scanlinesPerFrame = 262
	vblankScanline    = 241
	preRenderScanline = 261

	ctrlNMI      = 0x80
	statusVBlank = 0x80
)

// PPU register offsets within the $2000-$2007 window.
const (
	regCtrl = iota
	regMask
	regStatus
	regOAMAddr
	regOAMData
	regScroll
	regAddr
	regData
)

// PPU keeps the register window and the dot clock of the picture unit.
// It renders nothing: registers are plain latches, except that STATUS
// reports vertical blank and reading it clears the flag.
type PPU struct {
	regs [8]uint8

	dot      uint16
	scanline uint16
	frame    uint64

	nmi bool // raised at the start of vblank when CTRL asks for it
}

func NewPPU() *PPU {
	return &PPU{}
}

// Read8 expects addr already folded into $2000-$2007.
func (p *PPU) Read8(addr uint16) uint8 {
	reg := addr & 0x7
	data := p.regs[reg]
	if reg == regStatus {
		p.regs[regStatus] &^= statusVBlank
	}
	return data
}

// Peek8 returns a register without the read side effects of Read8.
func (p *PPU) Peek8(addr uint16) uint8 {
	return p.regs[addr&0x7]
}

func (p *PPU) Write8(addr uint16, data uint8) {
	reg := addr & 0x7
	if reg == regStatus {
		// read only
		return
	}
	p.regs[reg] = data
}

// Tick advances the dot clock by one.
func (p *PPU) Tick() {
	p.dot++
	if p.dot < dotsPerScanline {
		return
	}
	p.dot = 0
	p.scanline++

	switch p.scanline {
	case vblankScanline:
		p.regs[regStatus] |= statusVBlank
		if p.regs[regCtrl]&ctrlNMI != 0 {
			p.nmi = true
		}
	case preRenderScanline:
		p.regs[regStatus] &^= statusVBlank
	case scanlinesPerFrame:
		p.scanline = 0
		p.frame++
	}
}

// takeNMI reports and clears a pending NMI.
func (p *PPU) takeNMI() bool {
	nmi := p.nmi
	p.nmi = false
	return nmi
}

func (p *PPU) Reset() {
	*p = PPU{}
}

// Position returns the current dot, scanline and frame.
func (p *PPU) Position() (dot, scanline uint16, frame uint64) {
	return p.dot, p.scanline, p.frame
}

package cpu

import "strings"

// Flag is a bit of the processor status register.
type Flag uint8

const (
	FlagC Flag = 1 << iota // Carry
	FlagZ                  // Zero
	FlagI                  // Interrupt Disable
	FlagD                  // Decimal Mode
	FlagB                  // Break Command
	FlagU                  // Unused, always 1 when pushed
	FlagV                  // Overflow
	FlagN                  // Negative
)

// Registers is the 6502 register file.
type Registers struct {
	PC uint16 // program counter
	A  uint8  // accumulator
	X  uint8  // index register X
	Y  uint8  // index register Y
	SP uint8  // stack pointer, offset into page $01
	P  uint8  // processor status, NV-BDIZC
}

func (r Registers) Flag(f Flag) bool {
	return r.P&uint8(f) != 0
}

func (r *Registers) SetFlag(f Flag, v bool) {
	if v {
		r.P |= uint8(f)
		return
	}
	r.P &^= uint8(f)
}

// setZN updates Zero and Negative from a result value.
func (r *Registers) setZN(v uint8) {
	r.SetFlag(FlagZ, v == 0)
	r.SetFlag(FlagN, v&0x80 != 0)
}

// StatusString renders P as NV-BDIZC, upper case for set bits.
func StatusString(p uint8) string {
	const names = "nv-bdizc"
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		c := names[i]
		if p&(0x80>>i) != 0 && c != '-' {
			c -= 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

package cpu

type instr struct {
	name       string
	mode       Mode
	fn         func(*CPU, operand)
	cycles     uint8
	unofficial bool
}

// instrs is the dispatch table. Opcodes without a handler are invalid,
// this includes the JAM opcodes that lock up a real 6502.
var instrs [0x100]instr

func init() {
	initInstructions()
	initUnofficialInstructions()
}

// Instruction describes an opcode for loggers and front ends.
type Instruction struct {
	Name     string
	Mode     Mode
	Cycles   uint8 // base cost, without page and branch penalties
	Official bool
}

// Size returns the instruction length in bytes, opcode included.
func (i Instruction) Size() uint16 {
	return 1 + i.Mode.Size()
}

// Lookup returns the instruction for opcode. The second result is false
// for opcodes with no handler.
func Lookup(opcode uint8) (Instruction, bool) {
	in := instrs[opcode]
	if in.fn == nil {
		return Instruction{}, false
	}
	return Instruction{
		Name:     in.name,
		Mode:     in.mode,
		Cycles:   in.cycles,
		Official: !in.unofficial,
	}, true
}

func initInstructions() {
	instrs[0x00] = instr{name: "BRK", mode: ModeIMP, fn: (*CPU).brk, cycles: 7}
	instrs[0x01] = instr{name: "ORA", mode: ModeINDX, fn: (*CPU).ora, cycles: 6}
	instrs[0x05] = instr{name: "ORA", mode: ModeZP, fn: (*CPU).ora, cycles: 3}
	instrs[0x06] = instr{name: "ASL", mode: ModeZP, fn: (*CPU).asl, cycles: 5}
	instrs[0x08] = instr{name: "PHP", mode: ModeIMP, fn: (*CPU).php, cycles: 3}
	instrs[0x09] = instr{name: "ORA", mode: ModeIMM, fn: (*CPU).ora, cycles: 2}
	instrs[0x0a] = instr{name: "ASL", mode: ModeACC, fn: (*CPU).asl, cycles: 2}
	instrs[0x0d] = instr{name: "ORA", mode: ModeABS, fn: (*CPU).ora, cycles: 4}
	instrs[0x0e] = instr{name: "ASL", mode: ModeABS, fn: (*CPU).asl, cycles: 6}
	instrs[0x10] = instr{name: "BPL", mode: ModeREL, fn: (*CPU).bpl, cycles: 2}
	instrs[0x11] = instr{name: "ORA", mode: ModeINDY, fn: (*CPU).ora, cycles: 5}
	instrs[0x15] = instr{name: "ORA", mode: ModeZPX, fn: (*CPU).ora, cycles: 4}
	instrs[0x16] = instr{name: "ASL", mode: ModeZPX, fn: (*CPU).asl, cycles: 6}
	instrs[0x18] = instr{name: "CLC", mode: ModeIMP, fn: (*CPU).clc, cycles: 2}
	instrs[0x19] = instr{name: "ORA", mode: ModeABSY, fn: (*CPU).ora, cycles: 4}
	instrs[0x1d] = instr{name: "ORA", mode: ModeABSX, fn: (*CPU).ora, cycles: 4}
	instrs[0x1e] = instr{name: "ASL", mode: ModeABSX, fn: (*CPU).asl, cycles: 7}
	instrs[0x20] = instr{name: "JSR", mode: ModeABS, fn: (*CPU).jsr, cycles: 6}
	instrs[0x21] = instr{name: "AND", mode: ModeINDX, fn: (*CPU).and, cycles: 6}
	instrs[0x24] = instr{name: "BIT", mode: ModeZP, fn: (*CPU).bit, cycles: 3}
	instrs[0x25] = instr{name: "AND", mode: ModeZP, fn: (*CPU).and, cycles: 3}
	instrs[0x26] = instr{name: "ROL", mode: ModeZP, fn: (*CPU).rol, cycles: 5}
	instrs[0x28] = instr{name: "PLP", mode: ModeIMP, fn: (*CPU).plp, cycles: 4}
	instrs[0x29] = instr{name: "AND", mode: ModeIMM, fn: (*CPU).and, cycles: 2}
	instrs[0x2a] = instr{name: "ROL", mode: ModeACC, fn: (*CPU).rol, cycles: 2}
	instrs[0x2c] = instr{name: "BIT", mode: ModeABS, fn: (*CPU).bit, cycles: 4}
	instrs[0x2d] = instr{name: "AND", mode: ModeABS, fn: (*CPU).and, cycles: 4}
	instrs[0x2e] = instr{name: "ROL", mode: ModeABS, fn: (*CPU).rol, cycles: 6}
	instrs[0x30] = instr{name: "BMI", mode: ModeREL, fn: (*CPU).bmi, cycles: 2}
	instrs[0x31] = instr{name: "AND", mode: ModeINDY, fn: (*CPU).and, cycles: 5}
	instrs[0x35] = instr{name: "AND", mode: ModeZPX, fn: (*CPU).and, cycles: 4}
	instrs[0x36] = instr{name: "ROL", mode: ModeZPX, fn: (*CPU).rol, cycles: 6}
	instrs[0x38] = instr{name: "SEC", mode: ModeIMP, fn: (*CPU).sec, cycles: 2}
	instrs[0x39] = instr{name: "AND", mode: ModeABSY, fn: (*CPU).and, cycles: 4}
	instrs[0x3d] = instr{name: "AND", mode: ModeABSX, fn: (*CPU).and, cycles: 4}
	instrs[0x3e] = instr{name: "ROL", mode: ModeABSX, fn: (*CPU).rol, cycles: 7}
	instrs[0x40] = instr{name: "RTI", mode: ModeIMP, fn: (*CPU).rti, cycles: 6}
	instrs[0x41] = instr{name: "EOR", mode: ModeINDX, fn: (*CPU).eor, cycles: 6}
	instrs[0x45] = instr{name: "EOR", mode: ModeZP, fn: (*CPU).eor, cycles: 3}
	instrs[0x46] = instr{name: "LSR", mode: ModeZP, fn: (*CPU).lsr, cycles: 5}
	instrs[0x48] = instr{name: "PHA", mode: ModeIMP, fn: (*CPU).pha, cycles: 3}
	instrs[0x49] = instr{name: "EOR", mode: ModeIMM, fn: (*CPU).eor, cycles: 2}
	instrs[0x4a] = instr{name: "LSR", mode: ModeACC, fn: (*CPU).lsr, cycles: 2}
	instrs[0x4c] = instr{name: "JMP", mode: ModeABS, fn: (*CPU).jmp, cycles: 3}
	instrs[0x4d] = instr{name: "EOR", mode: ModeABS, fn: (*CPU).eor, cycles: 4}
	instrs[0x4e] = instr{name: "LSR", mode: ModeABS, fn: (*CPU).lsr, cycles: 6}
	instrs[0x50] = instr{name: "BVC", mode: ModeREL, fn: (*CPU).bvc, cycles: 2}
	instrs[0x51] = instr{name: "EOR", mode: ModeINDY, fn: (*CPU).eor, cycles: 5}
	instrs[0x55] = instr{name: "EOR", mode: ModeZPX, fn: (*CPU).eor, cycles: 4}
	instrs[0x56] = instr{name: "LSR", mode: ModeZPX, fn: (*CPU).lsr, cycles: 6}
	instrs[0x58] = instr{name: "CLI", mode: ModeIMP, fn: (*CPU).cli, cycles: 2}
	instrs[0x59] = instr{name: "EOR", mode: ModeABSY, fn: (*CPU).eor, cycles: 4}
	instrs[0x5d] = instr{name: "EOR", mode: ModeABSX, fn: (*CPU).eor, cycles: 4}
	instrs[0x5e] = instr{name: "LSR", mode: ModeABSX, fn: (*CPU).lsr, cycles: 7}
	instrs[0x60] = instr{name: "RTS", mode: ModeIMP, fn: (*CPU).rts, cycles: 6}
	instrs[0x61] = instr{name: "ADC", mode: ModeINDX, fn: (*CPU).adc, cycles: 6}
	instrs[0x65] = instr{name: "ADC", mode: ModeZP, fn: (*CPU).adc, cycles: 3}
	instrs[0x66] = instr{name: "ROR", mode: ModeZP, fn: (*CPU).ror, cycles: 5}
	instrs[0x68] = instr{name: "PLA", mode: ModeIMP, fn: (*CPU).pla, cycles: 4}
	instrs[0x69] = instr{name: "ADC", mode: ModeIMM, fn: (*CPU).adc, cycles: 2}
	instrs[0x6a] = instr{name: "ROR", mode: ModeACC, fn: (*CPU).ror, cycles: 2}
	instrs[0x6c] = instr{name: "JMP", mode: ModeIND, fn: (*CPU).jmp, cycles: 5}
	instrs[0x6d] = instr{name: "ADC", mode: ModeABS, fn: (*CPU).adc, cycles: 4}
	instrs[0x6e] = instr{name: "ROR", mode: ModeABS, fn: (*CPU).ror, cycles: 6}
	instrs[0x70] = instr{name: "BVS", mode: ModeREL, fn: (*CPU).bvs, cycles: 2}
	instrs[0x71] = instr{name: "ADC", mode: ModeINDY, fn: (*CPU).adc, cycles: 5}
	instrs[0x75] = instr{name: "ADC", mode: ModeZPX, fn: (*CPU).adc, cycles: 4}
	instrs[0x76] = instr{name: "ROR", mode: ModeZPX, fn: (*CPU).ror, cycles: 6}
	instrs[0x78] = instr{name: "SEI", mode: ModeIMP, fn: (*CPU).sei, cycles: 2}
	instrs[0x79] = instr{name: "ADC", mode: ModeABSY, fn: (*CPU).adc, cycles: 4}
	instrs[0x7d] = instr{name: "ADC", mode: ModeABSX, fn: (*CPU).adc, cycles: 4}
	instrs[0x7e] = instr{name: "ROR", mode: ModeABSX, fn: (*CPU).ror, cycles: 7}
	instrs[0x81] = instr{name: "STA", mode: ModeINDX, fn: (*CPU).sta, cycles: 6}
	instrs[0x84] = instr{name: "STY", mode: ModeZP, fn: (*CPU).sty, cycles: 3}
	instrs[0x85] = instr{name: "STA", mode: ModeZP, fn: (*CPU).sta, cycles: 3}
	instrs[0x86] = instr{name: "STX", mode: ModeZP, fn: (*CPU).stx, cycles: 3}
	instrs[0x88] = instr{name: "DEY", mode: ModeIMP, fn: (*CPU).dey, cycles: 2}
	instrs[0x8a] = instr{name: "TXA", mode: ModeIMP, fn: (*CPU).txa, cycles: 2}
	instrs[0x8c] = instr{name: "STY", mode: ModeABS, fn: (*CPU).sty, cycles: 4}
	instrs[0x8d] = instr{name: "STA", mode: ModeABS, fn: (*CPU).sta, cycles: 4}
	instrs[0x8e] = instr{name: "STX", mode: ModeABS, fn: (*CPU).stx, cycles: 4}
	instrs[0x90] = instr{name: "BCC", mode: ModeREL, fn: (*CPU).bcc, cycles: 2}
	instrs[0x91] = instr{name: "STA", mode: ModeINDY, fn: (*CPU).sta, cycles: 6}
	instrs[0x94] = instr{name: "STY", mode: ModeZPX, fn: (*CPU).sty, cycles: 4}
	instrs[0x95] = instr{name: "STA", mode: ModeZPX, fn: (*CPU).sta, cycles: 4}
	instrs[0x96] = instr{name: "STX", mode: ModeZPY, fn: (*CPU).stx, cycles: 4}
	instrs[0x98] = instr{name: "TYA", mode: ModeIMP, fn: (*CPU).tya, cycles: 2}
	instrs[0x99] = instr{name: "STA", mode: ModeABSY, fn: (*CPU).sta, cycles: 5}
	instrs[0x9a] = instr{name: "TXS", mode: ModeIMP, fn: (*CPU).txs, cycles: 2}
	instrs[0x9d] = instr{name: "STA", mode: ModeABSX, fn: (*CPU).sta, cycles: 5}
	instrs[0xa0] = instr{name: "LDY", mode: ModeIMM, fn: (*CPU).ldy, cycles: 2}
	instrs[0xa1] = instr{name: "LDA", mode: ModeINDX, fn: (*CPU).lda, cycles: 6}
	instrs[0xa2] = instr{name: "LDX", mode: ModeIMM, fn: (*CPU).ldx, cycles: 2}
	instrs[0xa4] = instr{name: "LDY", mode: ModeZP, fn: (*CPU).ldy, cycles: 3}
	instrs[0xa5] = instr{name: "LDA", mode: ModeZP, fn: (*CPU).lda, cycles: 3}
	instrs[0xa6] = instr{name: "LDX", mode: ModeZP, fn: (*CPU).ldx, cycles: 3}
	instrs[0xa8] = instr{name: "TAY", mode: ModeIMP, fn: (*CPU).tay, cycles: 2}
	instrs[0xa9] = instr{name: "LDA", mode: ModeIMM, fn: (*CPU).lda, cycles: 2}
	instrs[0xaa] = instr{name: "TAX", mode: ModeIMP, fn: (*CPU).tax, cycles: 2}
	instrs[0xac] = instr{name: "LDY", mode: ModeABS, fn: (*CPU).ldy, cycles: 4}
	instrs[0xad] = instr{name: "LDA", mode: ModeABS, fn: (*CPU).lda, cycles: 4}
	instrs[0xae] = instr{name: "LDX", mode: ModeABS, fn: (*CPU).ldx, cycles: 4}
	instrs[0xb0] = instr{name: "BCS", mode: ModeREL, fn: (*CPU).bcs, cycles: 2}
	instrs[0xb1] = instr{name: "LDA", mode: ModeINDY, fn: (*CPU).lda, cycles: 5}
	instrs[0xb4] = instr{name: "LDY", mode: ModeZPX, fn: (*CPU).ldy, cycles: 4}
	instrs[0xb5] = instr{name: "LDA", mode: ModeZPX, fn: (*CPU).lda, cycles: 4}
	instrs[0xb6] = instr{name: "LDX", mode: ModeZPY, fn: (*CPU).ldx, cycles: 4}
	instrs[0xb8] = instr{name: "CLV", mode: ModeIMP, fn: (*CPU).clv, cycles: 2}
	instrs[0xb9] = instr{name: "LDA", mode: ModeABSY, fn: (*CPU).lda, cycles: 4}
	instrs[0xba] = instr{name: "TSX", mode: ModeIMP, fn: (*CPU).tsx, cycles: 2}
	instrs[0xbc] = instr{name: "LDY", mode: ModeABSX, fn: (*CPU).ldy, cycles: 4}
	instrs[0xbd] = instr{name: "LDA", mode: ModeABSX, fn: (*CPU).lda, cycles: 4}
	instrs[0xbe] = instr{name: "LDX", mode: ModeABSY, fn: (*CPU).ldx, cycles: 4}
	instrs[0xc0] = instr{name: "CPY", mode: ModeIMM, fn: (*CPU).cpy, cycles: 2}
	instrs[0xc1] = instr{name: "CMP", mode: ModeINDX, fn: (*CPU).cmp, cycles: 6}
	instrs[0xc4] = instr{name: "CPY", mode: ModeZP, fn: (*CPU).cpy, cycles: 3}
	instrs[0xc5] = instr{name: "CMP", mode: ModeZP, fn: (*CPU).cmp, cycles: 3}
	instrs[0xc6] = instr{name: "DEC", mode: ModeZP, fn: (*CPU).dec, cycles: 5}
	instrs[0xc8] = instr{name: "INY", mode: ModeIMP, fn: (*CPU).iny, cycles: 2}
	instrs[0xc9] = instr{name: "CMP", mode: ModeIMM, fn: (*CPU).cmp, cycles: 2}
	instrs[0xca] = instr{name: "DEX", mode: ModeIMP, fn: (*CPU).dex, cycles: 2}
	instrs[0xcc] = instr{name: "CPY", mode: ModeABS, fn: (*CPU).cpy, cycles: 4}
	instrs[0xcd] = instr{name: "CMP", mode: ModeABS, fn: (*CPU).cmp, cycles: 4}
	instrs[0xce] = instr{name: "DEC", mode: ModeABS, fn: (*CPU).dec, cycles: 6}
	instrs[0xd0] = instr{name: "BNE", mode: ModeREL, fn: (*CPU).bne, cycles: 2}
	instrs[0xd1] = instr{name: "CMP", mode: ModeINDY, fn: (*CPU).cmp, cycles: 5}
	instrs[0xd5] = instr{name: "CMP", mode: ModeZPX, fn: (*CPU).cmp, cycles: 4}
	instrs[0xd6] = instr{name: "DEC", mode: ModeZPX, fn: (*CPU).dec, cycles: 6}
	instrs[0xd8] = instr{name: "CLD", mode: ModeIMP, fn: (*CPU).cld, cycles: 2}
	instrs[0xd9] = instr{name: "CMP", mode: ModeABSY, fn: (*CPU).cmp, cycles: 4}
	instrs[0xdd] = instr{name: "CMP", mode: ModeABSX, fn: (*CPU).cmp, cycles: 4}
	instrs[0xde] = instr{name: "DEC", mode: ModeABSX, fn: (*CPU).dec, cycles: 7}
	instrs[0xe0] = instr{name: "CPX", mode: ModeIMM, fn: (*CPU).cpx, cycles: 2}
	instrs[0xe1] = instr{name: "SBC", mode: ModeINDX, fn: (*CPU).sbc, cycles: 6}
	instrs[0xe4] = instr{name: "CPX", mode: ModeZP, fn: (*CPU).cpx, cycles: 3}
	instrs[0xe5] = instr{name: "SBC", mode: ModeZP, fn: (*CPU).sbc, cycles: 3}
	instrs[0xe6] = instr{name: "INC", mode: ModeZP, fn: (*CPU).inc, cycles: 5}
	instrs[0xe8] = instr{name: "INX", mode: ModeIMP, fn: (*CPU).inx, cycles: 2}
	instrs[0xe9] = instr{name: "SBC", mode: ModeIMM, fn: (*CPU).sbc, cycles: 2}
	instrs[0xea] = instr{name: "NOP", mode: ModeIMP, fn: (*CPU).nop, cycles: 2}
	instrs[0xec] = instr{name: "CPX", mode: ModeABS, fn: (*CPU).cpx, cycles: 4}
	instrs[0xed] = instr{name: "SBC", mode: ModeABS, fn: (*CPU).sbc, cycles: 4}
	instrs[0xee] = instr{name: "INC", mode: ModeABS, fn: (*CPU).inc, cycles: 6}
	instrs[0xf0] = instr{name: "BEQ", mode: ModeREL, fn: (*CPU).beq, cycles: 2}
	instrs[0xf1] = instr{name: "SBC", mode: ModeINDY, fn: (*CPU).sbc, cycles: 5}
	instrs[0xf5] = instr{name: "SBC", mode: ModeZPX, fn: (*CPU).sbc, cycles: 4}
	instrs[0xf6] = instr{name: "INC", mode: ModeZPX, fn: (*CPU).inc, cycles: 6}
	instrs[0xf8] = instr{name: "SED", mode: ModeIMP, fn: (*CPU).sed, cycles: 2}
	instrs[0xf9] = instr{name: "SBC", mode: ModeABSY, fn: (*CPU).sbc, cycles: 4}
	instrs[0xfd] = instr{name: "SBC", mode: ModeABSX, fn: (*CPU).sbc, cycles: 4}
	instrs[0xfe] = instr{name: "INC", mode: ModeABSX, fn: (*CPU).inc, cycles: 7}
}

func initUnofficialInstructions() {
	instrs[0x03] = instr{name: "SLO", mode: ModeINDX, fn: (*CPU).slo, cycles: 8, unofficial: true}
	instrs[0x04] = instr{name: "NOP", mode: ModeZP, fn: (*CPU).nop, cycles: 3, unofficial: true}
	instrs[0x07] = instr{name: "SLO", mode: ModeZP, fn: (*CPU).slo, cycles: 5, unofficial: true}
	instrs[0x0b] = instr{name: "ANC", mode: ModeIMM, fn: (*CPU).anc, cycles: 2, unofficial: true}
	instrs[0x0c] = instr{name: "NOP", mode: ModeABS, fn: (*CPU).nop, cycles: 4, unofficial: true}
	instrs[0x0f] = instr{name: "SLO", mode: ModeABS, fn: (*CPU).slo, cycles: 6, unofficial: true}
	instrs[0x13] = instr{name: "SLO", mode: ModeINDY, fn: (*CPU).slo, cycles: 8, unofficial: true}
	instrs[0x14] = instr{name: "NOP", mode: ModeZPX, fn: (*CPU).nop, cycles: 4, unofficial: true}
	instrs[0x17] = instr{name: "SLO", mode: ModeZPX, fn: (*CPU).slo, cycles: 6, unofficial: true}
	instrs[0x1a] = instr{name: "NOP", mode: ModeIMP, fn: (*CPU).nop, cycles: 2, unofficial: true}
	instrs[0x1b] = instr{name: "SLO", mode: ModeABSY, fn: (*CPU).slo, cycles: 7, unofficial: true}
	instrs[0x1c] = instr{name: "NOP", mode: ModeABSX, fn: (*CPU).nop, cycles: 4, unofficial: true}
	instrs[0x1f] = instr{name: "SLO", mode: ModeABSX, fn: (*CPU).slo, cycles: 7, unofficial: true}
	instrs[0x23] = instr{name: "RLA", mode: ModeINDX, fn: (*CPU).rla, cycles: 8, unofficial: true}
	instrs[0x27] = instr{name: "RLA", mode: ModeZP, fn: (*CPU).rla, cycles: 5, unofficial: true}
	instrs[0x2b] = instr{name: "ANC", mode: ModeIMM, fn: (*CPU).anc, cycles: 2, unofficial: true}
	instrs[0x2f] = instr{name: "RLA", mode: ModeABS, fn: (*CPU).rla, cycles: 6, unofficial: true}
	instrs[0x33] = instr{name: "RLA", mode: ModeINDY, fn: (*CPU).rla, cycles: 8, unofficial: true}
	instrs[0x34] = instr{name: "NOP", mode: ModeZPX, fn: (*CPU).nop, cycles: 4, unofficial: true}
	instrs[0x37] = instr{name: "RLA", mode: ModeZPX, fn: (*CPU).rla, cycles: 6, unofficial: true}
	instrs[0x3a] = instr{name: "NOP", mode: ModeIMP, fn: (*CPU).nop, cycles: 2, unofficial: true}
	instrs[0x3b] = instr{name: "RLA", mode: ModeABSY, fn: (*CPU).rla, cycles: 7, unofficial: true}
	instrs[0x3c] = instr{name: "NOP", mode: ModeABSX, fn: (*CPU).nop, cycles: 4, unofficial: true}
	instrs[0x3f] = instr{name: "RLA", mode: ModeABSX, fn: (*CPU).rla, cycles: 7, unofficial: true}
	instrs[0x43] = instr{name: "SRE", mode: ModeINDX, fn: (*CPU).sre, cycles: 8, unofficial: true}
	instrs[0x44] = instr{name: "NOP", mode: ModeZP, fn: (*CPU).nop, cycles: 3, unofficial: true}
	instrs[0x47] = instr{name: "SRE", mode: ModeZP, fn: (*CPU).sre, cycles: 5, unofficial: true}
	instrs[0x4b] = instr{name: "ALR", mode: ModeIMM, fn: (*CPU).alr, cycles: 2, unofficial: true}
	instrs[0x4f] = instr{name: "SRE", mode: ModeABS, fn: (*CPU).sre, cycles: 6, unofficial: true}
	instrs[0x53] = instr{name: "SRE", mode: ModeINDY, fn: (*CPU).sre, cycles: 8, unofficial: true}
	instrs[0x54] = instr{name: "NOP", mode: ModeZPX, fn: (*CPU).nop, cycles: 4, unofficial: true}
	instrs[0x57] = instr{name: "SRE", mode: ModeZPX, fn: (*CPU).sre, cycles: 6, unofficial: true}
	instrs[0x5a] = instr{name: "NOP", mode: ModeIMP, fn: (*CPU).nop, cycles: 2, unofficial: true}
	instrs[0x5b] = instr{name: "SRE", mode: ModeABSY, fn: (*CPU).sre, cycles: 7, unofficial: true}
	instrs[0x5c] = instr{name: "NOP", mode: ModeABSX, fn: (*CPU).nop, cycles: 4, unofficial: true}
	instrs[0x5f] = instr{name: "SRE", mode: ModeABSX, fn: (*CPU).sre, cycles: 7, unofficial: true}
	instrs[0x63] = instr{name: "RRA", mode: ModeINDX, fn: (*CPU).rra, cycles: 8, unofficial: true}
	instrs[0x64] = instr{name: "NOP", mode: ModeZP, fn: (*CPU).nop, cycles: 3, unofficial: true}
	instrs[0x67] = instr{name: "RRA", mode: ModeZP, fn: (*CPU).rra, cycles: 5, unofficial: true}
	instrs[0x6b] = instr{name: "ARR", mode: ModeIMM, fn: (*CPU).arr, cycles: 2, unofficial: true}
	instrs[0x6f] = instr{name: "RRA", mode: ModeABS, fn: (*CPU).rra, cycles: 6, unofficial: true}
	instrs[0x73] = instr{name: "RRA", mode: ModeINDY, fn: (*CPU).rra, cycles: 8, unofficial: true}
	instrs[0x74] = instr{name: "NOP", mode: ModeZPX, fn: (*CPU).nop, cycles: 4, unofficial: true}
	instrs[0x77] = instr{name: "RRA", mode: ModeZPX, fn: (*CPU).rra, cycles: 6, unofficial: true}
	instrs[0x7a] = instr{name: "NOP", mode: ModeIMP, fn: (*CPU).nop, cycles: 2, unofficial: true}
	instrs[0x7b] = instr{name: "RRA", mode: ModeABSY, fn: (*CPU).rra, cycles: 7, unofficial: true}
	instrs[0x7c] = instr{name: "NOP", mode: ModeABSX, fn: (*CPU).nop, cycles: 4, unofficial: true}
	instrs[0x7f] = instr{name: "RRA", mode: ModeABSX, fn: (*CPU).rra, cycles: 7, unofficial: true}
	instrs[0x80] = instr{name: "NOP", mode: ModeIMM, fn: (*CPU).nop, cycles: 2, unofficial: true}
	instrs[0x82] = instr{name: "NOP", mode: ModeIMM, fn: (*CPU).nop, cycles: 2, unofficial: true}
	instrs[0x83] = instr{name: "SAX", mode: ModeINDX, fn: (*CPU).sax, cycles: 6, unofficial: true}
	instrs[0x87] = instr{name: "SAX", mode: ModeZP, fn: (*CPU).sax, cycles: 3, unofficial: true}
	instrs[0x89] = instr{name: "NOP", mode: ModeIMM, fn: (*CPU).nop, cycles: 2, unofficial: true}
	instrs[0x8b] = instr{name: "ANE", mode: ModeIMM, fn: (*CPU).ane, cycles: 2, unofficial: true}
	instrs[0x8f] = instr{name: "SAX", mode: ModeABS, fn: (*CPU).sax, cycles: 4, unofficial: true}
	instrs[0x93] = instr{name: "SHA", mode: ModeINDY, fn: (*CPU).sha, cycles: 6, unofficial: true}
	instrs[0x97] = instr{name: "SAX", mode: ModeZPY, fn: (*CPU).sax, cycles: 4, unofficial: true}
	instrs[0x9b] = instr{name: "SHS", mode: ModeABSY, fn: (*CPU).shs, cycles: 5, unofficial: true}
	instrs[0x9c] = instr{name: "SHY", mode: ModeABSX, fn: (*CPU).shy, cycles: 5, unofficial: true}
	instrs[0x9e] = instr{name: "SHX", mode: ModeABSY, fn: (*CPU).shx, cycles: 5, unofficial: true}
	instrs[0x9f] = instr{name: "SHA", mode: ModeABSY, fn: (*CPU).sha, cycles: 5, unofficial: true}
	instrs[0xa3] = instr{name: "LAX", mode: ModeINDX, fn: (*CPU).lax, cycles: 6, unofficial: true}
	instrs[0xa7] = instr{name: "LAX", mode: ModeZP, fn: (*CPU).lax, cycles: 3, unofficial: true}
	instrs[0xab] = instr{name: "LXA", mode: ModeIMM, fn: (*CPU).lxa, cycles: 2, unofficial: true}
	instrs[0xaf] = instr{name: "LAX", mode: ModeABS, fn: (*CPU).lax, cycles: 4, unofficial: true}
	instrs[0xb3] = instr{name: "LAX", mode: ModeINDY, fn: (*CPU).lax, cycles: 5, unofficial: true}
	instrs[0xb7] = instr{name: "LAX", mode: ModeZPY, fn: (*CPU).lax, cycles: 4, unofficial: true}
	instrs[0xbb] = instr{name: "LAS", mode: ModeABSY, fn: (*CPU).las, cycles: 4, unofficial: true}
	instrs[0xbf] = instr{name: "LAX", mode: ModeABSY, fn: (*CPU).lax, cycles: 4, unofficial: true}
	instrs[0xc2] = instr{name: "NOP", mode: ModeIMM, fn: (*CPU).nop, cycles: 2, unofficial: true}
	instrs[0xc3] = instr{name: "DCP", mode: ModeINDX, fn: (*CPU).dcp, cycles: 8, unofficial: true}
	instrs[0xc7] = instr{name: "DCP", mode: ModeZP, fn: (*CPU).dcp, cycles: 5, unofficial: true}
	instrs[0xcb] = instr{name: "SBX", mode: ModeIMM, fn: (*CPU).sbx, cycles: 2, unofficial: true}
	instrs[0xcf] = instr{name: "DCP", mode: ModeABS, fn: (*CPU).dcp, cycles: 6, unofficial: true}
	instrs[0xd3] = instr{name: "DCP", mode: ModeINDY, fn: (*CPU).dcp, cycles: 8, unofficial: true}
	instrs[0xd4] = instr{name: "NOP", mode: ModeZPX, fn: (*CPU).nop, cycles: 4, unofficial: true}
	instrs[0xd7] = instr{name: "DCP", mode: ModeZPX, fn: (*CPU).dcp, cycles: 6, unofficial: true}
	instrs[0xda] = instr{name: "NOP", mode: ModeIMP, fn: (*CPU).nop, cycles: 2, unofficial: true}
	instrs[0xdb] = instr{name: "DCP", mode: ModeABSY, fn: (*CPU).dcp, cycles: 7, unofficial: true}
	instrs[0xdc] = instr{name: "NOP", mode: ModeABSX, fn: (*CPU).nop, cycles: 4, unofficial: true}
	instrs[0xdf] = instr{name: "DCP", mode: ModeABSX, fn: (*CPU).dcp, cycles: 7, unofficial: true}
	instrs[0xe2] = instr{name: "NOP", mode: ModeIMM, fn: (*CPU).nop, cycles: 2, unofficial: true}
	instrs[0xe3] = instr{name: "ISB", mode: ModeINDX, fn: (*CPU).isb, cycles: 8, unofficial: true}
	instrs[0xe7] = instr{name: "ISB", mode: ModeZP, fn: (*CPU).isb, cycles: 5, unofficial: true}
	instrs[0xeb] = instr{name: "SBC", mode: ModeIMM, fn: (*CPU).sbc, cycles: 2, unofficial: true}
	instrs[0xef] = instr{name: "ISB", mode: ModeABS, fn: (*CPU).isb, cycles: 6, unofficial: true}
	instrs[0xf3] = instr{name: "ISB", mode: ModeINDY, fn: (*CPU).isb, cycles: 8, unofficial: true}
	instrs[0xf4] = instr{name: "NOP", mode: ModeZPX, fn: (*CPU).nop, cycles: 4, unofficial: true}
	instrs[0xf7] = instr{name: "ISB", mode: ModeZPX, fn: (*CPU).isb, cycles: 6, unofficial: true}
	instrs[0xfa] = instr{name: "NOP", mode: ModeIMP, fn: (*CPU).nop, cycles: 2, unofficial: true}
	instrs[0xfb] = instr{name: "ISB", mode: ModeABSY, fn: (*CPU).isb, cycles: 7, unofficial: true}
	instrs[0xfc] = instr{name: "NOP", mode: ModeABSX, fn: (*CPU).nop, cycles: 4, unofficial: true}
	instrs[0xff] = instr{name: "ISB", mode: ModeABSX, fn: (*CPU).isb, cycles: 7, unofficial: true}
}

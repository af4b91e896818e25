package cpu

import (
	"testing"

	"github.com/nevisdale/m6502/internal/bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ADC(t *testing.T) {
	type testArgs struct {
		initA         uint8
		operandValue  uint8
		initP         uint8
		expectedA     uint8
		expectedP     uint8
		pageCrossed   bool
		expectedExtra uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		c := New(nil)
		c.reg.A = in.initA
		c.reg.P = in.initP

		c.adc(operand{mode: ModeIMM, value: in.operandValue, pageCrossed: in.pageCrossed})

		assert.Equal(t, in.expectedA, c.reg.A, "A register")
		assert.Equal(t, StatusString(in.expectedP), StatusString(c.reg.P), "P register")
		assert.Equal(t, in.expectedExtra, c.extra, "extra cycles")
	}

	t.Run("zero result, no carry", func(t *testing.T) {
		testDo(t, testArgs{
			expectedP: uint8(FlagZ),
		})
	})

	t.Run("simple addition, no carry", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x10,
			operandValue: 0x20,
			expectedA:    0x30,
		})
	})

	t.Run("unsigned overflow sets carry", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0xff,
			operandValue: 0x01,
			expectedA:    0x00,
			expectedP:    uint8(FlagZ | FlagC),
		})
	})

	t.Run("negative result with overflow", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x7f,
			operandValue: 0x01,
			expectedA:    0x80,
			expectedP:    uint8(FlagN | FlagV),
		})
	})

	t.Run("simple addition with overflow, result is negative", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x50,
			operandValue: 0x50,
			expectedA:    0xa0,
			expectedP:    uint8(FlagN | FlagV),
		})
	})

	t.Run("addition with carry in, result is negative", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x50,
			operandValue: 0x50,
			initP:        uint8(FlagC),
			expectedA:    0xa1,
			expectedP:    uint8(FlagN | FlagV),
		})
	})

	t.Run("overflow with carry in, result is positive", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0xff,
			operandValue: 0x01,
			initP:        uint8(FlagC),
			expectedA:    0x01,
			expectedP:    uint8(FlagC),
		})
	})

	t.Run("two negatives overflow to positive", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x80,
			operandValue: 0x80,
			expectedA:    0x00,
			expectedP:    uint8(FlagZ | FlagC | FlagV),
		})
	})

	t.Run("decimal flag is ignored", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x09,
			operandValue: 0x01,
			initP:        uint8(FlagD),
			expectedA:    0x0a,
			expectedP:    uint8(FlagD),
		})
	})

	t.Run("page crossed", func(t *testing.T) {
		testDo(t, testArgs{
			initA:         0x01,
			operandValue:  0x01,
			expectedA:     0x02,
			pageCrossed:   true,
			expectedExtra: 1,
		})
	})
}

func Test_SBC(t *testing.T) {
	type testArgs struct {
		initA        uint8
		operandValue uint8
		initP        uint8
		expectedA    uint8
		expectedP    uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		c := New(nil)
		c.reg.A = in.initA
		c.reg.P = in.initP

		c.sbc(operand{mode: ModeIMM, value: in.operandValue})

		assert.Equal(t, in.expectedA, c.reg.A, "A register")
		assert.Equal(t, StatusString(in.expectedP), StatusString(c.reg.P), "P register")
	}

	t.Run("no borrow", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x05,
			operandValue: 0x03,
			initP:        uint8(FlagC),
			expectedA:    0x02,
			expectedP:    uint8(FlagC),
		})
	})

	t.Run("borrow in", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x05,
			operandValue: 0x03,
			expectedA:    0x01,
			expectedP:    uint8(FlagC),
		})
	})

	t.Run("borrow out", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x50,
			operandValue: 0xf0,
			initP:        uint8(FlagC),
			expectedA:    0x60,
		})
	})

	t.Run("signed overflow", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x50,
			operandValue: 0xb0,
			initP:        uint8(FlagC),
			expectedA:    0xa0,
			expectedP:    uint8(FlagN | FlagV),
		})
	})

	t.Run("equal operands", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x42,
			operandValue: 0x42,
			initP:        uint8(FlagC),
			expectedA:    0x00,
			expectedP:    uint8(FlagZ | FlagC),
		})
	})
}

func FuzzADC(f *testing.F) {
	f.Add(uint8(0x00), uint8(0x00))
	f.Add(uint8(0x7f), uint8(0x01))
	f.Add(uint8(0x80), uint8(0xff))
	f.Add(uint8(0xff), uint8(0x01))

	f.Fuzz(func(t *testing.T, a, b uint8) {
		c := New(nil)
		c.reg.A = a
		c.reg.P = 0

		c.adc(operand{mode: ModeIMM, value: b})

		sum := uint16(a) + uint16(b)
		lo := uint8(sum)
		sameSign := (a^b)&0x80 == 0
		assert.Equal(t, lo, c.reg.A)
		assert.Equal(t, sum > 0xff, c.reg.Flag(FlagC), "C")
		assert.Equal(t, lo == 0, c.reg.Flag(FlagZ), "Z")
		assert.Equal(t, lo&0x80 != 0, c.reg.Flag(FlagN), "N")
		assert.Equal(t, sameSign && (a^lo)&0x80 != 0, c.reg.Flag(FlagV), "V")
	})
}

func FuzzSBC(f *testing.F) {
	f.Add(uint8(0x00), uint8(0x01))
	f.Add(uint8(0x80), uint8(0x01))

	f.Fuzz(func(t *testing.T, a, b uint8) {
		c := New(nil)
		c.reg.A = a
		c.reg.P = uint8(FlagC)

		c.sbc(operand{mode: ModeIMM, value: b})

		diff := a - b
		assert.Equal(t, diff, c.reg.A)
		assert.Equal(t, a >= b, c.reg.Flag(FlagC), "C")
		assert.Equal(t, int(int8(a))-int(int8(b)) != int(int8(diff)), c.reg.Flag(FlagV), "V")
	})
}

func Test_Compare(t *testing.T) {
	type testArgs struct {
		reg, m    uint8
		expectedP uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		c := New(nil)
		c.reg.P = 0
		c.compare(in.reg, in.m)
		assert.Equal(t, StatusString(in.expectedP), StatusString(c.reg.P))
	}

	t.Run("equal", func(t *testing.T) {
		testDo(t, testArgs{reg: 0x10, m: 0x10, expectedP: uint8(FlagZ | FlagC)})
	})
	t.Run("greater", func(t *testing.T) {
		testDo(t, testArgs{reg: 0x10, m: 0x01, expectedP: uint8(FlagC)})
	})
	t.Run("less", func(t *testing.T) {
		testDo(t, testArgs{reg: 0x01, m: 0x10, expectedP: uint8(FlagN)})
	})
}

// Test_Instructions runs single instructions from a small program and
// checks registers and memory afterwards.
func Test_Instructions(t *testing.T) {
	type testArgs struct {
		program        []uint8
		reg            Registers
		preset         map[uint16]uint8
		expected       Registers
		expectedMem    map[uint16]uint8
		expectedCycles uint64
	}

	testDo := func(t *testing.T, in testArgs) {
		mem := bus.New()
		c := New(mem)
		require.NoError(t, c.Load(in.program, loadAddr))
		for addr, v := range in.preset {
			mem.Write8(addr, v)
		}
		in.reg.PC = loadAddr
		if in.reg.SP == 0 {
			in.reg.SP = 0xfd
		}
		c.SetRegisters(in.reg)

		require.NoError(t, c.Step())

		in.expected.PC = loadAddr + uint16(len(in.program))
		if in.expected.SP == 0 {
			in.expected.SP = 0xfd
		}
		got := c.Registers()
		assert.Equal(t, in.expected, got, "registers %s vs %s", StatusString(in.expected.P), StatusString(got.P))
		for addr, v := range in.expectedMem {
			assert.Equal(t, v, mem.Read8(addr), "memory at $%04X", addr)
		}
		if in.expectedCycles != 0 {
			assert.Equal(t, in.expectedCycles, c.Cycles(), "cycles")
		}
	}

	t.Run("ASL A", func(t *testing.T) {
		testDo(t, testArgs{
			program:  []uint8{0x0a},
			reg:      Registers{A: 0x81},
			expected: Registers{A: 0x02, P: uint8(FlagC)},
		})
	})

	t.Run("ROR zp feeds carry into bit 7", func(t *testing.T) {
		testDo(t, testArgs{
			program:     []uint8{0x66, 0x10},
			reg:         Registers{P: uint8(FlagC)},
			preset:      map[uint16]uint8{0x10: 0x02},
			expected:    Registers{P: uint8(FlagN)},
			expectedMem: map[uint16]uint8{0x10: 0x81},
		})
	})

	t.Run("ROL A", func(t *testing.T) {
		testDo(t, testArgs{
			program:  []uint8{0x2a},
			reg:      Registers{A: 0x80},
			expected: Registers{A: 0x00, P: uint8(FlagZ | FlagC)},
		})
	})

	t.Run("LSR abs", func(t *testing.T) {
		testDo(t, testArgs{
			program:        []uint8{0x4e, 0x00, 0x02},
			preset:         map[uint16]uint8{0x0200: 0x01},
			expected:       Registers{P: uint8(FlagZ | FlagC)},
			expectedMem:    map[uint16]uint8{0x0200: 0x00},
			expectedCycles: 6,
		})
	})

	t.Run("BIT", func(t *testing.T) {
		testDo(t, testArgs{
			program:  []uint8{0x24, 0x10},
			reg:      Registers{A: 0x01},
			preset:   map[uint16]uint8{0x10: 0xc0},
			expected: Registers{A: 0x01, P: uint8(FlagN | FlagV | FlagZ)},
		})
	})

	t.Run("DEC zp,X wraps in zero page", func(t *testing.T) {
		testDo(t, testArgs{
			program:     []uint8{0xd6, 0xf0},
			reg:         Registers{X: 0x20},
			preset:      map[uint16]uint8{0x10: 0x01},
			expected:    Registers{X: 0x20, P: uint8(FlagZ)},
			expectedMem: map[uint16]uint8{0x10: 0x00},
		})
	})

	t.Run("LDX zp,Y", func(t *testing.T) {
		testDo(t, testArgs{
			program:  []uint8{0xb6, 0x10},
			reg:      Registers{Y: 0x02},
			preset:   map[uint16]uint8{0x12: 0x80},
			expected: Registers{X: 0x80, Y: 0x02, P: uint8(FlagN)},
		})
	})

	t.Run("STA abs,Y wraps the address space", func(t *testing.T) {
		testDo(t, testArgs{
			program:     []uint8{0x99, 0xff, 0xff},
			reg:         Registers{A: 0x42, Y: 0x02},
			expected:    Registers{A: 0x42, Y: 0x02},
			expectedMem: map[uint16]uint8{0x0001: 0x42},
		})
	})

	t.Run("PHP sets B and U in the pushed copy", func(t *testing.T) {
		testDo(t, testArgs{
			program:     []uint8{0x08},
			reg:         Registers{P: uint8(FlagC)},
			expected:    Registers{P: uint8(FlagC), SP: 0xfc},
			expectedMem: map[uint16]uint8{0x01fd: 0x31},
		})
	})

	t.Run("PLP drops B and keeps U as pulled", func(t *testing.T) {
		testDo(t, testArgs{
			program:  []uint8{0x28},
			reg:      Registers{SP: 0xfc},
			preset:   map[uint16]uint8{0x01fd: 0xdf},
			expected: Registers{P: 0xcf},
		})
	})

	t.Run("PLA", func(t *testing.T) {
		testDo(t, testArgs{
			program:        []uint8{0x68},
			reg:            Registers{SP: 0xfc},
			preset:         map[uint16]uint8{0x01fd: 0x00},
			expected:       Registers{P: uint8(FlagZ)},
			expectedCycles: 4,
		})
	})

	t.Run("TXS leaves flags alone", func(t *testing.T) {
		testDo(t, testArgs{
			program:  []uint8{0x9a},
			reg:      Registers{X: 0x80},
			expected: Registers{X: 0x80, SP: 0x80},
		})
	})

	t.Run("TSX", func(t *testing.T) {
		testDo(t, testArgs{
			program:  []uint8{0xba},
			reg:      Registers{SP: 0x80},
			expected: Registers{X: 0x80, SP: 0x80, P: uint8(FlagN)},
		})
	})

	t.Run("LAX zp", func(t *testing.T) {
		testDo(t, testArgs{
			program:        []uint8{0xa7, 0x10},
			preset:         map[uint16]uint8{0x10: 0x80},
			expected:       Registers{A: 0x80, X: 0x80, P: uint8(FlagN)},
			expectedCycles: 3,
		})
	})

	t.Run("SAX zp", func(t *testing.T) {
		testDo(t, testArgs{
			program:     []uint8{0x87, 0x10},
			reg:         Registers{A: 0xf0, X: 0x3c},
			expected:    Registers{A: 0xf0, X: 0x3c},
			expectedMem: map[uint16]uint8{0x10: 0x30},
		})
	})

	t.Run("DCP zp", func(t *testing.T) {
		testDo(t, testArgs{
			program:        []uint8{0xc7, 0x10},
			reg:            Registers{A: 0x05},
			preset:         map[uint16]uint8{0x10: 0x06},
			expected:       Registers{A: 0x05, P: uint8(FlagZ | FlagC)},
			expectedMem:    map[uint16]uint8{0x10: 0x05},
			expectedCycles: 5,
		})
	})

	t.Run("ISB zp", func(t *testing.T) {
		testDo(t, testArgs{
			program:     []uint8{0xe7, 0x10},
			reg:         Registers{A: 0x10, P: uint8(FlagC)},
			preset:      map[uint16]uint8{0x10: 0x04},
			expected:    Registers{A: 0x0b, P: uint8(FlagC)},
			expectedMem: map[uint16]uint8{0x10: 0x05},
		})
	})

	t.Run("SLO zp", func(t *testing.T) {
		testDo(t, testArgs{
			program:     []uint8{0x07, 0x10},
			reg:         Registers{A: 0x01},
			preset:      map[uint16]uint8{0x10: 0x81},
			expected:    Registers{A: 0x03, P: uint8(FlagC)},
			expectedMem: map[uint16]uint8{0x10: 0x02},
		})
	})

	t.Run("RRA zp", func(t *testing.T) {
		testDo(t, testArgs{
			program:     []uint8{0x67, 0x10},
			reg:         Registers{A: 0x01},
			preset:      map[uint16]uint8{0x10: 0x03},
			expected:    Registers{A: 0x03},
			expectedMem: map[uint16]uint8{0x10: 0x01},
		})
	})

	t.Run("SLO abs,Y page crossed costs no extra cycle", func(t *testing.T) {
		testDo(t, testArgs{
			program:        []uint8{0x1b, 0xff, 0x02},
			reg:            Registers{Y: 0x01},
			expected:       Registers{Y: 0x01, P: uint8(FlagZ)},
			expectedCycles: 7,
		})
	})

	t.Run("ANC", func(t *testing.T) {
		testDo(t, testArgs{
			program:  []uint8{0x0b, 0x80},
			reg:      Registers{A: 0xf0},
			expected: Registers{A: 0x80, P: uint8(FlagN | FlagC)},
		})
	})

	t.Run("ALR", func(t *testing.T) {
		testDo(t, testArgs{
			program:  []uint8{0x4b, 0x03},
			reg:      Registers{A: 0xff},
			expected: Registers{A: 0x01, P: uint8(FlagC)},
		})
	})

	t.Run("ARR with carry in", func(t *testing.T) {
		testDo(t, testArgs{
			program:  []uint8{0x6b, 0xff},
			reg:      Registers{A: 0xff, P: uint8(FlagC)},
			expected: Registers{A: 0xff, P: uint8(FlagN | FlagC)},
		})
	})

	t.Run("ARR sets V from bits 6 and 5", func(t *testing.T) {
		testDo(t, testArgs{
			program:  []uint8{0x6b, 0x80},
			reg:      Registers{A: 0xff},
			expected: Registers{A: 0x40, P: uint8(FlagC | FlagV)},
		})
	})

	t.Run("SBX", func(t *testing.T) {
		testDo(t, testArgs{
			program:  []uint8{0xcb, 0x05},
			reg:      Registers{A: 0x0f, X: 0xff},
			expected: Registers{A: 0x0f, X: 0x0a, P: uint8(FlagC)},
		})
	})

	t.Run("ANE", func(t *testing.T) {
		testDo(t, testArgs{
			program:  []uint8{0x8b, 0xff},
			reg:      Registers{A: 0x00, X: 0x0f},
			expected: Registers{A: 0x0e, X: 0x0f},
		})
	})

	t.Run("LXA", func(t *testing.T) {
		testDo(t, testArgs{
			program:  []uint8{0xab, 0x0f},
			reg:      Registers{A: 0x01},
			expected: Registers{A: 0x0f, X: 0x0f},
		})
	})

	t.Run("LAS", func(t *testing.T) {
		testDo(t, testArgs{
			program:  []uint8{0xbb, 0x00, 0x03},
			reg:      Registers{SP: 0xf0},
			preset:   map[uint16]uint8{0x0300: 0x3c},
			expected: Registers{A: 0x30, X: 0x30, SP: 0x30},
		})
	})

	t.Run("SHX same page", func(t *testing.T) {
		testDo(t, testArgs{
			program:        []uint8{0x9e, 0x00, 0x03},
			reg:            Registers{X: 0xff, Y: 0x01},
			expected:       Registers{X: 0xff, Y: 0x01},
			expectedMem:    map[uint16]uint8{0x0301: 0x04},
			expectedCycles: 5,
		})
	})

	t.Run("SHY page crossed replaces the high byte", func(t *testing.T) {
		testDo(t, testArgs{
			program:     []uint8{0x9c, 0xf8, 0x02},
			reg:         Registers{X: 0x10, Y: 0x12},
			expected:    Registers{X: 0x10, Y: 0x12},
			expectedMem: map[uint16]uint8{0x0208: 0x02},
		})
	})

	t.Run("SHS", func(t *testing.T) {
		testDo(t, testArgs{
			program:     []uint8{0x9b, 0x00, 0x03},
			reg:         Registers{A: 0xf3, X: 0x3f},
			expected:    Registers{A: 0xf3, X: 0x3f, SP: 0x33},
			expectedMem: map[uint16]uint8{0x0300: 0x00},
		})
	})

	t.Run("NOP zp reads and discards", func(t *testing.T) {
		testDo(t, testArgs{
			program:        []uint8{0x04, 0x10},
			preset:         map[uint16]uint8{0x10: 0xff},
			expectedMem:    map[uint16]uint8{0x10: 0xff},
			expectedCycles: 3,
		})
	})
}

func Test_InstructionTable(t *testing.T) {
	jam := map[uint8]bool{
		0x02: true, 0x12: true, 0x22: true, 0x32: true, 0x42: true, 0x52: true,
		0x62: true, 0x72: true, 0x92: true, 0xb2: true, 0xd2: true, 0xf2: true,
	}

	official, unofficial := 0, 0
	for op := 0; op < 0x100; op++ {
		in, ok := Lookup(uint8(op))
		if jam[uint8(op)] {
			assert.False(t, ok, "opcode $%02X", op)
			continue
		}
		require.True(t, ok, "opcode $%02X", op)
		assert.NotZero(t, in.Cycles, "opcode $%02X", op)
		if in.Official {
			official++
		} else {
			unofficial++
		}
	}
	assert.Equal(t, 151, official)
	assert.Equal(t, 93, unofficial)

	lda, ok := Lookup(0xbd)
	require.True(t, ok)
	assert.Equal(t, Instruction{Name: "LDA", Mode: ModeABSX, Cycles: 4, Official: true}, lda)
	assert.Equal(t, uint16(3), lda.Size())
}

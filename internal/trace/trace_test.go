package trace

import (
	"errors"
	"strings"
	"testing"

	"github.com/nevisdale/m6502/internal/bus"
	"github.com/nevisdale/m6502/internal/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Format(t *testing.T) {
	type testArgs struct {
		opcode   uint8
		operand  [2]uint8
		pc       uint16
		regs     cpu.Registers
		cycles   uint64
		expected string
	}

	testDo := func(t *testing.T, in testArgs) {
		instr, ok := cpu.Lookup(in.opcode)
		require.True(t, ok)

		regs := in.regs
		regs.PC = in.pc
		tr := cpu.Trace{
			State:       cpu.State{Registers: regs, Cycles: in.cycles},
			Opcode:      in.opcode,
			Operand:     in.operand,
			Instruction: instr,
		}
		assert.Equal(t, in.expected, Format(tr))
	}

	t.Run("immediate", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:   0xa9,
			operand:  [2]uint8{0x01},
			pc:       0x0600,
			regs:     cpu.Registers{SP: 0xfd, P: 0x24},
			expected: "0600  A9 01     LDA #$01                        A:00 X:00 Y:00 P:24 SP:FD CYC:0",
		})
	})

	t.Run("absolute jump", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:   0x4c,
			operand:  [2]uint8{0xf5, 0xc5},
			pc:       0xc000,
			regs:     cpu.Registers{SP: 0xfd, P: 0x24},
			cycles:   7,
			expected: "C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7",
		})
	})

	t.Run("unofficial is marked", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:   0x04,
			operand:  [2]uint8{0xa9},
			pc:       0xc6bd,
			regs:     cpu.Registers{A: 0xaa, SP: 0xfb, P: 0xef},
			cycles:   14579,
			expected: "C6BD  04 A9    *NOP $A9                         A:AA X:00 Y:00 P:EF SP:FB CYC:14579",
		})
	})

	t.Run("branch target is absolute", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:   0xd0,
			operand:  [2]uint8{0xfe},
			pc:       0x0610,
			expected: "0610  D0 FE     BNE $0610                       A:00 X:00 Y:00 P:00 SP:00 CYC:0",
		})
	})

	t.Run("accumulator", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:   0x0a,
			pc:       0x0600,
			regs:     cpu.Registers{A: 0x81},
			expected: "0600  0A        ASL A                           A:81 X:00 Y:00 P:00 SP:00 CYC:0",
		})
	})
}

func Test_Logger(t *testing.T) {
	mem := bus.New()
	var out strings.Builder
	logger := NewLogger(&out)
	c := cpu.New(mem, cpu.WithTracer(logger))
	require.NoError(t, c.Load([]uint8{0xa9, 0x01, 0xaa, 0xe8}, 0x0600))

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Step())
	}
	require.NoError(t, logger.Err())
	assert.Equal(t, uint64(3), logger.Lines())

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "0600  A9 01     LDA #$01"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0602  AA        TAX"), lines[1])
	assert.Contains(t, lines[2], "A:01 X:01 Y:00")
	assert.Contains(t, lines[2], "CYC:4")
}

type failingWriter struct {
	calls int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errors.New("disk full")
}

func Test_Logger_KeepsFirstError(t *testing.T) {
	w := &failingWriter{}
	logger := NewLogger(w)

	logger.Trace(cpu.Trace{Instruction: cpu.Instruction{Name: "NOP", Mode: cpu.ModeIMP, Official: true}})
	logger.Trace(cpu.Trace{Instruction: cpu.Instruction{Name: "NOP", Mode: cpu.ModeIMP, Official: true}})

	assert.EqualError(t, logger.Err(), "disk full")
	assert.Equal(t, 1, w.calls)
	assert.Equal(t, uint64(0), logger.Lines())
}

func Test_Format_MatchesDisassembly(t *testing.T) {
	const pc = 0xc0f0
	operand := [2]uint8{0x84, 0x12}

	for opcode := 0; opcode < 0x100; opcode++ {
		instr, ok := cpu.Lookup(uint8(opcode))
		if !ok {
			continue
		}

		mem := bus.New()
		require.NoError(t, mem.Load([]uint8{uint8(opcode), operand[0], operand[1]}, pc))
		text, _ := cpu.Disassemble(mem, pc)

		tr := cpu.Trace{
			State:       cpu.State{Registers: cpu.Registers{PC: pc}},
			Opcode:      uint8(opcode),
			Operand:     operand,
			Instruction: instr,
		}
		assert.Contains(t, Format(tr), text, "opcode $%02X", opcode)
	}
}

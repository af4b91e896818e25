package monitor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nevisdale/m6502/internal/bus"
	"github.com/nevisdale/m6502/internal/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loadAddr = 0x0600

// LDA #$01, TAX, INX, then an invalid opcode
var program = []uint8{0xa9, 0x01, 0xaa, 0xe8, 0x02}

type testTarget struct {
	bus     *bus.Bus
	cpu     *cpu.CPU
	program []uint8
	resets  int
}

func newTestTarget(t *testing.T, program []uint8) *testTarget {
	t.Helper()
	b := bus.New()
	tt := &testTarget{bus: b, cpu: cpu.New(b), program: program}
	require.NoError(t, tt.cpu.Load(program, loadAddr))
	return tt
}

func (tt *testTarget) Step() error { return tt.cpu.Step() }
func (tt *testTarget) CPU() *cpu.CPU { return tt.cpu }
func (tt *testTarget) Bus() *bus.Bus { return tt.bus }
func (tt *testTarget) Reset() {
	tt.resets++
	_ = tt.cpu.Load(tt.program, loadAddr)
}

func run(t *testing.T, target Target, input string, interactive bool) string {
	t.Helper()
	var out strings.Builder
	New(target).RunCommands(context.Background(), strings.NewReader(input), &out, interactive)
	return out.String()
}

func Test_Monitor(t *testing.T) {
	type testArgs struct {
		input    string
		contains []string
		excludes []string
		check    func(t *testing.T, target *testTarget)
	}

	testDo := func(t *testing.T, in testArgs) {
		target := newTestTarget(t, program)
		out := run(t, target, in.input, false)
		for _, s := range in.contains {
			assert.Contains(t, out, s)
		}
		for _, s := range in.excludes {
			assert.NotContains(t, out, s)
		}
		if in.check != nil {
			in.check(t, target)
		}
	}

	t.Run("initial state", func(t *testing.T) {
		testDo(t, testArgs{
			input:    "",
			contains: []string{"0600- A9 01     LDA #$01", "A=00 X=00 Y=00 PS=[nv-bdIzc] SP=FD PC=0600 C=0"},
		})
	})

	t.Run("step", func(t *testing.T) {
		testDo(t, testArgs{
			input:    "step\nstep 2\n",
			contains: []string{"0602- AA", "A=01", "X=02", "PC=0604 C=6"},
			check: func(t *testing.T, target *testTarget) {
				assert.Equal(t, uint16(0x0604), target.cpu.Registers().PC)
			},
		})
	})

	t.Run("empty line repeats", func(t *testing.T) {
		testDo(t, testArgs{
			input: "step\n\n",
			check: func(t *testing.T, target *testTarget) {
				assert.Equal(t, uint16(0x0603), target.cpu.Registers().PC)
			},
		})
	})

	t.Run("run stops on error", func(t *testing.T) {
		testDo(t, testArgs{
			input:    "run\n",
			contains: []string{"invalid opcode", "Executed 3 instructions."},
			check: func(t *testing.T, target *testTarget) {
				assert.ErrorIs(t, target.cpu.Halted(), cpu.ErrInvalidOpcode)
			},
		})
	})

	t.Run("run with a count", func(t *testing.T) {
		testDo(t, testArgs{
			input:    "run 2\n",
			contains: []string{"Executed 2 instructions."},
			excludes: []string{"invalid opcode"},
		})
	})

	t.Run("registers reports a halt", func(t *testing.T) {
		testDo(t, testArgs{
			input:    "run\nregisters\n",
			contains: []string{"Halted: invalid opcode"},
		})
	})

	t.Run("memory", func(t *testing.T) {
		testDo(t, testArgs{
			input:    "memory 0600 4\n\n",
			contains: []string{"0600- A9 01 AA E8\n", "0604- 02 00 00"},
		})
	})

	t.Run("memory accepts prefixes", func(t *testing.T) {
		testDo(t, testArgs{
			input:    "memory $0601 1\nmemory 0x0602 1\n",
			contains: []string{"0601- 01\n", "0602- AA\n"},
		})
	})

	t.Run("disassemble", func(t *testing.T) {
		testDo(t, testArgs{
			input:    "disassemble 0600 2\ndisassemble\n",
			contains: []string{">0600- LDA #$01\n", " 0602- TAX\n", " 0603- INX\n", " 0604- .DB $02\n"},
		})
	})

	t.Run("disassemble defaults to PC", func(t *testing.T) {
		testDo(t, testArgs{
			input:    "step\ndisassemble\n",
			contains: []string{">0602- TAX\n"},
			excludes: []string{"0600- LDA"},
		})
	})

	t.Run("reset", func(t *testing.T) {
		testDo(t, testArgs{
			input: "step 3\nreset\n",
			check: func(t *testing.T, target *testTarget) {
				assert.Equal(t, 1, target.resets)
				assert.Equal(t, uint16(loadAddr), target.cpu.Registers().PC)
			},
		})
	})

	t.Run("opcode", func(t *testing.T) {
		testDo(t, testArgs{
			input: "opcode lda\nopcode LAX\n",
			contains: []string{
				"$A9  LDA  IMM  2 bytes 2 cycles\n",
				"$AD  LDA  ABS  3 bytes 4 cycles\n",
				"$A7  LAX  ZP   2 bytes 3 cycles (unofficial)\n",
			},
		})
	})

	t.Run("opcode lookup errors", func(t *testing.T) {
		testDo(t, testArgs{
			input:    "opcode txa\nopcode tx\nopcode zz\n",
			contains: []string{"$8A  TXA", "tx: ", "zz: "},
		})
	})

	t.Run("unknown command", func(t *testing.T) {
		testDo(t, testArgs{
			input:    "frobnicate\n",
			contains: []string{"Command not found."},
		})
	})

	t.Run("bad argument shows usage", func(t *testing.T) {
		testDo(t, testArgs{
			input:    "memory zzzz\nstep x\n",
			contains: []string{"Usage: memory [<address>] [<bytes>]", "Usage: step [<count>]"},
		})
	})

	t.Run("help", func(t *testing.T) {
		testDo(t, testArgs{
			input:    "help\nhelp opcode\n",
			contains: []string{"Commands:", "disassemble", "quit", "Usage: opcode <mnemonic>"},
		})
	})

	t.Run("quit stops reading", func(t *testing.T) {
		testDo(t, testArgs{
			input: "quit\nstep\n",
			check: func(t *testing.T, target *testTarget) {
				assert.Equal(t, uint16(loadAddr), target.cpu.Registers().PC)
			},
		})
	})
}

func Test_Monitor_Prompt(t *testing.T) {
	out := run(t, newTestTarget(t, program), "registers\n", true)
	assert.Equal(t, 2, strings.Count(out, "* "))

	out = run(t, newTestTarget(t, program), "registers\n", false)
	assert.NotContains(t, out, "* ")
	assert.Contains(t, out, "registers\n", "commands are echoed when not interactive")
}

func Test_IsTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "input"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
}

// latch is a register that clears itself when read.
type latch struct {
	v     uint8
	reads int
}

func (l *latch) Read8(uint16) uint8 {
	l.reads++
	v := l.v
	l.v = 0
	return v
}

func (l *latch) Write8(_ uint16, data uint8) { l.v = data }
func (l *latch) Peek8(uint16) uint8          { return l.v }

func Test_Monitor_ReadsWithoutSideEffects(t *testing.T) {
	testDo := func(t *testing.T, input, expected string) {
		t.Helper()

		target := newTestTarget(t, program)
		dev := &latch{v: 0x80}
		require.NoError(t, target.bus.Attach(0x2000, 0x2007, dev))

		out := run(t, target, input, false)
		assert.Contains(t, out, expected)
		assert.Equal(t, uint8(0x80), dev.v)
		assert.Zero(t, dev.reads)
	}

	t.Run("memory", func(t *testing.T) {
		testDo(t, "memory 2002 1\n", "2002- 80")
	})
	t.Run("disassemble", func(t *testing.T) {
		testDo(t, "disassemble 2002 1\n", "2002- NOP #$80")
	})
}

// Package trace writes an execution log in the format of the nestest
// reference log, one line per instruction before it executes.
package trace

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/nevisdale/m6502/internal/cpu"
)

// Logger implements cpu.Tracer. The first write error is kept and every
// later line is dropped.
type Logger struct {
	mu  sync.Mutex
	w   io.Writer
	err error
	n   uint64
}

func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w}
}

func (l *Logger) Trace(t cpu.Trace) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.err != nil {
		return
	}
	if _, err := io.WriteString(l.w, Format(t)+"\n"); err != nil {
		l.err = err
		return
	}
	l.n++
}

// Err returns the first write error.
func (l *Logger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Lines returns how many lines were written.
func (l *Logger) Lines() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.n
}

// Format renders a trace record:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7
//
// Unofficial opcodes are marked with a '*' before the mnemonic.
func Format(t cpu.Trace) string {
	size := t.Instruction.Size()

	var raw strings.Builder
	fmt.Fprintf(&raw, "%02X", t.Opcode)
	for i := uint16(0); i+1 < size; i++ {
		fmt.Fprintf(&raw, " %02X", t.Operand[i])
	}

	mark := ' '
	if !t.Instruction.Official {
		mark = '*'
	}

	return fmt.Sprintf("%04X  %-8s %c%-32sA:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		t.PC, raw.String(), mark, cpu.FormatInstruction(t.Instruction, t.PC, t.Operand),
		t.A, t.X, t.Y, t.P, t.SP, t.Cycles)
}

package cpu

import (
	"errors"

	"github.com/nevisdale/m6502/internal/translate"
)

var f = translate.From

var (
	// Fatal interpreter errors
	ErrInvalidOpcode  = errors.New(f("invalid opcode"))
	ErrStackOverflow  = errors.New(f("stack overflow"))
	ErrStackUnderflow = errors.New(f("stack underflow"))
	ErrNonProgress    = errors.New(f("no progress"))
	ErrHalted         = errors.New(f("cpu halted"))

	// ErrBreak is returned by a BrkHandler to stop the CPU at a BRK.
	ErrBreak = errors.New(f("break"))

	ErrProgramTooLarge = errors.New(f("program larger than address space"))
)

// OpcodeError reports a fetched byte with no handler in the dispatch table.
type OpcodeError struct {
	Opcode uint8
	PC     uint16 // address of the opcode
}

func (e *OpcodeError) Error() string {
	return f("invalid opcode $%02X at $%04X", e.Opcode, e.PC)
}

func (e *OpcodeError) Is(err error) bool {
	return err == ErrInvalidOpcode
}

// StackError reports a push or pop that would wrap the stack pointer.
type StackError struct {
	Op  string // "push" or "pop"
	SP  uint8
	PC  uint16 // address of the instruction
	Err error
}

func (e *StackError) Error() string {
	return f("%v: %v at $%04X (SP=$%02X)", e.Op, e.Err, e.PC, e.SP)
}

func (e *StackError) Unwrap() error {
	return e.Err
}

// SpinError reports an instruction fetched from the same address over and
// over. It is a heuristic: a program waiting in place for an interrupt
// looks the same.
type SpinError struct {
	PC    uint16
	Count int
}

func (e *SpinError) Error() string {
	return f("no progress: $%04X fetched %v times in a row", e.PC, e.Count)
}

func (e *SpinError) Is(err error) bool {
	return err == ErrNonProgress
}

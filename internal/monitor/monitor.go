// Package monitor is a line-oriented debugger for a running machine: it
// single-steps, runs, dumps memory and disassembles.
package monitor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/beevik/cmd"
	"github.com/beevik/prefixtree/v2"
	"golang.org/x/term"

	"github.com/nevisdale/m6502/internal/bus"
	"github.com/nevisdale/m6502/internal/cpu"
)

const (
	defaultDumpBytes   = 64
	defaultDisasmLines = 10
	bytesPerRow        = 16
)

var errQuit = errors.New("quit")

// Target is the machine the monitor drives.
type Target interface {
	Step() error
	Reset()
	CPU() *cpu.CPU
	Bus() *bus.Bus
}

type Monitor struct {
	target Target

	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	lastCmd     *cmd.Selection

	memAddr    uint16
	disasmAddr uint16
	disasmSet  bool

	opcodes *prefixtree.Tree[[]uint8]
}

func New(t Target) *Monitor {
	return &Monitor{
		target:  t,
		opcodes: newOpcodeTree(),
	}
}

// newOpcodeTree indexes every opcode with a handler by lowercase mnemonic.
func newOpcodeTree() *prefixtree.Tree[[]uint8] {
	byName := make(map[string][]uint8)
	var names []string
	for i := 0; i < 0x100; i++ {
		in, ok := cpu.Lookup(uint8(i))
		if !ok {
			continue
		}
		name := strings.ToLower(in.Name)
		if _, seen := byName[name]; !seen {
			names = append(names, name)
		}
		byName[name] = append(byName[name], uint8(i))
	}

	tree := prefixtree.New[[]uint8]()
	for _, name := range names {
		tree.Add(name, byName[name])
	}
	return tree
}

// IsTerminal reports whether f is attached to a terminal, which decides
// whether a prompt is shown.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// RunCommands reads commands from r until EOF or quit and writes the
// results to w. An empty line repeats the previous command.
func (m *Monitor) RunCommands(ctx context.Context, r io.Reader, w io.Writer, interactive bool) {
	m.input = bufio.NewScanner(r)
	m.output = bufio.NewWriter(w)
	m.interactive = interactive
	defer m.flush()

	m.displayPC()

	for {
		if ctx.Err() != nil {
			return
		}
		m.prompt()

		line, err := m.getLine()
		if err != nil {
			return
		}

		var c cmd.Selection
		if line != "" {
			c, err = cmds.Lookup(line)
			switch {
			case errors.Is(err, cmd.ErrNotFound):
				m.println("Command not found.")
				continue
			case errors.Is(err, cmd.ErrAmbiguous):
				m.println("Command is ambiguous.")
				continue
			case err != nil:
				m.printf("ERROR: %v.\n", err)
				continue
			}
		} else if m.lastCmd != nil {
			c = *m.lastCmd
		}

		if c.Command == nil {
			continue
		}
		m.lastCmd = &c

		handler := c.Command.Data.(func(*Monitor, cmd.Selection) error)
		if err := handler(m, c); err != nil {
			if !errors.Is(err, errQuit) {
				m.printf("ERROR: %v.\n", err)
			}
			return
		}
	}
}

func (m *Monitor) getLine() (string, error) {
	if !m.input.Scan() {
		if err := m.input.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := strings.TrimSpace(m.input.Text())
	if !m.interactive && line != "" {
		m.println(line)
	}
	return line, nil
}

func (m *Monitor) prompt() {
	if m.interactive {
		m.print("* ")
		m.flush()
	}
}

func (m *Monitor) print(args ...any) {
	fmt.Fprint(m.output, args...)
}

func (m *Monitor) printf(format string, args ...any) {
	fmt.Fprintf(m.output, format, args...)
	m.flush()
}

func (m *Monitor) println(args ...any) {
	fmt.Fprintln(m.output, args...)
	m.flush()
}

func (m *Monitor) flush() {
	m.output.Flush()
}

// displayPC shows the instruction at PC next to the register file.
func (m *Monitor) displayPC() {
	c := m.target.CPU()
	regs := c.Registers()
	mem := m.target.Bus().View()
	text, next := cpu.Disassemble(mem, regs.PC)

	var raw strings.Builder
	for addr := regs.PC; addr != next; addr++ {
		if raw.Len() > 0 {
			raw.WriteByte(' ')
		}
		fmt.Fprintf(&raw, "%02X", mem.Read8(addr))
	}

	m.printf("%04X- %-8s  %-14s A=%02X X=%02X Y=%02X PS=[%s] SP=%02X PC=%04X C=%d\n",
		regs.PC, raw.String(), text,
		regs.A, regs.X, regs.Y, cpu.StatusString(regs.P), regs.SP, regs.PC, c.Cycles())
}

func (m *Monitor) displayUsage(c cmd.Selection) {
	for _, d := range commands {
		if d.name == c.Command.Name {
			m.printf("Usage: %s\n", d.usage)
			return
		}
	}
}

func (m *Monitor) cmdHelp(c cmd.Selection) error {
	if len(c.Args) == 0 {
		m.println("Commands:")
		for _, d := range commands {
			m.printf("    %-12s %s\n", d.name, d.brief)
		}
		return nil
	}

	s, err := cmds.Lookup(strings.Join(c.Args, " "))
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}
	for _, d := range commands {
		if d.name == s.Command.Name {
			m.printf("Usage: %s\n\n%s.\n", d.usage, d.brief)
		}
	}
	return nil
}

func (m *Monitor) cmdStep(c cmd.Selection) error {
	count, err := countArg(c.Args, 0, 1)
	if err != nil {
		m.displayUsage(c)
		return nil
	}

	for i := uint64(0); i < count; i++ {
		if err := m.target.Step(); err != nil {
			m.printf("%v\n", err)
			break
		}
		m.displayPC()
	}
	m.disasmSet = false
	return nil
}

func (m *Monitor) cmdRun(c cmd.Selection) error {
	limit, err := countArg(c.Args, 0, 0)
	if err != nil {
		m.displayUsage(c)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var n uint64
	for limit == 0 || n < limit {
		if ctx.Err() != nil {
			m.println("Interrupted.")
			break
		}
		if err := m.target.Step(); err != nil {
			m.printf("%v\n", err)
			break
		}
		n++
	}
	m.printf("Executed %d instructions.\n", n)
	m.displayPC()
	m.disasmSet = false
	return nil
}

func (m *Monitor) cmdRegisters(c cmd.Selection) error {
	m.displayPC()
	if err := m.target.CPU().Halted(); err != nil {
		m.printf("Halted: %v\n", err)
	}
	return nil
}

func (m *Monitor) cmdMemory(c cmd.Selection) error {
	addr := m.memAddr
	if len(c.Args) > 0 {
		a, err := parseAddr(c.Args[0])
		if err != nil {
			m.displayUsage(c)
			return nil
		}
		addr = a
	}
	n, err := countArg(c.Args, 1, defaultDumpBytes)
	if err != nil {
		m.displayUsage(c)
		return nil
	}

	mem := m.target.Bus().View()
	for row := uint64(0); row < n; row += bytesPerRow {
		m.print(fmt.Sprintf("%04X-", addr))
		for i := uint64(0); i < bytesPerRow && row+i < n; i++ {
			m.print(fmt.Sprintf(" %02X", mem.Read8(addr)))
			addr++
		}
		m.println()
	}

	m.memAddr = addr
	m.lastCmd.Args = nil
	return nil
}

func (m *Monitor) cmdDisassemble(c cmd.Selection) error {
	addr := m.disasmAddr
	if !m.disasmSet {
		addr = m.target.CPU().Registers().PC
	}
	if len(c.Args) > 0 {
		a, err := parseAddr(c.Args[0])
		if err != nil {
			m.displayUsage(c)
			return nil
		}
		addr = a
	}
	n, err := countArg(c.Args, 1, defaultDisasmLines)
	if err != nil {
		m.displayUsage(c)
		return nil
	}

	pc := m.target.CPU().Registers().PC
	for _, line := range cpu.DisassembleRange(m.target.Bus().View(), addr, int(n)) {
		mark := ' '
		if line.Addr == pc {
			mark = '>'
		}
		m.printf("%c%04X- %s\n", mark, line.Addr, line.Text)
		addr = line.Addr + line.Size
	}

	m.disasmAddr = addr
	m.disasmSet = true
	m.lastCmd.Args = nil
	return nil
}

func (m *Monitor) cmdReset(c cmd.Selection) error {
	m.target.Reset()
	m.disasmSet = false
	m.displayPC()
	return nil
}

func (m *Monitor) cmdOpcode(c cmd.Selection) error {
	if len(c.Args) != 1 {
		m.displayUsage(c)
		return nil
	}

	opcodes, err := m.opcodes.FindValue(strings.ToLower(c.Args[0]))
	if err != nil {
		m.printf("%s: %v\n", c.Args[0], err)
		return nil
	}
	for _, opcode := range opcodes {
		in, _ := cpu.Lookup(opcode)
		kind := ""
		if !in.Official {
			kind = " (unofficial)"
		}
		m.printf("$%02X  %s  %-4s %d bytes %d cycles%s\n",
			opcode, in.Name, in.Mode, in.Size(), in.Cycles, kind)
	}
	return nil
}

func (m *Monitor) cmdQuit(c cmd.Selection) error {
	return errQuit
}

// parseAddr accepts a hex address with an optional "$" or "0x" prefix.
func parseAddr(s string) (uint16, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

// countArg parses args[i] as a decimal count, returning def when absent.
func countArg(args []string, i int, def uint64) (uint64, error) {
	if len(args) <= i {
		return def, nil
	}
	return strconv.ParseUint(args[i], 10, 64)
}

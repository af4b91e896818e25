package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"

	"github.com/pkg/profile"

	"github.com/nevisdale/m6502/internal/bus"
	"github.com/nevisdale/m6502/internal/cart"
	"github.com/nevisdale/m6502/internal/cpu"
	"github.com/nevisdale/m6502/internal/monitor"
	"github.com/nevisdale/m6502/internal/nes"
	"github.com/nevisdale/m6502/internal/trace"
	"github.com/nevisdale/m6502/internal/ui"
	"github.com/nevisdale/m6502/internal/ui/panel"
)

var (
	loadAddr     string
	nesImage     bool
	steps        uint64
	traceFile    string
	strictStack  bool
	noUnofficial bool
	spinLimit    int
	spinSet      bool
	brkExit      bool
	runMonitor   bool
	runUI        bool
	cpuProfile   string
	memProfile   string
)

func init() {
	flag.StringVar(&loadAddr, "load", "0600", "hex load address of a raw binary")
	flag.BoolVar(&nesImage, "nes", false, "treat the file as an iNES cartridge")
	flag.Uint64Var(&steps, "steps", 0, "stop after this many instructions (0 = no limit)")
	flag.StringVar(&traceFile, "trace", "", "write an instruction trace to this file (- for stdout)")
	flag.BoolVar(&strictStack, "strict-stack", false, "halt on stack overflow and underflow instead of wrapping")
	flag.BoolVar(&noUnofficial, "no-unofficial", false, "treat unofficial opcodes as invalid")
	flag.IntVar(&spinLimit, "spin", cpu.DefaultSpinLimit, "halt after this many fetches of the same instruction in a row (0 = off, off by default with -nes)")
	flag.BoolVar(&brkExit, "brk-exit", false, "stop successfully at the first BRK")
	flag.BoolVar(&runMonitor, "monitor", false, "start the interactive monitor")
	flag.BoolVar(&runUI, "ui", false, "open the debug window")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write a CPU profile to this directory")
	flag.StringVar(&memProfile, "memprofile", "", "write a memory profile to this directory")
	flag.CommandLine.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: m6502 [options] <file>\nOptions:")
		flag.PrintDefaults()
	}
}

// target is what every front end drives.
type target interface {
	Step() error
	Reset()
	CPU() *cpu.CPU
	Bus() *bus.Bus
}

type brkStop struct{}

func (brkStop) OnBrk(*cpu.CPU) error {
	return cpu.ErrBreak
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("m6502: ")
	flag.Parse()
	flag.Visit(func(fl *flag.Flag) {
		if fl.Name == "spin" {
			spinSet = true
		}
	})

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func run(path string) error {
	switch {
	case cpuProfile != "" && memProfile != "":
		return errors.New("-cpuprofile and -memprofile cannot be used together")
	case cpuProfile != "":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cpuProfile), profile.NoShutdownHook).Stop()
	case memProfile != "":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(memProfile), profile.NoShutdownHook).Stop()
	}

	opts := cpuOptions()

	var logger *trace.Logger
	if traceFile != "" {
		w, closeTrace, err := openTrace(traceFile)
		if err != nil {
			return err
		}
		defer closeTrace()
		logger = trace.NewLogger(w)
		opts = append(opts, cpu.WithTracer(logger))
	}

	t, err := newTarget(path, opts)
	if err != nil {
		return err
	}

	switch {
	case runMonitor:
		m := monitor.New(t)
		m.RunCommands(context.Background(), os.Stdin, os.Stdout, monitor.IsTerminal(os.Stdin))
		err = nil
	case runUI:
		err = ui.Run(ui.New(t, panel.CyclesPerFrame))
	default:
		err = runHeadless(t)
	}

	if logger != nil && logger.Err() != nil {
		log.Printf("trace: %v", logger.Err())
	}
	if errors.Is(err, cpu.ErrBreak) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// cpuOptions turns the command line flags into CPU options. The NES
// machine keeps its own spin guard default unless -spin is given.
func cpuOptions() []cpu.Option {
	opts := []cpu.Option{
		cpu.WithUnofficial(!noUnofficial),
	}
	if !nesImage || spinSet {
		opts = append(opts, cpu.WithSpinLimit(spinLimit))
	}
	if strictStack {
		opts = append(opts, cpu.WithStackPolicy(cpu.StackStrict))
	}
	if brkExit {
		opts = append(opts, cpu.WithBrkHandler(brkStop{}))
	}
	return opts
}

func newTarget(path string, opts []cpu.Option) (target, error) {
	if nesImage {
		c, err := cart.LoadFile(path)
		if err != nil {
			return nil, err
		}
		return nes.New(c, opts...)
	}

	addr, err := strconv.ParseUint(loadAddr, 16, 16)
	if err != nil {
		return nil, fmt.Errorf("-load %q: %w", loadAddr, err)
	}
	image, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return newFlatMachine(image, uint16(addr), opts...)
}

// runHeadless steps until the CPU halts, the step limit is reached or
// Ctrl-C, then reports where it stopped.
func runHeadless(t target) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var n uint64
	var err error
	for steps == 0 || n < steps {
		if err = ctx.Err(); err != nil {
			break
		}
		if err = t.Step(); err != nil {
			break
		}
		n++
	}

	regs := t.CPU().Registers()
	log.Printf("%d instructions, %d cycles, PC=$%04X A=$%02X X=$%02X Y=$%02X SP=$%02X P=%s",
		n, t.CPU().Cycles(), regs.PC, regs.A, regs.X, regs.Y, regs.SP, cpu.StatusString(regs.P))
	return err
}

func openTrace(path string) (io.Writer, func(), error) {
	if path == "-" {
		w := bufio.NewWriter(os.Stdout)
		return w, func() { w.Flush() }, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	w := bufio.NewWriter(file)
	return w, func() {
		if err := w.Flush(); err != nil {
			log.Printf("trace: %v", err)
		}
		file.Close()
	}, nil
}

// Package ui is a debug window for a running machine.
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/nevisdale/m6502/internal/ui/panel"
)

// P - pause
// R - one step and stop
// Space - run

const (
	screenScale  = 2
	screenWidth  = 560
	screenHeight = 380

	columnWidth  = 250
	disasmLines  = 12
	lineHeight   = 16
	debugBGColor = 50
)

type UI struct {
	target panel.Target
	ctrl   *panel.Controller
}

func New(t panel.Target, cyclesPerFrame uint64) *UI {
	return &UI{
		target: t,
		ctrl:   panel.NewController(t, cyclesPerFrame),
	}
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.ctrl.TogglePause()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ui.ctrl.OneStepAndStop()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ui.ctrl.Run()
	}

	ui.ctrl.Frame()
	return nil
}

func (ui *UI) Draw(screen *ebiten.Image) {
	c := ui.target.CPU()

	var info strings.Builder
	fmt.Fprintf(&info, " FPS: %0.0f\n", ebiten.ActualFPS())
	switch {
	case ui.ctrl.Err() != nil:
		info.WriteString(" HALTED\n")
	case ui.ctrl.Paused():
		info.WriteString(" PAUSED\n")
	default:
		info.WriteString(" RUNNING\n")
	}
	info.WriteString(panel.Registers(c))
	info.WriteByte('\n')
	info.WriteString(panel.Disassembly(c, ui.target.Bus().View(), disasmLines))

	bg := color.RGBA{debugBGColor, debugBGColor, debugBGColor, 255}
	vector.DrawFilledRect(screen, 0, 0, screenWidth, screenHeight, bg, false)
	ebitenutil.DebugPrintAt(screen, info.String(), 0, 0)
	ebitenutil.DebugPrintAt(screen, " ZERO PAGE\n"+panel.ZeroPage(ui.target.Bus().View()), columnWidth, 0)

	if err := ui.ctrl.Err(); err != nil {
		ebitenutil.DebugPrintAt(screen, " "+err.Error(), 0, screenHeight-lineHeight)
	}
}

func (ui *UI) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

// Run opens the window and blocks until it is closed. It returns the
// error that halted the machine, if any.
func Run(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth*screenScale, screenHeight*screenScale)
	ebiten.SetWindowTitle("m6502")
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(ui); err != nil {
		return err
	}
	return ui.ctrl.Err()
}

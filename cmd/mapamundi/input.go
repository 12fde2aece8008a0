package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/mapamundi/input"
)

// wheelScale converts ebiten wheel notches (about 1 per notch) to scroll
// units, where one notch is 0.1.
const wheelScale = 0.1

// Poller fills an input.State from the mouse and keyboard once per frame.
type Poller struct {
	state input.State
	pan   ebiten.MouseButton
}

func NewPoller(pan input.Button) *Poller {
	return &Poller{pan: mouseButton(pan)}
}

// State is the polled frame. The controllers read it through Snapshot.
func (p *Poller) State() *input.State {
	return &p.state
}

// Update polls the devices and replaces the current frame.
func (p *Poller) Update() {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	p.state = input.State{
		CursorX: float64(mx),
		CursorY: float64(my),
		Scroll:  wy * wheelScale,

		PanPressed:  inpututil.IsMouseButtonJustPressed(p.pan),
		PanReleased: inpututil.IsMouseButtonJustReleased(p.pan),
		PanHeld:     ebiten.IsMouseButtonPressed(p.pan),

		PrimaryPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		PrimaryReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),

		Cancel: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Copy:   ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC),
	}
}

// Capture drops pointer presses and scroll, used while the cursor is over the
// UI so a click on the panel never reaches the map.
func (p *Poller) Capture() {
	p.state.Scroll = 0
	p.state.PanPressed = false
	p.state.PrimaryPressed = false
}

func mouseButton(b input.Button) ebiten.MouseButton {
	switch b {
	case input.ButtonMiddle:
		return ebiten.MouseButtonMiddle
	case input.ButtonRight:
		return ebiten.MouseButtonRight
	default:
		return ebiten.MouseButtonLeft
	}
}

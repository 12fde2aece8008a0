// Package input holds the per-frame input snapshot shared by the camera and
// selection controllers. Polling a real device is the host's job.
package input

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
)

// Button names a pointer button independent of the input backend.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// ParseButton maps "left", "middle" or "right" to a Button.
func ParseButton(s string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return ButtonLeft, nil
	case "middle":
		return ButtonMiddle, nil
	case "right":
		return ButtonRight, nil
	}
	return ButtonLeft, fmt.Errorf("input: unknown button %q", s)
}

// State is one frame of input. Pressed/Released are edge flags that are true
// only on the frame the transition happened.
type State struct {
	// CursorX/Y are the pointer position in screen pixels, origin top-left.
	CursorX float64
	CursorY float64
	// Scroll is the vertical scroll axis. Positive zooms in.
	Scroll float64

	PanPressed  bool
	PanReleased bool
	// PanHeld is the pan button's level. Edge flags alone can miss a release
	// that happens outside the window.
	PanHeld bool

	PrimaryPressed  bool
	PrimaryReleased bool

	// Cancel clears the current selection.
	Cancel bool
	// Copy requests the selected area's info on the clipboard.
	Copy bool
}

// Snapshot returns a copy of the state. It lets a *State stand in for any
// polling source.
func (s *State) Snapshot() State {
	if s == nil {
		return State{}
	}
	return *s
}

// Cursor returns the pointer position as a vector.
func (s State) Cursor() cp.Vector {
	return cp.Vector{X: s.CursorX, Y: s.CursorY}
}

// EndFrame clears the edge flags and scroll so a held State can be reused as
// the next frame.
func (s *State) EndFrame() {
	s.Scroll = 0
	s.PanPressed = false
	s.PanReleased = false
	s.PrimaryPressed = false
	s.PrimaryReleased = false
	s.Cancel = false
	s.Copy = false
}

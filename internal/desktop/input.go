//go:build !android

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"blockpong/internal/game"
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// CursorCourtPos maps the cursor into court space through the current
// view. The window size is used rather than the framebuffer size so
// HiDPI scaling cancels out.
func CursorCourtPos(window *glfw.Window, view game.CourtView) game.Vec2 {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	return view.ToCourt(game.WindowToClip(cx, cy, winW, winH))
}

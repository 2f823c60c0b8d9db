//go:build !android

package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"blockpong/internal/game"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer streams a game.DrawList into a single VBO each frame.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uCourtToClip int32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(rectVertSrc, rectFragSrc)
	if err != nil {
		return nil, fmt.Errorf("rect program: %w", err)
	}
	r := &Renderer{prog: prog}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(game.FloatsPerVertex * 4)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aColor (vec4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))

	gl.UseProgram(prog)
	r.uCourtToClip = gl.GetUniformLocation(prog, gl.Str("uCourtToClip\x00"))

	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// Draw clears the framebuffer and renders d through view.
func (r *Renderer) Draw(d *game.DrawList, view game.CourtView, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	bg := game.Palette.Background
	cr, cg, cb, _ := bg.Floats()
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	count := d.VertexCount()
	if count == 0 {
		return
	}

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	m := view.Matrix()
	gl.UniformMatrix4fv(r.uCourtToClip, 1, false, &m[0])

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, len(d.Verts)*4, gl.Ptr(d.Verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
}

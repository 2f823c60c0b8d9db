//go:build !android

package desktop

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"blockpong/internal/audio"
	"blockpong/internal/config"
	"blockpong/internal/game"
)

const volumeStep = 0.1

// Run opens the window and drives the session until the window closes
// or Escape is pressed.
func Run(cfg *config.Config) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.WindowWidth, cfg.WindowHeight, cfg.VSync)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	bus := game.NewEventBus()

	sfx, err := audio.New(cfg.SFXVolume, cfg.Mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}
	sfx.Subscribe(bus)

	sparks := game.NewParticleSystem(game.MaxParticles, cfg.Seed^0xBEAD)
	sparks.Subscribe(bus)

	if cfg.Debug {
		LogEvents(bus, os.Stderr)
	}

	simCfg := game.DefaultConfig(cfg.Seed)
	simCfg.SpawnInterval = cfg.SpawnInterval
	simCfg.Events = bus
	session := game.NewGameSession(simCfg)

	input := NewInput()
	var draw game.DrawList

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		if input.JustPressed(window, glfw.KeySpace) {
			session.TogglePause()
		}
		if input.JustPressed(window, glfw.KeyM) {
			sfx.SetMuted(!sfx.Muted())
		}
		if input.JustPressed(window, glfw.KeyLeftBracket) {
			sfx.SetVolume(sfx.Volume() - volumeStep)
		}
		if input.JustPressed(window, glfw.KeyRightBracket) {
			sfx.SetVolume(sfx.Volume() + volumeStep)
		}
		if input.JustPressed(window, glfw.KeyR) {
			session.Restart()
			sparks.Clear()
			if cfg.Debug {
				fmt.Fprintf(os.Stderr, "restart #%d\n", session.Restarts)
			}
		}

		view := game.FitCourt(session.Sim.Geom, fbW, fbH)
		if session.State == game.StatePlaying {
			session.Sim.SetLeftPaddleY(CursorCourtPos(window, view).Y)
		}
		session.Update(dt)
		if session.State == game.StatePlaying {
			sparks.Update(dt)
		}

		// Geometry may have changed during the tick.
		view = game.FitCourt(session.Sim.Geom, fbW, fbH)
		game.BuildDrawList(session.Sim, &draw)
		sparks.Draw(&draw)
		rend.Draw(&draw, view, fbW, fbH)

		window.SwapBuffers()
	}
	return nil
}

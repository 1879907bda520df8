package app

import (
	"runtime"
	"time"

	"github.com/mirefox/glint"
	"github.com/mirefox/glint/gfx/glstate"
)

// Run wires the platform window and GL state cache and executes the
// main loop until the window asks to close.
func Run(application App, cfg Config, newWindow func(Config) (Window, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	eng := &Engine{
		Window: win,
		GL:     glstate.New(glstate.GLBackend{}),
		Input:  NewInput(),
		start:  time.Now(),
	}
	eng.GL.State.ClearColor.Set(cfg.ClearColor)

	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		application.OnEvent(eng, ev)
	})

	application.OnStart(eng)

	// Fixed-timestep (60 Hz) with interpolation.
	const tick = time.Second / 60
	const maxSteps = 10 // prevent spiral of death
	var (
		accum time.Duration
		prev  = time.Now()
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform emits via the callback).
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxSteps {
			application.OnUpdate(eng, float64(tick)/float64(time.Second))
			accum -= tick
			steps++
		}
		// Interpolation factor for rendering.
		alpha := float64(accum) / float64(tick)

		eng.GL.State.Clear()
		application.OnRender(eng, alpha)

		win.SwapBuffers()
	}

	application.OnShutdown(eng)
	glint.Logger().Info("engine exit", "uptime", eng.Uptime())
	return nil
}

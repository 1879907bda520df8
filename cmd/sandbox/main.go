// Command sandbox renders a marching-cubes polygonization of a fractal
// simplex noise field. A/D and W/S orbit the camera, Z/X and the scroll
// wheel zoom.
package main

import (
	"log/slog"
	"os"

	"github.com/mirefox/glint"
	"github.com/mirefox/glint/app"
	"github.com/mirefox/glint/math32"
	"github.com/mirefox/glint/platform"
)

type sandboxApp struct {
	cfg demoConfig
}

func (a *sandboxApp) OnStart(e *app.Engine) {
	e.Layers.Push(&terrainLayer{cfg: a.cfg})
	e.Layers.ForEach(func(l app.Layer) { l.OnAttach(e) })
}

func (a *sandboxApp) OnUpdate(e *app.Engine, dt float64) {
	e.Layers.ForEach(func(l app.Layer) { l.OnUpdate(e, dt) })
}

func (a *sandboxApp) OnRender(e *app.Engine, alpha float64) {
	e.Layers.ForEach(func(l app.Layer) { l.OnRender(e, alpha) })
}

func (a *sandboxApp) OnEvent(e *app.Engine, ev app.Event) {
	e.Layers.ForEachReverse(func(l app.Layer) bool { return l.OnEvent(e, ev) })
}

func (a *sandboxApp) OnShutdown(e *app.Engine) {
	for {
		l, ok := e.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(e)
	}
}

func main() {
	glint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := loadConfig("sandbox.toml")
	if err != nil {
		glint.Logger().Error("config", "err", err)
		os.Exit(1)
	}

	runCfg := app.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		VSync:      cfg.VSync,
		ClearColor: math32.Vec4(0.08, 0.09, 0.11, 1),
	}
	if err := app.Run(&sandboxApp{cfg: cfg}, runCfg, platform.NewGLFWWindow); err != nil {
		glint.Logger().Error("run", "err", err)
		os.Exit(1)
	}
}

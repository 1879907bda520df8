// Package platform implements the app.Window abstraction on GLFW with
// an OpenGL core-profile context.
package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/mirefox/glint"
	"github.com/mirefox/glint/app"
)

// GLFWWindow implements app.Window and pushes events to the app via a
// handler.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(app.Event)
}

// NewGLFWWindow opens a window with a current GL context. Must be
// called on the main thread before any GL calls.
func NewGLFWWindow(cfg app.Config) (app.Window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	glint.Logger().Info("gl context created", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gw := &GLFWWindow{w: win}

	// Callbacks -> translate to app.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(app.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(app.EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(app.EventMouseMove{X: x, Y: y})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		gw.emit(app.EventMouseButton{Button: int(button), Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == app.KeyUnknown {
			return
		}
		gw.emit(app.EventKey{Key: k, Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		gw.emit(app.EventScroll{X: xoff, Y: yoff})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev app.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// app.Window impl
func (g *GLFWWindow) PollEvents()                         { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                        { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                   { return g.w.ShouldClose() }
func (g *GLFWWindow) FramebufferSize() (int, int)         { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                   { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(app.Event)) { g.onEv = cb }

func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

var keyTable = map[glfw.Key]app.Key{
	glfw.KeyEscape: app.KeyEscape,
	glfw.KeySpace:  app.KeySpace,
	glfw.KeyW:      app.KeyW,
	glfw.KeyA:      app.KeyA,
	glfw.KeyS:      app.KeyS,
	glfw.KeyD:      app.KeyD,
	glfw.KeyQ:      app.KeyQ,
	glfw.KeyE:      app.KeyE,
	glfw.KeyZ:      app.KeyZ,
	glfw.KeyX:      app.KeyX,
	glfw.KeyUp:     app.KeyUp,
	glfw.KeyDown:   app.KeyDown,
	glfw.KeyLeft:   app.KeyLeft,
	glfw.KeyRight:  app.KeyRight,
}

func translateKey(k glfw.Key) app.Key {
	return keyTable[k] // zero value is KeyUnknown
}

func translateMods(m glfw.ModifierKey) app.Mod {
	var out app.Mod
	if m&glfw.ModShift != 0 {
		out |= app.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= app.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= app.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= app.ModSuper
	}
	return out
}

// Package app holds the application shell: the App hooks, the Engine
// services, the window abstraction, the event model, and the
// fixed-timestep run loop. The GLFW implementation of Window lives in
// the platform package.
package app

import (
	"time"

	"github.com/mirefox/glint/gfx/glstate"
	"github.com/mirefox/glint/math32"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/context init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window Window
	GL     *glstate.Context
	Input  *Input
	Layers LayerStack
	start  time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(fn func(Event))
	Destroy()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button int
	Down   bool
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ X, Y float64 }

func (EventScroll) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyZ
	KeyX
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for an engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor math32.Vector4
}

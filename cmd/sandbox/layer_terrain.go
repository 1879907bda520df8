package main

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/mirefox/glint"
	"github.com/mirefox/glint/app"
	"github.com/mirefox/glint/gfx/glstate"
	"github.com/mirefox/glint/math32"
	"github.com/mirefox/glint/scene"
)

// terrainLayer polygonizes a fractal noise field once and renders the
// resulting mesh from an orbiting camera.
type terrainLayer struct {
	cfg demoConfig

	program   uint32
	vao, vbo  uint32
	nvertices int32
	uViewProj int32

	proj   *scene.Perspective
	camera *scene.Camera
	orbit  *scene.OrbitController
}

func (l *terrainLayer) OnAttach(e *app.Engine) {
	verts := buildTerrainVertices(l.cfg)
	l.nvertices = int32(len(verts) / vertexFloats)
	glint.Logger().Info("terrain mesh built",
		"grid", l.cfg.GridSize, "seed", l.cfg.Seed, "triangles", l.nvertices/3)

	prog, err := makeProgram(vertexSource, fragmentSource)
	if err != nil {
		panic(err)
	}
	l.program = prog
	l.uViewProj = gl.GetUniformLocation(prog, gl.Str("uViewProj\x00"))

	gl.GenVertexArrays(1, &l.vao)
	gl.BindVertexArray(l.vao)
	gl.GenBuffers(1, &l.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	const stride = vertexFloats * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	w, h := e.Window.FramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	l.proj = scene.NewPerspective(math32.DegToRad(60), float32(w)/float32(h), 0.1, 500)
	l.camera = scene.NewCamera(l.proj)
	l.orbit = scene.NewOrbitController(l.camera, float32(l.cfg.GridSize)*1.8)
}

func (l *terrainLayer) OnDetach(e *app.Engine) {
	gl.DeleteBuffers(1, &l.vbo)
	gl.DeleteVertexArrays(1, &l.vao)
	gl.DeleteProgram(l.program)
}

func (l *terrainLayer) OnUpdate(e *app.Engine, dt float64) {
	l.orbit.Update(e.Input, float32(dt))
}

func (l *terrainLayer) OnRender(e *app.Engine, alpha float64) {
	defer e.GL.State.Scoped()()
	e.GL.State.DepthTest.Set(true)
	e.GL.State.CullFace.Set(true)
	e.GL.State.CullMode.Set(glstate.CullBack)
	e.GL.State.FrontFace.Set(glstate.WindingCCW)

	vp := l.camera.ViewProjection()
	gl.UseProgram(l.program)
	gl.UniformMatrix4fv(l.uViewProj, 1, false, &vp[0])
	gl.BindVertexArray(l.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, l.nvertices)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (l *terrainLayer) OnEvent(e *app.Engine, ev app.Event) bool {
	if r, ok := ev.(app.EventResize); ok && r.W > 0 && r.H > 0 {
		gl.Viewport(0, 0, int32(r.W), int32(r.H))
		l.proj.SetAspect(float32(r.W) / float32(r.H))
	}
	return false
}

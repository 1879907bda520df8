package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirefox/glint/app"
	"github.com/mirefox/glint/math32"
)

func TestTransformComposesToRoot(t *testing.T) {
	parent := NewTransformPose(math32.QuatIdentity(), math32.Vec3(1, 0, 0))
	child := NewTransformPose(math32.QuatIdentity(), math32.Vec3(0, 1, 0))
	require.NoError(t, child.SetParent(parent))

	assert.True(t, child.Full().Translation().AlmostEqual(math32.Vec3(1, 1, 0)))
}

func TestTransformParentRotationAppliesToChild(t *testing.T) {
	parent := NewTransform()
	parent.SetPose(math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.Pi/2), math32.Vector3{})
	child := NewTransformPose(math32.QuatIdentity(), math32.Vec3(1, 0, 0))
	require.NoError(t, child.SetParent(parent))

	p := child.Full().TransformPoint(math32.Vector3{})
	assert.InDelta(t, 0, p.X, 1e-5)
	assert.InDelta(t, 1, p.Y, 1e-5)
}

func TestTransformCycleRejected(t *testing.T) {
	a := NewTransform()
	b := NewTransform()
	require.NoError(t, a.SetParent(b))

	assert.ErrorIs(t, b.SetParent(a), ErrTransformCycle)
	assert.False(t, b.TrySetParent(a))
	assert.ErrorIs(t, a.SetParent(a), ErrTransformCycle)

	// b keeps its old (nil) parent after the failed reparent.
	assert.Nil(t, b.Parent())
}

func TestTransformInvalidationPropagates(t *testing.T) {
	a := NewTransform()
	b := NewTransform()
	c := NewTransform()
	require.NoError(t, b.SetParent(a))
	require.NoError(t, c.SetParent(b))

	assert.True(t, c.Full().Translation().AlmostEqual(math32.Vector3{}))

	a.SetPose(math32.QuatIdentity(), math32.Vec3(0, 0, 3))
	assert.True(t, c.Full().Translation().AlmostEqual(math32.Vec3(0, 0, 3)))
}

func TestTransformOnChangeUnsubscribe(t *testing.T) {
	tr := NewTransform()
	calls := 0
	unsub := tr.OnChange(func() { calls++ })

	tr.SetPose(math32.QuatIdentity(), math32.Vec3(1, 0, 0))
	assert.Equal(t, 1, calls)

	unsub()
	tr.SetPose(math32.QuatIdentity(), math32.Vec3(2, 0, 0))
	assert.Equal(t, 1, calls)
}

func TestTransformReparentDropsOldSubscription(t *testing.T) {
	p1 := NewTransform()
	p2 := NewTransform()
	child := NewTransform()
	require.NoError(t, child.SetParent(p1))
	require.NoError(t, child.SetParent(p2))

	calls := 0
	unsub := child.OnChange(func() { calls++ })
	defer unsub()

	child.Full() // validate so invalidations notify
	p1.SetPose(math32.QuatIdentity(), math32.Vec3(9, 9, 9))
	assert.Equal(t, 0, calls)

	p2.SetPose(math32.QuatIdentity(), math32.Vec3(1, 0, 0))
	assert.Equal(t, 1, calls)
	assert.True(t, child.Full().Translation().AlmostEqual(math32.Vec3(1, 0, 0)))
}

func TestCameraViewMatrix(t *testing.T) {
	cam := NewCamera(NewPerspective(math32.Pi/3, 16.0/9, 0.1, 100))
	cam.Transform.SetPose(math32.QuatIdentity(), math32.Vec3(0, 0, 5))

	eye := cam.ViewMatrix().MulPoint3(math32.Vector3{})
	assert.True(t, eye.AlmostEqual(math32.Vec3(0, 0, -5)))
}

func TestProjectionCaches(t *testing.T) {
	p := NewPerspective(math32.Pi/3, 1, 0.1, 100)
	first := p.Matrix()
	assert.Equal(t, first, p.Matrix())

	p.SetAspect(2)
	assert.NotEqual(t, first, p.Matrix())

	o := NewOrthographic(200, 100, -1, 1)
	wide := o.Matrix()
	o.SetZoom(2)
	assert.NotEqual(t, wide, o.Matrix())
	o.SetZoom(0)
	assert.Equal(t, float32(0.05), o.Zoom())
}

func TestOrbitController(t *testing.T) {
	cam := NewCamera(NewPerspective(math32.Pi/3, 1, 0.1, 100))
	oc := NewOrbitController(cam, 5)

	// Initial pose: behind the target on +Z, facing it.
	pos := cam.Transform.Full().Translation()
	assert.True(t, pos.AlmostEqual(math32.Vec3(0, 0, 5)))
	target := cam.ViewMatrix().MulPoint3(math32.Vector3{})
	assert.True(t, target.AlmostEqual(math32.Vec3(0, 0, -5)))

	in := app.NewInput()
	in.Handle(app.EventKey{Key: app.KeyD, Down: true})
	oc.Update(in, 0.1)
	assert.Greater(t, oc.Yaw, float32(0))

	// Orbiting keeps the distance to the target.
	pos = cam.Transform.Full().Translation()
	assert.InDelta(t, 5, pos.Length(), 1e-4)

	// Pitch clamps short of the pole.
	in.Handle(app.EventKey{Key: app.KeyD, Down: false})
	in.Handle(app.EventKey{Key: app.KeyW, Down: true})
	oc.Update(in, 100)
	assert.Less(t, oc.Pitch, float32(math32.Pi/2))

	// Scroll zooms in.
	before := oc.Radius
	in.Handle(app.EventScroll{Y: 5})
	oc.Update(in, 0)
	assert.Less(t, oc.Radius, before)
}

type recordingRenderable struct {
	tr      *Transform
	visible bool
	draws   int
	lastVP  math32.Matrix4
}

func (r *recordingRenderable) IsVisible() bool       { return r.visible }
func (r *recordingRenderable) Transform() *Transform { return r.tr }
func (r *recordingRenderable) Render(vp math32.Matrix4) {
	r.draws++
	r.lastVP = vp
}

func TestCameraRenderList(t *testing.T) {
	cam := NewCamera(NewOrthographic(100, 100, -1, 1))
	shown := &recordingRenderable{tr: NewTransform(), visible: true}
	hidden := &recordingRenderable{tr: NewTransform()}
	cam.Add(shown)
	cam.Add(hidden)

	cam.Render()
	assert.Equal(t, 1, shown.draws)
	assert.Equal(t, 0, hidden.draws)
	assert.Equal(t, cam.ViewProjection(), shown.lastVP)

	cam.Remove(shown)
	cam.Render()
	assert.Equal(t, 1, shown.draws)
}

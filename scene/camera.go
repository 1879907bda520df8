package scene

import "github.com/mirefox/glint/math32"

// Projection supplies a projection matrix. Implementations cache the
// matrix behind a dirty flag and recompute on demand.
type Projection interface {
	Matrix() math32.Matrix4
}

// Perspective is a symmetric-frustum perspective projection.
type Perspective struct {
	fovy, aspect, near, far float32
	mat                     math32.Matrix4
	dirty                   bool
}

// NewPerspective returns a perspective projection. fovy is the vertical
// field of view in radians.
func NewPerspective(fovy, aspect, near, far float32) *Perspective {
	return &Perspective{fovy: fovy, aspect: aspect, near: near, far: far, dirty: true}
}

// SetAspect updates the width/height aspect ratio, typically on window
// resize.
func (p *Perspective) SetAspect(aspect float32) {
	if aspect == p.aspect {
		return
	}
	p.aspect = aspect
	p.dirty = true
}

// SetFovy updates the vertical field of view in radians.
func (p *Perspective) SetFovy(fovy float32) {
	if fovy == p.fovy {
		return
	}
	p.fovy = fovy
	p.dirty = true
}

func (p *Perspective) Matrix() math32.Matrix4 {
	if p.dirty {
		p.mat = math32.Perspective(p.fovy, p.aspect, p.near, p.far)
		p.dirty = false
	}
	return p.mat
}

// Orthographic is a zoomable orthographic projection.
type Orthographic struct {
	left, right, bottom, top float32
	near, far                float32
	zoom                     float32
	mat                      math32.Matrix4
	dirty                    bool
}

// NewOrthographic returns an orthographic projection centered on the
// origin, sized in pixels, with zoom 1.
func NewOrthographic(width, height int, near, far float32) *Orthographic {
	o := &Orthographic{near: near, far: far, zoom: 1, dirty: true}
	o.SetViewport(width, height)
	return o
}

// SetViewport resizes the extents to ±width/2 and ±height/2.
func (o *Orthographic) SetViewport(width, height int) {
	halfW := float32(width) * 0.5
	halfH := float32(height) * 0.5
	o.left, o.right = -halfW, halfW
	o.bottom, o.top = -halfH, halfH
	o.dirty = true
}

// Zoom returns the current zoom factor (1 = no zoom).
func (o *Orthographic) Zoom() float32 { return o.zoom }

// SetZoom sets the zoom factor, clamped away from zero.
func (o *Orthographic) SetZoom(z float32) {
	o.zoom = math32.Max(z, 0.05)
	o.dirty = true
}

func (o *Orthographic) Matrix() math32.Matrix4 {
	if o.dirty {
		z := o.zoom
		o.mat = math32.Orthographic(o.left/z, o.right/z, o.bottom/z, o.top/z, o.near, o.far)
		o.dirty = false
	}
	return o.mat
}

// Renderable is anything the camera can draw.
type Renderable interface {
	IsVisible() bool
	Transform() *Transform
	Render(viewProjection math32.Matrix4)
}

// Camera pairs a projection with a transform and owns a render list.
// Its view matrix is the inverse of the transform's full pose.
type Camera struct {
	Transform  *Transform
	Projection Projection

	renderables []Renderable
}

// NewCamera returns a camera at the origin with the given projection.
func NewCamera(p Projection) *Camera {
	return &Camera{Transform: NewTransform(), Projection: p}
}

// ViewMatrix returns the world-to-camera matrix.
func (c *Camera) ViewMatrix() math32.Matrix4 {
	return c.Transform.Full().Inverse().ToMatrix4()
}

// ViewProjection returns projection times view.
func (c *Camera) ViewProjection() math32.Matrix4 {
	return c.Projection.Matrix().Mul(c.ViewMatrix())
}

// Add appends r to the render list.
func (c *Camera) Add(r Renderable) {
	c.renderables = append(c.renderables, r)
}

// Remove drops r from the render list, keeping draw order.
func (c *Camera) Remove(r Renderable) {
	for i, have := range c.renderables {
		if have == r {
			c.renderables = append(c.renderables[:i], c.renderables[i+1:]...)
			return
		}
	}
}

// Render draws every visible renderable with the current view
// projection.
func (c *Camera) Render() {
	vp := c.ViewProjection()
	for _, r := range c.renderables {
		if r.IsVisible() {
			r.Render(vp)
		}
	}
}

package scene

import (
	"github.com/mirefox/glint/app"
	"github.com/mirefox/glint/math32"
)

// OrbitController drives a camera transform around a target point:
// A/D yaw, W/S pitch, Z/X and scroll zoom.
type OrbitController struct {
	Camera *Camera
	Target math32.Vector3

	Yaw, Pitch float32
	Radius     float32

	OrbitSpeed float32 // radians per second
	ZoomSpeed  float32 // factor per second
}

// NewOrbitController returns a controller orbiting the origin at the
// given radius and applies the initial pose.
func NewOrbitController(cam *Camera, radius float32) *OrbitController {
	oc := &OrbitController{
		Camera:     cam,
		Radius:     radius,
		OrbitSpeed: 1.5,
		ZoomSpeed:  1.5,
	}
	oc.Apply()
	return oc
}

// Update reads the input state and moves the camera.
func (oc *OrbitController) Update(in *app.Input, dt float32) {
	turn := oc.OrbitSpeed * dt
	if in.IsKeyDown(app.KeyA) {
		oc.Yaw -= turn
	}
	if in.IsKeyDown(app.KeyD) {
		oc.Yaw += turn
	}
	if in.IsKeyDown(app.KeyW) {
		oc.Pitch += turn
	}
	if in.IsKeyDown(app.KeyS) {
		oc.Pitch -= turn
	}

	zoom := math32.Pow(oc.ZoomSpeed, dt)
	if in.IsKeyDown(app.KeyZ) {
		oc.Radius /= zoom
	}
	if in.IsKeyDown(app.KeyX) {
		oc.Radius *= zoom
	}
	if scroll := float32(in.ConsumeScroll()); scroll != 0 {
		oc.Radius *= math32.Pow(oc.ZoomSpeed, -scroll*0.1)
	}

	// Keep the pose away from the poles and the target.
	const maxPitch = math32.Pi/2 - 0.01
	oc.Pitch = math32.Clamp(oc.Pitch, -maxPitch, maxPitch)
	oc.Radius = math32.Max(oc.Radius, 0.1)

	oc.Apply()
}

// Apply writes the orbit pose to the camera transform. The camera sits
// at Target plus the rotated back offset, facing the target.
func (oc *OrbitController) Apply() {
	rot := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), oc.Yaw).
		Mul(math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), oc.Pitch))
	pos := oc.Target.Add(rot.RotateVec(math32.Vec3(0, 0, oc.Radius)))
	oc.Camera.Transform.SetPose(rot, pos)
}

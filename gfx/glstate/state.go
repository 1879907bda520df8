package glstate

import (
	"github.com/mirefox/glint/enums"
	"github.com/mirefox/glint/math32"
)

// frame maps property index to the backup taken at its first mutation
// inside the frame's scope.
type frame map[int]backup

// State is the change-tracked cache of context settings. Each field is a
// property whose Set diffs against the cached value before touching the
// backend. Push/Pop give stack-disciplined rollback of everything
// mutated in between. State is single-writer, like the GL context it
// mirrors.
type State struct {
	backend Backend
	nprops  int
	frames  []frame

	Blend       *Flag
	BlendFunc   *Property[BlendFunc]
	BlendColor  *Property[math32.Vector4]
	CullFace    *Flag
	CullMode    *Property[CullMode]
	FrontFace   *Property[Winding]
	DepthTest   *Flag
	DepthFunc   *Property[CompareFunc]
	ScissorTest *Flag
	Scissor     *Property[math32.Bounds2]
	StencilTest *Flag
	StencilFunc *Property[StencilFunc]
	StencilOp   *Property[StencilOp]
	ClearColor  *Property[math32.Vector4]
	ClearMask   *Property[enums.Set[BufferBit]]
	LineWidth   *Property[float32]
	PointSize   *Property[float32]
	PolygonMode *Property[PolygonMode]
}

// NewState returns a state cache assuming the backend context is in its
// initial (default) state.
func NewState(b Backend) *State {
	s := &State{backend: b}

	s.Blend = newFlag(s, "blend", CapBlend)
	s.BlendFunc = newProperty(s, "blendFunc", BlendFunc{BlendOne, BlendZero}, b.SetBlendFunc)
	s.BlendColor = newProperty(s, "blendColor", math32.Vector4{}, b.SetBlendColor)
	s.CullFace = newFlag(s, "cullFace", CapCullFace)
	s.CullMode = newProperty(s, "cullMode", CullBack, b.SetCullMode)
	s.FrontFace = newProperty(s, "frontFace", WindingCCW, b.SetFrontFace)
	s.DepthTest = newFlag(s, "depthTest", CapDepthTest)
	s.DepthFunc = newProperty(s, "depthFunc", CompareLess, b.SetDepthFunc)
	s.ScissorTest = newFlag(s, "scissorTest", CapScissorTest)
	s.Scissor = newProperty(s, "scissor", math32.Bounds2{}, b.SetScissor)
	s.StencilTest = newFlag(s, "stencilTest", CapStencilTest)
	s.StencilFunc = newProperty(s, "stencilFunc", StencilFunc{Func: CompareAlways, Mask: ^uint32(0)}, b.SetStencilFunc)
	s.StencilOp = newProperty(s, "stencilOp", StencilOp{}, b.SetStencilOp)
	s.ClearColor = newProperty(s, "clearColor", math32.Vector4{}, b.SetClearColor)
	s.ClearMask = newProperty(s, "clearMask", enums.SetOf(ColorBuffer, DepthBuffer), func(enums.Set[BufferBit]) {})
	s.LineWidth = newProperty(s, "lineWidth", 1, b.SetLineWidth)
	s.PointSize = newProperty(s, "pointSize", 1, b.SetPointSize)
	s.PolygonMode = newProperty(s, "polygonMode", PolygonFill, b.SetPolygonMode)

	return s
}

func (s *State) register() int {
	i := s.nprops
	s.nprops++
	return i
}

// note records a backup for the property at index into the innermost
// open frame, only at its first mutation inside that frame.
func (s *State) note(index int, b backup) {
	if len(s.frames) == 0 {
		return
	}
	f := s.frames[len(s.frames)-1]
	if _, ok := f[index]; !ok {
		f[index] = b
	}
}

// Push opens a new backup frame. Every property mutated before the
// matching Pop is restored by it.
func (s *State) Push() {
	s.frames = append(s.frames, frame{})
}

// Pop restores every property mutated since the matching Push to its
// pre-push value, issuing backend calls only where values differ, and
// discards the frame. Panics without a matching Push.
func (s *State) Pop() {
	n := len(s.frames)
	if n == 0 {
		panic("glstate: Pop without matching Push")
	}
	f := s.frames[n-1]
	s.frames = s.frames[:n-1]
	for _, restore := range f {
		restore()
	}
}

// Scoped pushes a frame and returns the pop: defer the result to
// guarantee rollback on every exit path of the scope.
//
//	defer state.Scoped()()
func (s *State) Scoped() func() {
	s.Push()
	return s.Pop
}

// Depth returns the number of open frames.
func (s *State) Depth() int { return len(s.frames) }

// Clear clears the buffers selected by the ClearMask property.
func (s *State) Clear() {
	s.backend.Clear(s.ClearMask.Get())
}

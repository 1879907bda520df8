// Package glstate caches OpenGL context state: every tracked setting is
// a [Property] that issues the underlying GL call only when its value
// actually changes, with push/pop scoping to restore mutated settings.
// Context limits are cached lazily as [Constant] values, and texture
// binding slots are managed by [TextureUnits].
package glstate

import (
	"github.com/mirefox/glint/enums"
	"github.com/mirefox/glint/math32"
)

// Capability is a toggleable GL capability, driven by Enable/Disable.
type Capability int32

const (
	CapBlend Capability = iota
	CapCullFace
	CapDepthTest
	CapScissorTest
	CapStencilTest
	capabilityCount
)

// BlendFactor selects a blend equation input factor.
type BlendFactor int32

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendDstColor
	BlendOneMinusDstColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
	BlendConstantColor
	BlendOneMinusConstantColor
	blendFactorCount
)

// BlendFunc is a source/destination blend factor pair.
type BlendFunc struct {
	Src BlendFactor
	Dst BlendFactor
}

// CullMode selects which faces are culled.
type CullMode int32

const (
	CullBack CullMode = iota
	CullFront
	CullFrontAndBack
	cullModeCount
)

// Winding is the vertex order of front faces.
type Winding int32

const (
	WindingCCW Winding = iota
	WindingCW
	windingCount
)

// CompareFunc is a depth/stencil comparison function.
type CompareFunc int32

const (
	CompareNever CompareFunc = iota
	CompareLess
	CompareEqual
	CompareLessEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterEqual
	CompareAlways
	compareFuncCount
)

// StencilFunc is the stencil test configuration.
type StencilFunc struct {
	Func CompareFunc
	Ref  int32
	Mask uint32
}

// StencilAction is what happens to a stencil value on a test outcome.
type StencilAction int32

const (
	StencilKeep StencilAction = iota
	StencilZero
	StencilReplace
	StencilIncr
	StencilIncrWrap
	StencilDecr
	StencilDecrWrap
	StencilInvert
	stencilActionCount
)

// StencilOp is the per-outcome stencil action triple.
type StencilOp struct {
	StencilFail StencilAction
	DepthFail   StencilAction
	Pass        StencilAction
}

// PolygonMode selects how polygons are rasterized.
type PolygonMode int32

const (
	PolygonFill PolygonMode = iota
	PolygonLine
	PolygonPoint
	polygonModeCount
)

// BufferBit identifies a framebuffer attachment for clearing.
type BufferBit int32

const (
	ColorBuffer BufferBit = iota
	DepthBuffer
	StencilBuffer
	bufferBitCount
)

// IntQuery is a cached integer context limit.
type IntQuery int32

const (
	QueryMaxTextureUnits IntQuery = iota
	QueryMaxTextureSize
	QueryMaxVertexAttribs
	QueryMaxUniformBufferBindings
	QueryUniformBufferBinding // indexed
	intQueryCount
)

// Backend carries the underlying graphics calls. The production
// implementation is [GLBackend]; tests substitute a recording fake.
type Backend interface {
	SetCapability(c Capability, enabled bool)
	SetBlendFunc(f BlendFunc)
	SetBlendColor(c math32.Vector4)
	SetCullMode(m CullMode)
	SetFrontFace(w Winding)
	SetDepthFunc(f CompareFunc)
	SetStencilFunc(f StencilFunc)
	SetStencilOp(o StencilOp)
	SetClearColor(c math32.Vector4)
	SetScissor(r math32.Bounds2)
	SetLineWidth(w float32)
	SetPointSize(s float32)
	SetPolygonMode(m PolygonMode)
	Clear(mask enums.Set[BufferBit])
	QueryInt(q IntQuery) int32
	QueryIntIndexed(q IntQuery, index uint32) int32
	BindTextureUnit(unit int32, texture uint32)
}

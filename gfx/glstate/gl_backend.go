package glstate

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/mirefox/glint/enums"
	"github.com/mirefox/glint/math32"
)

// Translation tables from the package enums to GL constants, indexed by
// enum member.
var (
	capabilityGL = enums.ArrayOf[Capability](
		uint32(gl.BLEND),
		gl.CULL_FACE,
		gl.DEPTH_TEST,
		gl.SCISSOR_TEST,
		gl.STENCIL_TEST,
	)
	blendFactorGL = enums.ArrayOf[BlendFactor](
		uint32(gl.ZERO),
		gl.ONE,
		gl.SRC_COLOR,
		gl.ONE_MINUS_SRC_COLOR,
		gl.DST_COLOR,
		gl.ONE_MINUS_DST_COLOR,
		gl.SRC_ALPHA,
		gl.ONE_MINUS_SRC_ALPHA,
		gl.DST_ALPHA,
		gl.ONE_MINUS_DST_ALPHA,
		gl.CONSTANT_COLOR,
		gl.ONE_MINUS_CONSTANT_COLOR,
	)
	cullModeGL = enums.ArrayOf[CullMode](
		uint32(gl.BACK),
		gl.FRONT,
		gl.FRONT_AND_BACK,
	)
	windingGL = enums.ArrayOf[Winding](
		uint32(gl.CCW),
		gl.CW,
	)
	compareFuncGL = enums.ArrayOf[CompareFunc](
		uint32(gl.NEVER),
		gl.LESS,
		gl.EQUAL,
		gl.LEQUAL,
		gl.GREATER,
		gl.NOTEQUAL,
		gl.GEQUAL,
		gl.ALWAYS,
	)
	stencilActionGL = enums.ArrayOf[StencilAction](
		uint32(gl.KEEP),
		gl.ZERO,
		gl.REPLACE,
		gl.INCR,
		gl.INCR_WRAP,
		gl.DECR,
		gl.DECR_WRAP,
		gl.INVERT,
	)
	polygonModeGL = enums.ArrayOf[PolygonMode](
		uint32(gl.FILL),
		gl.LINE,
		gl.POINT,
	)
	bufferBitGL = enums.ArrayOf[BufferBit](
		uint32(gl.COLOR_BUFFER_BIT),
		gl.DEPTH_BUFFER_BIT,
		gl.STENCIL_BUFFER_BIT,
	)
	intQueryGL = enums.ArrayOf[IntQuery](
		uint32(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS),
		gl.MAX_TEXTURE_SIZE,
		gl.MAX_VERTEX_ATTRIBS,
		gl.MAX_UNIFORM_BUFFER_BINDINGS,
		gl.UNIFORM_BUFFER_BINDING,
	)
)

// GLBackend issues the real OpenGL calls. All methods must run on the
// thread holding the context.
type GLBackend struct{}

var _ Backend = GLBackend{}

func (GLBackend) SetCapability(c Capability, enabled bool) {
	if enabled {
		gl.Enable(capabilityGL.At(c))
	} else {
		gl.Disable(capabilityGL.At(c))
	}
}

func (GLBackend) SetBlendFunc(f BlendFunc) {
	gl.BlendFunc(blendFactorGL.At(f.Src), blendFactorGL.At(f.Dst))
}

func (GLBackend) SetBlendColor(c math32.Vector4) {
	gl.BlendColor(c.X, c.Y, c.Z, c.W)
}

func (GLBackend) SetCullMode(m CullMode) {
	gl.CullFace(cullModeGL.At(m))
}

func (GLBackend) SetFrontFace(w Winding) {
	gl.FrontFace(windingGL.At(w))
}

func (GLBackend) SetDepthFunc(f CompareFunc) {
	gl.DepthFunc(compareFuncGL.At(f))
}

func (GLBackend) SetStencilFunc(f StencilFunc) {
	gl.StencilFunc(compareFuncGL.At(f.Func), f.Ref, f.Mask)
}

func (GLBackend) SetStencilOp(o StencilOp) {
	gl.StencilOp(stencilActionGL.At(o.StencilFail), stencilActionGL.At(o.DepthFail), stencilActionGL.At(o.Pass))
}

func (GLBackend) SetClearColor(c math32.Vector4) {
	gl.ClearColor(c.X, c.Y, c.Z, c.W)
}

func (GLBackend) SetScissor(r math32.Bounds2) {
	size := r.Size()
	gl.Scissor(r.Low.X, r.Low.Y, size.X, size.Y)
}

func (GLBackend) SetLineWidth(w float32) {
	gl.LineWidth(w)
}

func (GLBackend) SetPointSize(s float32) {
	gl.PointSize(s)
}

func (GLBackend) SetPolygonMode(m PolygonMode) {
	gl.PolygonMode(gl.FRONT_AND_BACK, polygonModeGL.At(m))
}

func (GLBackend) Clear(mask enums.Set[BufferBit]) {
	var bits uint32
	for bit := range mask.Members() {
		bits |= bufferBitGL.At(bit)
	}
	gl.Clear(bits)
}

func (GLBackend) QueryInt(q IntQuery) int32 {
	var v int32
	gl.GetIntegerv(intQueryGL.At(q), &v)
	return v
}

func (GLBackend) QueryIntIndexed(q IntQuery, index uint32) int32 {
	var v int32
	gl.GetIntegeri_v(intQueryGL.At(q), index, &v)
	return v
}

func (GLBackend) BindTextureUnit(unit int32, texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

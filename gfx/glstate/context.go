package glstate

import "github.com/mirefox/glint"

// Context ties a backend, its state cache, its cached constants, and its
// texture-unit allocator to one GL context. Create it after the context
// is current on the calling thread.
type Context struct {
	Backend   Backend
	State     *State
	Constants *Constants
	Units     *TextureUnits
}

// New returns a context wrapper for the given backend.
func New(b Backend) *Context {
	consts := NewConstants(b)
	ctx := &Context{
		Backend:   b,
		State:     NewState(b),
		Constants: consts,
		Units:     NewTextureUnits(b, consts.MaxTextureUnits.Value()),
	}
	glint.Logger().Info("gl context state initialized",
		"textureUnits", consts.MaxTextureUnits.Value(),
		"maxTextureSize", consts.MaxTextureSize.Value(),
	)
	return ctx
}

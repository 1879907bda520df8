package glstate

import "errors"

// ErrNoFreeTextureUnit is returned by [TextureUnits.Bind] when every
// binding slot is occupied.
var ErrNoFreeTextureUnit = errors.New("glstate: no free texture unit")

// TextureUnits allocates texture binding slots. Binding an
// already-bound texture reuses its unit without touching the backend.
type TextureUnits struct {
	backend   Backend
	units     []uint32 // texture name per unit, 0 = free
	byTexture map[uint32]int32
}

// NewTextureUnits returns an allocator for count units.
func NewTextureUnits(b Backend, count int32) *TextureUnits {
	return &TextureUnits{
		backend:   b,
		units:     make([]uint32, count),
		byTexture: map[uint32]int32{},
	}
}

// Bind returns the unit the texture is bound to, binding it to the first
// free unit if needed. Returns [ErrNoFreeTextureUnit] when all units are
// taken.
func (t *TextureUnits) Bind(texture uint32) (int32, error) {
	if unit, ok := t.byTexture[texture]; ok {
		return unit, nil
	}
	for i, bound := range t.units {
		if bound == 0 {
			unit := int32(i)
			t.units[i] = texture
			t.byTexture[texture] = unit
			t.backend.BindTextureUnit(unit, texture)
			return unit, nil
		}
	}
	return 0, ErrNoFreeTextureUnit
}

// Release frees the texture's unit, if bound.
func (t *TextureUnits) Release(texture uint32) {
	unit, ok := t.byTexture[texture]
	if !ok {
		return
	}
	delete(t.byTexture, texture)
	t.units[unit] = 0
	t.backend.BindTextureUnit(unit, 0)
}

// Free returns the number of unoccupied units.
func (t *TextureUnits) Free() int {
	return len(t.units) - len(t.byTexture)
}

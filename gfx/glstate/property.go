package glstate

import "github.com/mirefox/glint"

// backup restores a property to an earlier value, bypassing frame
// recording so that popping a frame cannot pollute the enclosing one.
type backup func()

// Property is a cached context setting. Its identity is its registration
// order (the index into the owning State's table). Set is a no-op when
// the new value equals the cached one; otherwise it records a lazy
// backup into the open frame, updates the cache, and issues exactly one
// backend call. Properties are created by [NewState] and always used
// through their pointer.
type Property[T comparable] struct {
	state *State
	index int
	name  string
	value T
	def   T
	apply func(T)
}

// Flag is a boolean property bound to an Enable/Disable capability.
type Flag = Property[bool]

func newProperty[T comparable](s *State, name string, def T, apply func(T)) *Property[T] {
	return &Property[T]{state: s, index: s.register(), name: name, value: def, def: def, apply: apply}
}

func newFlag(s *State, name string, c Capability) *Flag {
	return newProperty(s, name, false, func(v bool) {
		s.backend.SetCapability(c, v)
	})
}

// Get returns the cached value.
func (p *Property[T]) Get() T { return p.value }

// Default returns the value the property starts with, matching the GL
// context's initial state.
func (p *Property[T]) Default() T { return p.def }

// Set updates the setting. Equal values are a no-op; otherwise the
// backend call is issued exactly once and the previous value is backed
// up into the open push/pop frame, if any.
func (p *Property[T]) Set(v T) {
	if v == p.value {
		return
	}
	p.state.note(p.index, p.snapshot())
	p.value = v
	p.apply(v)
	glint.Logger().Debug("gl state change", "property", p.name, "value", v)
}

// Reset sets the property back to its default value.
func (p *Property[T]) Reset() { p.Set(p.def) }

func (p *Property[T]) snapshot() backup {
	old := p.value
	return func() {
		if p.value == old {
			return
		}
		p.value = old
		p.apply(old)
	}
}

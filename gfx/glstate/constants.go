package glstate

// Constant is a context limit queried from the backend lazily on first
// access and cached forever; context limits do not change for the
// lifetime of a context.
type Constant[T any] struct {
	query  func() T
	cached bool
	value  T
}

// NewConstant returns a lazily cached constant backed by query.
func NewConstant[T any](query func() T) *Constant[T] {
	return &Constant[T]{query: query}
}

// Value returns the constant, querying the backend on the first call
// only.
func (c *Constant[T]) Value() T {
	if !c.cached {
		c.value = c.query()
		c.cached = true
	}
	return c.value
}

// IndexedConstant is a per-index context limit, cached per index.
type IndexedConstant[T any] struct {
	query func(uint32) T
	cache map[uint32]T
}

// NewIndexedConstant returns a lazily cached indexed constant backed by
// query.
func NewIndexedConstant[T any](query func(uint32) T) *IndexedConstant[T] {
	return &IndexedConstant[T]{query: query, cache: map[uint32]T{}}
}

// Value returns the constant for index, querying the backend on the
// first call for that index only.
func (c *IndexedConstant[T]) Value(index uint32) T {
	if v, ok := c.cache[index]; ok {
		return v
	}
	v := c.query(index)
	c.cache[index] = v
	return v
}

// Constants bundles the context limits the toolkit cares about.
type Constants struct {
	MaxTextureUnits          *Constant[int32]
	MaxTextureSize           *Constant[int32]
	MaxVertexAttribs         *Constant[int32]
	MaxUniformBufferBindings *Constant[int32]
	UniformBufferBinding     *IndexedConstant[int32]
}

// NewConstants returns the constant set for the given backend.
func NewConstants(b Backend) *Constants {
	query := func(q IntQuery) func() int32 {
		return func() int32 { return b.QueryInt(q) }
	}
	return &Constants{
		MaxTextureUnits:          NewConstant(query(QueryMaxTextureUnits)),
		MaxTextureSize:           NewConstant(query(QueryMaxTextureSize)),
		MaxVertexAttribs:         NewConstant(query(QueryMaxVertexAttribs)),
		MaxUniformBufferBindings: NewConstant(query(QueryMaxUniformBufferBindings)),
		UniformBufferBinding: NewIndexedConstant(func(i uint32) int32 {
			return b.QueryIntIndexed(QueryUniformBufferBinding, i)
		}),
	}
}

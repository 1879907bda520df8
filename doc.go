// Package glint is a small OpenGL toolkit: a float32 linear-algebra
// library (math32), typed enum containers (enums), marching squares/cubes
// lookup tables (march), a change-tracked render-state cache with push/pop
// scoping (gfx/glstate), CPU-side image and mipmap helpers (gfx/images),
// a minimal transform-graph/camera scene layer (scene), and a GLFW-based
// application shell (app, platform).
//
// The root package only carries cross-cutting plumbing shared by the
// sub-packages, currently the logger funnel. See cmd/sandbox for a demo
// wiring everything together.
package glint

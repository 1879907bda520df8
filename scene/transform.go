// Package scene provides a minimal scene-graph layer: hierarchical
// rigid transforms built on dual quaternions, cameras with cached
// projections, and a render list.
package scene

import (
	"errors"

	"github.com/mirefox/glint/math32"
)

// ErrTransformCycle is returned by [Transform.SetParent] when the new
// parent is the transform itself or one of its descendants.
var ErrTransformCycle = errors.New("scene: transform parent cycle")

// Transform is a node in a rigid-transform hierarchy. Its local pose is
// a dual quaternion; the full pose composes every ancestor's local pose
// down to this node and is memoized until the node or any ancestor
// changes. Computing a cold full pose costs O(depth).
//
// Change notification runs through a subscription list: children
// subscribe to their parent, and callers can observe a node with
// [Transform.OnChange].
type Transform struct {
	local  math32.DualQuat
	parent *Transform

	full  math32.DualQuat
	valid bool

	unsubParent func()
	subs        map[int]func()
	nextSub     int
}

// NewTransform returns a root transform with an identity local pose.
func NewTransform() *Transform {
	return &Transform{local: math32.DualQuatIdentity()}
}

// NewTransformPose returns a root transform with the given local pose.
func NewTransformPose(rot math32.Quat, trans math32.Vector3) *Transform {
	return &Transform{local: math32.NewDualQuat(rot, trans)}
}

// Local returns the local pose relative to the parent.
func (t *Transform) Local() math32.DualQuat { return t.local }

// SetLocal replaces the local pose and invalidates this node and its
// observers.
func (t *Transform) SetLocal(pose math32.DualQuat) {
	t.local = pose
	t.valid = false
	t.notify()
}

// SetPose replaces the local pose with a rotation plus translation.
func (t *Transform) SetPose(rot math32.Quat, trans math32.Vector3) {
	t.SetLocal(math32.NewDualQuat(rot, trans))
}

// Parent returns the parent transform, or nil for a root.
func (t *Transform) Parent() *Transform { return t.parent }

// isAncestorOf reports whether t appears on other's parent chain,
// counting other itself.
func (t *Transform) isAncestorOf(other *Transform) bool {
	for a := other; a != nil; a = a.parent {
		if a == t {
			return true
		}
	}
	return false
}

// TrySetParent reparents the node, reporting false when the new parent
// would close a cycle (parent == t, or parent is a descendant of t).
// A nil parent detaches the node.
func (t *Transform) TrySetParent(parent *Transform) bool {
	if parent != nil && t.isAncestorOf(parent) {
		return false
	}
	t.ForceParent(parent)
	return true
}

// SetParent reparents the node, returning [ErrTransformCycle] when the
// new parent would close a cycle.
func (t *Transform) SetParent(parent *Transform) error {
	if !t.TrySetParent(parent) {
		return ErrTransformCycle
	}
	return nil
}

// ForceParent reparents without the cycle check. A cycle makes Full
// recurse forever; callers must guarantee the invariant themselves.
func (t *Transform) ForceParent(parent *Transform) {
	if t.unsubParent != nil {
		t.unsubParent()
		t.unsubParent = nil
	}
	t.parent = parent
	if parent != nil {
		t.unsubParent = parent.OnChange(t.invalidate)
	}
	t.invalidate()
}

// OnChange subscribes fn to run whenever this node's full pose becomes
// stale (own change or any ancestor change). It returns the unsubscribe
// closure.
func (t *Transform) OnChange(fn func()) func() {
	if t.subs == nil {
		t.subs = map[int]func(){}
	}
	id := t.nextSub
	t.nextSub++
	t.subs[id] = fn
	return func() { delete(t.subs, id) }
}

func (t *Transform) notify() {
	for _, fn := range t.subs {
		fn()
	}
}

// invalidate marks the memoized full pose stale and cascades. Already
// stale nodes stop the cascade; their subtree was notified when they
// went stale.
func (t *Transform) invalidate() {
	if !t.valid {
		return
	}
	t.valid = false
	t.notify()
}

// Full returns the composed pose from the root down to this node,
// recomputing only when stale.
func (t *Transform) Full() math32.DualQuat {
	if !t.valid {
		if t.parent != nil {
			t.full = t.parent.Full().Mul(t.local)
		} else {
			t.full = t.local
		}
		t.valid = true
	}
	return t.full
}

// Matrix returns the full pose as a column-major matrix.
func (t *Transform) Matrix() math32.Matrix4 {
	return t.Full().ToMatrix4()
}

package component

import "github.com/lixenwraith/skillcast/core"

// TransformComponent is the world pose of an entity
type TransformComponent struct {
	core.Transform
}

// MountPointsComponent holds named attachment points on a caster, in caster-local space
type MountPointsComponent struct {
	Points map[string]core.Transform
}

// Mount returns the local pose of a named mount point
func (m MountPointsComponent) Mount(name string) (core.Transform, bool) {
	if m.Points == nil {
		return core.Transform{}, false
	}
	t, ok := m.Points[name]
	return t, ok
}

// IdentityComponent records the persistent identity of an entity
type IdentityComponent struct {
	ID core.PersistentID
}

package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/core"
	"github.com/lixenwraith/skillcast/physics"
)

// NewTestWorld creates a world with a scene ray caster over its own colliders
func NewTestWorld() *World {
	w := NewWorld()
	w.Resources.RayCaster = physics.NewSceneRayCaster(w)
	return w
}

// SpawnTestCaster creates a caster with identity, pose and a "hand_r" mount one unit forward
func SpawnTestCaster(w *World, pose core.Transform) core.Entity {
	e := With(With(w.NewEntity(),
		w.Components.Transform, component.TransformComponent{Transform: pose}),
		w.Components.MountPoints, component.MountPointsComponent{
			Points: map[string]core.Transform{
				"hand_r": core.TransformAt(mgl64.Vec3{0.5, 1, -1}),
			},
		}).Build()
	w.AssignIdentity(e, core.NewPersistentID())
	return e
}

// SpawnTestObstacle creates a solid ball obstacle of the given category
func SpawnTestObstacle(w *World, pos mgl64.Vec3, radius float64, cat component.Category) core.Entity {
	return With(With(w.NewEntity(),
		w.Components.Transform, component.TransformComponent{Transform: core.TransformAt(pos)}),
		w.Components.Collider, component.ColliderComponent{
			Shape:    component.ColliderShapeBall,
			Radius:   radius,
			Category: cat,
		}).Build()
}

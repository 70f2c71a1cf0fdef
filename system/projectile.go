package system

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/core"
	"github.com/lixenwraith/skillcast/engine"
	"github.com/lixenwraith/skillcast/event"
	"github.com/lixenwraith/skillcast/parameter"
	"github.com/lixenwraith/skillcast/physics"
)

// ProjectileSystem moves travelling skills along their forward axis
// Each step is swept with a solid ray against colliders in the contact's blocker categories
// A blocked or spent projectile is despawned with its whole group
type ProjectileSystem struct {
	world *engine.World
}

func NewProjectileSystem(world *engine.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Name() string { return "projectile" }

func (s *ProjectileSystem) Priority() int { return parameter.PriorityProjectile }

func (s *ProjectileSystem) Update(dt time.Duration) {
	entities := s.world.Components.ProjectileFlight.GetAllEntities()
	if len(entities) == 0 {
		return
	}
	secs := dt.Seconds()

	for _, e := range entities {
		flight, ok := s.world.Components.ProjectileFlight.GetComponent(e)
		if !ok {
			continue
		}
		pose, ok := s.world.TransformOf(e)
		if !ok {
			continue
		}
		group, _ := s.world.Components.SkillGroup.GetComponent(e)

		step := math.Min(flight.Speed*secs, math.Max(flight.Remaining, 0))
		forward := pose.Forward()

		if hit, ok := s.sweep(e, group, flight.Caster, pose, step); ok {
			end := pose.Translation.Add(forward.Mul(hit.TimeOfImpact))
			s.world.Log().Debug("projectile blocked",
				zap.Uint64("root", uint64(e)),
				zap.Uint64("blocker", uint64(hit.Entity)))
			s.end(e, group, event.EventProjectileBlocked, &event.ProjectileEndPayload{
				Skill:    group.Entities,
				Position: end,
				Blocker:  hit.Entity,
			})
			continue
		}

		pose.Translation = pose.Translation.Add(forward.Mul(step))
		flight.Remaining -= step
		s.world.SetTransform(e, pose)

		if flight.Remaining <= 0 {
			s.end(e, group, event.EventProjectileExpired, &event.ProjectileEndPayload{
				Skill:    group.Entities,
				Position: pose.Translation,
			})
			continue
		}
		s.world.Components.ProjectileFlight.SetComponent(e, flight)
	}
}

// sweep casts this tick's step against the contact's blockers
// Skills with no blockers or no ray caster fly unobstructed
func (s *ProjectileSystem) sweep(root core.Entity, group component.SkillGroupComponent, caster core.Entity, pose core.Transform, step float64) (physics.RayHit, bool) {
	rc := s.world.Resources.RayCaster
	if rc == nil || step <= 0 {
		return physics.RayHit{}, false
	}
	contact, ok := s.world.ColliderOf(group.Entities.Contact)
	if !ok || contact.Blockers == component.CategoryNone {
		return physics.RayHit{}, false
	}

	filter := physics.QueryFilter{
		Exclude:        []core.Entity{root, caster, group.Entities.Contact, group.Entities.Projection},
		Mask:           contact.Blockers,
		ExcludeSensors: true,
	}
	return rc.CastRay(pose.Translation, pose.Forward(), step, true, filter)
}

func (s *ProjectileSystem) end(root core.Entity, group component.SkillGroupComponent, t event.EventType, payload *event.ProjectileEndPayload) {
	s.world.PushEvent(t, payload)
	if group.Entities.Root.Transient == root {
		despawnGroup(s.world, group.Entities)
		return
	}
	s.world.DestroyEntity(root)
}

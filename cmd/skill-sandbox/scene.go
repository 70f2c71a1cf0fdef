package main

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/config"
	"github.com/lixenwraith/skillcast/core"
	"github.com/lixenwraith/skillcast/engine"
	"github.com/lixenwraith/skillcast/event"
	"github.com/lixenwraith/skillcast/system"
)

const (
	turnStep   = math.Pi / 12
	walkSpeed  = 4.0
	cursorStep = 1.0
	pickHeight = 10.0
)

// scene is the sandbox state around the world: player caster, aim cursor, target lock
type scene struct {
	world   *engine.World
	cast    *system.SkillCastSystem
	catalog *config.Catalog
	skills  []string

	caster core.Entity
	cursor mgl64.Vec3 // Ground-plane aim point
	locked core.PersistentID
	lockOn bool

	status string
}

func newScene(w *engine.World, catalog *config.Catalog) *scene {
	s := &scene{
		world:   w,
		cast:    system.RegisterAll(w),
		catalog: catalog,
		skills:  catalog.Names(),
		cursor:  mgl64.Vec3{0, 0, -6},
		status:  "ready",
	}
	w.AddEventHandler(s)
	s.populate()
	return s
}

// populate places the player and a few obstacles
func (s *scene) populate() {
	w := s.world
	s.caster = engine.With(engine.With(w.NewEntity(),
		w.Components.Transform, component.TransformComponent{Transform: core.IdentityTransform()}),
		w.Components.MountPoints, component.MountPointsComponent{
			Points: map[string]core.Transform{
				"hand_r": core.TransformAt(mgl64.Vec3{0.5, 1, -0.5}),
				"hand_l": core.TransformAt(mgl64.Vec3{-0.5, 1, -0.5}),
			},
		}).Build()
	w.AssignIdentity(s.caster, core.NewPersistentID())

	obstacle := func(pos mgl64.Vec3, radius float64, cat component.Category) core.Entity {
		return engine.With(engine.With(w.NewEntity(),
			w.Components.Transform, component.TransformComponent{Transform: core.TransformAt(pos)}),
			w.Components.Collider, component.ColliderComponent{
				Shape:    component.ColliderShapeBall,
				Radius:   radius,
				Category: cat,
			}).Build()
	}

	obstacle(mgl64.Vec3{0, 1, -12}, 1.5, component.CategoryBarrier)
	obstacle(mgl64.Vec3{-8, 1, -6}, 2, component.CategoryTerrain)
	dummy := obstacle(mgl64.Vec3{6, 1, -9}, 0.8, component.CategoryActor)

	s.locked = core.NewPersistentID()
	w.AssignIdentity(dummy, s.locked)
}

// castSkill casts the catalog skill at index i, aiming stationary skills at the lock or cursor
func (s *scene) castSkill(i int) {
	if i < 0 || i >= len(s.skills) {
		return
	}
	def, err := s.catalog.Skill(s.skills[i])
	if err != nil {
		s.status = err.Error()
		return
	}

	var target component.SkillTarget
	if s.lockOn {
		target = component.TargetEntity{ID: s.locked}
	} else if pick, ok := system.GroundPick(s.cursor.Add(mgl64.Vec3{0, pickHeight, 0}), mgl64.Vec3{0, -1, 0}, s.world.Resources.Config.Sandbox.GroundHeight); ok {
		target = pick
	} else {
		target = component.TargetGround{Point: s.cursor}
	}

	req, err := def.Request(s.caster, target)
	if err != nil {
		s.status = err.Error()
		return
	}
	s.world.PushEvent(event.EventSkillCastRequest, &event.SkillCastRequestPayload{Request: req})
}

// turn rotates the caster about the up axis
func (s *scene) turn(angle float64) {
	pose, ok := s.world.TransformOf(s.caster)
	if !ok {
		return
	}
	pose.Rotation = mgl64.QuatRotate(angle, core.AxisUp).Mul(pose.Orientation()).Normalize()
	s.world.SetTransform(s.caster, pose)
}

// walk drives the caster along its local axis, zero axis stops
func (s *scene) walk(local mgl64.Vec3) {
	if local == (mgl64.Vec3{}) {
		system.SetMotion(s.world, s.caster, component.MoveStop{})
		return
	}
	pose, _ := s.world.TransformOf(s.caster)
	dir := pose.Orientation().Rotate(local)
	system.SetMotion(s.world, s.caster, component.MoveDirection{Speed: walkSpeed, Direction: dir})
}

// walkToCursor sends the caster to the aim point
func (s *scene) walkToCursor() {
	system.SetMotion(s.world, s.caster, component.MoveToTarget{Speed: walkSpeed, Target: s.cursor})
}

func (s *scene) moveCursor(dx, dz float64) {
	s.cursor = s.cursor.Add(mgl64.Vec3{dx, 0, dz})
}

// clearSkills requests despawn of every live skill group
func (s *scene) clearSkills() {
	for _, root := range s.world.Components.SkillGroup.GetAllEntities() {
		group, ok := s.world.Components.SkillGroup.GetComponent(root)
		if !ok {
			continue
		}
		s.world.PushEvent(event.EventSkillDespawnRequest, &event.SkillDespawnPayload{Skill: group.Entities})
	}
}

func (s *scene) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSkillSpawned,
		event.EventSkillSpawnFailed,
		event.EventGroundTargetPlaced,
		event.EventProjectileBlocked,
		event.EventProjectileExpired,
		event.EventCharacterMotionCompleted,
	}
}

// HandleEvent keeps the status line on the latest skill event
func (s *scene) HandleEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.SkillSpawnedPayload:
		s.status = fmt.Sprintf("spawned %s (root %d)", p.Name, p.Skill.Root.Transient)
	case *event.SkillSpawnFailedPayload:
		s.status = fmt.Sprintf("cast %s failed: %v", p.Name, p.Err)
	case *event.GroundTargetPlacedPayload:
		s.status = fmt.Sprintf("placed at (%.1f, %.1f) clamped=%v", p.Position.X(), p.Position.Z(), p.Clamped)
	case *event.ProjectileEndPayload:
		if ev.Type == event.EventProjectileBlocked {
			s.status = fmt.Sprintf("blocked by %d", p.Blocker)
		} else {
			s.status = "projectile expired"
		}
	case *event.MotionCompletedPayload:
		s.status = fmt.Sprintf("arrived at (%.1f, %.1f)", p.Position.X(), p.Position.Z())
	}
}

package system

import (
	"errors"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/core"
	"github.com/lixenwraith/skillcast/engine"
	"github.com/lixenwraith/skillcast/event"
	"github.com/lixenwraith/skillcast/parameter"
	"github.com/lixenwraith/skillcast/physics"
)

var (
	ErrCasterMissing = errors.New("caster does not exist")
	ErrNoMotion      = errors.New("cast request has no motion")
)

// SkillCastSystem turns cast requests into skill groups and owns their lifetime
// A group is root + contact + projection, created and destroyed as a unit
// Casts arrive synchronously via Cast or as EventSkillCastRequest
type SkillCastSystem struct {
	world *engine.World
}

func NewSkillCastSystem(world *engine.World) *SkillCastSystem {
	return &SkillCastSystem{world: world}
}

func (s *SkillCastSystem) Name() string { return "skill_cast" }

func (s *SkillCastSystem) Priority() int { return parameter.PrioritySkillCast }

func (s *SkillCastSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSkillCastRequest,
		event.EventSkillDespawnRequest,
	}
}

func (s *SkillCastSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSkillCastRequest:
		if p, ok := ev.Payload.(*event.SkillCastRequestPayload); ok {
			_, _ = s.Cast(p.Request)
		}
	case event.EventSkillDespawnRequest:
		if p, ok := ev.Payload.(*event.SkillDespawnPayload); ok {
			s.Despawn(p.Skill)
		}
	}
}

// Update is event driven; nothing runs per tick
func (s *SkillCastSystem) Update(dt time.Duration) {}

// SpawnSkill creates a skill group at the given pose
// Both colliders are built before any entity exists; a construction error leaves the world untouched
func (s *SkillCastSystem) SpawnSkill(contact, projection component.ShapeDesc, at core.Transform) (component.SkillEntities, error) {
	meshes := s.world.Resources.Meshes

	contactCol, err := physics.BuildCollider(component.RoleContact, contact, meshes)
	if err != nil {
		return component.SkillEntities{}, err
	}
	projectionCol, err := physics.BuildCollider(component.RoleProjection, projection, meshes)
	if err != nil {
		return component.SkillEntities{}, err
	}

	rootBuilder := s.world.NewEntity()
	contactBuilder := s.world.NewEntity()
	projectionBuilder := s.world.NewEntity()

	skill := component.SkillEntities{
		Root: component.SkillRoot{
			Transient:  rootBuilder.Entity(),
			Persistent: core.NewPersistentID(),
		},
		Contact:    contactBuilder.Entity(),
		Projection: projectionBuilder.Entity(),
	}
	root := skill.Root.Transient
	pose := component.TransformComponent{Transform: at}

	engine.With(engine.With(rootBuilder,
		s.world.Components.Transform, pose),
		s.world.Components.SkillGroup, component.SkillGroupComponent{Entities: skill},
	).Build()

	engine.With(engine.With(engine.With(contactBuilder,
		s.world.Components.Transform, pose),
		s.world.Components.Collider, contactCol),
		s.world.Components.SkillMember, component.SkillMemberComponent{Root: root, Role: component.RoleContact},
	).Build()

	engine.With(engine.With(engine.With(projectionBuilder,
		s.world.Components.Transform, pose),
		s.world.Components.Collider, projectionCol),
		s.world.Components.SkillMember, component.SkillMemberComponent{Root: root, Role: component.RoleProjection},
	).Build()

	s.world.AssignIdentity(root, skill.Root.Persistent)

	return skill, nil
}

// Cast spawns a skill for the request and attaches the motion-specific state
// Emits EventSkillSpawned on success, EventSkillSpawnFailed otherwise
func (s *SkillCastSystem) Cast(req component.CastRequest) (component.SkillEntities, error) {
	skill, err := s.cast(req)
	if err != nil {
		caster := core.NoEntity
		if req.Motion != nil {
			caster = req.Motion.CasterEntity()
		}
		s.world.Log().Warn("skill cast rejected",
			zap.String("skill", req.Name),
			zap.Uint64("caster", uint64(caster)),
			zap.Error(err),
		)
		s.world.PushEvent(event.EventSkillSpawnFailed, &event.SkillSpawnFailedPayload{
			Name:   req.Name,
			Caster: caster,
			Err:    err,
		})
		return component.SkillEntities{}, err
	}

	s.world.Log().Debug("skill spawned",
		zap.String("skill", req.Name),
		zap.Uint64("root", uint64(skill.Root.Transient)),
		zap.Stringer("id", skill.Root.Persistent),
	)
	s.world.PushEvent(event.EventSkillSpawned, &event.SkillSpawnedPayload{
		Name:   req.Name,
		Skill:  skill,
		Caster: req.Motion.CasterEntity(),
	})
	return skill, nil
}

func (s *SkillCastSystem) cast(req component.CastRequest) (component.SkillEntities, error) {
	if req.Motion == nil {
		return component.SkillEntities{}, ErrNoMotion
	}
	caster := req.Motion.CasterEntity()
	if !s.world.Exists(caster) {
		return component.SkillEntities{}, ErrCasterMissing
	}
	casterPose, _ := s.world.TransformOf(caster)

	at := s.spawnPose(req.Motion, casterPose)
	skill, err := s.SpawnSkill(req.Contact, req.Projection, at)
	if err != nil {
		return component.SkillEntities{}, err
	}
	root := skill.Root.Transient

	group, _ := s.world.Components.SkillGroup.GetComponent(root)
	group.Caster = caster
	group.Name = req.Name
	s.world.Components.SkillGroup.SetComponent(root, group)

	switch m := req.Motion.(type) {
	case component.MotionHeldBy:
		s.world.Components.Attachment.SetComponent(root, component.AttachmentComponent{
			Caster: caster,
			Mount:  m.Spawner,
		})
	case component.MotionStationary:
		s.world.Components.GroundTarget.SetComponent(root, component.GroundTargetComponent{
			Caster:       caster,
			Target:       m.Target,
			MaxCastRange: m.MaxCastRange,
			Phase:        component.PlacementUnplaced,
		})
	case component.MotionProjectile:
		s.world.Components.ProjectileFlight.SetComponent(root, component.ProjectileFlightComponent{
			Caster:    caster,
			Speed:     m.Speed,
			Remaining: m.Range,
		})
	}

	if beamRange, ok := beamRangeOf(req.Contact, req.Projection); ok {
		s.world.Components.Beam.SetComponent(root, component.BeamComponent{
			Range:  beamRange,
			Caster: caster,
		})
	}

	s.attachEffects(skill, req.Effects)
	return skill, nil
}

// spawnPose is the initial root pose for a motion mode
// Stationary skills start on the caster and are moved once by GroundTargetSystem
// Skills that detach from the caster keep its position and facing, never its scale
func (s *SkillCastSystem) spawnPose(m component.Motion, casterPose core.Transform) core.Transform {
	switch m := m.(type) {
	case component.MotionHeldBy:
		return s.mountPose(m.Caster, m.Spawner, casterPose)
	case component.MotionProjectile:
		mount := s.mountPose(m.Caster, m.Spawner, casterPose)
		return detachedPose(mount.Translation, casterPose)
	default:
		return detachedPose(casterPose.Translation, casterPose)
	}
}

// detachedPose places a unit-scale pose at p with the caster facing
func detachedPose(p mgl64.Vec3, casterPose core.Transform) core.Transform {
	pose := core.TransformAt(p)
	pose.Rotation = casterPose.Orientation()
	return pose
}

// mountPose returns the world pose of a named caster mount, the caster origin when absent
func (s *SkillCastSystem) mountPose(caster core.Entity, mount string, casterPose core.Transform) core.Transform {
	mounts, ok := s.world.Components.MountPoints.GetComponent(caster)
	if !ok {
		return casterPose
	}
	local, ok := mounts.Mount(mount)
	if !ok {
		return casterPose
	}
	return casterPose.Mul(local)
}

func (s *SkillCastSystem) attachEffects(skill component.SkillEntities, effects component.EffectSet) {
	for _, eff := range effects.Root {
		s.world.Components.InsertEffect(skill.Root.Transient, eff)
	}
	for _, eff := range effects.Contact {
		s.world.Components.InsertEffect(skill.Contact, eff)
	}
	for _, eff := range effects.Projection {
		s.world.Components.InsertEffect(skill.Projection, eff)
	}
}

// InsertOnRoot stages effects on the skill root in the caller's command buffer
func (s *SkillCastSystem) InsertOnRoot(cmd *engine.Commands, skill component.SkillEntities, effects ...component.Effect) {
	insertEffects(cmd, skill.Root.Transient, effects)
}

// InsertOnContact stages effects on the contact entity
func (s *SkillCastSystem) InsertOnContact(cmd *engine.Commands, skill component.SkillEntities, effects ...component.Effect) {
	insertEffects(cmd, skill.Contact, effects)
}

// InsertOnProjection stages effects on the projection entity
func (s *SkillCastSystem) InsertOnProjection(cmd *engine.Commands, skill component.SkillEntities, effects ...component.Effect) {
	insertEffects(cmd, skill.Projection, effects)
}

func insertEffects(cmd *engine.Commands, e core.Entity, effects []component.Effect) {
	for _, eff := range effects {
		cmd.InsertEffect(e, eff)
	}
}

// Despawn destroys every member of a skill group and unregisters its identity
// Despawning a group that is already gone is a no-op
func (s *SkillCastSystem) Despawn(skill component.SkillEntities) {
	despawnGroup(s.world, skill)
}

// despawnGroup is the single fan-out used by every system that ends a skill
func despawnGroup(w *engine.World, skill component.SkillEntities) bool {
	removed := false
	for _, e := range skill.Members() {
		if w.Exists(e) {
			w.DestroyEntity(e)
			removed = true
		}
	}
	if !removed {
		return false
	}
	w.PushEvent(event.EventSkillDespawned, &event.SkillDespawnPayload{Skill: skill})
	return true
}

// beamRangeOf returns the range of the first beam shape, contact first
func beamRangeOf(descs ...component.ShapeDesc) (float64, bool) {
	for _, d := range descs {
		if b, ok := d.Shape.(component.ShapeBeam); ok {
			return b.Range, true
		}
	}
	return 0, false
}

package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/core"
	"github.com/lixenwraith/skillcast/engine"
	"github.com/lixenwraith/skillcast/event"
	"github.com/lixenwraith/skillcast/parameter"
	"github.com/lixenwraith/skillcast/vmath"
)

// CharacterMotionSystem integrates simple point-motion commands
// Immobilized entities and finished commands are skipped entirely
type CharacterMotionSystem struct {
	world *engine.World
}

func NewCharacterMotionSystem(world *engine.World) *CharacterMotionSystem {
	return &CharacterMotionSystem{world: world}
}

func (s *CharacterMotionSystem) Name() string { return "character_motion" }

func (s *CharacterMotionSystem) Priority() int { return parameter.PriorityCharacterMotion }

func (s *CharacterMotionSystem) Update(dt time.Duration) {
	entities := s.world.Components.CharacterMotion.GetAllEntities()
	if len(entities) == 0 {
		return
	}

	for _, e := range entities {
		if s.world.Components.Immobilized.HasEntity(e) {
			continue
		}
		cmd, ok := s.world.Components.CharacterMotion.GetComponent(e)
		if !ok || cmd.IsDone {
			continue
		}
		pose, ok := s.world.TransformOf(e)
		if !ok {
			continue
		}

		// Both phases read the pre-advance position
		delta := AdvanceMotion(cmd.Motion, pose.Translation, dt)
		done := MotionCompleted(cmd.Motion, pose.Translation, dt)
		next := pose.Translated(delta)
		if target, ok := cmd.Motion.(component.MoveToTarget); ok && done {
			next.Translation = vmath.MoveTowards(pose.Translation, target.Target, target.Speed*dt.Seconds())
		}

		cmd.LastDelta = delta
		if next.Translation != pose.Translation {
			pose = next
			s.world.SetTransform(e, pose)
		}

		if done {
			// Finished commands report no step
			cmd.LastDelta = mgl64.Vec3{}
			cmd.IsDone = true
			s.world.Components.InMotion.RemoveEntity(e)
			s.world.PushEvent(event.EventCharacterMotionCompleted, &event.MotionCompletedPayload{
				Entity:   e,
				Position: pose.Translation,
			})
		}
		s.world.Components.CharacterMotion.SetComponent(e, cmd)
	}
}

// SetMotion replaces the command on an entity and marks it in motion
// Replacement is the only way out of a done command
func SetMotion(w *engine.World, e core.Entity, m component.CharacterMotion) {
	if !w.Exists(e) {
		return
	}
	w.Components.CharacterMotion.SetComponent(e, component.CharacterMotionComponent{Motion: m})
	w.Components.InMotion.SetComponent(e, component.InMotionComponent{})
}

// AdvanceMotion returns the translation a command produces from position over dt
// MoveToTarget already on its target yields the zero vector
func AdvanceMotion(m component.CharacterMotion, position mgl64.Vec3, dt time.Duration) mgl64.Vec3 {
	secs := dt.Seconds()
	switch m := m.(type) {
	case component.MoveDirection:
		return m.Direction.Mul(m.Speed * secs)
	case component.MoveToTarget:
		return vmath.SafeNormalize(m.Target.Sub(position)).Mul(m.Speed * secs)
	}
	return mgl64.Vec3{}
}

// MotionCompleted reports whether a command finishes this tick, evaluated on the pre-advance position
// MoveStop is done at once, MoveDirection never
func MotionCompleted(m component.CharacterMotion, position mgl64.Vec3, dt time.Duration) bool {
	switch m := m.(type) {
	case component.MoveStop:
		return true
	case component.MoveToTarget:
		if position == m.Target {
			return true
		}
		return vmath.Distance(position, m.Target) < m.Speed*dt.Seconds()
	}
	return false
}

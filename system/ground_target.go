package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/core"
	"github.com/lixenwraith/skillcast/engine"
	"github.com/lixenwraith/skillcast/event"
	"github.com/lixenwraith/skillcast/parameter"
	"github.com/lixenwraith/skillcast/vmath"
)

// GroundTargetSystem places stationary skills exactly once
// Unplaced instances wait until caster and target resolve, then get one transform write
// Placed is terminal; a later caster turn does not re-orient the skill
type GroundTargetSystem struct {
	world *engine.World
}

func NewGroundTargetSystem(world *engine.World) *GroundTargetSystem {
	return &GroundTargetSystem{world: world}
}

func (s *GroundTargetSystem) Name() string { return "ground_target" }

func (s *GroundTargetSystem) Priority() int { return parameter.PriorityGroundTarget }

func (s *GroundTargetSystem) Update(dt time.Duration) {
	entities := s.world.Components.GroundTarget.GetAllEntities()
	if len(entities) == 0 {
		return
	}

	for _, e := range entities {
		gt, ok := s.world.Components.GroundTarget.GetComponent(e)
		if !ok || gt.Phase != component.PlacementUnplaced {
			continue
		}

		target, ok := s.resolveTarget(gt.Target)
		if !ok {
			s.world.Log().Debug("ground target unresolved, retrying",
				zap.Uint64("entity", uint64(e)))
			continue
		}

		// Gone caster is a retry; a live caster without a pose is fail-open
		if !s.world.Exists(gt.Caster) {
			s.world.Log().Debug("ground target caster missing, retrying",
				zap.Uint64("entity", uint64(e)),
				zap.Uint64("caster", uint64(gt.Caster)))
			continue
		}

		pose, _ := s.world.TransformOf(e)
		pose.Translation = target
		clamped := false

		if casterPose, ok := s.world.TransformOf(gt.Caster); ok {
			pose.Translation, clamped = vmath.ClampToSphere(casterPose.Translation, target, gt.MaxCastRange)
			pose.Rotation = casterPose.Orientation()
		}

		s.world.SetTransform(e, pose)
		gt.Phase = component.PlacementPlaced
		s.world.Components.GroundTarget.SetComponent(e, gt)

		s.world.PushEvent(event.EventGroundTargetPlaced, &event.GroundTargetPlacedPayload{
			Root:     e,
			Position: pose.Translation,
			Clamped:  clamped,
		})
	}
}

// resolveTarget returns the world point a target refers to this tick
func (s *GroundTargetSystem) resolveTarget(target component.SkillTarget) (mgl64.Vec3, bool) {
	switch t := target.(type) {
	case component.TargetGround:
		return t.Point, true
	case component.TargetEntity:
		e, ok := s.world.Resolve(t.ID)
		if !ok {
			return mgl64.Vec3{}, false
		}
		pose, ok := s.world.TransformOf(e)
		if !ok {
			return mgl64.Vec3{}, false
		}
		return pose.Translation, true
	}
	return mgl64.Vec3{}, false
}

// GroundPick resolves a cursor ray onto the horizontal ground plane at groundHeight
func GroundPick(origin, dir mgl64.Vec3, groundHeight float64) (component.TargetGround, bool) {
	point, _, ok := vmath.RayPlane(origin, dir, mgl64.Vec3{0, groundHeight, 0}, core.AxisUp)
	if !ok {
		return component.TargetGround{}, false
	}
	return component.TargetGround{Point: point}, true
}

package system

import (
	"math"
	"time"

	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/core"
	"github.com/lixenwraith/skillcast/engine"
	"github.com/lixenwraith/skillcast/parameter"
	"github.com/lixenwraith/skillcast/physics"
)

// BeamSystem tracks the live length of every beam-shaped skill
// Runs every tick so beams follow a turning caster and moving obstacles
type BeamSystem struct {
	world *engine.World
}

func NewBeamSystem(world *engine.World) *BeamSystem {
	return &BeamSystem{world: world}
}

func (s *BeamSystem) Name() string { return "beam" }

func (s *BeamSystem) Priority() int { return parameter.PriorityBeam }

func (s *BeamSystem) Update(dt time.Duration) {
	caster := s.world.Resources.RayCaster
	if caster == nil {
		return
	}

	entities := s.world.Components.Beam.GetAllEntities()
	if len(entities) == 0 {
		return
	}

	minLength := s.world.Resources.Config.Beam.MinLength
	if minLength <= 0 {
		minLength = parameter.BeamMinLength
	}

	for _, e := range entities {
		beam, ok := s.world.Components.Beam.GetComponent(e)
		if !ok {
			continue
		}
		pose, ok := s.world.TransformOf(e)
		if !ok {
			continue
		}

		filter := physics.QueryFilter{
			Exclude:        s.exclusions(e, beam.Caster),
			ExcludeSensors: true,
		}

		active := component.ActiveBeamComponent{Length: beam.Range}
		if hit, ok := caster.CastRay(pose.Translation, pose.Forward(), beam.Range, false, filter); ok {
			active.Length = BeamLength(hit.TimeOfImpact, minLength)
			active.Hit = hit.Entity
		}
		active.Length = math.Max(active.Length, minLength)

		s.world.Components.ActiveBeam.SetComponent(e, active)
	}
}

// exclusions is the beam's own group plus its caster
func (s *BeamSystem) exclusions(root, caster core.Entity) []core.Entity {
	exclude := []core.Entity{root, caster}
	if group, ok := s.world.Components.SkillGroup.GetComponent(root); ok {
		exclude = append(exclude, group.Entities.Contact, group.Entities.Projection)
	}
	return exclude
}

// BeamLength floors a time of impact so a beam is never zero length
func BeamLength(timeOfImpact, minLength float64) float64 {
	return math.Max(timeOfImpact, minLength)
}

package system

import (
	"time"

	"github.com/lixenwraith/skillcast/core"
	"github.com/lixenwraith/skillcast/engine"
	"github.com/lixenwraith/skillcast/parameter"
)

// GroupSyncSystem copies each skill root pose onto its contact and projection members
type GroupSyncSystem struct {
	world *engine.World
}

func NewGroupSyncSystem(world *engine.World) *GroupSyncSystem {
	return &GroupSyncSystem{world: world}
}

func (s *GroupSyncSystem) Name() string { return "group_sync" }

func (s *GroupSyncSystem) Priority() int { return parameter.PriorityGroupSync }

func (s *GroupSyncSystem) Update(dt time.Duration) {
	for _, root := range s.world.Components.SkillGroup.GetAllEntities() {
		group, ok := s.world.Components.SkillGroup.GetComponent(root)
		if !ok {
			continue
		}
		pose, ok := s.world.TransformOf(root)
		if !ok {
			continue
		}
		for _, member := range [2]core.Entity{group.Entities.Contact, group.Entities.Projection} {
			if s.world.Exists(member) {
				s.world.SetTransform(member, pose)
			}
		}
	}
}

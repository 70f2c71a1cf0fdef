package system

import (
	"time"

	"github.com/lixenwraith/skillcast/engine"
	"github.com/lixenwraith/skillcast/parameter"
)

// AttachmentSystem keeps held skills on their caster's mount point
// A held skill whose caster is gone is despawned with its group
type AttachmentSystem struct {
	world *engine.World
}

func NewAttachmentSystem(world *engine.World) *AttachmentSystem {
	return &AttachmentSystem{world: world}
}

func (s *AttachmentSystem) Name() string { return "attachment" }

func (s *AttachmentSystem) Priority() int { return parameter.PriorityAttachment }

func (s *AttachmentSystem) Update(dt time.Duration) {
	for _, e := range s.world.Components.Attachment.GetAllEntities() {
		att, ok := s.world.Components.Attachment.GetComponent(e)
		if !ok {
			continue
		}

		if !s.world.Exists(att.Caster) {
			if group, ok := s.world.Components.SkillGroup.GetComponent(e); ok {
				despawnGroup(s.world, group.Entities)
			} else {
				s.world.DestroyEntity(e)
			}
			continue
		}

		casterPose, ok := s.world.TransformOf(att.Caster)
		if !ok {
			continue
		}
		pose := casterPose
		if mounts, ok := s.world.Components.MountPoints.GetComponent(att.Caster); ok {
			if local, ok := mounts.Mount(att.Mount); ok {
				pose = casterPose.Mul(local)
			}
		}
		s.world.SetTransform(e, pose)
	}
}

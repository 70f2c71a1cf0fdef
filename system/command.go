package system

import (
	"time"

	"github.com/lixenwraith/skillcast/engine"
	"github.com/lixenwraith/skillcast/parameter"
)

// CommandSystem applies the world command buffer at the start of the tick
// Effects staged by gameplay code during the previous tick land before any resolver runs
type CommandSystem struct {
	world *engine.World
}

func NewCommandSystem(world *engine.World) *CommandSystem {
	return &CommandSystem{world: world}
}

func (s *CommandSystem) Name() string { return "commands" }

func (s *CommandSystem) Priority() int { return parameter.PriorityCommands }

func (s *CommandSystem) Update(dt time.Duration) {
	if s.world.Commands.Len() == 0 {
		return
	}
	s.world.Commands.Apply(s.world)
}

package engine

import (
	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/core"
)

type command struct {
	target core.Entity
	apply  func(w *World)
}

// Commands is an ordered buffer of deferred structural edits
// Edits targeting an entity that is gone at apply time are dropped
type Commands struct {
	queue []command
}

func NewCommands() *Commands {
	return &Commands{}
}

// InsertEffect stages an effect attachment
func (c *Commands) InsertEffect(e core.Entity, eff component.Effect) {
	c.queue = append(c.queue, command{
		target: e,
		apply: func(w *World) {
			w.Components.InsertEffect(e, eff)
		},
	})
}

// Despawn stages entity destruction
func (c *Commands) Despawn(e core.Entity) {
	c.queue = append(c.queue, command{
		target: e,
		apply: func(w *World) {
			w.DestroyEntity(e)
		},
	})
}

// Len returns the number of staged edits
func (c *Commands) Len() int {
	return len(c.queue)
}

// Apply runs staged edits in order and empties the buffer
func (c *Commands) Apply(w *World) {
	queue := c.queue
	c.queue = nil
	for _, cmd := range queue {
		if cmd.target != core.NoEntity && !w.Exists(cmd.target) {
			continue
		}
		cmd.apply(w)
	}
}

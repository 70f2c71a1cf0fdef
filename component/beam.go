package component

import "github.com/lixenwraith/skillcast/core"

// BeamComponent marks a beam-shaped skill root tracked every tick
type BeamComponent struct {
	Range  float64
	Caster core.Entity // Excluded from the beam's ray
}

// ActiveBeamComponent is the live beam length, always >= the configured minimum
type ActiveBeamComponent struct {
	Length float64
	Hit    core.Entity // Entity that stopped the beam, NoEntity at full range
}

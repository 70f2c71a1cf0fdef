package parameter

// System Execution Priorities (lower runs first)
// Spawning happens synchronously or on command flush, so it precedes every resolver in the same tick
const (
	PriorityCommands        = 10 // Deferred structural edits from the previous tick
	PrioritySkillCast       = 20 // Cast requests arriving as events
	PriorityAttachment      = 30 // HeldBy roots follow caster mounts
	PriorityProjectile      = 40
	PriorityGroundTarget    = 50 // One-shot placement before any same-tick reader
	PriorityGroupSync       = 60 // Root pose to contact/projection members
	PriorityBeam            = 70 // After group sync so rays start at current poses
	PriorityCharacterMotion = 80
)

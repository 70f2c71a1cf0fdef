package event

// EventType represents the type of game event
type EventType int

const (
	// === Skill Lifecycle ===

	// EventSkillCastRequest requests a skill cast
	// Trigger: Input, AI | Consumer: SkillCastSystem | Payload: *SkillCastRequestPayload
	EventSkillCastRequest EventType = iota

	// EventSkillSpawned reports a created skill group
	// Trigger: SkillCastSystem | Consumer: Animation, audio | Payload: *SkillSpawnedPayload
	EventSkillSpawned

	// EventSkillSpawnFailed reports a rejected cast, nothing was spawned
	// Trigger: SkillCastSystem | Consumer: UI | Payload: *SkillSpawnFailedPayload
	EventSkillSpawnFailed

	// EventSkillDespawnRequest requests removal of a whole skill group
	// Trigger: Gameplay | Consumer: SkillCastSystem | Payload: *SkillDespawnPayload
	EventSkillDespawnRequest

	// EventSkillDespawned reports a removed skill group
	// Trigger: SkillCastSystem | Consumer: Animation, audio | Payload: *SkillDespawnPayload
	EventSkillDespawned

	// === Geometry ===

	// EventGroundTargetPlaced reports the one-shot placement of a stationary skill
	// Trigger: GroundTargetSystem | Consumer: Rendering | Payload: *GroundTargetPlacedPayload
	EventGroundTargetPlaced

	// === Projectile ===

	// EventProjectileExpired reports a projectile that travelled its full range
	// Trigger: ProjectileSystem | Consumer: Audio | Payload: *ProjectileEndPayload
	EventProjectileExpired

	// EventProjectileBlocked reports a projectile stopped by a blocker category
	// Trigger: ProjectileSystem | Consumer: Audio, effects | Payload: *ProjectileEndPayload
	EventProjectileBlocked

	// === Character Motion ===

	// EventCharacterMotionCompleted reports a finished motion command
	// Trigger: CharacterMotionSystem | Consumer: Animation, AI | Payload: *MotionCompletedPayload
	EventCharacterMotionCompleted
)

var eventNames = map[EventType]string{
	EventSkillCastRequest:         "SkillCastRequest",
	EventSkillSpawned:             "SkillSpawned",
	EventSkillSpawnFailed:         "SkillSpawnFailed",
	EventSkillDespawnRequest:      "SkillDespawnRequest",
	EventSkillDespawned:           "SkillDespawned",
	EventGroundTargetPlaced:       "GroundTargetPlaced",
	EventProjectileExpired:        "ProjectileExpired",
	EventProjectileBlocked:        "ProjectileBlocked",
	EventCharacterMotionCompleted: "CharacterMotionCompleted",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a queued event stamped with the frame it was pushed in
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

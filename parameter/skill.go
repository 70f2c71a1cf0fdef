package parameter

// Beam
const (
	// BeamMinLength is the floor for ActiveBeam length; a beam is never zero length
	BeamMinLength = 0.001

	// BeamDefaultRange is used by catalog beams that omit a range
	BeamDefaultRange = 20.0
)

// Ground targeting
const (
	// GroundHeight is the Y of the ground plane used for cursor picking
	GroundHeight = 0.0
)

// Collider validation
const (
	// MinColliderExtent rejects shapes whose bounding extent collapses to a point or plane
	MinColliderExtent = 1e-6
)

package system

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/core"
	"github.com/lixenwraith/skillcast/engine"
	"github.com/lixenwraith/skillcast/event"
)

const tick = 16 * time.Millisecond

// spawnGroundTarget creates a bare unplaced stationary root
func spawnGroundTarget(w *engine.World, caster core.Entity, target component.SkillTarget, maxRange float64) core.Entity {
	return engine.With(engine.With(w.NewEntity(),
		w.Components.Transform, component.TransformComponent{Transform: core.IdentityTransform()}),
		w.Components.GroundTarget, component.GroundTargetComponent{
			Caster:       caster,
			Target:       target,
			MaxCastRange: maxRange,
		}).Build()
}

func TestGroundTargetClampScenario(t *testing.T) {
	w := engine.NewTestWorld()
	s := NewGroundTargetSystem(w)
	rec := newEventRecorder(event.EventGroundTargetPlaced)
	w.AddEventHandler(rec)

	caster := engine.SpawnTestCaster(w, core.IdentityTransform())
	root := spawnGroundTarget(w, caster, component.TargetGround{Point: mgl64.Vec3{6, 0, 8}}, 5)

	s.Update(tick)

	pose, _ := w.TransformOf(root)
	assertVecNear(t, "placement", pose.Translation, mgl64.Vec3{3, 0, 4})

	gt, _ := w.Components.GroundTarget.GetComponent(root)
	if gt.Phase != component.PlacementPlaced {
		t.Errorf("Expected placed, got %v", gt.Phase)
	}

	w.DispatchEvents()
	if rec.count(event.EventGroundTargetPlaced) != 1 {
		t.Fatalf("Expected one placement event, got %d", len(rec.events))
	}
	if p := rec.events[0].Payload.(*event.GroundTargetPlacedPayload); !p.Clamped || p.Root != root {
		t.Errorf("Unexpected payload %+v", p)
	}
}

func TestGroundTargetClampProperty(t *testing.T) {
	casterPos := mgl64.Vec3{1, 0, -2}
	targets := []mgl64.Vec3{
		{20, 0, 0},
		{-7, 3, 11},
		{1, 0, -40},
		{0.5, -9, 4},
	}
	const maxRange = 4.0

	for _, target := range targets {
		w := engine.NewTestWorld()
		s := NewGroundTargetSystem(w)
		caster := engine.SpawnTestCaster(w, core.TransformAt(casterPos))
		root := spawnGroundTarget(w, caster, component.TargetGround{Point: target}, maxRange)

		s.Update(tick)

		pose, _ := w.TransformOf(root)
		got := pose.Translation
		if d := got.Sub(casterPos).Len(); math.Abs(d-maxRange) > tolerance {
			t.Errorf("Target %v: expected distance %v, got %v", target, maxRange, d)
		}
		// On the caster->target segment: same direction, shorter than the full offset
		toTarget := target.Sub(casterPos)
		toGot := got.Sub(casterPos)
		if toGot.Cross(toTarget).Len() > 1e-6 || toGot.Dot(toTarget) <= 0 || toGot.Len() > toTarget.Len() {
			t.Errorf("Target %v: placement %v not on segment", target, got)
		}
	}
}

func TestGroundTargetWithinRangeUnchanged(t *testing.T) {
	w := engine.NewTestWorld()
	s := NewGroundTargetSystem(w)
	caster := engine.SpawnTestCaster(w, core.IdentityTransform())
	root := spawnGroundTarget(w, caster, component.TargetGround{Point: mgl64.Vec3{1, 0, 2}}, 5)

	s.Update(tick)

	pose, _ := w.TransformOf(root)
	if pose.Translation != (mgl64.Vec3{1, 0, 2}) {
		t.Errorf("Expected raw point, got %v", pose.Translation)
	}
}

func TestGroundTargetFacingSyncedOnce(t *testing.T) {
	w := engine.NewTestWorld()
	s := NewGroundTargetSystem(w)

	casterPose := core.IdentityTransform()
	casterPose.Rotation = mgl64.QuatRotate(math.Pi/2, core.AxisUp)
	caster := engine.SpawnTestCaster(w, casterPose)

	// Target lies along +X, caster faces -X; facing follows the caster, not the target direction
	root := spawnGroundTarget(w, caster, component.TargetGround{Point: mgl64.Vec3{3, 0, 0}}, 10)
	s.Update(tick)

	pose, _ := w.TransformOf(root)
	assertVecNear(t, "facing", pose.Forward(), casterPose.Forward())
	placed := pose

	// Placed is terminal: moving and turning the caster changes nothing
	turned := core.TransformAt(mgl64.Vec3{50, 0, 0})
	turned.Rotation = mgl64.QuatRotate(-math.Pi/2, core.AxisUp)
	w.SetTransform(caster, turned)
	s.Update(tick)

	pose, _ = w.TransformOf(root)
	if pose != placed {
		t.Errorf("Expected placement to be written once, got %+v", pose)
	}
}

func TestGroundTargetEntityRetriesUntilResolved(t *testing.T) {
	w := engine.NewTestWorld()
	s := NewGroundTargetSystem(w)
	caster := engine.SpawnTestCaster(w, core.IdentityTransform())

	id := core.NewPersistentID()
	root := spawnGroundTarget(w, caster, component.TargetEntity{ID: id}, 100)

	s.Update(tick)
	if gt, _ := w.Components.GroundTarget.GetComponent(root); gt.Phase != component.PlacementUnplaced {
		t.Fatal("Expected unresolved target to stay unplaced")
	}

	locked := w.CreateEntity()
	w.SetTransform(locked, core.TransformAt(mgl64.Vec3{0, 0, -9}))
	w.AssignIdentity(locked, id)

	s.Update(tick)
	pose, _ := w.TransformOf(root)
	assertVecNear(t, "locked target", pose.Translation, mgl64.Vec3{0, 0, -9})
}

func TestGroundTargetCasterGoneRetries(t *testing.T) {
	w := engine.NewTestWorld()
	s := NewGroundTargetSystem(w)
	root := spawnGroundTarget(w, core.Entity(77), component.TargetGround{Point: mgl64.Vec3{9, 0, 0}}, 1)

	s.Update(tick)

	gt, _ := w.Components.GroundTarget.GetComponent(root)
	if gt.Phase != component.PlacementUnplaced {
		t.Error("Expected missing caster to defer placement")
	}
}

func TestGroundTargetCasterWithoutTransformFailsOpen(t *testing.T) {
	w := engine.NewTestWorld()
	s := NewGroundTargetSystem(w)
	caster := w.CreateEntity()
	root := spawnGroundTarget(w, caster, component.TargetGround{Point: mgl64.Vec3{9, 0, 0}}, 1)

	s.Update(tick)

	pose, _ := w.TransformOf(root)
	if pose.Translation != (mgl64.Vec3{9, 0, 0}) {
		t.Errorf("Expected unclamped raw point, got %v", pose.Translation)
	}
	if gt, _ := w.Components.GroundTarget.GetComponent(root); gt.Phase != component.PlacementPlaced {
		t.Error("Expected placement despite missing caster pose")
	}
}

func TestGroundTargetPlacedBeforeSameTickReaders(t *testing.T) {
	w := engine.NewTestWorld()
	cast := RegisterAll(w)
	caster := engine.SpawnTestCaster(w, core.IdentityTransform())

	skill, err := cast.Cast(catalogRequest(t, "gravity_well", caster, component.TargetGround{Point: mgl64.Vec3{0, 0, -30}}))
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}

	w.Update(tick)

	// Group sync runs after placement in the same tick
	for _, e := range skill.Members() {
		pose, _ := w.TransformOf(e)
		assertVecNear(t, "member placement", pose.Translation, mgl64.Vec3{0, 0, -12})
	}
}

func TestGroundPick(t *testing.T) {
	target, ok := GroundPick(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0, -1, 1}, 0)
	if !ok {
		t.Fatal("Expected ground hit")
	}
	assertVecNear(t, "pick", target.Point, mgl64.Vec3{0, 0, 10})

	if _, ok := GroundPick(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{1, 0, 0}, 0); ok {
		t.Error("Expected parallel ray to miss")
	}
	if _, ok := GroundPick(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0, 1, 0}, 0); ok {
		t.Error("Expected upward ray to miss")
	}
}

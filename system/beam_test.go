package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/core"
	"github.com/lixenwraith/skillcast/engine"
	"github.com/lixenwraith/skillcast/parameter"
	"github.com/lixenwraith/skillcast/physics"
)

// spawnBeam creates a beam-shaped skill group for a caster
func spawnBeam(t *testing.T, w *engine.World, caster core.Entity, rng float64) component.SkillEntities {
	t.Helper()
	s := NewSkillCastSystem(w)
	skill, err := s.Cast(component.CastRequest{
		Name:       "test_beam",
		Motion:     component.MotionHeldBy{Caster: caster, Spawner: "hand_r"},
		Contact:    component.ShapeDesc{Shape: component.ShapeBeam{Range: rng, Radius: 0.1}},
		Projection: component.ShapeDesc{Shape: component.ShapeBeam{Range: rng, Radius: 0.5}},
	})
	if err != nil {
		t.Fatalf("Beam cast failed: %v", err)
	}
	return skill
}

func TestBeamLengthTracksTimeOfImpact(t *testing.T) {
	tests := []struct {
		name string
		toi  float64
		ok   bool
		want float64
	}{
		{"hit beyond epsilon", 3.5, true, 3.5},
		{"zero time of impact", 0, true, parameter.BeamMinLength},
		{"below epsilon", parameter.BeamMinLength / 2, true, parameter.BeamMinLength},
		{"no hit", 0, false, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := engine.NewWorld()
			fake := &fakeRayCaster{hit: physics.RayHit{Entity: 99, TimeOfImpact: tt.toi}, ok: tt.ok}
			w.Resources.RayCaster = fake

			caster := engine.SpawnTestCaster(w, core.IdentityTransform())
			skill := spawnBeam(t, w, caster, 10)
			root := skill.Root.Transient

			NewBeamSystem(w).Update(tick)

			active, ok := w.Components.ActiveBeam.GetComponent(root)
			if !ok {
				t.Fatal("Expected ActiveBeam inserted")
			}
			if active.Length != tt.want {
				t.Errorf("Expected length %v, got %v", tt.want, active.Length)
			}
			if active.Length <= 0 {
				t.Error("Beam length must never be zero")
			}
		})
	}
}

func TestBeamQueryShape(t *testing.T) {
	w := engine.NewWorld()
	fake := &fakeRayCaster{}
	w.Resources.RayCaster = fake

	casterPose := core.IdentityTransform()
	casterPose.Rotation = mgl64.QuatRotate(math.Pi/2, core.AxisUp)
	caster := engine.SpawnTestCaster(w, casterPose)
	skill := spawnBeam(t, w, caster, 12)
	root := skill.Root.Transient
	rootPose, _ := w.TransformOf(root)

	NewBeamSystem(w).Update(tick)

	if fake.calls != 1 {
		t.Fatalf("Expected one ray per beam, got %d", fake.calls)
	}
	assertVecNear(t, "origin", fake.lastOrigin, rootPose.Translation)
	assertVecNear(t, "direction", fake.lastDir, casterPose.Forward())
	if fake.lastMax != 12 || fake.lastSolid {
		t.Errorf("Expected non-solid ray of range 12, got max %v solid %v", fake.lastMax, fake.lastSolid)
	}
	if !fake.lastFilter.ExcludeSensors {
		t.Error("Expected sensors excluded")
	}

	excluded := make(map[core.Entity]bool)
	for _, e := range fake.lastFilter.Exclude {
		excluded[e] = true
	}
	for _, e := range append(skill.Members(), caster) {
		if !excluded[e] {
			t.Errorf("Expected %d excluded from beam ray", e)
		}
	}
}

func TestBeamOverwritesInPlace(t *testing.T) {
	w := engine.NewWorld()
	fake := &fakeRayCaster{hit: physics.RayHit{TimeOfImpact: 4}, ok: true}
	w.Resources.RayCaster = fake
	caster := engine.SpawnTestCaster(w, core.IdentityTransform())
	skill := spawnBeam(t, w, caster, 10)
	s := NewBeamSystem(w)
	before := w.EntityCount()

	s.Update(tick)
	fake.hit.TimeOfImpact = 2
	s.Update(tick)

	active, _ := w.Components.ActiveBeam.GetComponent(skill.Root.Transient)
	if active.Length != 2 {
		t.Errorf("Expected updated length 2, got %v", active.Length)
	}
	if w.Components.ActiveBeam.CountEntities() != 1 || w.EntityCount() != before {
		t.Error("Expected no entity churn across updates")
	}
}

func TestBeamWithoutRayCasterIsNoOp(t *testing.T) {
	w := engine.NewWorld()
	w.Resources.RayCaster = nil
	caster := engine.SpawnTestCaster(w, core.IdentityTransform())
	skill := spawnBeam(t, w, caster, 10)

	NewBeamSystem(w).Update(tick)

	if w.Components.ActiveBeam.HasEntity(skill.Root.Transient) {
		t.Error("Expected no beam update without ray caster")
	}
}

func TestBeamConfiguredEpsilon(t *testing.T) {
	w := engine.NewWorld()
	w.Resources.Config.Beam.MinLength = 0.25
	w.Resources.RayCaster = &fakeRayCaster{ok: true}
	caster := engine.SpawnTestCaster(w, core.IdentityTransform())
	skill := spawnBeam(t, w, caster, 10)

	NewBeamSystem(w).Update(tick)

	if active, _ := w.Components.ActiveBeam.GetComponent(skill.Root.Transient); active.Length != 0.25 {
		t.Errorf("Expected configured epsilon 0.25, got %v", active.Length)
	}
}

func TestBeamAgainstSceneFollowsCaster(t *testing.T) {
	w := engine.NewTestWorld()
	cast := RegisterAll(w)
	caster := engine.SpawnTestCaster(w, core.IdentityTransform())

	skill, err := cast.Cast(catalogRequest(t, "lance", caster, nil))
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	// Mount at (0.5, 1, -1); ball surface at z = -5
	obstacle := engine.SpawnTestObstacle(w, mgl64.Vec3{0.5, 1, -6}, 1, component.CategoryBarrier)

	w.Update(tick)

	active, ok := w.Components.ActiveBeam.GetComponent(skill.Root.Transient)
	if !ok {
		t.Fatal("Expected ActiveBeam")
	}
	if math.Abs(active.Length-4) > 1e-6 || active.Hit != obstacle {
		t.Errorf("Expected length 4 against obstacle, got %+v", active)
	}

	// Caster turns away: the beam runs to full range
	turned := core.IdentityTransform()
	turned.Rotation = mgl64.QuatRotate(math.Pi, core.AxisUp)
	w.SetTransform(caster, turned)
	w.Update(tick)

	active, _ = w.Components.ActiveBeam.GetComponent(skill.Root.Transient)
	if active.Length != 18 || active.Hit != core.NoEntity {
		t.Errorf("Expected full range 18, got %+v", active)
	}
}

func TestBeamLengthFloor(t *testing.T) {
	if got := BeamLength(0, 0.01); got != 0.01 {
		t.Errorf("Expected floor, got %v", got)
	}
	if got := BeamLength(5, 0.01); got != 5 {
		t.Errorf("Expected time of impact, got %v", got)
	}
}

package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/config"
	"github.com/lixenwraith/skillcast/core"
	"github.com/lixenwraith/skillcast/event"
	"github.com/lixenwraith/skillcast/physics"
)

const tolerance = 1e-9

// fakeRayCaster returns a fixed result and records the last query
type fakeRayCaster struct {
	hit   physics.RayHit
	ok    bool
	calls int

	lastOrigin mgl64.Vec3
	lastDir    mgl64.Vec3
	lastMax    float64
	lastSolid  bool
	lastFilter physics.QueryFilter
}

func (f *fakeRayCaster) CastRay(origin, dir mgl64.Vec3, maxDist float64, solid bool, filter physics.QueryFilter) (physics.RayHit, bool) {
	f.calls++
	f.lastOrigin, f.lastDir, f.lastMax, f.lastSolid, f.lastFilter = origin, dir, maxDist, solid, filter
	return f.hit, f.ok
}

// eventRecorder captures routed events of the listed types
type eventRecorder struct {
	types  []event.EventType
	events []event.GameEvent
}

func newEventRecorder(types ...event.EventType) *eventRecorder {
	return &eventRecorder{types: types}
}

func (r *eventRecorder) EventTypes() []event.EventType { return r.types }

func (r *eventRecorder) HandleEvent(ev event.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func sphereDesc(radius float64, blockers component.Category) component.ShapeDesc {
	return component.ShapeDesc{
		Shape:    component.ShapeSphere{Radius: radius},
		Blockers: blockers,
	}
}

func catalogRequest(t *testing.T, name string, caster core.Entity, target component.SkillTarget) component.CastRequest {
	t.Helper()
	cat, err := config.LoadCatalog("")
	if err != nil {
		t.Fatalf("Built-in catalog failed to load: %v", err)
	}
	def, err := cat.Skill(name)
	if err != nil {
		t.Fatalf("Skill %q missing: %v", name, err)
	}
	req, err := def.Request(caster, target)
	if err != nil {
		t.Fatalf("Request for %q failed: %v", name, err)
	}
	return req
}

func assertVecNear(t *testing.T, label string, got, want mgl64.Vec3) {
	t.Helper()
	if !got.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("%s: expected %v, got %v", label, want, got)
	}
}

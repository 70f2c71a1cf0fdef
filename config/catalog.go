package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/core"
	"github.com/lixenwraith/skillcast/parameter"
)

//go:embed skills.yaml
var builtinCatalog []byte

var (
	ErrUnknownMotion   = errors.New("unknown motion")
	ErrUnknownShape    = errors.New("unknown shape")
	ErrUnknownBlocker  = errors.New("unknown blocker category")
	ErrUnknownEffect   = errors.New("unknown effect")
	ErrDuplicateSkill  = errors.New("duplicate skill name")
	ErrSkillNotFound   = errors.New("skill not found")
	ErrMissingSkillKey = errors.New("skill name is empty")
)

// Catalog is the data-driven set of castable skills
type Catalog struct {
	Skills []SkillDef `yaml:"skills"`

	byName map[string]int
}

// SkillDef describes one castable skill
type SkillDef struct {
	Name         string      `yaml:"name"`
	Motion       string      `yaml:"motion"` // held | stationary | projectile
	Spawner      string      `yaml:"spawner"`
	Speed        float64     `yaml:"speed"`
	Range        float64     `yaml:"range"`
	MaxCastRange float64     `yaml:"max_cast_range"`
	Contact      ShapeDef    `yaml:"contact"`
	Projection   ShapeDef    `yaml:"projection"`
	Effects      []EffectDef `yaml:"effects"`
}

// ShapeDef describes a contact or projection shape
type ShapeDef struct {
	Shape    string     `yaml:"shape"` // sphere | custom | beam
	Radius   float64    `yaml:"radius"`
	Hollow   bool       `yaml:"hollow"`
	Model    string     `yaml:"model"`
	Scale    [3]float64 `yaml:"scale"`
	Collider string     `yaml:"collider"` // ball | cuboid
	Range    float64    `yaml:"range"`
	Blockers []string   `yaml:"blockers"`
}

// EffectDef attaches one effect to a member of the group
type EffectDef struct {
	On         string     `yaml:"on"`   // root | contact | projection
	Kind       string     `yaml:"kind"` // damage | force | gravity
	Amount     float64    `yaml:"amount"`
	DamageKind string     `yaml:"damage_kind"`
	Impulse    [3]float64 `yaml:"impulse"`
	Radial     float64    `yaml:"radial"`
	Strength   float64    `yaml:"strength"`
	Radius     float64    `yaml:"radius"`
}

var blockerNames = map[string]component.Category{
	"terrain": component.CategoryTerrain,
	"actor":   component.CategoryActor,
	"barrier": component.CategoryBarrier,
	"skill":   component.CategorySkill,
	"all":     component.CategoryAll,
}

// LoadCatalog reads a catalog file, empty path returns the built-in catalog
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return ParseCatalog(builtinCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates catalog YAML
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c.byName = make(map[string]int, len(c.Skills))
	for i, def := range c.Skills {
		if def.Name == "" {
			return nil, fmt.Errorf("skill %d: %w", i, ErrMissingSkillKey)
		}
		if _, dup := c.byName[def.Name]; dup {
			return nil, fmt.Errorf("%s: %w", def.Name, ErrDuplicateSkill)
		}
		// Validate by building a request against placeholder handles
		if _, err := def.Request(core.NoEntity, component.TargetGround{}); err != nil {
			return nil, fmt.Errorf("%s: %w", def.Name, err)
		}
		c.byName[def.Name] = i
	}
	return &c, nil
}

// Skill looks a definition up by name
func (c *Catalog) Skill(name string) (SkillDef, error) {
	i, ok := c.byName[name]
	if !ok {
		return SkillDef{}, fmt.Errorf("%s: %w", name, ErrSkillNotFound)
	}
	return c.Skills[i], nil
}

// Names returns skill names in sorted order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Skills))
	for _, def := range c.Skills {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}

// Request turns a definition into a cast request for a caster and target
// target is only used by stationary skills
func (d SkillDef) Request(caster core.Entity, target component.SkillTarget) (component.CastRequest, error) {
	req := component.CastRequest{Name: d.Name}

	switch d.Motion {
	case "held":
		req.Motion = component.MotionHeldBy{Caster: caster, Spawner: d.Spawner}
	case "stationary":
		req.Motion = component.MotionStationary{Caster: caster, MaxCastRange: d.MaxCastRange, Target: target}
	case "projectile":
		req.Motion = component.MotionProjectile{Caster: caster, Spawner: d.Spawner, Speed: d.Speed, Range: d.Range}
	default:
		return component.CastRequest{}, fmt.Errorf("%q: %w", d.Motion, ErrUnknownMotion)
	}

	var err error
	if req.Contact, err = d.Contact.Desc(); err != nil {
		return component.CastRequest{}, fmt.Errorf("contact: %w", err)
	}
	if req.Projection, err = d.Projection.Desc(); err != nil {
		return component.CastRequest{}, fmt.Errorf("projection: %w", err)
	}

	for _, ed := range d.Effects {
		eff, err := ed.Effect()
		if err != nil {
			return component.CastRequest{}, err
		}
		switch ed.On {
		case "root":
			req.Effects.Root = append(req.Effects.Root, eff)
		case "contact":
			req.Effects.Contact = append(req.Effects.Contact, eff)
		case "projection", "":
			req.Effects.Projection = append(req.Effects.Projection, eff)
		default:
			return component.CastRequest{}, fmt.Errorf("effect target %q: %w", ed.On, ErrUnknownEffect)
		}
	}
	return req, nil
}

// SetDefaultBeamRange fills every beam shape that omits a range
func (c *Catalog) SetDefaultBeamRange(rng float64) {
	if rng <= 0 {
		return
	}
	for i := range c.Skills {
		for _, sd := range []*ShapeDef{&c.Skills[i].Contact, &c.Skills[i].Projection} {
			if sd.Shape == "beam" && sd.Range == 0 {
				sd.Range = rng
			}
		}
	}
}

// Desc converts a shape definition into a shape description
func (s ShapeDef) Desc() (component.ShapeDesc, error) {
	var desc component.ShapeDesc

	switch s.Shape {
	case "sphere":
		desc.Shape = component.ShapeSphere{Radius: s.Radius, Hollow: s.Hollow}
	case "custom":
		kind := component.ColliderBall
		switch s.Collider {
		case "", "ball":
		case "cuboid":
			kind = component.ColliderCuboid
		default:
			return desc, fmt.Errorf("collider %q: %w", s.Collider, ErrUnknownShape)
		}
		scale := mgl64.Vec3(s.Scale)
		if scale == (mgl64.Vec3{}) {
			scale = mgl64.Vec3{1, 1, 1}
		}
		desc.Shape = component.ShapeCustom{Model: s.Model, Scale: scale, Collider: kind}
	case "beam":
		rng := s.Range
		if rng == 0 {
			rng = parameter.BeamDefaultRange
		}
		desc.Shape = component.ShapeBeam{Range: rng, Radius: s.Radius}
	default:
		return desc, fmt.Errorf("%q: %w", s.Shape, ErrUnknownShape)
	}

	for _, name := range s.Blockers {
		cat, ok := blockerNames[name]
		if !ok {
			return desc, fmt.Errorf("%q: %w", name, ErrUnknownBlocker)
		}
		desc.Blockers |= cat
	}
	return desc, nil
}

// Effect converts an effect definition into an effect value
func (e EffectDef) Effect() (component.Effect, error) {
	switch e.Kind {
	case "damage":
		return component.DamageComponent{Amount: e.Amount, Kind: e.DamageKind}, nil
	case "force":
		return component.ForceComponent{Impulse: mgl64.Vec3(e.Impulse), Radial: e.Radial}, nil
	case "gravity":
		return component.GravityComponent{Strength: e.Strength, Radius: e.Radius}, nil
	default:
		return nil, fmt.Errorf("%q: %w", e.Kind, ErrUnknownEffect)
	}
}

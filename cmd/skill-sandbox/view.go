package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/core"
)

var (
	styleDefault  = tcell.StyleDefault
	styleCaster   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleActor    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleSkill    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleArea     = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleBeam     = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleCursor   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// view projects the XZ plane onto the terminal, caster-centered, -Z up the screen
type view struct {
	screen tcell.Screen
	cell   float64 // World units per column; rows are twice as tall
	center mgl64.Vec3
}

func (v *view) project(p mgl64.Vec3) (int, int, bool) {
	w, h := v.screen.Size()
	x := int(math.Round((p.X()-v.center.X())/v.cell)) + w/2
	y := int(math.Round((p.Z()-v.center.Z())/(v.cell*2))) + (h-2)/2
	return x, y, x >= 0 && x < w && y >= 0 && y < h-2
}

func (v *view) plot(p mgl64.Vec3, r rune, style tcell.Style) {
	if x, y, ok := v.project(p); ok {
		v.screen.SetContent(x, y, r, nil, style)
	}
}

// ring draws a circle outline of radius around p
func (v *view) ring(p mgl64.Vec3, radius float64, r rune, style tcell.Style) {
	steps := int(math.Max(12, radius/v.cell*6))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		v.plot(p.Add(mgl64.Vec3{math.Cos(a) * radius, 0, math.Sin(a) * radius}), r, style)
	}
}

// segment draws a line from a along dir for length
func (v *view) segment(a, dir mgl64.Vec3, length float64, r rune, style tcell.Style) {
	for d := 0.0; d <= length; d += v.cell / 2 {
		v.plot(a.Add(dir.Mul(d)), r, style)
	}
}

func (v *view) text(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *view) draw(s *scene) {
	v.screen.Clear()
	w := s.world

	if pose, ok := w.TransformOf(s.caster); ok {
		v.center = pose.Translation
	}

	// Static colliders
	for _, e := range w.ColliderEntities() {
		if w.Components.SkillMember.HasEntity(e) {
			continue
		}
		col, _ := w.ColliderOf(e)
		pose, _ := w.TransformOf(e)
		style := styleObstacle
		if col.Category.Intersects(component.CategoryActor) {
			style = styleActor
		}
		v.ring(pose.Translation, col.Radius, '#', style)
		v.plot(pose.Translation, 'O', style)
	}

	// Skill groups
	for _, root := range w.Components.SkillGroup.GetAllEntities() {
		group, _ := w.Components.SkillGroup.GetComponent(root)
		pose, _ := w.TransformOf(root)

		if proj, ok := w.ColliderOf(group.Entities.Projection); ok && proj.Shape == component.ColliderShapeBall {
			v.ring(pose.Translation, proj.Radius, '.', styleArea)
		}
		if beam, ok := w.Components.ActiveBeam.GetComponent(root); ok {
			v.segment(pose.Translation, pose.Forward(), beam.Length, '=', styleBeam)
			continue
		}
		glyph := '*'
		if gt, ok := w.Components.GroundTarget.GetComponent(root); ok {
			glyph = 'G'
			if gt.Phase == component.PlacementUnplaced {
				glyph = 'g'
			}
		}
		v.plot(pose.Translation, glyph, styleSkill)
	}

	// Caster with facing marker
	if pose, ok := w.TransformOf(s.caster); ok {
		v.plot(pose.Translation.Add(pose.Forward().Mul(v.cell*2)), facingRune(pose), styleCaster)
		v.plot(pose.Translation, '@', styleCaster)
	}
	v.plot(s.cursor, '+', styleCursor)

	_, h := v.screen.Size()
	aim := "cursor"
	if s.lockOn {
		aim = "lock"
	}
	help := "wasd move  qe turn  arrows aim  m walk-to  t aim:" + aim + "  x clear  esc quit"
	for i, name := range s.skills {
		help = fmt.Sprintf("%s  %d:%s", help, i+1, name)
	}
	v.text(0, h-2, help, styleDefault)
	v.text(0, h-1, s.status, styleStatus)

	v.screen.Show()
}

// facingRune picks an arrow for the caster's forward axis on screen
func facingRune(pose core.Transform) rune {
	f := pose.Forward()
	if math.Abs(f.X()) > math.Abs(f.Z()) {
		if f.X() > 0 {
			return '>'
		}
		return '<'
	}
	if f.Z() > 0 {
		return 'v'
	}
	return '^'
}

// Package radar projects the three personality stats onto a triangular
// radar chart
package radar

import (
	"fmt"
	"math"
	"strings"
)

// Axis angles in degrees, clockwise from straight up
const (
	AngleLogic   = 0.0
	AngleEmotion = 120.0
	AngleAction  = 240.0
)

// Point is a chart coordinate. Y grows downward, as on screen.
type Point struct {
	X float64
	Y float64
}

// Triangle holds one point per axis in logic, emotion, action order
type Triangle [3]Point

// Stats are the values to plot
type Stats struct {
	Logic   float64
	Emotion float64
	Action  float64
}

// Chart fixes the geometry of a radar chart
type Chart struct {
	Center  Point
	Radius  float64
	Ceiling float64
}

// Default is the 300x300 chart used by the personality view
func Default() Chart {
	return Chart{Center: Point{X: 150, Y: 150}, Radius: 100, Ceiling: 100}
}

// Project places value on the axis at angle. Values are clamped to
// [0, Ceiling].
func (c Chart) Project(value, angle float64) Point {
	r := 0.0
	if c.Ceiling > 0 {
		r = clamp(value, 0, c.Ceiling) / c.Ceiling * c.Radius
	}
	rad := (angle - 90) * math.Pi / 180
	return Point{
		X: c.Center.X + r*math.Cos(rad),
		Y: c.Center.Y + r*math.Sin(rad),
	}
}

// Data returns the triangle for stats
func (c Chart) Data(s Stats) Triangle {
	return Triangle{
		c.Project(s.Logic, AngleLogic),
		c.Project(s.Emotion, AngleEmotion),
		c.Project(s.Action, AngleAction),
	}
}

// Reference returns the scale triangle at fraction of the full radius
func (c Chart) Reference(fraction float64) Triangle {
	v := c.Ceiling * fraction
	return c.Data(Stats{Logic: v, Emotion: v, Action: v})
}

// References returns the 100% and 50% scale triangles
func (c Chart) References() []Triangle {
	return []Triangle{c.Reference(1), c.Reference(0.5)}
}

// Points renders the triangle as an SVG points attribute: "x,y x,y x,y"
func (t Triangle) Points() string {
	parts := make([]string, len(t))
	for i, p := range t {
		parts[i] = fmt.Sprintf("%s,%s", trim(p.X), trim(p.Y))
	}
	return strings.Join(parts, " ")
}

func trim(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

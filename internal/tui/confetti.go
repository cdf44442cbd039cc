package tui

import (
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FrameInterval is the confetti frame rate
const FrameInterval = 60 * time.Millisecond

const (
	particlesPerBurst = 60
	gravity           = 0.08
)

var glyphs = []rune{'*', '•', '+', '✦', '·'}

// FrameMsg advances running confetti by one frame
type FrameMsg struct{}

type particle struct {
	x, y   float64
	vx, vy float64
	color  lipgloss.Color
	glyph  rune
}

// Confetti is a falling particle field sized to the terminal
type Confetti struct {
	Width  int
	Height int

	rng       *rand.Rand
	particles []particle
	frames    int
	ticking   bool
}

// NewConfetti creates an idle field. The seed fixes the particle layout.
func NewConfetti(width, height int, seed uint64) *Confetti {
	return &Confetti{
		Width:  width,
		Height: height,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Start launches a burst from the top center and returns the frame command
// when the field was idle
func (c *Confetti) Start(b Burst) tea.Cmd {
	if len(b.Colors) == 0 || c.Width <= 0 || c.Height <= 0 {
		return nil
	}

	for i := 0; i < particlesPerBurst; i++ {
		c.particles = append(c.particles, particle{
			x:     float64(c.Width) / 2,
			y:     0,
			vx:    (c.rng.Float64() - 0.5) * 3,
			vy:    c.rng.Float64() * 0.8,
			color: lipgloss.Color(b.Colors[c.rng.IntN(len(b.Colors))]),
			glyph: glyphs[c.rng.IntN(len(glyphs))],
		})
	}
	if frames := int(b.Duration / FrameInterval); frames > c.frames {
		c.frames = frames
	}

	if c.ticking {
		return nil
	}
	c.ticking = true
	return frame()
}

// Update steps the field on FrameMsg
func (c *Confetti) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(FrameMsg); !ok || !c.ticking {
		return nil
	}

	c.frames--
	if c.frames <= 0 {
		c.particles = nil
		c.ticking = false
		return nil
	}

	live := c.particles[:0]
	for _, p := range c.particles {
		p.x += p.vx
		p.y += p.vy
		p.vy += gravity
		if p.y < float64(c.Height) && p.x >= 0 && p.x < float64(c.Width) {
			live = append(live, p)
		}
	}
	c.particles = live
	return frame()
}

// Active reports whether a burst is playing
func (c *Confetti) Active() bool {
	return c.ticking
}

// View draws the field, or nothing when idle
func (c *Confetti) View() string {
	if !c.ticking || len(c.particles) == 0 {
		return ""
	}

	grid := make([][]string, c.Height)
	for y := range grid {
		grid[y] = make([]string, c.Width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	for _, p := range c.particles {
		x, y := int(p.x), int(p.y)
		if y < 0 || y >= c.Height || x < 0 || x >= c.Width {
			continue
		}
		grid[y][x] = lipgloss.NewStyle().Foreground(p.color).Render(string(p.glyph))
	}

	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = strings.TrimRight(strings.Join(row, ""), " ")
	}
	return strings.Join(lines, "\n")
}

func frame() tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg { return FrameMsg{} })
}

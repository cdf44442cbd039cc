package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/jeondoksi/jeondoksi-cli/internal/tui"
)

const barWidth = 30

// bar renders a percentage in [0, 100] as a progress bar
func bar(percent float64) string {
	p := progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth), progress.WithoutPercentage())
	return p.ViewAs(percent / 100)
}

func heading(title string) string {
	return tui.TitleStyle.Render(title)
}

func muted(s string) string {
	return tui.MutedStyle.Render(s)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

func tags(ts []string) string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = fmt.Sprintf("#%s", t)
	}
	return strings.Join(out, " ")
}

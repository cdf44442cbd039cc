package client

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/home"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/personality"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/progress"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/radar"
)

var (
	refreshRecommendations bool
	svgPath                string
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the dashboard",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runHome)
	},
}

var personalityCmd = &cobra.Command{
	Use:   "personality",
	Short: "Show your reading personality and radar chart",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runPersonality)
	},
}

func init() {
	homeCmd.Flags().BoolVar(&refreshRecommendations, "refresh", false, "Fetch new recommendations only")
	personalityCmd.Flags().StringVar(&svgPath, "svg", "", "Also write the radar chart as an SVG file")
}

func runHome(ctx context.Context, a *app) error {
	svc, err := home.NewOrchestrator(&home.Config{Client: a.api, Session: a.session, Logger: a.logger})
	if err != nil {
		return err
	}

	if refreshRecommendations {
		out, err := svc.RefreshRecommendations(ctx)
		if err != nil {
			return err
		}
		printRecommendations(a, out.Recommendations)
		return nil
	}

	out, err := svc.Load(ctx)
	if err != nil {
		return err
	}

	u := out.User
	a.printf("%s  %s\n\n", heading(fmt.Sprintf("%s 님의 서재", u.Nickname)), muted(fmt.Sprintf("%d P", u.Point)))

	if c := out.MainCharacter; c != nil {
		a.printf("대표 캐릭터  %s Lv.%d\n", c.Name, c.Level)
		a.printf("  %s %d / %d XP\n", bar(progress.XP(c)), c.CurrentXP, c.RequiredXP)
	} else {
		a.printf("대표 캐릭터  %s\n", muted("없음 (상점에서 소환해 보세요)"))
	}

	a.printf("\n%s %s\n", out.Personality.Icon, out.Personality.Title)
	for _, s := range out.Stats {
		a.printf("  %s %s %3d\n", s.Label, bar(s.Percent), s.Value)
	}

	a.printf("\n")
	printRecommendations(a, out.Recommendations)
	return nil
}

func printRecommendations(a *app, books []*entities.Book) {
	a.printf("%s\n", heading("추천 도서"))
	if len(books) == 0 {
		a.printf("  %s\n", muted("추천 도서가 없습니다."))
		return
	}
	for _, b := range books {
		a.printf("  • %s %s %s\n", b.Title, muted(b.Author), muted("["+b.ISBN+"]"))
	}
}

func runPersonality(ctx context.Context, a *app) error {
	svc, err := a.authService()
	if err != nil {
		return err
	}

	out, err := svc.Me(ctx)
	if err != nil {
		return err
	}

	u := out.User
	t := personality.ForUser(u)
	a.printf("%s\n", heading(fmt.Sprintf("%s %s", t.Icon, t.Title)))
	a.printf("%s\n", t.Description)
	if len(t.Tags) > 0 {
		a.printf("%s\n", muted(tags(t.Tags)))
	}

	a.printf("\n")
	for _, s := range []struct {
		label string
		value int
	}{
		{"논리", u.Stats.Logic},
		{"감성", u.Stats.Emotion},
		{"실천", u.Stats.Action},
	} {
		a.printf("  %s %s %3d\n", s.label, bar(progress.Stat(s.value)), s.value)
	}

	chart := radar.Default()
	data := chart.Data(radar.Stats{
		Logic:   float64(u.Stats.Logic),
		Emotion: float64(u.Stats.Emotion),
		Action:  float64(u.Stats.Action),
	})
	a.printf("\n%s %s\n", muted("radar"), data.Points())

	if svgPath == "" {
		return nil
	}
	if err := os.WriteFile(svgPath, []byte(radarSVG(chart, data)), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", svgPath)
	}
	a.success("레이더 차트 저장", svgPath)
	return nil
}

// radarSVG draws the reference triangles, the axes and the data polygon
func radarSVG(chart radar.Chart, data radar.Triangle) string {
	var b strings.Builder
	size := chart.Center.X * 2
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n", size, size, size, size)
	for _, ref := range chart.References() {
		fmt.Fprintf(&b, `  <polygon points="%s" fill="none" stroke="#dddddd"/>`+"\n", ref.Points())
	}
	outer := chart.Reference(1)
	for _, p := range outer {
		fmt.Fprintf(&b, `  <line x1="%g" y1="%g" x2="%.2f" y2="%.2f" stroke="#dddddd"/>`+"\n", chart.Center.X, chart.Center.Y, p.X, p.Y)
	}
	fmt.Fprintf(&b, `  <polygon points="%s" fill="rgba(108,92,231,0.4)" stroke="#6c5ce7" stroke-width="2"/>`+"\n", data.Points())
	labels := []string{"논리", "감성", "실천"}
	for i, p := range outer {
		fmt.Fprintf(&b, `  <text x="%.2f" y="%.2f" text-anchor="middle" font-size="12">%s</text>`+"\n", p.X, p.Y, labels[i])
	}
	b.WriteString("</svg>\n")
	return b.String()
}

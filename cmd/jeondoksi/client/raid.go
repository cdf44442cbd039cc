package client

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/guild"
	"github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/raid"
	"github.com/jeondoksi/jeondoksi-cli/internal/pkg/clock"
	"github.com/jeondoksi/jeondoksi-cli/internal/tui"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/hpdelta"
	vsprogress "github.com/jeondoksi/jeondoksi-cli/internal/viewstate/progress"
)

var pollInterval = tui.DefaultPollInterval

var raidCmd = &cobra.Command{
	Use:   "raid",
	Short: "Fight your guild's boss",
}

var raidStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current boss once",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, func(ctx context.Context, a *app) error {
			return runRaidStatus(ctx, a, 0)
		})
	},
}

var raidWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the current boss live",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, func(ctx context.Context, a *app) error {
			return runRaidWatch(ctx, a, 0)
		})
	},
}

var raidStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new raid for your guild (leader only)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runRaidStart)
	},
}

var bossCmd = &cobra.Command{
	Use:   "boss",
	Short: "Look up a boss by id",
}

var bossShowCmd = &cobra.Command{
	Use:   "show BOSS_ID",
	Short: "Follow a boss by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, a *app) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return errors.InvalidArgumentf("invalid boss id %q", args[0])
			}
			if a.cfg.NoAnimation {
				return runRaidStatus(ctx, a, id)
			}
			return runRaidWatch(ctx, a, id)
		})
	},
}

func init() {
	raidWatchCmd.Flags().DurationVar(&pollInterval, "interval", tui.DefaultPollInterval, "Refresh interval")
	bossShowCmd.Flags().DurationVar(&pollInterval, "interval", tui.DefaultPollInterval, "Refresh interval")
	raidCmd.AddCommand(raidStatusCmd, raidWatchCmd, raidStartCmd)
	bossCmd.AddCommand(bossShowCmd)
}

func (a *app) raidService(observer raid.Observer) (raid.Service, error) {
	return raid.NewOrchestrator(&raid.Config{Client: a.api, Observer: observer, Logger: a.logger})
}

// runRaidStatus prints the boss and the damage dealt since the last visit.
// A zero bossID follows the reader's guild.
func runRaidStatus(ctx context.Context, a *app, bossID int64) error {
	tracker, err := hpdelta.New(&hpdelta.Config{Repo: a.bossHP, Scheduler: &clock.Real{}, Logger: a.logger})
	if err != nil {
		return err
	}
	defer tracker.Close()

	svc, err := a.raidService(tracker)
	if err != nil {
		return err
	}

	var boss *entities.Boss
	var obs *hpdelta.Observation
	if bossID > 0 {
		out, err := svc.Boss(ctx, &raid.BossInput{BossID: bossID})
		if err != nil {
			return a.fail("보스 레이드", err, raid.MsgLoadFailed)
		}
		boss, obs = out.Boss, out.Observation
	} else {
		out, err := svc.Load(ctx)
		if err != nil {
			return a.fail("보스 레이드", err, raid.MsgLoadFailed)
		}
		if out.Boss == nil {
			a.info(raid.MsgNoRaid, "")
			if out.IsLeader {
				a.printf("%s\n", muted("jeondoksi raid start 로 새 레이드를 시작할 수 있습니다."))
			}
			return nil
		}
		boss, obs = out.Boss, out.Observation
	}

	a.printf("%s\n", heading(boss.Name+"  Lv."+strconv.Itoa(boss.Level)))
	if boss.Description != "" {
		a.printf("%s\n", muted(boss.Description))
	}
	a.printf("%s HP %d / %d\n", bar(vsprogress.Fraction(boss.CurrentHP, boss.MaxHP)*100), boss.CurrentHP, boss.MaxHP)

	if obs != nil && obs.HasPrevious && obs.Previous > boss.CurrentHP {
		a.printf("%s\n", tui.DamageStyle.Render("💥 지난 방문 이후 -"+strconv.FormatInt(obs.Previous-boss.CurrentHP, 10)))
	}
	if boss.Defeated() {
		a.printf("%s\n", tui.VictoryStyle.Render(raid.MsgDefeated))
	}
	return nil
}

// runRaidWatch runs the live raid view
func runRaidWatch(ctx context.Context, a *app, bossID int64) error {
	if a.cfg.NoAnimation {
		return runRaidStatus(ctx, a, bossID)
	}

	sched := tui.NewScheduler()
	effects := tui.NewEffects()
	tracker, err := hpdelta.New(&hpdelta.Config{
		Repo:      a.bossHP,
		Scheduler: sched,
		OnBurst:   func(b hpdelta.Burst) { effects.Push(b.Colors, b.Duration) },
		Logger:    a.logger,
	})
	if err != nil {
		return err
	}
	defer tracker.Close()

	svc, err := a.raidService(tracker)
	if err != nil {
		return err
	}

	m, err := tui.NewRaidModel(&tui.RaidConfig{
		Context:      ctx,
		Raid:         svc,
		Tracker:      tracker,
		Effects:      effects,
		Images:       a.api,
		BossID:       bossID,
		PollInterval: pollInterval,
		Logger:       a.logger,
	})
	if err != nil {
		return err
	}

	if err := a.play(ctx, m, sched); err != nil {
		return err
	}
	if m.Err() != nil {
		return a.fail("보스 레이드", m.Err(), raid.MsgLoadFailed)
	}
	return nil
}

func runRaidStart(ctx context.Context, a *app) error {
	svc, err := a.raidService(nil)
	if err != nil {
		return err
	}

	g, err := a.api.GetMyGuild(ctx)
	if err != nil {
		return a.fail(raid.MsgRaidFailed, err, raid.MsgLoadFailed)
	}
	if g == nil {
		return a.fail(raid.MsgRaidFailed, errors.Client(errors.CodeFailedPrecondition, raid.MsgNoGuild), raid.MsgNoGuild)
	}

	ok, err := a.confirm("레이드 시작", guild.MsgConfirmRaid)
	if err != nil || !ok {
		return err
	}

	out, err := svc.StartRaid(ctx, &raid.StartRaidInput{GuildID: g.ID})
	if err != nil {
		return a.fail(raid.MsgRaidFailed, err, raid.MsgRaidFailed)
	}

	msg := ""
	if out.Boss != nil {
		msg = out.Boss.Name + " 등장! jeondoksi raid watch 로 공격하세요."
	}
	a.success(guild.MsgRaidStarted, msg)
	return nil
}

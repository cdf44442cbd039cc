package client

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/shop"
	"github.com/jeondoksi/jeondoksi-cli/internal/tui"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/reveal"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Spend points on characters and items",
}

var shopBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show your points",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runBalance)
	},
}

var shopDrawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Summon a new character",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, func(ctx context.Context, a *app) error {
			return runDraw(ctx, a, false)
		})
	},
}

var shopGachaCmd = &cobra.Command{
	Use:   "gacha",
	Short: "Draw an item",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, func(ctx context.Context, a *app) error {
			return runDraw(ctx, a, true)
		})
	},
}

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Manage drawn items",
}

var inventoryEquipCmd = &cobra.Command{
	Use:   "equip INVENTORY_ID",
	Short: "Equip an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, a *app) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.InvalidArgumentf("invalid inventory id %q", args[0])
			}
			return runEquipItem(ctx, a, id)
		})
	},
}

func init() {
	shopCmd.AddCommand(shopBalanceCmd, shopDrawCmd, shopGachaCmd)
	inventoryCmd.AddCommand(inventoryEquipCmd)
}

func (a *app) shopService() (shop.Service, error) {
	return shop.NewOrchestrator(&shop.Config{Client: a.api, Logger: a.logger})
}

func runBalance(ctx context.Context, a *app) error {
	svc, err := a.shopService()
	if err != nil {
		return err
	}
	out, err := svc.Balance(ctx)
	if err != nil {
		return err
	}
	a.printf("%s %s\n", heading("보유 포인트"), strconv.Itoa(out.Points)+" P")
	a.printf("%s\n", muted("소환 1회 "+strconv.Itoa(shop.DrawCost)+" P"))
	return nil
}

// runDraw confirms the spend, then plays the reveal while the draw runs
func runDraw(ctx context.Context, a *app, item bool) error {
	svc, err := a.shopService()
	if err != nil {
		return err
	}

	balance, err := svc.Balance(ctx)
	if err != nil {
		return err
	}

	title, message := "캐릭터 소환", shop.MsgConfirmDraw
	if item {
		title, message = "아이템 뽑기", shop.MsgConfirmItemDraw
	}
	if balance.Points < shop.DrawCost {
		return a.fail(title, errors.Client(errors.CodeFailedPrecondition, shop.MsgInsufficientPoints), shop.MsgInsufficientPoints)
	}
	ok, err := a.confirm(title, message)
	if err != nil || !ok {
		return err
	}

	var points int
	var known bool
	draw := func(ctx context.Context) (reveal.Reward, error) {
		input := &shop.DrawInput{KnownPoints: balance.Points}
		if item {
			out, err := svc.ItemGacha(ctx, input)
			if err != nil {
				return reveal.Reward{}, err
			}
			points, known = out.Points, out.PointsKnown
			return out.Reward, nil
		}
		out, err := svc.Draw(ctx, input)
		if err != nil {
			return reveal.Reward{}, err
		}
		points, known = out.Points, out.PointsKnown
		return out.Reward, nil
	}

	if a.cfg.NoAnimation {
		reward, err := draw(ctx)
		if err != nil {
			return a.fail("소환 실패", err, shop.MsgDrawFailed)
		}
		a.printf("%s\n", tui.RewardCard(reward))
	} else {
		sched := tui.NewScheduler()
		m, err := tui.NewRevealModel(&tui.RevealConfig{
			Context:   ctx,
			Scheduler: sched,
			Draw:      draw,
			Logger:    a.logger,
		})
		if err != nil {
			return err
		}
		if err := a.play(ctx, m, sched); err != nil {
			return err
		}
		if m.Err() != nil {
			return a.fail("소환 실패", m.Err(), shop.MsgDrawFailed)
		}
		if r := m.Reward(); r != nil {
			a.printf("%s\n", tui.RewardCard(*r))
		}
	}

	if known {
		a.printf("%s\n", muted("남은 포인트 "+strconv.Itoa(points)+" P"))
	}
	return nil
}

func runEquipItem(ctx context.Context, a *app, inventoryID int64) error {
	svc, err := a.shopService()
	if err != nil {
		return err
	}
	if err := svc.EquipItem(ctx, &shop.EquipItemInput{InventoryID: inventoryID}); err != nil {
		return a.fail("장착 실패", err, shop.MsgEquipFailed)
	}
	a.success("아이템을 장착했습니다.", "")
	return nil
}

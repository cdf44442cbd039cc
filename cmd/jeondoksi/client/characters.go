package client

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/character"
	"github.com/jeondoksi/jeondoksi-cli/internal/tui"
)

var charactersCmd = &cobra.Command{
	Use:     "characters",
	Aliases: []string{"character"},
	Short:   "Show and choose your characters",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runCharacters)
	},
}

var charactersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your characters",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runCharacters)
	},
}

var charactersEquipCmd = &cobra.Command{
	Use:   "equip CHARACTER_ID",
	Short: "Make a character your main one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, a *app) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.InvalidArgumentf("invalid character id %q", args[0])
			}
			return runEquipCharacter(ctx, a, id)
		})
	},
}

func init() {
	charactersCmd.AddCommand(charactersListCmd, charactersEquipCmd)
}

func (a *app) characterService() (character.Service, error) {
	return character.NewOrchestrator(&character.Config{Client: a.api, Logger: a.logger})
}

func runCharacters(ctx context.Context, a *app) error {
	svc, err := a.characterService()
	if err != nil {
		return err
	}
	out, err := svc.List(ctx)
	if err != nil {
		return err
	}
	printCharacters(a, out)
	return nil
}

func runEquipCharacter(ctx context.Context, a *app, id int64) error {
	svc, err := a.characterService()
	if err != nil {
		return err
	}
	out, err := svc.Equip(ctx, &character.EquipInput{CharacterID: id})
	if err != nil {
		return a.fail("설정 실패", err, character.MsgEquipFailed)
	}
	a.success(out.Message, "")
	if out.List != nil {
		a.printf("\n")
		printCharacters(a, out.List)
	}
	return nil
}

func printCharacters(a *app, out *character.ListOutput) {
	a.printf("%s  %s\n\n", heading("내 캐릭터"), muted(strconv.Itoa(out.Total)+"마리"))

	c := out.Featured
	if c == nil {
		a.printf("%s\n", muted("아직 캐릭터가 없습니다. jeondoksi shop draw 로 소환해 보세요."))
		return
	}

	a.printf("%s\n", tui.CardStyle.BorderForeground(tui.RarityColor(c.Rarity)).Render(
		"#"+strconv.FormatInt(c.CharacterID, 10)+" "+tui.RarityStyle(c.Rarity).Render(c.Name)+"  Lv."+strconv.Itoa(c.Level)+"\n"+
			bar(out.FeaturedXP)+" "+strconv.Itoa(c.CurrentXP)+" / "+strconv.Itoa(c.RequiredXP)+" XP"))

	for _, o := range out.Others {
		a.printf("#%-5d %s Lv.%d %s\n", o.CharacterID, tui.RarityStyle(o.Rarity).Render(o.Name), o.Level, equippedMark(o))
	}
}

func equippedMark(c *entities.Character) string {
	if c.IsEquipped {
		return muted("(대표)")
	}
	return ""
}

package client

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/guild"
)

var (
	guildName        string
	guildDescription string
	guildPrivate     bool
	joinCode         string
)

var guildsCmd = &cobra.Command{
	Use:     "guilds",
	Aliases: []string{"guild"},
	Short:   "Browse, found and join reading guilds",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runGuildBrowse)
	},
}

var guildBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Show your guild, or the guilds open for joining",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runGuildBrowse)
	},
}

var guildShowCmd = &cobra.Command{
	Use:   "show GUILD_ID",
	Short: "Show a guild",
	Args:  cobra.ExactArgs(1),
	RunE:  guildIDCommand(runGuildShow),
}

var guildMembersCmd = &cobra.Command{
	Use:   "members GUILD_ID",
	Short: "List a guild's members",
	Args:  cobra.ExactArgs(1),
	RunE:  guildIDCommand(runGuildMembers),
}

var guildCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Found a guild",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runGuildCreate)
	},
}

var guildJoinCmd = &cobra.Command{
	Use:   "join GUILD_ID",
	Short: "Join a listed guild",
	Args:  cobra.ExactArgs(1),
	RunE:  guildIDCommand(runGuildJoin),
}

var guildJoinCodeCmd = &cobra.Command{
	Use:   "join-code CODE",
	Short: "Join a guild with an invite code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, a *app) error {
			return runGuildJoinCode(ctx, a, args[0])
		})
	},
}

var guildLeaveCmd = &cobra.Command{
	Use:   "leave GUILD_ID",
	Short: "Leave a guild",
	Args:  cobra.ExactArgs(1),
	RunE:  guildIDCommand(runGuildLeave),
}

var guildStartRaidCmd = &cobra.Command{
	Use:   "start-raid GUILD_ID",
	Short: "Start a new boss raid (leader only)",
	Args:  cobra.ExactArgs(1),
	RunE:  guildIDCommand(runGuildStartRaid),
}

func init() {
	guildCreateCmd.Flags().StringVar(&guildName, "name", "", "Guild name")
	guildCreateCmd.Flags().StringVar(&guildDescription, "description", "", "Guild description")
	guildCreateCmd.Flags().BoolVar(&guildPrivate, "private", false, "Only joinable with the invite code")
	guildJoinCmd.Flags().StringVar(&joinCode, "code", "", "Invite code of a private guild")

	guildsCmd.AddCommand(guildBrowseCmd, guildShowCmd, guildMembersCmd, guildCreateCmd, guildJoinCmd,
		guildJoinCodeCmd, guildLeaveCmd, guildStartRaidCmd)
}

func guildIDCommand(fn func(context.Context, *app, int64) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, a *app) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.InvalidArgumentf("invalid guild id %q", args[0])
			}
			return fn(ctx, a, id)
		})
	}
}

func (a *app) guildService() (guild.Service, error) {
	return guild.NewOrchestrator(&guild.Config{Client: a.api, Logger: a.logger})
}

func runGuildBrowse(ctx context.Context, a *app) error {
	svc, err := a.guildService()
	if err != nil {
		return err
	}
	out, err := svc.Browse(ctx)
	if err != nil {
		return a.fail("불러오기 실패", err, guild.MsgLoadFailed)
	}

	if out.MyGuild != nil {
		a.printf("%s\n\n", heading("내 길드"))
		printGuildRow(a, out.MyGuild)
		a.printf("\n%s\n", muted("jeondoksi guilds show "+strconv.FormatInt(out.MyGuild.ID, 10)+" 로 자세히 볼 수 있습니다."))
		return nil
	}

	a.printf("%s\n\n", heading("길드 목록"))
	if len(out.Guilds) == 0 {
		a.printf("%s\n", muted("아직 길드가 없습니다. jeondoksi guilds create 로 만들어 보세요."))
		return nil
	}
	for _, g := range out.Guilds {
		printGuildRow(a, g)
	}
	return nil
}

func printGuildRow(a *app, g *entities.Guild) {
	lock := ""
	if g.IsPrivate {
		lock = "🔒 "
	}
	a.printf("#%-5d %s%s  %s\n", g.ID, lock, g.Name,
		muted(strconv.Itoa(g.CurrentMemberCount)+"/"+strconv.Itoa(g.MaxMembers)+"명 · "+g.LeaderName))
}

func runGuildShow(ctx context.Context, a *app, id int64) error {
	svc, err := a.guildService()
	if err != nil {
		return err
	}
	out, err := svc.Get(ctx, &guild.GetInput{GuildID: id})
	if err != nil {
		return a.fail("불러오기 실패", err, guild.MsgLoadFailed)
	}

	g := out.Guild
	printGuildRow(a, g)
	desc := g.Description
	if desc == "" {
		desc = guild.MsgNoDescription
	}
	a.printf("\n%s\n", desc)

	if out.IsLeader {
		if g.JoinCode != "" {
			a.printf("\n%s\n", guild.InviteMessage(g))
		} else {
			a.printf("\n%s\n", muted(guild.MsgNoJoinCode))
		}
	}
	if g.CurrentBossID != nil {
		a.printf("\n%s\n", muted("진행 중인 레이드: jeondoksi raid watch"))
	}

	a.printf("\n%s\n", heading("길드원"))
	printMembers(a, out.Members)
	return nil
}

func runGuildMembers(ctx context.Context, a *app, id int64) error {
	svc, err := a.guildService()
	if err != nil {
		return err
	}
	out, err := svc.Members(ctx, &guild.GetInput{GuildID: id})
	if err != nil {
		return a.fail("불러오기 실패", err, guild.MsgLoadFailed)
	}
	printMembers(a, out.Members)
	return nil
}

func printMembers(a *app, members []*entities.GuildMember) {
	for _, m := range members {
		a.printf("  %-6s %s  %s\n", m.Role.Label(), m.Nickname, muted(m.JoinedAt))
	}
}

func runGuildCreate(ctx context.Context, a *app) error {
	svc, err := a.guildService()
	if err != nil {
		return err
	}

	name, err := a.prompt("길드 이름", guildName)
	if err != nil {
		return err
	}

	out, err := svc.Create(ctx, &guild.CreateInput{
		Name:        name,
		Description: guildDescription,
		IsPrivate:   guildPrivate,
	})
	if err != nil {
		return a.fail(guild.MsgCreateFailed, err, guild.MsgCreateFailed)
	}

	a.success(guild.MsgCreated, "")
	if out.Guild != nil {
		printGuildRow(a, out.Guild)
		if out.Guild.JoinCode != "" {
			a.printf("\n%s\n", guild.InviteMessage(out.Guild))
		}
	}
	return nil
}

func runGuildJoin(ctx context.Context, a *app, id int64) error {
	svc, err := a.guildService()
	if err != nil {
		return err
	}

	detail, err := svc.Get(ctx, &guild.GetInput{GuildID: id})
	if err != nil {
		return a.fail(guild.MsgJoinFailed, err, guild.MsgLoadFailed)
	}

	code := joinCode
	if detail.Guild.IsPrivate {
		if code, err = a.prompt("초대 코드", code); err != nil {
			return err
		}
	}

	if err := svc.Join(ctx, &guild.JoinInput{GuildID: id, IsPrivate: detail.Guild.IsPrivate, JoinCode: code}); err != nil {
		return a.fail(guild.MsgJoinFailed, err, guild.MsgJoinFailed)
	}
	a.success(guild.MsgJoined, detail.Guild.Name)
	return nil
}

func runGuildJoinCode(ctx context.Context, a *app, code string) error {
	svc, err := a.guildService()
	if err != nil {
		return err
	}
	out, err := svc.JoinByCode(ctx, &guild.JoinByCodeInput{JoinCode: code})
	if err != nil {
		return a.fail(guild.MsgJoinFailed, err, guild.MsgJoinFailed)
	}

	name := ""
	if out.Guild != nil {
		name = out.Guild.Name
	}
	a.success(guild.MsgJoined, name)
	return nil
}

func runGuildLeave(ctx context.Context, a *app, id int64) error {
	svc, err := a.guildService()
	if err != nil {
		return err
	}

	ok, err := a.confirm("길드 탈퇴", guild.MsgConfirmLeave)
	if err != nil || !ok {
		return err
	}

	if err := svc.Leave(ctx, &guild.LeaveInput{GuildID: id}); err != nil {
		return a.fail(guild.MsgLeaveFailed, err, guild.MsgLeaveFailed)
	}
	a.success(guild.MsgLeft, "")
	return nil
}

func runGuildStartRaid(ctx context.Context, a *app, id int64) error {
	svc, err := a.guildService()
	if err != nil {
		return err
	}

	ok, err := a.confirm("레이드 시작", guild.MsgConfirmRaid)
	if err != nil || !ok {
		return err
	}

	if err := svc.StartRaid(ctx, &guild.StartRaidInput{GuildID: id}); err != nil {
		return a.fail(guild.MsgRaidFailed, err, guild.MsgRaidFailed)
	}
	a.success(guild.MsgRaidStarted, "")
	return nil
}

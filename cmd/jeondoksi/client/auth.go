package client

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/auth"
)

var (
	email           string
	password        string
	passwordConfirm string
	nickname        string
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Sign in, sign up and manage the stored session",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the access token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runLogin)
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runSignup)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored access token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runLogout)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored session",
	Long:  `Shows the claims of the stored token. The signature is not verified; this is for display only.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runStatus)
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the signed-in reader",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runMe)
	},
}

func init() {
	loginCmd.Flags().StringVar(&email, "email", "", "Email")
	loginCmd.Flags().StringVar(&password, "password", "", "Password")

	signupCmd.Flags().StringVar(&email, "email", "", "Email")
	signupCmd.Flags().StringVar(&password, "password", "", "Password (8+ characters)")
	signupCmd.Flags().StringVar(&passwordConfirm, "password-confirm", "", "Password again")
	signupCmd.Flags().StringVar(&nickname, "nickname", "", "Nickname (up to 20 characters)")

	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(signupCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(statusCmd)
}

func (a *app) authService() (auth.Service, error) {
	return auth.NewOrchestrator(&auth.Config{
		Client:  a.api,
		Session: a.session,
		Logger:  a.logger,
	})
}

func runLogin(ctx context.Context, a *app) error {
	svc, err := a.authService()
	if err != nil {
		return err
	}

	in := &auth.LoginInput{}
	if in.Email, err = a.prompt("이메일", email); err != nil {
		return err
	}
	if in.Password, err = a.prompt("비밀번호", password); err != nil {
		return err
	}

	out, err := svc.Login(ctx, in)
	if err != nil {
		return a.fail("로그인 실패", err, auth.MsgLoginFailed)
	}

	msg := ""
	if out.Status != nil && out.Status.Subject != "" {
		msg = out.Status.Subject + " 님, 환영합니다."
	}
	a.success("로그인 성공", msg)
	return nil
}

func runSignup(ctx context.Context, a *app) error {
	svc, err := a.authService()
	if err != nil {
		return err
	}

	in := &auth.SignupInput{}
	if in.Email, err = a.prompt("이메일", email); err != nil {
		return err
	}
	if in.Nickname, err = a.prompt("닉네임", nickname); err != nil {
		return err
	}
	if in.Password, err = a.prompt("비밀번호", password); err != nil {
		return err
	}
	if in.PasswordConfirm, err = a.prompt("비밀번호 확인", passwordConfirm); err != nil {
		return err
	}

	out, err := svc.Signup(ctx, in)
	if err != nil {
		return a.fail("회원가입 실패", err, auth.MsgSignupFailed)
	}
	a.success("회원가입 완료", out.Message)
	return nil
}

func runLogout(ctx context.Context, a *app) error {
	svc, err := a.authService()
	if err != nil {
		return err
	}

	if err := svc.Logout(ctx); err != nil {
		return err
	}
	a.success("로그아웃", "저장된 로그인 정보를 삭제했습니다.")
	return nil
}

func runStatus(ctx context.Context, a *app) error {
	svc, err := a.authService()
	if err != nil {
		return err
	}

	out, err := svc.Status(ctx)
	if err != nil {
		return err
	}

	st := out.Status
	if !st.LoggedIn {
		a.info("로그아웃 상태", "jeondoksi auth login 으로 로그인하세요.")
		return nil
	}

	a.printf("%s\n", heading("로그인 상태"))
	if st.Subject != "" {
		a.printf("  계정: %s\n", st.Subject)
	}
	if !st.SavedAt.IsZero() {
		a.printf("  저장: %s\n", st.SavedAt.Local().Format(time.DateTime))
	}
	if !st.IssuedAt.IsZero() {
		a.printf("  발급: %s\n", st.IssuedAt.Local().Format(time.DateTime))
	}
	if !st.ExpiresAt.IsZero() {
		a.printf("  만료: %s", st.ExpiresAt.Local().Format(time.DateTime))
		if st.Expired {
			a.printf(" %s", muted("(만료됨)"))
		}
		a.printf("\n")
	}
	return nil
}

func runMe(ctx context.Context, a *app) error {
	svc, err := a.authService()
	if err != nil {
		return err
	}

	out, err := svc.Me(ctx)
	if err != nil {
		return err
	}

	u := out.User
	a.printf("%s\n", heading(u.Nickname))
	a.printf("  이메일: %s\n", u.Email)
	a.printf("  포인트: %d P\n", u.Point)
	a.printf("  독서 성향: 논리 %d · 감성 %d · 실천 %d\n", u.Stats.Logic, u.Stats.Emotion, u.Stats.Action)
	return nil
}

package client

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/report"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/personality"
)

var (
	reportISBN    string
	reportTitle   string
	reportFile    string
	reportContent string
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"library"},
	Short:   "Write and read reflections",
}

var reportWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write a reflection and get it analyzed",
	Long: `Write a reflection about a book. The text comes from --content, --file
(use - for stdin) or is typed in, ending with a line holding a single dot.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runReportWrite)
	},
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your reflections",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runReportList)
	},
}

var reportShowCmd = &cobra.Command{
	Use:   "show REPORT_ID",
	Short: "Show a reflection and its analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, a *app) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.InvalidArgumentf("invalid report id %q", args[0])
			}
			return runReportShow(ctx, a, id)
		})
	},
}

func init() {
	reportWriteCmd.Flags().StringVar(&reportISBN, "isbn", "", "ISBN of the book")
	reportWriteCmd.Flags().StringVar(&reportTitle, "title", "", "Title of the book")
	reportWriteCmd.Flags().StringVar(&reportFile, "file", "", "Read the reflection from a file")
	reportWriteCmd.Flags().StringVar(&reportContent, "content", "", "Reflection text")

	reportCmd.AddCommand(reportWriteCmd, reportListCmd, reportShowCmd)
}

func (a *app) reportService() (report.Service, error) {
	return report.NewOrchestrator(&report.Config{Client: a.api, Logger: a.logger})
}

func runReportWrite(ctx context.Context, a *app) error {
	svc, err := a.reportService()
	if err != nil {
		return err
	}

	isbn, err := a.prompt("ISBN", reportISBN)
	if err != nil {
		return err
	}
	title, err := a.prompt("책 제목", reportTitle)
	if err != nil {
		return err
	}
	content, err := a.reflection()
	if err != nil {
		return err
	}

	out, err := svc.Submit(ctx, &report.SubmitInput{ISBN: isbn, Title: title, Content: content})
	if err != nil {
		return a.fail("제출 실패", err, report.MsgSubmitFailed)
	}

	printAnalysis(a, out.Report, out.Personality)
	a.printf("\n%s\n", muted("jeondoksi quiz take "+out.Report.Book.ISBN+" 로 퀴즈에 도전하세요."))
	return nil
}

// reflection reads the reflection text from the flags or the terminal
func (a *app) reflection() (string, error) {
	switch {
	case reportContent != "":
		return reportContent, nil
	case reportFile == "-":
		b, err := io.ReadAll(a.in)
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(b), nil
	case reportFile != "":
		b, err := os.ReadFile(reportFile)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read %s", reportFile)
		}
		return string(b), nil
	}

	a.printf("독후감을 입력하세요 (%d자 이상, 마지막 줄에 . 입력):\n", report.MinContentLength)
	var lines []string
	for {
		line, err := a.in.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "." {
			break
		}
		if trimmed != "" || err == nil {
			lines = append(lines, trimmed)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.Wrap(err, "failed to read reflection")
		}
	}
	content := strings.Join(lines, "\n")
	a.printf("%s\n", muted("현재 "+strconv.Itoa(report.ContentLength(content))+"자"))
	return content, nil
}

func runReportList(ctx context.Context, a *app) error {
	svc, err := a.reportService()
	if err != nil {
		return err
	}

	out, err := svc.List(ctx)
	if err != nil {
		return a.fail("불러오기 실패", err, "독후감 목록을 불러오지 못했습니다.")
	}
	if len(out.Reports) == 0 {
		a.info("아직 작성한 독후감이 없습니다.", "")
		return nil
	}

	a.printf("%s\n\n", heading("나의 서재"))
	for _, r := range out.Reports {
		p := personality.Lookup(r.ResultType)
		a.printf("#%-5d %s  %s %s  %s\n", r.ReportID, truncate(r.BookTitle, 30), p.Icon, p.Title, muted(r.CreatedAt))
	}
	return nil
}

func runReportShow(ctx context.Context, a *app, id int64) error {
	svc, err := a.reportService()
	if err != nil {
		return err
	}

	out, err := svc.Get(ctx, &report.GetInput{ReportID: id})
	if err != nil {
		return a.fail("불러오기 실패", err, "독후감을 불러오지 못했습니다.")
	}

	printAnalysis(a, out.Report, out.Personality)
	a.printf("\n%s\n%s\n", heading("내 독후감"), out.Report.UserContent)
	return nil
}

func printAnalysis(a *app, r *entities.ReportDetail, p personality.Type) {
	a.printf("%s  %s\n", heading(r.Book.Title), muted(r.Book.Author))
	if r.CreatedAt != "" {
		a.printf("%s\n", muted(r.CreatedAt))
	}
	a.printf("\n%s %s\n%s\n%s\n\n", p.Icon, p.Title, p.Description, muted(tags(p.Tags)))

	s := r.AnalysisResult.Scores
	a.printf("  논리 %s %3d\n", bar(float64(s.Logic)), s.Logic)
	a.printf("  감성 %s %3d\n", bar(float64(s.Emotion)), s.Emotion)
	a.printf("  실천 %s %3d\n", bar(float64(s.Action)), s.Action)

	if r.AnalysisResult.Feedback != "" {
		a.printf("\n%s\n%s\n", heading("AI 피드백"), r.AnalysisResult.Feedback)
	}
}

package client

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/orchestrators/quiz"
	"github.com/jeondoksi/jeondoksi-cli/internal/tui"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take comprehension quizzes",
}

var quizTakeCmd = &cobra.Command{
	Use:   "take ISBN",
	Short: "Answer the quiz for a book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(ctx context.Context, a *app) error {
			return runQuiz(ctx, a, args[0])
		})
	},
}

func init() {
	quizCmd.AddCommand(quizTakeCmd)
}

func runQuiz(ctx context.Context, a *app, isbn string) error {
	svc, err := quiz.NewOrchestrator(&quiz.Config{Client: a.api, Logger: a.logger})
	if err != nil {
		return err
	}

	a.printf("%s\n", muted("AI가 퀴즈를 만들고 있습니다..."))
	loaded, err := svc.Load(ctx, &quiz.LoadInput{ISBN: isbn})
	if err != nil {
		return a.fail("퀴즈 오류", err, quiz.MsgLoadFailed)
	}

	s, err := quiz.NewSession(svc, loaded.Quiz)
	if err != nil {
		return a.fail("퀴즈 오류", err, quiz.MsgNoQuestions)
	}

	for s.Result() == nil {
		q := s.Current()
		choices := s.Choices()

		a.printf("\n%s %d / %d\n", bar(s.Progress()), s.Index()+1, s.Total())
		a.printf("%s\n", heading("Q"+strconv.Itoa(q.QuestionNo)+". "+q.Question))
		for i, c := range choices {
			a.printf("  %d) %s\n", i+1, c)
		}

		line, readErr := a.in.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return errors.Wrap(readErr, "failed to read answer")
		}
		answer := choiceAnswer(strings.TrimSpace(line), choices)

		if _, err := s.Answer(ctx, answer); err != nil {
			if errors.GetOrigin(err) == errors.OriginClient {
				a.printf("%s\n", tui.ErrorStyle.Render(errors.UserMessage(err, quiz.MsgAnswerMissing)))
			} else {
				a.fail("채점 실패", err, quiz.MsgGradeFailed)
			}
			if readErr == io.EOF {
				return shown{err}
			}
			continue
		}
		if readErr == io.EOF && s.Result() == nil {
			return errors.Client(errors.CodeCanceled, "퀴즈가 중단되었습니다.")
		}
	}

	res := s.Result()
	if res.Passed {
		a.success("통과!", "점수 "+strconv.Itoa(res.Result.Score)+"점 · 경험치 +"+strconv.Itoa(res.Result.GainedExp))
	} else {
		a.info("아쉬워요", "점수 "+strconv.Itoa(res.Result.Score)+"점 · 다시 도전해 보세요.")
	}
	return nil
}

// choiceAnswer maps a choice number to its text. Anything else is returned
// as typed.
func choiceAnswer(input string, choices []string) string {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(choices) {
		return input
	}
	return choices[n-1]
}

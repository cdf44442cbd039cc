// Package main is the entry point for the jeondoksi terminal client
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jeondoksi/jeondoksi-cli/cmd/jeondoksi/client"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:           "jeondoksi",
	Short:         "전독시 reading log client",
	Long:          `jeondoksi records what you read, quizzes you on it and lets your guild raid bosses with the reading power you earn.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !client.Shown(err) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", errors.UserMessage(err, err.Error()))
		}
		if errors.IsAuthFailure(err) {
			fmt.Fprintln(os.Stderr, "jeondoksi auth login 으로 다시 로그인하세요.")
		}
		stop()
		os.Exit(1)
	}
}

func init() {
	client.AddCommands(rootCmd)
}

package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/tui"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/notice"
)

// terminalPresenter prints dialogs inline. Confirmations end with a y/N
// prompt that the command answers through app.confirm.
type terminalPresenter struct {
	out io.Writer
}

var _ notice.Presenter = (*terminalPresenter)(nil)

func (p *terminalPresenter) Present(d notice.Dialog) {
	style := lipgloss.NewStyle().Bold(true).Foreground(tui.Info)
	icon := "ℹ"
	switch d.Kind {
	case notice.KindSuccess:
		style, icon = style.Foreground(tui.Success), "✔"
	case notice.KindError:
		style, icon = style.Foreground(tui.Destructive), "✖"
	}

	if d.Title != "" {
		fmt.Fprintln(p.out, style.Render(icon+" "+d.Title))
	}
	if d.Message != "" {
		fmt.Fprintln(p.out, d.Message)
	}
	if d.Confirmation() {
		fmt.Fprintf(p.out, "%s(y) / %s(N): ", d.ConfirmLabel, d.CancelLabel)
	}
}

func (p *terminalPresenter) Hide(uint64) {}

func (a *app) success(title, message string) {
	a.notices.OpenNotice(notice.NoticeInput{Kind: notice.KindSuccess, Title: title, Message: message})
}

func (a *app) info(title, message string) {
	a.notices.OpenNotice(notice.NoticeInput{Kind: notice.KindInfo, Title: title, Message: message})
}

// fail shows err in the notice slot and returns it marked as already shown
func (a *app) fail(title string, err error, fallback string) error {
	a.notices.OpenNotice(notice.NoticeInput{
		Kind:    notice.KindError,
		Title:   title,
		Message: errors.UserMessage(err, fallback),
	})
	return shown{err}
}

// confirm opens a confirmation and reads the answer. --yes confirms without
// reading.
func (a *app) confirm(title, message string) (bool, error) {
	confirmed := false
	id := a.notices.OpenConfirmation(notice.ConfirmationInput{
		Kind:      notice.KindInfo,
		Title:     title,
		Message:   message,
		OnConfirm: func() { confirmed = true },
	})

	if assumeYes {
		fmt.Fprintln(a.out, "y")
		a.notices.Confirm(id)
		return confirmed, nil
	}

	line, err := a.in.ReadString('\n')
	if err != nil && err != io.EOF {
		a.notices.Dismiss()
		return false, errors.Wrap(err, "failed to read answer")
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "예", "네":
		a.notices.Confirm(id)
	default:
		a.notices.Dismiss()
	}
	return confirmed, nil
}

// prompt reads one line, printing label first. A value already given by flag
// is returned unchanged.
func (a *app) prompt(label, value string) (string, error) {
	if value != "" {
		return value, nil
	}

	fmt.Fprintf(a.out, "%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "failed to read input")
	}
	return strings.TrimSpace(line), nil
}

// shown wraps an error whose message has already been printed
type shown struct {
	error
}

func (s shown) Unwrap() error { return s.error }

// Shown reports whether a command already printed err
func Shown(err error) bool {
	_, ok := err.(shown)
	return ok
}

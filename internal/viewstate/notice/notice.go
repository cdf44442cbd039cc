// Package notice is the application-wide dialog slot. One Center is built at
// startup and handed to every view; opening a dialog replaces whatever was
// showing.
package notice

//go:generate mockgen -destination=mock/mock_presenter.go -package=noticemock github.com/jeondoksi/jeondoksi-cli/internal/viewstate/notice Presenter

import (
	"sync"

	"go.uber.org/zap"

	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
)

// Kind selects the dialog styling
type Kind string

// Dialog kinds
const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Default button labels
const (
	DefaultConfirmLabel = "확인"
	DefaultCancelLabel  = "취소"
)

// Dialog is the content of the slot
type Dialog struct {
	ID           uint64
	Kind         Kind
	Title        string
	Message      string
	ConfirmLabel string
	// CancelLabel is empty for plain notices
	CancelLabel string
}

// Confirmation reports whether the dialog asks the user to choose
func (d Dialog) Confirmation() bool {
	return d.CancelLabel != ""
}

// Presenter renders the slot
type Presenter interface {
	// Present shows d, replacing any dialog on screen
	Present(d Dialog)
	// Hide removes the dialog with the given id
	Hide(id uint64)
}

// NoticeInput opens a plain notice
type NoticeInput struct {
	Kind    Kind
	Title   string
	Message string
}

// ConfirmationInput opens a dialog with confirm and cancel actions
type ConfirmationInput struct {
	Kind         Kind
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
	OnConfirm    func()
}

// Config holds the center's collaborators
type Config struct {
	// Presenter is optional; without one the slot is only inspectable
	Presenter Presenter
	Logger    *zap.Logger
}

// Center owns the single dialog slot
type Center struct {
	mu        sync.Mutex
	presenter Presenter
	logger    *zap.Logger
	seq       uint64
	open      bool
	current   Dialog
	onConfirm func()
}

// New creates a Center
func New(cfg *Config) *Center {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Center{
		presenter: cfg.Presenter,
		logger:    logging.OrNop(cfg.Logger),
	}
}

// OpenNotice shows a notice with a single confirm button
func (c *Center) OpenNotice(input NoticeInput) uint64 {
	return c.show(Dialog{
		Kind:         kindOrInfo(input.Kind),
		Title:        input.Title,
		Message:      input.Message,
		ConfirmLabel: DefaultConfirmLabel,
	}, nil)
}

// OpenConfirmation shows a dialog whose confirm action runs OnConfirm
func (c *Center) OpenConfirmation(input ConfirmationInput) uint64 {
	d := Dialog{
		Kind:         kindOrInfo(input.Kind),
		Title:        input.Title,
		Message:      input.Message,
		ConfirmLabel: input.ConfirmLabel,
		CancelLabel:  input.CancelLabel,
	}
	if d.ConfirmLabel == "" {
		d.ConfirmLabel = DefaultConfirmLabel
	}
	if d.CancelLabel == "" {
		d.CancelLabel = DefaultCancelLabel
	}
	return c.show(d, input.OnConfirm)
}

// Dismiss closes the slot without running any callback
func (c *Center) Dismiss() {
	c.mu.Lock()
	if !c.open {
		c.mu.Unlock()
		return
	}
	id := c.current.ID
	c.open = false
	c.onConfirm = nil
	presenter := c.presenter
	c.mu.Unlock()

	if presenter != nil {
		presenter.Hide(id)
	}
}

// Confirm runs the confirmation callback, if any, then dismisses. A stale
// id (the dialog was already replaced) is ignored.
func (c *Center) Confirm(id uint64) {
	c.mu.Lock()
	if !c.open || c.current.ID != id {
		c.mu.Unlock()
		c.logger.Debug("ignoring confirm for closed dialog", zap.Uint64("dialog_id", id))
		return
	}
	fn := c.onConfirm
	c.mu.Unlock()

	if fn != nil {
		fn()
	}

	c.mu.Lock()
	// the callback may have opened a new dialog
	stillOpen := c.open && c.current.ID == id
	c.mu.Unlock()
	if stillOpen {
		c.Dismiss()
	}
}

// Current returns the dialog on screen
func (c *Center) Current() (Dialog, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current, c.open
}

func (c *Center) show(d Dialog, onConfirm func()) uint64 {
	c.mu.Lock()
	c.seq++
	d.ID = c.seq
	if c.open {
		c.logger.Debug("replacing open dialog",
			zap.Uint64("replaced_id", c.current.ID),
			zap.String("title", c.current.Title))
	}
	c.current = d
	c.open = true
	c.onConfirm = onConfirm
	presenter := c.presenter
	c.mu.Unlock()

	if presenter != nil {
		presenter.Present(d)
	}
	return d.ID
}

func kindOrInfo(k Kind) Kind {
	switch k {
	case KindSuccess, KindError:
		return k
	default:
		return KindInfo
	}
}

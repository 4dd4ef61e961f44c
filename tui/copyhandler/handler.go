// Package copyhandler binds button activation to a clipboard copy and turns
// the result into button and toast feedback.
package copyhandler

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dylan/copylink/clipboard"
	"github.com/dylan/copylink/tui/button"
	"github.com/dylan/copylink/tui/shared"
)

var (
	ErrNoCopier   = errors.New("copyhandler: copier is required")
	ErrNoNotifier = errors.New("copyhandler: notifier is required")
)

// Copier performs one copy attempt.
type Copier interface {
	Copy(ctx context.Context, text string) clipboard.Result
}

// Notifier shows a transient message.
type Notifier interface {
	Notify(message string, level shared.FeedbackLevel) tea.Cmd
}

type Options struct {
	CopiedLabel    string
	Message        string
	FailureMessage string
	Timeout        time.Duration
	Logger         *slog.Logger
}

type Handler struct {
	copier   Copier
	notifier Notifier
	opts     Options
}

// New fails fast when a dependency is missing instead of faulting on first use.
func New(copier Copier, notifier Notifier, opts Options) (*Handler, error) {
	if isNil(copier) {
		return nil, ErrNoCopier
	}
	if isNil(notifier) {
		return nil, ErrNoNotifier
	}
	if opts.CopiedLabel == "" {
		opts.CopiedLabel = "Copied!"
	}
	if opts.Message == "" {
		opts.Message = "Link copied to clipboard"
	}
	if opts.FailureMessage == "" {
		opts.FailureMessage = "Could not copy link"
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Handler{copier: copier, notifier: notifier, opts: opts}, nil
}

// isNil also catches a typed nil pointer stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Interface, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Activate starts an asynchronous copy of the button's payload. It returns nil
// when the button is ignoring activations.
func (h *Handler) Activate(b *button.Model) tea.Cmd {
	if b.Busy() {
		h.opts.Logger.Debug("activation ignored", "button", b.ID)
		return nil
	}
	id, payload, timeout := b.ID, b.Payload, h.opts.Timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		res := h.copier.Copy(ctx, payload)
		return shared.CopyResultMsg{ButtonID: id, Payload: payload, Result: res}
	}
}

// Complete applies a copy result. Only a primary success changes the button;
// a fallback success shows the same toast and leaves the button idle.
func (h *Handler) Complete(b *button.Model, msg shared.CopyResultMsg) tea.Cmd {
	log := h.opts.Logger.With("button", msg.ButtonID, "outcome", msg.Result.Outcome.String())

	switch msg.Result.Outcome {
	case clipboard.OutcomePrimary:
		log.Info("copied")
		var revert tea.Cmd
		if b != nil {
			revert = b.MarkCopied(h.opts.CopiedLabel)
		}
		return tea.Batch(revert, h.notifier.Notify(h.opts.Message, shared.FeedbackSuccess))

	case clipboard.OutcomeFallback:
		log.Info("copied via fallback", "primary_err", msg.Result.PrimaryErr)
		return h.notifier.Notify(h.opts.Message, shared.FeedbackSuccess)

	default:
		log.Error("copy failed", "err", msg.Result.Err)
		return h.notifier.Notify(h.opts.FailureMessage, shared.FeedbackError)
	}
}

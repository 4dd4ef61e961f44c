// Package clipboard copies text to the system clipboard with a primary
// writer and a fallback path.
package clipboard

import (
	"context"
	"errors"

	sysclip "github.com/atotto/clipboard"
)

// ErrUnavailable reports that a clipboard path cannot run on this host.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer places text on a clipboard.
type Writer interface {
	Write(ctx context.Context, text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, text string) error

func (f WriterFunc) Write(ctx context.Context, text string) error {
	return f(ctx, text)
}

// System writes through the platform clipboard utilities wrapped by
// atotto/clipboard.
type System struct{}

func (System) Write(ctx context.Context, text string) error {
	if sysclip.Unsupported {
		return ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return sysclip.WriteAll(text)
}

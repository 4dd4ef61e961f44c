package clipboard

import (
	"context"
	"fmt"
	"log/slog"
)

// Outcome classifies how a copy attempt ended.
type Outcome int

const (
	OutcomePrimary  Outcome = iota // primary writer succeeded
	OutcomeFallback                // primary failed, fallback succeeded
	OutcomeFailed                  // both paths failed
)

func (o Outcome) String() string {
	switch o {
	case OutcomePrimary:
		return "primary"
	case OutcomeFallback:
		return "fallback"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result carries the outcome and the errors seen along the way.
type Result struct {
	Outcome    Outcome
	PrimaryErr error // why the fallback ran, nil on OutcomePrimary
	Err        error // non-nil only on OutcomeFailed
}

// Copier tries Primary once and, if it fails, Fallback once.
type Copier struct {
	Primary  Writer
	Fallback Writer
	Logger   *slog.Logger
}

func NewCopier(primary, fallback Writer, logger *slog.Logger) *Copier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Copier{Primary: primary, Fallback: fallback, Logger: logger}
}

func (c *Copier) Copy(ctx context.Context, text string) Result {
	var primaryErr error
	if c.Primary != nil {
		primaryErr = c.Primary.Write(ctx, text)
		if primaryErr == nil {
			return Result{Outcome: OutcomePrimary}
		}
	} else {
		primaryErr = ErrUnavailable
	}
	c.Logger.Debug("primary clipboard write failed", "err", primaryErr)

	if c.Fallback == nil {
		return Result{Outcome: OutcomeFailed, PrimaryErr: primaryErr, Err: fmt.Errorf("primary: %w", primaryErr)}
	}
	if err := c.Fallback.Write(ctx, text); err != nil {
		c.Logger.Warn("fallback clipboard write failed", "err", err)
		return Result{Outcome: OutcomeFailed, PrimaryErr: primaryErr, Err: fmt.Errorf("fallback: %w", err)}
	}
	return Result{Outcome: OutcomeFallback, PrimaryErr: primaryErr}
}

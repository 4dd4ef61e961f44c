package clipboard

import (
	"context"
	"io"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// OSC52 asks the terminal emulator to set the clipboard by writing an
// OSC 52 escape sequence. Mode "tmux" or "screen" wraps the sequence for
// the multiplexer.
type OSC52 struct {
	Out  io.Writer
	Mode string
}

func (o OSC52) Write(ctx context.Context, text string) error {
	if o.Out == nil {
		return ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := o.sequence(text).WriteTo(o.Out)
	return err
}

func (o OSC52) sequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	switch o.Mode {
	case "tmux":
		seq = seq.Tmux()
	case "screen":
		seq = seq.Screen()
	}
	return seq
}

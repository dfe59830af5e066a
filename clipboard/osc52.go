package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"

	"github.com/andareed/msgbox/logging"
)

var ErrUnsupported = errors.New("clipboard unavailable (OSC52 unsupported by terminal)")

type terminal struct {
	term string
	tmux bool
	tty  bool
}

func copyOSC52(w io.Writer, t terminal, text string) error {
	if !t.tty || t.term == "" || strings.EqualFold(t.term, "dumb") {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return ErrUnsupported
	}

	seq := osc52.New(text)
	switch {
	case t.tmux:
		seq = seq.Tmux()
	case strings.HasPrefix(t.term, "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(w); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

func isTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

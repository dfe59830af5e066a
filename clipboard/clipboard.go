// Package clipboard copies text to the system clipboard, falling back to an
// OSC52 escape sequence when no clipboard utility is available (e.g. over SSH).
package clipboard

import (
	"os"

	"github.com/atotto/clipboard"

	"github.com/andareed/msgbox/logging"
)

// Copy puts text on the clipboard.
func Copy(text string) error {
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes", len(text))
			return nil
		}
		logging.Debugf("Clipboard: system clipboard failed, trying OSC52: %v", err)
	}
	return copyOSC52(os.Stdout, terminal{
		term: os.Getenv("TERM"),
		tmux: os.Getenv("TMUX") != "",
		tty:  isTTY(os.Stdout),
	}, text)
}

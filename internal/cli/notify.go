package cli

import (
	"fmt"
	"io"
	"os"
)

// StderrNotifier prints user-facing notices the way a desktop host would
// pop a dialog.
type StderrNotifier struct {
	out io.Writer
}

func NewStderrNotifier() *StderrNotifier {
	return &StderrNotifier{out: os.Stderr}
}

func (n *StderrNotifier) Notify(message string, title ...string) {
	if len(title) > 0 && title[0] != "" {
		fmt.Fprintf(n.out, "[%s] %s\n", title[0], message)
		return
	}
	fmt.Fprintln(n.out, message)
}

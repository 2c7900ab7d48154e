package ui

import (
	"fmt"
	"io"
)

// Notifier prints confirmation messages to a writer
type Notifier struct {
	w io.Writer
}

func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

func (n *Notifier) Notify(message string) {
	_, _ = fmt.Fprintln(n.w, Good.Render(IconDone+" "+message))
}

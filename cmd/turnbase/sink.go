package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"

	"turnbase/game"
)

// termSink renders game log lines to the terminal. A scrollback terminal
// cannot erase a line after the fact, so disposal prints the retracted text
// struck through instead.
type termSink struct {
	out *termenv.Output
}

func newTermSink() *termSink {
	return &termSink{out: termenv.NewOutput(os.Stdout)}
}

func (s *termSink) Append(text string) game.Handle {
	fmt.Fprintln(s.out, s.out.String(text).Foreground(s.out.Color("6")))
	return &termHandle{sink: s, text: text}
}

type termHandle struct {
	sink *termSink
	text string
}

func (h *termHandle) Dispose() {
	fmt.Fprintln(h.sink.out, h.sink.out.String(h.text).Faint().CrossOut())
}

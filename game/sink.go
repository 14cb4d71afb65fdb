package game

// Sink is the append-only boundary to the rendering layer. The engine only
// assumes that each emitted line can later be disposed individually, which
// is what makes undo able to retract output.
type Sink interface {
	Append(text string) Handle
}

// Handle identifies one emitted line for later disposal.
type Handle interface {
	Dispose()
}

type discardSink struct{}

type discardHandle struct{}

func (discardSink) Append(string) Handle { return discardHandle{} }

func (discardHandle) Dispose() {}

// Discard returns a sink that drops every line. It is substituted during
// simulation and is the default for sessions created without a sink.
func Discard() Sink { return discardSink{} }

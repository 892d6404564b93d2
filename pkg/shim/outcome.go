package shim

type OutcomeKind int8

const (
	Success OutcomeKind = iota
	Fallback
	Fatal
)

// Outcome is the result of a pipeline stage. Only the entry point acts
// on it by exiting the process.
type Outcome struct {
	Kind     OutcomeKind
	Reason   string
	ExitCode int
}

func fallback(reason string) Outcome {
	return Outcome{Kind: Fallback, Reason: reason}
}

func fatal(reason string) Outcome {
	return Outcome{Kind: Fatal, Reason: reason, ExitCode: 1}
}

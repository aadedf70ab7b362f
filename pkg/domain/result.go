package domain

// ResultKind discriminates what a command asks the session to do.
type ResultKind int

const (
	// ResultText asks the session to append Lines as a result entry.
	ResultText ResultKind = iota
	// ResultClear asks the session to empty its transcript.
	ResultClear
)

func (k ResultKind) String() string {
	switch k {
	case ResultText:
		return "text"
	case ResultClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Result is the outcome of executing a command.
// A clear result carries no lines; a text result never clears, whatever it contains.
type Result struct {
	Kind  ResultKind
	Lines []string
}

// Text builds a result that displays the given lines.
func Text(lines ...string) Result {
	return Result{Kind: ResultText, Lines: lines}
}

// Clear builds a result that empties the session transcript.
func Clear() Result {
	return Result{Kind: ResultClear}
}

// IsClear reports whether the result is the clear signal.
func (r Result) IsClear() bool {
	return r.Kind == ResultClear
}

package internal

// Interpret resolves stmts and, when the resolver found no problem, runs
// them on a fresh interpreter
func Interpret(reporter Reporter, stmts []stmt) {
	e := newExec(reporter)
	interpretWith(e, reporter, stmts)
}

func interpretWith(e *exec, reporter Reporter, stmts []stmt) bool {
	counting := &countingReporter{Reporter: reporter}
	resolveInto(counting, stmts, e.locals)
	if counting.diagnostics > 0 {
		reporter.AddMessage(skippedMessage("interpreter", "resolver"))
		return false
	}

	e.reporter = counting
	e.interpret(stmts)
	e.reporter = reporter
	return counting.diagnostics == 0
}

// Run scans, parses, resolves and interprets source. Each stage only runs
// when the previous ones reported no diagnostic. It returns true when no
// stage reported a diagnostic.
func Run(reporter Reporter, source string) bool {
	return NewSession(reporter).Run(source)
}

// Ast scans and parses source for tooling, accepting missing ';' and a
// dangling '.' at the cursor
func Ast(reporter Reporter, source string) []stmt {
	counting := &countingReporter{Reporter: reporter}
	tokens := Scan(counting, source)
	if counting.diagnostics > 0 {
		reporter.AddMessage(skippedMessage("parser", "scan"))
		return nil
	}
	return parseTolerant(reporter, tokens)
}

// Session runs successive pieces of source on the same globals, like the
// lines of a REPL
type Session struct {
	reporter Reporter
	ids      *idGen
	exec     *exec
}

// NewSession creates a session with a fresh global environment
func NewSession(reporter Reporter) *Session {
	return &Session{
		reporter: reporter,
		ids:      &idGen{},
		exec:     newExec(reporter),
	}
}

// Run runs source in the session. It returns true when no stage
// reported a diagnostic.
func (s *Session) Run(source string) bool {
	counting := &countingReporter{Reporter: s.reporter}

	tokens := Scan(counting, source)
	if counting.diagnostics > 0 {
		s.reporter.AddMessage(skippedMessage("parser", "scan"))
		return false
	}

	stmts := parse(counting, tokens, s.ids, false)
	if counting.diagnostics > 0 {
		s.reporter.AddMessage(skippedMessage("resolver", "parse"))
		return false
	}

	return interpretWith(s.exec, s.reporter, stmts)
}

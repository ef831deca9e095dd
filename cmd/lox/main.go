package main

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"lox/internal"
)

// Exit codes from sysexits.h
const (
	exitUsage   = 64
	exitDataErr = 65
	exitNoInput = 66
	exitRuntime = 70
)

var errUsage = errors.New("Usage: lox [script]")

// exitError carries the status the process should exit with
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

// mode selects what is done with each piece of source
type mode struct {
	tokens bool
	ast    bool
	expr   bool
}

// consoleReporter prints everything it receives as soon as it gets it
type consoleReporter struct {
	internal.Collector
	out   io.Writer
	color *color.Color
}

func newConsoleReporter(out io.Writer) *consoleReporter {
	c := color.New()
	c.SetOutput(out)
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Disable()
	}
	return &consoleReporter{out: out, color: c}
}

func (r *consoleReporter) AddDiagnostic(start, end internal.Location, message string) {
	r.Collector.AddDiagnostic(start, end, message)
	fmt.Fprintf(r.out, "%s [%s %s] %s\n", r.color.Red("Diagnostic:"), start, end, message)
}

func (r *consoleReporter) AddMessage(message string) {
	r.Collector.AddMessage(message)
	fmt.Fprintf(r.out, "%s %s\n", r.color.Green("Message:"), message)
}

func main() {
	if err := newLoxCmd().Execute(); err != nil {
		code := 1
		if e, ok := err.(*exitError); ok {
			code = e.code
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}

func newLoxCmd() *cobra.Command {
	var m mode
	cmd := &cobra.Command{
		Use:   "lox [script]",
		Short: "Run a Lox script, or start a prompt when no script is given",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return &exitError{code: exitUsage, err: errUsage}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if m.tokens && m.ast || m.tokens && m.expr || m.ast && m.expr {
				return &exitError{code: exitUsage, err: errors.New("--tokens, --ast and --expr are exclusive")}
			}
			reporter := newConsoleReporter(cmd.OutOrStdout())
			if len(args) == 0 {
				in := cmd.InOrStdin()
				if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
					return runInteractive(reporter, m)
				}
				return runPrompt(in, reporter, m)
			}
			return runFile(args[0], reporter, m)
		},
	}

	cmd.Flags().BoolVar(&m.tokens, "tokens", false, "print the scanned tokens instead of running")
	cmd.Flags().BoolVar(&m.ast, "ast", false, "print the parsed statements instead of running")
	cmd.Flags().BoolVar(&m.expr, "expr", false, "parse a single expression and print its tree")
	return cmd
}

func runFile(path string, reporter *consoleReporter, m mode) error {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return &exitError{code: exitNoInput, err: errors.Wrapf(err, "reading %s", path)}
	}

	session := internal.NewSession(reporter)
	run(session, reporter, string(b), m)
	if reporter.HasDiagnostics() {
		code := exitRuntime
		if m.tokens || m.ast || m.expr {
			code = exitDataErr
		}
		return &exitError{code: code, err: reporter.Err()}
	}
	return nil
}

// historyFile is kept in the home directory between interactive sessions
const historyFile = ".lox_history"

// lineSource returns the next line of the prompt, io.EOF when input is over
type lineSource func() (string, error)

// runPrompt reads one line at a time from a non-terminal input
func runPrompt(in io.Reader, reporter *consoleReporter, m mode) error {
	scanner := bufio.NewScanner(in)
	next := func() (string, error) {
		fmt.Fprint(reporter.out, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return scanner.Text(), nil
	}
	return promptLoop(next, reporter, m)
}

// runInteractive drives the prompt on a terminal with line editing and
// a history file
func runInteractive(reporter *consoleReporter, m mode) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	next := func() (string, error) {
		line, err := ln.Prompt("> ")
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		return line, nil
	}
	return promptLoop(next, reporter, m)
}

// promptLoop runs lines until EOF, an aborted prompt or an empty line.
// Every line runs in the same session, so globals survive between lines.
func promptLoop(next lineSource, reporter *consoleReporter, m mode) error {
	fmt.Fprintln(reporter.out, "Hello, Lox!")
	session := internal.NewSession(reporter)
	for {
		line, err := next()
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			break
		}
		if err != nil {
			return errors.Wrap(err, "reading prompt")
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		reporter.Reset()
		run(session, reporter, line, m)
	}
	fmt.Fprintln(reporter.out, "done")
	return nil
}

func run(session *internal.Session, reporter *consoleReporter, source string, m mode) {
	switch {
	case m.tokens:
		for _, token := range internal.Scan(reporter, source) {
			fmt.Fprintln(reporter.out, token)
		}
	case m.ast:
		tokens := internal.Scan(reporter, source)
		if reporter.HasDiagnostics() {
			return
		}
		fmt.Fprint(reporter.out, internal.PrintAst(internal.Parse(reporter, tokens)))
	case m.expr:
		tokens := internal.Scan(reporter, source)
		if reporter.HasDiagnostics() {
			return
		}
		if e := internal.ParseExpression(reporter, tokens); e != nil {
			fmt.Fprintln(reporter.out, internal.PrintExpression(e))
		}
	default:
		session.Run(source)
	}
}

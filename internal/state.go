package internal

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Reporter receives diagnostics and messages from every stage of the pipeline
type Reporter interface {
	AddDiagnostic(start, end Location, message string)
	AddMessage(message string)
	HasDiagnostics() bool
}

// Diagnostic is a non-fatal problem located in the source
type Diagnostic struct {
	Start   Location
	End     Location
	Message string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("[%s %s] %s", d.Start, d.End, d.Message)
}

// Collector is a Reporter that keeps everything it is given
type Collector struct {
	Diagnostics []Diagnostic
	Messages    []string
}

// AddDiagnostic stores a diagnostic
func (c *Collector) AddDiagnostic(start, end Location, message string) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Start: start, End: end, Message: message})
}

// AddMessage stores a message
func (c *Collector) AddMessage(message string) {
	c.Messages = append(c.Messages, message)
}

// HasDiagnostics returns true if at least one diagnostic was reported
func (c *Collector) HasDiagnostics() bool {
	return len(c.Diagnostics) > 0
}

// HasMessage returns true if message was reported verbatim
func (c *Collector) HasMessage(message string) bool {
	for _, m := range c.Messages {
		if m == message {
			return true
		}
	}
	return false
}

// Reset drops everything collected so far
func (c *Collector) Reset() {
	c.Diagnostics = nil
	c.Messages = nil
}

// Err returns all diagnostics as a single error, nil when there are none
func (c *Collector) Err() error {
	var result *multierror.Error
	for _, d := range c.Diagnostics {
		result = multierror.Append(result, d)
	}
	return result.ErrorOrNil()
}

// countingReporter forwards to another reporter and counts diagnostics,
// so a stage can tell whether it added any itself
type countingReporter struct {
	Reporter
	diagnostics int
}

func (c *countingReporter) AddDiagnostic(start, end Location, message string) {
	c.diagnostics++
	c.Reporter.AddDiagnostic(start, end, message)
}

// Message prefixes
const (
	printPrefix   = "[print] "
	runtimePrefix = "[runtime error] "
)

func printMessage(v value) string {
	return printPrefix + v.String()
}

// Lexer errors
var errUnexpectedChar = errors.New("Unexpected character")
var errUnterminatedString = errors.New("Unterminated string")

// Parser errors
var errExpectedExpression = errors.New("Expect expression")
var errExpectedEndOfExpr = errors.New("Expect end of expression")
var errUnclosedParen = errors.New("Expect ')' after expression")
var errExpectedSemicolonValue = errors.New("Expect ';' after value")
var errExpectedSemicolonExpr = errors.New("Expect ';' after expression")
var errExpectedSemicolonVar = errors.New("Expect ';' after variable declaration")
var errExpectedSemicolonReturn = errors.New("Expect ';' after return value")
var errInvalidAssignment = errors.New("Invalid assignment target")
var errUnclosedBlock = errors.New("Expect '}' after block")
var errExpectedParenIf = errors.New("Expect '(' after 'if'")
var errUnclosedParenIf = errors.New("Expect ')' after 'if' condition")
var errExpectedParenWhile = errors.New("Expect '(' after 'while'")
var errUnclosedParenWhile = errors.New("Expect ')' after 'while' condition")
var errExpectedParenFor = errors.New("Expect '(' after 'for'")
var errExpectedSemicolonFor = errors.New("Expect ';' after 'for' loop condition")
var errUnclosedParenFor = errors.New("Expect ')' after 'for' clauses")
var errUnclosedArguments = errors.New("Expect ')' after function arguments")
var errExpectedFunctionName = errors.New("Expect function name")
var errExpectedParenFunction = errors.New("Expect '(' after function name")
var errExpectedParamName = errors.New("Expect parameter name")
var errUnclosedParams = errors.New("Expect ')' after function parameters")
var errExpectedFunctionBody = errors.New("Expect '{' before function body")
var errExpectedClassName = errors.New("Expect class name")
var errExpectedSuperclassName = errors.New("Expect superclass name")
var errExpectedClassBody = errors.New("Expect '{' before class body")
var errUnclosedClassBody = errors.New("Expect '}' after class body")
var errExpectedSuperDot = errors.New("Expect '.' after 'super'")
var errExpectedSuperMethod = errors.New("Expect superclass method name")
var errExpectedProp = errors.New("Expect property name after '.'")
var errExpectedVarName = errors.New("Expect a variable name")
var errMaxParameters = errors.New("Cannot have more than 255 parameters")
var errMaxArguments = errors.New("Cannot have more than 255 arguments")

// Resolver errors
var errReadInInitialiser = errors.New("Cannot read local variable in its own initialiser")
var errTopLevelReturn = errors.New("Cannot return from top-level code")
var errInheritSelf = errors.New("A class cannot inherit from itself")
var errSuperOutsideClass = errors.New("Cannot use 'super' outside of a class")
var errSuperNoSuperclass = errors.New("Cannot use 'super' in a class with no superclass")

func errAlreadyDeclared(name string) error {
	return fmt.Errorf("Already a variable with the name '%s' is in scope", name)
}

// Runtime errors
var errOperandsNumbersOrStrings = errors.New("Operands must be two numbers or two strings")
var errOperandNumber = errors.New("Operand should be a number")
var errNotCallable = errors.New("Can only call functions and classes")
var errOnlyInstances = errors.New("Only instances have fields")
var errSuperclassNotClass = errors.New("Superclass must be a class")
var errThisOutsideClass = errors.New("Cannot use 'this' outside of a class")

func errUndefinedVar(name string) error {
	return fmt.Errorf("Undefined variable '%s'", name)
}

func errUndefinedProp(name string) error {
	return fmt.Errorf("Undefined property '%s'", name)
}

func errArity(expected, got int) error {
	return fmt.Errorf("Expected %d arguments but got %d", expected, got)
}

// skippedMessage is reported when a stage does not run because an earlier one failed
func skippedMessage(stage, reason string) string {
	return fmt.Sprintf("[%s] not %s due to %s errors", stage, stageVerbs[stage], reason)
}

var stageVerbs = map[string]string{
	"parser":      "parsing",
	"resolver":    "resolving",
	"interpreter": "interpreting",
}

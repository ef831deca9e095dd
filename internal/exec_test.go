package internal

import (
	"strings"
	"testing"
)

func runSource(source string) *Collector {
	c := &Collector{}
	Run(c, source)
	return c
}

func checkExpression(t *testing.T, exp string, result ...string) {
	t.Helper()
	source := "print " + exp + ";"
	c := runSource(source)
	found := false
	for _, r := range result {
		if c.HasMessage(printPrefix + r) {
			found = true
			break
		}
	}
	if !found || c.HasDiagnostics() {
		t.Errorf(
			"Error on: \n%s\n\tResult should be equal to %s instead of %s",
			exp,
			result,
			c.Messages,
		)
	}
}

func checkErrorMsg(t *testing.T, source string, errorMsg string, line int) {
	t.Helper()
	c := runSource(source)
	for _, d := range c.Diagnostics {
		if d.Message == errorMsg && d.Start.Line == line {
			return
		}
	}
	t.Errorf(
		"\nSource:\n----\n%s\n----\nExpected:\n----\n%d: %s\n----\nFound:\n----\n%v\n----",
		source,
		line,
		errorMsg,
		c.Err(),
	)
}

func checkStatements(t *testing.T, code string, resultVar string, result string) {
	t.Helper()
	source := code + "\nprint " + resultVar + ";"
	c := runSource(source)
	if c.HasDiagnostics() || len(c.Messages) == 0 || c.Messages[len(c.Messages)-1] != printPrefix+result {
		t.Errorf(
			"Error on: \n%s\n\t%s should be equal to %s instead of %s",
			code,
			resultVar,
			result,
			c.Messages,
		)
	}
}

func checkOutput(t *testing.T, source string, messages ...string) {
	t.Helper()
	c := runSource(source)
	if strings.Join(c.Messages, "\n") != strings.Join(messages, "\n") {
		t.Errorf(
			"\nSource:\n----\n%s\n----\nExpected:\n----\n%s\n----\nFound:\n----\n%s\n----",
			source,
			strings.Join(messages, "\n"),
			strings.Join(c.Messages, "\n"),
		)
	}
}

func TestExpressions(t *testing.T) {

	// Arithmetic
	{
		checkExpression(t, "1", "1")
		checkExpression(t, "-1", "-1")
		checkExpression(t, "1 + 1", "2")
		checkExpression(t, "1 + 2 + 3", "6")
		checkExpression(t, "8 - 2", "6")
		checkExpression(t, "1 * 2 * 3", "6")
		checkExpression(t, "12 / 5", "2.4")
		checkExpression(t, "2 + 3 * 4", "14")
		checkExpression(t, "(2 + 3) * 4", "20")
		checkExpression(t, "1 / 0", "inf")
		checkExpression(t, "-1 / 0", "-inf")
		checkExpression(t, "0 / 0", "NaN")
		checkExpression(t, "0.1 + 0.2", "0.30000000000000004")
	}

	// Logical
	{
		checkExpression(t, "true", "true")
		checkExpression(t, "false", "false")
		checkExpression(t, "nil", "nil")

		checkExpression(t, "!false", "true")
		checkExpression(t, "!true", "false")
		checkExpression(t, "!nil", "true")
		checkExpression(t, `!""`, "false")
		checkExpression(t, "!0", "false")

		checkExpression(t, "true and true", "true")
		checkExpression(t, "false and true", "false")
		checkExpression(t, "nil and 1", "nil")
		checkExpression(t, "1 and 2", "2")

		checkExpression(t, "false or false", "false")
		checkExpression(t, "false or true", "true")
		checkExpression(t, "nil or \"yes\"", `"yes"`)
		checkExpression(t, "1 or 2", "1")
	}

	// Strings
	{
		checkExpression(t, `"test"`, `"test"`)
		checkExpression(t, `"a" + "b"`, `"ab"`)
	}

	// Comparisons
	{
		checkExpression(t, `"test" == "test"`, "true")
		checkExpression(t, `"test" != "test"`, "false")
		checkExpression(t, `1 == "1"`, "false")
		checkExpression(t, `nil == nil`, "true")
		checkExpression(t, `nil == false`, "false")
		checkExpression(t, `2*2 == 8-4`, "true")
		checkExpression(t, `10 > 5`, "true")
		checkExpression(t, `10 < 5`, "false")
		checkExpression(t, `5 >= 5`, "true")
		checkExpression(t, `4 >= 5`, "false")
		checkExpression(t, `5 <= 5`, "true")
		checkExpression(t, `10 <= 5`, "false")
		checkExpression(t, `(5 <= 5) and (!true or ((1*(1+4)) == 5))`, "true")
	}

	// Callables
	{
		checkExpression(t, "clock", `"native fun clock"`)
		checkExpression(t, "clock() > 0", "true")
	}
}

func TestRuntimeErrors(t *testing.T) {
	// Expression errors
	{
		checkErrorMsg(t, `"a" + 1;`, errOperandsNumbersOrStrings.Error(), 0)
		checkErrorMsg(t, `"A" - "B";`, errOperandNumber.Error(), 0)
		checkErrorMsg(t, `-"B";`, errOperandNumber.Error(), 0)
		checkErrorMsg(t, `1 < nil;`, errOperandNumber.Error(), 0)
		checkErrorMsg(t, `"B"();`, errNotCallable.Error(), 0)
		checkErrorMsg(t, `nil.field;`, errOnlyInstances.Error(), 0)
		checkErrorMsg(t, `true.field = 1;`, errOnlyInstances.Error(), 0)
		checkErrorMsg(t, `clock(1);`, errArity(0, 1).Error(), 0)
		checkErrorMsg(t, `print this;`, errThisOutsideClass.Error(), 0)
	}

	// Statement errors
	{
		checkErrorMsg(t, `var a = b;`, errUndefinedVar("b").Error(), 0)
		checkErrorMsg(t, `a = 1;`, errUndefinedVar("a").Error(), 0)

		checkErrorMsg(t, `
		fun f(a, b) { return a + b; }
		f(1);
		`, "Expected 2 arguments but got 1", 2)

		checkErrorMsg(t, `
		fun f() { return this; }
		f();
		`, errThisOutsideClass.Error(), 1)

		checkErrorMsg(t, `
		var C = "C";
		class A < C {}
		`, errSuperclassNotClass.Error(), 2)

		checkErrorMsg(t, `
		class A {
			init(x) {}
		}
		A();
		`, "Expected 1 arguments but got 0", 4)

		checkErrorMsg(t, `
		class A {
			init(x) {}
		}
		A(1, 2);
		`, "Expected 1 arguments but got 2", 4)

		checkErrorMsg(t, `
		class A {}
		var a = A();
		print a.missing;
		`, errUndefinedProp("missing").Error(), 3)

		checkErrorMsg(t, `
		class A {}
		var a = A();
		a.missing();
		`, errUndefinedProp("missing").Error(), 3)

		checkErrorMsg(t, `
		class A {}
		class B < A {
			get() { return super.get(); }
		}
		B().get();
		`, errUndefinedProp("get").Error(), 3)
	}

	// Runtime errors are also reported as messages
	{
		checkOutput(t, `"a" + 1;`, runtimePrefix+errOperandsNumbersOrStrings.Error())
	}
}

func TestStaticErrors(t *testing.T) {
	// Nothing runs when an earlier stage fails
	checkOutput(t, `print 1; "unterminated`, skippedMessage("parser", "scan"))
	checkOutput(t, `print 1; print ;`, skippedMessage("resolver", "parse"))
	checkOutput(t, `print 1; return 2;`, skippedMessage("interpreter", "resolver"))

	checkErrorMsg(t, `print 1; return 2;`, errTopLevelReturn.Error(), 0)
	checkErrorMsg(t, "print 1;\n{ var a = a; }", errReadInInitialiser.Error(), 1)
}

func TestStatements(t *testing.T) {
	// Comment
	{
		checkStatements(t, `
		// This is a "comment"
		var i = 0;
		`, "i", "0")
	}

	// Variables
	{
		checkStatements(t, `var i;`, "i", "nil")
		checkStatements(t, `var i = 1; var i = 2;`, "i", "2")
		checkStatements(t, `var a = 1; var b = a = 3;`, "a + b", "6")
		checkStatements(t, `
		var a = "global";
		{
			var a = "local";
		}
		`, "a", `"global"`)
	}

	// If-else
	{
		checkStatements(t, `
		var i = 0;
		if (i == 100) i = 10;
		else if (i < 10) i = 20;
		else i = 100;
		`, "i", "20")

		checkStatements(t, `
		var i = 100;
		if (i == 100) {
			i = 10;
		} else {
			i = 100;
		}
		`, "i", "10")

		checkStatements(t, `
		var i = 0;
		if (nil) i = 1;
		`, "i", "0")
	}

	// While loop
	{
		checkStatements(t, `
		var i = 0;
		while (i*2 < 10) {
			i = i + 1;
		}
		`, "i", "5")
	}

	// For loop
	{
		checkStatements(t, `
		var x = 1;
		for (var i = 1; i <= 8; i = i + 1) {
			x = x * i;
		}`, "x", "40320")

		checkStatements(t, `
		var x = 40320;
		var u = 0;
		for (; u < 10; u = u + 1) {
			x = x - u;
		}
		`, "x", "40275")
	}

	// Functions
	{
		checkStatements(t, `
		fun nilCheck() {
			return;
		}
		var i = nilCheck();
		`, "i", "nil")

		checkStatements(t, `
		fun noReturn() {}
		var i = noReturn();
		`, "i", "nil")

		checkStatements(t, `
		fun check(i) {
			return i;
		}
		var i = check(10);
		`, "i", "10")

		checkStatements(t, `
		fun fib(i) {
			if (i < 2) return i;
			return fib(i - 1) + fib(i - 2);
		}
		var f = fib(10);
		`, "f", "55")

		checkStatements(t, `
		fun count(i) {
			while (true) {
				i = i - 1;
				if (i < 0) {
					return i;
				}
			}
		}
		var f = count(10);
		`, "f", "-1")

		checkStatements(t, `
		fun count(i) {
			for (var n = 0; n < 1; n = n + 1) {
				return n;
			}
			return i;
		}
		var f = count(10);
		`, "f", "0")

		// Print function
		checkStatements(t, `
		fun ff() {}
		`, "ff", `"fun ff"`)

		// Functions are values
		checkStatements(t, `
		fun twice(f, x) { return f(f(x)); }
		fun inc(x) { return x + 1; }
		var r = twice(inc, 1);
		`, "r", "3")

		checkStatements(t, `
		fun f() {}
		var g = f;
		`, "f == g", "true")
	}

	// Closures
	{
		checkOutput(t, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				return i;
			}
			return count;
		}
		var a = makeCounter();
		var b = makeCounter();
		print a();
		print a();
		print b();
		print a();
		`, "[print] 1", "[print] 2", "[print] 1", "[print] 3")

		// A closure sees the variable declared where it was created
		checkOutput(t, `
		var a = "global";
		{
			fun showA() {
				print a;
			}
			showA();
			var a = "block";
			showA();
		}
		`, `[print] "global"`, `[print] "global"`)
	}

	// Classes
	{
		checkStatements(t, `
		class Pan {
			init() {
				this.pan = 1;
			}
		}`, "Pan().pan", "1")

		checkStatements(t, `class Pan {}`, "Pan", `"class Pan"`)
		checkStatements(t, `class Pan {}`, "Pan()", `"instance of Pan"`)

		// Fields can be added at any time
		checkStatements(t, `
		class Box {}
		var b = Box();
		b.content = "toy";
		`, "b.content", `"toy"`)

		// Fields shadow methods
		checkStatements(t, `
		class Box {
			content() { return "method"; }
		}
		var b = Box();
		b.content = "field";
		`, "b.content", `"field"`)

		// Bound methods remember their instance
		checkStatements(t, `
		class Person {
			init(name) { this.name = name; }
			greet() { return "hi " + this.name; }
		}
		var greet = Person("ana").greet;
		`, "greet()", `"hi ana"`)

		// init always yields the instance
		checkStatements(t, `
		class A {
			init() {
				this.a = 1;
				return;
			}
		}
		var a = A();
		`, "a.init()", `"instance of A"`)

		checkStatements(t, `
		class A {
			init() {
				return 1;
			}
		}
		`, "A()", `"instance of A"`)

		// Parent constructor
		checkStatements(t, `
		class Food {
			init() {
				this.msg = "good";
			}
		}
		class Pan < Food {
			init() {
				super.init();
			}
		}`, "Pan().msg", `"good"`)

		// Method inheritance
		checkStatements(t, `
		class Food {
			eat() {
				this.msg = "eating";
			}
		}
		class Pan < Food {}
		var bread = Pan();
		bread.eat();
		`, "bread.msg", `"eating"`)

		// Overrides and super
		checkOutput(t, `
		class A {
			hello() { return "A"; }
			name() { return this.n; }
		}
		class B < A {
			init() { this.n = "b"; }
			hello() { return "B" + super.hello(); }
			name() { return super.name(); }
		}
		class C < B {
			hello() { return "C" + super.hello(); }
		}
		print B().hello();
		print B().name();
		print C().hello();
		print C().name();
		`, `[print] "BA"`, `[print] "b"`, `[print] "CBA"`, `[print] "b"`)

		// super refers to the superclass of the class declaring the method
		checkStatements(t, `
		class A {
			method() { return "A"; }
		}
		class B < A {
			method() { return "B"; }
			test() { return super.method(); }
		}
		class C < B {}
		`, "C().test()", `"A"`)

		// A super method can be stored and called later
		checkStatements(t, `
		class A {
			name() { return this.n; }
		}
		class B < A {
			init() { this.n = "b"; }
			later() { return super.name; }
		}
		var f = B().later();
		`, "f()", `"b"`)

		// Instances are compared by identity
		checkStatements(t, `
		class A {}
		var a = A();
		var b = a;
		`, "a == b and a != A()", "true")
	}
}

func TestPrograms(t *testing.T) {
	// Execution goes on after a runtime error
	checkOutput(t, `
	print "a" + 1;
	print 2;
	`, runtimePrefix+errOperandsNumbersOrStrings.Error(), "[print] 2")

	// Failing calls leave the environment usable
	checkOutput(t, `
	var a = 1;
	fun fail() {
		var a = 2;
		return a + nil;
	}
	fail();
	print a;
	`, runtimePrefix+errOperandsNumbersOrStrings.Error(), "[print] 1")

	checkOutput(t, `
	class Node {
		init(value, next) {
			this.value = value;
			this.next = next;
		}
	}
	fun sum(list) {
		var total = 0;
		while (list != nil) {
			total = total + list.value;
			list = list.next;
		}
		return total;
	}
	print sum(Node(1, Node(2, Node(3, nil))));
	`, "[print] 6")
}

func TestSession(t *testing.T) {
	c := &Collector{}
	s := NewSession(c)

	if !s.Run("var a = 1; fun inc() { a = a + 1; return a; }") {
		t.Fatalf("Unexpected diagnostics: %v", c.Err())
	}
	s.Run("inc();")
	if s.Run("print b;") {
		t.Errorf("Undefined variable should fail")
	}
	s.Run("{ var local = 5; fun get() { return local; } print get() + inc(); }")
	if !c.HasMessage("[print] 8") {
		t.Errorf("Globals should survive between runs, got %v", c.Messages)
	}
}

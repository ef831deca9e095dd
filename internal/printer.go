package internal

import (
	"strings"
)

// astPrinter renders the AST as s-expressions, one statement per line
// with nested statements indented by four spaces
type astPrinter struct {
	indent int
}

// PrintAst renders stmts as s-expressions
func PrintAst(stmts []stmt) string {
	p := &astPrinter{}
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(p.stmt(s))
	}
	return b.String()
}

// PrintExpression renders a single expression as an s-expression
func PrintExpression(e expr) string {
	return (&astPrinter{}).expr(e)
}

func (p *astPrinter) stmt(s stmt) string {
	r, _ := s.accept(p)
	return r.(string)
}

func (p *astPrinter) expr(e expr) string {
	r, _ := e.accept(p)
	return r.(string)
}

func (p *astPrinter) pad() string {
	return strings.Repeat("    ", p.indent)
}

// nested renders stmts one level deeper
func (p *astPrinter) nested(stmts ...stmt) string {
	p.indent++
	defer func() {
		p.indent--
	}()
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(p.stmt(s))
	}
	return b.String()
}

func (p *astPrinter) parenthesize(name string, exprs ...expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteString(" ")
		b.WriteString(p.expr(e))
	}
	b.WriteString(")")
	return b.String()
}

func (p *astPrinter) visitExpressionStmt(stmt *expressionStmt) (R, error) {
	return p.pad() + p.parenthesize(";", stmt.expression) + "\n", nil
}

func (p *astPrinter) visitPrintStmt(stmt *printStmt) (R, error) {
	return p.pad() + p.parenthesize("print", stmt.expression) + "\n", nil
}

func (p *astPrinter) visitVarStmt(stmt *varStmt) (R, error) {
	init := ""
	if stmt.initializer != nil {
		init = " = " + p.expr(stmt.initializer)
	}
	return p.pad() + "(var " + stmt.name.Lexeme + init + ")\n", nil
}

func (p *astPrinter) visitBlockStmt(stmt *blockStmt) (R, error) {
	return p.pad() + "(block\n" + p.nested(stmt.statements...) + p.pad() + ")\n", nil
}

func (p *astPrinter) visitClassStmt(class *classStmt) (R, error) {
	superclass := ""
	if class.superclass != nil {
		superclass = " < " + p.expr(class.superclass)
	}
	methods := make([]stmt, len(class.methods))
	for i, m := range class.methods {
		methods[i] = m
	}
	return p.pad() + "(class " + class.name.Lexeme + superclass + "\n" + p.nested(methods...) + p.pad() + ")\n", nil
}

func (p *astPrinter) visitFunctionStmt(stmt *functionStmt) (R, error) {
	params := make([]string, len(stmt.function.params))
	for i, param := range stmt.function.params {
		params[i] = param.Lexeme
	}
	head := p.pad() + "(fun " + stmt.function.name.Lexeme + "(" + strings.Join(params, " ") + ")\n"
	return head + p.nested(stmt.function.body...) + p.pad() + ")\n", nil
}

func (p *astPrinter) visitIfStmt(st *ifStmt) (R, error) {
	name := "(if "
	branches := []stmt{st.thenBranch}
	if st.elseBranch != nil {
		name = "(if-else "
		branches = append(branches, st.elseBranch)
	}
	return p.pad() + name + p.expr(st.condition) + "\n" + p.nested(branches...) + p.pad() + ")\n", nil
}

func (p *astPrinter) visitReturnStmt(stmt *returnStmt) (R, error) {
	if stmt.value == nil {
		return p.pad() + "(return)\n", nil
	}
	return p.pad() + p.parenthesize("return", stmt.value) + "\n", nil
}

func (p *astPrinter) visitWhileStmt(stmt *whileStmt) (R, error) {
	return p.pad() + "(while " + p.expr(stmt.condition) + "\n" + p.nested(stmt.body) + p.pad() + ")\n", nil
}

func (p *astPrinter) visitAssignExpr(expr *assignExpr) (R, error) {
	return "(= " + expr.name.Lexeme + " " + p.expr(expr.value) + ")", nil
}

func (p *astPrinter) visitBinaryExpr(expr *binaryExpr) (R, error) {
	return p.parenthesize(expr.operator.Lexeme, expr.left, expr.right), nil
}

func (p *astPrinter) visitCallExpr(call *callExpr) (R, error) {
	return p.parenthesize("call", append([]expr{call.callee}, call.arguments...)...), nil
}

func (p *astPrinter) visitGetExpr(expr *getExpr) (R, error) {
	return "(" + p.expr(expr.object) + "." + expr.name.Lexeme + ")", nil
}

func (p *astPrinter) visitGroupingExpr(expr *groupingExpr) (R, error) {
	return p.parenthesize("group", expr.expression), nil
}

func (p *astPrinter) visitLiteralExpr(expr *literalExpr) (R, error) {
	switch v := expr.value.Literal.(type) {
	case loxString:
		return v.String(), nil
	case loxNil:
		return "Nil", nil
	case nil:
		return "None", nil
	default:
		return v.String(), nil
	}
}

func (p *astPrinter) visitLogicalExpr(expr *logicalExpr) (R, error) {
	return p.parenthesize(expr.operator.Lexeme, expr.left, expr.right), nil
}

func (p *astPrinter) visitSetExpr(expr *setExpr) (R, error) {
	return "(= " + p.expr(expr.object) + " " + expr.name.Lexeme + " " + p.expr(expr.value) + ")", nil
}

func (p *astPrinter) visitSuperExpr(expr *superExpr) (R, error) {
	return "(super " + expr.method.Lexeme + ")", nil
}

func (p *astPrinter) visitThisExpr(expr *thisExpr) (R, error) {
	return "this", nil
}

func (p *astPrinter) visitUnaryExpr(expr *unaryExpr) (R, error) {
	return p.parenthesize(expr.operator.Lexeme, expr.right), nil
}

func (p *astPrinter) visitVariableExpr(expr *variableExpr) (R, error) {
	return expr.name.Lexeme, nil
}

// sourcePrinter renders a parsed expression back as source text that
// parses to the same tree. Operands binding looser than their operator
// are already groupings in a parsed tree, so no parentheses are added.
type sourcePrinter struct{}

// PrintSource renders an expression as source
func PrintSource(e expr) string {
	r, _ := e.accept(sourcePrinter{})
	return r.(string)
}

func (p sourcePrinter) print(e expr) string {
	r, _ := e.accept(p)
	return r.(string)
}

func (p sourcePrinter) visitAssignExpr(expr *assignExpr) (R, error) {
	return expr.name.Lexeme + " = " + p.print(expr.value), nil
}

func (p sourcePrinter) visitBinaryExpr(expr *binaryExpr) (R, error) {
	return p.print(expr.left) + " " + expr.operator.Lexeme + " " + p.print(expr.right), nil
}

func (p sourcePrinter) visitCallExpr(expr *callExpr) (R, error) {
	args := make([]string, len(expr.arguments))
	for i, arg := range expr.arguments {
		args[i] = p.print(arg)
	}
	return p.print(expr.callee) + "(" + strings.Join(args, ", ") + ")", nil
}

func (p sourcePrinter) visitGetExpr(expr *getExpr) (R, error) {
	return p.print(expr.object) + "." + expr.name.Lexeme, nil
}

func (p sourcePrinter) visitGroupingExpr(expr *groupingExpr) (R, error) {
	return "(" + p.print(expr.expression) + ")", nil
}

func (p sourcePrinter) visitLiteralExpr(expr *literalExpr) (R, error) {
	switch v := expr.value.Literal.(type) {
	case loxString:
		return v.String(), nil
	case nil:
		return expr.value.Lexeme, nil
	default:
		return v.String(), nil
	}
}

func (p sourcePrinter) visitLogicalExpr(expr *logicalExpr) (R, error) {
	return p.print(expr.left) + " " + expr.operator.Lexeme + " " + p.print(expr.right), nil
}

func (p sourcePrinter) visitSetExpr(expr *setExpr) (R, error) {
	return p.print(expr.object) + "." + expr.name.Lexeme + " = " + p.print(expr.value), nil
}

func (p sourcePrinter) visitSuperExpr(expr *superExpr) (R, error) {
	return "super." + expr.method.Lexeme, nil
}

func (p sourcePrinter) visitThisExpr(expr *thisExpr) (R, error) {
	return "this", nil
}

func (p sourcePrinter) visitUnaryExpr(expr *unaryExpr) (R, error) {
	return expr.operator.Lexeme + p.print(expr.right), nil
}

func (p sourcePrinter) visitVariableExpr(expr *variableExpr) (R, error) {
	return expr.name.Lexeme, nil
}

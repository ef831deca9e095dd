package internal

// locals maps an expression to the number of frames between the frame
// active when it is evaluated and the frame declaring the name it uses.
// Expressions without an entry are looked up in the global frame.
type locals map[exprID]int

type functionType int

const (
	ftNone functionType = iota
	ftFunction
	ftMethod
	ftInitializer
)

type classType int

const (
	ctNone classType = iota
	ctClass
	ctSubclass
)

type resolver struct {
	reporter Reporter

	// innermost scope last, the global scope is never pushed.
	// A name maps to true once its initializer has been resolved.
	scopes []map[string]bool
	locals locals

	currentFunction functionType
	currentClass    classType
}

// Resolve computes the hop count of every local variable use in stmts
func Resolve(reporter Reporter, stmts []stmt) locals {
	l := make(locals)
	resolveInto(reporter, stmts, l)
	return l
}

// resolveInto adds the hop counts of stmts to l
func resolveInto(reporter Reporter, stmts []stmt, l locals) {
	r := &resolver{reporter: reporter, locals: l}
	for _, s := range stmts {
		r.resolveStmt(s)
	}
	logger.WithField("locals", len(l)).Debug("resolve finished")
}

func (r *resolver) resolveStmt(s stmt) {
	s.accept(r)
}

func (r *resolver) resolveExpr(e expr) {
	e.accept(r)
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) declare(name *Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.report(name, errAlreadyDeclared(name.Lexeme))
	}
	scope[name.Lexeme] = false
}

func (r *resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

func (r *resolver) resolveLocal(e expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[e.identity()] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) resolveFunction(function *functionDecl, kind functionType) {
	enclosing := r.currentFunction
	r.currentFunction = kind
	defer func() {
		r.currentFunction = enclosing
	}()

	r.beginScope()
	for _, param := range function.params {
		r.declare(param)
		r.define(param.Lexeme)
	}
	for _, s := range function.body {
		r.resolveStmt(s)
	}
	r.endScope()
}

func (r *resolver) report(at spanned, err error) {
	r.reporter.AddDiagnostic(at.start(), at.end(), err.Error())
}

func (r *resolver) visitExpressionStmt(stmt *expressionStmt) (R, error) {
	r.resolveExpr(stmt.expression)
	return nil, nil
}

func (r *resolver) visitPrintStmt(stmt *printStmt) (R, error) {
	r.resolveExpr(stmt.expression)
	return nil, nil
}

func (r *resolver) visitVarStmt(stmt *varStmt) (R, error) {
	r.declare(stmt.name)
	if stmt.initializer != nil {
		r.resolveExpr(stmt.initializer)
	}
	r.define(stmt.name.Lexeme)
	return nil, nil
}

func (r *resolver) visitBlockStmt(stmt *blockStmt) (R, error) {
	r.beginScope()
	for _, s := range stmt.statements {
		r.resolveStmt(s)
	}
	r.endScope()
	return nil, nil
}

// visitClassStmt opens a scope binding 'super' when there is a
// superclass, then a scope binding 'this' around the methods. The
// interpreter creates frames with the same nesting.
func (r *resolver) visitClassStmt(stmt *classStmt) (R, error) {
	enclosingClass := r.currentClass
	r.currentClass = ctClass
	defer func() {
		r.currentClass = enclosingClass
	}()

	r.declare(stmt.name)
	r.define(stmt.name.Lexeme)

	if stmt.superclass != nil {
		if stmt.superclass.name.Lexeme == stmt.name.Lexeme {
			r.report(stmt.superclass, errInheritSelf)
		} else {
			r.resolveExpr(stmt.superclass)
		}
		r.currentClass = ctSubclass
		r.beginScope()
		r.define("super")
	}

	r.beginScope()
	r.define("this")

	for _, method := range stmt.methods {
		kind := ftMethod
		if method.function.name.Lexeme == "init" {
			kind = ftInitializer
		}
		r.resolveFunction(method.function, kind)
	}

	r.endScope()

	if stmt.superclass != nil {
		r.endScope()
	}
	return nil, nil
}

func (r *resolver) visitFunctionStmt(stmt *functionStmt) (R, error) {
	r.declare(stmt.function.name)
	r.define(stmt.function.name.Lexeme)
	r.resolveFunction(stmt.function, ftFunction)
	return nil, nil
}

func (r *resolver) visitIfStmt(stmt *ifStmt) (R, error) {
	r.resolveExpr(stmt.condition)
	r.resolveStmt(stmt.thenBranch)
	if stmt.elseBranch != nil {
		r.resolveStmt(stmt.elseBranch)
	}
	return nil, nil
}

func (r *resolver) visitReturnStmt(stmt *returnStmt) (R, error) {
	if r.currentFunction == ftNone {
		r.report(stmt.keyword, errTopLevelReturn)
	}
	if stmt.value != nil {
		r.resolveExpr(stmt.value)
	}
	return nil, nil
}

func (r *resolver) visitWhileStmt(stmt *whileStmt) (R, error) {
	r.resolveExpr(stmt.condition)
	r.resolveStmt(stmt.body)
	return nil, nil
}

func (r *resolver) visitAssignExpr(expr *assignExpr) (R, error) {
	r.resolveExpr(expr.value)
	r.resolveLocal(expr, expr.name.Lexeme)
	return nil, nil
}

func (r *resolver) visitBinaryExpr(expr *binaryExpr) (R, error) {
	r.resolveExpr(expr.left)
	r.resolveExpr(expr.right)
	return nil, nil
}

func (r *resolver) visitCallExpr(expr *callExpr) (R, error) {
	r.resolveExpr(expr.callee)
	for _, arg := range expr.arguments {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *resolver) visitGetExpr(expr *getExpr) (R, error) {
	r.resolveExpr(expr.object)
	return nil, nil
}

func (r *resolver) visitGroupingExpr(expr *groupingExpr) (R, error) {
	r.resolveExpr(expr.expression)
	return nil, nil
}

func (r *resolver) visitLiteralExpr(expr *literalExpr) (R, error) {
	return nil, nil
}

func (r *resolver) visitLogicalExpr(expr *logicalExpr) (R, error) {
	r.resolveExpr(expr.left)
	r.resolveExpr(expr.right)
	return nil, nil
}

func (r *resolver) visitSetExpr(expr *setExpr) (R, error) {
	r.resolveExpr(expr.value)
	r.resolveExpr(expr.object)
	return nil, nil
}

func (r *resolver) visitSuperExpr(expr *superExpr) (R, error) {
	switch r.currentClass {
	case ctNone:
		r.report(expr.keyword, errSuperOutsideClass)
	case ctClass:
		r.report(expr.keyword, errSuperNoSuperclass)
	}
	r.resolveLocal(expr, "super")
	return nil, nil
}

// 'this' is resolved like any variable. Outside of a class it is left
// unresolved and fails when evaluated.
func (r *resolver) visitThisExpr(expr *thisExpr) (R, error) {
	r.resolveLocal(expr, "this")
	return nil, nil
}

func (r *resolver) visitUnaryExpr(expr *unaryExpr) (R, error) {
	r.resolveExpr(expr.right)
	return nil, nil
}

func (r *resolver) visitVariableExpr(expr *variableExpr) (R, error) {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][expr.name.Lexeme]; ok && !defined {
			r.report(expr.name, errReadInInitialiser)
		}
	}
	r.resolveLocal(expr, expr.name.Lexeme)
	return nil, nil
}

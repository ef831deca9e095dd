package internal

import (
	"github.com/sirupsen/logrus"
)

// unwind stops normal evaluation. It either carries the value of a
// return statement or a runtime error located at the failing node.
type unwind struct {
	returning bool
	value     value

	err error
	at  spanned
}

func (u *unwind) Error() string {
	if u.returning {
		return "return " + u.value.String()
	}
	return u.err.Error()
}

type exec struct {
	reporter Reporter

	arena  *envArena
	env    envID
	locals locals

	// last instance id handed out
	instances int
}

func newExec(reporter Reporter) *exec {
	e := &exec{
		reporter: reporter,
		arena:    newEnvArena(),
		env:      globalEnv,
		locals:   make(locals),
	}
	defineGlobals(e.arena)
	return e
}

// interpret runs every statement, a runtime error is reported and the
// next statement still runs
func (e *exec) interpret(stmts []stmt) {
	for _, s := range stmts {
		if _, err := s.accept(e); err != nil {
			e.report(err)
		}
	}
	logger.WithFields(logrus.Fields{
		"statements": len(stmts),
		"frames":     e.arena.live(),
	}).Debug("interpret finished")
}

func (e *exec) report(err error) {
	u, ok := err.(*unwind)
	if !ok {
		e.reporter.AddMessage(runtimePrefix + err.Error())
		return
	}
	if u.returning {
		return
	}
	e.reporter.AddDiagnostic(u.at.start(), u.at.end(), u.err.Error())
	e.reporter.AddMessage(runtimePrefix + u.err.Error())
}

func (e *exec) runtimeErr(at spanned, err error) error {
	return &unwind{err: err, at: at}
}

func (e *exec) evaluate(ex expr) (value, error) {
	r, err := ex.accept(e)
	if err != nil {
		return nil, err
	}
	return r.(value), nil
}

func (e *exec) executeBlock(stmts []stmt, env envID) error {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	for _, s := range stmts {
		if _, err := s.accept(e); err != nil {
			return err
		}
	}
	return nil
}

func (e *exec) lookUpVariable(name string, ex expr) (value, error) {
	if depth, ok := e.locals[ex.identity()]; ok {
		if v, ok := e.arena.getAt(e.env, depth, name); ok {
			return v, nil
		}
	} else if v, ok := e.arena.getAt(globalEnv, 0, name); ok {
		return v, nil
	}
	return nil, e.runtimeErr(ex, errUndefinedVar(name))
}

func (e *exec) visitExpressionStmt(stmt *expressionStmt) (R, error) {
	_, err := e.evaluate(stmt.expression)
	return nil, err
}

func (e *exec) visitPrintStmt(stmt *printStmt) (R, error) {
	v, err := e.evaluate(stmt.expression)
	if err != nil {
		return nil, err
	}
	e.reporter.AddMessage(printMessage(v))
	return nil, nil
}

func (e *exec) visitVarStmt(stmt *varStmt) (R, error) {
	var val value = loxNil{}
	if stmt.initializer != nil {
		v, err := e.evaluate(stmt.initializer)
		if err != nil {
			return nil, err
		}
		val = v
	}
	e.arena.define(e.env, stmt.name.Lexeme, val)
	return nil, nil
}

func (e *exec) visitBlockStmt(stmt *blockStmt) (R, error) {
	env := e.arena.push(e.env)
	err := e.executeBlock(stmt.statements, env)
	e.arena.release(env)
	return nil, err
}

// visitClassStmt binds 'super' in its own frame between the defining
// frame and the methods, matching the scopes opened by the resolver
func (e *exec) visitClassStmt(stmt *classStmt) (R, error) {
	var superclass *loxClass
	if stmt.superclass != nil {
		v, err := e.evaluate(stmt.superclass)
		if err != nil {
			return nil, err
		}
		class, ok := v.(*loxClass)
		if !ok {
			return nil, e.runtimeErr(stmt.superclass, errSuperclassNotClass)
		}
		superclass = class
	}

	e.arena.define(e.env, stmt.name.Lexeme, loxNil{})

	methodEnv := e.env
	if superclass != nil {
		methodEnv = e.arena.push(e.env)
		e.arena.define(methodEnv, "super", superclass)
	}
	e.arena.pin(methodEnv)

	methods := make(map[string]*loxFunction, len(stmt.methods))
	for _, method := range stmt.methods {
		name := method.function.name.Lexeme
		methods[name] = &loxFunction{
			declaration:   method.function,
			closure:       methodEnv,
			isInitializer: name == "init",
		}
	}

	class := newClass(stmt.name.Lexeme, superclass, methods)
	e.arena.assignAt(e.env, 0, stmt.name.Lexeme, class)
	return nil, nil
}

func (e *exec) visitFunctionStmt(stmt *functionStmt) (R, error) {
	e.arena.pin(e.env)
	e.arena.define(e.env, stmt.function.name.Lexeme, &loxFunction{
		declaration:   stmt.function,
		closure:       e.env,
		isInitializer: false,
	})
	return nil, nil
}

func (e *exec) visitIfStmt(stmt *ifStmt) (R, error) {
	cond, err := e.evaluate(stmt.condition)
	if err != nil {
		return nil, err
	}
	if truthy(cond) {
		return stmt.thenBranch.accept(e)
	}
	if stmt.elseBranch != nil {
		return stmt.elseBranch.accept(e)
	}
	return nil, nil
}

func (e *exec) visitReturnStmt(stmt *returnStmt) (R, error) {
	var val value = loxNil{}
	if stmt.value != nil {
		v, err := e.evaluate(stmt.value)
		if err != nil {
			return nil, err
		}
		val = v
	}
	return nil, &unwind{returning: true, value: val}
}

func (e *exec) visitWhileStmt(stmt *whileStmt) (R, error) {
	for {
		cond, err := e.evaluate(stmt.condition)
		if err != nil {
			return nil, err
		}
		if !truthy(cond) {
			return nil, nil
		}
		if _, err := stmt.body.accept(e); err != nil {
			return nil, err
		}
	}
}

func (e *exec) visitAssignExpr(expr *assignExpr) (R, error) {
	val, err := e.evaluate(expr.value)
	if err != nil {
		return nil, err
	}
	name := expr.name.Lexeme
	if depth, ok := e.locals[expr.id]; ok {
		if e.arena.assignAt(e.env, depth, name, val) {
			return val, nil
		}
	} else if e.arena.assignAt(globalEnv, 0, name, val) {
		return val, nil
	}
	return nil, e.runtimeErr(expr.name, errUndefinedVar(name))
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) (R, error) {
	left, err := e.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}

	switch expr.operator.Type {
	case tkPlus:
		if sum, ok := add(left, right); ok {
			return sum, nil
		}
		return nil, e.runtimeErr(expr, errOperandsNumbersOrStrings)
	case tkEqualEqual:
		return loxBool(valuesEqual(left, right)), nil
	case tkBangEqual:
		return loxBool(!valuesEqual(left, right)), nil
	}

	apply := numericOperators[expr.operator.Type]
	l, lok := left.(loxNumber)
	r, rok := right.(loxNumber)
	if apply == nil || !lok || !rok {
		return nil, e.runtimeErr(expr, errOperandNumber)
	}
	return apply(float64(l), float64(r)), nil
}

func (e *exec) visitCallExpr(expr *callExpr) (R, error) {
	callee, transient, err := e.callee(expr.callee)
	if err != nil {
		return nil, err
	}
	if transient != noEnv {
		defer e.arena.release(transient)
	}

	arguments := make([]value, len(expr.arguments))
	for i, arg := range expr.arguments {
		v, err := e.evaluate(arg)
		if err != nil {
			return nil, err
		}
		arguments[i] = v
	}

	return e.call(expr, callee, arguments)
}

// callee evaluates the callee of a call. A method called right away is
// bound in a frame that is not pinned, its id is returned so the caller
// can release it once the call is over.
func (e *exec) callee(ex expr) (value, envID, error) {
	switch callee := ex.(type) {
	case *getExpr:
		obj, err := e.evaluate(callee.object)
		if err != nil {
			return nil, noEnv, err
		}
		instance, ok := obj.(*loxInstance)
		if !ok {
			return nil, noEnv, e.runtimeErr(callee, errOnlyInstances)
		}
		if field, ok := instance.fields[callee.name.Lexeme]; ok {
			return field, noEnv, nil
		}
		method := instance.class.findMethod(callee.name.Lexeme)
		if method == nil {
			return nil, noEnv, e.runtimeErr(callee, errUndefinedProp(callee.name.Lexeme))
		}
		bound := method.bind(e.arena, instance, false)
		return bound, bound.closure, nil
	case *superExpr:
		method, instance, err := e.superMethod(callee)
		if err != nil {
			return nil, noEnv, err
		}
		bound := method.bind(e.arena, instance, false)
		return bound, bound.closure, nil
	}
	v, err := e.evaluate(ex)
	return v, noEnv, err
}

func (e *exec) call(expr *callExpr, callee value, arguments []value) (value, error) {
	type callable interface {
		arity() int
	}
	fn, ok := callee.(callable)
	if !ok {
		return nil, e.runtimeErr(expr, errNotCallable)
	}
	if fn.arity() != len(arguments) {
		return nil, e.runtimeErr(expr, errArity(fn.arity(), len(arguments)))
	}

	switch fn := callee.(type) {
	case *loxFunction:
		return fn.call(e, arguments)
	case *nativeFn:
		v, err := fn.callFn(arguments)
		if err != nil {
			return nil, e.runtimeErr(expr, err)
		}
		return v, nil
	case *loxClass:
		return fn.instantiate(e, arguments)
	}
	return nil, e.runtimeErr(expr, errNotCallable)
}

func (e *exec) visitGetExpr(expr *getExpr) (R, error) {
	obj, err := e.evaluate(expr.object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*loxInstance)
	if !ok {
		return nil, e.runtimeErr(expr, errOnlyInstances)
	}
	v, ok := instance.get(e.arena, expr.name.Lexeme)
	if !ok {
		return nil, e.runtimeErr(expr, errUndefinedProp(expr.name.Lexeme))
	}
	return v, nil
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) (R, error) {
	return e.evaluate(expr.expression)
}

func (e *exec) visitLiteralExpr(expr *literalExpr) (R, error) {
	if expr.value.Literal == nil {
		return loxNil{}, nil
	}
	return expr.value.Literal, nil
}

func (e *exec) visitLogicalExpr(expr *logicalExpr) (R, error) {
	left, err := e.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	if expr.operator.Type == tkOr {
		if truthy(left) {
			return left, nil
		}
	} else if !truthy(left) {
		return left, nil
	}
	return e.evaluate(expr.right)
}

func (e *exec) visitSetExpr(expr *setExpr) (R, error) {
	obj, err := e.evaluate(expr.object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*loxInstance)
	if !ok {
		return nil, e.runtimeErr(expr, errOnlyInstances)
	}
	val, err := e.evaluate(expr.value)
	if err != nil {
		return nil, err
	}
	instance.set(expr.name.Lexeme, val)
	return val, nil
}

// superMethod finds the method on the superclass bound by the enclosing
// class declaration, and the instance 'this' refers to one frame below it
func (e *exec) superMethod(expr *superExpr) (*loxFunction, *loxInstance, error) {
	depth, ok := e.locals[expr.id]
	if !ok {
		return nil, nil, e.runtimeErr(expr, errSuperOutsideClass)
	}
	sv, _ := e.arena.getAt(e.env, depth, "super")
	superclass, ok := sv.(*loxClass)
	if !ok {
		return nil, nil, e.runtimeErr(expr, errSuperOutsideClass)
	}
	tv, _ := e.arena.getAt(e.env, depth-1, "this")
	instance, ok := tv.(*loxInstance)
	if !ok {
		return nil, nil, e.runtimeErr(expr, errThisOutsideClass)
	}
	method := superclass.findMethod(expr.method.Lexeme)
	if method == nil {
		return nil, nil, e.runtimeErr(expr, errUndefinedProp(expr.method.Lexeme))
	}
	return method, instance, nil
}

func (e *exec) visitSuperExpr(expr *superExpr) (R, error) {
	method, instance, err := e.superMethod(expr)
	if err != nil {
		return nil, err
	}
	return method.bind(e.arena, instance, true), nil
}

func (e *exec) visitThisExpr(expr *thisExpr) (R, error) {
	if _, ok := e.locals[expr.id]; !ok {
		return nil, e.runtimeErr(expr, errThisOutsideClass)
	}
	return e.lookUpVariable("this", expr)
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) (R, error) {
	right, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	switch expr.operator.Type {
	case tkMinus:
		n, ok := right.(loxNumber)
		if !ok {
			return nil, e.runtimeErr(expr, errOperandNumber)
		}
		return -n, nil
	case tkBang:
		return loxBool(!truthy(right)), nil
	}
	return nil, e.runtimeErr(expr, errOperandNumber)
}

func (e *exec) visitVariableExpr(expr *variableExpr) (R, error) {
	return e.lookUpVariable(expr.name.Lexeme, expr)
}

package internal

type loxFunction struct {
	declaration   *functionDecl
	closure       envID
	isInitializer bool
}

type nativeFn struct {
	name       string
	arityValue int
	callFn     func(arguments []value) (value, error)
}

func (*loxFunction) isValue() {}
func (*nativeFn) isValue()    {}

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) String() string {
	return `"native fun ` + n.name + `"`
}

func (f *loxFunction) arity() int {
	return f.declaration.arity()
}

// call runs the body in a new frame enclosed by the closure. Initializers
// always yield the bound instance.
func (f *loxFunction) call(e *exec, arguments []value) (value, error) {
	env := e.arena.push(f.closure)
	for i, param := range f.declaration.params {
		e.arena.define(env, param.Lexeme, arguments[i])
	}

	err := e.executeBlock(f.declaration.body, env)
	e.arena.release(env)

	if err != nil {
		u, isUnwind := err.(*unwind)
		if !isUnwind || !u.returning {
			return nil, err
		}
		if !f.isInitializer {
			return u.value, nil
		}
	}

	if f.isInitializer {
		this, _ := e.arena.getAt(f.closure, 0, "this")
		return this, nil
	}
	return loxNil{}, nil
}

// bind returns the method with 'this' set to instance. Pinned bindings
// may outlive the call, the others must be released by the caller.
func (f *loxFunction) bind(arena *envArena, instance *loxInstance, pinned bool) *loxFunction {
	env := arena.push(f.closure)
	arena.define(env, "this", instance)
	if pinned {
		arena.pin(env)
	}
	return &loxFunction{
		declaration:   f.declaration,
		closure:       env,
		isInitializer: f.isInitializer,
	}
}

func (f *loxFunction) String() string {
	return `"fun ` + f.declaration.name.Lexeme + `"`
}

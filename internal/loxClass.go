package internal

// loxClass is immutable once built. Methods inherited from the
// superclass are copied in when the class is declared, so lookups never
// walk an ancestor chain.
type loxClass struct {
	name    string
	methods map[string]*loxFunction
}

func (*loxClass) isValue() {}

func newClass(name string, superclass *loxClass, methods map[string]*loxFunction) *loxClass {
	all := make(map[string]*loxFunction, len(methods))
	if superclass != nil {
		for name, method := range superclass.methods {
			all[name] = method
		}
	}
	for name, method := range methods {
		all[name] = method
	}
	return &loxClass{name: name, methods: all}
}

func (c *loxClass) findMethod(name string) *loxFunction {
	return c.methods[name]
}

func (c *loxClass) arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.arity()
	}
	return 0
}

// instantiate creates an instance and runs init on it when there is one.
// The result is always the instance.
func (c *loxClass) instantiate(e *exec, arguments []value) (value, error) {
	e.instances++
	obj := &loxInstance{
		id:     e.instances,
		class:  c,
		fields: make(map[string]value),
	}
	if init := c.findMethod("init"); init != nil {
		bound := init.bind(e.arena, obj, false)
		_, err := bound.call(e, arguments)
		e.arena.release(bound.closure)
		if err != nil {
			return nil, err
		}
	}
	return obj, nil
}

func (c *loxClass) String() string {
	return `"class ` + c.name + `"`
}

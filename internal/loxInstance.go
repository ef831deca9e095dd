package internal

type loxInstance struct {
	id     int
	class  *loxClass
	fields map[string]value
}

func (*loxInstance) isValue() {}

// get returns a field, or a method bound to o when no field has that name
func (o *loxInstance) get(arena *envArena, name string) (value, bool) {
	if val, ok := o.fields[name]; ok {
		return val, true
	}
	if method := o.class.findMethod(name); method != nil {
		return method.bind(arena, o, true), true
	}
	return nil, false
}

func (o *loxInstance) set(name string, value value) {
	o.fields[name] = value
}

func (o *loxInstance) String() string {
	return `"instance of ` + o.class.name + `"`
}

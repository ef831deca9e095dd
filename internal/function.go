package internal

// functionDecl is shared by every closure created from the same declaration
type functionDecl struct {
	name   *Token
	params []*Token
	body   []stmt
	rbrace *Token
}

func (f *functionDecl) arity() int {
	return len(f.params)
}

func (f *functionDecl) start() Location {
	return f.name.Start
}

func (f *functionDecl) end() Location {
	if f.rbrace != nil {
		return f.rbrace.End
	}
	if len(f.body) > 0 {
		return f.body[len(f.body)-1].end()
	}
	return f.name.End
}

package internal

import (
	"sort"
)

// CompletionKind tells what kind of member a completion item is
type CompletionKind int

const (
	// CompletionMethod is a method declared by the class or an ancestor
	CompletionMethod CompletionKind = iota
	// CompletionProperty is a field assigned through 'this' in a method
	CompletionProperty
)

func (k CompletionKind) String() string {
	if k == CompletionMethod {
		return "method"
	}
	return "property"
}

// CompletionItem is a member that can be completed at a position
type CompletionItem struct {
	Name string
	Kind CompletionKind
}

// Definition returns the tokens declaring the identifier, method or
// property found at pos
func Definition(stmts []stmt, pos Location) []Token {
	w := newToolWalker(pos, false)
	w.stmts(stmts)
	return w.definitions
}

// Completion returns the members that can follow the '.' at pos:
// methods first, then properties, each sorted by name
func Completion(stmts []stmt, pos Location) []CompletionItem {
	w := newToolWalker(pos, true)
	w.stmts(stmts)
	return w.completions
}

// DefinitionAt parses source and returns the definitions found at pos
func DefinitionAt(source string, pos Location) []Token {
	return Definition(Ast(&Collector{}, source), pos)
}

// CompletionAt parses source and returns the completions found at pos
func CompletionAt(source string, pos Location) []CompletionItem {
	return Completion(Ast(&Collector{}, source), pos)
}

type toolClass struct {
	name       *Token
	superclass string
	methods    map[string]*Token
	properties map[string]*Token
}

type toolScope struct {
	identifiers map[string]*Token
	// class name of variables initialised with a constructor call
	types   map[string]string
	classes map[string]*toolClass
}

// toolWalker is a scope walk much simpler than the resolver: it only
// tracks declarations by name to answer position queries
type toolWalker struct {
	pos        Location
	completing bool

	scopes       []*toolScope
	currentClass *toolClass

	definitions []Token
	completions []CompletionItem
}

func newToolWalker(pos Location, completing bool) *toolWalker {
	w := &toolWalker{pos: pos, completing: completing}
	w.begin()
	return w
}

func (w *toolWalker) begin() {
	w.scopes = append(w.scopes, &toolScope{
		identifiers: make(map[string]*Token),
		types:       make(map[string]string),
		classes:     make(map[string]*toolClass),
	})
}

func (w *toolWalker) end() {
	w.scopes = w.scopes[:len(w.scopes)-1]
}

func (w *toolWalker) top() *toolScope {
	return w.scopes[len(w.scopes)-1]
}

func (w *toolWalker) find(name string) *Token {
	for i := len(w.scopes) - 1; i >= 0; i-- {
		if tok, ok := w.scopes[i].identifiers[name]; ok {
			return tok
		}
		if class, ok := w.scopes[i].classes[name]; ok {
			return class.name
		}
	}
	return nil
}

func (w *toolWalker) findClass(name string) *toolClass {
	for i := len(w.scopes) - 1; i >= 0; i-- {
		if class, ok := w.scopes[i].classes[name]; ok {
			return class
		}
	}
	return nil
}

func (w *toolWalker) findType(name string) string {
	for i := len(w.scopes) - 1; i >= 0; i-- {
		if t, ok := w.scopes[i].types[name]; ok {
			return t
		}
	}
	return ""
}

// ancestors returns class followed by its superclasses, stopping at the
// first one that is unknown or already seen
func (w *toolWalker) ancestors(class *toolClass) []*toolClass {
	var chain []*toolClass
	seen := make(map[*toolClass]bool)
	for class != nil && !seen[class] {
		seen[class] = true
		chain = append(chain, class)
		if class.superclass == "" {
			break
		}
		class = w.findClass(class.superclass)
	}
	return chain
}

func (w *toolWalker) stmts(stmts []stmt) {
	for _, s := range stmts {
		w.stmt(s)
	}
}

func (w *toolWalker) stmt(s stmt) {
	switch s := s.(type) {
	case *blockStmt:
		w.begin()
		w.stmts(s.statements)
		w.end()
	case *classStmt:
		w.class(s)
	case *expressionStmt:
		w.expr(s.expression)
	case *functionStmt:
		w.top().identifiers[s.function.name.Lexeme] = s.function.name
		w.function(s.function)
	case *ifStmt:
		w.expr(s.condition)
		w.stmt(s.thenBranch)
		if s.elseBranch != nil {
			w.stmt(s.elseBranch)
		}
	case *printStmt:
		w.expr(s.expression)
	case *returnStmt:
		if s.value != nil {
			w.expr(s.value)
		}
	case *varStmt:
		w.top().identifiers[s.name.Lexeme] = s.name
		if s.initializer != nil {
			if call, ok := s.initializer.(*callExpr); ok {
				if callee, ok := call.callee.(*variableExpr); ok && w.findClass(callee.name.Lexeme) != nil {
					w.top().types[s.name.Lexeme] = callee.name.Lexeme
				}
			}
			w.expr(s.initializer)
		}
	case *whileStmt:
		w.expr(s.condition)
		w.stmt(s.body)
	}
}

func (w *toolWalker) class(s *classStmt) {
	class := &toolClass{
		name:       s.name,
		methods:    make(map[string]*Token),
		properties: make(map[string]*Token),
	}
	if s.superclass != nil {
		class.superclass = s.superclass.name.Lexeme
	}
	for _, method := range s.methods {
		class.methods[method.function.name.Lexeme] = method.function.name
		collectProperties(method.function.body, class.properties)
	}
	w.top().classes[s.name.Lexeme] = class

	enclosing := w.currentClass
	w.currentClass = class
	defer func() {
		w.currentClass = enclosing
	}()

	if s.superclass != nil {
		w.expr(s.superclass)
		w.begin()
	}
	w.begin()
	for _, method := range s.methods {
		w.function(method.function)
	}
	w.end()
	if s.superclass != nil {
		w.end()
	}
}

func (w *toolWalker) function(f *functionDecl) {
	w.begin()
	for _, param := range f.params {
		w.top().identifiers[param.Lexeme] = param
	}
	w.stmts(f.body)
	w.end()
}

func (w *toolWalker) expr(e expr) {
	switch e := e.(type) {
	case *assignExpr:
		w.expr(e.value)
		w.local(e.name)
	case *binaryExpr:
		w.expr(e.left)
		w.expr(e.right)
	case *callExpr:
		w.expr(e.callee)
		for _, arg := range e.arguments {
			w.expr(arg)
		}
	case *getExpr:
		if contains(e.name, w.pos) {
			w.member(w.classOf(e.object), e.name)
		} else {
			w.expr(e.object)
		}
	case *groupingExpr:
		w.expr(e.expression)
	case *logicalExpr:
		w.expr(e.left)
		w.expr(e.right)
	case *setExpr:
		w.expr(e.object)
		if contains(e.name, w.pos) {
			w.member(w.classOf(e.object), e.name)
		}
		w.expr(e.value)
	case *superExpr:
		if contains(e.method, w.pos) && w.currentClass != nil && w.currentClass.superclass != "" {
			w.member(w.findClass(w.currentClass.superclass), e.method)
		}
	case *unaryExpr:
		w.expr(e.right)
	case *variableExpr:
		w.local(e.name)
	}
}

func (w *toolWalker) local(name *Token) {
	if w.completing || !contains(name, w.pos) {
		return
	}
	if tok := w.find(name.Lexeme); tok != nil {
		w.definitions = append(w.definitions, *tok)
	}
}

// classOf guesses the class of the object of a member access
func (w *toolWalker) classOf(object expr) *toolClass {
	switch object := object.(type) {
	case *variableExpr:
		if t := w.findType(object.name.Lexeme); t != "" {
			return w.findClass(t)
		}
	case *callExpr:
		if callee, ok := object.callee.(*variableExpr); ok {
			return w.findClass(callee.name.Lexeme)
		}
	case *thisExpr:
		return w.currentClass
	}
	return nil
}

func (w *toolWalker) member(class *toolClass, name *Token) {
	if class == nil {
		return
	}
	if w.completing {
		w.complete(class, w.prefix(name))
		return
	}
	for _, c := range w.ancestors(class) {
		if tok, ok := c.methods[name.Lexeme]; ok {
			w.definitions = append(w.definitions, *tok)
			return
		}
		if tok, ok := c.properties[name.Lexeme]; ok {
			w.definitions = append(w.definitions, *tok)
			return
		}
	}
}

// prefix is the part of name typed before the cursor
func (w *toolWalker) prefix(name *Token) string {
	runes := []rune(name.Lexeme)
	if name.Start.Line != w.pos.Line {
		return string(runes)
	}
	n := w.pos.Column - name.Start.Column
	if n < 0 {
		n = 0
	}
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:n])
}

func (w *toolWalker) complete(class *toolClass, prefix string) {
	kinds := make(map[string]CompletionKind)
	for _, c := range w.ancestors(class) {
		for name := range c.properties {
			if _, ok := kinds[name]; !ok {
				kinds[name] = CompletionProperty
			}
		}
	}
	for _, c := range w.ancestors(class) {
		for name := range c.methods {
			kinds[name] = CompletionMethod
		}
	}

	items := make([]CompletionItem, 0, len(kinds))
	for name, kind := range kinds {
		if len(name) >= len(prefix) && name[:len(prefix)] == prefix {
			items = append(items, CompletionItem{Name: name, Kind: kind})
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Kind != items[j].Kind {
			return items[i].Kind < items[j].Kind
		}
		return items[i].Name < items[j].Name
	})
	w.completions = items
}

// collectProperties records the first assignment of every 'this.name'
// in stmts. Nested classes have their own 'this' and are skipped.
func collectProperties(stmts []stmt, properties map[string]*Token) {
	inspect(stmts, func(e expr) {
		set, ok := e.(*setExpr)
		if !ok {
			return
		}
		if _, isThis := set.object.(*thisExpr); !isThis {
			return
		}
		if _, seen := properties[set.name.Lexeme]; !seen && set.name.Lexeme != "" {
			properties[set.name.Lexeme] = set.name
		}
	})
}

// inspect calls fn for every expression in stmts, depth first
func inspect(stmts []stmt, fn func(expr)) {
	var walkExpr func(e expr)
	walkExpr = func(e expr) {
		if e == nil {
			return
		}
		fn(e)
		switch e := e.(type) {
		case *assignExpr:
			walkExpr(e.value)
		case *binaryExpr:
			walkExpr(e.left)
			walkExpr(e.right)
		case *callExpr:
			walkExpr(e.callee)
			for _, arg := range e.arguments {
				walkExpr(arg)
			}
		case *getExpr:
			walkExpr(e.object)
		case *groupingExpr:
			walkExpr(e.expression)
		case *logicalExpr:
			walkExpr(e.left)
			walkExpr(e.right)
		case *setExpr:
			walkExpr(e.object)
			walkExpr(e.value)
		case *unaryExpr:
			walkExpr(e.right)
		}
	}

	var walkStmt func(s stmt)
	walkStmt = func(s stmt) {
		switch s := s.(type) {
		case *blockStmt:
			for _, st := range s.statements {
				walkStmt(st)
			}
		case *expressionStmt:
			walkExpr(s.expression)
		case *functionStmt:
			for _, st := range s.function.body {
				walkStmt(st)
			}
		case *ifStmt:
			walkExpr(s.condition)
			walkStmt(s.thenBranch)
			if s.elseBranch != nil {
				walkStmt(s.elseBranch)
			}
		case *printStmt:
			walkExpr(s.expression)
		case *returnStmt:
			walkExpr(s.value)
		case *varStmt:
			walkExpr(s.initializer)
		case *whileStmt:
			walkExpr(s.condition)
			walkStmt(s.body)
		}
	}

	for _, s := range stmts {
		walkStmt(s)
	}
}

package internal

const maxFunctionParams = 255

// idGen mints expression identities. One generator is owned by each
// parse (or by a Session, so ids stay unique across REPL lines).
type idGen struct {
	last exprID
}

func (g *idGen) mint() exprID {
	g.last++
	return g.last
}

// parseError aborts the production being parsed, it is recovered at
// statement level (or by ParseExpression)
type parseError struct {
	err error
}

// parser stores parser data
type parser struct {
	tokens  []Token
	current int

	ids      *idGen
	reporter Reporter

	// tolerant parsing accepts missing ';' and dangling '.' for tooling
	tolerant bool
}

func newParser(reporter Reporter, tokens []Token, ids *idGen) *parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != tkEOF {
		var eof Token
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			eof = Token{Type: tkEOF, Start: last.End, End: last.End}
		} else {
			eof = Token{Type: tkEOF}
		}
		tokens = append(tokens[:len(tokens):len(tokens)], eof)
	}
	return &parser{
		tokens:   tokens,
		ids:      ids,
		reporter: reporter,
	}
}

// Parse parses a list of statements. Statements that fail to parse are
// reported and left out of the result.
func Parse(reporter Reporter, tokens []Token) []stmt {
	return parse(reporter, tokens, &idGen{}, false)
}

// ParseExpression parses a single expression spanning all of tokens, it
// returns nil on error
func ParseExpression(reporter Reporter, tokens []Token) (result expr) {
	p := newParser(reporter, tokens, &idGen{})
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			result = nil
		}
	}()
	e := p.expression()
	if !p.isAtEnd() {
		// report at the first token left over
		p.advance()
		p.fail(errExpectedEndOfExpr)
	}
	return e
}

func parseTolerant(reporter Reporter, tokens []Token) []stmt {
	return parse(reporter, tokens, &idGen{}, true)
}

func parse(reporter Reporter, tokens []Token, ids *idGen, tolerant bool) []stmt {
	p := newParser(reporter, tokens, ids)
	p.tolerant = tolerant
	stmts := make([]stmt, 0)
	for !p.isAtEnd() {
		if st := p.parseStmt(); st != nil {
			stmts = append(stmts, st)
		}
	}
	logger.WithField("statements", len(stmts)).Debug("parse finished")
	return stmts
}

func (p *parser) parseStmt() (st stmt) {
	from := p.current
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize(from)
			st = nil
		}
	}()
	return p.declaration()
}

func (p *parser) declaration() stmt {
	if p.match(tkClass) {
		return p.class()
	}
	if p.match(tkFun) {
		return &functionStmt{function: p.function()}
	}
	if p.match(tkVar) {
		return p.varDecl()
	}
	return p.statement()
}

func (p *parser) class() stmt {
	name := p.consume(tkIdentifier, errExpectedClassName)

	var superclass *variableExpr
	if p.match(tkLess) {
		class := p.consume(tkIdentifier, errExpectedSuperclassName)
		superclass = &variableExpr{
			id:   p.ids.mint(),
			name: class,
		}
	}

	p.consume(tkLeftBrace, errExpectedClassBody)

	var methods []*functionStmt
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		methods = append(methods, &functionStmt{function: p.function()})
	}

	rbrace := p.consume(tkRightBrace, errUnclosedClassBody)

	return &classStmt{
		name:       name,
		superclass: superclass,
		methods:    methods,
		rbrace:     rbrace,
	}
}

func (p *parser) function() *functionDecl {
	name := p.consume(tkIdentifier, errExpectedFunctionName)

	p.consume(tkLeftParen, errExpectedParenFunction)

	var params []*Token
	if !p.check(tkRightParen) {
		for {
			if len(params) >= maxFunctionParams {
				p.report(errMaxParameters)
			}
			params = append(params, p.consume(tkIdentifier, errExpectedParamName))
			if !p.match(tkComma) {
				break
			}
		}
	}
	p.consume(tkRightParen, errUnclosedParams)

	p.consume(tkLeftBrace, errExpectedFunctionBody)
	body, rbrace := p.block()

	return &functionDecl{
		name:   name,
		params: params,
		body:   body,
		rbrace: rbrace,
	}
}

func (p *parser) varDecl() stmt {
	name := p.consume(tkIdentifier, errExpectedVarName)

	var init expr
	if p.match(tkEqual) {
		init = p.expression()
	}
	p.terminate(errExpectedSemicolonVar)

	return &varStmt{
		name:        name,
		initializer: init,
	}
}

func (p *parser) statement() stmt {
	if p.match(tkFor) {
		return p.forLoop()
	}
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkPrint) {
		return p.printStmt()
	}
	if p.match(tkReturn) {
		return p.ret()
	}
	if p.match(tkWhile) {
		return p.while()
	}
	if p.match(tkLeftBrace) {
		lbrace := p.previous()
		stmts, rbrace := p.block()
		return &blockStmt{lbrace: lbrace, statements: stmts, rbrace: rbrace}
	}
	return p.expressionStmt()
}

// forLoop desugars into an optional initializer block around a while loop
func (p *parser) forLoop() stmt {
	keyword := p.previous()
	p.consume(tkLeftParen, errExpectedParenFor)

	var init stmt
	if p.match(tkSemicolon) {
		init = nil
	} else if p.match(tkVar) {
		init = p.varDecl()
	} else {
		init = p.expressionStmt()
	}

	var cond expr
	if !p.check(tkSemicolon) {
		cond = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolonFor)

	var inc expr
	if !p.check(tkRightParen) {
		inc = p.expression()
	}
	p.consume(tkRightParen, errUnclosedParenFor)

	body := p.statement()

	if inc != nil {
		body = &blockStmt{statements: []stmt{body, &expressionStmt{expression: inc}}}
	}
	if cond == nil {
		cond = &literalExpr{
			id: p.ids.mint(),
			value: &Token{
				Type:    tkTrue,
				Lexeme:  "true",
				Literal: loxBool(true),
				Start:   keyword.Start,
				End:     keyword.End,
			},
		}
	}
	body = &whileStmt{keyword: keyword, condition: cond, body: body}
	if init != nil {
		body = &blockStmt{statements: []stmt{init, body}}
	}
	return body
}

func (p *parser) ifStmt() stmt {
	st := &ifStmt{
		keyword: p.previous(),
	}

	p.consume(tkLeftParen, errExpectedParenIf)
	st.condition = p.expression()
	p.consume(tkRightParen, errUnclosedParenIf)

	st.thenBranch = p.statement()
	if p.match(tkElse) {
		st.elseBranch = p.statement()
	}

	return st
}

func (p *parser) printStmt() stmt {
	keyword := p.previous()
	value := p.expression()
	p.terminate(errExpectedSemicolonValue)
	return &printStmt{
		keyword:    keyword,
		expression: value,
	}
}

func (p *parser) ret() stmt {
	var value expr
	keyword := p.previous()
	if !p.check(tkSemicolon) {
		value = p.expression()
	}
	p.terminate(errExpectedSemicolonReturn)
	return &returnStmt{
		keyword: keyword,
		value:   value,
	}
}

func (p *parser) while() stmt {
	keyword := p.previous()
	p.consume(tkLeftParen, errExpectedParenWhile)
	cond := p.expression()
	p.consume(tkRightParen, errUnclosedParenWhile)
	body := p.statement()
	return &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}
}

// block parses declarations up to the closing brace, the opening one
// has already been consumed
func (p *parser) block() ([]stmt, *Token) {
	stmts := make([]stmt, 0)
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	rbrace := p.consume(tkRightBrace, errUnclosedBlock)
	return stmts, rbrace
}

func (p *parser) expressionStmt() stmt {
	expr := p.expression()
	p.terminate(errExpectedSemicolonExpr)
	return &expressionStmt{expression: expr}
}

func (p *parser) expression() expr {
	return p.assignment()
}

func (p *parser) assignment() expr {
	expr := p.or()
	if p.match(tkEqual) {
		value := p.assignment()

		if variable, isVar := expr.(*variableExpr); isVar {
			return &assignExpr{
				id:    p.ids.mint(),
				name:  variable.name,
				value: value,
			}
		} else if get, isGet := expr.(*getExpr); isGet {
			return &setExpr{
				id:     p.ids.mint(),
				object: get.object,
				name:   get.name,
				value:  value,
			}
		}

		p.report(errInvalidAssignment)
	}
	return expr
}

func (p *parser) or() expr {
	expr := p.and()
	for p.match(tkOr) {
		operator := p.previous()
		right := p.and()
		expr = &logicalExpr{
			id:       p.ids.mint(),
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) and() expr {
	expr := p.equality()
	for p.match(tkAnd) {
		operator := p.previous()
		right := p.equality()
		expr = &logicalExpr{
			id:       p.ids.mint(),
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) equality() expr {
	return p.binary(p.comparison, tkEqualEqual, tkBangEqual)
}

func (p *parser) comparison() expr {
	return p.binary(p.term, tkGreater, tkGreaterEqual, tkLess, tkLessEqual)
}

func (p *parser) term() expr {
	return p.binary(p.factor, tkPlus, tkMinus)
}

func (p *parser) factor() expr {
	return p.binary(p.unary, tkSlash, tkStar)
}

// binary parses a left associative chain of operands produced by next
func (p *parser) binary(next func() expr, operators ...TokenType) expr {
	expr := next()
	for p.match(operators...) {
		operator := p.previous()
		right := next()
		expr = &binaryExpr{
			id:       p.ids.mint(),
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			id:       p.ids.mint(),
			operator: operator,
			right:    right,
		}
	}
	return p.call()
}

func (p *parser) call() expr {
	expr := p.primary()
	for {
		if p.match(tkLeftParen) {
			expr = p.finishCall(expr)
		} else if p.match(tkDot) {
			name := p.member(errExpectedProp)
			expr = &getExpr{
				id:     p.ids.mint(),
				object: expr,
				name:   name,
			}
		} else {
			break
		}
	}
	return expr
}

func (p *parser) finishCall(callee expr) expr {
	arguments := make([]expr, 0)
	if !p.check(tkRightParen) {
		for {
			if len(arguments) >= maxFunctionParams {
				p.report(errMaxArguments)
			}
			arguments = append(arguments, p.expression())
			if !p.match(tkComma) {
				break
			}
		}
	}
	paren := p.consume(tkRightParen, errUnclosedArguments)
	return &callExpr{
		id:        p.ids.mint(),
		callee:    callee,
		paren:     paren,
		arguments: arguments,
	}
}

func (p *parser) primary() expr {
	if p.match(tkFalse, tkTrue, tkNil, tkNumber, tkString) {
		return &literalExpr{id: p.ids.mint(), value: p.previous()}
	}
	if p.match(tkThis) {
		return &thisExpr{id: p.ids.mint(), keyword: p.previous()}
	}
	if p.match(tkSuper) {
		keyword := p.previous()
		p.consume(tkDot, errExpectedSuperDot)
		method := p.member(errExpectedSuperMethod)
		return &superExpr{id: p.ids.mint(), keyword: keyword, method: method}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{id: p.ids.mint(), name: p.previous()}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return &groupingExpr{id: p.ids.mint(), expression: expr}
	}

	p.fail(errExpectedExpression)
	return nil
}

// member consumes the name after a '.', tolerant parsing puts an empty
// identifier right after a dangling dot
func (p *parser) member(err error) *Token {
	if p.check(tkIdentifier) {
		return p.advance()
	}
	if p.tolerant {
		dot := p.previous()
		return &Token{Type: tkIdentifier, Start: dot.End, End: dot.End}
	}
	p.fail(err)
	return nil
}

// terminate consumes the ';' ending a statement
func (p *parser) terminate(err error) {
	if p.tolerant {
		p.match(tkSemicolon)
		return
	}
	p.consume(tkSemicolon, err)
}

func (p *parser) consume(tk TokenType, err error) *Token {
	if p.check(tk) {
		return p.advance()
	}
	p.fail(err)
	return nil
}

// report adds a diagnostic at the last consumed token, falling back to
// the pending token and then to the start of the source
func (p *parser) report(err error) {
	var loc Location
	if p.current > 0 {
		loc = p.tokens[p.current-1].Start
	} else if p.current < len(p.tokens) {
		loc = p.tokens[p.current].Start
	}
	p.reporter.AddDiagnostic(loc, loc, err.Error())
}

func (p *parser) fail(err error) {
	p.report(err)
	panic(parseError{err: err})
}

func (p *parser) advance() *Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...TokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(token TokenType) bool {
	return p.peek().Type == token
}

func (p *parser) peek() *Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *Token {
	if p.current == 0 {
		return &p.tokens[0]
	}
	return &p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == tkEOF
}

// synchronize skips to the next top-level statement boundary: just after
// a ';' or '}', or right before a statement keyword, once every brace
// opened since from is closed. It always makes progress.
func (p *parser) synchronize(from int) {
	depth := 0
	for i := from; i < p.current; i++ {
		depth += braceDelta(p.tokens[i].Type)
	}
	if p.current == from {
		depth += braceDelta(p.peek().Type)
		p.advance()
	}
	for !p.isAtEnd() {
		if depth <= 0 {
			switch p.previous().Type {
			case tkSemicolon, tkRightBrace:
				return
			}
			switch p.peek().Type {
			case tkClass, tkFun, tkVar, tkFor, tkIf, tkWhile, tkPrint, tkReturn:
				return
			}
		}
		depth += braceDelta(p.peek().Type)
		p.advance()
	}
}

func braceDelta(tk TokenType) int {
	switch tk {
	case tkLeftBrace:
		return 1
	case tkRightBrace:
		return -1
	}
	return 0
}

package internal

// Expression spans

func (s *assignExpr) start() Location { return s.name.Start }
func (s *assignExpr) end() Location   { return s.value.end() }

func (s *binaryExpr) start() Location { return s.left.start() }
func (s *binaryExpr) end() Location   { return s.right.end() }

func (s *callExpr) start() Location { return s.callee.start() }
func (s *callExpr) end() Location   { return s.paren.End }

func (s *getExpr) start() Location { return s.object.start() }
func (s *getExpr) end() Location   { return s.name.End }

// A grouping spans its inner expression, parentheses excluded
func (s *groupingExpr) start() Location { return s.expression.start() }
func (s *groupingExpr) end() Location   { return s.expression.end() }

func (s *literalExpr) start() Location { return s.value.Start }
func (s *literalExpr) end() Location   { return s.value.End }

func (s *logicalExpr) start() Location { return s.left.start() }
func (s *logicalExpr) end() Location   { return s.right.end() }

func (s *setExpr) start() Location { return s.object.start() }
func (s *setExpr) end() Location   { return s.value.end() }

func (s *superExpr) start() Location { return s.keyword.Start }
func (s *superExpr) end() Location   { return s.method.End }

func (s *thisExpr) start() Location { return s.keyword.Start }
func (s *thisExpr) end() Location   { return s.keyword.End }

func (s *unaryExpr) start() Location { return s.operator.Start }
func (s *unaryExpr) end() Location   { return s.right.end() }

func (s *variableExpr) start() Location { return s.name.Start }
func (s *variableExpr) end() Location   { return s.name.End }

// Statement spans

func (s *expressionStmt) start() Location { return s.expression.start() }
func (s *expressionStmt) end() Location   { return s.expression.end() }

func (s *printStmt) start() Location { return s.keyword.Start }
func (s *printStmt) end() Location   { return s.expression.end() }

func (s *varStmt) start() Location { return s.name.Start }
func (s *varStmt) end() Location {
	if s.initializer != nil {
		return s.initializer.end()
	}
	return s.name.End
}

// Blocks built by the parser for desugared loops have no braces
func (s *blockStmt) start() Location {
	if s.lbrace != nil {
		return s.lbrace.Start
	}
	if len(s.statements) > 0 {
		return s.statements[0].start()
	}
	return Location{}
}

func (s *blockStmt) end() Location {
	if s.rbrace != nil {
		return s.rbrace.End
	}
	if len(s.statements) > 0 {
		return s.statements[len(s.statements)-1].end()
	}
	return Location{}
}

func (s *classStmt) start() Location { return s.name.Start }
func (s *classStmt) end() Location {
	if s.rbrace != nil {
		return s.rbrace.End
	}
	return s.name.End
}

func (s *functionStmt) start() Location { return s.function.start() }
func (s *functionStmt) end() Location   { return s.function.end() }

func (s *ifStmt) start() Location { return s.keyword.Start }
func (s *ifStmt) end() Location {
	if s.elseBranch != nil {
		return s.elseBranch.end()
	}
	return s.thenBranch.end()
}

func (s *returnStmt) start() Location { return s.keyword.Start }
func (s *returnStmt) end() Location {
	if s.value != nil {
		return s.value.end()
	}
	return s.keyword.End
}

func (s *whileStmt) start() Location { return s.keyword.Start }
func (s *whileStmt) end() Location   { return s.body.end() }

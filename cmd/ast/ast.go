package main

import (
	"fmt"
	"os"
	"strings"
)

//go:generate sh -c "go run . Expr > ../../internal/expr.go && go run . Stmt > ../../internal/stmt.go && gofmt -w ../../internal/expr.go ../../internal/stmt.go"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast Expr|Stmt")
		os.Exit(64)
	}
	var out string
	switch os.Args[1] {
	case "Stmt":
		out = generateAst("Stmt", []string{
			"Expression: expression expr",
			"Print: keyword *Token, expression expr",
			"Var: name *Token, initializer expr",
			"Block: lbrace *Token, statements []stmt, rbrace *Token",
			"Class: name *Token, superclass *variableExpr, methods []*functionStmt, rbrace *Token",
			"Function: function *functionDecl",
			"If: keyword *Token, condition expr, thenBranch stmt, elseBranch stmt",
			"Return: keyword *Token, value expr",
			"While: keyword *Token, condition expr, body stmt",
		})
	case "Expr":
		out = generateAst("Expr", []string{
			"Assign: name *Token, value expr",
			"Binary: left expr, operator *Token, right expr",
			"Call: callee expr, paren *Token, arguments []expr",
			"Get: object expr, name *Token",
			"Grouping: expression expr",
			"Literal: value *Token",
			"Logical: left expr, operator *Token, right expr",
			"Set: object expr, name *Token, value expr",
			"Super: keyword *Token, method *Token",
			"This: keyword *Token",
			"Unary: operator *Token, right expr",
			"Variable: name *Token",
		})
	default:
		fmt.Fprintf(os.Stderr, "Unknown base type %s\n", os.Args[1])
		os.Exit(64)
	}
	fmt.Println(out)
}

func generateAst(baseName string, types []string) string {
	lower := strings.ToLower(baseName)
	hasID := baseName == "Expr"

	out := "// Code generated by cmd/ast. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	if hasID {
		out += "// R is the result of visiting a node\n"
		out += "type R interface{}\n\n"
		out += "// exprID identifies an expression for the lifetime of its parse\n"
		out += "type exprID int\n\n"
	}

	// Start base interface
	out += "type " + lower + " interface {\n"
	out += "\tspanned\n"
	if hasID {
		out += "\tidentity() exprID\n"
	}
	out += "\taccept(" + lower + "Visitor) (R, error)\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", lower)
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		structType := strings.ToLower(string(name[0])) + name[1:] + baseName
		out += "\tvisit" + name + baseName + "(" + lower + " *" + structType + ") (R, error)\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start  structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields, hasID)
	}
	// End structs

	return strings.TrimRight(out, "\n")
}

func generateType(baseName, name, fields string, hasID bool) string {
	lower := strings.ToLower(baseName)

	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	if hasID {
		out += "\tid exprID\n"
	}
	fieldArray := strings.Split(fields, ",")
	for _, field := range fieldArray {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + ") accept(visitor " + lower + "Visitor) (R, error) {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	if hasID {
		out += "func (s *" + structName + ") identity() exprID {\n"
		out += "\treturn s.id\n"
		out += "}\n\n"
	}
	// End Method Definition

	return out
}

package internal

import "fmt"

// Location is a zero based position in the source
type Location struct {
	Line   int
	Column int
}

// Compare returns -1, 0 or 1 when l is before, equal to or after o
func (l Location) Compare(o Location) int {
	switch {
	case l.Line < o.Line:
		return -1
	case l.Line > o.Line:
		return 1
	case l.Column < o.Column:
		return -1
	case l.Column > o.Column:
		return 1
	}
	return 0
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// spanned is implemented by tokens and every ast node
type spanned interface {
	start() Location
	end() Location
}

// contains reports whether pos is inside the span, both ends included
func contains(s spanned, pos Location) bool {
	return s.start().Compare(pos) <= 0 && pos.Compare(s.end()) <= 0
}

// TokenType identifies the kind of a token
type TokenType int

const (
	tkEOF TokenType = iota - 1

	// Single-character tokens.
	// (, ), {, }, ',', ., -, +, ;, /, *
	tkLeftParen
	tkRightParen
	tkLeftBrace
	tkRightBrace
	tkComma
	tkDot
	tkMinus
	tkPlus
	tkSemicolon
	tkSlash
	tkStar

	// One or two character tokens.
	// !, !=, =, ==, >, >=, <, <=
	tkBang
	tkBangEqual
	tkEqual
	tkEqualEqual
	tkGreater
	tkGreaterEqual
	tkLess
	tkLessEqual

	// Literals.
	// *variable*, string, number
	tkIdentifier
	tkString
	tkNumber

	// Keywords.
	// and, class, else, false, fun, for, if, nil, or,
	// print, return, super, this, true, var, while
	tkAnd
	tkClass
	tkElse
	tkFalse
	tkFun
	tkFor
	tkIf
	tkNil
	tkOr
	tkPrint
	tkReturn
	tkSuper
	tkThis
	tkTrue
	tkVar
	tkWhile
)

var tokenNames = map[TokenType]string{
	tkEOF:          "Eof",
	tkLeftParen:    "LeftParen",
	tkRightParen:   "RightParen",
	tkLeftBrace:    "LeftBrace",
	tkRightBrace:   "RightBrace",
	tkComma:        "Comma",
	tkDot:          "Dot",
	tkMinus:        "Minus",
	tkPlus:         "Plus",
	tkSemicolon:    "Semicolon",
	tkSlash:        "Slash",
	tkStar:         "Star",
	tkBang:         "Bang",
	tkBangEqual:    "BangEqual",
	tkEqual:        "Equal",
	tkEqualEqual:   "EqualEqual",
	tkGreater:      "Greater",
	tkGreaterEqual: "GreaterEqual",
	tkLess:         "Less",
	tkLessEqual:    "LessEqual",
	tkIdentifier:   "Identifier",
	tkString:       "String",
	tkNumber:       "Number",
	tkAnd:          "And",
	tkClass:        "Class",
	tkElse:         "Else",
	tkFalse:        "False",
	tkFun:          "Fun",
	tkFor:          "For",
	tkIf:           "If",
	tkNil:          "Nil",
	tkOr:           "Or",
	tkPrint:        "Print",
	tkReturn:       "Return",
	tkSuper:        "Super",
	tkThis:         "This",
	tkTrue:         "True",
	tkVar:          "Var",
	tkWhile:        "While",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

var keywords = map[string]TokenType{
	"and":    tkAnd,
	"class":  tkClass,
	"else":   tkElse,
	"false":  tkFalse,
	"for":    tkFor,
	"fun":    tkFun,
	"if":     tkIf,
	"nil":    tkNil,
	"or":     tkOr,
	"print":  tkPrint,
	"return": tkReturn,
	"super":  tkSuper,
	"this":   tkThis,
	"true":   tkTrue,
	"var":    tkVar,
	"while":  tkWhile,
}

// keywordLiterals are the decoded values of the literal keywords
var keywordLiterals = map[TokenType]value{
	tkTrue:  loxBool(true),
	tkFalse: loxBool(false),
	tkNil:   loxNil{},
}

// Token is a lexeme with its decoded literal and source span.
// Literal is nil for tokens that carry no value.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal value
	Start   Location
	End     Location
}

func (t *Token) start() Location {
	return t.Start
}

func (t *Token) end() Location {
	return t.End
}

func (t Token) String() string {
	return fmt.Sprintf("%v %s", t.Type, t.Lexeme)
}

package internal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tok(t TokenType, lexeme string, literal value, sl, sc, el, ec int) Token {
	return Token{
		Type:    t,
		Lexeme:  lexeme,
		Literal: literal,
		Start:   Location{sl, sc},
		End:     Location{el, ec},
	}
}

func checkTokens(t *testing.T, source string, expected ...Token) {
	t.Helper()
	c := &Collector{}
	tokens := Scan(c, source)
	if c.HasDiagnostics() {
		t.Errorf("Unexpected diagnostics scanning %q: %v", source, c.Err())
	}
	if diff := cmp.Diff(expected, tokens); diff != "" {
		t.Errorf("Tokens of %q mismatch (-want +got):\n%s", source, diff)
	}
}

func TestScanTokens(t *testing.T) {
	checkTokens(t, "",
		tok(tkEOF, "", nil, 0, 0, 0, 0),
	)

	checkTokens(t, "(){},.-+;*/",
		tok(tkLeftParen, "(", nil, 0, 0, 0, 1),
		tok(tkRightParen, ")", nil, 0, 1, 0, 2),
		tok(tkLeftBrace, "{", nil, 0, 2, 0, 3),
		tok(tkRightBrace, "}", nil, 0, 3, 0, 4),
		tok(tkComma, ",", nil, 0, 4, 0, 5),
		tok(tkDot, ".", nil, 0, 5, 0, 6),
		tok(tkMinus, "-", nil, 0, 6, 0, 7),
		tok(tkPlus, "+", nil, 0, 7, 0, 8),
		tok(tkSemicolon, ";", nil, 0, 8, 0, 9),
		tok(tkStar, "*", nil, 0, 9, 0, 10),
		tok(tkSlash, "/", nil, 0, 10, 0, 11),
		tok(tkEOF, "", nil, 0, 11, 0, 11),
	)

	checkTokens(t, "! != = == < <= > >=",
		tok(tkBang, "!", nil, 0, 0, 0, 1),
		tok(tkBangEqual, "!=", nil, 0, 2, 0, 4),
		tok(tkEqual, "=", nil, 0, 5, 0, 6),
		tok(tkEqualEqual, "==", nil, 0, 7, 0, 9),
		tok(tkLess, "<", nil, 0, 10, 0, 11),
		tok(tkLessEqual, "<=", nil, 0, 12, 0, 14),
		tok(tkGreater, ">", nil, 0, 15, 0, 16),
		tok(tkGreaterEqual, ">=", nil, 0, 17, 0, 19),
		tok(tkEOF, "", nil, 0, 19, 0, 19),
	)

	// A dot is only part of a number when a digit follows it
	checkTokens(t, "10.",
		tok(tkNumber, "10", loxNumber(10), 0, 0, 0, 2),
		tok(tkDot, ".", nil, 0, 2, 0, 3),
		tok(tkEOF, "", nil, 0, 3, 0, 3),
	)
	checkTokens(t, "10.5",
		tok(tkNumber, "10.5", loxNumber(10.5), 0, 0, 0, 4),
		tok(tkEOF, "", nil, 0, 4, 0, 4),
	)

	checkTokens(t, `"a string"`,
		tok(tkString, `"a string"`, loxString("a string"), 0, 0, 0, 10),
		tok(tkEOF, "", nil, 0, 10, 0, 10),
	)

	// Strings may span lines
	checkTokens(t, "\"a\nb\" c",
		tok(tkString, "\"a\nb\"", loxString("a\nb"), 0, 0, 1, 2),
		tok(tkIdentifier, "c", nil, 1, 3, 1, 4),
		tok(tkEOF, "", nil, 1, 4, 1, 4),
	)

	checkTokens(t, "var _a1 = nil; // comment\nprint true or false;",
		tok(tkVar, "var", nil, 0, 0, 0, 3),
		tok(tkIdentifier, "_a1", nil, 0, 4, 0, 7),
		tok(tkEqual, "=", nil, 0, 8, 0, 9),
		tok(tkNil, "nil", loxNil{}, 0, 10, 0, 13),
		tok(tkSemicolon, ";", nil, 0, 13, 0, 14),
		tok(tkPrint, "print", nil, 1, 0, 1, 5),
		tok(tkTrue, "true", loxBool(true), 1, 6, 1, 10),
		tok(tkOr, "or", nil, 1, 11, 1, 13),
		tok(tkFalse, "false", loxBool(false), 1, 14, 1, 19),
		tok(tkSemicolon, ";", nil, 1, 19, 1, 20),
		tok(tkEOF, "", nil, 1, 20, 1, 20),
	)

	checkTokens(t, "and class else for fun if return super this while",
		tok(tkAnd, "and", nil, 0, 0, 0, 3),
		tok(tkClass, "class", nil, 0, 4, 0, 9),
		tok(tkElse, "else", nil, 0, 10, 0, 14),
		tok(tkFor, "for", nil, 0, 15, 0, 18),
		tok(tkFun, "fun", nil, 0, 19, 0, 22),
		tok(tkIf, "if", nil, 0, 23, 0, 25),
		tok(tkReturn, "return", nil, 0, 26, 0, 32),
		tok(tkSuper, "super", nil, 0, 33, 0, 38),
		tok(tkThis, "this", nil, 0, 39, 0, 43),
		tok(tkWhile, "while", nil, 0, 44, 0, 49),
		tok(tkEOF, "", nil, 0, 49, 0, 49),
	)
}

func TestScanErrors(t *testing.T) {
	c := &Collector{}
	tokens := Scan(c, `"unterminated`)
	if diff := cmp.Diff([]Diagnostic{{
		Start:   Location{0, 0},
		End:     Location{0, 13},
		Message: "Unterminated string",
	}}, c.Diagnostics); diff != "" {
		t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
	}
	if len(tokens) != 1 || tokens[0].Type != tkEOF {
		t.Errorf("Expected only EOF, got %v", tokens)
	}

	// Scanning goes on after an unexpected character
	c.Reset()
	tokens = Scan(c, "a # b")
	if diff := cmp.Diff([]Diagnostic{{
		Start:   Location{0, 2},
		End:     Location{0, 3},
		Message: "Unexpected character",
	}}, c.Diagnostics); diff != "" {
		t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Token{
		tok(tkIdentifier, "a", nil, 0, 0, 0, 1),
		tok(tkIdentifier, "b", nil, 0, 4, 0, 5),
		tok(tkEOF, "", nil, 0, 5, 0, 5),
	}, tokens); diff != "" {
		t.Errorf("Tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestScanSpans(t *testing.T) {
	sources := []string{
		"",
		"print 1 + 2;",
		"class A < B {\n  init(a, b) {\n    this.a = \"x\ny\";\n  }\n}\n",
		"for (var i = 0; i < 10; i = i + 1) print i; // done",
	}
	for _, source := range sources {
		tokens := Scan(&Collector{}, source)
		if len(tokens) == 0 || tokens[len(tokens)-1].Type != tkEOF {
			t.Errorf("Last token of %q is not EOF: %v", source, tokens)
			continue
		}
		for i, token := range tokens {
			if token.Start.Compare(token.End) > 0 {
				t.Errorf("Token %v of %q ends before it starts", token, source)
			}
			if i > 0 && tokens[i-1].End.Compare(token.Start) > 0 {
				t.Errorf("Token %v of %q overlaps %v", token, source, tokens[i-1])
			}
		}
	}
}

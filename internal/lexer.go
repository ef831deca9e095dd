package internal

import (
	"strconv"
	"unicode"
)

type lexer struct {
	source  []rune
	start   int
	current int

	// position of the token being scanned and of the next rune
	startLoc Location
	loc      Location

	tokens   []Token
	reporter Reporter
}

// Scan turns source into tokens, always ending with an EOF token
func Scan(reporter Reporter, source string) []Token {
	l := &lexer{
		source:   []rune(source),
		reporter: reporter,
	}
	l.scan()
	logger.WithField("tokens", len(l.tokens)).Debug("scan finished")
	return l.tokens
}

func (l *lexer) scan() {
	for !l.isAtEnd() {
		l.start = l.current
		l.startLoc = l.loc
		l.scanToken()
	}
	l.start = l.current
	l.startLoc = l.loc
	l.emit(tkEOF, nil)
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tkLeftParen, nil)
	case ')':
		l.emit(tkRightParen, nil)
	case '{':
		l.emit(tkLeftBrace, nil)
	case '}':
		l.emit(tkRightBrace, nil)
	case ',':
		l.emit(tkComma, nil)
	case '.':
		l.emit(tkDot, nil)
	case '-':
		l.emit(tkMinus, nil)
	case '+':
		l.emit(tkPlus, nil)
	case ';':
		l.emit(tkSemicolon, nil)
	case '*':
		l.emit(tkStar, nil)
	case '/':
		if l.match('/') {
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
		} else {
			l.emit(tkSlash, nil)
		}
	case '!':
		if l.match('=') {
			l.emit(tkBangEqual, nil)
		} else {
			l.emit(tkBang, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(tkEqualEqual, nil)
		} else {
			l.emit(tkEqual, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(tkLessEqual, nil)
		} else {
			l.emit(tkLess, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(tkGreaterEqual, nil)
		} else {
			l.emit(tkGreater, nil)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':
	case '\n':

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.reporter.AddDiagnostic(l.startLoc, l.loc, errUnexpectedChar.Error())
		}
	}
}

func (l *lexer) string() {
	for !l.isAtEnd() && l.peek() != '"' {
		l.advance()
	}

	if l.isAtEnd() {
		l.reporter.AddDiagnostic(l.startLoc, l.loc, errUnterminatedString.Error())
		return
	}

	// Consume ending "
	l.advance()

	literal := string(l.source[l.start+1 : l.current-1])
	l.emit(tkString, loxString(literal))
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	// A trailing dot is only part of the number when digits follow it
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	literal, _ := strconv.ParseFloat(string(l.source[l.start:l.current]), 64)
	l.emit(tkNumber, loxNumber(literal))
}

func (l *lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	identifier := string(l.source[l.start:l.current])

	tokenType, ok := keywords[identifier]
	if !ok {
		l.emit(tkIdentifier, nil)
		return
	}
	l.emit(tokenType, keywordLiterals[tokenType])
}

func (l *lexer) advance() rune {
	c := l.source[l.current]
	l.current++
	if c == '\n' {
		l.loc.Line++
		l.loc.Column = 0
	} else {
		l.loc.Column++
	}
	return c
}

func (l *lexer) match(c rune) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.advance()
	return true
}

func (l *lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *lexer) peekNext() rune {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *lexer) emit(token TokenType, literal value) {
	l.tokens = append(l.tokens, Token{
		Type:    token,
		Lexeme:  string(l.source[l.start:l.current]),
		Literal: literal,
		Start:   l.startLoc,
		End:     l.loc,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}

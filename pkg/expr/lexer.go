package expr

import (
	"fmt"
	"strconv"
	"unicode"
)

// Lexer tokenizes an arithmetic expression string.
type Lexer struct {
	input  string
	pos    int
	tokens []Token
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize scans input in one left-to-right pass and returns all tokens.
func Tokenize(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

// Tokenize scans the entire input and returns all tokens.
func (l *Lexer) Tokenize() ([]Token, error) {
	for {
		l.skipWhitespace()
		if l.pos >= len(l.input) {
			return l.tokens, nil
		}
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		l.tokens = append(l.tokens, tok)
	}
}

// next returns the next token. The caller has already skipped leading
// whitespace and checked for end of input.
func (l *Lexer) next() (Token, error) {
	ch := l.input[l.pos]

	// A '-' at the start of the expression, after an operator, or after '('
	// negates its operand rather than subtracting. This is what lets
	// "3 - -2" and "(-5)" parse.
	if ch == '-' && l.unaryContext() {
		l.pos++
		return Token{Type: TokenOperator, Op: OpNeg, Pos: l.pos - 1}, nil
	}

	if isDigit(ch) || (ch == '.' && l.pos+1 < len(l.input) && isDigit(l.input[l.pos+1])) {
		return l.readNumber()
	}

	switch ch {
	case '+', '-', '*', '/', '^', '%':
		l.pos++
		return Token{Type: TokenOperator, Op: Op(ch), Pos: l.pos - 1}, nil
	case '(':
		l.pos++
		return Token{Type: TokenLParen, Pos: l.pos - 1}, nil
	case ')':
		l.pos++
		return Token{Type: TokenRParen, Pos: l.pos - 1}, nil
	}

	return Token{}, NewLexError(fmt.Sprintf("unknown character: %c", ch))
}

// unaryContext reports whether a '-' at the current position is unary:
// nothing has been emitted yet, or the previous token is an operator or '('.
func (l *Lexer) unaryContext() bool {
	if len(l.tokens) == 0 {
		return true
	}
	last := l.tokens[len(l.tokens)-1]
	return last.Type == TokenOperator || last.Type == TokenLParen
}

// readNumber reads a numeric literal: a maximal run of digits with at most
// one decimal point. The sign is never part of the literal.
func (l *Lexer) readNumber() (Token, error) {
	start := l.pos
	hasDecimal := false

	for l.pos < len(l.input) && (isDigit(l.input[l.pos]) || l.input[l.pos] == '.') {
		if l.input[l.pos] == '.' {
			if hasDecimal {
				return Token{}, NewLexError("invalid number: multiple decimal points")
			}
			hasDecimal = true
		}
		l.pos++
	}

	raw := l.input[start:l.pos]
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Token{}, NewLexError(fmt.Sprintf("invalid number %q", raw))
	}
	return Token{Type: TokenNumber, Value: v, Pos: start}, nil
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(rune(l.input[l.pos])) {
		l.pos++
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

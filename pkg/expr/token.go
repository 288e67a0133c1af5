// Package expr implements the arithmetic expression pipeline: a lexer, a
// shunting-yard infix-to-postfix reorderer, and a postfix stack evaluator.
// The recognized vocabulary is numbers, + - * / ^ %, parentheses, and an
// implicit unary minus.
package expr

import "strconv"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	TokenNumber   TokenType = iota // numeric literal
	TokenOperator                  // arithmetic operator
	TokenLParen                    // (
	TokenRParen                    // )
)

// Op identifies an operator. Unary minus is distinct from binary
// subtraction; the lexer decides which one a '-' is.
type Op byte

const (
	OpAdd     Op = '+'
	OpSub     Op = '-'
	OpMul     Op = '*'
	OpDiv     Op = '/'
	OpPow     Op = '^'
	OpPercent Op = '%'
	OpNeg     Op = 'u' // unary minus
)

// String returns the operator symbol.
func (o Op) String() string {
	if o == OpNeg {
		return "unary -"
	}
	return string(rune(o))
}

// Token represents a single lexical token. Tokens are immutable once
// produced; their order encodes the left-to-right structure of the source
// and is significant at every pipeline stage.
type Token struct {
	Type  TokenType
	Value float64 // parsed value (for TokenNumber)
	Op    Op      // operator symbol (for TokenOperator)
	Pos   int     // position in source
}

// String returns a debug-friendly representation of the token.
func (t Token) String() string {
	switch t.Type {
	case TokenNumber:
		return "Number: " + FormatResult(t.Value)
	case TokenOperator:
		return "Operator: " + t.Op.String()
	case TokenLParen:
		return "Paren: ("
	case TokenRParen:
		return "Paren: )"
	default:
		return "Unknown"
	}
}

// FormatResult renders a value the way the calculator prints results:
// shortest decimal form, no trailing zeros.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

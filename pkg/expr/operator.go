package expr

import "math"

// opInfo describes an operator's binding behavior and arity.
type opInfo struct {
	precedence int
	rightAssoc bool
	arity      int
}

// operators is the single source of truth for operator semantics, consulted
// by both the reorderer and the evaluator. Higher precedence binds tighter.
var operators = map[Op]opInfo{
	OpAdd:     {precedence: 1, arity: 2},
	OpSub:     {precedence: 1, arity: 2},
	OpMul:     {precedence: 2, arity: 2},
	OpDiv:     {precedence: 2, arity: 2},
	OpNeg:     {precedence: 3, rightAssoc: true, arity: 1},
	OpPow:     {precedence: 4, rightAssoc: true, arity: 2},
	OpPercent: {precedence: 5, rightAssoc: true, arity: 1},
}

func precedence(op Op) int { return operators[op].precedence }

func rightAssoc(op Op) bool { return operators[op].rightAssoc }

// Arity returns the number of operands op consumes.
func Arity(op Op) int { return operators[op].arity }

// applyBinary applies a binary operator to its operands, left then right.
func applyBinary(x, y float64, op Op) (float64, error) {
	switch op {
	case OpAdd:
		return x + y, nil
	case OpSub:
		return x - y, nil
	case OpMul:
		return x * y, nil
	case OpDiv:
		if y == 0 {
			return 0, NewEvalError("division by zero")
		}
		return x / y, nil
	case OpPow:
		return math.Pow(x, y), nil
	default:
		return 0, NewEvalError("unknown operator: " + op.String())
	}
}

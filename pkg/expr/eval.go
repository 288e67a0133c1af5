package expr

import "fmt"

// EvaluatePostfix evaluates a postfix token sequence on a numeric stack and
// returns the single resulting value.
func EvaluatePostfix(postfix []Token) (float64, error) {
	return EvaluatePostfixTraced(postfix, nil)
}

// EvaluatePostfixTraced is EvaluatePostfix with an optional tracer observing
// stack operations. A nil tracer disables tracing; the result is identical
// either way.
func EvaluatePostfixTraced(postfix []Token, tr Tracer) (float64, error) {
	var stack []float64

	for _, tok := range postfix {
		switch tok.Type {
		case TokenNumber:
			stack = append(stack, tok.Value)
			if tr != nil {
				tr.Pushed(tok.Value)
			}

		case TokenOperator:
			switch tok.Op {
			case OpNeg:
				if len(stack) == 0 {
					return 0, NewEvalError("missing operand for unary minus")
				}
				x := stack[len(stack)-1]
				stack[len(stack)-1] = -x
				if tr != nil {
					tr.Applied(OpNeg, []float64{x}, -x)
				}

			case OpPercent:
				if len(stack) == 0 {
					return 0, NewEvalError("missing operand for '%'")
				}
				x := stack[len(stack)-1]
				r := x / 100
				stack[len(stack)-1] = r
				if tr != nil {
					tr.Applied(OpPercent, []float64{x}, r)
				}

			default:
				if len(stack) < 2 {
					return 0, NewEvalError("missing operand for binary operator")
				}
				// Last pushed is the right-hand side.
				y := stack[len(stack)-1]
				x := stack[len(stack)-2]
				stack = stack[:len(stack)-2]

				r, err := applyBinary(x, y, tok.Op)
				if err != nil {
					return 0, err
				}
				stack = append(stack, r)
				if tr != nil {
					tr.Applied(tok.Op, []float64{x, y}, r)
				}
			}

		default:
			return 0, NewEvalError(fmt.Sprintf("unexpected token in postfix sequence: %s", tok))
		}
	}

	if len(stack) != 1 {
		return 0, NewEvalError("malformed expression")
	}
	return stack[0], nil
}

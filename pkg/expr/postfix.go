package expr

// ToPostfix reorders an infix token sequence into postfix (reverse Polish)
// order using the shunting-yard algorithm. It is a pure function of its
// input and the shared operator table.
func ToPostfix(tokens []Token) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	var stack []Token // operators and left parens

	for _, tok := range tokens {
		switch tok.Type {
		case TokenNumber:
			output = append(output, tok)

		case TokenOperator:
			// Left-associative operators yield to equal or higher precedence
			// on the stack; right-associative ones only to strictly higher,
			// so chains like 2^3^2 nest right-to-left.
			for len(stack) > 0 && stack[len(stack)-1].Type == TokenOperator {
				top := stack[len(stack)-1]
				if precedence(top.Op) > precedence(tok.Op) ||
					(!rightAssoc(tok.Op) && precedence(top.Op) == precedence(tok.Op)) {
					output = append(output, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, tok)

		case TokenLParen:
			stack = append(stack, tok)

		case TokenRParen:
			for len(stack) > 0 && stack[len(stack)-1].Type != TokenLParen {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, NewSyntaxError("mismatched parentheses: unexpected ')'")
			}
			stack = stack[:len(stack)-1] // discard the '('
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.Type == TokenLParen {
			return nil, NewSyntaxError("mismatched parentheses: unclosed '('")
		}
		output = append(output, top)
		stack = stack[:len(stack)-1]
	}

	return output, nil
}

package lib

// ToPostfix reorders an infix token sequence into postfix (Reverse Polish)
// order. Parenthesis balance is validated here; anything else is left to the
// evaluator.
func ToPostfix(tokens []Token) ([]Token, error) {
	return toPostfix(newSliceReader(tokens))
}

func toPostfix(reader tokenReader) ([]Token, error) {
	output := []Token{}
	stack := []Token{}

	for {
		tok, done, err := reader.Next()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}

		switch tok.Type {
		case TokenTypeNumber:
			output = append(output, tok)

		case TokenTypeOp:
			// Left associativity: equal precedence pops too.
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Type != TokenTypeOp || top.Op.precedence() < tok.Op.precedence() {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)

		case TokenTypeLParen:
			stack = append(stack, tok)

		case TokenTypeRParen:
			foundLParen := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Type == TokenTypeLParen {
					foundLParen = true
					break
				}
				output = append(output, top)
			}
			if !foundLParen {
				return nil, ErrMismatchedParens
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Type == TokenTypeLParen {
			return nil, ErrMismatchedParens
		}
		output = append(output, top)
	}

	return output, nil
}

package lib

// Evaluate walks a postfix token sequence with an operand stack and returns
// the single value left at the end. Parenthesis tokens never survive
// ToPostfix, so seeing one here means the input did not come from it.
func Evaluate(postfix []Token) (float64, error) {
	stack := make([]float64, 0, len(postfix))

	for _, tok := range postfix {
		switch tok.Type {
		case TokenTypeNumber:
			stack = append(stack, tok.Number)

		case TokenTypeOp:
			if len(stack) < 2 {
				return 0, ErrInvalidExpression
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			result, err := tok.Op.apply(a, b)
			if err != nil {
				return 0, err
			}
			stack = append(stack, result)

		default:
			return 0, ErrInvalidExpression
		}
	}

	if len(stack) != 1 {
		return 0, ErrInvalidExpression
	}
	return stack[0], nil
}

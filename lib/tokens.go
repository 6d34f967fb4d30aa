package lib

import "fmt"

type TokenType int

const (
	TokenTypeNumber TokenType = iota
	TokenTypeOp
	TokenTypeLParen
	TokenTypeRParen
)

type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

// Token is one lexical element of an expression. Number is set for
// TokenTypeNumber tokens and Op for TokenTypeOp tokens; the other fields are
// zero values.
type Token struct {
	Type     TokenType
	Number   float64
	Op       Operator
	location charLocation
}

type charLocation struct {
	line int
	col  int
}

func (o Operator) precedence() int {
	switch o {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	default:
		return 0
	}
}

func (o Operator) apply(a float64, b float64) (float64, error) {
	switch o {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		// Exact comparison on purpose: near-zero divisors are legal.
		if b == 0.0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, ErrInvalidExpression
	}
}

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

func tokenValueString(tok Token) string {
	switch tok.Type {
	case TokenTypeNumber:
		return fmt.Sprintf("number: %v", tok.Number)
	case TokenTypeOp:
		return tok.Op.String()
	case TokenTypeLParen:
		return "("
	case TokenTypeRParen:
		return ")"
	default:
		return "?"
	}
}

package lib

import (
	"fmt"
	"strconv"
	"strings"
)

type charInfo struct {
	ch       rune
	location charLocation
}

func lex(expr string, emit func(Token)) error {
	l := newLexer(expr, emit)
	return l.scan()
}

type lexer struct {
	expr             []rune
	length           int
	currentCharIndex int
	currentLocation  charLocation
	emitCallback     func(Token)
}

func newLexer(expr string, emit func(Token)) *lexer {
	runes := []rune(expr)
	return &lexer{
		expr:             runes,
		length:           len(runes),
		currentCharIndex: 0,
		currentLocation:  charLocation{line: 1, col: 1},
		emitCallback:     emit,
	}
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{}, false
	}
	return charInfo{ch: l.expr[i], location: l.currentLocation}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	l.currentCharIndex++
	if info.ch == '\n' {
		l.currentLocation.line++
		l.currentLocation.col = 1
	} else {
		l.currentLocation.col++
	}
	return info, ok
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

func (l *lexer) next() (bool, error) {
	chInfo, ok := l.advance()
	if !ok {
		return false, nil
	}
	ch := chInfo.ch

	switch ch {
	case '(':
		l.emitCallback(Token{Type: TokenTypeLParen, location: chInfo.location})
	case ')':
		l.emitCallback(Token{Type: TokenTypeRParen, location: chInfo.location})
	case '+':
		l.emitCallback(Token{Type: TokenTypeOp, Op: OpAdd, location: chInfo.location})
	case '-':
		l.emitCallback(Token{Type: TokenTypeOp, Op: OpSub, location: chInfo.location})
	case '*':
		l.emitCallback(Token{Type: TokenTypeOp, Op: OpMul, location: chInfo.location})
	case '/':
		l.emitCallback(Token{Type: TokenTypeOp, Op: OpDiv, location: chInfo.location})
	case ' ', '\t', '\r', '\n':
		// whitespace never matters between tokens
	default:
		if isDigit(ch) {
			return true, l.scanNumber(chInfo)
		}
		return false, &BadTokenError{
			Ch:   ch,
			Line: chInfo.location.line,
			Col:  chInfo.location.col,
		}
	}

	return true, nil
}

// scanNumber consumes a literal starting at first: consecutive digits with at
// most one decimal point. The leading digit has already been advanced past.
func (l *lexer) scanNumber(first charInfo) error {
	var sb strings.Builder
	sb.WriteRune(first.ch)
	hasDecimal := false

	for {
		next, ok := l.peek(0)
		if !ok {
			break
		}

		isDecimal := next.ch == '.'
		if isDecimal && hasDecimal {
			return fmt.Errorf("%w: multiple decimals in one number at %d:%d",
				ErrInvalidExpression, next.location.line, next.location.col)
		}
		hasDecimal = hasDecimal || isDecimal

		if !isDecimal && !isDigit(next.ch) {
			break
		}

		_, _ = l.advance()
		sb.WriteRune(next.ch)
	}

	literal := sb.String()
	if strings.HasSuffix(literal, ".") {
		return fmt.Errorf("%w: number '%s' ends in a decimal point at %d:%d",
			ErrInvalidExpression, literal, first.location.line, first.location.col)
	}

	num, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return fmt.Errorf("%w: cannot parse number '%s'", ErrInvalidExpression, literal)
	}

	l.emitCallback(Token{Type: TokenTypeNumber, Number: num, location: first.location})
	return nil
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

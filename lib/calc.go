package lib

// Calculate evaluates an arithmetic expression. It is a pure function: no
// state survives the call, so concurrent callers need no coordination.
//
// The lexer runs in its own goroutine and streams tokens through a buffer
// into the converter, which builds the postfix sequence as tokens arrive.
func Calculate(expr string) (float64, error) {
	buffer := newTokenBuffer()
	var lexErr error = nil

	go (func() {
		lexErr = lex(expr, buffer.Write)
		buffer.Done()
	})()

	postfix, convErr := toPostfix(buffer)
	if convErr != nil {
		// Let the lexer finish so reading lexErr below is safe.
		buffer.drain()
	}

	// The tokenizer runs first in the pipeline, so its failure wins.
	if lexErr != nil {
		return 0, lexErr
	}
	if convErr != nil {
		return 0, convErr
	}

	return Evaluate(postfix)
}

// Tokenize scans an expression into its token sequence without converting or
// evaluating it. Whitespace-only input yields an empty, valid sequence.
func Tokenize(expr string) ([]Token, error) {
	tokens := []Token{}
	err := lex(expr, func(tok Token) {
		tokens = append(tokens, tok)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

package lib

type tokenReader interface {
	Next() (tok Token, done bool, err error)
	Peek() (tok Token, done bool, err error)
}

// sliceReader adapts an in-memory token sequence to the tokenReader interface
// so the converter can be fed either from a slice or from a live lexer.
type sliceReader struct {
	tokens []Token
	index  int
}

func newSliceReader(tokens []Token) *sliceReader {
	return &sliceReader{tokens: tokens}
}

func (sr *sliceReader) Next() (Token, bool, error) {
	tok, done, err := sr.Peek()
	if !done {
		sr.index++
	}
	return tok, done, err
}

func (sr *sliceReader) Peek() (Token, bool, error) {
	if sr.index >= len(sr.tokens) {
		return Token{}, true, nil
	}
	return sr.tokens[sr.index], false, nil
}

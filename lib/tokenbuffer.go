package lib

import (
	"errors"
	"time"
)

const tokenBufSize = 64

var tokenReadTimeout = 1 * time.Second

type peekResult struct {
	tok  Token
	done bool
	err  error
}

// tokenBuffer carries tokens from the lexer goroutine to the converter. The
// lexer calls Write for each token and Done exactly once when it returns.
type tokenBuffer struct {
	tokChan      chan Token
	doneChan     chan struct{}
	peeked       *peekResult
	doneReceived bool
}

func newTokenBuffer() *tokenBuffer {
	return &tokenBuffer{
		tokChan:  make(chan Token, tokenBufSize),
		doneChan: make(chan struct{}, 1),
	}
}

func (tb *tokenBuffer) Next() (tok Token, done bool, err error) {
	if tb.peeked != nil {
		res := tb.peeked
		tb.peeked = nil
		return res.tok, res.done, res.err
	}

	if tb.doneReceived {
		// Done already arrived, so anything left is sitting in tokChan.
		select {
		case tok := <-tb.tokChan:
			return tok, false, nil
		default:
			return Token{}, true, nil
		}
	}

	select {
	case tok := <-tb.tokChan:
		return tok, false, nil
	case <-tb.doneChan:
		tb.doneReceived = true
		return tb.Next()
	case <-time.After(tokenReadTimeout):
		return Token{}, false, errors.New("timed out waiting for next token")
	}
}

func (tb *tokenBuffer) Peek() (Token, bool, error) {
	if tb.peeked != nil {
		return tb.peeked.tok, tb.peeked.done, tb.peeked.err
	}
	tok, done, err := tb.Next()
	tb.peeked = &peekResult{tok: tok, done: done, err: err}
	return tok, done, err
}

func (tb *tokenBuffer) Write(tok Token) {
	tb.tokChan <- tok
}

func (tb *tokenBuffer) Done() {
	tb.doneChan <- struct{}{}
}

// drain consumes whatever the lexer still has pending. Used when the
// converter fails early so the lexer goroutine always runs to completion
// before the pipeline reconciles errors.
func (tb *tokenBuffer) drain() {
	for {
		_, done, err := tb.Next()
		if done || err != nil {
			return
		}
	}
}

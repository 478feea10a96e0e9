package parse

import (
	"fmt"
	"strings"
)

// parser carries the token-consumption primitives shared by every grammar
// rule: non-consuming checks, the hard-assertion expect, and the soft
// check-and-consume variant. Grammar rules never touch the queue directly.
type parser struct {
	queue    *TokenQueue
	filename string
	content  string
	scanErr  error
}

func newParser(content string, filename string) parser {
	return parser{
		queue:    NewTokenQueue(NewScanner(content, filename)),
		filename: filename,
		content:  content,
	}
}

// peek returns the pending token without consuming it. A scan error is
// recorded and an unknown token returned; the error surfaces through the next
// expectToken call (or isEOF's caller checking scanErr).
func (p *parser) peek() Token {
	tok, err := p.queue.Peek(0)
	if err != nil {
		if p.scanErr == nil {
			p.scanErr = err
		}
		return Token{Type: TokenUnknown}
	}
	return tok
}

// consume drops the pending token. Only valid directly after a successful
// check.
func (p *parser) consume() Token {
	tok, err := p.queue.Next()
	if err != nil && p.scanErr == nil {
		p.scanErr = err
	}
	return tok
}

func (p *parser) isEOF() bool {
	tok := p.peek()
	if p.scanErr != nil {
		return false
	}
	return tok.Type == TokenEOF
}

// checkToken reports whether the pending token has the given type. It never
// consumes, and returns false at EOF.
func (p *parser) checkToken(typ TokenType) bool {
	return p.checkTokenData(typ, "")
}

// checkTokenData reports whether the pending token has the given type and,
// when data is non-empty, exactly that data.
func (p *parser) checkTokenData(typ TokenType, data string) bool {
	tok := p.peek()
	if p.scanErr != nil || tok.Type == TokenEOF {
		return false
	}
	if tok.Type != typ {
		return false
	}
	if data == "" {
		return true
	}
	return tok.Data == data
}

// checkTokenDataFold is checkTokenData with case-insensitive data comparison:
// equal ignoring case means match.
func (p *parser) checkTokenDataFold(typ TokenType, data string) bool {
	tok := p.peek()
	if p.scanErr != nil || tok.Type == TokenEOF {
		return false
	}
	if tok.Type != typ {
		return false
	}
	return strings.EqualFold(tok.Data, data)
}

// checkTokenInFold reports whether the pending token matches the type and any
// of the given data values, ignoring case. Short-circuits on the first match.
func (p *parser) checkTokenInFold(typ TokenType, data ...string) bool {
	for _, d := range data {
		if p.checkTokenDataFold(typ, d) {
			return true
		}
	}
	return false
}

// expectToken consumes and returns the pending token if it matches, and
// otherwise fails with a ParseError describing what was expected. On failure
// nothing is consumed, so the error and any caller diagnostics still point at
// the offending token.
func (p *parser) expectToken(typ TokenType, data string) (Token, error) {
	if p.checkTokenData(typ, data) {
		return p.consume(), nil
	}
	if p.scanErr != nil {
		return Token{}, p.scanErr
	}
	return Token{}, p.errExpected(typ, data)
}

// checkAndExpectToken consumes and returns the pending token if it matches,
// and otherwise consumes nothing and reports false. Grammar rules use it for
// optional fragments.
func (p *parser) checkAndExpectToken(typ TokenType, data string) (Token, bool) {
	if !p.checkTokenData(typ, data) {
		return Token{}, false
	}
	return p.consume(), true
}

// checkAndExpectTokenFold is checkAndExpectToken with case-insensitive data
// comparison, for the CND keywords that may appear in any case.
func (p *parser) checkAndExpectTokenFold(typ TokenType, data string) (Token, bool) {
	if !p.checkTokenDataFold(typ, data) {
		return Token{}, false
	}
	return p.consume(), true
}

func (p *parser) errExpected(typ TokenType, data string) *ParseError {
	expected := typ.String()
	if data != "" {
		expected = fmt.Sprintf("%s, '%s'", typ, data)
	}

	tok := p.peek()
	found := "end of input"
	if tok.Type != TokenEOF && tok.Type != TokenUnknown {
		found = fmt.Sprintf("[%s, '%s']", tok.Type, tok.Data)
	}

	return &ParseError{
		Message:  fmt.Sprintf("expected token [%s], found %s", expected, found),
		Token:    tok,
		Filename: p.filename,
		Content:  p.content,
	}
}

// errAt builds a ParseError for a semantic failure at the given token.
func (p *parser) errAt(tok Token, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Message:  fmt.Sprintf(format, args...),
		Token:    tok,
		Filename: p.filename,
		Content:  p.content,
	}
}

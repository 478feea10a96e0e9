package parse

// TokenQueue buffers the scanner's lazy token stream and exposes it with
// arbitrary bounded lookahead. Tokens are scanned on demand: peeking past the
// buffered region pulls more tokens from the scanner, consuming never does
// more than drop the front of the buffer. Once the scanner reports EOF the
// queue stops pulling and reports EOF forever after.
type TokenQueue struct {
	scanner *Scanner
	buffer  []Token
	done    bool
}

func NewTokenQueue(scanner *Scanner) *TokenQueue {
	return &TokenQueue{
		scanner: scanner,
		buffer:  []Token{},
	}
}

// fill pulls tokens until the buffer covers offset n or the scanner reports
// EOF. The EOF token itself is buffered and never removed.
func (q *TokenQueue) fill(n int) error {
	for len(q.buffer) <= n && !q.done {
		tok, err := q.scanner.NextToken()
		if err != nil {
			return err
		}
		q.buffer = append(q.buffer, tok)
		if tok.Type == TokenEOF {
			q.done = true
		}
	}
	return nil
}

// Peek returns the token offset positions ahead without consuming anything.
// Peeking at or past the end of input returns the EOF token.
func (q *TokenQueue) Peek(offset int) (Token, error) {
	if err := q.fill(offset); err != nil {
		return Token{}, err
	}
	if offset >= len(q.buffer) {
		return q.buffer[len(q.buffer)-1], nil
	}
	return q.buffer[offset], nil
}

// Next consumes and returns the front token. Calling Next once IsEOF reports
// true is a programming error: every caller is required to check first, so
// the queue panics rather than hand out a stale token.
func (q *TokenQueue) Next() (Token, error) {
	if err := q.fill(0); err != nil {
		return Token{}, err
	}
	tok := q.buffer[0]
	if tok.Type == TokenEOF {
		panic("parse: Next called on exhausted token queue")
	}
	q.buffer = q.buffer[1:]
	return tok, nil
}

// IsEOF reports whether all input has been consumed.
func (q *TokenQueue) IsEOF() bool {
	if err := q.fill(0); err != nil {
		// a scan error is not EOF; it surfaces through Peek or Next
		return false
	}
	return q.buffer[0].Type == TokenEOF
}

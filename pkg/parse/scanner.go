package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var symbolTokens = map[rune]TokenType{
	'<': TokenLAngle,
	'>': TokenRAngle,
	'[': TokenLBracket,
	']': TokenRBracket,
	'(': TokenLParen,
	')': TokenRParen,
	'=': TokenEquals,
	',': TokenComma,
	'-': TokenDash,
	'+': TokenPlus,
	'*': TokenAsterisk,
	'?': TokenQuestion,
	'!': TokenBang,
}

// Scanner turns CND source text into a stream of tokens. It is pull-based:
// each NextToken call scans exactly one token. The filename is only used in
// diagnostics.
type Scanner struct {
	input    string
	filename string
	pos      int  // byte offset of the current rune
	next     int  // byte offset after the current rune
	ch       rune // current rune, 0 at end of input
	line     int
	column   int
}

func NewScanner(input string, filename string) *Scanner {
	s := &Scanner{
		input:    input,
		filename: filename,
		line:     1,
		column:   0,
	}
	s.readRune()
	return s
}

func (s *Scanner) readRune() {
	if s.ch == '\n' {
		s.line++
		s.column = 0
	}
	if s.next >= len(s.input) {
		s.ch = 0
		s.pos = len(s.input)
		s.column++
		return
	}
	r, size := utf8.DecodeRuneInString(s.input[s.next:])
	s.pos = s.next
	s.next += size
	s.ch = r
	s.column++
}

func (s *Scanner) peekRune() rune {
	if s.next >= len(s.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.next:])
	return r
}

// NextToken scans and returns the next token, skipping whitespace and
// comments. At end of input it returns an EOF token, and keeps returning it
// on every subsequent call.
func (s *Scanner) NextToken() (Token, error) {
	if err := s.skipSpaceAndComments(); err != nil {
		return Token{}, err
	}

	line, column := s.line, s.column

	if s.ch == 0 {
		return Token{Type: TokenEOF, Line: line, Column: column}, nil
	}

	if s.ch == '\'' || s.ch == '"' {
		return s.scanString()
	}

	if isNameRune(s.ch) {
		return Token{Type: TokenIdentifier, Data: s.scanIdentifier(), Line: line, Column: column}, nil
	}

	if typ, ok := symbolTokens[s.ch]; ok {
		tok := Token{Type: typ, Data: string(s.ch), Line: line, Column: column}
		s.readRune()
		return tok, nil
	}

	return Token{}, &ScanError{
		Message:  "unexpected character",
		Char:     s.ch,
		Line:     line,
		Column:   column,
		Filename: s.filename,
	}
}

func (s *Scanner) skipSpaceAndComments() error {
	for {
		if unicode.IsSpace(s.ch) {
			s.readRune()
			continue
		}
		if s.ch == '/' && s.peekRune() == '/' {
			for s.ch != '\n' && s.ch != 0 {
				s.readRune()
			}
			continue
		}
		if s.ch == '/' && s.peekRune() == '*' {
			line, column := s.line, s.column
			s.readRune()
			s.readRune()
			for {
				if s.ch == 0 {
					return &ScanError{
						Message:  "unterminated block comment",
						Char:     '/',
						Line:     line,
						Column:   column,
						Filename: s.filename,
					}
				}
				if s.ch == '*' && s.peekRune() == '/' {
					s.readRune()
					s.readRune()
					break
				}
				s.readRune()
			}
			continue
		}
		return nil
	}
}

func (s *Scanner) scanString() (Token, error) {
	quote := s.ch
	line, column := s.line, s.column
	s.readRune()

	var b strings.Builder
	for s.ch != quote {
		if s.ch == 0 || s.ch == '\n' {
			return Token{}, &ScanError{
				Message:  "unterminated string literal",
				Char:     quote,
				Line:     line,
				Column:   column,
				Filename: s.filename,
			}
		}
		if s.ch == '\\' {
			s.readRune()
			if s.ch == 0 {
				continue
			}
		}
		b.WriteRune(s.ch)
		s.readRune()
	}
	s.readRune() // closing quote

	return Token{Type: TokenString, Data: b.String(), Line: line, Column: column}, nil
}

func (s *Scanner) scanIdentifier() string {
	start := s.pos
	for isNameRune(s.ch) {
		s.readRune()
	}
	return s.input[start:s.pos]
}

// isNameRune reports whether c may appear in a bare CND name. Anything else
// must be quoted.
func isNameRune(c rune) bool {
	return c == ':' || c == '_' || c == '.' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, input string) []Token {
	s := NewScanner(input, "")
	tokens := []Token{}
	for {
		tok, err := s.NextToken()
		require.Nil(t, err)
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

func TestScannerTokenStream(t *testing.T) {

	tokens := scanAll(t, "[nt:file] > nt:base, mix:referenceable")

	types := []TokenType{}
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{
		TokenLBracket,
		TokenIdentifier,
		TokenRBracket,
		TokenRAngle,
		TokenIdentifier,
		TokenComma,
		TokenIdentifier,
		TokenEOF,
	}, types)

	assert.Equal(t, "nt:file", tokens[1].Data)
	assert.Equal(t, "nt:base", tokens[4].Data)
	assert.Equal(t, "mix:referenceable", tokens[6].Data)
}

func TestScannerPositions(t *testing.T) {

	tokens := scanAll(t, "[foo]\n- bar")

	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Column)
	assert.Equal(t, 1, tokens[1].Line)
	assert.Equal(t, 2, tokens[1].Column)
	assert.Equal(t, 1, tokens[2].Line)
	assert.Equal(t, 5, tokens[2].Column)

	assert.Equal(t, TokenDash, tokens[3].Type)
	assert.Equal(t, 2, tokens[3].Line)
	assert.Equal(t, 1, tokens[3].Column)
	assert.Equal(t, TokenIdentifier, tokens[4].Type)
	assert.Equal(t, 2, tokens[4].Line)
	assert.Equal(t, 3, tokens[4].Column)
}

func TestScannerStrings(t *testing.T) {

	tokens := scanAll(t, `'single' "double" 'with \'escape\'' 'back\\slash'`)

	require.Equal(t, 5, len(tokens))
	assert.Equal(t, TokenString, tokens[0].Type)
	assert.Equal(t, "single", tokens[0].Data)
	assert.Equal(t, TokenString, tokens[1].Type)
	assert.Equal(t, "double", tokens[1].Data)
	assert.Equal(t, "with 'escape'", tokens[2].Data)
	assert.Equal(t, `back\slash`, tokens[3].Data)
}

func TestScannerComments(t *testing.T) {

	tokens := scanAll(t, `
		// line comment
		[foo] /* block
		comment */ > bar // trailing
	`)

	types := []TokenType{}
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{
		TokenLBracket,
		TokenIdentifier,
		TokenRBracket,
		TokenRAngle,
		TokenIdentifier,
		TokenEOF,
	}, types)
}

func TestScannerPunctuation(t *testing.T) {

	tokens := scanAll(t, "< > [ ] ( ) = , - + * ? !")

	types := []TokenType{}
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{
		TokenLAngle,
		TokenRAngle,
		TokenLBracket,
		TokenRBracket,
		TokenLParen,
		TokenRParen,
		TokenEquals,
		TokenComma,
		TokenDash,
		TokenPlus,
		TokenAsterisk,
		TokenQuestion,
		TokenBang,
		TokenEOF,
	}, types)
}

func TestScannerIllegalCharacter(t *testing.T) {

	s := NewScanner("[foo] %", "test.cnd")

	for i := 0; i < 3; i++ {
		_, err := s.NextToken()
		require.Nil(t, err)
	}

	_, err := s.NextToken()
	require.NotNil(t, err)

	scanErr, ok := err.(*ScanError)
	require.True(t, ok)
	assert.Equal(t, '%', scanErr.Char)
	assert.Equal(t, 1, scanErr.Line)
	assert.Equal(t, 7, scanErr.Column)
	assert.Equal(t, "test.cnd", scanErr.Filename)
	assert.Contains(t, err.Error(), "unexpected character")
}

func TestScannerUnterminatedString(t *testing.T) {

	s := NewScanner("'never closed", "")

	_, err := s.NextToken()
	require.NotNil(t, err)

	scanErr, ok := err.(*ScanError)
	require.True(t, ok)
	assert.Contains(t, scanErr.Message, "unterminated string")
	assert.Equal(t, 1, scanErr.Line)
	assert.Equal(t, 1, scanErr.Column)
}

func TestScannerUnterminatedBlockComment(t *testing.T) {

	s := NewScanner("[foo] /* never closed", "")

	for i := 0; i < 3; i++ {
		_, err := s.NextToken()
		require.Nil(t, err)
	}

	_, err := s.NextToken()
	require.NotNil(t, err)

	scanErr, ok := err.(*ScanError)
	require.True(t, ok)
	assert.Contains(t, scanErr.Message, "unterminated block comment")
}

func TestScannerEOFIsStable(t *testing.T) {

	s := NewScanner("foo", "")

	tok, err := s.NextToken()
	require.Nil(t, err)
	assert.Equal(t, TokenIdentifier, tok.Type)

	for i := 0; i < 3; i++ {
		tok, err = s.NextToken()
		require.Nil(t, err)
		assert.Equal(t, TokenEOF, tok.Type)
	}
}

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(input string) *TokenQueue {
	return NewTokenQueue(NewScanner(input, ""))
}

func TestQueuePeekDoesNotConsume(t *testing.T) {

	q := newTestQueue("[foo]")

	for i := 0; i < 5; i++ {
		tok, err := q.Peek(0)
		require.Nil(t, err)
		assert.Equal(t, TokenLBracket, tok.Type)
	}

	tok, err := q.Next()
	require.Nil(t, err)
	assert.Equal(t, TokenLBracket, tok.Type)
}

func TestQueueLookahead(t *testing.T) {

	q := newTestQueue("[foo] > bar")

	tok, err := q.Peek(2)
	require.Nil(t, err)
	assert.Equal(t, TokenRBracket, tok.Type)

	tok, err = q.Peek(4)
	require.Nil(t, err)
	assert.Equal(t, TokenIdentifier, tok.Type)
	assert.Equal(t, "bar", tok.Data)

	// lookahead must not have consumed anything
	tok, err = q.Next()
	require.Nil(t, err)
	assert.Equal(t, TokenLBracket, tok.Type)
}

func TestQueuePeekPastEndReturnsEOF(t *testing.T) {

	q := newTestQueue("foo")

	tok, err := q.Peek(100)
	require.Nil(t, err)
	assert.Equal(t, TokenEOF, tok.Type)

	assert.False(t, q.IsEOF())
}

func TestQueueNextAdvancesExactlyOne(t *testing.T) {

	q := newTestQueue("a b c")

	for _, expected := range []string{"a", "b", "c"} {
		require.False(t, q.IsEOF())
		tok, err := q.Next()
		require.Nil(t, err)
		assert.Equal(t, expected, tok.Data)
	}

	assert.True(t, q.IsEOF())
}

func TestQueueNextAfterEOFPanics(t *testing.T) {

	q := newTestQueue("foo")

	_, err := q.Next()
	require.Nil(t, err)
	require.True(t, q.IsEOF())

	require.Panics(t, func() {
		_, _ = q.Next()
	})
}

func TestQueueEmptyInputIsEOF(t *testing.T) {

	q := newTestQueue("")

	assert.True(t, q.IsEOF())

	tok, err := q.Peek(0)
	require.Nil(t, err)
	assert.Equal(t, TokenEOF, tok.Type)
}

func TestQueueScanErrorSurfacesThroughPeek(t *testing.T) {

	q := newTestQueue("foo %")

	tok, err := q.Peek(0)
	require.Nil(t, err)
	assert.Equal(t, "foo", tok.Data)

	_, err = q.Peek(1)
	require.NotNil(t, err)
	_, ok := err.(*ScanError)
	assert.True(t, ok)
}

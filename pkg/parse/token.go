package parse

// TokenType classifies a lexical unit of a CND document.
type TokenType int

const (
	TokenUnknown TokenType = iota
	TokenEOF
	TokenString
	TokenIdentifier
	TokenLAngle   // <
	TokenRAngle   // >
	TokenLBracket // [
	TokenRBracket // ]
	TokenLParen   // (
	TokenRParen   // )
	TokenEquals   // =
	TokenComma    // ,
	TokenDash     // -
	TokenPlus     // +
	TokenAsterisk // *
	TokenQuestion // ?
	TokenBang     // !
)

var tokenTypeNames = map[TokenType]string{
	TokenUnknown:    "UNKNOWN",
	TokenEOF:        "EOF",
	TokenString:     "STRING",
	TokenIdentifier: "IDENTIFIER",
	TokenLAngle:     "'<'",
	TokenRAngle:     "'>'",
	TokenLBracket:   "'['",
	TokenRBracket:   "']'",
	TokenLParen:     "'('",
	TokenRParen:     "')'",
	TokenEquals:     "'='",
	TokenComma:      "','",
	TokenDash:       "'-'",
	TokenPlus:       "'+'",
	TokenAsterisk:   "'*'",
	TokenQuestion:   "'?'",
	TokenBang:       "'!'",
}

// String returns the human-readable name of the token type, as used in
// diagnostics.
func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a single lexical unit: its type, the raw text it carries, and the
// position of its first character in the source. Identifier and string tokens
// carry their text in Data; punctuation tokens carry the punctuation
// character; the EOF token carries nothing.
type Token struct {
	Type   TokenType
	Data   string
	Line   int
	Column int
}

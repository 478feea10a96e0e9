package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ScanError reports input text that does not form any recognized token shape:
// an illegal character, an unterminated string literal or block comment. It is
// always fatal to the parse that triggered it.
type ScanError struct {
	Message  string
	Char     rune
	Line     int
	Column   int
	Filename string
}

func (e *ScanError) Error() string {
	msg := fmt.Sprintf("%s `%s`", e.Message, string(e.Char))
	if e.Filename != "" {
		msg += fmt.Sprintf(", file: %s", e.Filename)
	}
	msg += fmt.Sprintf(", line: %d, column: %d", e.Line, e.Column)
	return msg
}

// ParseError reports a token that does not match what the grammar requires at
// that point. It carries the offending token and, when known, the filename and
// full source content so it can render a source excerpt.
type ParseError struct {
	Message  string
	Token    Token
	Filename string
	Content  string
}

func (e *ParseError) Error() string {
	msg := e.Message
	if e.Filename != "" {
		msg += fmt.Sprintf(", file: %s", e.Filename)
	}
	if e.Token.Line > 0 {
		msg += fmt.Sprintf(", line: %d, column: %d", e.Token.Line, e.Token.Column)
	}
	if e.Content != "" && e.Token.Line > 0 {
		msg += fmt.Sprintf("\n%s", getContentForError(e.Content, e.Token.Line, e.Token.Column))
	}
	return msg
}

// getContentForError renders the lines surrounding the error with a caret
// marking the offending column. Lines and columns are 1-based.
func getContentForError(content string, lineNumber int, column int) string {

	lines := strings.Split(content, "\n")

	lineIndex := lineNumber - 1
	if lineIndex < 0 || lineIndex >= len(lines) {
		return ""
	}

	linesBeforeAndAfter := 2

	lineStart := lineIndex - linesBeforeAndAfter
	if lineStart < 0 {
		lineStart = 0
	}
	lineEnd := lineIndex + linesBeforeAndAfter
	if lineEnd > len(lines)-1 {
		lineEnd = len(lines) - 1
	}

	numStr := strconv.Itoa(lineEnd + 1)
	numDigits := len(numStr)

	lineFmt := fmt.Sprintf("%%%dd", numDigits)

	red := color.New(color.FgRed).SprintFunc()

	caretPos := column - 1
	if caretPos < 0 {
		caretPos = 0
	}

	res := ""
	for i := lineStart; i <= lineEnd; i++ {
		prefix := fmt.Sprintf(lineFmt, i+1)
		if i == lineIndex {
			marker := caretPos
			if marker > len(lines[i]) {
				marker = len(lines[i])
			}
			tildes := len(lines[i]) - marker - 1
			if tildes < 0 {
				tildes = 0
			}
			res += red(fmt.Sprintf("%s | %s\n", prefix, lines[i]))
			res += red(strings.Repeat(" ", len(prefix)) + " | " + strings.Repeat(" ", marker) + "^" + strings.Repeat("~", tildes) + "\n")
		} else {
			res += fmt.Sprintf("%s | %s\n", prefix, lines[i])
		}
	}
	return res
}

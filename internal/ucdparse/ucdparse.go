/* Package ucdparse provides a parser for Unicode Character Database files.

Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

Only the common data line format is supported:

   0600..06FF; Arabic         # comment
   0621;AL;Arabic Letter Hamza

i.e., a single code-point or a range of code-points, followed by
semicolon-separated fields and an optional rest-of-line comment.
*/
package ucdparse

import "fmt"

// Token is a type for communicating between the line-level scanner and the client.
// The scanner will read lines and wrap the content of a data line into a token.
type Token struct {
	LineNo    int       // line of the data item within the input source
	TokenType TokenType // type of token
	runeFrom  rune      // first/single rune
	runeTo    rune      // final rune of range (may be identical to runeFrom)
	Fields    []string  // content of the fields, trimmed
	Comment   string    // rest-of-line comment of data item lines
	Error     error     // error condition, if any
}

// TokenType denotes the kind of a data line.
type TokenType int8

// Types of tokens
const (
	Undefined TokenType = iota
	EOF
	SingleDataItem
	RangeDataItem
)

func (tt TokenType) String() string {
	switch tt {
	case EOF:
		return "EOF"
	case SingleDataItem:
		return "single"
	case RangeDataItem:
		return "range"
	}
	return "undefined"
}

// newToken creates a token initialized with a line number.
func newToken(line int) *Token {
	return &Token{
		LineNo: line,
		Fields: []string{},
	}
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at %d %#U..%#U type=%s %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.TokenType, token.Fields)
}

// Field gets field #i (1…n) from the current data item.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}

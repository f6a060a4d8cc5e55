package literal

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Parser reads structured blocks into Values
type Parser struct {
	parser *participle.Parser[document]
}

// NewParser creates a new block parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[document](
		participle.Lexer(BlockLexer),
		participle.Elide("Whitespace"),
		participle.Map(unquote, "String"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// ParseString parses a complete block. Trailing input is an error.
func (p *Parser) ParseString(input string) (Value, error) {
	doc, err := p.parser.ParseString("", input)
	if err != nil {
		return Value{}, fmt.Errorf("parse error: %w", err)
	}
	return doc.Root.value(), nil
}

// ExtractBlock returns the text from the first '{' to the last '}'
// inclusive, or false when the text holds no such span.
func ExtractBlock(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// unquote decodes a string token using JSON escape rules.
func unquote(tok lexer.Token) (lexer.Token, error) {
	var s string
	if err := json.Unmarshal([]byte(tok.Value), &s); err != nil {
		return tok, participle.Errorf(tok.Pos, "invalid string literal %s", tok.Value)
	}
	tok.Value = s
	return tok, nil
}

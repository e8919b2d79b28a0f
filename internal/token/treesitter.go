package token

import (
	"context"
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/callscope-dev/callscope/internal/lang"
)

// treeSitterLexer flattens a tree-sitter parse into leaf tokens. Tree-sitter
// never materializes whitespace, so KindSpace tokens are only produced by
// substitute lexers.
type treeSitterLexer struct {
	parser *sitter.Parser
}

// ForLanguage returns the tree-sitter backed tokenizer for a language.
func ForLanguage(l lang.Language) Tokenizer {
	p := sitter.NewParser()
	switch l {
	case lang.C:
		p.SetLanguage(c.GetLanguage())
	case lang.Java:
		p.SetLanguage(java.GetLanguage())
	case lang.Python:
		p.SetLanguage(python.GetLanguage())
	}
	return &treeSitterLexer{parser: p}
}

func (t *treeSitterLexer) Tokenize(source []byte) ([]Token, error) {
	tree, err := t.parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	tokens := make([]Token, 0, 64)
	collectLeaves(tree.RootNode(), source, &tokens)
	return tokens, nil
}

func collectLeaves(node *sitter.Node, source []byte, out *[]Token) {
	count := int(node.ChildCount())
	if count == 0 {
		text := node.Content(source)
		if text == "" {
			return
		}
		*out = append(*out, Token{
			Kind: classify(node, text),
			Text: text,
			Line: int(node.StartPoint().Row) + 1,
		})
		return
	}
	for i := 0; i < count; i++ {
		collectLeaves(node.Child(i), source, out)
	}
}

func classify(node *sitter.Node, text string) Kind {
	nodeType := node.Type()

	if strings.Contains(nodeType, "comment") {
		return KindComment
	}

	switch nodeType {
	case "identifier", "field_identifier", "type_identifier":
		return KindIdent
	}

	if !node.IsNamed() {
		if isWordToken(text) {
			return KindKeyword
		}
		return KindPunct
	}

	switch nodeType {
	case "number_literal", "string_literal", "char_literal",
		"string_content", "integer", "float", "string",
		"decimal_integer_literal", "string_fragment",
		"true", "false", "none":
		return KindLiteral
	}

	return KindOther
}

func isWordToken(text string) bool {
	for _, r := range text {
		if !unicode.IsLetter(r) && r != '_' {
			return false
		}
	}
	return len(text) > 0
}

// Package token provides a minimal lexing capability over function bodies.
// The builder only needs a flat stream of classified tokens; any lexer that
// can produce one can stand in for the tree-sitter implementation.
package token

// Kind classifies a lexed token.
type Kind int

const (
	KindIdent Kind = iota
	KindKeyword
	KindComment
	KindSpace
	KindPunct
	KindLiteral
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindIdent:
		return "ident"
	case KindKeyword:
		return "keyword"
	case KindComment:
		return "comment"
	case KindSpace:
		return "space"
	case KindPunct:
		return "punct"
	case KindLiteral:
		return "literal"
	default:
		return "other"
	}
}

// Token is one lexed unit of source text.
type Token struct {
	Kind Kind
	Text string
	Line int
}

// Tokenizer turns source text into a token stream.
type Tokenizer interface {
	Tokenize(source []byte) ([]Token, error)
}

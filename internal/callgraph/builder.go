package callgraph

import (
	"errors"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/callscope-dev/callscope/internal/index"
	"github.com/callscope-dev/callscope/internal/lang"
	"github.com/callscope-dev/callscope/internal/search"
	"github.com/callscope-dev/callscope/internal/token"
)

// ErrGraphNotFound reports a missing call graph when auto-build is off.
var ErrGraphNotFound = errors.New("no call graph found")

// callLookahead is how many tokens past an identifier the builder scans for
// an opening parenthesis before giving up on the call hypothesis.
const callLookahead = 4

var fieldAssignPattern = regexp.MustCompile(`(?:->|\.)(\w+)\s*=\s*(\w+)`)

// TokenizerFactory yields a tokenizer for a language.
type TokenizerFactory func(lang.Language) token.Tokenizer

// Builder constructs call graphs from the symbol index. Call detection is
// lexical: an identifier matching a known symbol counts as a call only when
// an opening parenthesis follows within a few tokens.
type Builder struct {
	index      index.Index
	searcher   search.Searcher
	tokenizers TokenizerFactory
	logger     *logrus.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithSearcher attaches the optional text-search collaborator used for
// C indirect-call resolution.
func WithSearcher(s search.Searcher) Option {
	return func(b *Builder) { b.searcher = s }
}

// WithTokenizerFactory replaces the tree-sitter tokenizers.
func WithTokenizerFactory(f TokenizerFactory) Option {
	return func(b *Builder) { b.tokenizers = f }
}

// WithLogger attaches a logger.
func WithLogger(l *logrus.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// NewBuilder creates a Builder over an index.
func NewBuilder(ix index.Index, opts ...Option) *Builder {
	b := &Builder{
		index:      ix,
		tokenizers: token.ForLanguage,
		logger:     logrus.New(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build constructs the call graph for every symbol the index knows.
// Symbols without a resolvable definition or body contribute zero edges.
// When a symbol has several definitions only the first reported one is
// used; no further disambiguation is attempted. Manual overrides are
// unioned into the computed edges, never replacing them.
func (b *Builder) Build(language lang.Language, overrides map[string][]string) (*Graph, error) {
	symbols, err := b.index.ListSymbols()
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(symbols))
	for _, sym := range symbols {
		known[sym] = true
	}

	tokenizer := b.tokenizers(language)
	edges := make(map[string][]string)

	for _, sym := range symbols {
		callees, err := b.calleesOf(sym, language, known, tokenizer)
		if err != nil {
			return nil, err
		}
		if len(callees) > 0 {
			edges[sym] = callees
		}
	}

	if language == lang.C {
		for caller, targets := range b.resolveFunctionPointers(known) {
			edges[caller] = append(edges[caller], targets...)
		}
	}

	for caller, targets := range overrides {
		edges[caller] = append(edges[caller], targets...)
	}

	g := FromEdges(edges)
	b.logger.WithFields(logrus.Fields{
		"language": language.String(),
		"nodes":    g.NodeCount(),
		"edges":    g.EdgeCount(),
	}).Debug("call graph built")
	return g, nil
}

func (b *Builder) calleesOf(name string, language lang.Language, known map[string]bool, tokenizer token.Tokenizer) ([]string, error) {
	defs, err := b.index.FindDefinitions(name)
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, nil
	}

	body, err := b.index.FunctionBody(defs[0], language)
	if err != nil {
		return nil, err
	}
	if body == nil || strings.TrimSpace(body.Source) == "" {
		return nil, nil
	}

	tokens, err := tokenizer.Tokenize([]byte(body.Source))
	if err != nil {
		b.logger.WithField("symbol", name).WithError(err).Debug("tokenize failed")
		return nil, nil
	}

	return extractCalls(tokens, known), nil
}

// extractCalls records each known symbol that appears as an identifier
// directly followed by an opening parenthesis. Whitespace and comment
// tokens do not consume lookahead; the first other token decides.
func extractCalls(tokens []token.Token, known map[string]bool) []string {
	calls := make(map[string]bool)

	for i, tok := range tokens {
		if tok.Kind != token.KindIdent || !known[tok.Text] {
			continue
		}
		skipped := 0
		for j := i + 1; j < len(tokens) && j <= i+callLookahead+skipped; j++ {
			next := tokens[j]
			if next.Kind == token.KindSpace || next.Kind == token.KindComment {
				skipped++
				continue
			}
			if next.Text == "(" {
				calls[tok.Text] = true
			}
			break
		}
	}

	out := make([]string, 0, len(calls))
	for name := range calls {
		out = append(out, name)
	}
	return dedupeAndSort(out)
}

// resolveFunctionPointers scans C sources for struct-field assignments of
// known symbols (`.handler = func` / `->handler = func`) and attributes
// each one to the nearest enclosing function definition in the same file.
// Missing rg or failed searches silently contribute no edges.
func (b *Builder) resolveFunctionPointers(known map[string]bool) map[string][]string {
	if b.searcher == nil || !b.searcher.Available() {
		return nil
	}

	matches, err := b.searcher.Search(fieldAssignPattern.String(), "c")
	if err != nil {
		b.logger.WithError(err).Debug("function pointer scan failed")
		return nil
	}

	edges := make(map[string][]string)
	for _, match := range matches {
		m := fieldAssignPattern.FindStringSubmatch(match.Text)
		if m == nil {
			continue
		}
		target := m[2]
		if !known[target] {
			continue
		}
		caller := b.enclosingFunction(match.File, match.Line)
		if caller != "" {
			edges[caller] = append(edges[caller], target)
		}
	}
	return edges
}

// enclosingFunction picks the definition with the greatest line number at
// or above line within the same file.
func (b *Builder) enclosingFunction(file string, line int) string {
	defs, err := b.index.DefinitionsInFile(file)
	if err != nil {
		return ""
	}

	bestName := ""
	bestLine := 0
	for _, def := range defs {
		if def.Line <= line && def.Line > bestLine {
			bestLine = def.Line
			bestName = def.Name
		}
	}
	return bestName
}

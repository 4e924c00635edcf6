package palette

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// annotationDirective marks a comment that declares what a token is drawn on
const annotationDirective = "@contrast-on"

// parserState maintains context while lexing CSS
type parserState struct {
	filename      string
	inferredLayer string // From file path
	config        Config
	lines         []string

	// Position of the next token
	line int
	col  int

	blocks  []string        // Preludes of the open blocks, outermost first
	prelude strings.Builder // Text seen since the last { } or ;
	pending []PairSpec      // Annotations waiting for the next declaration
	tokens  []*Token
}

// ParseTokens lexes CSS content and returns its custom property declarations
// in source order.
func ParseTokens(content string, filename string, inferredLayer string, config Config) ([]*Token, error) {
	s := &parserState{
		filename:      filename,
		inferredLayer: inferredLayer,
		config:        config,
		lines:         strings.Split(content, "\n"),
		line:          1,
		col:           1,
	}

	lexer := css.NewLexer(parse.NewInputString(content))

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("%s:%d:%d: %w", filename, s.line, s.col, err)
			}
			break
		}

		line, col := s.line, s.col
		s.advance(text)

		switch {
		case tt == css.CommentToken:
			if config.ExtractPairs {
				s.pending = append(s.pending, parseAnnotation(string(text))...)
			}

		case tt == css.LeftBraceToken:
			s.openBlock()

		case tt == css.RightBraceToken:
			s.closeBlock()

		case tt == css.SemicolonToken:
			// @layer a, b; @import; or an ordinary declaration, which
			// consumes any annotation above it
			s.prelude.Reset()
			s.pending = nil

		case isCustomProperty(tt, text) && len(s.blocks) > 0:
			if closed := s.handleDeclaration(lexer, string(text), line, col); closed {
				s.closeBlock()
			}

		case tt == css.WhitespaceToken:
			s.prelude.WriteByte(' ')

		default:
			s.prelude.Write(text)
		}
	}

	return s.tokens, nil
}

// parseFile reads and parses a single CSS file
func parseFile(path string, config Config) ([]*Token, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	inferredLayer := ""
	if config.LayerInferFromPath {
		inferredLayer = inferLayerFromPath(path, config.SourceDir)
	}

	return ParseTokens(string(content), path, inferredLayer, config)
}

// inferLayerFromPath extracts a layer name from the file path.
// Pattern: layers/{layerName}/**/*.css → layerName, otherwise the file stem.
func inferLayerFromPath(filePath, sourceDir string) string {
	// Normalize separators so Windows paths behave on every platform
	path := strings.ReplaceAll(filePath, "\\", "/")
	srcDir := strings.TrimSuffix(strings.ReplaceAll(sourceDir, "\\", "/"), "/")

	relPath := strings.TrimPrefix(strings.TrimPrefix(path, srcDir), "/")

	parts := strings.Split(relPath, "/")
	if len(parts) >= 2 && parts[0] == "layers" {
		// Handle case where file IS the layer (e.g., layers/tokens.css)
		return strings.TrimSuffix(parts[1], ".css")
	}

	base := filepath.Base(relPath)
	if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" && stem != "." {
		return stem
	}
	return "n/a"
}

// advance moves the position past text. Columns count runes, not bytes.
func (s *parserState) advance(text []byte) {
	for _, r := range string(text) {
		if r == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
	}
}

func (s *parserState) openBlock() {
	s.blocks = append(s.blocks, strings.Join(strings.Fields(s.prelude.String()), " "))
	s.prelude.Reset()
	s.pending = nil
}

func (s *parserState) closeBlock() {
	if len(s.blocks) > 0 {
		s.blocks = s.blocks[:len(s.blocks)-1]
	}
	s.prelude.Reset()
	s.pending = nil
}

// scopeAndLayer derives the token scope and cascade layer from the open blocks
func (s *parserState) scopeAndLayer() (string, string) {
	var scope []string
	layer := ""
	for _, b := range s.blocks {
		if name, ok := strings.CutPrefix(b, "@layer"); ok {
			layer = strings.TrimSpace(name)
			continue
		}
		if b != "" {
			scope = append(scope, b)
		}
	}

	if layer == "" {
		layer = s.inferredLayer
	}
	if len(scope) == 0 {
		return BaseScope, layer
	}
	return strings.Join(scope, " "), layer
}

// handleDeclaration reads ": value" after a custom property name up to ; or }.
// It reports whether the enclosing block was closed by the declaration.
func (s *parserState) handleDeclaration(lexer *css.Lexer, name string, line, col int) bool {
	// Expect a colon, skipping whitespace and comments
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			return false
		}
		s.advance(text)

		if tt == css.WhitespaceToken || tt == css.CommentToken {
			continue
		}
		if tt == css.ColonToken {
			break
		}
		// Not a declaration, keep the name as prelude text
		s.prelude.WriteString(name)
		switch tt {
		case css.LeftBraceToken:
			s.openBlock()
		case css.RightBraceToken:
			return true
		case css.SemicolonToken:
			s.prelude.Reset()
		default:
			s.prelude.Write(text)
		}
		return false
	}

	var value strings.Builder
	depth := 0
	closed := false

loop:
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		s.advance(text)

		switch tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		case css.SemicolonToken:
			if depth <= 0 {
				break loop
			}
		case css.RightBraceToken:
			if depth <= 0 {
				closed = true
				break loop
			}
		case css.CommentToken:
			continue
		}
		value.Write(text)
	}

	token := &Token{
		Name:       name,
		Value:      cleanValue(value.String()),
		SourceFile: s.filename,
		Line:       line,
		Column:     col,
		Category:   categorizeToken(name),
	}
	token.Scope, token.Layer = s.scopeAndLayer()
	if line-1 < len(s.lines) {
		token.SourceLine = s.lines[line-1]
	}

	for _, p := range s.pending {
		p.Foreground = name
		token.OnPairs = append(token.OnPairs, p)
	}
	s.pending = nil
	s.prelude.Reset()

	s.tokens = append(s.tokens, token)
	return closed
}

// isCustomProperty reports whether a lexer token names a custom property
func isCustomProperty(tt css.TokenType, text []byte) bool {
	if tt != css.IdentToken && tt != css.CustomPropertyNameToken {
		return false
	}
	return len(text) > 2 && text[0] == '-' && text[1] == '-'
}

// cleanValue trims whitespace and a trailing !important
func cleanValue(v string) string {
	v = strings.TrimSpace(v)
	if idx := strings.LastIndex(v, "!"); idx >= 0 && strings.EqualFold(strings.TrimSpace(v[idx+1:]), "important") {
		v = strings.TrimSpace(v[:idx])
	}
	return v
}

// parseAnnotation extracts @contrast-on targets from a comment.
//
//	/* @contrast-on --ui-surface */
//	/* @contrast-on #ffffff large */
func parseAnnotation(comment string) []PairSpec {
	if !strings.Contains(comment, annotationDirective) {
		return nil
	}

	body := strings.TrimSuffix(strings.TrimPrefix(comment, "/*"), "*/")
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '*' || r == ','
	})

	var specs []PairSpec
	for i := 0; i < len(fields); i++ {
		if fields[i] != annotationDirective || i+1 >= len(fields) {
			continue
		}
		spec := PairSpec{Background: fields[i+1], Source: SourceAnnotation}
		i++
		if i+1 < len(fields) && fields[i+1] == "large" {
			spec.LargeText = true
			i++
		}
		specs = append(specs, spec)
	}
	return specs
}

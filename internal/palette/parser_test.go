package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokens(t *testing.T) {
	tests := []struct {
		name          string
		css           string
		expectedCount int
		checkTokens   map[string]func(*testing.T, *Token)
	}{
		{
			name:          "root token",
			css:           ":root { --ui-text: #333333; }",
			expectedCount: 1,
			checkTokens: map[string]func(*testing.T, *Token){
				"--ui-text": func(t *testing.T, tok *Token) {
					assert.Equal(t, "#333333", tok.Value)
					assert.Equal(t, BaseScope, tok.Scope)
					assert.Equal(t, CategoryText, tok.Category)
					assert.Equal(t, 1, tok.Line)
					assert.Equal(t, 9, tok.Column)
				},
			},
		},
		{
			name: "line and column tracking",
			css: `:root {
  --ui-surface: #ffffff;
	--ui-border: rgb(0, 0, 0);
}`,
			expectedCount: 2,
			checkTokens: map[string]func(*testing.T, *Token){
				"--ui-surface": func(t *testing.T, tok *Token) {
					assert.Equal(t, 2, tok.Line)
					assert.Equal(t, 3, tok.Column)
					assert.Equal(t, "  --ui-surface: #ffffff;", tok.SourceLine)
				},
				"--ui-border": func(t *testing.T, tok *Token) {
					assert.Equal(t, 3, tok.Line)
					assert.Equal(t, 2, tok.Column)
					assert.Equal(t, "rgb(0, 0, 0)", tok.Value)
					assert.Equal(t, CategoryBorder, tok.Category)
				},
			},
		},
		{
			name:          "alias and important",
			css:           `:root { --ui-text: var(--ui-gray-900) !important; --ui-link: var(--ui-blue, #00f) }`,
			expectedCount: 2,
			checkTokens: map[string]func(*testing.T, *Token){
				"--ui-text": func(t *testing.T, tok *Token) {
					assert.Equal(t, "var(--ui-gray-900)", tok.Value)
				},
				"--ui-link": func(t *testing.T, tok *Token) {
					assert.Equal(t, "var(--ui-blue, #00f)", tok.Value)
				},
			},
		},
		{
			name: "scoped themes",
			css: `.dark { --ui-surface: #121212; }
@media (prefers-color-scheme: dark) {
  :root { --ui-bg: #000; }
}`,
			expectedCount: 2,
			checkTokens: map[string]func(*testing.T, *Token){
				"--ui-surface": func(t *testing.T, tok *Token) {
					assert.Equal(t, ".dark", tok.Scope)
					assert.Equal(t, CategoryBackground, tok.Category)
				},
				"--ui-bg": func(t *testing.T, tok *Token) {
					assert.Equal(t, "@media (prefers-color-scheme: dark) :root", tok.Scope)
				},
			},
		},
		{
			name: "layer tracking",
			css: `@layer base, tokens;
@layer tokens {
  :root { --ui-primary: #1976d2; }
}`,
			expectedCount: 1,
			checkTokens: map[string]func(*testing.T, *Token){
				"--ui-primary": func(t *testing.T, tok *Token) {
					assert.Equal(t, "tokens", tok.Layer)
					assert.Equal(t, BaseScope, tok.Scope)
					assert.Equal(t, CategoryAccent, tok.Category)
				},
			},
		},
		{
			name: "ordinary declarations are ignored",
			css: `.btn { color: var(--ui-text); background: red; }
:root { --ui-space-2: 8px }`,
			expectedCount: 1,
			checkTokens: map[string]func(*testing.T, *Token){
				"--ui-space-2": func(t *testing.T, tok *Token) {
					assert.Equal(t, "8px", tok.Value)
					assert.Equal(t, CategoryPalette, tok.Category)
				},
			},
		},
		{
			name:          "columns count characters",
			css:           `.café { /* ünïcode */ --ui-text: #000; }`,
			expectedCount: 1,
			checkTokens: map[string]func(*testing.T, *Token){
				"--ui-text": func(t *testing.T, tok *Token) {
					assert.Equal(t, ".café", tok.Scope)
					assert.Equal(t, 1, tok.Line)
					assert.Equal(t, 23, tok.Column)
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := ParseTokens(tt.css, "test.css", "", Config{})
			require.NoError(t, err)
			assert.Len(t, tokens, tt.expectedCount)

			tokenMap := make(map[string]*Token)
			for _, tok := range tokens {
				tokenMap[tok.Name] = tok
			}

			for name, checkFn := range tt.checkTokens {
				tok, exists := tokenMap[name]
				require.True(t, exists, "token %s not found", name)
				assert.Equal(t, "test.css", tok.SourceFile)
				checkFn(t, tok)
			}
		})
	}
}

func TestParseTokens_InferredLayer(t *testing.T) {
	tokens, err := ParseTokens(":root { --ui-text: #000; }", "a.css", "theme", Config{})
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "theme", tokens[0].Layer)
}

func TestParseTokens_Annotations(t *testing.T) {
	css := `:root {
  /* @contrast-on --ui-surface */
  --ui-text: #212121;
  /*
   * @contrast-on --ui-primary large
   * @contrast-on #ffffff
   */
  --ui-text-muted: #777777;
  --ui-surface: #ffffff;
}`

	t.Run("extracted", func(t *testing.T) {
		tokens, err := ParseTokens(css, "test.css", "", Config{ExtractPairs: true})
		require.NoError(t, err)
		require.Len(t, tokens, 3)

		assert.Equal(t, []PairSpec{
			{Foreground: "--ui-text", Background: "--ui-surface", Source: SourceAnnotation},
		}, tokens[0].OnPairs)

		assert.Equal(t, []PairSpec{
			{Foreground: "--ui-text-muted", Background: "--ui-primary", LargeText: true, Source: SourceAnnotation},
			{Foreground: "--ui-text-muted", Background: "#ffffff", Source: SourceAnnotation},
		}, tokens[1].OnPairs)

		// Annotations apply to the next declaration only
		assert.Empty(t, tokens[2].OnPairs)
	})

	t.Run("consumed by an ordinary declaration", func(t *testing.T) {
		tokens, err := ParseTokens(`.card {
  /* @contrast-on --ui-surface */
  color: red;
  --ui-border: #eeeeee;
}`, "test.css", "", Config{ExtractPairs: true})
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Empty(t, tokens[0].OnPairs)
	})

	t.Run("disabled", func(t *testing.T) {
		tokens, err := ParseTokens(css, "test.css", "", Config{ExtractPairs: false})
		require.NoError(t, err)
		for _, tok := range tokens {
			assert.Empty(t, tok.OnPairs)
		}
	})
}

func TestParseAnnotation(t *testing.T) {
	assert.Nil(t, parseAnnotation("/* regular comment */"))
	assert.Nil(t, parseAnnotation("/* @contrast-on */"))
	assert.Equal(t, []PairSpec{
		{Background: "--a", Source: SourceAnnotation},
		{Background: "--b", LargeText: true, Source: SourceAnnotation},
	}, parseAnnotation("/* @contrast-on --a, @contrast-on --b large */"))
}

func TestCleanValue(t *testing.T) {
	assert.Equal(t, "#fff", cleanValue("  #fff  "))
	assert.Equal(t, "#fff", cleanValue(" #fff !important"))
	assert.Equal(t, "#fff", cleanValue("#fff ! IMPORTANT"))
	assert.Equal(t, "rgb(1, 2, 3)", cleanValue("rgb(1, 2, 3)"))
}

func TestInferLayerFromPath(t *testing.T) {
	tests := []struct {
		path      string
		sourceDir string
		want      string
	}{
		{path: "web/styles/layers/tokens/colors.css", sourceDir: "web/styles", want: "tokens"},
		{path: "web/styles/layers/theme.css", sourceDir: "web/styles/", want: "theme"},
		{path: `web\styles\layers\base\reset.css`, sourceDir: `web\styles`, want: "base"},
		{path: "web/styles/palette.css", sourceDir: "web/styles", want: "palette"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, inferLayerFromPath(tt.path, tt.sourceDir))
		})
	}
}

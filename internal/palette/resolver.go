package palette

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yacobolo/contrast"
)

// varPattern matches var(--name) and var(--name, fallback)
var varPattern = regexp.MustCompile(`^var\(\s*(--[A-Za-z0-9_-]+)\s*(?:,\s*(.*?))?\s*\)$`)

// varRefPattern finds every var() reference in a value, fallbacks included
var varRefPattern = regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)`)

// tokenIndex looks up tokens by scope and name
type tokenIndex struct {
	scopes  []string                     // BaseScope first, then order of appearance
	byScope map[string]map[string]*Token // Last declaration wins
	byName  map[string][]*Token          // Every declaration of a name, source order
}

func buildIndex(tokens []*Token) *tokenIndex {
	ix := &tokenIndex{
		byScope: make(map[string]map[string]*Token),
		byName:  make(map[string][]*Token),
	}

	for _, t := range tokens {
		scope, ok := ix.byScope[t.Scope]
		if !ok {
			scope = make(map[string]*Token)
			ix.byScope[t.Scope] = scope
			ix.scopes = append(ix.scopes, t.Scope)
		}
		scope[t.Name] = t
		ix.byName[t.Name] = append(ix.byName[t.Name], t)
	}

	// Keep the base scope first
	for i, s := range ix.scopes {
		if s == BaseScope && i > 0 {
			copy(ix.scopes[1:i+1], ix.scopes[:i])
			ix.scopes[0] = BaseScope
			break
		}
	}

	return ix
}

// lookup finds name as seen from scope: the scope itself, then the base
// scope, then the first declaration anywhere.
func (ix *tokenIndex) lookup(name, scope string) *Token {
	if t, ok := ix.byScope[scope][name]; ok {
		return t
	}
	if t, ok := ix.byScope[BaseScope][name]; ok {
		return t
	}
	if decls := ix.byName[name]; len(decls) > 0 {
		return decls[0]
	}
	return nil
}

// ResolveTokens follows var() aliases and parses every token value as a color.
// Tokens whose value is not a color (spacing, fonts) stay unresolved.
func ResolveTokens(tokens []*Token) {
	ix := buildIndex(tokens)
	for _, t := range tokens {
		ix.resolve(t)
	}
}

func (ix *tokenIndex) resolve(t *Token) {
	rgb, alias, err := ix.resolveValue(t.Value, t.Scope, map[*Token]bool{t: true})
	if err != nil {
		t.Resolved = false
		t.reason = err.Error()
		return
	}
	t.RGB = rgb
	t.Resolved = true
	t.AliasOf = alias
}

// resolveValue resolves a raw value within scope. visited guards alias cycles.
func (ix *tokenIndex) resolveValue(value, scope string, visited map[*Token]bool) (contrast.RGB, string, error) {
	m := varPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		rgb, err := contrast.ParseColor(value)
		if err != nil {
			return contrast.RGB{}, "", fmt.Errorf("value %q is not a color", value)
		}
		return rgb, "", nil
	}

	name, fallback := m[1], m[2]
	target := ix.lookup(name, scope)
	if target == nil {
		if fallback != "" {
			return ix.resolveValue(fallback, scope, visited)
		}
		return contrast.RGB{}, "", fmt.Errorf("unknown token %s", name)
	}
	if visited[target] {
		return contrast.RGB{}, "", fmt.Errorf("alias cycle through %s", name)
	}
	visited[target] = true

	rgb, alias, err := ix.resolveValue(target.Value, scope, visited)
	if err != nil {
		return contrast.RGB{}, "", err
	}
	if alias == "" {
		alias = name
	}
	return rgb, alias, nil
}

// aliasNames returns name plus every token name it can reach through var()
// references, following the declarations of each name in every scope.
func (ix *tokenIndex) aliasNames(name string) map[string]bool {
	names := make(map[string]bool)
	queue := []string{name}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if names[n] {
			continue
		}
		names[n] = true
		for _, t := range ix.byName[n] {
			for _, m := range varRefPattern.FindAllStringSubmatch(t.Value, -1) {
				queue = append(queue, m[1])
			}
		}
	}
	return names
}

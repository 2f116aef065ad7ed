package slug

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

//go:generate mockery --name Checker --filename checker.go

// Checker reports whether a slug is already taken outside the current batch.
type Checker interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// Generator produces unique slugs against a Checker. One Generator covers
// one batch: every slug it returns is also recorded as claimed, so a later
// call in the same batch can't reuse it even before the row is persisted.
type Generator struct {
	checker Checker
	claimed map[string]struct{}
}

// NewGenerator returns new Generator. A nil checker limits uniqueness to the
// generator's own batch.
func NewGenerator(checker Checker) *Generator {
	return &Generator{
		checker: checker,
		claimed: map[string]struct{}{},
	}
}

// Make returns the base slug for text: lowercased, transliterated, split on
// whitespace and hyphen runs, stripped down to [a-z0-9-] and joined with
// hyphens. fallbackID disambiguates inputs which leave no usable characters;
// zero means no disambiguator.
func Make(text string, fallbackID int32) string {
	tokens := strings.FieldsFunc(transliterate(strings.ToLower(text)), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})

	parts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.Map(keepSlugRune, token)
		if token != "" {
			parts = append(parts, token)
		}
	}

	if len(parts) == 0 {
		if fallbackID > 0 {
			return fmt.Sprintf("product-%d", fallbackID)
		}
		return "product"
	}

	return strings.Join(parts, "-")
}

// Unique returns the base slug for text, suffixed with -1, -2, … until it
// collides with neither the checker nor a slug already claimed in this batch.
func (g *Generator) Unique(ctx context.Context, text string, fallbackID int32) (string, error) {
	base := Make(text, fallbackID)

	candidate := base
	for counter := 1; ; counter++ {
		taken, err := g.taken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("can't check slug %q: %w", candidate, err)
		}
		if !taken {
			g.claimed[candidate] = struct{}{}
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

func (g *Generator) taken(ctx context.Context, candidate string) (bool, error) {
	if _, ok := g.claimed[candidate]; ok {
		return true, nil
	}
	if g.checker == nil {
		return false, nil
	}
	return g.checker.SlugExists(ctx, candidate)
}

func keepSlugRune(r rune) rune {
	if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' {
		return r
	}
	return -1
}

// Package slug derives unique URL slugs for catalog products.
package slug

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	gosimple "github.com/gosimple/slug"
)

const (
	DefaultSuffixLength = 4
	DefaultMaxAttempts  = 20
	DefaultPlaceholder  = "product"

	// MaxLength matches the width of the products.slug column.
	MaxLength = 50

	separator = "-"
	alphabet  = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// ErrExhausted is returned when every suffixed candidate was already taken.
var ErrExhausted = errors.New("slug: no unique slug found")

type Generator struct {
	suffixLength int
	maxAttempts  int
	placeholder  string
	random       func(n int) string
}

type Option func(*Generator)

// WithSuffixLength sets how many random characters disambiguate a taken slug.
func WithSuffixLength(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.suffixLength = n
		}
	}
}

// WithMaxAttempts caps how many suffixed candidates are tried.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithPlaceholder sets the slug used for titles with no usable characters.
func WithPlaceholder(s string) Option {
	return func(g *Generator) {
		if s = Slugify(s); s != "" {
			g.placeholder = s
		}
	}
}

// WithRandom replaces the suffix source. random must return n characters.
func WithRandom(random func(n int) string) Option {
	return func(g *Generator) {
		if random != nil {
			g.random = random
		}
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		suffixLength: DefaultSuffixLength,
		maxAttempts:  DefaultMaxAttempts,
		placeholder:  DefaultPlaceholder,
		random:       randomString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Slugify lowercases and transliterates title, collapsing every run of other
// characters into a single separator. It returns "" when nothing usable remains.
func Slugify(title string) string {
	return gosimple.Make(title)
}

// Generate returns a slug for title that exists reports as free.
// The plain slugified title is preferred; when it is taken, a fresh random suffix is
// appended on every attempt until one is free or the attempts run out.
// Generate only queries; storing the slug is up to the caller.
func (g *Generator) Generate(ctx context.Context, title string, exists func(ctx context.Context, candidate string) (bool, error)) (string, error) {
	base := Slugify(title)
	if base == "" {
		base = g.placeholder
	}
	base = truncate(base, MaxLength)

	taken, err := exists(ctx, base)
	if err != nil {
		return "", fmt.Errorf("slug: check %q: %w", base, err)
	}
	if !taken {
		return base, nil
	}

	stem := truncate(base, MaxLength-len(separator)-g.suffixLength)
	for range g.maxAttempts {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		candidate := stem + separator + g.random(g.suffixLength)
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("slug: check %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w for %q after %d attempts", ErrExhausted, base, g.maxAttempts)
}

// truncate cuts s to at most n bytes without leaving a trailing separator.
// Slugs are ASCII, so byte and rune lengths agree.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimRight(s[:n], separator)
}

func randomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}

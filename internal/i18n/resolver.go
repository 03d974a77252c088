// Package i18n maps locale codes to the content file-naming convention.
//
// The default locale owns the bare extension (`hello.mdx`); every other
// locale carries an explicit suffix before the extension (`hello.en.mdx`).
// There is no fallback between locales: a locale with zero matching files
// simply has no documents.
package i18n

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Ext is the content file extension the resolver operates on.
const Ext = ".mdx"

// ErrUnsupportedLocale is returned when a requested locale is not in the
// configured locale set.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// localeSuffixPattern matches a two-letter locale suffix before the base
// extension, e.g. "hello.en.mdx".
var localeSuffixPattern = regexp.MustCompile(`\.[a-z]{2}\.mdx$`)

// Resolver decides which content files belong to which locale.
type Resolver struct {
	defaultLocale string
	locales       map[string]struct{}
	ordered       []string
}

// NewResolver builds a resolver over an explicit locale set.
// The default locale must be a member of the set.
func NewResolver(locales []string, defaultLocale string) (*Resolver, error) {
	r := &Resolver{
		defaultLocale: strings.ToLower(strings.TrimSpace(defaultLocale)),
		locales:       make(map[string]struct{}, len(locales)),
	}
	for _, l := range locales {
		code := strings.ToLower(strings.TrimSpace(l))
		if code == "" {
			continue
		}
		if _, ok := r.locales[code]; ok {
			continue
		}
		r.locales[code] = struct{}{}
		r.ordered = append(r.ordered, code)
	}
	if len(r.ordered) == 0 {
		return nil, errors.New("i18n: empty locale set")
	}
	if _, ok := r.locales[r.defaultLocale]; !ok {
		return nil, fmt.Errorf("i18n: default locale %q not in locale set %v", r.defaultLocale, r.ordered)
	}
	return r, nil
}

// Default returns the default locale code.
func (r *Resolver) Default() string { return r.defaultLocale }

// Locales returns the configured locale codes in configuration order.
func (r *Resolver) Locales() []string {
	out := make([]string, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Validate rejects locale codes outside the configured set.
func (r *Resolver) Validate(locale string) error {
	code := strings.ToLower(strings.TrimSpace(locale))
	if _, ok := r.locales[code]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	return nil
}

// Normalize lower-cases a locale code, substituting the default for blank.
func (r *Resolver) Normalize(locale string) string {
	code := strings.ToLower(strings.TrimSpace(locale))
	if code == "" {
		return r.defaultLocale
	}
	return code
}

// Suffix returns the filename fragment between a document's base name and
// the extension: "" for the default locale, ".en" for a locale "en".
func (r *Resolver) Suffix(locale string) string {
	code := r.Normalize(locale)
	if code == r.defaultLocale {
		return ""
	}
	return "." + code
}

// Matches reports whether a content filename belongs to the given locale.
// The filename is the base name, not a path.
//
// The default locale matches bare `*.mdx` names but never a name that
// carries another locale's suffix (double-extension exclusion).
func (r *Resolver) Matches(filename, locale string) bool {
	if !strings.HasSuffix(filename, Ext) {
		return false
	}
	code := r.Normalize(locale)
	if code == r.defaultLocale {
		return !localeSuffixPattern.MatchString(filename)
	}
	return strings.HasSuffix(filename, "."+code+Ext)
}

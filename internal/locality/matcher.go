package locality

import (
	"fmt"
	"regexp"
	"strings"
)

// Separator joins the components of a canonical key.
const Separator = "-"

// Replacement is a literal find/replace fix applied to a string.
type Replacement struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

// Matcher decomposes a raw locality string into its components and
// reassembles them into a canonical key.
type Matcher struct {
	pattern *regexp.Regexp
	before  []Replacement
	after   []Replacement
}

// NewMatcher compiles pattern and returns a Matcher applying before to the
// raw input and after to the joined key. Replacements run in order.
func NewMatcher(pattern string, before, after []Replacement) (*Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling locality pattern %q: %w", pattern, err)
	}

	if re.NumSubexp() == 0 {
		return nil, fmt.Errorf("locality pattern %q has no capture groups", pattern)
	}

	return &Matcher{
		pattern: re,
		before:  append([]Replacement(nil), before...),
		after:   append([]Replacement(nil), after...),
	}, nil
}

// Clean applies the "before" replacements to s.
func (m *Matcher) Clean(s string) string {
	return replaceAll(s, m.before)
}

// Split cleans raw and returns the captured components, or false when the
// pattern does not match.
func (m *Matcher) Split(raw string) ([]string, bool) {
	groups := m.pattern.FindStringSubmatch(m.Clean(raw))
	if groups == nil {
		return nil, false
	}

	return groups[1:], true
}

// Key builds the canonical key for raw followed by any extra components.
// It reports false when raw does not match the pattern.
func (m *Matcher) Key(raw string, extra ...string) (string, bool) {
	parts, ok := m.Split(raw)
	if !ok {
		return "", false
	}

	parts = append(parts, extra...)

	return replaceAll(strings.Join(parts, Separator), m.after), true
}

func replaceAll(s string, fixes []Replacement) string {
	for _, r := range fixes {
		if r.Old == "" {
			continue
		}

		s = strings.ReplaceAll(s, r.Old, r.New)
	}

	return s
}

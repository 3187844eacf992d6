// Package iregexp compiles RFC 9485 I-Regexp patterns for RFC 9535's
// match()/search() functions, using github.com/dlclark/regexp2's
// backtracking engine rather than stdlib regexp (RE2), which cannot
// express some constructs the XML-Schema-derived I-Regexp dialect allows.
//
// Translation is necessarily lossy for exotic constructs; whenever a
// pattern cannot be represented, Compile returns an error and callers are
// expected to treat that as "no match" rather than propagate it, per
// RFC 9535's match()/search() contract.
package iregexp

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Regexp is a compiled I-Regexp pattern.
type Regexp struct {
	whole *regexp2.Regexp // anchored for Match
	part  *regexp2.Regexp // unanchored for Search
}

// Compile translates and compiles an I-Regexp pattern.
func Compile(pattern string) (*Regexp, error) {
	translated, err := translate(pattern)
	if err != nil {
		return nil, fmt.Errorf("iregexp: %w", err)
	}

	part, err := regexp2.Compile(translated, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("iregexp: compiling %q: %w", pattern, err)
	}

	// I-Regexp match() is implicitly whole-string; RFC 9535 anchors the
	// compiled pattern rather than relying on regexp2's RightToLeft/Anchor
	// options, which apply to the match start only.
	whole, err := regexp2.Compile(`\A(?:`+translated+`)\z`, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("iregexp: anchoring %q: %w", pattern, err)
	}

	return &Regexp{whole: whole, part: part}, nil
}

// MatchString reports whether s matches the pattern in its entirety.
func (r *Regexp) MatchString(s string) bool {
	ok, err := r.whole.MatchString(s)
	return err == nil && ok
}

// SearchString reports whether the pattern matches anywhere within s.
func (r *Regexp) SearchString(s string) bool {
	ok, err := r.part.MatchString(s)
	return err == nil && ok
}

// translate rewrites the handful of I-Regexp/XPath constructs that differ
// from .NET-style regex syntax. I-Regexp forbids unescaped literal '{' not
// starting a valid quantifier and anchors `^`/`$` to the whole pattern
// (not per-line) by default, which is already regexp2's default with
// Multiline unset, so most patterns pass through unchanged.
func translate(pattern string) (string, error) {
	if strings.Contains(pattern, "(?<") {
		// Named groups and lookbehind constructs such as (?<name>...),
		// (?<=...), (?<!...) are outside I-Regexp's grammar; reject so
		// callers get a clean "not representable" error rather than a
		// pattern that silently means something stricter/looser.
		return "", fmt.Errorf("construct not supported by I-Regexp: %s", pattern)
	}
	return pattern, nil
}

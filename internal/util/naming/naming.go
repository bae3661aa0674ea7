package naming

import (
	"errors"
	"fmt"
	"strings"
)

// Style selects how components are joined.
type Style string

const (
	StyleHyphenated Style = "hyphenated"
	StyleCompact    Style = "compact"
)

// DefaultMaxLength is used when Options.MaxLength is zero.
const DefaultMaxLength = 63

// minBaseLength is how far the base name is shortened before the suffix is
// touched.
const minBaseLength = 3

// Request holds the inputs of one name.
type Request struct {
	// Kind is the discriminator (kind or its abbreviation). Never truncated.
	Kind        string
	Stage       int
	Environment string
	BaseName    string
	Suffix      string
	// Owner tells apart deployments sharing one Registry. Name ignores it.
	Owner string
}

// Options tune the layout of a name.
type Options struct {
	MaxLength int
	Style     Style
	// IncludeStage adds an "sNN" segment. Off by default so names stay stable
	// as the stage rises.
	IncludeStage bool
}

// LengthError means the fixed components alone exceed the length limit.
type LengthError struct {
	Kind      string
	MaxLength int
	MinLength int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("name for %q needs at least %d characters, limit is %d", e.Kind, e.MinLength, e.MaxLength)
}

// Name returns the name for req.
func Name(req Request, opts Options) (string, error) {
	style := opts.Style
	if style == "" {
		style = StyleHyphenated
	}
	if style != StyleHyphenated && style != StyleCompact {
		return "", fmt.Errorf("unknown naming style %q", style)
	}
	maxLen := opts.MaxLength
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}

	kind := sanitize(req.Kind, style)
	if kind == "" {
		return "", errors.New("naming: kind is required")
	}
	env := sanitize(req.Environment, style)
	stage := ""
	if opts.IncludeStage {
		stage = fmt.Sprintf("s%02d", req.Stage)
	}
	base := sanitize(req.BaseName, style)
	suffix := sanitize(req.Suffix, style)

	name := join(style, base, kind, env, stage, suffix)
	for len(name) > maxLen {
		switch {
		case len(base) > minBaseLength:
			base = trim(base, style)
		case len(suffix) > 0:
			suffix = trim(suffix, style)
		case len(base) > 0:
			base = trim(base, style)
		default:
			return "", &LengthError{Kind: req.Kind, MaxLength: maxLen, MinLength: len(name)}
		}
		name = join(style, base, kind, env, stage, suffix)
	}
	return name, nil
}

func join(style Style, parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	if style == StyleCompact {
		return strings.Join(nonEmpty, "")
	}
	return strings.Join(nonEmpty, "-")
}

// trim drops the last character and any separator left dangling.
func trim(s string, style Style) string {
	s = s[:len(s)-1]
	if style == StyleHyphenated {
		s = strings.TrimRight(s, "-")
	}
	return s
}

// sanitize lower-cases s and keeps [a-z0-9]. Hyphenated names keep single
// inner hyphens in place of any other run of characters.
func sanitize(s string, style Style) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		if style == StyleHyphenated {
			pendingSep = true
		}
	}
	return b.String()
}

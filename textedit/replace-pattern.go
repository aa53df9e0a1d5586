package textedit

import (
	"fmt"
	"iter"
	"regexp"
)

// ReplacePattern makes an editor that rewrites the first line matching re
// using re.ReplaceAllString with the given replacement. Submatch references
// ($1, ${name}) work as in the regexp package, which is how callers preserve
// the whitespace and labels around the value they change.
//
// This editor is stateful and can only be used once.
func ReplacePattern(re *regexp.Regexp, replacement string) *patternEditor {
	return &patternEditor{
		re:          re,
		replacement: replacement,
	}
}

type patternEditor struct {
	re          *regexp.Regexp
	replacement string
	mustMatch   bool

	found bool
}

// MustMatch makes the editor return an error at EOF if no line matched.
func (p *patternEditor) MustMatch() *patternEditor {
	p.mustMatch = true
	return p
}

// Found returns whether the replacement was made. It is only valid after the
// editor is used.
func (p *patternEditor) Found() bool { return p.found }

// Next implements Editor.
func (p *patternEditor) Next(line string) (output iter.Seq[string], err error) {
	if !p.found && p.re.MatchString(line) {
		p.found = true
		return each(p.re.ReplaceAllString(line, p.replacement)), nil
	}
	return each(line), nil
}

// EOF implements Editor.
func (p *patternEditor) EOF() (output iter.Seq[string], err error) {
	if p.mustMatch && !p.found {
		return nil, fmt.Errorf("no line matching %s", p.re)
	}
	return empty(), nil
}

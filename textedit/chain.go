package textedit

import "iter"

// Chain composes editors into one pass: each line flows through the editors
// in order, and lines one editor emits are seen by the editors after it.
// EOF output from an earlier editor is likewise routed through the rest.
func Chain(editors ...Editor) Editor {
	return chain(editors)
}

type chain []Editor

// Next implements Editor.
func (c chain) Next(line string) (output iter.Seq[string], err error) {
	lines := []string{line}
	for _, e := range c {
		lines, err = pumpThrough(e, lines)
		if err != nil {
			return nil, err
		}
	}
	return each(lines...), nil
}

// EOF implements Editor.
func (c chain) EOF() (output iter.Seq[string], err error) {
	var result []string
	for i, e := range c {
		out, err := e.EOF()
		if err != nil {
			return nil, err
		}
		lines := collect(out)
		// anything this editor appends still has to pass the later editors
		for _, rest := range c[i+1:] {
			lines, err = pumpThrough(rest, lines)
			if err != nil {
				return nil, err
			}
		}
		result = append(result, lines...)
	}
	return each(result...), nil
}

func pumpThrough(e Editor, lines []string) ([]string, error) {
	var out []string
	for _, l := range lines {
		o, err := e.Next(l)
		if err != nil {
			return nil, err
		}
		out = append(out, collect(o)...)
	}
	return out, nil
}

func collect(s iter.Seq[string]) []string {
	var out []string
	for l := range s {
		out = append(out, l)
	}
	return out
}

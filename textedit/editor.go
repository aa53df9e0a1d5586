// Package textedit rewrites text files line by line, preserving everything an
// editor doesn't explicitly touch. It is used to bump version constants in
// place without disturbing the surrounding source.
package textedit

import "iter"

type Editor interface {
	// Next is called after each input line is read. If err is non-nil, the edit
	// operation will fail. Otherwise any lines in output will be emitted. This
	// must include the input line if it should be copied to the output.
	Next(line string) (output iter.Seq[string], err error)
	// EOF is called after all input lines have been processed through Next. Its
	// return will be processed the same way as Next.
	EOF() (output iter.Seq[string], err error)
}

func empty() iter.Seq[string] {
	return func(func(string) bool) {}
}

func each(v ...string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range v {
			if !yield(e) {
				break
			}
		}
	}
}

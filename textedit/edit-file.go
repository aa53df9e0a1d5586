package textedit

import (
	"bufio"
	"hash/crc32"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// EditFile runs the editor over fileName and atomically replaces it with the
// result. It reports whether the file was actually changed; an edit that
// produces identical content leaves the original file untouched.
func EditFile(
	fileName string,
	editor Editor,
) (changed bool, err error) {
	in, err := os.Open(fileName)
	if err != nil {
		return false, err
	}
	defer in.Close() // nolint:errcheck
	d := filepath.Dir(fileName)
	out, err := os.CreateTemp(d, filepath.Base(fileName)+".tmp")
	if err != nil {
		return false, err
	}
	defer out.Close() // nolint:errcheck
	// keep a running checksum so we know if we can skip the final rename due to
	// not making any changes. This doesn't need to be a strong hash.
	hIn, hOut := crc32.NewIEEE(), crc32.NewIEEE()
	mr := io.TeeReader(in, hIn)
	mw := io.MultiWriter(hOut, out)
	if err := Edit(mr, mw, editor); err != nil {
		_ = out.Close()
		_ = os.Remove(out.Name())
		return false, err
	}
	// protect user data: flush the new file to disk before we do the rename
	if err := out.Sync(); err != nil {
		_ = out.Close()
		_ = os.Remove(out.Name())
		return false, err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(out.Name())
		return false, err
	}
	if err := in.Close(); err != nil {
		return false, err
	}
	// if the checksums match, we didn't make any changes, so we can skip the
	// rename and avoid the mtime/etc update of the file.
	if hIn.Sum32() != hOut.Sum32() {
		if err := os.Rename(out.Name(), fileName); err != nil {
			_ = os.Remove(out.Name())
			return false, err
		}
		return true, nil
	}
	// we didn't make any changes, so just remove the temp file
	if err := os.Remove(out.Name()); err != nil {
		return false, err
	}
	return false, nil
}

func Edit(
	in io.Reader,
	out io.Writer,
	editor Editor,
) error {
	emit := func(output iter.Seq[string]) error {
		for outLine := range output {
			if !strings.HasSuffix(outLine, "\n") {
				outLine += "\n"
			}
			if _, err := out.Write([]byte(outLine)); err != nil {
				return err
			}
		}
		return nil
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		output, err := editor.Next(scanner.Text())
		if err != nil {
			return err
		}
		if err := emit(output); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	output, err := editor.EOF()
	if err != nil {
		return err
	}
	return emit(output)
}

// Package util holds small helpers shared by the commands.
package util

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/tubevault/tubevault/filesystem"
	"golang.org/x/term"
)

// Quantify formats count followed by the matching noun.
func Quantify(count int, singular, plural string) string {
	return fmt.Sprintf("%d %s", count, lo.Ternary(count == 1, singular, plural))
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Wrap word-wraps s to the terminal width, never wider than limit.
func Wrap(s string, limit int) string {
	width := limit
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = lo.Min([]int{w, limit})
	}

	return wordwrap.String(s, width)
}

// PrintErasable writes a status line to w and returns a function that blanks it out again.
func PrintErasable(w io.Writer, msg string) (erase func()) {
	_, _ = fmt.Fprintf(w, "\r%s", msg)
	return func() {
		_, _ = fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", utf8.RuneCountInString(msg)))
	}
}

// RemoveIfExists deletes a file or a directory tree. A missing path is not an error.
func RemoveIfExists(path string) error {
	exists, err := afero.Exists(filesystem.API(), path)
	if err != nil || !exists {
		return err
	}

	return filesystem.API().RemoveAll(path)
}

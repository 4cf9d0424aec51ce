package xcdndiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/gslf/xcdn-go/ast"
	"github.com/gslf/xcdn-go/serialize"
)

// Diff serializes a and b under f and returns their unified line diff.
func Diff(a, b *ast.Document, f serialize.Format) string {
	return DiffText(serialize.Serialize(a, f), serialize.Serialize(b, f))
}

// DiffText returns a unified line diff between two texts, each output line
// prefixed with "- " (only in a), "+ " (only in b), or "  " (in both).
// DiffLinesToChars collapses each line to a single rune so DiffMainRunes
// computes a line-granularity diff instead of a character-granularity
// one, and DiffCharsToLines expands the result back to text.
func DiffText(a, b string) string {
	dmp := diffpatch.New()
	aChars, bChars, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMainRunes([]rune(aChars), []rune(bChars), false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, ln := range splitLines(d.Text) {
			sb.WriteString(prefix)
			sb.WriteString(ln)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Equal reports whether a and b serialize to the same text under f —
// a convenience for callers that just want a boolean rather than a diff.
func Equal(a, b *ast.Document, f serialize.Format) bool {
	return serialize.Serialize(a, f) == serialize.Serialize(b, f)
}

// splitLines splits s on '\n', dropping the single trailing empty element
// left by a trailing newline. go-diff's line chunks always end in '\n'
// except possibly the last chunk of the whole diff.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

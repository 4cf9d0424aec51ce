package highlight

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/gslf/xcdn-go/ast"
	"github.com/gslf/xcdn-go/serialize"
)

// Highlight renders doc under format f with p's colors applied, via
// serialize.SerializeColor. A nil p uses DefaultPalette.
func Highlight(doc *ast.Document, f serialize.Format, p *Palette) string {
	if p == nil {
		p = DefaultPalette()
	}
	return serialize.SerializeColor(doc, f, p.ColorFunc())
}

// Pretty is Highlight(doc, serialize.DefaultFormat(), DefaultPalette()).
func Pretty(doc *ast.Document) string {
	return Highlight(doc, serialize.DefaultFormat(), DefaultPalette())
}

// IsTerminalWriter reports whether w is an *os.File connected to a
// terminal, for callers deciding whether to turn color on by default.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

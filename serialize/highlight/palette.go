package highlight

import (
	"strings"

	"github.com/fatih/color"

	"github.com/gslf/xcdn-go/serialize"
)

// Palette maps each serialize.Attr to the colorizer that renders it on a
// terminal. Display roles are keyed on Attr alone: xCDN's display roles
// don't vary by container kind, so there is no need for a second axis of
// per-type colors.
type Palette struct {
	Default func(string, ...any) string
	Map     map[serialize.Attr]func(string, ...any) string
}

// DefaultPalette returns the color scheme this package ships with: one
// colorizer per Attr, with '%' in the input escaped so it prints literally.
func DefaultPalette() *Palette {
	p := &Palette{
		Default: colorPlain,
		Map:     map[serialize.Attr]func(string, ...any) string{},
	}
	p.Map[serialize.AttrPunct] = color.RGB(255, 0, 196).SprintfFunc()
	p.Map[serialize.AttrKey] = color.RGB(196, 96, 16).SprintfFunc()
	p.Map[serialize.AttrTag] = color.RGB(74, 92, 138).SprintfFunc()
	p.Map[serialize.AttrAnnotation] = color.RGB(168, 0, 196).SprintfFunc()
	p.Map[serialize.AttrNull] = color.RGB(168, 0, 196).SprintfFunc()
	p.Map[serialize.AttrBool] = color.CyanString
	p.Map[serialize.AttrNumber] = color.RGB(128, 216, 236).SprintfFunc()
	p.Map[serialize.AttrString] = color.RGB(8, 196, 16).SprintfFunc()
	p.Map[serialize.AttrTyped] = color.RGB(88, 158, 86).SprintfFunc()

	for attr, f := range p.Map {
		f := f
		p.Map[attr] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return p
}

// NoColorPalette returns a Palette whose Get always returns the input
// unchanged, for callers that want the highlight API without escape codes
// (e.g. output already known to be piped, see IsTerminalWriter).
func NoColorPalette() *Palette {
	return &Palette{Default: colorPlain, Map: map[serialize.Attr]func(string, ...any) string{}}
}

func colorPlain(v string, _ ...any) string { return v }

// Get returns the colorizer registered for attr, or p.Default if none is.
func (p *Palette) Get(attr serialize.Attr) func(string, ...any) string {
	if f := p.Map[attr]; f != nil {
		return f
	}
	return p.Default
}

// Color renders s styled as attr.
func (p *Palette) Color(attr serialize.Attr, s string) string {
	return p.Get(attr)(s)
}

// ColorFunc adapts p to the serialize.ColorFunc signature.
func (p *Palette) ColorFunc() serialize.ColorFunc {
	return func(attr serialize.Attr, s string) string {
		return p.Color(attr, s)
	}
}

package serialize

// Format controls the layout a Serialize call produces. It has no effect on
// which Document a given input parses to; it is purely an output-shaping
// knob, mirroring xcdn_format_t in the C reference implementation.
type Format struct {
	Pretty         bool
	Indent         int
	TrailingCommas bool
}

// DefaultFormat returns the pretty-printing default: indented, one entry
// per line, trailing commas on.
func DefaultFormat() Format {
	return Format{Pretty: true, Indent: 2, TrailingCommas: true}
}

// CompactFormat returns the single-line, no-trailing-comma preset.
func CompactFormat() Format {
	return Format{Pretty: false, Indent: 0, TrailingCommas: false}
}

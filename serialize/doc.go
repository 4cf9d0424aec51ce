// Package serialize turns an *ast.Document back into xCDN source text,
// honoring a Format that controls pretty vs. compact layout, indentation
// width, and trailing-comma emission.
package serialize

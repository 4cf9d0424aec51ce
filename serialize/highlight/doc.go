// Package highlight layers ANSI color onto serialize's output. It never
// changes what text is produced, only how it looks on a terminal.
package highlight

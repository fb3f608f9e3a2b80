// Package diagfmt renders a single diag.Error as a human-readable,
// optionally colorized report with a source-line excerpt and a caret
// underline, the same shape surge's own diagnostic printer uses.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lumen/internal/diag"
	"lumen/internal/source"
)

const tabWidth = 8

// Pretty writes a one-diagnostic report to w. Unlike surge's Bag-based
// printer, lumen's pipeline halts at its first error, so there is never
// more than one diag.Error to render.
func Pretty(w io.Writer, err *diag.Error, fs *source.FileSet, useColor bool) {
	errorColor := color.New(color.FgRed, color.Bold)
	pathColor := color.New(color.FgWhite, color.Bold)
	kindColor := color.New(color.FgMagenta)
	lineNumColor := color.New(color.FgBlue)
	underlineColor := color.New(color.FgRed, color.Bold)

	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !useColor

	if int(err.Span.File) >= fs.Len() {
		// No file was loaded yet when this error fired (a manifest or
		// directory-walk failure before the first source file exists).
		fmt.Fprintf(w, "%s %s: %s\n", errorColor.Sprint("error"), kindColor.Sprint(err.Kind), err.Message) //nolint:errcheck
		return
	}

	start, end := fs.Resolve(err.Span)
	f := fs.Get(err.Span.File)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", //nolint:errcheck
		pathColor.Sprint(f.Path),
		start.Line, start.Col,
		errorColor.Sprint("error"),
		kindColor.Sprint(err.Kind),
		err.Message,
	)

	if err.Span.Empty() {
		return
	}

	lineText := f.GetLine(start.Line)
	lineNumStr := fmt.Sprintf("%d", start.Line)
	gutter := fmt.Sprintf("%s | ", lineNumColor.Sprint(lineNumStr))
	gutterLen := len(lineNumStr) + 3

	io.WriteString(w, gutter)   //nolint:errcheck
	io.WriteString(w, lineText) //nolint:errcheck
	io.WriteString(w, "\n")     //nolint:errcheck

	endCol := end.Col
	if end.Line > start.Line {
		lineLen, convErr := safecast.Conv[uint32](len(lineText))
		if convErr != nil {
			panic(fmt.Errorf("diagfmt: line length overflow: %w", convErr))
		}
		endCol = lineLen + 1
	}

	visualStart := visualWidthUpTo(lineText, start.Col, tabWidth)
	visualEnd := visualWidthUpTo(lineText, endCol, tabWidth)

	var underline strings.Builder
	for range gutterLen {
		underline.WriteByte(' ')
	}
	for range visualStart {
		underline.WriteByte(' ')
	}
	if spanLen := visualEnd - visualStart; spanLen <= 0 {
		underline.WriteByte('^')
	} else {
		underline.WriteByte('^')
		for range spanLen - 1 {
			underline.WriteByte('~')
		}
	}
	fmt.Fprintln(w, underlineColor.Sprint(underline.String())) //nolint:errcheck
}

// visualWidthUpTo returns the display width of s up to (but not
// including) the 1-based byte column byteCol, accounting for tab stops
// and wide (East Asian) runes via go-runewidth.
func visualWidthUpTo(s string, byteCol uint32, tabWidth int) int {
	if byteCol <= 1 {
		return 0
	}

	bytePos := 0
	visualPos := 0
	for _, r := range s {
		if bytePos >= int(byteCol-1) {
			break
		}
		if r == '\t' {
			visualPos = (visualPos + tabWidth) / tabWidth * tabWidth
		} else {
			visualPos += runewidth.RuneWidth(r)
		}
		bytePos += len(string(r))
	}
	return visualPos
}

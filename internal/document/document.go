// Package document loads the text shown in the pager and cuts viewport
// windows out of it. Widths are measured in terminal cells, ANSI-aware.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Options controls how a document is prepared for display.
type Options struct {
	TabWidth  int
	Highlight bool
	// Style is a chroma style name; unknown names use chroma's fallback.
	Style string
}

// Document is an immutable, display-ready set of lines.
type Document struct {
	name  string
	lines []string
	width int
}

// Load reads path and prepares it for display.
func Load(path string, opts Options) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return New(filepath.Base(path), string(data), opts), nil
}

// New prepares text for display. name selects the highlighting lexer.
func New(name, text string, opts Options) *Document {
	if opts.TabWidth < 1 {
		opts.TabWidth = 4
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	d := &Document{name: name}
	if text == "" {
		return d
	}

	raw := strings.Split(text, "\n")
	for i, l := range raw {
		raw[i] = expandTabs(l, opts.TabWidth)
	}

	d.lines = raw
	if opts.Highlight {
		if hl := newHighlighter(name, opts.Style); hl != nil {
			d.lines = hl.render(raw)
		}
	}
	for _, l := range d.lines {
		d.width = max(d.width, ansi.StringWidth(l))
	}
	return d
}

// Name returns the display name.
func (d *Document) Name() string { return d.name }

// Lines returns the number of lines.
func (d *Document) Lines() int { return len(d.lines) }

// Width returns the widest line, in cells.
func (d *Document) Width() int { return d.width }

// Line returns line i, or "" when out of range.
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// Window returns the width×height block whose top-left corner is at
// (left, top), padded with spaces.
func (d *Document) Window(top, left, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, height)
	for i := range rows {
		line := ansi.Cut(d.Line(top+i), left, left+width)
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		rows[i] = line
	}
	return strings.Join(rows, "\n")
}

func expandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := width - col%width
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += ansi.StringWidth(string(r))
	}
	return b.String()
}

package document

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

type highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// newHighlighter returns nil when no lexer matches name.
func newHighlighter(name, styleName string) *highlighter {
	lexer := lexers.Match(name)
	if lexer == nil {
		if ext := filepath.Ext(name); ext != "" {
			lexer = lexers.Get(strings.TrimPrefix(ext, "."))
		}
	}
	if lexer == nil {
		return nil
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &highlighter{lexer: chroma.Coalesce(lexer), style: style}
}

// render highlights lines as one source so multi-line tokens (block
// comments, raw strings) colour correctly. The result has len(lines)
// entries; on lexer failure the input is returned unchanged.
func (h *highlighter) render(lines []string) []string {
	it, err := h.lexer.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		return lines
	}

	out := make([]string, 0, len(lines))
	var cur strings.Builder
	for _, tok := range it.Tokens() {
		style := h.tokenStyle(tok.Type)
		parts := strings.Split(tok.Value, "\n")
		for i, p := range parts {
			if i > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
			if p != "" {
				cur.WriteString(style.Render(p))
			}
		}
	}
	out = append(out, cur.String())

	// Lexers may add a trailing newline.
	if len(out) > len(lines) {
		out = out[:len(lines)]
	}
	for len(out) < len(lines) {
		out = append(out, lines[len(out)])
	}
	return out
}

func (h *highlighter) tokenStyle(t chroma.TokenType) lipgloss.Style {
	entry := h.style.Get(t)
	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	// Italic is skipped: some terminals miscount its width.
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style
}

package app

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/Akashdeep-Patra/zed-scroll-view/internal/common"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/config"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/document"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/mouse"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/ui"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/ui/components"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/ui/scrollbar"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// How long transient status messages stay up.
const (
	infoTTL  = 3 * time.Second
	errorTTL = 5 * time.Second
)

// Model is the top-level Bubbletea model: one document in a scrollable
// element, with a status bar underneath.
type Model struct {
	cfg     *config.Config
	styles  ui.Styles
	keys    KeyMap
	logger  *slog.Logger
	path    string
	docOpts document.Options
	doc     *document.Document
	elem    *Element
	unicode bool

	width    int
	height   int
	showHelp bool

	statusMsg string
	statusErr bool
	statusSeq int
}

// docLoadedMsg carries a document re-read from disk.
type docLoadedMsg struct {
	doc *document.Document
}

// New creates the application model. path is empty when doc was read from
// stdin; reloading is then unavailable.
func New(cfg *config.Config, path string, doc *document.Document, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))

	barOptions := func(v scrollbar.Visibility) scrollbar.Options {
		return scrollbar.Options{
			Visibility:       v,
			Arrows:           cfg.Arrows,
			MinSliderSize:    cfg.MinSliderSize,
			ScrollByPage:     cfg.ScrollByPage,
			SnapBack:         cfg.SnapBackEnabled(),
			SnapBackDistance: cfg.SnapBackDistance,
			RevealDuration:   cfg.RevealDuration,
			FadeDuration:     cfg.FadeDuration,
			Unicode:          cfg.Unicode,
		}
	}

	elem := NewElement(styles, ElementOptions{
		WheelLines:   cfg.WheelLines,
		WheelColumns: cfg.WheelColumns,
		HideDelay:    cfg.HideDelay,
		Vertical:     barOptions(cfg.VerticalVisibility()),
		Horizontal:   barOptions(cfg.HorizontalVisibility()),
	}, logger)

	m := Model{
		cfg:    cfg,
		styles: styles,
		keys:   DefaultKeyMap(),
		logger: logger,
		path:   path,
		docOpts: document.Options{
			TabWidth:  cfg.TabWidth,
			Highlight: cfg.Highlight,
			Style:     cfg.HighlightStyle,
		},
		elem:    elem,
		unicode: cfg.Unicode,
	}
	m.setDocument(doc)
	return m
}

// Init sets the terminal title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("zsv: " + m.doc.Name())
}

// Update processes messages. Everything is also fed to the element so its
// bars see mouse input and their own timers.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case common.ReloadMsg:
		cmds = append(cmds, m.reload(msg.Removed))

	case docLoadedMsg:
		m.setDocument(msg.doc)
		m.logger.Debug("document reloaded", "lines", msg.doc.Lines(), "width", msg.doc.Width())
		cmds = append(cmds, m.setStatus("reloaded", false))

	case common.ErrMsg:
		m.logger.Error("error", "err", msg.Err)
		cmds = append(cmds, m.setStatus(msg.Err.Error(), true))

	case common.InfoMsg:
		cmds = append(cmds, m.setStatus(msg.Text, false))

	case common.ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.statusMsg = ""
		}
	}

	cmds = append(cmds, m.elem.Update(msg))
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return nil
	case key.Matches(msg, m.keys.Back):
		m.showHelp = false
		return nil
	}
	if m.showHelp {
		return nil
	}

	page := max(1, m.elem.ContentRect().H)
	switch {
	case key.Matches(msg, m.keys.Up):
		m.elem.ScrollBy(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.elem.ScrollBy(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.elem.ScrollBy(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.elem.ScrollBy(1, 0)
	case key.Matches(msg, m.keys.PageUp):
		m.elem.ScrollBy(0, -page)
	case key.Matches(msg, m.keys.PageDown):
		m.elem.ScrollBy(0, page)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.elem.ScrollBy(0, -max(1, page/2))
	case key.Matches(msg, m.keys.HalfPageDown):
		m.elem.ScrollBy(0, max(1, page/2))
	case key.Matches(msg, m.keys.Home):
		m.elem.ScrollToTop()
	case key.Matches(msg, m.keys.End):
		m.elem.ScrollToBottom()
	case key.Matches(msg, m.keys.LineStart):
		m.elem.ScrollBy(-m.elem.Position().ScrollLeft, 0)
	case key.Matches(msg, m.keys.ToggleUnicode):
		m.unicode = !m.unicode
		m.elem.SetCanUseUnicode(m.unicode)
	case key.Matches(msg, m.keys.Reload):
		return m.reload(false)
	}
	return nil
}

// reload re-reads the file off the UI loop.
func (m Model) reload(removed bool) tea.Cmd {
	if m.path == "" {
		return common.CmdInfo("nothing to reload: input came from stdin")
	}
	if removed {
		return common.CmdInfo(filepath.Base(m.path) + " was removed; showing last contents")
	}
	path, opts := m.path, m.docOpts
	return func() tea.Msg {
		doc, err := document.Load(path, opts)
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		return docLoadedMsg{doc: doc}
	}
}

func (m *Model) setDocument(doc *document.Document) {
	m.doc = doc
	m.elem.SetContentSize(doc.Width(), doc.Lines())
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.statusMsg = text
	m.statusErr = isErr
	ttl := infoTTL
	if isErr {
		ttl = errorTTL
	}
	seq := m.statusSeq
	return tea.Tick(ttl, func(time.Time) tea.Msg { return common.ClearStatusMsg{Seq: seq} })
}

// layout gives the element everything but the status bar row.
func (m *Model) layout() {
	m.elem.SetBounds(mouse.Rect{X: 0, Y: 0, W: m.width, H: max(0, m.height-1)})
}

// View renders the entire UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showHelp {
		return components.RenderHelp(m.styles, "Keyboard & Mouse", components.GlobalHelpEntries(), m.width, m.height)
	}

	c := m.elem.ContentRect()
	var body string
	if m.doc.Lines() == 0 {
		body = ui.PlaceCentre(c.W, c.H, m.styles.Muted.Render("(empty)"))
	} else {
		pos := m.elem.Position()
		body = m.doc.Window(pos.ScrollTop, pos.ScrollLeft, c.W, c.H)
	}

	screen := m.elem.View(body)
	statusBar := components.RenderStatusBar(m.styles, m.statusData(), m.width)
	if screen == "" {
		return statusBar
	}
	return lipgloss.JoinVertical(lipgloss.Left, screen, statusBar)
}

func (m Model) statusData() components.StatusBarData {
	st := m.elem.State()
	lines := m.doc.Lines()
	data := components.StatusBarData{
		Name:     m.doc.Name(),
		Lines:    lines,
		Column:   st.ScrollLeft + 1,
		Dragging: m.elem.Dragging(),
		Message:  m.statusMsg,
		IsError:  m.statusErr,
	}
	if lines > 0 {
		data.FirstLine = st.ScrollTop + 1
		data.LastLine = min(st.ScrollTop+st.Height, lines)
	}
	return data
}

// Element exposes the scrollable element.
func (m Model) Element() *Element { return m.elem }

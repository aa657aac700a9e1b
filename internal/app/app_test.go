package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Akashdeep-Patra/zed-scroll-view/internal/common"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/config"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/document"
	tea "github.com/charmbracelet/bubbletea"
)

func testConfig() *config.Config {
	return &config.Config{
		Theme:            "dark",
		Vertical:         "auto",
		Horizontal:       "auto",
		MinSliderSize:    1,
		SnapBack:         "off",
		SnapBackDistance: 140,
		WheelLines:       3,
		WheelColumns:     10,
		HideDelay:        time.Second,
		RevealDuration:   -1,
		FadeDuration:     -1,
		Unicode:          true,
		TabWidth:         4,
	}
}

func numberedDoc(n int) *document.Document {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return document.New("lines.txt", b.String(), document.Options{})
}

// newTestModel returns an 80×25 model: 79×23 content, bars, one status row.
func newTestModel(t *testing.T, path string, doc *document.Document) Model {
	t.Helper()
	m := New(testConfig(), path, doc, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 25})
	return updated.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Layout(t *testing.T) {
	m := newTestModel(t, "", numberedDoc(100))
	c := m.Element().ContentRect()
	if c.W != 79 || c.H != 23 {
		t.Errorf("content = %dx%d, want 79x23", c.W, c.H)
	}
	view := m.View()
	if !strings.Contains(view, "line 1") || !strings.Contains(view, "line 23") {
		t.Error("view should show the first page")
	}
	if strings.Contains(view, "line 24") {
		t.Error("view should stop at the page boundary")
	}
	if !strings.Contains(view, "1-23/100") {
		t.Error("status bar should show the visible line range")
	}
}

func TestModel_KeyboardScrolling(t *testing.T) {
	m := newTestModel(t, "", numberedDoc(100))

	m, _ = update(t, m, keyRunes("j"))
	if got := m.Element().Position().ScrollTop; got != 1 {
		t.Errorf("after j: ScrollTop = %d, want 1", got)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	if got := m.Element().Position().ScrollTop; got != 24 {
		t.Errorf("after pgdown: ScrollTop = %d, want 24", got)
	}
	m, _ = update(t, m, keyRunes("G"))
	if got := m.Element().Position().ScrollTop; got != 77 {
		t.Errorf("after G: ScrollTop = %d, want 77", got)
	}
	if !strings.Contains(m.View(), "78-100/100") {
		t.Error("status bar should show the last page")
	}
	m, _ = update(t, m, keyRunes("g"))
	if got := m.Element().Position().ScrollTop; got != 0 {
		t.Errorf("after g: ScrollTop = %d, want 0", got)
	}
}

func TestModel_WheelScrolls(t *testing.T) {
	m := newTestModel(t, "", numberedDoc(100))
	m, cmd := update(t, m, tea.MouseMsg{X: 5, Y: 5, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if got := m.Element().Position().ScrollTop; got != 3 {
		t.Errorf("ScrollTop = %d, want 3", got)
	}
	if cmd == nil {
		t.Error("expected the hide timer command")
	}
}

func TestModel_SliderDrag(t *testing.T) {
	m := newTestModel(t, "", numberedDoc(100))
	x := m.Element().Vertical().Bounds().X
	m, _ = update(t, m, press(x, 0))
	m, _ = update(t, m, motion(x, 10))
	if m.Element().Position().ScrollTop == 0 {
		t.Error("dragging the slider should scroll")
	}
	if !strings.Contains(m.View(), "DRAG") {
		t.Error("status bar should flag the drag")
	}
	m, _ = update(t, m, release(x, 10))
	if m.Element().Dragging() {
		t.Error("release should end the drag")
	}
}

func TestModel_ToggleUnicode(t *testing.T) {
	m := newTestModel(t, "", numberedDoc(100))
	m, _ = update(t, m, keyRunes("j"))
	if !strings.Contains(m.View(), "█") {
		t.Fatal("expected a block slider")
	}
	m, _ = update(t, m, keyRunes("a"))
	view := m.View()
	if strings.Contains(view, "█") || !strings.Contains(view, "#") {
		t.Error("toggling should switch to ASCII glyphs")
	}
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newTestModel(t, "", numberedDoc(100))
	m, _ = update(t, m, keyRunes("?"))
	if !strings.Contains(m.View(), "Keyboard & Mouse") {
		t.Fatal("help overlay not shown")
	}
	m, _ = update(t, m, keyRunes("j"))
	if m.Element().Position().ScrollTop != 0 {
		t.Error("scroll keys should be ignored under the help overlay")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if strings.Contains(m.View(), "Keyboard & Mouse") {
		t.Error("esc should close the help overlay")
	}
}

func TestModel_StatusMessages(t *testing.T) {
	m := newTestModel(t, "", numberedDoc(10))
	m, cmd := update(t, m, common.ErrMsg{Err: errors.New("boom")})
	if cmd == nil || !strings.Contains(m.View(), "boom") {
		t.Fatal("error should show in the status bar with an expiry")
	}
	seq := m.statusSeq
	m, _ = update(t, m, common.InfoMsg{Text: "hello"})
	m, _ = update(t, m, common.ClearStatusMsg{Seq: seq})
	if !strings.Contains(m.View(), "hello") {
		t.Error("a stale clear should not remove a newer message")
	}
	m, _ = update(t, m, common.ClearStatusMsg{Seq: m.statusSeq})
	if strings.Contains(m.View(), "hello") {
		t.Error("the current clear should remove the message")
	}
}

func TestModel_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := document.Load(path, document.Options{})
	if err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t, path, doc)

	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, cmd := update(t, m, common.ReloadMsg{})
	if cmd == nil {
		t.Fatal("expected a reload command")
	}

	loaded, err := document.Load(path, document.Options{})
	if err != nil {
		t.Fatal(err)
	}
	m, _ = update(t, m, docLoadedMsg{doc: loaded})
	if m.Element().State().ScrollHeight != 3 {
		t.Errorf("ScrollHeight = %d, want 3", m.Element().State().ScrollHeight)
	}
	if !strings.Contains(m.View(), "three") {
		t.Error("reloaded text should be shown")
	}
}

func TestModel_ReloadFromStdin(t *testing.T) {
	m := newTestModel(t, "", numberedDoc(3))
	cmd := m.reload(false)
	if _, ok := cmd().(common.InfoMsg); !ok {
		t.Error("reloading stdin input should report an info message")
	}
}

func TestModel_EmptyDocument(t *testing.T) {
	m := newTestModel(t, "", document.New("empty.txt", "", document.Options{}))
	view := m.View()
	if !strings.Contains(view, "(empty)") || !strings.Contains(view, "0-0/0") {
		t.Error("empty document should render a placeholder")
	}
}

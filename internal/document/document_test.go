package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestNew_LinesAndWidth(t *testing.T) {
	d := New("notes.txt", "one\ntwo three\n\nfour\n", Options{})
	if d.Lines() != 4 {
		t.Errorf("Lines = %d, want 4", d.Lines())
	}
	if d.Width() != 9 {
		t.Errorf("Width = %d, want 9", d.Width())
	}
	if d.Line(1) != "two three" || d.Line(10) != "" {
		t.Errorf("unexpected Line results: %q %q", d.Line(1), d.Line(10))
	}
}

func TestNew_Empty(t *testing.T) {
	d := New("empty.txt", "", Options{})
	if d.Lines() != 0 || d.Width() != 0 {
		t.Errorf("empty document: lines=%d width=%d", d.Lines(), d.Width())
	}
	if got := d.Window(0, 0, 3, 2); got != "   \n   " {
		t.Errorf("Window of empty doc = %q", got)
	}
}

func TestNew_ExpandsTabsAndCRLF(t *testing.T) {
	d := New("x.txt", "a\tb\r\n\tc", Options{TabWidth: 4})
	if d.Line(0) != "a   b" {
		t.Errorf("Line(0) = %q, want %q", d.Line(0), "a   b")
	}
	if d.Line(1) != "    c" {
		t.Errorf("Line(1) = %q, want %q", d.Line(1), "    c")
	}
}

func TestWindow_CutsAndPads(t *testing.T) {
	d := New("x.txt", "0123456789\nab\nxyz", Options{})
	got := d.Window(0, 2, 4, 2)
	want := "2345\n    "
	if got != want {
		t.Errorf("Window = %q, want %q", got, want)
	}
	got = d.Window(1, 1, 3, 3)
	want = "b  \nyz \n   "
	if got != want {
		t.Errorf("Window = %q, want %q", got, want)
	}
}

func TestHighlight_PreservesLineCountAndText(t *testing.T) {
	src := "package main\n\n/* multi\nline */\nfunc main() {}\n"
	d := New("main.go", src, Options{Highlight: true, Style: "catppuccin-mocha"})
	if d.Lines() != 5 {
		t.Fatalf("Lines = %d, want 5", d.Lines())
	}
	for i, want := range strings.Split(strings.TrimSuffix(src, "\n"), "\n") {
		if got := ansi.Strip(d.Line(i)); got != want {
			t.Errorf("line %d = %q, want %q", i, got, want)
		}
	}
}

func TestHighlight_UnknownTypeIsPlain(t *testing.T) {
	d := New("data.unknown-ext", "plain text", Options{Highlight: true})
	if d.Line(0) != "plain text" {
		t.Errorf("Line(0) = %q", d.Line(0))
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("hello\nworld\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Name() != "f.txt" || d.Lines() != 2 {
		t.Errorf("name=%q lines=%d", d.Name(), d.Lines())
	}
	if _, err := Load(filepath.Join(t.TempDir(), "nope"), Options{}); err == nil {
		t.Error("expected an error for a missing file")
	}
}

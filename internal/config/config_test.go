package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/Akashdeep-Patra/zed-scroll-view/internal/ui/scrollbar"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "dark" || cfg.WheelLines != DefaultWheelLines || cfg.TabWidth != DefaultTabWidth {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.HideDelay != DefaultHideDelay {
		t.Errorf("HideDelay = %v, want %v", cfg.HideDelay, DefaultHideDelay)
	}
	if cfg.SnapBackDistance != scrollbar.PointerDragResetDistance {
		t.Errorf("SnapBackDistance = %d", cfg.SnapBackDistance)
	}
	if cfg.VerticalVisibility() != scrollbar.Auto {
		t.Errorf("VerticalVisibility = %v, want auto", cfg.VerticalVisibility())
	}
	if cfg.SnapBackEnabled() != (runtime.GOOS == "windows") {
		t.Error("snap_back auto should follow the platform")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zsv.yaml")
	body := "vertical: visible\nhorizontal: hidden\nsnap_back: \"on\"\nhide_delay: 2s\nwheel_lines: 5\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.VerticalVisibility() != scrollbar.Visible || cfg.HorizontalVisibility() != scrollbar.Hidden {
		t.Errorf("visibility = %v/%v", cfg.VerticalVisibility(), cfg.HorizontalVisibility())
	}
	if !cfg.SnapBackEnabled() {
		t.Error("snap_back: on should enable snap-back")
	}
	if cfg.HideDelay != 2*time.Second {
		t.Errorf("HideDelay = %v, want 2s", cfg.HideDelay)
	}
	if cfg.WheelLines != 5 {
		t.Errorf("WheelLines = %d, want 5", cfg.WheelLines)
	}
	if cfg.SlogLevel().String() != "DEBUG" {
		t.Errorf("SlogLevel = %v, want DEBUG", cfg.SlogLevel())
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("ZSV_THEME", "light")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.Theme)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zsv.yaml")
	if err := os.WriteFile(path, []byte("vertical: sometimes\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for an unknown visibility")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("an explicit config path that does not exist should be an error")
	}
}

func TestValidate_SnapBack(t *testing.T) {
	cfg := &Config{Vertical: "auto", Horizontal: "auto", SnapBack: "maybe", WheelLines: 1, WheelColumns: 1, TabWidth: 4}
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for an unknown snap_back value")
	}
	cfg.SnapBack = "off"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if cfg.SnapBackEnabled() {
		t.Error("snap_back: off should disable snap-back")
	}
}

func TestSlogLevel_Fallback(t *testing.T) {
	cfg := &Config{LogLevel: "chatty"}
	if cfg.SlogLevel().String() != "INFO" {
		t.Errorf("SlogLevel = %v, want INFO", cfg.SlogLevel())
	}
}

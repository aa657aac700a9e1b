package config

import (
	"time"

	"github.com/Akashdeep-Patra/zed-scroll-view/internal/ui/scrollbar"
	"github.com/spf13/viper"
)

// Default values, shared with the CLI flag help.
const (
	DefaultWheelLines   = 3
	DefaultWheelColumns = 10
	DefaultHideDelay    = 500 * time.Millisecond
	DefaultTabWidth     = 4
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", "dark")

	v.SetDefault("vertical", "auto")
	v.SetDefault("horizontal", "auto")
	v.SetDefault("arrows", false)
	v.SetDefault("min_slider_size", scrollbar.MinimumSliderSize)
	v.SetDefault("snap_back", "auto")
	v.SetDefault("snap_back_distance", scrollbar.PointerDragResetDistance)
	v.SetDefault("scroll_by_page", false)

	v.SetDefault("wheel_lines", DefaultWheelLines)
	v.SetDefault("wheel_columns", DefaultWheelColumns)

	v.SetDefault("hide_delay", DefaultHideDelay)
	v.SetDefault("reveal_duration", scrollbar.DefaultRevealDuration)
	v.SetDefault("fade_duration", scrollbar.DefaultFadeDuration)

	v.SetDefault("unicode", true)

	v.SetDefault("highlight", true)
	v.SetDefault("highlight_style", "catppuccin-mocha")
	v.SetDefault("tab_width", DefaultTabWidth)

	v.SetDefault("watch", true)
	v.SetDefault("watch_debounce", 200*time.Millisecond)

	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
}

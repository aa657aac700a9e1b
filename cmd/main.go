package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"

	"github.com/Akashdeep-Patra/zed-scroll-view/internal/app"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/common"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/config"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/document"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/watcher"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Build-time variables injected via ldflags by GoReleaser / Taskfile.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	// An explicit GOMAXPROCS wins.
	if os.Getenv("GOMAXPROCS") == "" {
		runtime.GOMAXPROCS(min(2, runtime.NumCPU()))
	}

	// Soft limit; the whole document is held in memory.
	debug.SetMemoryLimit(50 * 1024 * 1024)
}

func main() {
	rootCmd := buildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "zsv:", err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zsv [file]",
		Short: "A terminal pager with mouse-driven scrollbars",
		Long: `zsv shows a file (or standard input) in a full-screen, syntax-highlighted
pager with vertical and horizontal scrollbars you can drag, click and
scroll with the wheel.

Scrollbars fade in while you scroll or hover them and fade out again
after a short delay. The file is reloaded when it changes on disk.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"zsv %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.AddCommand(buildVersionCmd())
	rootCmd.AddCommand(buildCompletionCmd())
	rootCmd.AddCommand(buildZedCmd())

	rootCmd.Flags().String("config", "", "Path to a config file (default $XDG_CONFIG_HOME/zsv/config.yaml)")
	rootCmd.Flags().Bool("no-watch", false, "Do not reload the file when it changes")
	rootCmd.Flags().Bool("no-highlight", false, "Disable syntax highlighting")
	rootCmd.Flags().String("log-file", "", "Write debug logs to this file")

	return rootCmd
}

// buildVersionCmd creates the `zsv version` subcommand supporting --json.
func buildVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			info := map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
				"go":      runtime.Version(),
				"os":      runtime.GOOS,
				"arch":    runtime.GOARCH,
			}
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Fprintf(out, "zsv %s\n", version)
			fmt.Fprintf(out, "  commit:  %s\n", commit)
			fmt.Fprintf(out, "  built:   %s\n", date)
			fmt.Fprintf(out, "  go:      %s\n", runtime.Version())
			fmt.Fprintf(out, "  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	return cmd
}

// buildCompletionCmd creates the `zsv completion` subcommand for shell completions.
func buildCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for zsv.

Examples:
  # Bash (add to ~/.bashrc)
  zsv completion bash > /etc/bash_completion.d/zsv

  # Zsh (add to ~/.zshrc before compinit)
  zsv completion zsh > "${fpath[1]}/_zsv"

  # Fish
  zsv completion fish > ~/.config/fish/completions/zsv.fish

  # PowerShell
  zsv completion powershell > zsv.ps1`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}

	return cmd
}

func runApp(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	cfgPath, _ := flags.GetString("config")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if noWatch, _ := flags.GetBool("no-watch"); noWatch {
		cfg.Watch = false
	}
	if noHighlight, _ := flags.GetBool("no-highlight"); noHighlight {
		cfg.Highlight = false
	}
	if logFile, _ := flags.GetString("log-file"); logFile != "" {
		cfg.LogFile = logFile
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	docOpts := document.Options{
		TabWidth:  cfg.TabWidth,
		Highlight: cfg.Highlight,
		Style:     cfg.HighlightStyle,
	}

	var (
		path string
		doc  *document.Document
	)
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus()}

	switch {
	case len(args) == 1:
		path = args[0]
		doc, err = document.Load(path, docOpts)
		if err != nil {
			return err
		}
	case stdinIsPiped():
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		doc = document.New("stdin", string(data), docOpts)
		// Keys and mouse come from the terminal, not the pipe.
		programOpts = append(programOpts, tea.WithInputTTY())
	default:
		return errors.New("no file given and nothing piped to stdin")
	}

	logger.Info("starting", "file", doc.Name(), "lines", doc.Lines(), "width", doc.Width())

	model := app.New(cfg, path, doc, logger)
	p := tea.NewProgram(model, programOpts...)

	if path != "" && cfg.Watch {
		if watchCh, stop, watchErr := watcher.Watch(path, cfg.WatchDebounce); watchErr == nil {
			defer stop()
			go func() {
				for ev := range watchCh {
					logger.Debug("file changed", "path", ev.Path, "removed", ev.Removed)
					p.Send(common.ReloadMsg{Removed: ev.Removed})
				}
			}()
		} else {
			logger.Warn("file watching disabled", "err", watchErr)
		}
	}

	_, err = p.Run()
	return err
}

// newLogger writes to cfg.LogFile, or nowhere: the terminal belongs to the
// TUI.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	return slog.New(h), func() { _ = f.Close() }, nil
}

func stdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

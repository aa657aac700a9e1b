package common

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ── Custom messages ─────────────────────────────────────────────────────────

// ReloadMsg asks the pager to re-read its file from disk.
type ReloadMsg struct {
	// Removed is set when the file disappeared; the pager keeps the last
	// loaded contents.
	Removed bool
}

// ErrMsg carries an error to be displayed.
type ErrMsg struct{ Err error }

// InfoMsg carries an informational message.
type InfoMsg struct{ Text string }

// ClearStatusMsg expires a status message; Seq guards against clearing a
// newer one.
type ClearStatusMsg struct{ Seq int }

// CmdInfo creates a tea.Cmd that sends an InfoMsg.
func CmdInfo(text string) tea.Cmd {
	return func() tea.Msg { return InfoMsg{Text: text} }
}
